// Package shade maps field values to background colors.
package shade

import (
	"fmt"
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

// DefaultSensitivity scales field values before squashing.
const DefaultSensitivity = 0.25

// Palette selects how a squashed value becomes a color.
type Palette string

const (
	// Diverging runs from blue through black to red.
	Diverging Palette = "diverging"
	// Hue sweeps blue, green, red with brightness tracking the magnitude.
	Hue Palette = "hue"
)

// Palettes lists the supported palettes.
func Palettes() []Palette { return []Palette{Diverging, Hue} }

// ParsePalette validates a palette name.
func ParsePalette(name string) (Palette, error) {
	for _, p := range Palettes() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown palette %q", name)
}

var black = color.RGBA{A: 255}

// Shader converts a field value to an opaque color.
type Shader struct {
	Sensitivity float64
	Palette     Palette
}

// New returns a diverging shader with the default sensitivity.
func New() Shader {
	return Shader{Sensitivity: DefaultSensitivity, Palette: Diverging}
}

// Squash maps v into (-1, 1) with tanh(v * sensitivity).
func (s Shader) Squash(v float64) float64 {
	return math.Tanh(v * s.Sensitivity)
}

// Shade returns the background color for field value v. NaN maps to black.
func (s Shader) Shade(v float64) color.RGBA {
	g := s.Squash(v)
	if math.IsNaN(g) {
		return black
	}
	if s.Palette == Hue {
		return hue(g)
	}
	if g > 0 {
		return color.RGBA{R: channel(g), A: 255}
	}
	return color.RGBA{B: channel(-g), A: 255}
}

// hue places -1 at blue (240 degrees), 0 at green and +1 at red.
func hue(g float64) color.RGBA {
	r, gg, b, err := colorconv.HSVToRGB(120*(1-g), 1, math.Abs(g))
	if err != nil {
		return black
	}
	return color.RGBA{R: r, G: gg, B: b, A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(1, max(0, v)) * 255))
}
