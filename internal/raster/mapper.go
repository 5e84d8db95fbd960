// Package raster converts between grid and pixel space and draws slope
// ticks into a core.Frame.
package raster

import (
	"math"

	"slopefield/internal/core"
)

// OffGrid is returned for coordinates that cannot be represented as a
// pixel, such as NaN or values beyond ±2^30. It never lies inside a frame.
const OffGrid = math.MinInt32

const pixelLimit = 1 << 30

// Mapper is the affine transform between pixel space (origin top-left,
// Y down) and grid space (origin center, Y up, half-range R).
type Mapper struct {
	halfW, halfH float64
	r            float64
}

// NewMapper derives the scale constants from cfg.
func NewMapper(cfg core.Config) Mapper {
	cfg = cfg.Normalize()
	return Mapper{
		halfW: float64(cfg.Width) / 2,
		halfH: float64(cfg.Height) / 2,
		r:     cfg.Range,
	}
}

// Range returns the grid half-range.
func (m Mapper) Range() float64 { return m.r }

// PixelToGrid maps a pixel to grid coordinates.
func (m Mapper) PixelToGrid(px, py int) (float64, float64) {
	gx := ((float64(px) - m.halfW) / m.halfW) * m.r
	gy := (-(float64(py) - m.halfH) / m.halfH) * m.r
	return gx, gy
}

// GridToPixel maps grid coordinates to a pixel, truncating toward zero.
func (m Mapper) GridToPixel(gx, gy float64) (int, int) {
	px := (gx/m.r)*m.halfW + m.halfW
	py := (-gy/m.r)*m.halfH + m.halfH
	return Truncate(px), Truncate(py)
}

// Truncate converts v to an int toward zero. Non-finite or huge values
// become OffGrid.
func Truncate(v float64) int {
	if math.IsNaN(v) || v >= pixelLimit || v <= -pixelLimit {
		return OffGrid
	}
	return int(v)
}
