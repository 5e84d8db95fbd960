package raster

import (
	"math"

	"slopefield/internal/core"
)

const (
	// ArrowLength is the length in pixels of each arrowhead stroke.
	ArrowLength = 7.5
	// ArrowAngle is the angle of the arrowhead strokes relative to the tick.
	ArrowAngle = 3 * math.Pi / 4
)

// TickPainter draws slope ticks for a field.
type TickPainter struct {
	Mapper Mapper
}

// NewTickPainter returns a painter for the given configuration.
func NewTickPainter(cfg core.Config) TickPainter {
	return TickPainter{Mapper: NewMapper(cfg)}
}

// Draw renders one tick centered on grid point (gx, gy). The tick is
// length pixels long and its angle is atan(field(gx, gy)). When arrow is
// set a chevron is added at the leading end.
func (p TickPainter) Draw(f *core.Frame, field core.Field, gx, gy, length float64, arrow bool) {
	cx, cy := p.Mapper.GridToPixel(gx, gy)
	if cx == OffGrid || cy == OffGrid {
		return
	}
	a := math.Atan(field.Eval(gx, gy))
	dx, dy, ok := offset(length/2, a)
	if !ok {
		return
	}

	lx, ly := cx+dx, cy+dy
	DrawLine(f, lx, ly, cx-dx, cy-dy)
	if !arrow {
		return
	}
	for _, turn := range [2]float64{ArrowAngle, -ArrowAngle} {
		if hx, hy, ok := offset(ArrowLength, a+turn); ok {
			DrawLine(f, lx, ly, lx+hx, ly+hy)
		}
	}
}

// offset returns the pixel displacement of a vector of length r at grid
// angle a. Pixel Y grows downward, so the vertical component is negated.
func offset(r, a float64) (int, int, bool) {
	dx := Truncate(r * math.Cos(a))
	dy := Truncate(r * math.Sin(a))
	if dx == OffGrid || dy == OffGrid {
		return 0, 0, false
	}
	return dx, -dy, true
}
