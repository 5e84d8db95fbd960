package raster

import (
	"image/color"

	"slopefield/internal/core"
)

// On is the color written by DrawLine.
var On = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// DrawLine plots every pixel on the segment (x1, y1)-(x2, y2) using an
// integer error walk that handles any slope. Pixels outside the frame are
// skipped.
func DrawLine(f *core.Frame, x1, y1, x2, y2 int) {
	if x1 == OffGrid || y1 == OffGrid || x2 == OffGrid || y2 == OffGrid {
		return
	}
	// Nothing to plot if the bounding box misses the frame.
	if max(x1, x2) < 0 || min(x1, x2) >= f.W || max(y1, y2) < 0 || min(y1, y2) >= f.H {
		return
	}

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x2 < x1 {
		sx = -1
	}
	if y2 < y1 {
		sy = -1
	}
	e := dx + dy

	x, y := x1, y1
	for {
		f.Set(x, y, On)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			if x == x2 {
				return
			}
			e += dy
			x += sx
		}
		if e2 <= dx {
			if y == y2 {
				return
			}
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
