package core

import "runtime"

const (
	// DefaultWidth and DefaultHeight give the raster size used by the GUI.
	DefaultWidth  = 1000
	DefaultHeight = 1000
	// DefaultRange is the grid half-range: the raster spans [-10, 10] on
	// both axes.
	DefaultRange = 10.0
)

// Size describes the dimensions of a raster.
type Size struct {
	W int
	H int
}

// Config carries the raster dimensions, grid half-range and the number of
// workers used by the data-parallel passes.
type Config struct {
	Width   int
	Height  int
	Range   float64
	Workers int
}

// DefaultConfig returns the standard 1000x1000 configuration.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Range:   DefaultRange,
		Workers: runtime.NumCPU(),
	}
}

// Normalize replaces unusable values with defaults.
func (c Config) Normalize() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if !(c.Range > 0) {
		c.Range = DefaultRange
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

// Size returns the raster dimensions.
func (c Config) Size() Size { return Size{W: c.Width, H: c.Height} }
