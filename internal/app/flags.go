package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"runtime"

	"slopefield/internal/core"
	"slopefield/internal/render"
	"slopefield/internal/shade"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Field       string
	Width       int
	Height      int
	Range       float64
	Workers     int
	Sensitivity float64
	Palette     string
	LatticeLen  float64
	PointerLen  float64
	Arrows      bool
	HUD         bool
	TPS         int
	Verbose     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Field:       "sincos",
		Width:       core.DefaultWidth,
		Height:      core.DefaultHeight,
		Range:       core.DefaultRange,
		Workers:     runtime.NumCPU(),
		Sensitivity: shade.DefaultSensitivity,
		Palette:     string(shade.Diverging),
		LatticeLen:  40,
		PointerLen:  100,
		Arrows:      true,
		HUD:         true,
		TPS:         60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Field, "field", c.Field, "differential equation to plot")
	fs.IntVar(&c.Width, "width", c.Width, "raster width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "raster height in pixels")
	fs.Float64Var(&c.Range, "range", c.Range, "grid half-range shown on each axis")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers for the shading pass")
	fs.Float64Var(&c.Sensitivity, "sensitivity", c.Sensitivity, "background shading sensitivity")
	fs.StringVar(&c.Palette, "palette", c.Palette, "background palette (diverging, hue)")
	fs.Float64Var(&c.LatticeLen, "lattice-len", c.LatticeLen, "lattice tick length in pixels")
	fs.Float64Var(&c.PointerLen, "pointer-len", c.PointerLen, "pointer tick length in pixels")
	fs.BoolVar(&c.Arrows, "arrows", c.Arrows, "draw arrowheads on ticks")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the info panel")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log renderer diagnostics to stderr")
}

// Validate reports the first unusable flag value.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := core.Lookup(c.Field); !ok {
		errs = append(errs, fmt.Errorf("unknown field %q (available: %v)", c.Field, core.FieldNames()))
	}
	if !(c.Sensitivity > 0) || math.IsInf(c.Sensitivity, 1) {
		errs = append(errs, fmt.Errorf("sensitivity %v must be positive and finite", c.Sensitivity))
	}
	if _, err := shade.ParsePalette(c.Palette); err != nil {
		errs = append(errs, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if !(c.Range > 0) {
		errs = append(errs, fmt.Errorf("range %v must be positive", c.Range))
	}
	if !(c.LatticeLen > 0) || !(c.PointerLen > 0) {
		errs = append(errs, fmt.Errorf("tick lengths %v/%v must be positive", c.LatticeLen, c.PointerLen))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	return errors.Join(errs...)
}

// Core returns the raster configuration.
func (c *Config) Core() core.Config {
	return core.Config{Width: c.Width, Height: c.Height, Range: c.Range, Workers: c.Workers}.Normalize()
}

// Shader returns the configured background shader.
func (c *Config) Shader() shade.Shader {
	p, err := shade.ParsePalette(c.Palette)
	if err != nil {
		p = shade.Diverging
	}
	return shade.Shader{Sensitivity: c.Sensitivity, Palette: p}
}

// Options returns the configured tick options.
func (c *Config) Options() render.Options {
	o := render.DefaultOptions()
	o.LatticeLength = c.LatticeLen
	o.PointerLength = c.PointerLen
	o.Arrows = c.Arrows
	return o
}

// NewRenderer builds a renderer from a validated Config.
func (c *Config) NewRenderer() (*render.FieldRenderer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	nf, _ := core.Lookup(c.Field)
	r := render.New(c.Core(), nf, c.Options())
	r.SetShader(c.Shader())
	return r, nil
}
