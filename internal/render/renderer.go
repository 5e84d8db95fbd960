// Package render turns a slope field into RGBA frames.
package render

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"slopefield/internal/core"
	"slopefield/internal/raster"
	"slopefield/internal/shade"
)

// Options controls the tick passes.
type Options struct {
	// LatticeSpan draws lattice ticks at integer grid coordinates in
	// [-LatticeSpan, LatticeSpan] on both axes.
	LatticeSpan   int
	LatticeLength float64
	PointerLength float64
	Arrows        bool
}

// DefaultOptions returns a 19x19 lattice of 40px ticks and a 100px
// pointer tick, all with arrowheads.
func DefaultOptions() Options {
	return Options{LatticeSpan: 9, LatticeLength: 40, PointerLength: 100, Arrows: true}
}

// FieldRenderer owns the shaded background cache and paints frames.
//
// The background is computed once per field and shader; every Draw copies
// it into the destination and then draws the lattice and pointer ticks on
// top. Draw must not be called concurrently; SetPointer may be.
type FieldRenderer struct {
	cfg    core.Config
	opts   Options
	mapper raster.Mapper
	ticks  raster.TickPainter
	shader shade.Shader

	field core.NamedField

	cache    *core.Frame
	computed bool

	pointer atomic.Uint64

	logger *slog.Logger
}

// zeroField stands in for a NamedField without a function.
var zeroField core.Field = core.FieldFunc(func(x, y float64) float64 { return 0 })

// New constructs a renderer for field using cfg and opts. A field without
// a function renders as dy/dx = 0.
func New(cfg core.Config, field core.NamedField, opts Options) *FieldRenderer {
	cfg = cfg.Normalize()
	field = withFunc(field)
	r := &FieldRenderer{
		cfg:    cfg,
		opts:   opts,
		mapper: raster.NewMapper(cfg),
		ticks:  raster.NewTickPainter(cfg),
		shader: shade.New(),
		field:  field,
		cache:  core.NewFrame(cfg.Width, cfg.Height),
		logger: newNopLogger(),
	}
	r.SetPointer(cfg.Width/2, cfg.Height/2)
	return r
}

// SetLogger installs l for diagnostics. nil restores the silent default.
func (r *FieldRenderer) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	r.logger = l
}

// Config returns the normalized configuration.
func (r *FieldRenderer) Config() core.Config { return r.cfg }

// Size returns the raster dimensions.
func (r *FieldRenderer) Size() core.Size { return r.cfg.Size() }

// Mapper exposes the coordinate transform in use.
func (r *FieldRenderer) Mapper() raster.Mapper { return r.mapper }

// Field returns the bound field.
func (r *FieldRenderer) Field() core.NamedField { return r.field }

// SetField swaps the bound field and invalidates the background.
func (r *FieldRenderer) SetField(f core.NamedField) {
	r.field = withFunc(f)
	r.Invalidate()
}

func withFunc(f core.NamedField) core.NamedField {
	if f.Field == nil {
		f.Field = zeroField
	}
	return f
}

// Shader returns the active shader.
func (r *FieldRenderer) Shader() shade.Shader { return r.shader }

// SetShader replaces the shader and invalidates the background.
func (r *FieldRenderer) SetShader(s shade.Shader) {
	r.shader = s
	r.Invalidate()
}

// Options returns the tick options.
func (r *FieldRenderer) Options() Options { return r.opts }

// SetOptions replaces the tick options. The background stays valid.
func (r *FieldRenderer) SetOptions(o Options) { r.opts = o }

// Invalidate marks the background cache stale.
func (r *FieldRenderer) Invalidate() {
	if r.computed {
		r.logger.Debug("background invalidated", "field", r.field.Name)
	}
	r.computed = false
	r.cache.Clear()
}

// Computed reports whether the background cache is valid.
func (r *FieldRenderer) Computed() bool { return r.computed }

// SetPointer records the pointer position in pixel space.
func (r *FieldRenderer) SetPointer(x, y int) {
	r.pointer.Store(uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y))))
}

// Pointer returns the last recorded pointer position.
func (r *FieldRenderer) Pointer() image.Point {
	v := r.pointer.Load()
	return image.Point{X: int(int32(uint32(v >> 32))), Y: int(int32(uint32(v)))}
}

// DrawBytes renders into a caller-owned RGBA buffer of exactly
// width*height*4 bytes.
func (r *FieldRenderer) DrawBytes(pix []byte) error {
	f, err := core.WrapFrame(r.cfg.Width, r.cfg.Height, pix)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	r.Draw(f)
	return nil
}

// Draw repaints dst: background, tick lattice, then the pointer tick.
// A dst whose size differs from the renderer's is left untouched.
func (r *FieldRenderer) Draw(dst *core.Frame) {
	if dst.Size() != r.Size() {
		r.logger.Debug("frame size mismatch", "frame", dst.Size(), "want", r.Size())
		return
	}
	if !r.computed {
		r.computeBackground()
	}
	r.copyBackground(dst)

	// Ticks write the shared frame without synchronization, so they run
	// on this goroutine only.
	span := r.opts.LatticeSpan
	for i := -span; i <= span; i++ {
		for j := -span; j <= span; j++ {
			r.ticks.Draw(dst, r.field.Field, float64(i), float64(j), r.opts.LatticeLength, r.opts.Arrows)
		}
	}

	p := r.Pointer()
	gx, gy := r.mapper.PixelToGrid(p.X, p.Y)
	r.ticks.Draw(dst, r.field.Field, gx, gy, r.opts.PointerLength, r.opts.Arrows)
}

func (r *FieldRenderer) computeBackground() {
	start := time.Now()
	field := r.field.Field
	r.eachBand(func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < r.cfg.Width; x++ {
				gx, gy := r.mapper.PixelToGrid(x, y)
				r.cache.Set(x, y, r.shader.Shade(field.Eval(gx, gy)))
			}
		}
	})
	r.computed = true
	r.logger.Debug("background computed",
		"field", r.field.Name,
		"pixels", r.cfg.Width*r.cfg.Height,
		"workers", r.cfg.Workers,
		"elapsed", time.Since(start))
}

func (r *FieldRenderer) copyBackground(dst *core.Frame) {
	r.eachBand(func(y0, y1 int) {
		copy(dst.Rows(y0, y1), r.cache.Rows(y0, y1))
	})
}

// eachBand splits the rows into one contiguous band per worker and runs fn
// on each band concurrently. Bands never overlap.
func (r *FieldRenderer) eachBand(fn func(y0, y1 int)) {
	bands := Bands(r.cfg.Height, r.cfg.Workers)
	if len(bands) == 1 {
		fn(bands[0][0], bands[0][1])
		return
	}
	var g errgroup.Group
	g.SetLimit(r.cfg.Workers)
	for _, b := range bands {
		g.Go(func() error {
			fn(b[0], b[1])
			return nil
		})
	}
	g.Wait()
}

// Bands partitions [0, rows) into at most n contiguous half-open ranges
// that cover every row exactly once.
func Bands(rows, n int) [][2]int {
	if rows <= 0 {
		return nil
	}
	n = max(1, min(n, rows))
	per := rows / n
	rem := rows % n
	out := make([][2]int, 0, n)
	y := 0
	for i := 0; i < n; i++ {
		h := per
		if i < rem {
			h++
		}
		out = append(out, [2]int{y, y + h})
		y += h
	}
	return out
}

// Parameters reports the values shown on the HUD.
func (r *FieldRenderer) Parameters() core.ParameterSnapshot {
	p := r.Pointer()
	gx, gy := r.mapper.PixelToGrid(p.X, p.Y)
	slope := r.field.Field.Eval(gx, gy)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				{Key: "field", Label: "dy/dx", Value: r.field.Expr},
				{Key: "palette", Label: "Palette", Value: string(r.shader.Palette)},
				{Key: "sensitivity", Label: "Sensitivity", Value: strconv.FormatFloat(r.shader.Sensitivity, 'f', 2, 64)},
				{Key: "arrows", Label: "Arrows", Value: strconv.FormatBool(r.opts.Arrows)},
				{Key: "range", Label: "Range", Value: "±" + strconv.FormatFloat(r.mapper.Range(), 'g', -1, 64)},
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				{Key: "x", Label: "x", Value: strconv.FormatFloat(gx, 'f', 2, 64)},
				{Key: "y", Label: "y", Value: strconv.FormatFloat(gy, 'f', 2, 64)},
				{Key: "slope", Label: "Slope", Value: formatSlope(slope)},
				{Key: "angle", Label: "Angle", Value: formatAngle(math.Atan(slope))},
			},
		},
	}}
}

func formatSlope(v float64) string {
	switch {
	case math.IsNaN(v):
		return "undefined"
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatAngle(a float64) string {
	if math.IsNaN(a) {
		return "undefined"
	}
	return strconv.FormatFloat(a*180/math.Pi, 'f', 1, 64) + "°"
}
