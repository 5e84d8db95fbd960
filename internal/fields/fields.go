// Package fields registers the built-in differential equations.
package fields

import (
	"math"

	"slopefield/internal/core"
)

// Default names the field shown at startup.
const Default = "sincos"

var builtin = []struct {
	name string
	expr string
	fn   core.FieldFunc
}{
	{"sincos", "sin(x) + 2cos(y)", func(x, y float64) float64 { return math.Sin(x) + 2*math.Cos(y) }},
	{"sum", "x + y", func(x, y float64) float64 { return x + y }},
	{"ratio", "x / y", func(x, y float64) float64 { return x / y }},
	{"mod", "x mod y", func(x, y float64) float64 { return math.Mod(x, y) }},
	{"tanratio", "sin(x) / cos(y)", func(x, y float64) float64 { return math.Sin(x) / math.Cos(y) }},
	{"linear", "2x - y", func(x, y float64) float64 { return 2*x - y }},
	{"product", "2 - xy", func(x, y float64) float64 { return 2 - x*y }},
	{"circle", "-x / y", func(x, y float64) float64 { return -x / y }},
	{"cubic", "(3x^2 + 1) / 2y", func(x, y float64) float64 { return (3*x*x + 1) / (2 * y) }},
}

func init() {
	for _, b := range builtin {
		core.Register(b.name, b.expr, b.fn)
	}
}

// Next returns the registered name after name in sorted order, wrapping
// around. step may be negative.
func Next(name string, step int) string {
	names := core.FieldNames()
	if len(names) == 0 {
		return name
	}
	idx := 0
	for i, n := range names {
		if n == name {
			idx = i
			break
		}
	}
	idx = ((idx+step)%len(names) + len(names)) % len(names)
	return names[idx]
}
