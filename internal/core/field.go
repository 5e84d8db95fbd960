package core

import "sort"

// Field is a first-order differential equation dy/dx = f(x, y).
// Implementations must be safe for concurrent use and must not fail:
// domain errors yield Inf or NaN.
type Field interface {
	Eval(x, y float64) float64
}

// FieldFunc adapts a plain function to the Field interface.
type FieldFunc func(x, y float64) float64

// Eval calls fn(x, y).
func (fn FieldFunc) Eval(x, y float64) float64 { return fn(x, y) }

// NamedField is a registered equation with a printable expression.
type NamedField struct {
	Name  string
	Expr  string
	Field Field
}

var fields = map[string]NamedField{}

// Register adds a field under the provided name.
func Register(name, expr string, f Field) {
	if name == "" || f == nil {
		return
	}
	fields[name] = NamedField{Name: name, Expr: expr, Field: f}
}

// Lookup returns the field registered under name.
func Lookup(name string) (NamedField, bool) {
	nf, ok := fields[name]
	return nf, ok
}

// FieldNames returns the registered names in sorted order.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
