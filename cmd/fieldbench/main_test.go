package main

import (
	"testing"

	"slopefield/internal/core"
	"slopefield/internal/fields"
	"slopefield/internal/render"
)

func TestRunIsReproducible(t *testing.T) {
	nf, ok := core.Lookup(fields.Default)
	if !ok {
		t.Fatal("default field not registered")
	}
	cfg := core.Config{Width: 120, Height: 90, Range: 10, Workers: 3}
	a := run(render.New(cfg, nf, render.DefaultOptions()), 5)
	b := run(render.New(cfg, nf, render.DefaultOptions()), 5)
	if a.warmFrames != 4 {
		t.Fatalf("warm frames = %d, want 4", a.warmFrames)
	}
	if a.checksum != b.checksum {
		t.Fatalf("checksums differ: %08x vs %08x", a.checksum, b.checksum)
	}
}
