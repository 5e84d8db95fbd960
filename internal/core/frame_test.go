package core

import (
	"image/color"
	"testing"
)

func TestFrameSetAndAt(t *testing.T) {
	f := NewFrame(4, 3)
	red := color.RGBA{R: 255, A: 255}
	f.Set(2, 1, red)

	if got := f.RGBAAt(2, 1); got != red {
		t.Fatalf("RGBAAt(2,1) = %v, want %v", got, red)
	}
	off := f.Offset(2, 1)
	if off != (1*4+2)*4 {
		t.Fatalf("Offset(2,1) = %d, want row-major offset %d", off, (1*4+2)*4)
	}
	if f.Pix()[off] != 255 || f.Pix()[off+3] != 255 {
		t.Fatalf("backing bytes not written at offset %d", off)
	}
}

func TestFrameIgnoresOutOfBounds(t *testing.T) {
	f := NewFrame(2, 2)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-100, 5000}} {
		f.Set(p[0], p[1], white)
		if got := f.RGBAAt(p[0], p[1]); got != (color.RGBA{}) {
			t.Fatalf("RGBAAt(%d,%d) = %v, want zero", p[0], p[1], got)
		}
	}
	for i, b := range f.Pix() {
		if b != 0 {
			t.Fatalf("byte %d = %d after out-of-bounds writes, want 0", i, b)
		}
	}
}

func TestWrapFrameChecksLength(t *testing.T) {
	if _, err := WrapFrame(3, 3, make([]byte, 35)); err == nil {
		t.Fatal("expected error for short buffer")
	}
	if _, err := WrapFrame(0, 3, nil); err == nil {
		t.Fatal("expected error for zero width")
	}
	buf := make([]byte, 36)
	f, err := WrapFrame(3, 3, buf)
	if err != nil {
		t.Fatalf("WrapFrame: %v", err)
	}
	f.Set(0, 0, color.RGBA{R: 7, A: 255})
	if buf[0] != 7 {
		t.Fatal("wrapped frame must share the caller's buffer")
	}
}

func TestFrameRowsClamped(t *testing.T) {
	f := NewFrame(5, 4)
	if got := len(f.Rows(1, 3)); got != 2*5*4 {
		t.Fatalf("len(Rows(1,3)) = %d, want %d", got, 2*5*4)
	}
	if got := len(f.Rows(-3, 100)); got != len(f.Pix()) {
		t.Fatalf("len(Rows(-3,100)) = %d, want %d", got, len(f.Pix()))
	}
	if got := len(f.Rows(3, 1)); got != 0 {
		t.Fatalf("len(Rows(3,1)) = %d, want 0", got)
	}
}

func TestFrameFill(t *testing.T) {
	f := NewFrame(3, 2)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	f.Fill(c)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if got := f.RGBAAt(x, y); got != c {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
	f.Clear()
	if got := f.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Fatalf("Clear left %v", got)
	}
}
