package core

import (
	"fmt"
	"image/color"
)

// Frame stores an RGBA raster in row-major order, four bytes per pixel.
// The layout matches what ebiten.Image.WritePixels expects.
type Frame struct {
	W, H int
	pix  []byte
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, pix: make([]byte, 4*w*h)}
}

// WrapFrame uses pix as the backing store of a w*h frame.
func WrapFrame(w, h int, pix []byte) (*Frame, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("frame size %dx%d is not positive", w, h)
	}
	if len(pix) != 4*w*h {
		return nil, fmt.Errorf("frame buffer holds %d bytes, want %d for %dx%d", len(pix), 4*w*h, w, h)
	}
	return &Frame{W: w, H: h, pix: pix}, nil
}

// Pix exposes the backing slice.
func (f *Frame) Pix() []byte { return f.pix }

// Size returns the frame dimensions.
func (f *Frame) Size() Size { return Size{W: f.W, H: f.H} }

// In reports whether (x, y) lies inside the frame.
func (f *Frame) In(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// Offset returns the byte offset of pixel (x, y).
func (f *Frame) Offset(x, y int) int { return (y*f.W + x) * 4 }

// RGBAAt returns the pixel at (x, y), or transparent black when out of bounds.
func (f *Frame) RGBAAt(x, y int) color.RGBA {
	if !f.In(x, y) {
		return color.RGBA{}
	}
	i := f.Offset(x, y)
	p := f.pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes c at (x, y). Out-of-bounds coordinates are ignored.
func (f *Frame) Set(x, y int, c color.RGBA) {
	if !f.In(x, y) {
		return
	}
	i := f.Offset(x, y)
	p := f.pix[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// Rows returns the bytes of rows [y0, y1), clamped to the frame.
func (f *Frame) Rows(y0, y1 int) []byte {
	y0 = max(0, min(y0, f.H))
	y1 = max(y0, min(y1, f.H))
	return f.pix[y0*f.W*4 : y1*f.W*4]
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c color.RGBA) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i+0] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = c.A
	}
}

// Clear zeroes the frame.
func (f *Frame) Clear() {
	clear(f.pix)
}
