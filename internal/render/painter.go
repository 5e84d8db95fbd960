//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"slopefield/internal/core"
)

// Painter uploads a rendered frame into an ebiten image and draws it.
type Painter struct {
	img   *ebiten.Image
	frame *core.Frame
}

// NewPainter allocates a painter and its frame for a w*h raster.
func NewPainter(w, h int) *Painter {
	p := &Painter{frame: core.NewFrame(w, h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit renders r into the painter frame, uploads it and draws it on dst.
func (p *Painter) Blit(dst *ebiten.Image, r *FieldRenderer, scale float64) {
	r.Draw(p.frame)
	p.img.WritePixels(p.frame.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(p.img, op)
}
