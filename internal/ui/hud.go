//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"slopefield/internal/core"
)

const (
	panelPadding = 8
	lineHeight   = 16
	panelWidth   = 240
)

var (
	panelColor = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	groupColor = color.RGBA{R: 200, G: 200, B: 120, A: 255}
)

// HUD draws the info panel in the top-left corner of the window.
type HUD struct {
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw renders snap and the smoothed frame time onto screen.
func (h *HUD) Draw(screen *ebiten.Image, snap core.ParameterSnapshot, frame time.Duration) {
	if h == nil {
		return
	}
	lines := Lines(snap, frame)
	height := panelPadding*2 + lineHeight*len(lines)
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(panelWidth, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	for i, line := range lines {
		clr := textColor
		if len(line) > 0 && line[0] != ' ' {
			clr = groupColor
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+lineHeight*(i+1)-3, clr)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}
