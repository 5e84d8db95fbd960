//go:build ebiten

package app

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"slopefield/internal/core"
	"slopefield/internal/fields"
	"slopefield/internal/render"
	"slopefield/internal/ui"
)

const sensitivityStep = 0.05

// Game adapts a FieldRenderer to the ebiten.Game interface.
type Game struct {
	renderer *render.FieldRenderer
	painter  *render.Painter
	hud      *ui.HUD
	timer    *core.FrameTimer

	showHUD bool
}

// New constructs a Game for the provided renderer.
func New(r *render.FieldRenderer, showHUD bool) *Game {
	size := r.Size()
	return &Game{
		renderer: r,
		painter:  render.NewPainter(size.W, size.H),
		hud:      ui.NewHUD(),
		timer:    core.NewFrameTimer(0.1),
		showHUD:  showHUD,
	}
}

// Update handles keyboard input and feeds the pointer to the renderer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.cycleField(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.cycleField(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.adjustSensitivity(sensitivityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.adjustSensitivity(-sensitivityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o := g.renderer.Options()
		o.Arrows = !o.Arrows
		g.renderer.SetOptions(o)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.renderer.SetPointer(ebiten.CursorPosition())
	return nil
}

func (g *Game) cycleField(step int) {
	name := fields.Next(g.renderer.Field().Name, step)
	if nf, ok := core.Lookup(name); ok {
		g.renderer.SetField(nf)
		ebiten.SetWindowTitle("Slope Fields: dy/dx = " + nf.Expr)
	}
}

func (g *Game) adjustSensitivity(delta float64) {
	s := g.renderer.Shader()
	s.Sensitivity = math.Max(sensitivityStep, s.Sensitivity+delta)
	g.renderer.SetShader(s)
}

// Draw renders the slope field and the info panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.timer.Start()
	g.painter.Blit(screen, g.renderer, 1)
	g.timer.Stop()
	if g.showHUD {
		g.hud.Draw(screen, g.renderer.Parameters(), g.timer.Average())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.renderer.Size()
	return s.W, s.H
}
