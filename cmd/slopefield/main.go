//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"slopefield/internal/app"
	_ "slopefield/internal/fields"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	r, err := cfg.NewRenderer()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.Verbose {
		r.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	game := app.New(r, cfg.HUD)
	size := r.Size()

	ebiten.SetWindowTitle("Slope Fields: dy/dx = " + r.Field().Expr)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W, size.H)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
