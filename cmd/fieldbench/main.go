package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"log"
	"log/slog"
	"os"
	"time"

	"slopefield/internal/app"
	"slopefield/internal/core"
	_ "slopefield/internal/fields"
	"slopefield/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 120, "frames to render per field")
	all := flag.Bool("all", false, "benchmark every registered field")
	flag.Parse()

	if *frames <= 0 {
		log.Fatalf("frames %d must be positive", *frames)
	}
	names := []string{cfg.Field}
	if *all {
		names = core.FieldNames()
	}

	fmt.Printf("Rendering %d frames of %dx%d\n", *frames, cfg.Width, cfg.Height)
	for _, name := range names {
		cfg.Field = name
		r, err := cfg.NewRenderer()
		if err != nil {
			log.Fatalf("invalid configuration: %v", err)
		}
		if cfg.Verbose {
			r.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		res := run(r, *frames)
		fmt.Printf("%-10s workers=%d cold=%-10s warm=%-10s (%d frames) crc=%08x  dy/dx = %s\n",
			name, r.Config().Workers, res.cold.Round(time.Microsecond), res.warm.Round(time.Microsecond), res.warmFrames, res.checksum, r.Field().Expr)
	}
}

type result struct {
	cold     time.Duration
	warm       time.Duration
	warmFrames int
	checksum   uint32
}

// run draws n frames while the pointer sweeps the main diagonal. The first
// frame pays for the background pass and is reported separately.
func run(r *render.FieldRenderer, n int) result {
	size := r.Size()
	frame := core.NewFrame(size.W, size.H)
	warm := core.NewFrameTimer(0)

	var res result
	for i := 0; i < n; i++ {
		r.SetPointer(i*size.W/n, i*size.H/n)
		start := time.Now()
		r.Draw(frame)
		d := time.Since(start)
		if i == 0 {
			res.cold = d
			continue
		}
		warm.Observe(d)
	}
	res.warm = warm.Average()
	res.warmFrames = warm.Samples()
	res.checksum = crc32.ChecksumIEEE(frame.Pix())
	return res
}
