//go:build !tinygo

// Command fxsnap renders a scene headless for a number of frames and saves
// the last frame as a BMP.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"fx3d/app"
	"fx3d/hal"
	"fx3d/internal/config"
	"fx3d/internal/logger"
	"fx3d/render/geom"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"
)

const defaultFrames = 60

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "fxsnap: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("fxsnap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outPath := fs.String("out", "snap.bmp", "Output BMP file.")
	fl := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fl.Path)
	if err != nil {
		return err
	}
	fl.Apply(cfg)
	frames := cfg.Run.Ticks
	if frames == 0 {
		frames = defaultFrames
	}

	if err := logger.InitWithOptions(logger.Options{Level: cfg.Logging.Level, Console: stderr}); err != nil {
		return err
	}
	defer logger.Sync()

	acfg, err := app.FromConfig(cfg)
	if err != nil {
		return err
	}
	w, h := acfg.Size()

	err = hal.RunHeadless(context.Background(), func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}, hal.HeadlessConfig{
		Width:   w,
		Height:  h,
		Hz:      cfg.Run.Hz,
		Ticks:   frames,
		Unpaced: true,
		Logger:  logger.Named("hal"),
		AfterStep: func(h hal.HAL, tick uint64) error {
			if tick < frames {
				return nil
			}
			return writeSnapshot(*outPath, h.Display().Framebuffer())
		},
	})
	if err != nil {
		return err
	}
	logger.Info("snapshot written",
		zap.String("path", *outPath),
		zap.String("scene", cfg.Scene.Name),
		zap.Uint64("frames", frames),
	)
	return nil
}

func writeSnapshot(path string, fb hal.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := bmp.Encode(f, toImage(fb)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}

// toImage expands the RGB565 framebuffer to an RGBA image.
func toImage(fb hal.Framebuffer) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf, stride := fb.Buffer(), fb.StrideBytes()
	for y := 0; y < h; y++ {
		row := buf[y*stride:]
		for x := 0; x < w; x++ {
			c := geom.Color(uint16(row[2*x]) | uint16(row[2*x+1])<<8)
			r, g, b := c.RGB888()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img
}
