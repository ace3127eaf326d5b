//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fx3d/app"
	"fx3d/hal"
	"fx3d/internal/buildinfo"
	"fx3d/internal/config"
	"fx3d/internal/logger"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fl := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(fl.Path)
	if err != nil {
		return err
	}
	fl.Apply(cfg)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()

	acfg, err := app.FromConfig(cfg)
	if err != nil {
		return err
	}
	w, h := acfg.Size()
	logger.Info("starting",
		zap.String("version", buildinfo.Short()),
		zap.String("mode", cfg.Display.Mode),
		zap.String("scene", cfg.Scene.Name),
		zap.Bool("headless", cfg.Run.Headless),
	)

	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, acfg) }

	if cfg.Run.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  w,
			Height: h,
			Hz:     cfg.Run.Hz,
			Ticks:  cfg.Run.Ticks,
			Logger: logger.Named("hal"),
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return hal.RunWindow(hal.WindowConfig{
		Width:  w,
		Height: h,
		Scale:  cfg.Display.Scale,
		Logger: logger.Named("hal"),
	}, newApp)
}
