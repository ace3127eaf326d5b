//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64 // stop after N frames, 0 = run until ctx is done
	// Unpaced runs frames back to back instead of waiting for the ticker.
	Unpaced bool
	Logger  *zap.Logger
	// AfterStep, if set, runs after every frame with the frame number (1-based).
	AfterStep func(h HAL, tick uint64) error
}

// RunHeadless runs the app without opening a window. Time is simulated: every
// frame advances the clock by exactly 1/Hz.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size: %dx%d", cfg.Width, cfg.Height)
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	clk := &steppedClock{}
	h := newHost(cfg.Width, cfg.Height, cfg.Logger, clk.clock())
	step := newApp(h)

	var pace <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(d)
		defer t.Stop()
		pace = t.C
	}

	var tick uint64
	for {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		clk.advance(d)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		tick++
		if cfg.AfterStep != nil {
			if err := cfg.AfterStep(h, tick); err != nil {
				return err
			}
		}
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
