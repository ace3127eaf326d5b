//go:build !tinygo && !cgo

package hal

import (
	"errors"

	"go.uber.org/zap"
)

type WindowConfig struct {
	Width  int
	Height int
	Scale  int
	Logger *zap.Logger
}

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
