//go:build !tinygo

package app

import (
	"fmt"

	"fx3d/internal/config"
	"fx3d/render/camera"
	"fx3d/render/fx"
)

// FromConfig validates the host settings and converts them to renderer units.
func FromConfig(c *config.Config) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	var mode camera.DisplayMode
	switch c.Display.Mode {
	case config.ModeScaled:
		mode = camera.ModeScaled
	case config.ModeFull:
		mode = camera.ModeFull
	default:
		return Config{}, fmt.Errorf("app: display mode %q", c.Display.Mode)
	}
	return Config{
		Mode:    mode,
		FOV:     fx.Deg(c.Display.FOV),
		Near:    fx.FromFloat(c.Display.Near),
		Far:     fx.FromFloat(c.Display.Far),
		Scene:   c.Scene.Name,
		Grid:    c.Scene.Grid,
		Overlay: c.Scene.Overlay,
	}, nil
}
