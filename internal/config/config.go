// Package config holds the host settings: display, demo scene, run loop and
// logging. Values come from defaults, then a YAML file, then flags.
package config

import (
	"errors"
	"fmt"
)

type Config struct {
	Display DisplayConfig `yaml:"display"`
	Scene   SceneConfig   `yaml:"scene"`
	Run     RunConfig     `yaml:"run"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig selects the canvas and the camera frustum.
type DisplayConfig struct {
	Mode  string  `yaml:"mode"`  // "scaled" (160x100) or "full" (240x160)
	Scale int     `yaml:"scale"` // host window zoom
	FOV   int     `yaml:"fov"`   // vertical, degrees
	Near  float32 `yaml:"near"`
	Far   float32 `yaml:"far"`
}

type SceneConfig struct {
	Name    string `yaml:"name"` // "cubes" or "molecule"
	Grid    int    `yaml:"grid"` // cubes per side in the cube scene
	Overlay bool   `yaml:"overlay"`
}

// RunConfig drives the host loop.
type RunConfig struct {
	Headless bool   `yaml:"headless"`
	Hz       int    `yaml:"hz"`
	Ticks    uint64 `yaml:"ticks"` // stop after N frames, 0 = forever
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

const (
	ModeScaled = "scaled"
	ModeFull   = "full"

	SceneCubes    = "cubes"
	SceneMolecule = "molecule"

	// MaxGrid keeps the cube scene inside the per-frame triangle budget:
	// 9x9 cubes show at most three faces each.
	MaxGrid = 9

	MaxFar = 256
)

// Default returns the settings the console ships with.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Mode:  ModeScaled,
			Scale: 4,
			FOV:   43,
			Near:  1,
			Far:   200,
		},
		Scene: SceneConfig{
			Name:    SceneCubes,
			Grid:    5,
			Overlay: true,
		},
		Run: RunConfig{
			Hz: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

var errInvalid = errors.New("invalid config")

// Validate rejects settings the renderer would fault on.
func (c *Config) Validate() error {
	switch c.Display.Mode {
	case ModeScaled, ModeFull:
	default:
		return fmt.Errorf("%w: display.mode %q", errInvalid, c.Display.Mode)
	}
	if c.Display.Scale < 1 || c.Display.Scale > 8 {
		return fmt.Errorf("%w: display.scale %d not in 1..8", errInvalid, c.Display.Scale)
	}
	if c.Display.FOV < 1 || c.Display.FOV > 179 {
		return fmt.Errorf("%w: display.fov %d not in 1..179", errInvalid, c.Display.FOV)
	}
	if c.Display.Near <= 0 || c.Display.Far <= c.Display.Near {
		return fmt.Errorf("%w: need 0 < near < far, got %g, %g", errInvalid, c.Display.Near, c.Display.Far)
	}
	// The depth ordering table covers 256 units.
	if c.Display.Far >= MaxFar {
		return fmt.Errorf("%w: display.far %g too large", errInvalid, c.Display.Far)
	}
	switch c.Scene.Name {
	case SceneCubes, SceneMolecule:
	default:
		return fmt.Errorf("%w: scene.name %q", errInvalid, c.Scene.Name)
	}
	if c.Scene.Grid < 1 || c.Scene.Grid > MaxGrid {
		return fmt.Errorf("%w: scene.grid %d not in 1..%d", errInvalid, c.Scene.Grid, MaxGrid)
	}
	if c.Run.Hz <= 0 {
		return fmt.Errorf("%w: run.hz %d", errInvalid, c.Run.Hz)
	}
	return nil
}
