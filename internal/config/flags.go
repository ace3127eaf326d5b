package config

import "flag"

// Flags are the command-line overrides. Only flags that were set on the
// command line replace file values.
type Flags struct {
	fs *flag.FlagSet

	Path     string
	headless bool
	hz       int
	ticks    uint64
	mode     string
	scale    int
	scene    string
	grid     int
	overlay  bool
	debug    bool
	logFile  string
}

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "Path to config file.")
	fs.BoolVar(&f.headless, "headless", false, "Run without a window.")
	fs.IntVar(&f.hz, "hz", 60, "Frame rate in headless mode.")
	fs.Uint64Var(&f.ticks, "ticks", 0, "Stop after N frames (0 = run forever).")
	fs.StringVar(&f.mode, "mode", ModeScaled, "Display mode: scaled or full.")
	fs.IntVar(&f.scale, "scale", 4, "Window zoom factor.")
	fs.StringVar(&f.scene, "scene", SceneCubes, "Demo scene: cubes or molecule.")
	fs.IntVar(&f.grid, "grid", 5, "Cubes per side in the cube scene.")
	fs.BoolVar(&f.overlay, "overlay", true, "Draw the stats overlay.")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging.")
	fs.StringVar(&f.logFile, "log", "", "Also log to this file (rotated).")
	return f
}

// Apply copies every explicitly set flag into cfg.
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "headless":
			cfg.Run.Headless = f.headless
		case "hz":
			cfg.Run.Hz = f.hz
		case "ticks":
			cfg.Run.Ticks = f.ticks
		case "mode":
			cfg.Display.Mode = f.mode
		case "scale":
			cfg.Display.Scale = f.scale
		case "scene":
			cfg.Scene.Name = f.scene
		case "grid":
			cfg.Scene.Grid = f.grid
		case "overlay":
			cfg.Scene.Overlay = f.overlay
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		case "log":
			cfg.Logging.LogFile = f.logFile
		}
	})
}
