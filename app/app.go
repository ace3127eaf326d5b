// Package app is the demo console program: it owns the frame loop, feeds
// button input to the active scene, draws it through the renderer and puts
// the stats overlay on top. Any renderer fault stops the loop and leaves a
// diagnostic screen up.
package app

import (
	"errors"
	"fmt"

	"fx3d/hal"
	"fx3d/render"
	"fx3d/render/camera"
	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/raster"
	"fx3d/render/timer"
)

// Config is the app's view of the settings, already in renderer units.
type Config struct {
	Mode    camera.DisplayMode
	FOV     fx.Angle
	Near    fx.Fixed
	Far     fx.Fixed
	Scene   string
	Grid    int
	Overlay bool
}

const (
	SceneCubes    = "cubes"
	SceneMolecule = "molecule"
)

// DefaultConfig is what the console boots with when there is no config file.
func DefaultConfig() Config {
	return Config{
		Mode:    camera.ModeScaled,
		FOV:     camera.VerticalFOV43,
		Near:    fx.One,
		Far:     fx.FromInt(200),
		Scene:   SceneCubes,
		Grid:    5,
		Overlay: true,
	}
}

// Size is the canvas size the framebuffer must have.
func (c Config) Size() (w, h int) { return c.Mode.Size() }

// App is one running console program bound to a HAL.
type App struct {
	log    hal.Logger
	fb     hal.Framebuffer
	keys   <-chan hal.KeyEvent
	canvas *raster.Canvas
	rc     *render.Context
	cam    *camera.Camera

	scenes []Scene
	cur    int
	btn    buttons

	clock     timer.Timer
	perf      *timer.Registry
	perfScene int
	fps       timer.FPS
	frames    uint64
	drawn     int
	overlay   bool
	text      []byte

	halted bool
	err    *fault.Fault
}

var errFramebuffer = errors.New("app: framebuffer does not match display mode")

// NewApp builds the app and enters the configured scene. Setup faults are
// returned as errors.
func NewApp(h hal.HAL, cfg Config) (a *App, err error) {
	if f := fault.Catch(func() { a, err = newApp(h, cfg) }); f != nil {
		return nil, f
	}
	return a, err
}

func newApp(h hal.HAL, cfg Config) (*App, error) {
	w, ht := cfg.Size()
	fb := h.Display().Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 || fb.Width() != w || fb.Height() != ht {
		return nil, errFramebuffer
	}

	a := &App{
		log:     h.Logger(),
		fb:      fb,
		canvas:  &raster.Canvas{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: w, H: ht},
		cam:     camera.New(fx.Vec3{}, cfg.FOV, cfg.Near, cfg.Far, cfg.Mode),
		overlay: cfg.Overlay,
		text:    make([]byte, 0, 64),
	}
	if in := h.Input(); in != nil && in.Keyboard() != nil {
		a.keys = in.Keyboard().Events()
	}

	a.rc = render.NewContext(a.canvas)
	a.perf = timer.NewRegistry(h.Clock().Perf())
	a.rc.SetPerf(a.perf)
	a.perfScene = a.perf.Register("scene: update")

	a.scenes = []Scene{newCubeScene(cfg.Grid), newMoleculeScene()}
	a.cur = -1
	for i, s := range a.scenes {
		if s.Name() == cfg.Scene {
			a.cur = i
		}
	}
	if a.cur < 0 {
		return nil, fmt.Errorf("app: unknown scene %q", cfg.Scene)
	}

	a.clock = timer.New(h.Clock().Regular(), timer.MaxDuration, timer.Regular)
	a.enter(a.cur)
	a.logf("fx3d: %s %dx%d, scene %s", cfg.Mode, w, ht, cfg.Scene)
	return a, nil
}

// New initializes the app with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig returns the per-frame step function. A setup failure is
// logged and returned by every step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a, err := NewApp(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		return func() error { return err }
	}
	return a.Step
}

// Run drives the app and never returns (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString(err.Error())
			}
			select {}
		}
	}
}

// Step renders one frame and presents it. After a fault it does nothing.
func (a *App) Step() error {
	if a.halted {
		return nil
	}
	if f := fault.Catch(a.frame); f != nil {
		a.halt(f)
	}
	return a.fb.Present()
}

func (a *App) frame() {
	a.clock.Tick()
	if a.clock.Done() {
		a.clock.Start()
	}
	dt := a.clock.DeltaSeconds()
	a.perf.Gather()
	a.pollKeys()

	s := a.scenes[a.cur]
	a.perf.Start(a.perfScene)
	s.Update(a.cam, a.clock.Seconds(), dt, &a.btn)
	a.perf.End(a.perfScene)

	a.canvas.Fill(s.Background())
	a.rc.PrepareFrame(a.cam)
	a.drawn = s.Draw(a.rc, a.cam)

	a.fps.Update(dt)
	a.frames++
	if a.overlay {
		a.drawOverlay()
	}
}

func (a *App) pollKeys() {
	if a.keys == nil {
		return
	}
	for {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keys = nil
				return
			}
			a.btn.set(ev)
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyStart:
				a.enter((a.cur + 1) % len(a.scenes))
			case hal.KeySelect:
				a.overlay = !a.overlay
			}
		default:
			return
		}
	}
}

// enter makes scene i current and restarts the scene clock.
func (a *App) enter(i int) {
	a.cur = i
	a.btn = buttons{}
	a.scenes[i].Enter(a.cam)
	a.clock.Start()
	a.logf("scene: %s", a.scenes[i].Name())
}

func (a *App) halt(f *fault.Fault) {
	a.halted = true
	a.err = f
	a.logf("fault: %s (frame %d, scene %s)", f.Msg, a.frames, a.scenes[a.cur].Name())
	drawFaultScreen(canvasDisplay{c: a.canvas}, f.Msg, a.frames)
}

// Halted reports whether a fault stopped the app, and which.
func (a *App) Halted() (*fault.Fault, bool) { return a.err, a.halted }

// Drawn is the triangle count of the last frame.
func (a *App) Drawn() int { return a.drawn }

// Frames is the number of frames rendered so far.
func (a *App) Frames() uint64 { return a.frames }

// Scene is the name of the current scene.
func (a *App) Scene() string { return a.scenes[a.cur].Name() }

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
