//go:build !tinygo && cgo

package hal

import (
	"fx3d/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int // canvas pixels
	Height int
	Scale  int // window zoom
	Logger *zap.Logger
}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	h := New(cfg.Width, cfg.Height, cfg.Logger).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("fx3d (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.pix = make([]byte, fb.w*fb.h*4)
		g.fbImg = ebiten.NewImage(fb.w, fb.h)
	}
	fb.toRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout keeps the logical screen at canvas size; ebiten scales it to the window.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.w, g.h.fb.h
}
