// Package hal is the boundary between the renderer demo and the machine:
// a canvas-sized framebuffer, the console buttons, two free-running
// counters and a log sink. Host builds back it with ebiten and zap; TinyGo
// builds drive the PicoCalc panel and keyboard directly.
package hal

import (
	"errors"

	"fx3d/render/timer"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is the canvas memory plus a "present" hook that pushes it to
// the panel or window.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a console button.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyB
	KeyL
	KeyR
	KeyStart
	KeySelect
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyA:       "a",
	KeyB:       "b",
	KeyL:       "l",
	KeyR:       "r",
	KeyStart:   "start",
	KeySelect:  "select",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyEvent is a button edge.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides button events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

type Display interface {
	Framebuffer() Framebuffer
}

type Input interface {
	Keyboard() Keyboard
}

// Clock exposes the counters the timers run on: Regular ticks at
// timer.RegularHz, Perf at timer.PerfHz. Both wrap at 16 bits.
type Clock interface {
	Regular() timer.Counter
	Perf() timer.Counter
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}
