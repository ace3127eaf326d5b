//go:build !tinygo

package hal

import (
	"time"

	"go.uber.org/zap"
)

type hostHAL struct {
	logger *hostLogger
	fb     *memFramebuffer
	kbd    *hostKeyboard
	clk    Clock
}

// New returns a host HAL with a w x h framebuffer running on the wall clock.
// A nil log discards log lines.
func New(w, h int, log *zap.Logger) HAL {
	return newHost(w, h, log, realClock())
}

func newHost(w, h int, log *zap.Logger, clk Clock) *hostHAL {
	if log == nil {
		log = zap.NewNop()
	}
	return &hostHAL{
		logger: &hostLogger{l: log.Named("app")},
		fb:     newMemFramebuffer(w, h),
		kbd:    newHostKeyboard(),
		clk:    clk,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock     { return h.clk }

type hostDisplay struct {
	fb *memFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// hostLogger forwards app log lines to zap at info level.
type hostLogger struct {
	l *zap.Logger
}

func (l *hostLogger) WriteLineString(s string) { l.l.Info(s) }
func (l *hostLogger) WriteLineBytes(b []byte)  { l.l.Info(string(b)) }

// steppedClock advances only when told to, one frame at a time. Headless runs
// use it so that frame N always sees the same timer values.
type steppedClock struct {
	elapsed time.Duration
}

func (c *steppedClock) advance(d time.Duration) { c.elapsed += d }

func (c *steppedClock) clock() elapsedClock {
	return elapsedClock{since: func() time.Duration { return c.elapsed }}
}
