//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	logger tinyGoHostLogger
	fb     *memFramebuffer
	kbd    *tinyGoHostKeyboard
	clk    Clock
}

// New returns a TinyGo-on-host HAL with a w x h framebuffer.
//
// This is used by `tinygo run` targets like linux/wasm where there is no
// panel; frames are rendered and dropped.
func New(w, h int) HAL {
	return &tinyGoHostHAL{
		fb:  newMemFramebuffer(w, h),
		kbd: &tinyGoHostKeyboard{ch: make(chan KeyEvent)},
		clk: realClock(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoHostInput{kbd: h.kbd} }
func (h *tinyGoHostHAL) Clock() Clock     { return h.clk }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostInput struct {
	kbd Keyboard
}

func (in tinyGoHostInput) Keyboard() Keyboard { return in.kbd }

type tinyGoHostLogger struct{}

func (tinyGoHostLogger) WriteLineString(s string) { println(s) }
func (tinyGoHostLogger) WriteLineBytes(b []byte)  { println(string(b)) }

type tinyGoHostKeyboard struct {
	ch chan KeyEvent
}

func (k *tinyGoHostKeyboard) Events() <-chan KeyEvent { return k.ch }
