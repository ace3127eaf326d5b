//go:build tinygo && baremetal && !picocalc

package hal

import "machine"

type picoHAL struct {
	logger *uartLogger
	fb     *memFramebuffer
	kbd    Keyboard
	clk    Clock
}

// New returns a HAL for a bare Pico 2 (RP2350) with no panel attached. Frames
// are rendered into memory and the on-board LED toggles every 32 presents,
// so a running renderer is visible without a display.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New(w, h int) HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	fb := newMemFramebuffer(w, h)
	var frames uint32
	fb.present = func([]byte, int, int) error {
		frames++
		led.Set(frames&32 != 0)
		return nil
	}

	return &picoHAL{
		logger: &uartLogger{uart: uart},
		fb:     fb,
		kbd:    &stubKeyboard{},
		clk:    realClock(),
	}
}

func (h *picoHAL) Logger() Logger   { return h.logger }
func (h *picoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoHAL) Clock() Clock     { return h.clk }
