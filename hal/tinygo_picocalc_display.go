//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	lcd := &ili9488{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, 4096),
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()

	return lcd, nil
}

func (d *ili9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ili9488) init() {
	// Power control.
	d.cmd(0xC0, 0x17, 0x15) // PWCTRL1
	d.cmd(0xC1, 0x41)       // PWCTRL2

	// VCOM control.
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL

	// Pixel format: 16bpp.
	d.cmd(0x3A, 0x55) // COLMOD

	// Frame rate / display function.
	d.cmd(0xB1, 0xA0, 0x11)       // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27) // DISCTRL (320 lines)

	// Inversion mode. Many panels look correct with inversion enabled.
	d.cmd(0x21) // INVON

	// Memory access control: mirror for PicoCalc wiring + BGR panel order.
	d.cmd(0x36, 0x40|0x04|0x08) // MX|MH|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) setWindow(x0, y0, x1, y1 uint16) {
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

const (
	panelW = 320
	panelH = 320
)

// fillBlack clears the whole panel; the letterbox bars are never redrawn.
func (d *ili9488) fillBlack() {
	d.setWindow(0, 0, panelW-1, panelH-1)
	for i := range d.txBuf {
		d.txBuf[i] = 0
	}
	d.cs.Low()
	d.dc.High()
	for n := panelW * panelH * 2; n > 0; {
		c := len(d.txBuf)
		if c > n {
			c = n
		}
		d.spi.Tx(d.txBuf[:c], nil)
		n -= c
	}
	d.cs.High()
}

// blitScaled sends a little-endian RGB565 canvas to the panel, each pixel
// repeated s times in both directions, centered.
func (d *ili9488) blitScaled(buf []byte, w, h int) error {
	if w <= 0 || h <= 0 || len(buf) < w*h*2 {
		return errors.New("invalid framebuffer")
	}
	s := panelW / w
	if t := panelH / h; t < s {
		s = t
	}
	if s < 1 {
		return errors.New("canvas larger than panel")
	}
	row := w * s * 2
	if row > len(d.txBuf) {
		return errors.New("tx buffer too small")
	}

	x0 := (panelW - w*s) / 2
	y0 := (panelH - h*s) / 2
	d.setWindow(uint16(x0), uint16(y0), uint16(x0+w*s-1), uint16(y0+h*s-1))

	d.cs.Low()
	d.dc.High()
	line := d.txBuf[:row]
	for y := 0; y < h; y++ {
		src := buf[y*w*2 : (y+1)*w*2]
		j := 0
		for i := 0; i < len(src); i += 2 {
			// Canvas is little-endian, the panel wants big-endian.
			for k := 0; k < s; k++ {
				line[j] = src[i+1]
				line[j+1] = src[i]
				j += 2
			}
		}
		for k := 0; k < s; k++ {
			d.spi.Tx(line, nil)
		}
	}
	d.cs.High()
	return nil
}
