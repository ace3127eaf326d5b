//go:build tinygo && baremetal && picocalc

package hal

import (
	"fmt"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	picoCalcKeyBackspace byte = 0x08
	picoCalcKeyEsc       byte = 0xB1
	picoCalcKeyLeft      byte = 0xB4
	picoCalcKeyRight     byte = 0xB7
	picoCalcKeyUp        byte = 0xB5
	picoCalcKeyDown      byte = 0xB6
)

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (original PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write}

			// Probe the device to ensure the selected I2C instance works.
			// On boot the keyboard MCU can be slow to respond, so retry briefly.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, fmt.Errorf("keyboard: I2C unavailable")
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	if k.read[0] == 0 && k.read[1] == 0 {
		return KeyEvent{}, false
	}

	var press bool
	switch k.read[0] {
	case 0x01: // key down
		press = true
	case 0x03: // key up
		press = false
	default:
		// Held keys repeat; buttons only report edges.
		return KeyEvent{}, false
	}
	code := mapPicoCalcKey(k.read[1])
	if code == KeyUnknown {
		return KeyEvent{}, false
	}
	return KeyEvent{Code: code, Press: press}, true
}

// mapPicoCalcKey lays the console buttons over the PicoCalc keyboard:
// arrows, z/x for A/B, a/s for L/R, Enter for Start, Esc for Select.
func mapPicoCalcKey(code byte) KeyCode {
	switch code {
	case picoCalcKeyUp:
		return KeyUp
	case picoCalcKeyDown:
		return KeyDown
	case picoCalcKeyLeft:
		return KeyLeft
	case picoCalcKeyRight:
		return KeyRight
	case 'z', 'Z':
		return KeyA
	case 'x', 'X':
		return KeyB
	case 'a', 'A':
		return KeyL
	case 's', 'S':
		return KeyR
	case '\r', '\n':
		return KeyStart
	case picoCalcKeyEsc, picoCalcKeyBackspace:
		return KeySelect
	default:
		return KeyUnknown
	}
}
