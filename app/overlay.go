package app

import (
	"image/color"
	"strconv"

	"fx3d/render/fx"
)

var (
	overlayFG     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	overlayShadow = color.RGBA{A: 0xFF}
)

// drawOverlay prints the frame stats in the top-left corner:
//
//	tri 42 fps 60
//	<perf entry> <ms>
//	...
func (a *App) drawOverlay() {
	d := canvasDisplay{c: a.canvas}
	m := fontMetrics()

	b := append(a.text[:0], "tri "...)
	b = strconv.AppendInt(b, int64(a.drawn), 10)
	b = append(b, " fps "...)
	b = strconv.AppendInt(b, int64(a.fps.Value()), 10)
	y := int16(1)
	a.shadowText(d, m, y, b)

	a.perf.Each(func(_ int, name string, sec fx.Fixed12) {
		y += m.height
		if int(y+m.height) > a.canvas.H {
			return
		}
		b = append(b[:0], name...)
		b = append(b, ' ')
		b = appendMillis(b, sec)
		a.shadowText(d, m, y, b)
	})
	a.text = b
}

func (a *App) shadowText(d canvasDisplay, m textMetrics, y int16, s []byte) {
	drawText(d, m, 2, y+1, s, overlayShadow)
	drawText(d, m, 1, y, s, overlayFG)
}

// appendMillis formats .12 seconds as milliseconds with one decimal.
func appendMillis(b []byte, sec fx.Fixed12) []byte {
	tenths := int64(sec) * 10000 >> fx.Shift12
	b = strconv.AppendInt(b, tenths/10, 10)
	b = append(b, '.')
	b = strconv.AppendInt(b, tenths%10, 10)
	return append(b, "ms"...)
}
