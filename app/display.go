package app

import (
	"image/color"
	"unicode/utf8"

	"fx3d/render/geom"
	"fx3d/render/raster"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// canvasDisplay lets tinyfont draw straight into the canvas.
type canvasDisplay struct {
	c *raster.Canvas
}

var _ drivers.Displayer = canvasDisplay{}

func (d canvasDisplay) Size() (x, y int16) { return int16(d.c.W), int16(d.c.H) }

func (d canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.c.Plot(int(x), int(y), geom.RGB(c.R, c.G, c.B))
}

// Display is a no-op: the framebuffer is presented by the frame loop.
func (d canvasDisplay) Display() error { return nil }

func (d canvasDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	col := geom.RGB(c.R, c.G, c.B)
	x0 := clampInt(int(x), 0, d.c.W)
	y0 := clampInt(int(y), 0, d.c.H)
	x1 := clampInt(int(x)+int(width), 0, d.c.W)
	y1 := clampInt(int(y)+int(height), 0, d.c.H)
	for py := y0; py < y1; py++ {
		d.c.HLine(x0, py, x1-1, col)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// textFont is the overlay and fault screen font: 3x5 glyphs on a 4x6 cell.
var textFont = &tinyfont.TomThumb

type textMetrics struct {
	width, height, offset int16
}

func fontMetrics() textMetrics {
	_, outbox := tinyfont.LineWidth(textFont, "0")
	return textMetrics{width: int16(outbox), height: int16(textFont.GetYAdvance()), offset: 5}
}

// drawText draws s on a fixed-width grid with its top-left corner at x, y.
// It takes bytes so the overlay can reuse one buffer every frame.
func drawText(d canvasDisplay, m textMetrics, x, y int16, s []byte, fg color.RGBA) {
	for len(s) > 0 {
		r, size := utf8.DecodeRune(s)
		tinyfont.DrawChar(d, textFont, x, y+m.offset, r, fg)
		x += m.width
		s = s[size:]
	}
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
