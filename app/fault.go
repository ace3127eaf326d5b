package app

import (
	"image/color"
	"strconv"
	"strings"

	"fx3d/render/geom"
)

var faultFG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// drawFaultScreen paints the canvas red and prints msg wrapped to the
// screen width, followed by the frame number.
func drawFaultScreen(d canvasDisplay, msg string, frame uint64) {
	d.c.Fill(geom.Red)

	m := fontMetrics()
	cols := 1
	if m.width > 0 {
		cols = max(1, d.c.W/int(m.width)-1)
	}

	lines := []string{"FAULT"}
	for _, part := range strings.Split(msg, "\n") {
		for part != "" {
			var chunk string
			chunk, part = takeRunes(part, cols)
			lines = append(lines, chunk)
			part = strings.TrimLeft(part, " ")
		}
	}
	lines = append(lines, "", "frame "+strconv.FormatUint(frame, 10))

	y := int16(2)
	for _, line := range lines {
		if int(y+m.height) > d.c.H {
			break
		}
		drawText(d, m, 2, y, []byte(line), faultFG)
		y += m.height
	}
}
