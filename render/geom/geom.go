// Package geom holds the screen-space leaf types shared by the clipper, the
// rasteriser and the pipeline.
package geom

import "math"

// Point is a screen pixel. Coordinates may lie outside the canvas until the
// point has been clipped.
type Point struct {
	X, Y int
}

// Unprojectable marks a vertex that was culled by the near or far plane.
var Unprojectable = Point{X: math.MinInt32, Y: math.MinInt32}

func (p Point) Projectable() bool { return p != Unprojectable }

// Bounds is the drawable rectangle [0, W) x [0, H).
type Bounds struct {
	W, H int
}

func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// Color is an RGB565 pixel value.
type Color uint16

func RGB(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// Gray5 expands a 5-bit intensity (0..31) into a gray RGB565 color.
func Gray5(v int) Color {
	if v < 0 {
		v = 0
	} else if v > 31 {
		v = 31
	}
	c := uint16(v)
	return Color(c<<11 | (c<<1|c>>4)<<5 | c)
}

// RGB888 expands c back to 8 bits per channel.
func (c Color) RGB888() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
	Yellow  = RGB(255, 255, 0)
)
