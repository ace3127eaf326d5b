// Package raster turns screen-space triangles into pixels: the depth
// ordering table, the scanline filler and the wireframe path.
package raster

import "fx3d/render/geom"

// Canvas is an RGB565 little-endian pixel buffer. The host HAL framebuffer
// and the offscreen snapshot buffer are both viewed through it.
type Canvas struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewCanvas allocates a tightly packed w x h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func (c *Canvas) Bounds() geom.Bounds { return geom.Bounds{W: c.W, H: c.H} }

func (c *Canvas) Fill(col geom.Color) {
	lo, hi := byte(col), byte(col>>8)
	for y := 0; y < c.H; y++ {
		row := c.Buf[y*c.Stride : y*c.Stride+c.W*2]
		for i := 0; i < len(row); i += 2 {
			row[i] = lo
			row[i+1] = hi
		}
	}
}

// Plot sets one pixel; coordinates off the canvas are ignored.
func (c *Canvas) Plot(x, y int, col geom.Color) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	off := y*c.Stride + x*2
	c.Buf[off] = byte(col)
	c.Buf[off+1] = byte(col >> 8)
}

func (c *Canvas) At(x, y int) geom.Color {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return 0
	}
	off := y*c.Stride + x*2
	return geom.Color(c.Buf[off]) | geom.Color(c.Buf[off+1])<<8
}

// HLine fills [x1, x2] on row y. The caller guarantees 0 <= x1, x2 < W and
// 0 <= y < H. The span is not normalised: when x2 < x1 nothing is drawn.
func (c *Canvas) HLine(x1, y, x2 int, col geom.Color) {
	if x2 < x1 {
		return
	}
	lo, hi := byte(col), byte(col>>8)
	row := c.Buf[y*c.Stride+x1*2 : y*c.Stride+(x2+1)*2]
	for i := 0; i < len(row); i += 2 {
		row[i] = lo
		row[i+1] = hi
	}
}

// Line draws a Bresenham line. Pixels off the canvas are dropped.
func (c *Canvas) Line(x0, y0, x1, y1 int, col geom.Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Plot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
