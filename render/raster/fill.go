package raster

import "fx3d/render/geom"

// Flat triangle filler after Mats Byggmastar's fatmap notes: walk the left
// and right edges with a .16 fixed-point DDA and fill one span per row. The
// middle vertex side is picked with a cross product instead of the longest
// scanline. Rows and spans off the canvas are clipped here.

func ceil16(n int) int { return (n + 0xFFFF) >> 16 }

type section struct {
	verts  [3]*geom.Point
	idx    int
	height int
	x      int // .16
	dx     int // .16
}

// Filler holds the DDA state of one fill. Keep one per renderer.
type Filler struct {
	left, right section
	h           int
}

// calc sets up the section from verts[idx] down to verts[idx-1] and returns
// its clipped height.
func (f *Filler) calc(s *section) int {
	v1 := s.verts[s.idx]
	v2 := s.verts[s.idx-1]
	height := v2.Y - v1.Y
	if height == 0 {
		return 0
	}
	s.dx = ((v2.X - v1.X) << 16) / height
	s.x = v1.X << 16
	if dy := max(0, v1.Y) - v1.Y; dy != 0 {
		s.x += dy * s.dx
	}
	s.height = min(f.h, v2.Y) - max(0, v1.Y)
	return s.height
}

// Fill draws t as a solid triangle.
func (f *Filler) Fill(c *Canvas, t *Triangle) {
	v1, v2, v3 := &t.Vert[0], &t.Vert[1], &t.Vert[2]
	if v1.Y > v2.Y {
		v1, v2 = v2, v1
	}
	if v1.Y > v3.Y {
		v1, v3 = v3, v1
	}
	if v2.Y > v3.Y {
		v2, v3 = v3, v2
	}
	if v1.Y >= c.H-1 {
		return
	}
	if v3.Y-v1.Y == 0 {
		return
	}
	f.h = c.H

	dx1, dy1 := v2.X-v1.X, v2.Y-v1.Y
	dx2, dy2 := v3.X-v1.X, v3.Y-v1.Y
	long, short := &f.left, &f.right
	if dx1*dy2-dy1*dx2 <= 0 {
		long, short = short, long
	}
	// The short side has two sections, the long side one.
	short.verts = [3]*geom.Point{v3, v2, v1}
	short.idx = 2
	long.verts = [3]*geom.Point{v3, v1, nil}
	long.idx = 1

	if f.calc(long) <= 0 {
		return
	}
	if f.calc(short) <= 0 {
		// Flat top, or the first section is above the canvas.
		short.idx--
		if f.calc(short) <= 0 {
			return
		}
	}

	col := t.Color
	for y := max(0, v1.Y); ; y++ {
		x1 := ceil16(f.left.x)
		x2 := ceil16(f.right.x) - 1
		if !(x1 < 0 && x2 < 0) && !(x1 >= c.W && x2 >= c.W) {
			c.HLine(max(0, x1), y, min(c.W-1, x2), col)
		}
		if !f.step(&f.left) || !f.step(&f.right) {
			return
		}
	}
}

// step advances s by one row and reports false once the triangle is done.
func (f *Filler) step(s *section) bool {
	s.height--
	if s.height > 0 {
		s.x += s.dx
		return true
	}
	s.idx--
	if s.idx <= 0 {
		return false
	}
	return f.calc(s) > 0
}
