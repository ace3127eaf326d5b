package clip

import (
	"fx3d/render/fault"
	"fx3d/render/geom"
)

const maxLineIterations = 32

type outcode uint8

const (
	outTop outcode = 1 << iota
	outBottom
	outLeft
	outRight
)

func code(p geom.Point, b geom.Bounds) outcode {
	var c outcode
	if p.Y < 0 {
		c |= outTop
	} else if p.Y >= b.H {
		c |= outBottom
	}
	if p.X < 0 {
		c |= outLeft
	} else if p.X >= b.W {
		c |= outRight
	}
	return c
}

// Line clips the segment a-b against the canvas with Cohen-Sutherland. It
// moves the endpoints in place and reports whether anything is left to draw.
func Line(a, b *geom.Point, bounds geom.Bounds) bool {
	ca, cb := code(*a, bounds), code(*b, bounds)
	for i := 0; i < maxLineIterations; i++ {
		if ca|cb == 0 {
			return true
		}
		if ca&cb != 0 {
			return false
		}
		p, c := a, ca
		other := *b
		if c == 0 {
			p, c = b, cb
			other = *a
		}
		var e Edge
		switch {
		case c&outTop != 0:
			e = EdgeTop
		case c&outBottom != 0:
			e = EdgeBottom
		case c&outLeft != 0:
			e = EdgeLeft
		default:
			e = EdgeRight
		}
		*p = Intersect(e, other, *p, bounds)
		if p == a {
			ca = code(*a, bounds)
		} else {
			cb = code(*b, bounds)
		}
	}
	fault.Panic("clip.Line: iteration limit exceeded")
	return false
}
