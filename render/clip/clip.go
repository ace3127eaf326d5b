// Package clip clips screen-space polygons and lines against the canvas.
package clip

import (
	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/geom"
)

// MaxPolyLen is the capacity of a clip buffer. A triangle clipped against a
// rectangle yields at most 7 vertices.
const MaxPolyLen = 12

// Poly is a clip buffer. Triangle reads its input from the first three slots
// and writes the clipped polygon back into it.
type Poly [MaxPolyLen]geom.Point

type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// inside reports whether p lies on the canvas side of e. This is a
// half-plane test, not a bounds test.
func inside(p geom.Point, e Edge, b geom.Bounds) bool {
	switch e {
	case EdgeTop:
		return p.Y >= 0
	case EdgeBottom:
		return p.Y < b.H
	case EdgeLeft:
		return p.X >= 0
	case EdgeRight:
		return p.X < b.W
	}
	fault.Panic("clip: unknown edge")
	return false
}

// Intersect returns where the segment prev->cur crosses edge e. It must only
// be called when that crossing exists; a segment parallel to e faults.
func Intersect(e Edge, cur, prev geom.Point, b geom.Bounds) geom.Point {
	dx := fx.FromInt(cur.X - prev.X)
	dy := fx.FromInt(cur.Y - prev.Y)
	px, py := fx.FromInt(prev.X), fx.FromInt(prev.Y)

	switch e {
	case EdgeLeft, EdgeRight:
		fault.Check(dx != 0, "clip.Intersect: dx != 0")
		slope := fx.Div(dy, dx)
		x := 0
		if e == EdgeRight {
			x = b.W - 1
		}
		return geom.Point{X: x, Y: (fx.Mul(slope, fx.FromInt(x)-px) + py).Int()}
	case EdgeTop, EdgeBottom:
		fault.Check(dy != 0, "clip.Intersect: dy != 0")
		invSlope := fx.Div(dx, dy)
		y := 0
		if e == EdgeBottom {
			y = b.H - 1
		}
		return geom.Point{X: (fx.Mul(fx.FromInt(y)-py, invSlope) + px).Int(), Y: y}
	}
	fault.Panic("clip: unknown edge")
	return geom.Point{}
}

// Triangle clips the triangle in buf[0:3] against b using Sutherland-Hodgman
// and returns the vertex count of the result, which may be zero.
func Triangle(buf *Poly, b geom.Bounds) int {
	var in Poly
	n := 3
	for e := EdgeTop; e <= EdgeRight; e++ {
		in = *buf
		inLen := n
		n = 0
		for i := 0; i < inLen; i++ {
			prev := in[i]
			cur := in[(i+1)%inLen]
			if inside(cur, e, b) {
				if !inside(prev, e, b) {
					fault.Check(n < MaxPolyLen, "clip.Triangle: output length")
					buf[n] = Intersect(e, cur, prev, b)
					n++
				}
				fault.Check(n < MaxPolyLen, "clip.Triangle: output length")
				buf[n] = cur
				n++
			} else if inside(prev, e, b) {
				fault.Check(n < MaxPolyLen, "clip.Triangle: output length")
				buf[n] = Intersect(e, cur, prev, b)
				n++
			}
		}
	}
	// Intermediate vertices may sit off canvas; only the final set is checked.
	for i := 0; i < n; i++ {
		fault.Check(b.Contains(buf[i]), "clip.Triangle: vertex within bounds")
	}
	return n
}
