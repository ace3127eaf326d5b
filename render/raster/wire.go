package raster

import "fx3d/render/clip"

// Wireframe strokes the outline of t. Edges are clipped only when a vertex
// lies off the canvas.
func Wireframe(c *Canvas, t *Triangle) {
	b := c.Bounds()
	if b.Contains(t.Vert[0]) && b.Contains(t.Vert[1]) && b.Contains(t.Vert[2]) {
		for j := 0; j < 3; j++ {
			p, q := t.Vert[j], t.Vert[(j+1)%3]
			c.Line(p.X, p.Y, q.X, q.Y, t.Color)
		}
		return
	}
	for j := 0; j < 3; j++ {
		p, q := t.Vert[j], t.Vert[(j+1)%3]
		if clip.Line(&p, &q, b) {
			c.Line(p.X, p.Y, q.X, q.Y, t.Color)
		}
	}
}
