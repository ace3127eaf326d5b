// Package render is the transform and cull stage of the pipeline. It turns
// pools of posed instances into screen triangles, orders them by depth and
// hands them to the rasteriser.
//
// A frame is:
//
//	ctx.PrepareFrame(cam)
//	ctx.DrawInstancePools(pools, cam, light)
//	ctx.DrawPoints(cam, points, color) // optional
//
// Nothing here allocates once the Context exists.
package render

import (
	"fx3d/render/camera"
	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/geom"
	"fx3d/render/model"
	"fx3d/render/raster"
	"fx3d/render/timer"
)

// Context owns every buffer a frame needs. Keep one per canvas.
type Context struct {
	canvas *raster.Canvas
	ot     raster.OrderingTable
	filler raster.Filler

	camSpace [model.MaxVerts]fx.Vec3
	world    [model.MaxVerts]fx.Vec3
	proj     [model.MaxVerts]geom.Point

	perf                           *timer.Registry
	perfTotal, perfXform, perfFill int
	drawn                          int
}

func NewContext(canvas *raster.Canvas) *Context {
	c := &Context{canvas: canvas}
	c.ot.Clear()
	return c
}

func (c *Context) Canvas() *raster.Canvas { return c.canvas }

// SetPerf registers the stage timers with r. A nil registry turns
// instrumentation off.
func (c *Context) SetPerf(r *timer.Registry) {
	c.perf = r
	if r == nil {
		return
	}
	c.perfTotal = r.Register("render: total")
	c.perfXform = r.Register("render: transform")
	c.perfFill = r.Register("render: fill")
}

// Drawn is the triangle count of the last DrawInstancePools call.
func (c *Context) Drawn() int { return c.drawn }

func (c *Context) perfStart(id int) {
	if c.perf != nil {
		c.perf.Start(id)
	}
}

func (c *Context) perfEnd(id int) {
	if c.perf != nil {
		c.perf.End(id)
	}
}

// PrepareFrame recomputes the camera's view from its pose. Call it once per
// frame before drawing.
func (c *Context) PrepareFrame(cam *camera.Camera) {
	cam.ComputeWorldToCamera()
}

// DrawInstancePools transforms, culls, orders and draws every live instance
// of pools. It returns the number of triangles drawn.
func (c *Context) DrawInstancePools(pools []*model.Pool, cam *camera.Camera, light Lighting) int {
	fault.Check(cam.Bounds() == c.canvas.Bounds(), "render: camera and canvas sizes match")
	c.perfStart(c.perfTotal)
	c.ot.Clear()

	c.perfStart(c.perfXform)
	for _, p := range pools {
		for i := 0; i < p.Cap(); i++ {
			inst, ok := p.At(i)
			if !ok {
				continue
			}
			c.prepareInstance(inst, cam, &light)
		}
	}
	c.perfEnd(c.perfXform)

	c.perfStart(c.perfFill)
	c.ot.Walk(c.drawTriangle)
	c.perfEnd(c.perfFill)

	c.drawn = c.ot.Len()
	c.perfEnd(c.perfTotal)
	return c.drawn
}

func (c *Context) drawTriangle(t *raster.Triangle) {
	switch t.Shading {
	case model.ShadingFlat, model.ShadingFlatLit:
		c.filler.Fill(c.canvas, t)
	default:
		raster.Wireframe(c.canvas, t)
	}
}

// prepareInstance pushes the visible faces of inst into the ordering table.
func (c *Context) prepareInstance(inst *model.Instance, cam *camera.Camera, light *Lighting) {
	m := inst.Model
	rot := fx.Mat4YawPitchRoll(inst.Yaw, inst.Pitch, inst.Roll)

	for i, v := range m.Verts {
		// Translation stays out of rot so rot can be reused on the normals.
		w := rot.Transform(v.Mul(inst.Scale)).Add(inst.Pos)
		c.world[i] = w
		cs := cam.World2Cam.Transform(w)
		c.camSpace[i] = cs
		if cam.NearFarCulled(cs) {
			c.proj[i] = geom.Unprojectable
		} else {
			c.proj[i] = cam.Project(cs)
		}
	}

	var lightDir fx.Vec3
	att := noAttenuation
	if inst.Shading == model.ShadingFlatLit {
		lightDir, att = instanceLight(light, inst.Pos)
	}

	b := c.canvas.Bounds()
	for fi := range m.Faces {
		f := &m.Faces[fi]
		normal := rot.Rotate(f.Normal)
		toCam := cam.Pos.Sub(c.world[f.Index[0]])
		if fx.Dot(normal, toCam) <= 0 {
			continue
		}
		n := f.NumVerts()
		visible := true
		for _, idx := range f.Index[:n] {
			// No near-plane clipping: a face touching a culled vertex goes.
			if !c.proj[idx].Projectable() {
				visible = false
				break
			}
		}
		if !visible {
			continue
		}

		t := raster.Triangle{
			Color:   ComputeFaceColor(inst.Shading, normal, lightDir, att, f.Color),
			Shading: inst.Shading,
			Depth:   c.camSpace[f.Index[0]].Z,
		}
		c.emit(&t, f.Index[0], f.Index[1], f.Index[2], b)
		if f.Kind == model.FaceQuad {
			c.emit(&t, f.Index[0], f.Index[2], f.Index[3], b)
		}
	}
}

func (c *Context) emit(t *raster.Triangle, i0, i1, i2 int, b geom.Bounds) {
	t.Vert = [3]geom.Point{c.proj[i0], c.proj[i1], c.proj[i2]}
	if outside(&t.Vert, b) {
		return
	}
	c.ot.Insert(t)
}

// outside reports whether all three points lie beyond the same canvas edge.
func outside(v *[3]geom.Point, b geom.Bounds) bool {
	switch {
	case v[0].X < 0 && v[1].X < 0 && v[2].X < 0:
		return true
	case v[0].X >= b.W && v[1].X >= b.W && v[2].X >= b.W:
		return true
	case v[0].Y < 0 && v[1].Y < 0 && v[2].Y < 0:
		return true
	case v[0].Y >= b.H && v[1].Y >= b.H && v[2].Y >= b.H:
		return true
	}
	return false
}

// DrawPoints plots every point of points that lies inside the frustum.
func (c *Context) DrawPoints(cam *camera.Camera, points []fx.Vec3, col geom.Color) {
	for _, p := range points {
		pt, ok := cam.ProjectPoint(cam.World2Cam.Transform(p))
		if !ok {
			continue
		}
		c.canvas.Plot(pt.X, pt.Y, col)
	}
}
