package render

import (
	"testing"

	"fx3d/render/camera"
	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/geom"
	"fx3d/render/model"
	"fx3d/render/raster"
	"fx3d/render/timer"
)

func setup(camPos fx.Vec3) (*Context, *camera.Camera) {
	cam := camera.New(camPos, camera.VerticalFOV43, fx.One, fx.FromInt(100), camera.ModeScaled)
	w, h := camera.ModeScaled.Size()
	ctx := NewContext(raster.NewCanvas(w, h))
	ctx.PrepareFrame(cam)
	return ctx, cam
}

// cubePool holds one cube of edge length 2 at the origin.
func cubePool(shading model.Shading) *model.Pool {
	p := model.NewPool(1)
	p.AddUniform(model.Cube(), fx.Vec3{}, fx.FromInt(4), shading)
	return p
}

func colors(c *raster.Canvas) map[geom.Color]int {
	seen := map[geom.Color]int{}
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			if col := c.At(x, y); col != 0 {
				seen[col]++
			}
		}
	}
	return seen
}

func TestBackfaceCullFront(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	n := ctx.DrawInstancePools([]*model.Pool{cubePool(model.ShadingFlat)}, cam, Lighting{})
	if n != 2 {
		t.Fatalf("drew %d triangles, want the 2 of the front face", n)
	}
	seen := colors(ctx.Canvas())
	if len(seen) != 1 || seen[geom.Cyan] == 0 {
		t.Fatalf("colors on screen: %v", seen)
	}
}

func TestBackfaceCullThreeFaces(t *testing.T) {
	ctx, cam := setup(fx.V3Int(10, 10, 10))
	n := ctx.DrawInstancePools([]*model.Pool{cubePool(model.ShadingFlat)}, cam, Lighting{})
	if n != 6 {
		t.Fatalf("drew %d triangles, want 6 (three faces)", n)
	}
	seen := colors(ctx.Canvas())
	for _, c := range []geom.Color{geom.Cyan, geom.Blue, geom.Yellow} {
		if seen[c] == 0 {
			t.Fatalf("visible face color %04x missing: %v", c, seen)
		}
	}
	for _, c := range []geom.Color{geom.Red, geom.Magenta, geom.Green} {
		if seen[c] != 0 {
			t.Fatalf("culled face color %04x drawn", c)
		}
	}
}

func TestDirectionalLight(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	light := Directional(fx.V3(0, 0, -fx.One))
	ctx.DrawInstancePools([]*model.Pool{cubePool(model.ShadingFlatLit)}, cam, light)
	seen := colors(ctx.Canvas())
	if len(seen) != 1 || seen[geom.White] == 0 {
		t.Fatalf("colors on screen: %v", seen)
	}
}

func TestPointLightAttenuation(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	light := Point(fx.V3Int(0, 0, 10), &Attenuation{Linear: fx.One / 8})
	ctx.DrawInstancePools([]*model.Pool{cubePool(model.ShadingFlatLit)}, cam, light)
	seen := colors(ctx.Canvas())
	if len(seen) != 1 || seen[geom.Gray5(13)] == 0 {
		t.Fatalf("colors on screen: %v", seen)
	}
}

func TestLitWithoutLightFaults(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	f := fault.Catch(func() {
		ctx.DrawInstancePools([]*model.Pool{cubePool(model.ShadingFlatLit)}, cam, Lighting{})
	})
	if f == nil {
		t.Fatalf("expected fault")
	}
}

func TestNearPlaneSkipsFace(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	p := model.NewPool(1)
	// The front face still faces the camera, but its vertices sit between
	// the camera and the near plane.
	p.AddUniform(model.Cube(), fx.V3(0, 0, fx.FromFloat(8.5)), fx.FromInt(4), model.ShadingFlat)
	if n := ctx.DrawInstancePools([]*model.Pool{p}, cam, Lighting{}); n != 0 {
		t.Fatalf("drew %d triangles through the near plane", n)
	}
}

func TestOffscreenSkipped(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	p := model.NewPool(2)
	p.AddUniform(model.Cube(), fx.V3Int(100, 0, 0), fx.FromInt(4), model.ShadingFlat)
	p.AddUniform(model.Cube(), fx.V3Int(0, -100, 0), fx.FromInt(4), model.ShadingFlat)
	if n := ctx.DrawInstancePools([]*model.Pool{p}, cam, Lighting{}); n != 0 {
		t.Fatalf("drew %d off-screen triangles", n)
	}
}

func TestTriangleBudgetFaults(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	p := model.NewPool(300)
	for i := 0; i < 300; i++ {
		p.AddUniform(model.Cube(), fx.Vec3{}, fx.FromInt(4), model.ShadingFlat)
	}
	f := fault.Catch(func() {
		ctx.DrawInstancePools([]*model.Pool{p}, cam, Lighting{})
	})
	if f == nil {
		t.Fatalf("expected fault past the triangle budget")
	}
}

func TestQuadFaceSplits(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	verts := []fx.Vec3{fx.V3Int(-1, -1, 0), fx.V3Int(-1, 1, 0), fx.V3Int(1, 1, 0), fx.V3Int(1, -1, 0)}
	quad := model.New(verts, []model.Face{model.Quad(0, 1, 2, 3, fx.V3(0, 0, fx.One), geom.Green)})
	p := model.NewPool(1)
	p.AddUniform(quad, fx.Vec3{}, fx.One, model.ShadingWireframe)
	if n := ctx.DrawInstancePools([]*model.Pool{p}, cam, Lighting{}); n != 2 {
		t.Fatalf("quad drew %d triangles, want 2", n)
	}
	if colors(ctx.Canvas())[geom.Green] == 0 {
		t.Fatalf("wireframe quad not drawn")
	}
}

func TestComputeFaceColor(t *testing.T) {
	n := fx.V3(0, 0, fx.One)
	tests := []struct {
		name  string
		s     model.Shading
		light fx.Vec3
		att   fx.Fixed
		want  geom.Color
	}{
		{"lit facing", model.ShadingFlatLit, n, noAttenuation, geom.Gray5(31)},
		{"lit away", model.ShadingFlatLit, n.Neg(), noAttenuation, geom.Gray5(1)},
		{"lit half", model.ShadingFlatLit, n, fx.One / 2, geom.Gray5(15)},
		{"lit faint", model.ShadingFlatLit, n, 1, geom.Gray5(1)},
		{"flat", model.ShadingFlat, n, noAttenuation, geom.Red},
		{"wire", model.ShadingWireframe, n, noAttenuation, geom.Red},
	}
	for _, tt := range tests {
		if got := ComputeFaceColor(tt.s, n, tt.light, tt.att, geom.Red); got != tt.want {
			t.Fatalf("%s: got %04x want %04x", tt.name, got, tt.want)
		}
	}
	if f := fault.Catch(func() { ComputeFaceColor(model.Shading(9), n, n, noAttenuation, geom.Red) }); f == nil {
		t.Fatalf("expected fault for unknown shading")
	}
}

func TestDrawPoints(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	ctx.DrawPoints(cam, []fx.Vec3{{}, fx.V3Int(0, 0, 20), fx.V3Int(500, 0, 0)}, geom.Yellow)
	seen := colors(ctx.Canvas())
	if seen[geom.Yellow] != 1 {
		t.Fatalf("plotted %d points, want 1", seen[geom.Yellow])
	}
	if ctx.Canvas().At(80, 50) != geom.Yellow {
		t.Fatalf("origin not at canvas center")
	}
}

type stepCounter struct{ n uint16 }

func (c *stepCounter) Count() uint16 {
	c.n += 16
	return c.n
}

func TestPerfStages(t *testing.T) {
	ctx, cam := setup(fx.V3Int(0, 0, 10))
	r := timer.NewRegistry(&stepCounter{})
	ctx.SetPerf(r)
	ctx.DrawInstancePools([]*model.Pool{cubePool(model.ShadingFlat)}, cam, Lighting{})
	r.Gather()
	if r.Len() != 3 {
		t.Fatalf("registered %d stages", r.Len())
	}
	r.Each(func(_ int, name string, sec fx.Fixed12) {
		if sec <= 0 {
			t.Fatalf("stage %q measured nothing", name)
		}
	})
}

func TestCanvasSizeMismatchFaults(t *testing.T) {
	cam := camera.New(fx.V3Int(0, 0, 10), camera.VerticalFOV43, fx.One, fx.FromInt(100), camera.ModeFull)
	ctx := NewContext(raster.NewCanvas(160, 100))
	ctx.PrepareFrame(cam)
	if f := fault.Catch(func() { ctx.DrawInstancePools(nil, cam, Lighting{}) }); f == nil {
		t.Fatalf("expected fault")
	}
}
