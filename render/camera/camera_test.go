package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/geom"
)

func newTestCamera(pos fx.Vec3) *Camera {
	c := New(pos, VerticalFOV43, fx.One, fx.FromInt(100), ModeScaled)
	c.ComputeWorldToCamera()
	return c
}

func TestDisplayModeSize(t *testing.T) {
	if w, h := ModeScaled.Size(); w != 160 || h != 100 {
		t.Fatalf("scaled = %dx%d", w, h)
	}
	if w, h := ModeFull.Size(); w != 240 || h != 160 {
		t.Fatalf("full = %dx%d", w, h)
	}
	if f := fault.Catch(func() { New(fx.Vec3{}, VerticalFOV43, fx.One, fx.FromInt(10), DisplayMode(9)) }); f == nil {
		t.Fatalf("expected fault for unknown mode")
	}
}

func TestCenterProjectsToCanvasCenter(t *testing.T) {
	c := newTestCamera(fx.V3Int(0, 0, 10))
	v := c.World2Cam.Transform(fx.Vec3{})
	if v != fx.V3Int(0, 0, -10) {
		t.Fatalf("origin in camera space = %+v", v)
	}
	if p := c.Project(v); p != (geom.Point{X: 80, Y: 50}) {
		t.Fatalf("Project = %v", p)
	}
}

func TestYAxisPointsUpOnScreen(t *testing.T) {
	c := newTestCamera(fx.V3Int(0, 0, 10))
	up := c.Project(c.World2Cam.Transform(fx.V3Int(0, 1, 0)))
	right := c.Project(c.World2Cam.Transform(fx.V3Int(1, 0, 0)))
	if up.Y >= 50 || up.X != 80 {
		t.Fatalf("+Y projected to %v", up)
	}
	if right.X <= 80 || right.Y != 50 {
		t.Fatalf("+X projected to %v", right)
	}
}

func TestMatrixAndScalarProjectionAgree(t *testing.T) {
	for _, pos := range []fx.Vec3{fx.V3Int(0, 0, 10), fx.V3Int(5, 3, 8)} {
		c := newTestCamera(pos)
		for _, wp := range []fx.Vec3{
			{},
			fx.V3Int(1, 0, 0),
			fx.V3Int(0, 1, 0),
			fx.V3Int(-2, 1, -1),
			fx.V3Int(3, -2, 2),
		} {
			v := c.World2Cam.Transform(wp)
			a, b := c.Project(v), c.ProjectMatrix(v)
			if abs(a.X-b.X) > 1 || abs(a.Y-b.Y) > 1 {
				t.Fatalf("pos %+v point %+v: scalar %v matrix %v", pos, wp, a, b)
			}
		}
	}
}

func TestWorldToCameraMatchesLookAt(t *testing.T) {
	c := newTestCamera(fx.V3Int(5, 3, 8))
	ref := mgl32.LookAtV(mgl32.Vec3{5, 3, 8}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			got := c.World2Cam.At(row, col).Float32()
			if d := got - ref.At(row, col); d > 0.06 || d < -0.06 {
				t.Fatalf("(%d,%d) = %v, want %v", row, col, got, ref.At(row, col))
			}
		}
	}
	if c.Singular() {
		t.Fatalf("diagonal camera reported singular")
	}
}

func TestSingularityUsesSubstituteBasis(t *testing.T) {
	for _, y := range []int{10, -10} {
		c := newTestCamera(fx.V3Int(0, y, 0))
		if !c.Singular() {
			t.Fatalf("y=%d: expected singular basis", y)
		}
		if v := c.World2Cam.Transform(fx.Vec3{}); v != fx.V3Int(0, 0, -10) {
			t.Fatalf("y=%d: origin in camera space = %+v", y, v)
		}
	}
}

func TestNearFarCulled(t *testing.T) {
	c := newTestCamera(fx.V3Int(0, 0, 10))
	tests := []struct {
		z    fx.Fixed
		want bool
	}{
		{fx.FromInt(-10), false},
		{-fx.One, false},
		{fx.FromFloat(-0.5), true},
		{fx.FromInt(2), true},
		{fx.FromInt(-100), false},
		{fx.FromInt(-101), true},
	}
	for _, tt := range tests {
		if got := c.NearFarCulled(fx.V3(0, 0, tt.z)); got != tt.want {
			t.Fatalf("z=%v: culled = %v", tt.z.Float32(), got)
		}
	}
}

func TestProjectPointFrustum(t *testing.T) {
	c := newTestCamera(fx.V3Int(0, 0, 10))
	if p, ok := c.ProjectPoint(fx.V3Int(0, 0, -10)); !ok || p != (geom.Point{X: 80, Y: 50}) {
		t.Fatalf("center = %v %v", p, ok)
	}
	if _, ok := c.ProjectPoint(fx.V3Int(50, 0, -10)); ok {
		t.Fatalf("point far right of the frustum accepted")
	}
	if _, ok := c.ProjectPoint(fx.V3Int(0, -50, -10)); ok {
		t.Fatalf("point far below the frustum accepted")
	}
	if _, ok := c.ProjectPoint(fx.V3Int(0, 0, 5)); ok {
		t.Fatalf("point behind the camera accepted")
	}
}

func TestSetFrustumRejectsBadPlanes(t *testing.T) {
	c := newTestCamera(fx.V3Int(0, 0, 10))
	if f := fault.Catch(func() { c.SetFrustum(VerticalFOV43, fx.FromInt(5), fx.FromInt(2)) }); f == nil {
		t.Fatalf("expected fault for far < near")
	}
	if f := fault.Catch(func() { New(fx.Vec3{}, VerticalFOV43, fx.One, fx.FromInt(300), ModeScaled) }); f == nil {
		t.Fatalf("expected fault for far beyond the ordering table")
	}
	if f := fault.Catch(func() { c.SetFrustum(VerticalFOV43, fx.One, MaxFar-1) }); f != nil {
		t.Fatalf("far just inside MaxFar faulted: %v", f)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
