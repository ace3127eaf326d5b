// Package camera holds the camera pose and the projection state derived
// from it.
package camera

import (
	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/geom"
)

// DisplayMode selects the canvas the camera projects onto.
type DisplayMode uint8

const (
	// ModeScaled is a 160x100 canvas scaled up to fill the panel.
	ModeScaled DisplayMode = iota + 1
	// ModeFull is the native 240x160 canvas.
	ModeFull
)

// Size returns the canvas size of m. An unknown mode is a fault.
func (m DisplayMode) Size() (w, h int) {
	switch m {
	case ModeScaled:
		return 160, 100
	case ModeFull:
		return 240, 160
	}
	fault.Panic("camera: unknown display mode")
	return 0, 0
}

func (m DisplayMode) String() string {
	switch m {
	case ModeScaled:
		return "scaled"
	case ModeFull:
		return "full"
	}
	return "unknown"
}

// VerticalFOV43 is the field of view the demo scenes use.
var VerticalFOV43 = fx.Deg(43)

// MaxFar bounds the far plane: depths from 0 up to but excluding MaxFar
// map to the ordering table buckets.
const MaxFar = 256 * fx.One

// singularityEps is about 0.01 in .8 fixed point.
const singularityEps fx.Fixed = 25

// Camera is a perspective camera. Pos, the angles and LookAt are written by
// the scene every frame; everything else is derived.
type Camera struct {
	Pos              fx.Vec3
	Yaw, Pitch, Roll fx.Angle
	LookAt           fx.Vec3

	// World2Cam maps world space into camera space. It is rebuilt by
	// ComputeWorldToCamera.
	World2Cam fx.Mat4
	// Persp maps camera space straight to canvas pixels (with a divide by w).
	// The pipeline uses the equivalent scalar factors below instead.
	Persp fx.Mat4

	perspFacX, perspFacY                 fx.Fixed
	viewportTransFacX, viewportTransFacY fx.Fixed
	viewportTransAddX, viewportTransAddY fx.Fixed

	mode                 DisplayMode
	canvasW, canvasH     int
	viewportW, viewportH fx.Fixed
	aspect               fx.Fixed
	fov                  fx.Angle
	near, far            fx.Fixed
	singular             bool
}

// New returns a camera at pos looking at the origin.
func New(pos fx.Vec3, fov fx.Angle, near, far fx.Fixed, mode DisplayMode) *Camera {
	w, h := mode.Size()
	c := &Camera{
		Pos:       pos,
		World2Cam: fx.Mat4Identity(),
		mode:      mode,
		canvasW:   w,
		canvasH:   h,
		viewportW: fx.Div(fx.FromInt(w), fx.FromInt(100)),
		viewportH: fx.Div(fx.FromInt(h), fx.FromInt(100)),
	}
	c.aspect = fx.Div(c.viewportW, c.viewportH)
	c.SetFrustum(fov, near, far)
	return c
}

func (c *Camera) Mode() DisplayMode { return c.mode }

func (c *Camera) Bounds() geom.Bounds { return geom.Bounds{W: c.canvasW, H: c.canvasH} }

func (c *Camera) Near() fx.Fixed { return c.near }
func (c *Camera) Far() fx.Fixed  { return c.far }
func (c *Camera) FOV() fx.Angle  { return c.fov }

// Aspect is viewport width over viewport height.
func (c *Camera) Aspect() fx.Fixed { return c.aspect }

// Singular reports whether the last ComputeWorldToCamera call had to use the
// substitute basis because the camera looked straight up or down.
func (c *Camera) Singular() bool { return c.singular }

// SetFrustum changes the frustum and recomputes the projection.
func (c *Camera) SetFrustum(fov fx.Angle, near, far fx.Fixed) {
	fault.Check(near > 0 && far > near, "camera: 0 < near < far")
	fault.Check(far < MaxFar, "camera: far < MaxFar")
	c.fov = fov
	c.near = near
	c.far = far
	c.ComputePerspective()
}

func (c *Camera) rotation() fx.Mat4 {
	m := fx.Mat4RotateY(c.Yaw)
	m = fx.Mat4Mul(m, fx.Mat4RotateX(c.Pitch))
	return fx.Mat4Mul(m, fx.Mat4RotateZ(c.Roll))
}

func nearUnitY(v fx.Vec3) bool {
	return fx.Abs(v.X) < singularityEps &&
		fx.Abs(v.Z) < singularityEps &&
		fx.Abs(fx.Abs(v.Y)-fx.One) < singularityEps
}

// ComputeWorldToCamera rebuilds World2Cam from the pose. The rotation is
// applied before the translation; swapping them gives a wrong view.
func (c *Camera) ComputeWorldToCamera() {
	forward := fx.Unit(c.Pos.Sub(c.LookAt))
	var right, up fx.Vec3
	c.singular = nearUnitY(forward)
	if c.singular {
		// Cross with the up axis degenerates here.
		// TODO: the substitute basis flips when the camera is animated
		// through the pole; interpolate the basis instead.
		right = fx.Unit(fx.V3(forward.Y, 0, 0))
		up = fx.Unit(fx.Cross(forward, right))
	} else {
		right = fx.Unit(fx.Cross(fx.V3(0, fx.One, 0), forward))
		up = fx.Unit(fx.Cross(forward, right))
	}

	m := fx.Mat4Identity()
	m.SetBasis(right, up, forward)
	m = fx.Mat4Mul(m, c.rotation())
	m = m.Transposed()
	c.World2Cam = fx.Mat4Mul(m, fx.Mat4Translate(c.Pos.Neg()))
}

// ComputePerspective derives the projection matrix and the per-axis factors
// from the frustum.
func (c *Camera) ComputePerspective() {
	half := c.fov / 2
	tan := fx.Div12(fx.Sin12(half), fx.Cos12(half)).Fixed()
	top := fx.Mul(tan, c.near)
	bottom := -top
	right := fx.Mul(top, c.aspect)
	left := -right

	n2 := fx.Mul(c.near, fx.FromInt(2))
	c.perspFacX = fx.Div(n2, right-left)
	c.perspFacY = fx.Div(n2, top-bottom)

	w, h := fx.FromInt(c.canvasW), fx.FromInt(c.canvasH)
	c.viewportTransFacX = w / 2
	c.viewportTransAddX = w / 2
	c.viewportTransFacY = -h / 2
	c.viewportTransAddY = h / 2

	fn := c.far - c.near
	persp := fx.Mat4{
		c.perspFacX, 0, fx.Div(right+left, right-left), 0,
		0, c.perspFacY, fx.Div(top+bottom, top-bottom), 0,
		0, 0, -fx.Div(c.far+c.near, fn), -fx.Div(fx.Mul(n2, c.far), fn),
		0, 0, -fx.One, 0,
	}
	// NDC to pixels, with Y flipped.
	toImage := fx.Mat4{
		c.viewportTransFacX, 0, 0, c.viewportTransAddX,
		0, c.viewportTransFacY, 0, c.viewportTransAddY,
		0, 0, fx.One, 0,
		0, 0, 0, fx.One,
	}
	c.Persp = fx.Mat4Mul(toImage, persp)
}

// NearFarCulled reports whether a camera-space point lies in front of the
// near plane or behind the far plane.
func (c *Camera) NearFarCulled(v fx.Vec3) bool {
	return v.Z > -c.near || v.Z < -c.far
}

// Project maps a camera-space point to a canvas pixel using the scalar
// factors. The point must not be near/far culled.
func (c *Camera) Project(v fx.Vec3) geom.Point {
	z := -v.Z
	return geom.Point{
		X: (fx.Mul(c.viewportTransFacX, fx.Div(fx.Mul(c.perspFacX, v.X), z)) + c.viewportTransAddX).Int(),
		Y: (fx.Mul(c.viewportTransFacY, fx.Div(fx.Mul(c.perspFacY, v.Y), z)) + c.viewportTransAddY).Int(),
	}
}

// ProjectMatrix is Project done with the full matrix.
func (c *Camera) ProjectMatrix(v fx.Vec3) geom.Point {
	p := c.Persp.Transform(v)
	return geom.Point{X: p.X.Int(), Y: p.Y.Int()}
}

// ProjectPoint projects a camera-space point and reports false when it lies
// outside the frustum. The side planes are tested before the divide.
func (c *Camera) ProjectPoint(v fx.Vec3) (geom.Point, bool) {
	if c.NearFarCulled(v) {
		return geom.Point{}, false
	}
	z := -v.Z
	px := fx.Mul(c.perspFacX, v.X)
	if px < -z || px > z {
		return geom.Point{}, false
	}
	py := fx.Mul(c.perspFacY, v.Y)
	if py < -z || py > z {
		return geom.Point{}, false
	}
	return geom.Point{
		X: (fx.Mul(c.viewportTransFacX, fx.Div(px, z)) + c.viewportTransAddX).Int(),
		Y: (fx.Mul(c.viewportTransFacY, fx.Div(py, z)) + c.viewportTransAddY).Int(),
	}, true
}
