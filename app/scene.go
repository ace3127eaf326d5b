package app

import (
	"fx3d/hal"
	"fx3d/render"
	"fx3d/render/camera"
	"fx3d/render/fx"
	"fx3d/render/geom"
)

// Scene is one demo. The set of scenes is closed: only this package
// implements it.
type Scene interface {
	Name() string
	// Enter resets the scene and poses cam for its first frame.
	Enter(cam *camera.Camera)
	// Update advances the scene to time t (.12 seconds since Enter) and
	// poses cam; dt is the duration of the last frame.
	Update(cam *camera.Camera, t, dt fx.Fixed12, b *buttons)
	Background() geom.Color
	// Draw renders the scene and returns the number of triangles drawn.
	Draw(rc *render.Context, cam *camera.Camera) int

	scene()
}

// buttons is the held state of the console buttons.
type buttons struct {
	held [hal.KeySelect + 1]bool
}

func (b *buttons) set(ev hal.KeyEvent) {
	if int(ev.Code) < len(b.held) {
		b.held[ev.Code] = ev.Press
	}
}

func (b *buttons) down(k hal.KeyCode) bool { return b.held[k] }

// axis returns -1, 0 or 1 from a pair of opposing buttons.
func (b *buttons) axis(neg, pos hal.KeyCode) fx.Fixed12 {
	var v fx.Fixed12
	if b.down(neg) {
		v -= fx.One12
	}
	if b.down(pos) {
		v += fx.One12
	}
	return v
}

// rate is how far something moving at perSec travels in dt.
func rate(dt fx.Fixed12, perSec fx.Angle) fx.Angle {
	return fx.Angle(fx.Mul12(dt, fx.Fixed12(perSec)))
}

// orbit keeps the camera on a sphere around target. The arrows move it
// around, A and B zoom, L and R roll the view.
type orbit struct {
	target     fx.Vec3
	yaw, pitch fx.Angle
	dist       fx.Fixed
	minDist    fx.Fixed
	maxDist    fx.Fixed
	roll       fx.Angle
}

var maxOrbitPitch = fx.Deg(80)

func (o *orbit) update(dt fx.Fixed12, b *buttons) {
	o.yaw += rate(fx.Mul12(dt, b.axis(hal.KeyLeft, hal.KeyRight)), fx.Deg(90))
	o.pitch += rate(fx.Mul12(dt, b.axis(hal.KeyDown, hal.KeyUp)), fx.Deg(60))
	o.pitch = min(max(o.pitch, -maxOrbitPitch), maxOrbitPitch)
	o.roll += rate(fx.Mul12(dt, b.axis(hal.KeyL, hal.KeyR)), fx.Deg(45))

	zoom := fx.Mul(fx.Mul12(dt, b.axis(hal.KeyA, hal.KeyB)).Fixed(), fx.FromInt(30))
	o.dist = min(max(o.dist+zoom, o.minDist), o.maxDist)
}

// apply poses cam at the orbit position, turned by an extra spin around
// the target, looking at the target.
func (o *orbit) apply(cam *camera.Camera, spin fx.Angle) {
	y := o.yaw + spin
	flat := fx.Mul(fx.Cos(o.pitch), o.dist)
	cam.Pos = o.target.Add(fx.V3(
		fx.Mul(fx.Sin(y), flat),
		fx.Mul(fx.Sin(o.pitch), o.dist),
		fx.Mul(fx.Cos(y), flat),
	))
	cam.LookAt = o.target
	cam.Roll = o.roll
}
