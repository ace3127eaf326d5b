package timer

import "fx3d/render/fx"

// fpsSmoothing weighs the previous estimate (0.8 in .8).
const fpsSmoothing fx.Fixed = 205

// FPS is an exponentially smoothed frame rate estimate.
type FPS struct {
	prev fx.Fixed
}

// Update feeds the duration of the last frame in .12 seconds and returns the
// smoothed rate. A zero duration leaves the estimate unchanged.
func (f *FPS) Update(dt fx.Fixed12) int {
	if dt <= 0 {
		return f.prev.Int()
	}
	cur := fx.Div12(fx.One12, dt).Fixed()
	f.prev = fx.Mul(f.prev, fpsSmoothing) + fx.Mul(cur, fx.One-fpsSmoothing)
	return f.prev.Int()
}

func (f *FPS) Value() int { return f.prev.Int() }
