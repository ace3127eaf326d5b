package app

import (
	"math/rand/v2"

	"fx3d/render"
	"fx3d/render/camera"
	"fx3d/render/fx"
	"fx3d/render/geom"
	"fx3d/render/model"
)

const (
	cubeSpacing = 12
	numStars    = 200
)

// cubeScene is a grid of bobbing, spinning lit cubes under a point light,
// inside a field of stars. The center cube jumps and tumbles.
type cubeScene struct {
	pool   *model.Pool
	pools  []*model.Pool
	grid   int
	home   []fx.Vec3
	center int

	att   render.Attenuation
	light render.Lighting
	stars []fx.Vec3
	orbit orbit
}

func newCubeScene(grid int) *cubeScene {
	s := &cubeScene{
		pool:   model.NewPool(grid * grid),
		grid:   grid,
		home:   make([]fx.Vec3, grid*grid),
		center: grid * grid / 2,
		att:    render.Attenuation{Linear: fx.One / 64},
		stars:  make([]fx.Vec3, numStars),
	}
	s.pools = []*model.Pool{s.pool}

	// Fixed seed: every run shows the same sky.
	rng := rand.New(rand.NewPCG(0x5eed, uint64(grid)))
	coord := func() fx.Fixed {
		v := fx.FromInt(9 + rng.IntN(73))
		if rng.IntN(2) == 0 {
			return -v
		}
		return v
	}
	for i := range s.stars {
		s.stars[i] = fx.V3(coord(), coord(), coord())
	}
	return s
}

func (s *cubeScene) scene()       {}
func (s *cubeScene) Name() string { return SceneCubes }

func (s *cubeScene) Background() geom.Color { return geom.Black }

func (s *cubeScene) Enter(cam *camera.Camera) {
	s.pool.Reset()
	off := (s.grid - 1) * cubeSpacing / 2
	for i := range s.home {
		pos := fx.V3Int(cubeSpacing*(i%s.grid)-off, 0, cubeSpacing*(i/s.grid)-off)
		s.home[i] = pos
		s.pool.AddUniform(model.Cube(), pos, fx.FromInt(cubeSpacing), model.ShadingFlatLit)
	}
	s.light = render.Point(fx.V3Int(0, 24, 0), &s.att)
	s.orbit = orbit{
		pitch:   fx.Deg(25),
		dist:    fx.FromInt(40 + off),
		minDist: fx.FromInt(16),
		maxDist: fx.FromInt(120),
	}
	cam.Roll = 0
	s.orbit.apply(cam, 0)
}

func (s *cubeScene) Update(cam *camera.Camera, t, dt fx.Fixed12, b *buttons) {
	spin := rate(dt, fx.Deg(120))
	wave := rate(t, fx.Deg(120))
	for i := 0; i < s.pool.Cap(); i++ {
		inst, ok := s.pool.At(i)
		if !ok {
			continue
		}
		home := s.home[i]
		if i == s.center {
			inst.Pos.Y = fx.Mul(fx.Sin(rate(t, fx.Deg(180))), fx.FromInt(10))
			inst.Yaw -= rate(dt, fx.Deg(100))
			inst.Pitch -= spin
			inst.Roll -= rate(dt, fx.Deg(110))
			continue
		}
		if i%2 == 1 {
			inst.Yaw += spin
		} else {
			inst.Yaw -= spin
		}
		// Neighbours bob out of phase.
		phase := fx.Angle((home.X + home.Z).To12())
		inst.Pos.Y = fx.Mul(fx.Sin(wave+phase), fx.FromInt(2))
	}

	s.orbit.update(dt, b)
	s.orbit.apply(cam, rate(t, fx.Deg(20)))
}

func (s *cubeScene) Draw(rc *render.Context, c *camera.Camera) int {
	rc.DrawPoints(c, s.stars, geom.White)
	return rc.DrawInstancePools(s.pools, c, s.light)
}
