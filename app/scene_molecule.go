package app

import (
	"fx3d/render"
	"fx3d/render/camera"
	"fx3d/render/fx"
	"fx3d/render/geom"
	"fx3d/render/model"
)

const bondSamples = 12

// moleculeScene is a wireframe molecule: a central atom bonded to four
// tumbling neighbours. Bonds are drawn as dotted point lines.
type moleculeScene struct {
	pool   *model.Pool
	pools  []*model.Pool
	ids    [5]model.InstanceID
	arms   [4]fx.Vec3
	points []fx.Vec3
	light  render.Lighting
	orbit  orbit
}

func newMoleculeScene() *moleculeScene {
	s := &moleculeScene{
		pool:   model.NewPool(len(moleculeArms) + 1),
		points: make([]fx.Vec3, len(moleculeArms)*bondSamples),
		light:  render.Directional(fx.Unit(fx.V3Int(3, -4, -3))),
	}
	s.pools = []*model.Pool{s.pool}
	return s
}

// Tetrahedral bond directions.
var moleculeArms = [4][3]int{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}

func (s *moleculeScene) scene()       {}
func (s *moleculeScene) Name() string { return SceneMolecule }

func (s *moleculeScene) Background() geom.Color { return geom.RGB(240, 160, 176) }

func (s *moleculeScene) Enter(cam *camera.Camera) {
	s.pool.Reset()
	s.ids[0] = s.pool.AddUniform(model.Octahedron(), fx.Vec3{}, fx.FromInt(16), model.ShadingWireframe)
	for i, a := range moleculeArms {
		s.arms[i] = fx.V3Int(a[0]*14, a[1]*14, a[2]*14)
		s.ids[i+1] = s.pool.AddUniform(model.Octahedron(), s.arms[i], fx.FromInt(10), model.ShadingWireframe)
	}
	s.orbit = orbit{
		pitch:   fx.Deg(15),
		dist:    fx.FromInt(80),
		minDist: fx.FromInt(40),
		maxDist: fx.FromInt(150),
	}
	cam.Roll = 0
	s.orbit.apply(cam, 0)
}

func (s *moleculeScene) Update(cam *camera.Camera, t, dt fx.Fixed12, b *buttons) {
	core := s.pool.Get(s.ids[0])
	core.Yaw += rate(dt, fx.Deg(30))

	// The neighbours breathe in and out along their bonds.
	stretch := fx.One + fx.Mul(fx.Sin(rate(t, fx.Deg(90))), fx.One/8)
	for i := range s.arms {
		inst := s.pool.Get(s.ids[i+1])
		inst.Pos = s.arms[i].Scaled(stretch)
		inst.Pitch += rate(dt, fx.Deg(60+20*i))
		inst.Roll -= rate(dt, fx.Deg(45))

		// Bond from the core to the neighbour.
		for k := 0; k < bondSamples; k++ {
			f := fx.Div(fx.FromInt(k+1), fx.FromInt(bondSamples+1))
			s.points[i*bondSamples+k] = inst.Pos.Scaled(f)
		}
	}

	s.orbit.update(dt, b)
	s.orbit.apply(cam, rate(t, fx.Deg(30)))
}

func (s *moleculeScene) Draw(rc *render.Context, c *camera.Camera) int {
	rc.DrawPoints(c, s.points, geom.Black)
	return rc.DrawInstancePools(s.pools, c, s.light)
}
