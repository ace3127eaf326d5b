// Package model holds shared mesh data and the fixed-capacity pools of posed
// instances that reference it.
package model

import (
	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/geom"
)

// MaxVerts bounds the vertex count of a model so the pipeline can keep its
// per-instance scratch arrays on a fixed budget.
const MaxVerts = 128

// Shading selects how the faces of an instance are drawn.
type Shading uint8

const (
	// ShadingFlatLit fills each face with a gray level taken from the light.
	ShadingFlatLit Shading = iota
	// ShadingFlat fills each face with its stored color.
	ShadingFlat
	// ShadingWireframe strokes the face outline in its stored color.
	ShadingWireframe
)

func (s Shading) String() string {
	switch s {
	case ShadingFlatLit:
		return "flat-lit"
	case ShadingFlat:
		return "flat"
	case ShadingWireframe:
		return "wireframe"
	}
	return "unknown"
}

type FaceKind uint8

const (
	FaceTriangle FaceKind = iota
	// FaceQuad is a convex planar quad, drawn as (0,1,2) and (0,2,3).
	FaceQuad
)

// Face references its vertices by index into Model.Verts.
type Face struct {
	Kind   FaceKind
	Index  [4]int
	Normal fx.Vec3
	Color  geom.Color
}

func Tri(a, b, c int, normal fx.Vec3, color geom.Color) Face {
	return Face{Kind: FaceTriangle, Index: [4]int{a, b, c, 0}, Normal: normal, Color: color}
}

func Quad(a, b, c, d int, normal fx.Vec3, color geom.Color) Face {
	return Face{Kind: FaceQuad, Index: [4]int{a, b, c, d}, Normal: normal, Color: color}
}

func (f *Face) NumVerts() int {
	if f.Kind == FaceQuad {
		return 4
	}
	return 3
}

// Model is read-only mesh data shared by any number of instances.
type Model struct {
	Verts []fx.Vec3
	Faces []Face
}

// New validates and wraps verts and faces. The slices are not copied.
func New(verts []fx.Vec3, faces []Face) *Model {
	fault.Check(len(verts) <= MaxVerts, "model.New: len(verts) <= MaxVerts")
	for i := range faces {
		f := &faces[i]
		fault.Check(f.Kind == FaceTriangle || f.Kind == FaceQuad, "model.New: face kind")
		for _, idx := range f.Index[:f.NumVerts()] {
			fault.Check(idx >= 0 && idx < len(verts), "model.New: face index in range")
		}
	}
	return &Model{Verts: verts, Faces: faces}
}

var cube *Model

// Cube returns the built-in cube with edge length 1/2 centered on the
// origin. Each side has its own color.
func Cube() *Model {
	if cube != nil {
		return cube
	}
	h := fx.One >> 2
	verts := []fx.Vec3{
		// front
		{X: -h, Y: -h, Z: h},
		{X: -h, Y: h, Z: h},
		{X: h, Y: h, Z: h},
		{X: h, Y: -h, Z: h},
		// back
		{X: -h, Y: -h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: h, Y: -h, Z: -h},
	}
	var (
		px = fx.V3(fx.One, 0, 0)
		nx = fx.V3(-fx.One, 0, 0)
		py = fx.V3(0, fx.One, 0)
		ny = fx.V3(0, -fx.One, 0)
		pz = fx.V3(0, 0, fx.One)
		nz = fx.V3(0, 0, -fx.One)
	)
	faces := []Face{
		Tri(0, 1, 2, pz, geom.Cyan),
		Tri(2, 3, 0, pz, geom.Cyan),
		Tri(4, 7, 6, nz, geom.Red),
		Tri(6, 5, 4, nz, geom.Red),
		Tri(3, 2, 6, px, geom.Blue),
		Tri(6, 7, 3, px, geom.Blue),
		Tri(4, 5, 1, nx, geom.Magenta),
		Tri(1, 0, 4, nx, geom.Magenta),
		Tri(0, 3, 7, ny, geom.Green),
		Tri(7, 4, 0, ny, geom.Green),
		Tri(1, 5, 6, py, geom.Yellow),
		Tri(6, 2, 1, py, geom.Yellow),
	}
	cube = New(verts, faces)
	return cube
}

var octahedron *Model

// Octahedron returns the built-in octahedron with its vertices at distance
// 1/2 from the origin on each axis.
func Octahedron() *Model {
	if octahedron != nil {
		return octahedron
	}
	h := fx.One >> 1
	verts := []fx.Vec3{
		{X: h}, {X: -h},
		{Y: h}, {Y: -h},
		{Z: h}, {Z: -h},
	}
	palette := [...]geom.Color{
		geom.White, geom.Cyan, geom.Yellow, geom.Green,
		geom.Magenta, geom.Blue, geom.Red, geom.White,
	}
	faces := make([]Face, 0, 8)
	for i := 0; i < 8; i++ {
		// Bit k of i picks the negative end of axis k.
		x, y, z := i&1, 2+(i>>1&1), 4+(i>>2&1)
		n := fx.V3(sign(x&1), sign(y&1), sign(z&1))
		faces = append(faces, Tri(x, y, z, fx.Unit(n), palette[i]))
	}
	octahedron = New(verts, faces)
	return octahedron
}

func sign(neg int) fx.Fixed {
	if neg != 0 {
		return -fx.One
	}
	return fx.One
}
