package render

import (
	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/geom"
	"fx3d/render/model"
)

type LightKind uint8

const (
	LightNone LightKind = iota
	LightDirectional
	LightPoint
)

// Attenuation is the distance falloff of a point light:
// 1 / (1 + Linear*d + Quadratic*d*d).
type Attenuation struct {
	Linear, Quadratic fx.Fixed
}

// Lighting describes the single light of a draw call. Build it with
// Directional or Point; the zero value carries no light and is only valid
// when nothing is drawn lit.
type Lighting struct {
	Kind  LightKind
	Dir   fx.Vec3
	Pos   fx.Vec3
	Atten *Attenuation
}

// Directional is a light shining along dir.
func Directional(dir fx.Vec3) Lighting {
	return Lighting{Kind: LightDirectional, Dir: dir}
}

// Point is a light at pos. att may be nil for no falloff.
func Point(pos fx.Vec3, att *Attenuation) Lighting {
	return Lighting{Kind: LightPoint, Pos: pos, Atten: att}
}

// noAttenuation marks the absence of a falloff factor.
const noAttenuation fx.Fixed = -1

// instanceLight returns the direction towards the light and the falloff
// factor for an instance at pos.
func instanceLight(l *Lighting, pos fx.Vec3) (dir fx.Vec3, att fx.Fixed) {
	att = noAttenuation
	switch l.Kind {
	case LightPoint:
		d := l.Pos.Sub(pos)
		if l.Atten != nil {
			dist := fx.Mag(d)
			att = fx.Div(fx.One, fx.One+fx.Mul(dist, l.Atten.Linear)+fx.Mul(fx.Mul(dist, dist), l.Atten.Quadratic))
		}
		return fx.Unit(d), att
	case LightDirectional:
		return l.Dir.Neg(), att
	}
	fault.Panic("render: lit shading without a light")
	return fx.Vec3{}, att
}

const (
	maxShade = 31
	minShade = 1
)

// ComputeFaceColor returns the fill color of a face. Lit faces get a gray
// level from the angle between normal and lightDir, scaled by att unless att
// is negative; faces turned away get the ambient minimum. Flat and wireframe
// faces keep base.
func ComputeFaceColor(s model.Shading, normal, lightDir fx.Vec3, att fx.Fixed, base geom.Color) geom.Color {
	switch s {
	case model.ShadingFlatLit:
		alpha := fx.Dot(lightDir, normal)
		if alpha <= 0 {
			return geom.Gray5(minShade)
		}
		shade := fx.Mul(alpha, fx.FromInt(maxShade)).Int()
		if att != noAttenuation {
			shade = fx.Mul(att, fx.FromInt(shade)).Int()
		}
		return geom.Gray5(min(max(minShade, shade), maxShade))
	case model.ShadingFlat, model.ShadingWireframe:
		return base
	}
	fault.Panic("render: unknown shading")
	return base
}
