package fx

// Vec3 is a 3D vector in .8 fixed point.
type Vec3 struct {
	X, Y, Z Fixed
}

func V3(x, y, z Fixed) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// V3Int builds a vector from whole units.
func V3Int(x, y, z int) Vec3 { return Vec3{FromInt(x), FromInt(y), FromInt(z)} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Scaled(f Fixed) Vec3 { return Vec3{Mul(v.X, f), Mul(v.Y, f), Mul(v.Z, f)} }

// Mul scales per component.
func (v Vec3) Mul(s Vec3) Vec3 { return Vec3{Mul(v.X, s.X), Mul(v.Y, s.Y), Mul(v.Z, s.Z)} }

func Dot(a, b Vec3) Fixed {
	return Mul(a.X, b.X) + Mul(a.Y, b.Y) + Mul(a.Z, b.Z)
}

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: Mul(a.Y, b.Z) - Mul(a.Z, b.Y),
		Y: Mul(a.Z, b.X) - Mul(a.X, b.Z),
		Z: Mul(a.X, b.Y) - Mul(a.Y, b.X),
	}
}

// Mag returns |v|. The sum of squares is shifted up by 8 before the integer
// square root so the result keeps the .8 scale: sqrt(2^8) * sqrt(2^8) = 2^8.
func Mag(v Vec3) Fixed {
	sq := Dot(v, v)
	if sq <= 0 {
		return 0
	}
	return Fixed(Sqrt(uint64(sq) << Shift))
}

// Unit normalizes v. The zero vector is a fault.
func Unit(v Vec3) Vec3 {
	m := Mag(v)
	return Vec3{Div(v.X, m), Div(v.Y, m), Div(v.Z, m)}
}
