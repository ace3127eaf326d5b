package fx

// Mat4 is a 4x4 matrix stored row after row: m[row*4+col].
type Mat4 [16]Fixed

func Mat4Identity() Mat4 {
	return Mat4{
		One, 0, 0, 0,
		0, One, 0, 0,
		0, 0, One, 0,
		0, 0, 0, One,
	}
}

func (m *Mat4) At(row, col int) Fixed { return m[row*4+col] }

func (m *Mat4) Set(row, col int, v Fixed) { m[row*4+col] = v }

func (m *Mat4) SetTranslation(t Vec3) {
	m[3] = t.X
	m[7] = t.Y
	m[11] = t.Z
}

func (m *Mat4) AddTranslation(t Vec3) {
	m[3] += t.X
	m[7] += t.Y
	m[11] += t.Z
}

func (m *Mat4) Translation() Vec3 { return Vec3{m[3], m[7], m[11]} }

// SetBasis writes x, y, z into columns 0, 1, 2.
func (m *Mat4) SetBasis(x, y, z Vec3) {
	m[0], m[1], m[2] = x.X, y.X, z.X
	m[4], m[5], m[6] = x.Y, y.Y, z.Y
	m[8], m[9], m[10] = x.Z, y.Z, z.Z
}

func Mat4Translate(t Vec3) Mat4 {
	m := Mat4Identity()
	m.SetTranslation(t)
	return m
}

// Mat4Mul returns a*b.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var v Fixed
			for i := 0; i < 4; i++ {
				v += Mul(a[row*4+i], b[i*4+col])
			}
			out[row*4+col] = v
		}
	}
	return out
}

// Transposed returns the transpose. For an orthonormal matrix this is also
// its inverse; it is not a general inverse.
func (m Mat4) Transposed() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = m[col*4+row]
		}
	}
	return out
}

// Transform returns m*v with v = (x, y, z, 1). When the resulting w is not 1
// the result is divided by w.
func (m Mat4) Transform(v Vec3) Vec3 {
	out := Vec3{
		X: Mul(v.X, m[0]) + Mul(v.Y, m[1]) + Mul(v.Z, m[2]) + m[3],
		Y: Mul(v.X, m[4]) + Mul(v.Y, m[5]) + Mul(v.Z, m[6]) + m[7],
		Z: Mul(v.X, m[8]) + Mul(v.Y, m[9]) + Mul(v.Z, m[10]) + m[11],
	}
	w := Mul(v.X, m[12]) + Mul(v.Y, m[13]) + Mul(v.Z, m[14]) + m[15]
	if w != One {
		out = Vec3{Div(out.X, w), Div(out.Y, w), Div(out.Z, w)}
	}
	return out
}

// Rotate applies only the upper 3x3 part of m.
func (m Mat4) Rotate(v Vec3) Vec3 {
	return Vec3{
		X: Mul(v.X, m[0]) + Mul(v.Y, m[1]) + Mul(v.Z, m[2]),
		Y: Mul(v.X, m[4]) + Mul(v.Y, m[5]) + Mul(v.Z, m[6]),
		Z: Mul(v.X, m[8]) + Mul(v.Y, m[9]) + Mul(v.Z, m[10]),
	}
}

func Mat4RotateX(a Angle) Mat4 {
	m := Mat4Identity()
	s, c := Sin(a), Cos(a)
	m[5], m[6] = c, -s
	m[9], m[10] = s, c
	return m
}

func Mat4RotateY(a Angle) Mat4 {
	m := Mat4Identity()
	s, c := Sin(a), Cos(a)
	m[0], m[2] = c, s
	m[8], m[10] = -s, c
	return m
}

func Mat4RotateZ(a Angle) Mat4 {
	m := Mat4Identity()
	s, c := Sin(a), Cos(a)
	m[0], m[1] = c, -s
	m[4], m[5] = s, c
	return m
}

// Mat4YawPitchRoll returns RotY(yaw) * RotX(pitch) * RotZ(roll) expanded in
// closed form.
func Mat4YawPitchRoll(yaw, pitch, roll Angle) Mat4 {
	sy, cy := Sin(yaw), Cos(yaw)
	sp, cp := Sin(pitch), Cos(pitch)
	sr, cr := Sin(roll), Cos(roll)

	m := Mat4Identity()
	m[0] = Mul(cr, cy) + Mul(Mul(sr, sy), sp)
	m[1] = -Mul(sr, cy) + Mul(Mul(cr, sy), sp)
	m[2] = Mul(sy, cp)
	m[4] = Mul(sr, cp)
	m[5] = Mul(cr, cp)
	m[6] = -sp
	m[8] = Mul(-cr, sy) + Mul(Mul(sr, cy), sp)
	m[9] = Mul(sr, sy) + Mul(Mul(cr, cy), sp)
	m[10] = Mul(cp, cy)
	return m
}
