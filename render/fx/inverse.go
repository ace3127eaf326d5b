package fx

// Mat4Inverse is the general cofactor inverse. The renderer only ever needs
// to invert orthonormal matrices and uses Transposed for that; this path is
// kept for checking that shortcut.
func Mat4Inverse(m Mat4) (Mat4, bool) {
	var inv Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			inv[j*4+i] = cofactor(i, j, &m)
		}
	}

	var d Fixed
	for k := 0; k < 4; k++ {
		d += Mul(m[k], inv[k*4])
	}
	if d == 0 {
		return Mat4{}, false
	}
	d = Div(One, d)

	var out Mat4
	for i := range inv {
		out[i] = Mul(inv[i], d)
	}
	return out, true
}

func cofactor(i, j int, m *Mat4) Fixed {
	o := 2 + (j - i)
	i += 4 + o
	j += 8 - o
	e := func(a, b int) Fixed { return m[((j+b)%4)*4+((i+a)%4)] }

	v := Mul(Mul(e(+1, -1), e(+0, +0)), e(-1, +1)) +
		Mul(Mul(e(+1, +1), e(+0, -1)), e(-1, +0)) +
		Mul(Mul(e(-1, -1), e(+1, +0)), e(+0, +1)) -
		Mul(Mul(e(-1, -1), e(+0, +0)), e(+1, +1)) -
		Mul(Mul(e(-1, +1), e(+0, -1)), e(+1, +0)) -
		Mul(Mul(e(+1, -1), e(-1, +0)), e(+0, +1))

	if o%2 != 0 {
		return v
	}
	return -v
}
