package fx

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"fx3d/render/fault"
)

func TestIntRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, -1, 7, -7, 100, -100, 32767} {
		if got := FromInt(n).Int(); got != n {
			t.Fatalf("FromInt(%d).Int() = %d", n, got)
		}
	}
}

func TestIntTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		in   Fixed
		want int
	}{
		{FromFloat(1.75), 1},
		{FromFloat(-1.75), -1},
		{FromFloat(-0.5), 0},
		{FromFloat(0.99), 0},
	}
	for _, tt := range tests {
		if got := tt.in.Int(); got != tt.want {
			t.Fatalf("Fixed(%d).Int() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMulDiv(t *testing.T) {
	if got := Mul(FromInt(3), FromFloat(0.5)); got != FromFloat(1.5) {
		t.Fatalf("3*0.5 = %v", got.Float32())
	}
	if got := Div(FromInt(3), FromInt(2)); got != FromFloat(1.5) {
		t.Fatalf("3/2 = %v", got.Float32())
	}
	if got := Mul(FromInt(-4), FromInt(4)); got != FromInt(-16) {
		t.Fatalf("-4*4 = %v", got.Float32())
	}
}

func TestMulOfDivIsApproximatelyIdentity(t *testing.T) {
	for _, a := range []Fixed{FromInt(5), FromInt(-17), FromFloat(0.75), FromInt(100)} {
		for _, b := range []Fixed{FromInt(3), FromInt(-2), FromFloat(1.5), FromInt(9)} {
			got := Mul(Div(a, b), b)
			// One ulp of quotient error scaled by |b|.
			tol := Abs(b)>>Shift + 1
			if d := Abs(got - a); d > tol {
				t.Fatalf("Mul(Div(%v,%v)) = %v, off by %d", a.Float32(), b.Float32(), got.Float32(), d)
			}
		}
	}
}

func TestDivByZeroFaults(t *testing.T) {
	f := fault.Catch(func() { Div(One, 0) })
	if f == nil {
		t.Fatalf("expected fault")
	}
	f = fault.Catch(func() { Div12(One12, 0) })
	if f == nil {
		t.Fatalf("expected fault from Div12")
	}
}

func TestFormatConversion(t *testing.T) {
	if got := FromInt(3).To12(); got != FromInt12(3) {
		t.Fatalf("To12 = %d", got)
	}
	if got := FromInt12(-3).Fixed(); got != FromInt(-3) {
		t.Fatalf("Fixed() = %d", got)
	}
	if got := Mul12(FromInt12(2), FromFloat12(0.25)); got != FromFloat12(0.5) {
		t.Fatalf("Mul12 = %v", got.Float32())
	}
}

func TestSqrt(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 3, 4, 15, 16, 17, 65535, 65536, 1 << 40} {
		r := Sqrt(n)
		if r*r > n || (r+1)*(r+1) <= n {
			t.Fatalf("Sqrt(%d) = %d", n, r)
		}
	}
}

func TestTrigAgainstFloat(t *testing.T) {
	const tol = 0.02
	for d := -360; d <= 360; d += 15 {
		a := Deg(d)
		rad := float64(a) / 65536 * 2 * math.Pi
		if got, want := Sin(a).Float32(), float32(math.Sin(rad)); abs32(got-want) > tol {
			t.Fatalf("Sin(%d deg) = %v, want %v", d, got, want)
		}
		if got, want := Cos(a).Float32(), float32(math.Cos(rad)); abs32(got-want) > tol {
			t.Fatalf("Cos(%d deg) = %v, want %v", d, got, want)
		}
	}
}

func TestSinIsOdd(t *testing.T) {
	for _, d := range []int{1, 30, 45, 90, 135} {
		if Sin(-Deg(d)) != -Sin(Deg(d)) {
			t.Fatalf("Sin(-%d) != -Sin(%d)", d, d)
		}
		if Cos(-Deg(d)) != Cos(Deg(d)) {
			t.Fatalf("Cos(-%d) != Cos(%d)", d, d)
		}
	}
}

func TestVectorOps(t *testing.T) {
	x := V3(One, 0, 0)
	y := V3(0, One, 0)
	if got := Cross(x, y); got != V3(0, 0, One) {
		t.Fatalf("x cross y = %+v", got)
	}
	if got := Dot(x, y); got != 0 {
		t.Fatalf("x dot y = %d", got)
	}
	if got := Mag(V3Int(3, 4, 0)); got != FromInt(5) {
		t.Fatalf("Mag(3,4,0) = %v", got.Float32())
	}
	u := Unit(V3Int(0, -7, 0))
	if u != V3(0, -One, 0) {
		t.Fatalf("Unit = %+v", u)
	}
}

func TestUnitHasUnitLength(t *testing.T) {
	for _, v := range []Vec3{V3Int(1, 2, 3), V3Int(-5, 1, 9), V3(FromFloat(0.5), FromFloat(0.25), 0)} {
		if m := Mag(Unit(v)); Abs(m-One) > 3 {
			t.Fatalf("|Unit(%+v)| = %v", v, m.Float32())
		}
	}
}

func TestMat4MulIdentity(t *testing.T) {
	r := Mat4YawPitchRoll(Deg(30), Deg(-20), Deg(10))
	if got := Mat4Mul(Mat4Identity(), r); got != r {
		t.Fatalf("I*R != R")
	}
	if got := Mat4Mul(r, Mat4Identity()); got != r {
		t.Fatalf("R*I != R")
	}
}

func TestYawPitchRollMatchesComposition(t *testing.T) {
	yaw, pitch, roll := Deg(40), Deg(25), Deg(-70)
	closed := Mat4YawPitchRoll(yaw, pitch, roll)
	composed := Mat4Mul(Mat4Mul(Mat4RotateY(yaw), Mat4RotateX(pitch)), Mat4RotateZ(roll))
	for i := range closed {
		if d := Abs(closed[i] - composed[i]); d > 3 {
			t.Fatalf("m[%d]: closed %d composed %d", i, closed[i], composed[i])
		}
	}
}

func TestRotationAgainstMathGL(t *testing.T) {
	yaw, pitch, roll := Deg(60), Deg(-35), Deg(15)
	rad := func(a Angle) float32 { return float32(a) / 65536 * 2 * math.Pi }
	ref := mgl32.HomogRotate3DY(rad(yaw)).
		Mul4(mgl32.HomogRotate3DX(rad(pitch))).
		Mul4(mgl32.HomogRotate3DZ(rad(roll)))
	got := Mat4YawPitchRoll(yaw, pitch, roll)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if d := abs32(got.At(row, col).Float32() - ref.At(row, col)); d > 0.03 {
				t.Fatalf("(%d,%d): got %v want %v", row, col, got.At(row, col).Float32(), ref.At(row, col))
			}
		}
	}
}

func TestTransposeInvertsOrthonormal(t *testing.T) {
	r := Mat4YawPitchRoll(Deg(33), Deg(12), Deg(-80))
	p := Mat4Mul(r.Transposed(), r)
	id := Mat4Identity()
	for i := range p {
		if d := Abs(p[i] - id[i]); d > 8 {
			t.Fatalf("R^T R [%d] = %d", i, p[i])
		}
	}
}

func TestInverseMatchesTranspose(t *testing.T) {
	r := Mat4YawPitchRoll(Deg(-50), Deg(20), Deg(5))
	inv, ok := Mat4Inverse(r)
	if !ok {
		t.Fatalf("rotation reported singular")
	}
	tr := r.Transposed()
	for i := range inv {
		if d := Abs(inv[i] - tr[i]); d > 8 {
			t.Fatalf("inverse[%d] = %d, transpose %d", i, inv[i], tr[i])
		}
	}
}

func TestInverseOfTranslation(t *testing.T) {
	m := Mat4Translate(V3Int(3, -2, 7))
	inv, ok := Mat4Inverse(m)
	if !ok {
		t.Fatalf("translation reported singular")
	}
	if got := inv.Translation(); got != V3Int(-3, 2, -7) {
		t.Fatalf("inverse translation = %+v", got)
	}
	if _, ok := Mat4Inverse(Mat4{}); ok {
		t.Fatalf("zero matrix reported invertible")
	}
}

func TestTransformAndRotate(t *testing.T) {
	m := Mat4Mul(Mat4Translate(V3Int(1, 2, 3)), Mat4RotateZ(Deg(90)))
	p := m.Transform(V3Int(1, 0, 0))
	if !near(p, V3Int(1, 3, 3), 4) {
		t.Fatalf("Transform = %+v", p)
	}
	r := m.Rotate(V3Int(1, 0, 0))
	if !near(r, V3Int(0, 1, 0), 4) {
		t.Fatalf("Rotate = %+v", r)
	}
}

func TestTransformHomogeneousDivide(t *testing.T) {
	m := Mat4Identity()
	m[15] = FromInt(2)
	if got := m.Transform(V3Int(4, 6, -8)); got != V3Int(2, 3, -4) {
		t.Fatalf("Transform with w=2 = %+v", got)
	}
}

func near(a, b Vec3, tol Fixed) bool {
	return Abs(a.X-b.X) <= tol && Abs(a.Y-b.Y) <= tol && Abs(a.Z-b.Z) <= tol
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
