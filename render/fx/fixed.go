package fx

import "fx3d/render/fault"

// Fixed is a signed .8 fixed-point number.
type Fixed int32

// Fixed12 is a signed .12 fixed-point number.
type Fixed12 int32

const (
	Shift   = 8
	One     = Fixed(1 << Shift)
	Shift12 = 12
	One12   = Fixed12(1 << Shift12)
)

func FromInt(n int) Fixed { return Fixed(n << Shift) }

// FromFloat converts a constant. Not meant for the frame loop.
func FromFloat(f float32) Fixed { return Fixed(f * float32(One)) }

// Int truncates toward zero.
func (f Fixed) Int() int { return int(f / One) }

func (f Fixed) Float32() float32 { return float32(f) / float32(One) }

// To12 widens f to the .12 format.
func (f Fixed) To12() Fixed12 { return Fixed12(f) << (Shift12 - Shift) }

func Abs(f Fixed) Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Mul returns (a*b) >> 8.
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> Shift)
}

// Div returns (a << 8) / b. A zero divisor is a fault.
func Div(a, b Fixed) Fixed {
	fault.Check(b != 0, "fx.Div: b != 0")
	return Fixed((int64(a) << Shift) / int64(b))
}

func FromInt12(n int) Fixed12 { return Fixed12(n << Shift12) }

func FromFloat12(f float32) Fixed12 { return Fixed12(f * float32(One12)) }

// Fixed narrows f to the .8 format.
func (f Fixed12) Fixed() Fixed { return Fixed(f >> (Shift12 - Shift)) }

func (f Fixed12) Int() int { return int(f >> Shift12) }

func (f Fixed12) Float32() float32 { return float32(f) / float32(One12) }

func Mul12(a, b Fixed12) Fixed12 {
	return Fixed12((int64(a) * int64(b)) >> Shift12)
}

func Div12(a, b Fixed12) Fixed12 {
	fault.Check(b != 0, "fx.Div12: b != 0")
	return Fixed12((int64(a) << Shift12) / int64(b))
}

// Sqrt returns floor(sqrt(n)).
func Sqrt(n uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}
