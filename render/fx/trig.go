package fx

// Angle is a .12 turn fraction: 0..0xFFFF covers one full turn.
type Angle int32

const (
	Turn      Angle = 0xFFFF
	HalfTurn  Angle = 0x8000
	oneDegree Angle = 0xB6
)

// Deg converts whole degrees.
func Deg(d int) Angle { return oneDegree * Angle(d) }

// Freq converts a frequency in Hz to an angular speed in turns per second.
func Freq(hz Fixed12) Angle { return Angle(Mul12(hz, Fixed12(Turn))) }

func absAngle(a Angle) Angle {
	if a < 0 {
		return -a
	}
	return a
}

//go:generate go run ../../cmd/mklut -out sinlut.go

func luSin(theta Angle) Fixed12 { return Fixed12(sinLUT[(theta>>7)&0x1FF]) }

func luCos(theta Angle) Fixed12 { return Fixed12(sinLUT[((theta>>7)+128)&0x1FF]) }

// Sin12 is Sin in the .12 format.
func Sin12(a Angle) Fixed12 {
	if a < 0 {
		return -luSin(absAngle(a) & 0xFFFF)
	}
	return luSin(a & 0xFFFF)
}

// Cos12 is Cos in the .12 format. Cosine is even, so the sign is dropped.
func Cos12(a Angle) Fixed12 { return luCos(absAngle(a) & 0xFFFF) }

func Sin(a Angle) Fixed {
	if a < 0 {
		return -luSin(absAngle(a) & 0xFFFF).Fixed()
	}
	return luSin(a & 0xFFFF).Fixed()
}

func Cos(a Angle) Fixed { return luCos(absAngle(a) & 0xFFFF).Fixed() }
