package geom

import "testing"

func TestBoundsContains(t *testing.T) {
	b := Bounds{W: 160, H: 100}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{159, 99}, true},
		{Point{160, 0}, false},
		{Point{0, 100}, false},
		{Point{-1, 5}, false},
		{Unprojectable, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Fatalf("Contains(%v) = %v", tt.p, got)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	r, g, b := White.RGB888()
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("white = %d,%d,%d", r, g, b)
	}
	if Red != 0xF800 || Green != 0x07E0 || Blue != 0x001F {
		t.Fatalf("primaries %04x %04x %04x", Red, Green, Blue)
	}
}

func TestGray5(t *testing.T) {
	if Gray5(31) != White {
		t.Fatalf("Gray5(31) = %04x", Gray5(31))
	}
	if Gray5(0) != Black || Gray5(-4) != Black {
		t.Fatalf("Gray5(0) not black")
	}
	r, g, b := Gray5(16).RGB888()
	if r != b || int(g)-int(r) > 4 || int(r)-int(g) > 4 {
		t.Fatalf("Gray5(16) = %d,%d,%d", r, g, b)
	}
}
