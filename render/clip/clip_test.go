package clip

import (
	"testing"

	"fx3d/render/fault"
	"fx3d/render/geom"
)

var screen = geom.Bounds{W: 160, H: 100}

func clipTri(a, b, c geom.Point) []geom.Point {
	var buf Poly
	buf[0], buf[1], buf[2] = a, b, c
	n := Triangle(&buf, screen)
	return append([]geom.Point(nil), buf[:n]...)
}

// sameCycle reports whether got is a rotation of want.
func sameCycle(got, want []geom.Point) bool {
	if len(got) != len(want) {
		return false
	}
	for off := range want {
		ok := true
		for i := range want {
			if got[i] != want[(i+off)%len(want)] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func TestTriangleInsideIsUnchanged(t *testing.T) {
	in := []geom.Point{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 30, Y: 40}}
	out := clipTri(in[0], in[1], in[2])
	if !sameCycle(out, in) {
		t.Fatalf("got %v, want rotation of %v", out, in)
	}
	again := clipTri(out[0], out[1], out[2])
	if !sameCycle(again, in) {
		t.Fatalf("second clip changed polygon: %v", again)
	}
}

func TestTriangleOffscreen(t *testing.T) {
	if out := clipTri(geom.Point{X: -50, Y: -50}, geom.Point{X: -10, Y: -60}, geom.Point{X: -30, Y: -5}); len(out) != 0 {
		t.Fatalf("got %v, want empty", out)
	}
	if out := clipTri(geom.Point{X: 200, Y: 10}, geom.Point{X: 300, Y: 10}, geom.Point{X: 250, Y: 80}); len(out) != 0 {
		t.Fatalf("got %v, want empty", out)
	}
}

func TestTrianglePartial(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c geom.Point
		want    []geom.Point
	}{
		{
			name: "left",
			a:    geom.Point{X: -20, Y: 50}, b: geom.Point{X: 80, Y: 10}, c: geom.Point{X: 80, Y: 90},
			want: []geom.Point{{X: 0, Y: 42}, {X: 80, Y: 10}, {X: 80, Y: 90}, {X: 0, Y: 58}},
		},
		{
			name: "covers",
			a:    geom.Point{X: -100, Y: -100}, b: geom.Point{X: 400, Y: -100}, c: geom.Point{X: -100, Y: 300},
			want: []geom.Point{{X: 0, Y: 0}, {X: 159, Y: 0}, {X: 159, Y: 92}, {X: 151, Y: 99}, {X: 0, Y: 99}},
		},
		{
			name: "heptagon",
			a:    geom.Point{X: 80, Y: -40}, b: geom.Point{X: 200, Y: 50}, c: geom.Point{X: -30, Y: 140},
			want: []geom.Point{{X: 0, Y: 99}, {X: 0, Y: 90}, {X: 55, Y: 0}, {X: 133, Y: 0}, {X: 159, Y: 19}, {X: 159, Y: 65}, {X: 74, Y: 99}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := clipTri(tt.a, tt.b, tt.c)
			if !sameCycle(out, tt.want) {
				t.Fatalf("got %v, want %v", out, tt.want)
			}
			if len(out) < 3 || len(out) > 7 {
				t.Fatalf("vertex count %d", len(out))
			}
			for _, p := range out {
				if !screen.Contains(p) {
					t.Fatalf("vertex %v out of bounds", p)
				}
			}
		})
	}
}

func TestIntersectParallelFaults(t *testing.T) {
	f := fault.Catch(func() {
		Intersect(EdgeLeft, geom.Point{X: 5, Y: 10}, geom.Point{X: 5, Y: 40}, screen)
	})
	if f == nil {
		t.Fatalf("expected fault for vertical segment against left edge")
	}
	f = fault.Catch(func() {
		Intersect(EdgeTop, geom.Point{X: 5, Y: 10}, geom.Point{X: 50, Y: 10}, screen)
	})
	if f == nil {
		t.Fatalf("expected fault for horizontal segment against top edge")
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		a, b   geom.Point
		ok     bool
		wa, wb geom.Point
	}{
		{"inside", geom.Point{X: 1, Y: 1}, geom.Point{X: 100, Y: 50}, true, geom.Point{X: 1, Y: 1}, geom.Point{X: 100, Y: 50}},
		{"trivial reject", geom.Point{X: -5, Y: 10}, geom.Point{X: -5, Y: 80}, false, geom.Point{}, geom.Point{}},
		{"left", geom.Point{X: -10, Y: 50}, geom.Point{X: 80, Y: 50}, true, geom.Point{X: 0, Y: 50}, geom.Point{X: 80, Y: 50}},
		{"both ends", geom.Point{X: 80, Y: -20}, geom.Point{X: 80, Y: 130}, true, geom.Point{X: 80, Y: 0}, geom.Point{X: 80, Y: 99}},
		{"right", geom.Point{X: 100, Y: 20}, geom.Point{X: 200, Y: 20}, true, geom.Point{X: 100, Y: 20}, geom.Point{X: 159, Y: 20}},
		{"corner miss", geom.Point{X: -10, Y: 5}, geom.Point{X: 5, Y: -10}, false, geom.Point{}, geom.Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a, tt.b
			ok := Line(&a, &b, screen)
			if ok != tt.ok {
				t.Fatalf("Line = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if a != tt.wa || b != tt.wb {
				t.Fatalf("got %v-%v, want %v-%v", a, b, tt.wa, tt.wb)
			}
		})
	}
}
