package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNormalizeZeroVector(t *testing.T) {
	n, ok := Vec2{}.Normalize()
	if ok {
		t.Fatalf("zero vector reported as normalizable")
	}
	if !n.IsZero() {
		t.Fatalf("normalize of zero = %+v, want zero", n)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	n, ok := Vec2{X: 3, Y: 4}.Normalize()
	if !ok {
		t.Fatalf("expected (3,4) to normalize")
	}
	if !near(n.X, 0.6) || !near(n.Y, 0.8) {
		t.Fatalf("normalize (3,4) = %+v, want (0.6,0.8)", n)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		v, n Vec2
		want Vec2
	}{
		{"head on", Vec2{X: 1}, Vec2{X: 1}, Vec2{X: -1}},
		{"glancing", Vec2{X: 1, Y: 1}, Vec2{X: 1}, Vec2{X: -1, Y: 1}},
		{"parallel", Vec2{Y: 2}, Vec2{X: 1}, Vec2{Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.n)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Fatalf("reflect got=%+v want=%+v", got, tt.want)
			}
		})
	}
}

func TestPerpendicular(t *testing.T) {
	p := Vec2{X: 1, Y: 0}.Perpendicular()
	if p != (Vec2{X: 0, Y: 1}) {
		t.Fatalf("perpendicular of +X = %+v, want +Y", p)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	if !near(v.X, 0) || !near(v.Y, 1) {
		t.Fatalf("FromAngle(pi/2) = %+v", v)
	}
	if !near(FromAngle(1.234).Length(), 1) {
		t.Fatalf("FromAngle should return a unit vector")
	}
}

func TestCollisionHelpers(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}
	if !near(Distance(a, b), 10) {
		t.Fatalf("distance = %f, want 10", Distance(a, b))
	}
	if CirclesOverlap(a, 5, b, 5) {
		t.Fatalf("touching circles must not count as overlapping")
	}
	if !CirclesOverlap(a, 5, b, 5.01) {
		t.Fatalf("expected overlap")
	}
	if PointInCircle(b, a, 10) {
		t.Fatalf("point on the rim must not be inside")
	}
}

func TestGridNearbySortedAndClamped(t *testing.T) {
	g := NewSpatialGrid(800, 600, 100)
	g.Insert(Vec2{X: 50, Y: 50}, 4)
	g.Insert(Vec2{X: 150, Y: 50}, 1)
	g.Insert(Vec2{X: 750, Y: 550}, 2)
	g.Insert(Vec2{X: 2000, Y: -400}, 3) // clamped to top-right cell

	got := g.Nearby(Vec2{X: 60, Y: 60}, nil)
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("nearby top-left = %v, want [1 4]", got)
	}

	got = g.Nearby(Vec2{X: 790, Y: 10}, got)
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("nearby top-right = %v, want [3]", got)
	}

	g.Clear()
	if got = g.Nearby(Vec2{X: 60, Y: 60}, got); len(got) != 0 {
		t.Fatalf("expected empty grid after Clear, got %v", got)
	}
}
