package object

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// scriptedRand replays fixed values; once a queue is empty it returns zero.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0] % n
	r.ints = r.ints[1:]
	return i
}

func TestWrap(t *testing.T) {
	screen := NewScreen(800, 600)
	tests := []struct {
		in, want Vec2
	}{
		{Vec2{X: -5, Y: 10}, Vec2{X: 805, Y: 10}},
		{Vec2{X: 805, Y: 10}, Vec2{X: 5, Y: 10}},
		{Vec2{X: 400, Y: -1}, Vec2{X: 400, Y: 601}},
		{Vec2{X: 400, Y: 650}, Vec2{X: 400, Y: 50}},
		{Vec2{X: 800, Y: 0}, Vec2{X: 800, Y: 0}},
	}
	for _, tt := range tests {
		got := screen.Wrap(tt.in)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Fatalf("Wrap(%+v) got=%+v want=%+v", tt.in, got, tt.want)
		}
	}
}

func TestAdvanceWrapped(t *testing.T) {
	screen := NewScreen(800, 600)
	b := &Asteroid{Body: Body{Pos: Vec2{X: 2, Y: 300}, Vel: Vec2{X: -7}}}
	AdvanceWrapped(b, screen)
	if !near(b.Pos.X, 805) {
		t.Fatalf("x after wrap = %f, want 805", b.Pos.X)
	}
}

func TestScreenCenter(t *testing.T) {
	c := NewScreen(800, 600).Center()
	if c != (Vec2{X: 400, Y: 300}) {
		t.Fatalf("center = %+v", c)
	}
}
