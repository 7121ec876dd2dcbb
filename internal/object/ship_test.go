package object

import (
	"math/rand"
	"testing"
)

func TestNewShip(t *testing.T) {
	s := NewShip(NewScreen(800, 600))
	if s.Pos != (Vec2{X: 400, Y: 300}) {
		t.Fatalf("ship position %+v, want center", s.Pos)
	}
	if s.Shield() != ShieldMax || s.Heading != 0 || !s.Vel.IsZero() {
		t.Fatalf("fresh ship shield=%d heading=%f vel=%+v", s.Shield(), s.Heading, s.Vel)
	}
}

func TestShipControl(t *testing.T) {
	screen := NewScreen(800, 600)
	s := NewShip(screen)

	s.Control(Controls{Forward: true}, screen)
	if !near(s.Vel.X, ShipThrust*ShipDrag) || !near(s.Pos.X, 400+ShipThrust*ShipDrag) {
		t.Fatalf("after thrust vel=%+v pos=%+v", s.Vel, s.Pos)
	}

	s.Control(Controls{Right: true}, screen)
	if !near(s.Heading, ShipTurnRate) {
		t.Fatalf("heading got=%f want=%f", s.Heading, ShipTurnRate)
	}
	s.Control(Controls{Left: true}, screen)
	s.Control(Controls{Left: true}, screen)
	if !near(s.Heading, -ShipTurnRate) {
		t.Fatalf("heading got=%f want=%f", s.Heading, -ShipTurnRate)
	}

	before := s.Vel.Length()
	s.Control(Controls{}, screen)
	if !near(s.Vel.Length(), before*ShipDrag) {
		t.Fatalf("drag got=%f want=%f", s.Vel.Length(), before*ShipDrag)
	}
}

func TestShipBackwardThrust(t *testing.T) {
	screen := NewScreen(800, 600)
	s := NewShip(screen)
	s.Control(Controls{Backward: true}, screen)
	if !near(s.Vel.X, -ShipThrust*ShipDrag) {
		t.Fatalf("reverse thrust vel=%+v", s.Vel)
	}
}

func TestShipWrapsAtEdges(t *testing.T) {
	screen := NewScreen(800, 600)
	s := NewShip(screen)
	s.Pos = Vec2{X: 1, Y: 300}
	s.Vel = Vec2{X: -10}
	s.Control(Controls{}, screen)
	// -10 * 0.97 = -9.7; 1 - 9.7 = -8.7 -> 808.7
	if !near(s.Pos.X, 808.7) {
		t.Fatalf("wrapped x got=%f want=808.7", s.Pos.X)
	}
}

func collidingAsteroid(size AsteroidSize, at Vec2) *Asteroid {
	return NewAsteroid(size, at, rand.New(rand.NewSource(7)))
}

func TestShieldCostBySize(t *testing.T) {
	tests := []struct {
		size AsteroidSize
		want int
	}{
		{AsteroidSmall, 90},
		{AsteroidMedium, 85},
		{AsteroidLarge, 75},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			s := NewShip(NewScreen(800, 600))
			a := collidingAsteroid(tt.size, s.Pos.Add(Vec2{X: 20}))
			if n := s.ResolveCollisions([]*Asteroid{a}, 1); n != 1 {
				t.Fatalf("touched got=%d want=1", n)
			}
			if s.Shield() != tt.want {
				t.Fatalf("shield got=%d want=%d", s.Shield(), tt.want)
			}
		})
	}
}

func TestShieldCooldown(t *testing.T) {
	s := NewShip(NewScreen(800, 600))
	hit := func(now float64) {
		a := collidingAsteroid(AsteroidSmall, s.Pos.Add(Vec2{X: 10}))
		s.ResolveCollisions([]*Asteroid{a}, now)
	}

	hit(1.0)
	hit(1.3)
	if s.Shield() != 90 {
		t.Fatalf("two hits within cooldown: shield got=%d want=90", s.Shield())
	}
	hit(1.6)
	if s.Shield() != 80 {
		t.Fatalf("hit after cooldown: shield got=%d want=80", s.Shield())
	}
}

func TestShieldNeverNegative(t *testing.T) {
	s := NewShip(NewScreen(800, 600))
	for i := 1; i <= 20; i++ {
		a := collidingAsteroid(AsteroidLarge, s.Pos.Add(Vec2{X: 10}))
		s.ResolveCollisions([]*Asteroid{a}, float64(i))
		if s.Shield() < 0 {
			t.Fatalf("shield went negative: %d", s.Shield())
		}
	}
	if s.Shield() != 0 || !s.Destroyed() {
		t.Fatalf("shield got=%d want=0", s.Shield())
	}
}

func TestShieldNoDamageInFirstHalfSecond(t *testing.T) {
	s := NewShip(NewScreen(800, 600))
	a := collidingAsteroid(AsteroidLarge, s.Pos.Add(Vec2{X: 10}))
	s.ResolveCollisions([]*Asteroid{a}, 0.2)
	if s.Shield() != ShieldMax {
		t.Fatalf("shield got=%d want=%d", s.Shield(), ShieldMax)
	}
}

func TestCollisionPushOutAndImpulse(t *testing.T) {
	s := NewShip(NewScreen(800, 600))
	s.Vel = Vec2{X: 1}
	a := collidingAsteroid(AsteroidLarge, Vec2{X: 450, Y: 300})
	minSpeed := a.MinVelocity().Length()

	s.ResolveCollisions([]*Asteroid{a}, 1)

	if !near(s.Pos.X, 345) || !near(s.Pos.Y, 300) {
		t.Fatalf("ship pushed to %+v, want (345,300)", s.Pos)
	}
	if !near(s.Vel.X, 0.5) {
		t.Fatalf("ship velocity got=%+v want=(0.5,0)", s.Vel)
	}
	want := 1.2
	if want > minSpeed {
		want *= AsteroidFriction
	}
	if !near(a.Vel.X, want) || !near(a.Vel.Y, 0) {
		t.Fatalf("asteroid velocity got=%+v want=(%f,0)", a.Vel, want)
	}
}

func TestCollisionCoincidentCentersStaysFinite(t *testing.T) {
	s := NewShip(NewScreen(800, 600))
	s.Vel = Vec2{X: 1}
	a := collidingAsteroid(AsteroidSmall, s.Pos)
	before := a.Vel
	s.ResolveCollisions([]*Asteroid{a}, 1)
	if s.Pos != (Vec2{X: 400, Y: 300}) {
		t.Fatalf("ship moved to %+v on a degenerate collision", s.Pos)
	}
	if a.Vel != before {
		t.Fatalf("asteroid velocity changed to %+v", a.Vel)
	}
}

func TestFrictionAppliedToUntouchedAsteroids(t *testing.T) {
	s := NewShip(NewScreen(800, 600))
	far := collidingAsteroid(AsteroidSmall, Vec2{X: 10, Y: 10})
	far.Vel = Vec2{X: 3}
	s.ResolveCollisions([]*Asteroid{far}, 1)
	if !near(far.Vel.X, 3*AsteroidFriction) {
		t.Fatalf("friction not applied: vel=%+v", far.Vel)
	}
}

func TestRestoreShieldAndRecenter(t *testing.T) {
	screen := NewScreen(800, 600)
	s := NewShip(screen)
	s.shield = 5
	s.lastHit = 3
	s.RestoreShield()
	if s.Shield() != ShieldMax {
		t.Fatalf("restore got=%d want=%d", s.Shield(), ShieldMax)
	}

	s.shield = 40
	s.Pos = Vec2{X: 10, Y: 20}
	s.Vel = Vec2{X: 3, Y: 3}
	s.Recenter(screen)
	if s.Pos != screen.Center() || !s.Vel.IsZero() {
		t.Fatalf("recenter pos=%+v vel=%+v", s.Pos, s.Vel)
	}
	if s.Shield() != 40 || s.lastHit != 3 {
		t.Fatalf("recenter touched shield=%d lastHit=%f", s.Shield(), s.lastHit)
	}
}
