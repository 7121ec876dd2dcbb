package object

import (
	"math"
	"testing"
)

func TestProjectileStraightLine(t *testing.T) {
	p := NewProjectile(Vec2{}, 0)
	p.Advance()
	if !near(p.Pos.X, 5) || !near(p.Pos.Y, 0) {
		t.Fatalf("after one tick got=%+v want=(5,0)", p.Pos)
	}
	p.Advance()
	if !near(p.Pos.X, 10) || !near(p.Pos.Y, 0) {
		t.Fatalf("after two ticks got=%+v want=(10,0)", p.Pos)
	}
}

func TestProjectileSpeedAndHeading(t *testing.T) {
	p := NewProjectile(Vec2{X: 10, Y: 20}, math.Pi/2)
	if p.Pos != (Vec2{X: 10, Y: 20}) {
		t.Fatalf("projectile must start at its origin, got %+v", p.Pos)
	}
	if !near(p.Vel.Length(), ProjectileSpeed) || !near(p.Vel.Y, ProjectileSpeed) {
		t.Fatalf("velocity %+v, want (0,%f)", p.Vel, ProjectileSpeed)
	}
}

func TestProjectileDoesNotWrap(t *testing.T) {
	p := NewProjectile(Vec2{X: 798}, 0)
	for i := 0; i < 3; i++ {
		p.Advance()
	}
	if !near(p.Pos.X, 813) {
		t.Fatalf("projectile x got=%f want=813", p.Pos.X)
	}
}

func TestProjectileHitDistance(t *testing.T) {
	p := NewProjectile(Vec2{}, 0)
	a := &Asteroid{size: AsteroidLarge, resistance: 5}
	if got := p.HitDistance(a); got != 93 {
		t.Fatalf("hit distance got=%f want=93", got)
	}
}

func TestExplosionParticlesExpire(t *testing.T) {
	rng := &scriptedRand{}
	burst := Explosion(Vec2{X: 1, Y: 1}, 4, 2, 1, rng)
	if len(burst) != 4 {
		t.Fatalf("burst size got=%d want=4", len(burst))
	}
	p := burst[0]
	if p.Update(0.25) {
		t.Fatalf("particle expired early")
	}
	if p.Pos == (Vec2{X: 1, Y: 1}) {
		t.Fatalf("particle did not move")
	}
	if !p.Update(0.5) {
		t.Fatalf("particle should expire after its lifetime")
	}
	for _, p := range burst {
		p.Release()
	}
}
