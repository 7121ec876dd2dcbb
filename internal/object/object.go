// Package object holds the mobile entities of a round and the rules each one owns.
package object

import (
	"github.com/tomz197/shieldroids/internal/physics"
)

// Vec2 is an alias for the physics package's vector type.
type Vec2 = physics.Vec2

// Rand is the randomness source entities draw from when spawning or updating.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Screen is the bounding rectangle used for wrapping and spawning.
type Screen struct {
	Width  float64
	Height float64
}

// NewScreen creates a screen of the given logical size.
func NewScreen(width, height float64) Screen {
	return Screen{Width: width, Height: height}
}

// Center returns the middle of the screen.
func (s Screen) Center() Vec2 {
	return Vec2{X: s.Width / 2, Y: s.Height / 2}
}

// Wrap moves an out-of-bounds position to the opposite edge.
// A coordinate below 0 becomes max - coord and one above max becomes coord - max.
// This is not a modulo: coordinates far outside the screen stay out of bounds.
func (s Screen) Wrap(p Vec2) Vec2 {
	return Vec2{
		X: wrapCoord(p.X, s.Width),
		Y: wrapCoord(p.Y, s.Height),
	}
}

func wrapCoord(coord, limit float64) float64 {
	switch {
	case coord < 0:
		return limit - coord
	case coord > limit:
		return coord - limit
	default:
		return coord
	}
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Movable is the capability shared by every body that moves each tick.
type Movable interface {
	Position() Vec2
	SetPosition(p Vec2)
	Velocity() Vec2
	SetVelocity(v Vec2)
	// Advance adds the velocity to the position once.
	Advance()
}

// Body is the position/velocity pair embedded in every mobile entity.
type Body struct {
	Pos Vec2
	Vel Vec2
}

// Position returns the body's position.
func (b *Body) Position() Vec2 { return b.Pos }

// SetPosition moves the body to p.
func (b *Body) SetPosition(p Vec2) { b.Pos = p }

// Velocity returns the body's velocity (units per tick).
func (b *Body) Velocity() Vec2 { return b.Vel }

// SetVelocity replaces the body's velocity.
func (b *Body) SetVelocity(v Vec2) { b.Vel = v }

// Advance adds the velocity to the position.
func (b *Body) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

// AdvanceWrapped advances m and wraps its position at the screen edges.
func AdvanceWrapped(m Movable, screen Screen) {
	m.Advance()
	m.SetPosition(screen.Wrap(m.Position()))
}

// Compile-time checks that every entity is Movable.
var (
	_ Movable = (*Asteroid)(nil)
	_ Movable = (*Projectile)(nil)
	_ Movable = (*Ship)(nil)
)
