package object

import (
	"math"

	"github.com/tomz197/shieldroids/internal/physics"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// AsteroidBaseSize is the radius of a medium asteroid; the other sizes derive from it.
const AsteroidBaseSize = 60.0

// FragmentOffset is how far each fragment is pushed away from its parent's center.
const FragmentOffset = 50.0

// AsteroidFriction is the per-tick velocity factor applied while an asteroid moves faster than its drift.
const AsteroidFriction = 0.98

// Size properties for each asteroid size.
var asteroidRadii = map[AsteroidSize]float64{
	AsteroidSmall:  AsteroidBaseSize / 2,
	AsteroidMedium: AsteroidBaseSize,
	AsteroidLarge:  AsteroidBaseSize * 1.5,
}

var asteroidResistance = map[AsteroidSize]int{
	AsteroidSmall:  1,
	AsteroidMedium: 3,
	AsteroidLarge:  5,
}

// Valid reports whether s is one of the three size classes.
func (s AsteroidSize) Valid() bool {
	return s >= AsteroidSmall && s <= AsteroidLarge
}

// Radius returns the collision/draw radius for the size. Unknown sizes fall back to medium.
func (s AsteroidSize) Radius() float64 {
	if r, ok := asteroidRadii[s]; ok {
		return r
	}
	return AsteroidBaseSize
}

// InitialResistance returns how many hits a fresh asteroid of this size withstands.
// Unknown sizes withstand a single hit.
func (s AsteroidSize) InitialResistance() int {
	if r, ok := asteroidResistance[s]; ok {
		return r
	}
	return 1
}

// String returns the size name.
func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Asteroid is a space rock that fragments when its resistance runs out.
type Asteroid struct {
	Body
	minVel     Vec2         // Drift velocity drawn at spawn, never changed
	size       AsteroidSize // Size category, immutable
	resistance int          // Remaining hits before destruction
}

// NewAsteroid creates an asteroid of the given size at pos with a random unit drift.
// It is also how fragments of a destroyed asteroid are made.
func NewAsteroid(size AsteroidSize, pos Vec2, rng Rand) *Asteroid {
	vel := randomDrift(rng)
	return &Asteroid{
		Body:       Body{Pos: pos, Vel: vel},
		minVel:     vel,
		size:       size,
		resistance: size.InitialResistance(),
	}
}

// NewAsteroidAtEdge creates an asteroid of random size near one of the four screen edges.
// The distance from the edge lies in [AsteroidBaseSize/2, AsteroidBaseSize] so that
// spawns never appear mid-screen.
func NewAsteroidAtEdge(screen Screen, rng Rand) *Asteroid {
	size := AsteroidSize(1 + rng.Intn(3))
	inset := randRange(rng, AsteroidBaseSize/2, AsteroidBaseSize)

	var pos Vec2
	switch rng.Intn(4) {
	case 0: // Top
		pos = Vec2{X: rng.Float64() * screen.Width, Y: inset}
	case 1: // Right
		pos = Vec2{X: screen.Width - inset, Y: rng.Float64() * screen.Height}
	case 2: // Bottom
		pos = Vec2{X: rng.Float64() * screen.Width, Y: screen.Height - inset}
	default: // Left
		pos = Vec2{X: inset, Y: rng.Float64() * screen.Height}
	}

	return NewAsteroid(size, pos, rng)
}

// randomDrift returns a unit vector with a uniform random heading.
func randomDrift(rng Rand) Vec2 {
	return physics.FromAngle(rng.Float64() * 2 * math.Pi)
}

// Size returns the asteroid's size category.
func (a *Asteroid) Size() AsteroidSize {
	return a.size
}

// Radius returns the asteroid's collision radius.
func (a *Asteroid) Radius() float64 {
	return a.size.Radius()
}

// Resistance returns the number of hits the asteroid can still take.
func (a *Asteroid) Resistance() int {
	return a.resistance
}

// MinVelocity returns the drift velocity the asteroid settles back to.
func (a *Asteroid) MinVelocity() Vec2 {
	return a.minVel
}

// Move advances the asteroid and wraps it at the screen edges.
func (a *Asteroid) Move(screen Screen) {
	AdvanceWrapped(a, screen)
}

// TakeHit removes one point of resistance, never going below zero.
func (a *Asteroid) TakeHit() {
	if a.resistance > 0 {
		a.resistance--
	}
}

// IsDestroyed returns true once resistance has reached zero.
func (a *Asteroid) IsDestroyed() bool {
	return a.resistance == 0
}

// Bounce reflects the velocity about the normalized collision direction.
// A zero direction leaves the velocity untouched.
func (a *Asteroid) Bounce(direction Vec2) {
	n, ok := direction.Normalize()
	if !ok {
		return
	}
	a.Vel = a.Vel.Reflect(n)
}

// ApplyFriction slows an asteroid that was struck back towards its drift speed.
// The last step may undershoot the drift speed by up to (1 - AsteroidFriction);
// no clamp is applied afterwards.
func (a *Asteroid) ApplyFriction() {
	if a.Vel.Length() > a.minVel.Length() {
		a.Vel = a.Vel.Scale(AsteroidFriction)
	}
}

// Fragments returns the asteroids produced when a is destroyed by a projectile at hitPos.
// Large yields two medium, medium yields two small and small yields none.
func (a *Asteroid) Fragments(hitPos Vec2, rng Rand) []*Asteroid {
	var childSize AsteroidSize
	switch a.size {
	case AsteroidLarge:
		childSize = AsteroidMedium
	case AsteroidMedium:
		childSize = AsteroidSmall
	default:
		return nil
	}

	p1, p2 := FragmentPositions(hitPos, a.Pos)
	return []*Asteroid{
		NewAsteroid(childSize, p1, rng),
		NewAsteroid(childSize, p2, rng),
	}
}

// FragmentPositions places two fragments FragmentOffset away from the parent center,
// on either side of the axis perpendicular to the projectile's approach.
// A projectile sitting exactly on the center is treated as approaching along +X.
func FragmentPositions(hitPos, center Vec2) (Vec2, Vec2) {
	dir, ok := center.Sub(hitPos).Normalize()
	if !ok {
		dir = Vec2{X: 1}
	}
	offset := dir.Perpendicular().Scale(FragmentOffset)
	return center.Add(offset), center.Sub(offset)
}
