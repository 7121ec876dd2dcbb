package object

import (
	"math"
	"sync"

	"github.com/tomz197/shieldroids/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived debris dot left behind by a destroyed asteroid.
// Particles never interact with anything; they only exist for renderers.
type Particle struct {
	Body
	Lifetime float64 // Seconds remaining
	drag     float64 // Velocity factor per tick
}

// NewParticle takes a particle from the pool.
func NewParticle(pos, vel Vec2, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = vel
	p.Lifetime = lifetime
	p.drag = 0.95
	return p
}

// Release returns the particle to the pool for reuse.
// Must be called once the particle is dropped from its owner's list.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update moves the particle and reports whether it has expired.
func (p *Particle) Update(dt float64) (expired bool) {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}
	p.Vel = p.Vel.Scale(p.drag)
	p.Advance()
	return false
}

// Explosion returns count particles bursting from center at around speed units per tick.
func Explosion(center Vec2, count int, speed, lifetime float64, rng Rand) []*Particle {
	burst := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// 50% to 150% speed, 50% to 100% lifetime
		spd := speed * (0.5 + rng.Float64())
		life := lifetime * (0.5 + rng.Float64()*0.5)
		burst = append(burst, NewParticle(center, physics.FromAngle(angle).Scale(spd), life))
	}
	return burst
}
