// Package round runs one game of asteroids: it owns every live entity,
// steps them once per tick and applies the collision, fragmentation and
// level rules between them.
package round

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shieldroids/internal/object"
	"github.com/tomz197/shieldroids/internal/physics"
)

// Phase is the state of the round's state machine.
type Phase int

const (
	PhasePlaying  Phase = iota // Ship alive, entities moving
	PhaseGameOver              // Shield depleted, waiting for restart or quit
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Debris tuning for destroyed asteroids.
const (
	debrisPerSize  = 4
	debrisSpeed    = 2.0
	debrisLifetime = 0.6
)

// Input is what the I/O layer reports for one tick.
type Input struct {
	object.Controls      // Held keys steering the ship
	Fire            int  // Fire presses since the previous tick
	Restart         bool // Restart confirmed this tick
	Quit            bool // Quit held
}

// Options configures a new round.
type Options struct {
	Screen object.Screen
	Rand   object.Rand // Defaults to a time-seeded source
	Logger *log.Logger // Defaults to a discarding logger
}

// Round is the orchestrator. It exclusively owns the asteroid and projectile
// lists and the ship and pickup; entities never reference each other.
type Round struct {
	screen  object.Screen
	rng     object.Rand
	logger  *log.Logger
	spawner *object.AsteroidSpawner

	phase Phase
	level int
	clock float64 // Seconds of play since the round was created
	quit  bool

	ship        *object.Ship
	pickup      *object.Pickup
	asteroids   []*object.Asteroid
	projectiles []*object.Projectile
	particles   []*object.Particle

	// Broad phase for projectile hits, rebuilt every tick
	grid   *physics.SpatialGrid
	nearby []int

	// Per-tick scratch, reused to avoid allocations
	gone      []bool
	hitRocks  []int
	spent     []int
	fragments []*object.Asteroid
}

// New creates a round in the playing phase at level 1 with the opening wave.
func New(opts Options) *Round {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	maxHit := object.ProjectileRadius + object.AsteroidLarge.Radius()
	r := &Round{
		screen:  opts.Screen,
		rng:     rng,
		logger:  logger,
		spawner: object.NewAsteroidSpawner(opts.Screen, rng),
		pickup:  object.NewPickup(opts.Screen, rng),
		grid:    physics.NewSpatialGrid(opts.Screen.Width, opts.Screen.Height, maxHit),
	}
	r.Reset()
	return r
}

// Reset starts over: fresh ship, level 1, no projectiles, a new opening wave.
func (r *Round) Reset() {
	r.ship = object.NewShip(r.screen)
	r.projectiles = r.projectiles[:0]
	r.clearParticles()
	r.pickup.Hide()
	r.level = 1
	r.asteroids = append(r.asteroids[:0], r.spawner.Wave(object.WaveSize(r.level))...)
	r.phase = PhasePlaying
	r.logger.Info("round started", "asteroids", len(r.asteroids))
}

// Tick advances the round by one frame that lasted dt seconds.
func (r *Round) Tick(dt float64, in Input) {
	if in.Quit {
		r.quit = true
		return
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	r.updateParticles(dt)

	switch r.phase {
	case PhaseGameOver:
		if in.Restart {
			r.logger.Info("restart confirmed", "level", r.level)
			r.Reset()
		}
	case PhasePlaying:
		r.clock += dt
		r.step(dt, in)
	}
}

// step runs one playing tick in a fixed order.
func (r *Round) step(dt float64, in Input) {
	for _, a := range r.asteroids {
		a.Move(r.screen)
	}

	r.ship.Control(in.Controls, r.screen)
	shieldBefore := r.ship.Shield()
	if touched := r.ship.ResolveCollisions(r.asteroids, r.clock); touched > 0 && r.ship.Shield() != shieldBefore {
		r.logger.Debug("shield hit", "shield", r.ship.Shield(), "asteroids", touched)
	}

	if r.pickup.Update(dt, r.ship.Shield(), r.screen, r.rng) {
		r.logger.Debug("pickup appeared", "x", r.pickup.Pos.X, "y", r.pickup.Pos.Y, "seconds", r.pickup.Remaining())
	}
	if r.pickup.TryCollect(r.ship.Pos, r.ship.Radius()) {
		r.ship.RestoreShield()
		r.logger.Debug("shield restored")
	}

	for i := 0; i < in.Fire; i++ {
		r.projectiles = append(r.projectiles, object.NewProjectile(r.ship.Pos, r.ship.Heading))
	}
	for _, p := range r.projectiles {
		p.Advance()
	}

	r.resolveProjectileHits()

	if len(r.asteroids) == 0 {
		r.advanceLevel()
	}

	if r.ship.Destroyed() {
		r.phase = PhaseGameOver
		r.logger.Info("game over", "level", r.level)
	}
}

// resolveProjectileHits lets every projectile hit at most one asteroid, the
// first one in list order that it overlaps. Removals and fragment insertions
// are collected during the scan and applied afterwards.
func (r *Round) resolveProjectileHits() {
	if len(r.projectiles) == 0 || len(r.asteroids) == 0 {
		return
	}

	r.grid.Clear()
	for i, a := range r.asteroids {
		r.grid.Insert(a.Pos, i)
	}

	r.gone = resetFlags(r.gone, len(r.asteroids))
	r.hitRocks = r.hitRocks[:0]
	r.spent = r.spent[:0]
	r.fragments = r.fragments[:0]

	for pi, p := range r.projectiles {
		r.nearby = r.grid.Nearby(p.Pos, r.nearby)
		for _, ai := range r.nearby {
			if r.gone[ai] {
				continue
			}
			a := r.asteroids[ai]
			if !physics.PointInCircle(p.Pos, a.Pos, p.HitDistance(a)) {
				continue
			}

			a.TakeHit()
			if a.IsDestroyed() {
				r.gone[ai] = true
				r.hitRocks = append(r.hitRocks, ai)
				r.fragments = append(r.fragments, a.Fragments(p.Pos, r.rng)...)
				r.particles = append(r.particles,
					object.Explosion(a.Pos, int(a.Size())*debrisPerSize, debrisSpeed, debrisLifetime, r.rng)...)
				r.logger.Debug("asteroid destroyed", "size", a.Size(), "level", r.level)
			}
			r.spent = append(r.spent, pi)
			break
		}
	}

	r.asteroids = removeIndices(r.asteroids, r.hitRocks)
	r.asteroids = append(r.asteroids, r.fragments...)
	r.projectiles = removeIndices(r.projectiles, r.spent)
	clear(r.fragments)
}

// advanceLevel moves to the next level once the field is clear.
func (r *Round) advanceLevel() {
	r.level++
	r.asteroids = append(r.asteroids, r.spawner.Wave(object.WaveSize(r.level))...)
	r.ship.Recenter(r.screen)
	r.projectiles = r.projectiles[:0]
	r.logger.Info("level cleared", "level", r.level, "asteroids", len(r.asteroids))
}

// updateParticles ages debris and drops the expired ones.
func (r *Round) updateParticles(dt float64) {
	kept := r.particles[:0]
	for _, p := range r.particles {
		if p.Update(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(r.particles[len(kept):])
	r.particles = kept
}

// clearParticles returns every particle to the pool.
func (r *Round) clearParticles() {
	for _, p := range r.particles {
		p.Release()
	}
	clear(r.particles)
	r.particles = r.particles[:0]
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Level returns the current level, starting at 1.
func (r *Round) Level() int {
	return r.level
}

// Clock returns the seconds of play elapsed since the round was created.
func (r *Round) Clock() float64 {
	return r.clock
}

// Done reports whether quit was requested.
func (r *Round) Done() bool {
	return r.quit
}

// Screen returns the round's bounding rectangle.
func (r *Round) Screen() object.Screen {
	return r.screen
}
