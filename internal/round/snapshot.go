package round

import (
	"github.com/tomz197/shieldroids/internal/object"
)

// AsteroidView is the render data of one asteroid.
type AsteroidView struct {
	Pos        object.Vec2
	Radius     float64
	Size       object.AsteroidSize
	Resistance int
}

// ShipView is the render data of the ship.
type ShipView struct {
	Pos     object.Vec2
	Heading float64
	Radius  float64
	Shield  int
}

// PickupView is the render data of the shield pickup.
type PickupView struct {
	Pos       object.Vec2
	Radius    float64
	Visible   bool
	Remaining float64
}

// Snapshot is an immutable copy of everything a renderer needs after a tick.
type Snapshot struct {
	Phase       Phase
	Level       int
	Screen      object.Screen
	Ship        ShipView
	Pickup      PickupView
	Asteroids   []AsteroidView
	Projectiles []object.Vec2
	Particles   []object.Vec2
}

// Snapshot copies the current state out of the round.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Phase:  r.phase,
		Level:  r.level,
		Screen: r.screen,
		Ship: ShipView{
			Pos:     r.ship.Pos,
			Heading: r.ship.Heading,
			Radius:  r.ship.Radius(),
			Shield:  r.ship.Shield(),
		},
		Pickup: PickupView{
			Pos:       r.pickup.Pos,
			Radius:    object.PickupRadius,
			Visible:   r.pickup.Visible(),
			Remaining: r.pickup.Remaining(),
		},
		Asteroids:   make([]AsteroidView, 0, len(r.asteroids)),
		Projectiles: make([]object.Vec2, 0, len(r.projectiles)),
		Particles:   make([]object.Vec2, 0, len(r.particles)),
	}

	for _, a := range r.asteroids {
		s.Asteroids = append(s.Asteroids, AsteroidView{
			Pos:        a.Pos,
			Radius:     a.Radius(),
			Size:       a.Size(),
			Resistance: a.Resistance(),
		})
	}
	for _, p := range r.projectiles {
		s.Projectiles = append(s.Projectiles, p.Pos)
	}
	for _, p := range r.particles {
		s.Particles = append(s.Particles, p.Pos)
	}
	return s
}
