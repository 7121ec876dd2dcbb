package object

import (
	"github.com/tomz197/shieldroids/internal/physics"
)

// Ship tuning. Rates are per tick.
const (
	ShipRadius       = 15.0
	ShipTurnRate     = 0.05 // Radians per tick while a turn key is held
	ShipThrust       = 0.2  // Velocity added per tick while thrusting
	ShipDrag         = 0.97 // Velocity factor applied every tick
	ShieldMax        = 100
	ShieldCooldown   = 0.5 // Seconds between two shield-damaging hits
	impulseMinSpeed  = 0.1 // Ship speed needed to shove an asteroid
	impulseStrength  = 1.2
	collisionDamping = 0.5 // Ship velocity factor after touching an asteroid
)

// Shield cost of a collision for each asteroid size.
var shieldCost = map[AsteroidSize]int{
	AsteroidSmall:  10,
	AsteroidMedium: 15,
	AsteroidLarge:  25,
}

// ShieldCost returns how much shield a collision with an asteroid of size s removes.
func ShieldCost(s AsteroidSize) int {
	return shieldCost[s]
}

// Controls is the held-key state that steers the ship for one tick.
type Controls struct {
	Left     bool
	Right    bool
	Forward  bool
	Backward bool
}

// Ship is the player-controlled spaceship.
type Ship struct {
	Body
	Heading float64 // Radians, 0 = pointing right

	shield  int     // Percentage in [0, ShieldMax]
	lastHit float64 // Round clock of the last shield-damaging hit
}

// NewShip creates a ship at the screen center with a full shield, heading 0 and no velocity.
func NewShip(screen Screen) *Ship {
	return &Ship{
		Body:   Body{Pos: screen.Center()},
		shield: ShieldMax,
	}
}

// Shield returns the shield percentage.
func (s *Ship) Shield() int {
	return s.shield
}

// Radius returns the ship's collision radius.
func (s *Ship) Radius() float64 {
	return ShipRadius
}

// Control applies one tick of rotation, thrust and drag, then moves and wraps the ship.
func (s *Ship) Control(c Controls, screen Screen) {
	if c.Left {
		s.Heading -= ShipTurnRate
	}
	if c.Right {
		s.Heading += ShipTurnRate
	}

	thrust := physics.FromAngle(s.Heading).Scale(ShipThrust)
	if c.Forward {
		s.Vel = s.Vel.Add(thrust)
	}
	if c.Backward {
		s.Vel = s.Vel.Sub(thrust)
	}

	s.Vel = s.Vel.Scale(ShipDrag)
	AdvanceWrapped(s, screen)
}

// ResolveCollisions pushes the ship out of every asteroid it overlaps, bounces
// those asteroids and applies shield damage, then lets every asteroid settle
// through friction. now is the round clock in seconds. It returns how many
// asteroids were touched.
func (s *Ship) ResolveCollisions(asteroids []*Asteroid, now float64) int {
	touched := 0
	for _, a := range asteroids {
		dist := physics.Distance(s.Pos, a.Pos)
		collisionDist := ShipRadius + a.Radius()

		if dist < collisionDist {
			touched++
			dir := a.Pos.Sub(s.Pos)
			n, ok := dir.Normalize()

			if ok {
				s.Pos = s.Pos.Sub(n.Scale(collisionDist - dist))
			}
			a.Bounce(dir)

			if now-s.lastHit > ShieldCooldown {
				s.lastHit = now
				s.shield = max(s.shield-ShieldCost(a.Size()), 0)
			}

			if speed := s.Vel.Length(); speed > impulseMinSpeed && ok {
				a.Vel = n.Scale(speed * impulseStrength)
			}

			s.Vel = s.Vel.Scale(collisionDamping)
		}

		a.ApplyFriction()
	}
	return touched
}

// RestoreShield refills the shield to ShieldMax.
func (s *Ship) RestoreShield() {
	s.shield = ShieldMax
}

// Recenter puts the ship back at the screen center and stops it.
// Shield and collision cooldown are kept.
func (s *Ship) Recenter(screen Screen) {
	s.Pos = screen.Center()
	s.Vel = Vec2{}
}

// Destroyed reports whether the shield is depleted.
func (s *Ship) Destroyed() bool {
	return s.shield == 0
}
