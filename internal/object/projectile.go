package object

import (
	"github.com/tomz197/shieldroids/internal/physics"
)

// ProjectileSpeed is the distance a projectile travels per tick.
const ProjectileSpeed = 5.0

// ProjectileRadius is the collision radius of a projectile.
const ProjectileRadius = 3.0

// Projectile is a shot fired by the ship. It flies in a straight line and never wraps.
type Projectile struct {
	Body
}

// NewProjectile fires a projectile from origin towards heading (radians).
func NewProjectile(origin Vec2, heading float64) *Projectile {
	return &Projectile{
		Body: Body{
			Pos: origin,
			Vel: physics.FromAngle(heading).Scale(ProjectileSpeed),
		},
	}
}

// HitDistance returns the center distance below which the projectile hits an asteroid.
func (p *Projectile) HitDistance(a *Asteroid) float64 {
	return ProjectileRadius + a.Radius()
}
