package object

import (
	"github.com/tomz197/shieldroids/internal/physics"
)

// Pickup tuning.
const (
	PickupRadius = 15.0
	pickupInset  = 50.0 // Spawn margin from every screen edge

	// A spawn attempt happens when Float64()*pickupRollRange < dt*pickupRollRate.
	pickupRollRange = 150.0
	pickupRollRate  = 5.0

	lowShieldThreshold = 30
	lowShieldChance    = 0.2
	normalChanceOneIn  = 10
)

// Pickup is the shield-restoring bonus that appears at random and expires.
type Pickup struct {
	Pos     Vec2
	visible bool
	timer   float64 // Seconds left while visible
}

// NewPickup creates a hidden pickup at a random position inside the screen inset.
func NewPickup(screen Screen, rng Rand) *Pickup {
	return &Pickup{Pos: pickupPosition(screen, rng)}
}

func pickupPosition(screen Screen, rng Rand) Vec2 {
	return Vec2{
		X: randRange(rng, pickupInset, screen.Width-pickupInset),
		Y: randRange(rng, pickupInset, screen.Height-pickupInset),
	}
}

// Visible reports whether the pickup is on screen.
func (p *Pickup) Visible() bool {
	return p.visible
}

// Remaining returns the seconds left before a visible pickup expires.
func (p *Pickup) Remaining() float64 {
	if !p.visible {
		return 0
	}
	return p.timer
}

// Hide removes the pickup from the screen.
func (p *Pickup) Hide() {
	p.visible = false
	p.timer = 0
}

// Update counts a visible pickup down, or rolls for a new appearance while hidden.
// A low shield makes the pickup both more likely and longer lasting.
// It reports whether the pickup appeared during this call.
func (p *Pickup) Update(dt float64, shield int, screen Screen, rng Rand) bool {
	if p.visible {
		p.timer -= dt
		if p.timer <= 0 {
			p.Hide()
		}
		return false
	}

	if rng.Float64()*pickupRollRange >= dt*pickupRollRate {
		return false
	}

	var duration float64
	if shield < lowShieldThreshold {
		if rng.Float64() >= lowShieldChance {
			return false
		}
		p.Pos = pickupPosition(screen, rng)
		duration = randRange(rng, 10, 15)
	} else {
		if rng.Intn(normalChanceOneIn) != 0 {
			return false
		}
		p.Pos = pickupPosition(screen, rng)
		duration = randRange(rng, 5, 10)
	}

	p.visible = true
	p.timer = duration
	return true
}

// TryCollect hides a visible pickup that the ship touches and reports success.
func (p *Pickup) TryCollect(shipPos Vec2, shipRadius float64) bool {
	if !p.visible {
		return false
	}
	if physics.CirclesOverlap(shipPos, shipRadius, p.Pos, PickupRadius) {
		p.Hide()
		return true
	}
	return false
}
