// Package config centralizes the tunables of the terminal front end.
// Game rule constants live with the entity types in package object.
package config

import "time"

// Logical resolution shared by every front end. Rendering scales it to fit.
const (
	LogicalWidth  = 800
	LogicalHeight = 600
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 250 * time.Millisecond // Longer stalls are clamped so entities don't jump
)

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered render area.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 75
)

// HUD
const (
	ShieldBarWidth = 20
	LowShield      = 30 // Shield percentage below which the HUD warns
)

// Inactivity, applied to remote sessions only
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)

// Shutdown
const (
	ShutdownGrace = 5 * time.Second
)
