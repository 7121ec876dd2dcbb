package loop

import (
	"fmt"

	"github.com/tomz197/shieldroids/internal/draw"
	"github.com/tomz197/shieldroids/internal/loop/config"
	"github.com/tomz197/shieldroids/internal/object"
	"github.com/tomz197/shieldroids/internal/physics"
	"github.com/tomz197/shieldroids/internal/round"
)

// Ship outline: nose on the heading, rear corners swept back by shipWing radians.
const shipWing = 2.5

// drawWorld draws every entity of the snapshot onto the canvas.
func drawWorld(c *draw.Canvas, snap round.Snapshot) {
	for _, a := range snap.Asteroids {
		c.Circle(a.Pos, a.Radius)
	}
	for _, p := range snap.Projectiles {
		c.Plot(p)
	}
	for _, p := range snap.Particles {
		c.Plot(p)
	}
	if snap.Pickup.Visible {
		c.Disc(snap.Pickup.Pos, snap.Pickup.Radius)
	}
	if snap.Phase == round.PhasePlaying {
		c.Polygon(shipOutline(snap.Ship))
	}
}

// shipOutline returns the ship triangle in logical coordinates.
func shipOutline(s round.ShipView) []object.Vec2 {
	return []object.Vec2{
		s.Pos.Add(physics.FromAngle(s.Heading).Scale(s.Radius)),
		s.Pos.Add(physics.FromAngle(s.Heading + shipWing).Scale(s.Radius)),
		s.Pos.Add(physics.FromAngle(s.Heading - shipWing).Scale(s.Radius)),
	}
}

// drawHUD draws the text overlay. Text fields use fixed-width formatting so
// shrinking values don't leave residual characters, since cells are only
// redrawn when they change.
func drawHUD(cw *draw.ChunkWriter, cols, rows int, snap round.Snapshot, inactive bool) {
	centerX, centerY := cols/2, rows/2

	if inactive {
		drawInactivityScreen(cw, centerX, centerY)
		return
	}

	switch snap.Phase {
	case round.PhasePlaying:
		drawPlayingHUD(cw, cols, snap)
	case round.PhaseGameOver:
		drawGameOverScreen(cw, centerX, centerY, snap.Level)
	}
}

// drawPlayingHUD draws the level (top left) and shield gauge (top right).
func drawPlayingHUD(cw *draw.ChunkWriter, cols int, snap round.Snapshot) {
	cw.WriteAt(2, 1, levelText(snap.Level))

	shield := shieldText(snap.Ship.Shield)
	cw.WriteAt(cols-len([]rune(shield)), 1, shield)
}

func levelText(level int) string {
	return fmt.Sprintf("Level: %-3d", level)
}

// shieldText renders e.g. "Shield ██████████░░░░░░░░░░  50%".
func shieldText(shield int) string {
	bar := draw.Bar(float64(shield)/object.ShieldMax, config.ShieldBarWidth)
	text := fmt.Sprintf("Shield %s %3d%%", bar, shield)
	if shield < config.LowShield {
		text = "! " + text
	} else {
		text = "  " + text
	}
	return text
}

// drawGameOverScreen draws the game over screen with the level reached.
func drawGameOverScreen(cw *draw.ChunkWriter, centerX, centerY, level int) {
	title := "G A M E   O V E R"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	reached := fmt.Sprintf("You reached level %d", level)
	cw.WriteAt(centerX-len(reached)/2, centerY, reached)

	prompt := "Press ENTER to play again, ESC to quit"
	cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}

// drawInactivityScreen warns a remote player before the idle disconnect.
func drawInactivityScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-1, title)

	hint := "Press any key or you will be disconnected"
	cw.WriteAt(centerX-len(hint)/2, centerY+1, hint)
}
