// Package window runs a round in a desktop window using ebitengine.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/shieldroids/internal/object"
	"github.com/tomz197/shieldroids/internal/physics"
	"github.com/tomz197/shieldroids/internal/round"
)

// maxDelta clamps the frame time after a stall.
const maxDelta = 0.25

var (
	colorAsteroid   = color.RGBA{200, 200, 200, 255}
	colorShip       = color.RGBA{0, 255, 0, 255}
	colorProjectile = color.RGBA{255, 255, 0, 255}
	colorPickup     = color.RGBA{0, 160, 255, 255}
	colorDebris     = color.RGBA{255, 140, 0, 255}
	colorShieldLow  = color.RGBA{255, 0, 0, 255}
	colorShieldBg   = color.RGBA{100, 0, 0, 255}
)

// Game adapts a round to ebiten.Game.
type Game struct {
	round  *round.Round
	screen object.Screen
	logger *log.Logger

	lastUpdate time.Time
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a window game around a fresh round.
func NewGame(screen object.Screen, rng object.Rand, logger *log.Logger) *Game {
	return &Game{
		round:  round.New(round.Options{Screen: screen, Rand: rng, Logger: logger}),
		screen: screen,
		logger: logger,
	}
}

// Update polls the keyboard and ticks the round once.
func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !g.lastUpdate.IsZero() {
		dt = min(now.Sub(g.lastUpdate).Seconds(), maxDelta)
	}
	g.lastUpdate = now

	g.round.Tick(dt, readInput())
	if g.round.Done() {
		return ebiten.Termination
	}
	return nil
}

func readInput() round.Input {
	in := round.Input{
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:    ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
	in.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	in.Forward = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	in.Backward = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Fire = 1
	}
	return in
}

// Draw renders the latest snapshot and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.round.Snapshot()

	for _, a := range snap.Asteroids {
		vector.StrokeCircle(screen, float32(a.Pos.X), float32(a.Pos.Y), float32(a.Radius), 2, colorAsteroid, true)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(object.ProjectileRadius), colorProjectile, true)
	}
	for _, p := range snap.Particles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), 2, 2, colorDebris, false)
	}
	if snap.Pickup.Visible {
		vector.DrawFilledCircle(screen, float32(snap.Pickup.Pos.X), float32(snap.Pickup.Pos.Y), float32(snap.Pickup.Radius), colorPickup, true)
	}

	switch snap.Phase {
	case round.PhasePlaying:
		drawShip(screen, snap.Ship)
		drawShieldBar(screen, snap.Ship.Shield)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", snap.Level), 10, 10)
	case round.PhaseGameOver:
		cx, cy := int(g.screen.Width/2), int(g.screen.Height/2)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, cy-30)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("You reached level %d", snap.Level), cx-60, cy)
		ebitenutil.DebugPrintAt(screen, "ENTER to play again, ESC to quit", cx-96, cy+30)
	}
}

func drawShip(screen *ebiten.Image, s round.ShipView) {
	nose := s.Pos.Add(physics.FromAngle(s.Heading).Scale(s.Radius))
	left := s.Pos.Add(physics.FromAngle(s.Heading + 2.5).Scale(s.Radius))
	right := s.Pos.Add(physics.FromAngle(s.Heading - 2.5).Scale(s.Radius))

	for _, edge := range [][2]object.Vec2{{nose, left}, {left, right}, {right, nose}} {
		vector.StrokeLine(screen, float32(edge[0].X), float32(edge[0].Y), float32(edge[1].X), float32(edge[1].Y), 2, colorShip, true)
	}
}

// drawShieldBar draws the shield gauge in the top right corner.
func drawShieldBar(screen *ebiten.Image, shield int) {
	const barWidth, barHeight = 200.0, 12.0
	w := float32(screen.Bounds().Dx())
	x, y := w-barWidth-10, float32(10)

	clr := color.Color(colorShip)
	if shield < 30 {
		clr = colorShieldLow
	}
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, colorShieldBg, true)
	vector.DrawFilledRect(screen, x, y, barWidth*float32(shield)/object.ShieldMax, barHeight, clr, true)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Shield %d%%", shield), int(x)-80, int(y)-2)
}

// Layout keeps the logical screen size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.screen.Width), int(g.screen.Height)
}
