// Package loop runs a round in a terminal with the standard Input → Update → Draw cycle.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shieldroids/internal/draw"
	"github.com/tomz197/shieldroids/internal/input"
	"github.com/tomz197/shieldroids/internal/loop/config"
	"github.com/tomz197/shieldroids/internal/object"
	"github.com/tomz197/shieldroids/internal/round"
)

// Options configures a terminal session.
type Options struct {
	Screen       object.Screen     // Logical screen; zero uses config.LogicalWidth×LogicalHeight
	FPS          int               // Zero uses config.TargetFPS
	TermSizeFunc draw.TermSizeFunc // Nil uses draw.DefaultTermSizeFunc
	IdleTimeout  time.Duration     // Disconnect after this long without input; zero disables
	Logger       *log.Logger       // Nil uses log.Default()
	Rand         object.Rand       // Nil seeds from the clock
}

// session holds everything one terminal needs between frames.
type session struct {
	round    *round.Round
	stream   *input.Stream
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	sizeFunc draw.TermSizeFunc
	logger   *log.Logger
	idle     time.Duration

	started     time.Time
	termCols    int
	termRows    int
	prevPhase   round.Phase
	inactive    bool
	wasInactive bool
}

// Run plays a round on the terminal behind r and w until the player quits,
// the context ends, the reader closes or the session idles out.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	s := newSession(r, w, opts)
	frameTime := config.TargetFrameTime
	if opts.FPS > 0 {
		frameTime = time.Second / time.Duration(opts.FPS)
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	last := time.Now()
	for {
		now := time.Now()
		dt := min(now.Sub(last), config.MaxFrameDelta)
		last = now

		done, err := s.frame(now, dt)
		if err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		if done {
			s.logger.Info("session finished", "level", s.round.Level(), "phase", s.round.Phase())
			return nil
		}

		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled", "level", s.round.Level())
			return nil
		case <-ticker.C:
		}
	}
}

func newSession(r io.Reader, w io.Writer, opts Options) *session {
	screen := opts.Screen
	if screen.Width <= 0 || screen.Height <= 0 {
		screen = object.NewScreen(config.LogicalWidth, config.LogicalHeight)
	}
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &session{
		round: round.New(round.Options{
			Screen: screen,
			Rand:   opts.Rand,
			Logger: logger,
		}),
		stream:    input.StartStream(r),
		canvas:    draw.NewCanvas(0, 0, screen.Width, screen.Height),
		cw:        draw.NewChunkWriter(w),
		sizeFunc:  sizeFunc,
		logger:    logger,
		idle:      opts.IdleTimeout,
		started:   time.Now(),
		prevPhase: round.PhasePlaying,
	}
	s.updateScreen()
	return s
}

// frame runs one Input → Update → Draw cycle. It reports whether the session is over.
func (s *session) frame(now time.Time, dt time.Duration) (bool, error) {
	in := s.stream.Read(now)
	s.round.Tick(dt.Seconds(), in)
	if s.round.Done() {
		return true, nil
	}

	if s.idle > 0 {
		since := now.Sub(s.lastActivity())
		if since > s.idle {
			s.logger.Info("idle timeout", "after", since.Round(time.Second))
			return true, nil
		}
		s.inactive = since > min(config.InactivityWarn, s.idle*3/4)
	}

	s.updateScreen()
	return false, s.draw()
}

func (s *session) lastActivity() time.Time {
	if t := s.stream.LastActivity(); !t.IsZero() {
		return t
	}
	return s.started
}

// updateScreen follows terminal resizes, clamped to the max render resolution.
// A changed render area clears the terminal so no stale cells remain outside it.
func (s *session) updateScreen() {
	cols, rows, err := s.sizeFunc()
	if err != nil {
		return
	}
	if cols == s.termCols && rows == s.termRows {
		return
	}
	s.termCols, s.termRows = cols, rows

	renderCols, renderRows, offCol, offRow := draw.Fit(cols, rows, config.MaxTermWidth, config.MaxTermHeight)
	s.canvas.Resize(renderCols, renderRows)
	s.canvas.SetOffset(offCol, offRow)
	s.canvas.ForceRedraw()
	s.cw.SetOffset(offCol, offRow)
	s.cw.WriteString("\033[H\033[2J")
}

// draw renders the current snapshot and the HUD and flushes the frame.
func (s *session) draw() error {
	snap := s.round.Snapshot()
	if snap.Phase != s.prevPhase || s.inactive != s.wasInactive {
		s.cw.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.prevPhase = snap.Phase
		s.wasInactive = s.inactive
	}

	s.canvas.Clear()
	drawWorld(s.canvas, snap)
	if err := s.canvas.Render(s.cw); err != nil {
		return err
	}
	drawHUD(s.cw, s.canvas.Cols(), s.canvas.Rows(), snap, s.inactive)
	return s.cw.Flush()
}
