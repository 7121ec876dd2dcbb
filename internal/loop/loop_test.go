package loop

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shieldroids/internal/round"
)

func fixedSize(cols, rows int) func() (int, int, error) {
	return func() (int, int, error) { return cols, rows, nil }
}

func testOptions() Options {
	return Options{
		TermSizeFunc: fixedSize(100, 40),
		Logger:       log.New(io.Discard),
		Rand:         rand.New(rand.NewSource(1)),
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	var out bytes.Buffer
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(context.Background(), strings.NewReader("q"), &out, testOptions())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not stop after quit")
	}
	if !strings.HasSuffix(out.String(), "\033[H\033[2J\033[?25h") {
		t.Fatalf("terminal not restored: %q", out.String())
	}
}

func TestRunStopsOnContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, pr, io.Discard, testOptions())
	}()
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run ignored cancellation")
	}
}

func TestFrameDrawsHUD(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	s := newSession(pr, &out, testOptions())
	done, err := s.frame(time.Now(), time.Second/60)
	if err != nil || done {
		t.Fatalf("frame done=%v err=%v", done, err)
	}
	if !strings.Contains(out.String(), levelText(1)) {
		t.Fatalf("HUD missing level: %q", out.String())
	}
	if !strings.Contains(out.String(), "100%") {
		t.Fatalf("HUD missing shield: %q", out.String())
	}
}

func TestFrameIdleTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	opts := testOptions()
	opts.IdleTimeout = 10 * time.Second
	s := newSession(pr, io.Discard, opts)

	if done, _ := s.frame(s.started.Add(8*time.Second), time.Second/60); done || !s.inactive {
		t.Fatalf("done=%v inactive=%v, want warning only", done, s.inactive)
	}
	if done, _ := s.frame(s.started.Add(11*time.Second), time.Second/60); !done {
		t.Fatalf("session survived idle timeout")
	}
}

func TestFitsLargeTerminal(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	opts := testOptions()
	opts.TermSizeFunc = fixedSize(300, 100)
	s := newSession(pr, io.Discard, opts)
	if s.canvas.Cols() != 200 || s.canvas.Rows() != 75 {
		t.Fatalf("render area %dx%d", s.canvas.Cols(), s.canvas.Rows())
	}
	if s.canvas.OffsetCol() != 50 || s.canvas.OffsetRow() != 12 {
		t.Fatalf("offset %d,%d", s.canvas.OffsetCol(), s.canvas.OffsetRow())
	}
}

func TestShieldText(t *testing.T) {
	got := shieldText(50)
	if !strings.HasPrefix(got, "  Shield ") || !strings.HasSuffix(got, " 50%") {
		t.Fatalf("got=%q", got)
	}
	if low := shieldText(10); !strings.HasPrefix(low, "! ") {
		t.Fatalf("low shield not flagged: %q", low)
	}
}

func TestShipOutlinePointsAlongHeading(t *testing.T) {
	pts := shipOutline(round.ShipView{Heading: 0, Radius: 15})
	if pts[0].X != 15 || pts[0].Y != 0 {
		t.Fatalf("nose at %+v", pts[0])
	}
	if pts[1].X >= 0 || pts[2].X >= 0 {
		t.Fatalf("wings not behind the nose: %+v", pts)
	}
}
