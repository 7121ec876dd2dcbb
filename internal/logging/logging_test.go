package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "test")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "level", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "test") || !strings.Contains(out, "level=3") {
		t.Fatalf("got=%q", out)
	}
}

func TestNewAcceptsMixedCase(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, " DEBUG ", ""); err != nil {
		t.Fatalf("new: %v", err)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", ""); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}

func TestSessionAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(&buf, "info", "")
	Session(logger, "alice", "10.0.0.1:22").Info("joined")
	if !strings.Contains(buf.String(), "user=alice") {
		t.Fatalf("got=%q", buf.String())
	}
}
