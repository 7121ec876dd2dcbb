package main

import "testing"

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Fatalf("got=%dx%d err=%v want=120x40", w, h, err)
	}
}

func TestGameHandlerCountsSessions(t *testing.T) {
	g := &gameHandler{}
	g.track(1)
	g.track(1)
	g.track(-1)
	if got := g.active(); got != 1 {
		t.Fatalf("active got=%d want=1", got)
	}
}
