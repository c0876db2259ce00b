package sandbox

import (
	"log/slog"
	"strings"
	"testing"
)

func TestInputStateButtonsIsolated(t *testing.T) {
	for b := MouseButton(0); b < maxMouseButtons; b++ {
		var s InputState
		if !s.setButton(b, true) {
			t.Fatalf("setButton(%d) rejected", b)
		}
		for o := MouseButton(0); o < maxMouseButtons; o++ {
			if got := s.Pressed(o); got != (o == b) {
				t.Errorf("after pressing %d: Pressed(%d) = %v", b, o, got)
			}
		}
		s.setButton(b, false)
		if s.Buttons() != 0 {
			t.Errorf("after releasing %d: mask %08b", b, s.Buttons())
		}
	}
}

func TestInputStateOutOfRange(t *testing.T) {
	var s InputState
	for _, b := range []MouseButton{-1, maxMouseButtons, 42} {
		if s.setButton(b, true) {
			t.Errorf("setButton(%d) accepted", b)
		}
		if s.Pressed(b) {
			t.Errorf("Pressed(%d) = true", b)
		}
	}
	if s.Buttons() != 0 {
		t.Errorf("mask %08b", s.Buttons())
	}
}

func TestInputStateNamedButtons(t *testing.T) {
	var s InputState
	s.setButton(MouseButtonLeft, true)
	s.setButton(MouseButtonMiddle, true)
	if !s.Left() || !s.Middle() || s.Right() {
		t.Errorf("left=%v middle=%v right=%v", s.Left(), s.Middle(), s.Right())
	}
}

func TestInputStateMove(t *testing.T) {
	var s InputState
	s.move(40, 560, 2, -1)
	if s.Position() != Pt(40, 560) || s.X() != 40 || s.Y() != 560 {
		t.Errorf("position = %v", s.Position())
	}
	if dx, dy := s.Delta(); dx != 2 || dy != -1 {
		t.Errorf("delta = (%v, %v)", dx, dy)
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventMouseMotion, "mouse-motion"},
		{EventMousePress, "mouse-press"},
		{EventMouseDrag, "mouse-drag"},
		{EventMouseRelease, "mouse-release"},
		{EventKeyPress, "key-press"},
		{EventKeyRelease, "key-release"},
		{EventResize, "resize"},
		{EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEventLogValue(t *testing.T) {
	var sb strings.Builder
	log := slog.New(slog.NewTextHandler(&sb, nil))
	log.Info("event", "event", Event{Kind: EventMouseDrag, X: 1, Y: 2, DX: 3, DY: 4, Buttons: 1})
	out := sb.String()
	for _, want := range []string{"event.kind=mouse-drag", "event.x=1", "event.dy=4", "event.buttons=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}
