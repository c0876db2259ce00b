package sandbox

import (
	"testing"

	"github.com/pkg/errors"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "move", "x": 100, "y": 200},
			{"action": "click", "x": 100, "y": 200, "button": 2},
			{"action": "wait", "frames": 3},
			{"action": "key", "key": "ArrowLeft"}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(s.steps))
	}
	if s.steps[0].Action != "move" || s.steps[0].X != 100 || s.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if s.steps[1].Button != 2 {
		t.Error("step 1 mismatch")
	}
	if s.steps[2].Action != "wait" || s.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if s.steps[3].key != KeyArrowLeft {
		t.Error("step 3 key not resolved")
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "Hyper"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "nope"}]}`)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown action: err = %v, want ErrInvalidArgument", err)
	}
}

func TestScriptStepWaitsForQueue(t *testing.T) {
	b := NewHeadlessBackend()
	s, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// First step queues press+release.
	s.step(b)
	if b.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", b.Pending())
	}
	if s.Done() {
		t.Error("script should not be done while events are pending")
	}

	b.pop()
	b.pop()

	s.step(b)
	if !s.Done() {
		t.Error("script should be done after all steps ran and the queue drained")
	}
}

func TestScriptWait(t *testing.T) {
	b := NewHeadlessBackend()
	s, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}, {"action": "move", "x": 1, "y": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		s.step(b)
		if b.Pending() != 0 {
			t.Fatalf("step %d: move queued during wait", i)
		}
	}
	s.step(b)
	if b.Pending() != 1 {
		t.Fatalf("pending = %d, want the move", b.Pending())
	}
}

func TestScriptDrivesApp(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 10, "y": 20},
		{"action": "drag", "x": 10, "y": 20, "toX": 40, "toY": 20, "frames": 4},
		{"action": "key", "key": "Space"},
		{"action": "resize", "width": 100, "height": 100},
		{"action": "stop"},
		{"action": "key", "key": "Enter"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	ext := &recordingExt{}
	app, b := newHeadlessApp(t, ext, Config{})
	b.SetScript(s)

	if err := app.Start(); err != nil {
		t.Fatal(err)
	}
	if len(ext.motions) != 1 || ext.motions[0].p != Pt(10, 20) {
		t.Errorf("motions = %+v", ext.motions)
	}
	if len(ext.drags) != 2 || len(ext.presses) != 1 || len(ext.releases) != 1 {
		t.Errorf("drags = %d, presses = %d, releases = %d", len(ext.drags), len(ext.presses), len(ext.releases))
	}
	if len(ext.keys) != 1 || ext.keys[0] != KeySpace {
		t.Errorf("keys = %v, want only Space before stop", ext.keys)
	}
	if app.Width() != defaultWidth {
		t.Errorf("width = %d", app.Width())
	}
}
