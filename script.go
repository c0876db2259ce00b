package sandbox

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Button int     `json:"button,omitempty"`
	Key    string  `json:"key,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Label  string  `json:"label,omitempty"`

	key Key
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input across ticks of a HeadlessBackend. Each
// action waits until the previously queued events have been dispatched.
//
//	{"steps": [
//	  {"action": "move", "x": 40, "y": 560},
//	  {"action": "click", "x": 100, "y": 200},
//	  {"action": "drag", "x": 10, "y": 10, "toX": 90, "toY": 10, "frames": 5},
//	  {"action": "key", "key": "Space"},
//	  {"action": "wait", "frames": 3},
//	  {"action": "screenshot", "label": "after-drag"},
//	  {"action": "stop"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script. Unknown actions and key names are
// rejected here rather than while running.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(f.Steps) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "parse script: no steps")
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "move", "press", "release", "click", "drag", "resize", "wait", "stop", "screenshot":
		case "key", "keydown", "keyup":
			k, ok := ParseKey(st.Key)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidArgument, "parse script: step %d: unknown key %q", i, st.Key)
			}
			st.key = k
		default:
			return nil, errors.Wrapf(ErrInvalidArgument, "parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run and its events were dispatched.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick.
func (s *Script) step(b *HeadlessBackend) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if b.Pending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	button := MouseButton(st.Button)
	switch st.Action {
	case "move":
		b.InjectMove(st.X, st.Y)
	case "press":
		b.InjectPress(st.X, st.Y, button)
	case "release":
		b.InjectRelease(st.X, st.Y, button)
	case "click":
		b.InjectClick(st.X, st.Y, button)
	case "drag":
		b.InjectDrag(Pt(st.X, st.Y), Pt(st.ToX, st.ToY), button, st.Frames)
	case "key":
		b.InjectKey(st.key, 0)
	case "keydown":
		b.Inject(Event{Kind: EventKeyPress, Key: st.key})
	case "keyup":
		b.Inject(Event{Kind: EventKeyRelease, Key: st.key})
	case "resize":
		b.InjectResize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "screenshot":
		if snap, err := b.Snapshot(st.Label); err != nil {
			Logger().Warn("script screenshot failed", "label", st.Label, "err", err)
		} else {
			Logger().Debug("script screenshot", "label", snap.Label, "tick", snap.Tick)
		}
	case "stop":
		b.Inject(Event{Kind: EventKeyPress, Key: KeyEscape})
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && b.Pending() == 0 {
		s.done = true
	}
}
