package sandbox

import "log/slog"

// EventKind identifies a raw backend event.
type EventKind uint8

const (
	EventMouseMotion  EventKind = iota // pointer moved with no button held
	EventMousePress                    // a button went down
	EventMouseDrag                     // pointer moved with at least one button held
	EventMouseRelease                  // a button went up
	EventKeyPress                      // a key went down
	EventKeyRelease                    // a key went up
	EventResize                        // the platform asked for a new window size
)

func (k EventKind) String() string {
	switch k {
	case EventMouseMotion:
		return "mouse-motion"
	case EventMousePress:
		return "mouse-press"
	case EventMouseDrag:
		return "mouse-drag"
	case EventMouseRelease:
		return "mouse-release"
	case EventKeyPress:
		return "key-press"
	case EventKeyRelease:
		return "key-release"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is a raw backend event. Coordinates and deltas are bare numbers; the
// App turns them into Points before calling extension hooks.
type Event struct {
	Kind EventKind

	X, Y   float64 // pointer position (mouse events)
	DX, DY float64 // pointer delta (motion and drag)

	Button  MouseButton // press and release
	Buttons ButtonMask  // held buttons (drag)

	Key  Key // key events
	Mods KeyModifiers

	Width, Height int // resize
}

// Point returns the event's pointer position.
func (e Event) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// LogValue implements slog.LogValuer so events log as grouped attributes.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", e.Kind.String())}
	switch e.Kind {
	case EventMouseMotion, EventMouseDrag:
		attrs = append(attrs,
			slog.Float64("x", e.X), slog.Float64("y", e.Y),
			slog.Float64("dx", e.DX), slog.Float64("dy", e.DY))
		if e.Kind == EventMouseDrag {
			attrs = append(attrs, slog.Int("buttons", int(e.Buttons)))
		}
	case EventMousePress, EventMouseRelease:
		attrs = append(attrs,
			slog.Float64("x", e.X), slog.Float64("y", e.Y),
			slog.Int("button", int(e.Button)))
	case EventKeyPress, EventKeyRelease:
		attrs = append(attrs, slog.String("key", e.Key.String()))
	case EventResize:
		attrs = append(attrs, slog.Int("width", e.Width), slog.Int("height", e.Height))
	}
	if e.Mods != 0 {
		attrs = append(attrs, slog.Int("mods", int(e.Mods)))
	}
	return slog.GroupValue(attrs...)
}

// InputState is the pointer state as last reported by the backend. Only the
// App writes to it; extensions read it through App.Mouse.
type InputState struct {
	pos     Point
	dx, dy  float64
	buttons [maxMouseButtons]bool
}

// Position returns the last reported pointer position.
func (s *InputState) Position() Point {
	return s.pos
}

// X returns the pointer's X coordinate.
func (s *InputState) X() float64 { return s.pos.X }

// Y returns the pointer's Y coordinate.
func (s *InputState) Y() float64 { return s.pos.Y }

// Delta returns the movement carried by the last motion or drag event.
func (s *InputState) Delta() (dx, dy float64) {
	return s.dx, s.dy
}

// Pressed reports whether button b is held. Indices outside 0..7 are never
// pressed.
func (s *InputState) Pressed(b MouseButton) bool {
	if !b.valid() {
		return false
	}
	return s.buttons[b]
}

// Left reports whether the primary button is held.
func (s *InputState) Left() bool { return s.Pressed(MouseButtonLeft) }

// Right reports whether the secondary button is held.
func (s *InputState) Right() bool { return s.Pressed(MouseButtonRight) }

// Middle reports whether the middle button is held.
func (s *InputState) Middle() bool { return s.Pressed(MouseButtonMiddle) }

// Buttons returns the held buttons as a mask.
func (s *InputState) Buttons() ButtonMask {
	var m ButtonMask
	for i, down := range s.buttons {
		if down {
			m = m.with(MouseButton(i))
		}
	}
	return m
}

func (s *InputState) move(x, y, dx, dy float64) {
	s.pos = Point{X: x, Y: y}
	s.dx = dx
	s.dy = dy
}

// setButton records a press or release. It reports false for indices the
// state cannot hold.
func (s *InputState) setButton(b MouseButton, down bool) bool {
	if !b.valid() {
		return false
	}
	s.buttons[b] = down
	return true
}
