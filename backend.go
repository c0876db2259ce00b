package sandbox

// WindowOptions describes the window a backend opens. Size never changes
// after Open.
type WindowOptions struct {
	Title         string
	Width, Height int
	TPS           int // ticks per second
	ClearColor    Color
	Blend         BlendMode
	Redraw        RedrawPolicy
	HideCursor    bool
	ShowFPS       bool

	// Fixed for every backend: the window cannot be resized and vsync
	// (adaptive sync) is off. Kept here so backends and tests can assert it.
	Resizable bool
	Vsync     bool
}

// Loop is the runtime side of a backend. A backend calls these from a single
// goroutine. Running is checked at every iteration boundary: before each
// event, before the tick and before drawing.
type Loop interface {
	// Running reports whether the loop should keep going.
	Running() bool
	// Dispatch applies a raw event to the input state and forwards it to the
	// extension.
	Dispatch(ev Event) error
	// Tick advances the application by dt seconds. Under RedrawOnTick the
	// draw hook renders into canvas in the same call.
	Tick(dt float64, canvas Rasterizer) error
	// Redraw renders a frame into r. It is a no-op under RedrawOnTick.
	Redraw(r Rasterizer) error
}

// Backend owns the window, the event pump and the tick scheduler.
type Backend interface {
	// Open creates the window. It is called once, from New.
	Open(opts WindowOptions) error
	// Run pumps events and ticks until loop stops running or a hook fails.
	// It returns nil on a normal stop.
	Run(loop Loop) error
}
