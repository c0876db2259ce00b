package sandbox

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// HeadlessBackend runs the loop without a window. Input comes from the
// Inject methods or a Script; frames are rendered into Raster.
//
// With Hz zero (the default) ticks run back to back, which is what tests
// want. Each tick dispatches at most one queued event, then updates, then
// redraws.
type HeadlessBackend struct {
	// Context cancels Run. Nil means never.
	Context context.Context
	// MaxTicks stops the loop after that many ticks. Zero means no limit.
	MaxTicks uint64
	// ExitWhenIdle stops the loop once the event queue and the script are
	// both drained.
	ExitWhenIdle bool
	// Hz paces ticks in real time when positive.
	Hz int
	// Raster receives every frame. Open fills in a SoftRasterizer sized to
	// the window when nil.
	Raster Rasterizer

	opts   WindowOptions
	opened bool
	queue  []Event
	script *Script

	// pointer state as of the last queued event
	px, py float64
	held   ButtonMask

	ticks     uint64
	snapshots []Snapshot
}

var _ Backend = (*HeadlessBackend)(nil)

// NewHeadlessBackend returns a backend that runs ticks back to back.
func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{}
}

// Open records the window options.
func (b *HeadlessBackend) Open(opts WindowOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "window size %dx%d", opts.Width, opts.Height)
	}
	if b.Raster == nil {
		b.Raster = NewSoftRasterizer(opts.Width, opts.Height)
	}
	b.opts = opts
	b.opened = true
	return nil
}

// Options returns the options passed to Open.
func (b *HeadlessBackend) Options() WindowOptions { return b.opts }

// Ticks returns the number of ticks run so far.
func (b *HeadlessBackend) Ticks() uint64 { return b.ticks }

// Pending returns the number of queued events not yet dispatched.
func (b *HeadlessBackend) Pending() int { return len(b.queue) }

// Inject queues a raw event as is.
func (b *HeadlessBackend) Inject(ev Event) {
	switch ev.Kind {
	case EventMouseMotion, EventMouseDrag, EventMousePress, EventMouseRelease:
		b.px, b.py = ev.X, ev.Y
	}
	switch ev.Kind {
	case EventMousePress:
		if ev.Button.valid() {
			b.held = b.held.with(ev.Button)
		}
	case EventMouseRelease:
		if ev.Button.valid() {
			b.held = b.held.without(ev.Button)
		}
	}
	b.queue = append(b.queue, ev)
}

// InjectMove queues a pointer move to (x, y). The delta is taken from the
// previously queued pointer position. It is a drag when a queued press has
// not yet been released.
func (b *HeadlessBackend) InjectMove(x, y float64) {
	ev := Event{Kind: EventMouseMotion, X: x, Y: y, DX: x - b.px, DY: y - b.py}
	if b.held != 0 {
		ev.Kind = EventMouseDrag
		ev.Buttons = b.held
	}
	b.Inject(ev)
}

// InjectPress queues a button press at (x, y).
func (b *HeadlessBackend) InjectPress(x, y float64, button MouseButton) {
	b.Inject(Event{Kind: EventMousePress, X: x, Y: y, Button: button})
}

// InjectRelease queues a button release at (x, y).
func (b *HeadlessBackend) InjectRelease(x, y float64, button MouseButton) {
	b.Inject(Event{Kind: EventMouseRelease, X: x, Y: y, Button: button})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (b *HeadlessBackend) InjectClick(x, y float64, button MouseButton) {
	b.InjectPress(x, y, button)
	b.InjectRelease(x, y, button)
}

// InjectDrag queues a full drag sequence: press at from, linearly
// interpolated moves over steps-2 intermediate ticks, and release at to.
// The whole sequence consumes steps ticks; the minimum is 2.
func (b *HeadlessBackend) InjectDrag(from, to Point, button MouseButton, steps int) {
	if steps < 2 {
		steps = 2
	}
	b.InjectPress(from.X, from.Y, button)
	n := steps - 2
	for i := 1; i <= n; i++ {
		p := from.Lerp(to, float64(i)/float64(n+1))
		b.InjectMove(p.X, p.Y)
	}
	b.InjectRelease(to.X, to.Y, button)
}

// InjectKey queues a key press followed by its release.
func (b *HeadlessBackend) InjectKey(k Key, mods KeyModifiers) {
	b.Inject(Event{Kind: EventKeyPress, Key: k, Mods: mods})
	b.Inject(Event{Kind: EventKeyRelease, Key: k, Mods: mods})
}

// InjectResize queues a resize request. The App ignores it.
func (b *HeadlessBackend) InjectResize(w, h int) {
	b.Inject(Event{Kind: EventResize, Width: w, Height: h})
}

// SetScript installs a script whose actions are queued as the loop runs.
func (b *HeadlessBackend) SetScript(s *Script) {
	b.script = s
}

func (b *HeadlessBackend) idle() bool {
	return len(b.queue) == 0 && (b.script == nil || b.script.Done())
}

func (b *HeadlessBackend) pop() (Event, bool) {
	if len(b.queue) == 0 {
		return Event{}, false
	}
	ev := b.queue[0]
	copy(b.queue, b.queue[1:])
	b.queue = b.queue[:len(b.queue)-1]
	return ev, true
}

// Run ticks until loop stops, the context is cancelled, MaxTicks is reached
// or, with ExitWhenIdle, there is no more input.
func (b *HeadlessBackend) Run(loop Loop) error {
	if !b.opened {
		return errors.Wrap(ErrInvalidState, "sandbox: run before open")
	}
	ctx := b.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tps := b.opts.TPS
	if tps <= 0 {
		tps = defaultTPS
	}
	dt := 1 / float64(tps)

	var pace <-chan time.Time
	if b.Hz > 0 {
		t := time.NewTicker(time.Second / time.Duration(b.Hz))
		defer t.Stop()
		pace = t.C
	}

	var canvas Rasterizer
	if b.opts.Redraw == RedrawOnTick {
		canvas = b.Raster
	}

	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "sandbox: headless")
		}
		if !loop.Running() {
			return nil
		}
		if b.MaxTicks > 0 && b.ticks >= b.MaxTicks {
			return nil
		}
		if b.ExitWhenIdle && b.idle() {
			return nil
		}
		if pace != nil {
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "sandbox: headless")
			case <-pace:
			}
		}

		if b.script != nil {
			b.script.step(b)
		}
		if ev, ok := b.pop(); ok {
			if err := loop.Dispatch(ev); err != nil {
				return err
			}
			if !loop.Running() {
				return nil
			}
		}

		if err := loop.Tick(dt, canvas); err != nil {
			return err
		}
		b.ticks++
		if !loop.Running() {
			return nil
		}
		if err := loop.Redraw(b.Raster); err != nil {
			return err
		}
	}
}
