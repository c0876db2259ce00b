package sandbox

import (
	"log/slog"

	"github.com/pkg/errors"
)

// State is an App's lifecycle stage. It only moves forward.
type State uint8

const (
	StateInit       State = iota // constructed, Start not yet called
	StateRunning                 // inside Start, loop active
	StateTerminated              // Start returned or OnInit failed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// EventSink receives every raw event after the App has applied it and the
// extension hook returned without error.
type EventSink interface {
	EmitEvent(ev Event)
}

// App is the runtime: it owns the backend window, the input state and the
// drawing context, and drives an Extension through its lifecycle.
type App struct {
	ext     Extension
	cfg     Config
	backend Backend
	log     *slog.Logger

	input InputState
	gc    *GraphicsContext
	sink  EventSink

	state    State
	stopping bool
	stats    FrameStats
}

// New creates the window through the configured backend and returns an App
// in StateInit. The window is fixed-size and non-resizable.
func New(ext Extension, cfg Config) (*App, error) {
	if ext == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "sandbox: nil extension")
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "sandbox: config")
	}

	a := &App{
		ext:     ext,
		cfg:     cfg,
		backend: cfg.Backend,
		log:     appLogger(cfg).With("component", "sandbox"),
		gc:      NewGraphicsContext(nil, cfg.ClearColor),
	}
	if err := a.backend.Open(cfg.windowOptions()); err != nil {
		return nil, errors.Wrap(err, "sandbox: open window")
	}
	a.log.Debug("window opened",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"tps", cfg.TPS, "redraw", cfg.Redraw.String(), "blend", cfg.Blend.String())
	return a, nil
}

// Start calls OnInit once and then blocks running the loop until Stop is
// called, escape is pressed or a hook returns an error. An OnInit error is
// returned without entering the loop.
func (a *App) Start() error {
	if a.state != StateInit {
		return errors.Wrapf(ErrInvalidState, "sandbox: start in state %s", a.state)
	}
	if err := a.ext.OnInit(a); err != nil {
		a.state = StateTerminated
		return hookError("init", err)
	}
	if a.stopping {
		a.state = StateTerminated
		return nil
	}

	a.state = StateRunning
	err := a.backend.Run(a)
	a.state = StateTerminated
	if err != nil {
		a.log.Debug("loop ended", "err", err)
		return err
	}
	a.log.Debug("loop ended", "ticks", a.stats.Ticks, "frames", a.stats.Frames, "events", a.stats.Events)
	return nil
}

// Stop requests termination. It takes effect at the next loop iteration
// boundary; a hook that is running when Stop is called runs to completion.
func (a *App) Stop() {
	if !a.stopping {
		a.log.Debug("stop requested", "state", a.state.String())
	}
	a.stopping = true
}

// Running reports whether the loop is active and no stop was requested.
func (a *App) Running() bool {
	return a.state == StateRunning && !a.stopping
}

// State returns the lifecycle stage.
func (a *App) State() State { return a.state }

// Width returns the window width given at construction.
func (a *App) Width() int { return a.cfg.Width }

// Height returns the window height given at construction.
func (a *App) Height() int { return a.cfg.Height }

// Mouse returns the pointer state. It is updated before each input hook.
func (a *App) Mouse() *InputState { return &a.input }

// Graphics returns the drawing context handed to OnDraw.
func (a *App) Graphics() *GraphicsContext { return a.gc }

// Debug reports whether verbose event logging is on.
func (a *App) Debug() bool { return a.cfg.Debug }

// RedrawPolicy returns the configured redraw policy.
func (a *App) RedrawPolicy() RedrawPolicy { return a.cfg.Redraw }

// Ticks returns the number of completed update ticks.
func (a *App) Ticks() uint64 { return a.stats.Ticks }

// SetEventSink installs a sink that observes every dispatched event.
// Pass nil to remove it.
func (a *App) SetEventSink(s EventSink) {
	a.sink = s
}

// Dispatch implements Loop. It updates the input state, then calls the
// matching hook with the bare coordinates turned into a Point.
func (a *App) Dispatch(ev Event) error {
	if !a.Running() {
		return nil
	}
	if a.cfg.Debug {
		a.log.Debug("event", "event", ev)
	}

	var err error
	switch ev.Kind {
	case EventMouseMotion:
		a.input.move(ev.X, ev.Y, ev.DX, ev.DY)
		err = hookError("mouse motion", a.ext.OnMouseMotion(ev.Point(), ev.DX, ev.DY))
	case EventMouseDrag:
		a.input.move(ev.X, ev.Y, ev.DX, ev.DY)
		buttons := ev.Buttons
		if buttons == 0 {
			buttons = a.input.Buttons()
		}
		err = hookError("mouse drag", a.ext.OnMouseDrag(ev.Point(), ev.DX, ev.DY, buttons, ev.Mods))
	case EventMousePress:
		if !a.input.setButton(ev.Button, true) {
			a.log.Warn("mouse button out of range", "button", int(ev.Button))
			a.stats.Dropped++
			return nil
		}
		err = hookError("mouse press", a.ext.OnMousePress(ev.Point(), ev.Button, ev.Mods))
	case EventMouseRelease:
		if !a.input.setButton(ev.Button, false) {
			a.log.Warn("mouse button out of range", "button", int(ev.Button))
			a.stats.Dropped++
			return nil
		}
		err = hookError("mouse release", a.ext.OnMouseRelease(ev.Point(), ev.Button, ev.Mods))
	case EventKeyPress:
		if ev.Key == KeyEscape {
			a.Stop()
			return nil
		}
		err = hookError("key press", a.ext.OnKeyPress(ev.Key, ev.Mods))
	case EventKeyRelease:
		err = hookError("key release", a.ext.OnKeyRelease(ev.Key, ev.Mods))
	case EventResize:
		a.log.Debug("resize ignored, window size is fixed",
			"requested_width", ev.Width, "requested_height", ev.Height)
		a.stats.Dropped++
		return nil
	default:
		a.log.Warn("unknown event", "kind", int(ev.Kind))
		a.stats.Dropped++
		return nil
	}
	if err != nil {
		return err
	}
	a.stats.Events++
	if a.sink != nil {
		a.sink.EmitEvent(ev)
	}
	return nil
}

// Tick implements Loop. Under RedrawOnTick it draws into canvas right after
// the update hook.
func (a *App) Tick(dt float64, canvas Rasterizer) error {
	if !a.Running() {
		return nil
	}
	if err := a.timed(&a.stats.UpdateTime, func() error { return a.ext.OnUpdate(dt) }); err != nil {
		return hookError("update", err)
	}
	a.stats.Ticks++
	defer a.debugLog()
	if a.cfg.Redraw != RedrawOnTick || !a.Running() {
		return nil
	}
	return a.draw(canvas)
}

// Redraw implements Loop. It only draws under RedrawOnEvent.
func (a *App) Redraw(r Rasterizer) error {
	if a.cfg.Redraw != RedrawOnEvent || !a.Running() {
		return nil
	}
	return a.draw(r)
}

func (a *App) draw(r Rasterizer) error {
	a.gc.bind(r)
	defer a.gc.bind(nil)
	if err := a.timed(&a.stats.DrawTime, func() error { return a.ext.OnDraw(a.gc) }); err != nil {
		return hookError("draw", err)
	}
	a.stats.Frames++
	return nil
}
