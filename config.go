package sandbox

import (
	"log/slog"

	"github.com/pkg/errors"
)

const (
	defaultTitle  = "sandbox"
	defaultWidth  = 800
	defaultHeight = 600
	defaultTPS    = 60
)

// DefaultClearColor is the dark blue the window is cleared to.
var DefaultClearColor = Color{R: 0, G: 0.05, B: 0.2, A: 1}

// Config configures an App. Zero fields take their defaults.
type Config struct {
	Title         string
	Width, Height int // default 800x600
	TPS           int // ticks per second, default 60

	// ClearColor is used by GraphicsContext.Clear. A zero Color selects
	// DefaultClearColor.
	ClearColor Color

	// Blend is the fixed blend mode for all drawing. Default BlendNormal.
	Blend BlendMode

	// Redraw selects when OnDraw runs. Default RedrawOnEvent.
	Redraw RedrawPolicy

	// ShowCursor keeps the OS cursor visible over the window. Hidden by
	// default, so applications can draw their own.
	ShowCursor bool

	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool

	// Debug logs every raw event at debug level and collects frame timings
	// (see App.Stats). New also turns it on when the DEBUG environment
	// variable is set to 1, TRUE or True.
	Debug bool

	// Backend defaults to an Ebitengine window.
	Backend Backend

	// Logger overrides the package logger for this App. Without it, an App
	// in debug mode whose package logger is silent logs to stderr on its
	// own; the package logger is left alone.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width == 0 {
		c.Width = defaultWidth
	}
	if c.Height == 0 {
		c.Height = defaultHeight
	}
	if c.TPS == 0 {
		c.TPS = defaultTPS
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = DefaultClearColor
	}
	c.ClearColor = c.ClearColor.Clamped()
	if !c.Debug {
		c.Debug = DebugFromEnv()
	}
	if c.Backend == nil {
		c.Backend = NewEbitenBackend()
	}
	return c
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "window size %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "tick rate %d", c.TPS)
	}
	if c.Redraw != RedrawOnEvent && c.Redraw != RedrawOnTick {
		return errors.Wrapf(ErrInvalidArgument, "redraw policy %d", c.Redraw)
	}
	if !c.Blend.valid() {
		return errors.Wrapf(ErrInvalidArgument, "blend mode %d", c.Blend)
	}
	return nil
}

func (c Config) windowOptions() WindowOptions {
	return WindowOptions{
		Title:      c.Title,
		Width:      c.Width,
		Height:     c.Height,
		TPS:        c.TPS,
		ClearColor: c.ClearColor,
		Blend:      c.Blend,
		Redraw:     c.Redraw,
		HideCursor: !c.ShowCursor,
		ShowFPS:    c.ShowFPS,
		Resizable:  false,
		Vsync:      false,
	}
}
