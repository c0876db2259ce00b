package sandbox

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// DebugEnv names the environment variable that turns on verbose event
// logging. Only the values in debugEnvValues enable it.
const DebugEnv = "DEBUG"

var debugEnvValues = []string{"1", "TRUE", "True"}

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by sandbox. By default nothing is
// logged. Pass nil to restore the silent default. The logger is forwarded to
// the software rasterizer as well.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current sandbox logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// DebugFromEnv reports whether the DEBUG environment variable holds one of
// the recognized truthy values.
func DebugFromEnv() bool {
	v, ok := os.LookupEnv(DebugEnv)
	if !ok {
		return false
	}
	return isDebugValue(v)
}

func isDebugValue(v string) bool {
	for _, want := range debugEnvValues {
		if v == want {
			return true
		}
	}
	return false
}

// debugOutput receives the log of an App in debug mode when neither
// Config.Logger nor SetLogger supplies a debug-level logger.
var debugOutput io.Writer = os.Stderr

// appLogger picks the logger for an App: Config.Logger, else the package
// logger, else in debug mode a private stderr logger. The package logger
// itself only changes through SetLogger.
func appLogger(cfg Config) *slog.Logger {
	switch {
	case cfg.Logger != nil:
		return cfg.Logger
	case cfg.Debug && !Logger().Enabled(context.Background(), slog.LevelDebug):
		return NewDebugLogger(debugOutput)
	default:
		return Logger()
	}
}

// NewDebugLogger returns a text logger at debug level writing to w.
func NewDebugLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
