package sandbox

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewDebugLogger(&buf))
	defer SetLogger(nil)

	Logger().Debug("hello", "k", 1)
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "k=1") {
		t.Errorf("log output %q", buf.String())
	}
}

func TestIsDebugValue(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"1", true},
		{"TRUE", true},
		{"True", true},
		{"true", false},
		{"yes", false},
		{"0", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isDebugValue(tt.v); got != tt.want {
			t.Errorf("isDebugValue(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestDebugFromEnv(t *testing.T) {
	t.Setenv(DebugEnv, "True")
	if !DebugFromEnv() {
		t.Error("DEBUG=True should enable debug")
	}
	t.Setenv(DebugEnv, "on")
	if DebugFromEnv() {
		t.Error("DEBUG=on should not enable debug")
	}
}

func TestDebugAppKeepsPackageLogger(t *testing.T) {
	SetLogger(nil)
	var buf bytes.Buffer
	saved := debugOutput
	debugOutput = &buf
	defer func() { debugOutput = saved }()

	b := NewHeadlessBackend()
	b.Raster = &Recorder{}
	if _, err := New(NopExtension{}, Config{Backend: b, Debug: true}); err != nil {
		t.Fatal(err)
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("debug App replaced the package logger")
	}
	if !strings.Contains(buf.String(), "window opened") {
		t.Errorf("debug App did not log to its own output: %q", buf.String())
	}
}

func TestAppLoggerChoice(t *testing.T) {
	var pkgBuf, cfgBuf, dbgBuf bytes.Buffer
	saved := debugOutput
	debugOutput = &dbgBuf
	defer func() { debugOutput = saved }()
	defer SetLogger(nil)

	tests := []struct {
		name    string
		pkg     *slog.Logger
		cfg     Config
		wantOut *bytes.Buffer
	}{
		{"config logger wins", NewDebugLogger(&pkgBuf), Config{Logger: NewDebugLogger(&cfgBuf), Debug: true}, &cfgBuf},
		{"debug package logger reused", NewDebugLogger(&pkgBuf), Config{Debug: true}, &pkgBuf},
		{"silent package logger in debug", nil, Config{Debug: true}, &dbgBuf},
		{"package logger without debug", NewDebugLogger(&pkgBuf), Config{}, &pkgBuf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkgBuf.Reset()
			cfgBuf.Reset()
			dbgBuf.Reset()
			SetLogger(tt.pkg)

			appLogger(tt.cfg).Info("marker")
			for _, buf := range []*bytes.Buffer{&pkgBuf, &cfgBuf, &dbgBuf} {
				got := strings.Contains(buf.String(), "marker")
				if got != (buf == tt.wantOut) {
					t.Errorf("marker in wrong output: pkg=%q cfg=%q dbg=%q",
						pkgBuf.String(), cfgBuf.String(), dbgBuf.String())
					break
				}
			}
		})
	}
}
