package sandbox

import (
	"testing"

	"github.com/pkg/errors"
)

func TestSnapshotLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "hello"},
		{"With Spaces", "with-spaces"},
		{"special!@#chars", "special-chars"},
		{"ok-name.v2", "ok-name.v2"},
		{"/path/to/file/", "path-to-file"},
		{"", "frame-7"},
		{"  ", "frame-7"},
		{"!!!", "frame-7"},
	}
	for _, tt := range tests {
		if got := snapshotLabel(tt.input, 7); got != tt.want {
			t.Errorf("snapshotLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestScriptScreenshot(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 2},
		{"action": "screenshot", "label": "red box"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	ext := &recordingExt{onDraw: func(gc *GraphicsContext) error {
		gc.Clear()
		gc.SetFillRGB(1, 0, 0)
		gc.FillRect(RectXYWH(0, 0, 16, 16))
		return nil
	}}
	b := NewHeadlessBackend()
	b.ExitWhenIdle = true
	b.MaxTicks = 100
	b.SetScript(s)
	app, err := New(ext, Config{Width: 32, Height: 32, ClearColor: ColorBlack, Backend: b})
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Start(); err != nil {
		t.Fatal(err)
	}

	snaps := b.Snapshots()
	if len(snaps) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(snaps))
	}
	snap := snaps[0]
	if snap.Label != "red-box" || snap.Tick != 2 {
		t.Errorf("snapshot = %q at tick %d, want red-box at 2", snap.Label, snap.Tick)
	}
	if w, h := snap.Image.Bounds().Dx(), snap.Image.Bounds().Dy(); w != 32 || h != 32 {
		t.Errorf("snapshot size = %dx%d", w, h)
	}
	if px := snap.Image.NRGBAAt(8, 8); px.R < 200 || px.G > 50 {
		t.Errorf("inside pixel = %+v, want red", px)
	}
	if px := snap.Image.NRGBAAt(24, 24); px.R > 50 || px.A < 200 {
		t.Errorf("outside pixel = %+v, want opaque black", px)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := NewHeadlessBackend()
	if err := b.Open(WindowOptions{Width: 8, Height: 8}); err != nil {
		t.Fatal(err)
	}
	soft := b.Raster.(*SoftRasterizer)
	defer soft.Close()

	soft.Clear(ColorBlack)
	first, err := b.Snapshot("black")
	if err != nil {
		t.Fatal(err)
	}
	soft.Clear(ColorWhite)
	if px := first.Image.NRGBAAt(4, 4); px.R != 0 {
		t.Errorf("snapshot changed with the raster: %+v", px)
	}
}

func TestSnapshotNeedsReadableRaster(t *testing.T) {
	b := NewHeadlessBackend()
	b.Raster = &Recorder{}
	if _, err := b.Snapshot("x"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
	if len(b.Snapshots()) != 0 {
		t.Error("failed snapshot was kept")
	}
}
