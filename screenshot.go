package sandbox

import (
	"image"
	"image/draw"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Snapshot is a copy of a rendered frame held in memory.
type Snapshot struct {
	Label string
	Tick  uint64
	Image *image.NRGBA
}

// imageSource is a rasterizer whose pixels can be read back.
type imageSource interface {
	Image() image.Image
}

// Snapshot copies the last rendered frame and keeps it under label. Raster
// must support reading pixels back, as SoftRasterizer does.
func (b *HeadlessBackend) Snapshot(label string) (Snapshot, error) {
	src, ok := b.Raster.(imageSource)
	if !ok {
		return Snapshot{}, errors.Wrapf(ErrInvalidState, "snapshot: %T cannot be read back", b.Raster)
	}
	img := src.Image()
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)

	s := Snapshot{Label: snapshotLabel(label, b.ticks), Tick: b.ticks, Image: dst}
	b.snapshots = append(b.snapshots, s)
	return s, nil
}

// Snapshots returns the frames captured so far, oldest first.
func (b *HeadlessBackend) Snapshots() []Snapshot {
	return b.snapshots
}

// snapshotLabel lowercases label and keeps [a-z0-9.], turning every run of
// other characters into a single '-'. A label with nothing left becomes
// "frame-<tick>".
func snapshotLabel(label string, tick uint64) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			sb.WriteRune(r)
			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteByte('-')
			dash = true
		}
	}
	if out := strings.TrimSuffix(sb.String(), "-"); out != "" {
		return out
	}
	return "frame-" + strconv.FormatUint(tick, 10)
}
