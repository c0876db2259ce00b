package sandbox

import (
	"bytes"
	"sync"

	ggtext "github.com/gogpu/gg/text"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the pixel size of labels drawn with GraphicsContext.Text.
const DefaultFontSize = 14

// Font is a TrueType face loaded once for both rasterizers: Ebitengine's
// text/v2 for the window and gg's text package for SoftRasterizer.
type Font struct {
	size float64
	lh   float64

	face   *text.GoTextFace
	ggFace ggtext.Face
}

// LoadFont parses TTF or OTF data at the given pixel size.
func LoadFont(ttf []byte, size float64) (*Font, error) {
	if !(size > 0) {
		return nil, errors.Wrapf(ErrInvalidArgument, "font size %v", size)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, errors.Wrap(err, "sandbox: parse font")
	}
	ggSrc, err := ggtext.NewFontSource(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "sandbox: parse font")
	}
	face := &text.GoTextFace{Source: src, Size: size}
	m := face.Metrics()
	return &Font{
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
		face:   face,
		ggFace: ggSrc.Face(size),
	}, nil
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
)

// DefaultFont returns Go Regular at DefaultFontSize. It returns nil, and
// labels are skipped, if the embedded font fails to load.
func DefaultFont() *Font {
	defaultFontOnce.Do(func() {
		f, err := LoadFont(goregular.TTF, DefaultFontSize)
		if err != nil {
			Logger().Warn("default font unavailable", "err", err)
			return
		}
		defaultFont = f
	})
	return defaultFont
}

// Size returns the pixel size.
func (f *Font) Size() float64 { return f.size }

// LineHeight returns the distance between baselines.
func (f *Font) LineHeight() float64 { return f.lh }

// Measure returns the size of the box s occupies when drawn.
func (f *Font) Measure(s string) (w, h float64) {
	return text.Measure(s, f.face, f.lh)
}

// ascent is the baseline offset from the top of a line in gg's metrics.
func (f *Font) ascent() float64 {
	return f.ggFace.Metrics().Ascent
}
