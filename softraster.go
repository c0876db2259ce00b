package sandbox

import (
	"image"

	"github.com/gogpu/gg"
)

// SoftRasterizer draws into an in-memory image with the gg software
// renderer. The headless backend uses it so OnDraw produces real pixels
// without a window.
type SoftRasterizer struct {
	dc   *gg.Context
	font *Font
}

var _ Rasterizer = (*SoftRasterizer)(nil)

// NewSoftRasterizer returns a w x h transparent surface.
func NewSoftRasterizer(w, h int) *SoftRasterizer {
	dc := gg.NewContext(w, h)
	dc.SetLineJoin(gg.LineJoinMiter)
	dc.SetLineCap(gg.LineCapButt)
	s := &SoftRasterizer{dc: dc, font: DefaultFont()}
	if s.font != nil {
		dc.SetFont(s.font.ggFace)
	}
	return s
}

// Image returns the current contents of the surface.
func (s *SoftRasterizer) Image() image.Image {
	return s.dc.Image()
}

// Close releases the underlying context.
func (s *SoftRasterizer) Close() error {
	return s.dc.Close()
}

func (s *SoftRasterizer) setColor(c Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (s *SoftRasterizer) fill(op string) {
	if err := s.dc.Fill(); err != nil {
		Logger().Warn("software fill failed", "op", op, "err", err)
	}
}

func (s *SoftRasterizer) stroke(op string) {
	if err := s.dc.Stroke(); err != nil {
		Logger().Warn("software stroke failed", "op", op, "err", err)
	}
}

func (s *SoftRasterizer) Clear(c Color) {
	s.dc.ClearWithColor(gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (s *SoftRasterizer) FillTriangleFan(vs []Point, c Color) {
	if len(vs) < 3 {
		return
	}
	s.setColor(c)
	// Emit each triangle as its own subpath so a concave fan still covers
	// exactly the union of its triangles.
	for i := 1; i+1 < len(vs); i++ {
		s.dc.MoveTo(vs[0].X, vs[0].Y)
		s.dc.LineTo(vs[i].X, vs[i].Y)
		s.dc.LineTo(vs[i+1].X, vs[i+1].Y)
		s.dc.ClosePath()
	}
	s.fill("fill-triangle-fan")
}

func (s *SoftRasterizer) polyline(vs []Point, closed bool, c Color, width float64, op string) {
	if len(vs) < 2 {
		return
	}
	s.setColor(c)
	s.dc.SetLineWidth(width)
	s.dc.MoveTo(vs[0].X, vs[0].Y)
	for _, p := range vs[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	if closed {
		s.dc.ClosePath()
	}
	s.stroke(op)
}

func (s *SoftRasterizer) LineLoop(vs []Point, c Color, width float64) {
	s.polyline(vs, true, c, width, "line-loop")
}

func (s *SoftRasterizer) LineStrip(vs []Point, c Color, width float64) {
	s.polyline(vs, false, c, width, "line-strip")
}

func (s *SoftRasterizer) Line(a, b Point, c Color, width float64) {
	s.setColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	s.stroke("line")
}

func (s *SoftRasterizer) DrawPoint(p Point, c Color) {
	s.FillRect(Rect{X: p.X, Y: p.Y, Width: 1, Height: 1}, c)
}

func (s *SoftRasterizer) FillRect(r Rect, c Color) {
	s.setColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.fill("fill-rect")
}

// Text draws str with the default font, top-left at p. gg positions text by
// baseline, so p is shifted down by the ascent.
func (s *SoftRasterizer) Text(str string, p Point, c Color) {
	if str == "" || s.font == nil {
		return
	}
	s.setColor(c)
	s.dc.DrawString(str, p.X, p.Y+s.font.ascent())
}
