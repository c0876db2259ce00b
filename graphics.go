package sandbox

import (
	"math"

	"github.com/pkg/errors"
)

const (
	circleSegmentLength = 2.0 // pixels of circumference per polygon edge
	minCircleSegments   = 8   // floor for small radii
	maxCircleSegments   = 4096
)

// GraphicsContext is an immediate-mode drawing surface. Style state (stroke
// color, fill color, line width) persists across frames until changed and
// is read when each primitive is called.
type GraphicsContext struct {
	r         Rasterizer
	stroke    Color
	fill      Color
	lineWidth float64
	clear     Color
}

// NewGraphicsContext returns a context drawing into r with white stroke and
// fill, line width 1 and the given clear color.
func NewGraphicsContext(r Rasterizer, clear Color) *GraphicsContext {
	gc := &GraphicsContext{
		stroke:    ColorWhite,
		fill:      ColorWhite,
		lineWidth: 1,
		clear:     clear.Clamped(),
	}
	gc.bind(r)
	return gc
}

func (gc *GraphicsContext) bind(r Rasterizer) {
	if r == nil {
		r = nopRasterizer{}
	}
	gc.r = r
}

// SetFill sets the fill color used by FillCircle and FillRect.
func (gc *GraphicsContext) SetFill(c Color) { gc.fill = c.Clamped() }

// SetFillRGB sets an opaque fill color.
func (gc *GraphicsContext) SetFillRGB(r, g, b float64) { gc.fill = RGB(r, g, b) }

// SetFillRGBA sets the fill color from four components.
func (gc *GraphicsContext) SetFillRGBA(r, g, b, a float64) { gc.fill = RGBA(r, g, b, a) }

// SetStroke sets the color used by outlines, lines, points and text.
func (gc *GraphicsContext) SetStroke(c Color) { gc.stroke = c.Clamped() }

// SetStrokeRGB sets an opaque stroke color.
func (gc *GraphicsContext) SetStrokeRGB(r, g, b float64) { gc.stroke = RGB(r, g, b) }

// SetStrokeRGBA sets the stroke color from four components.
func (gc *GraphicsContext) SetStrokeRGBA(r, g, b, a float64) { gc.stroke = RGBA(r, g, b, a) }

// SetLineWidth sets the stroke width for subsequent outlines and lines. The
// width must be positive; otherwise the current width is kept.
func (gc *GraphicsContext) SetLineWidth(w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return errors.Wrapf(ErrInvalidArgument, "line width %v", w)
	}
	gc.lineWidth = w
	return nil
}

// Fill returns the current fill color.
func (gc *GraphicsContext) Fill() Color { return gc.fill }

// Stroke returns the current stroke color.
func (gc *GraphicsContext) Stroke() Color { return gc.stroke }

// LineWidth returns the current line width.
func (gc *GraphicsContext) LineWidth() float64 { return gc.lineWidth }

// Clear fills the surface with the window clear color.
func (gc *GraphicsContext) Clear() {
	gc.r.Clear(gc.clear)
}

// circleSegments returns the polygon vertex count used for a circle of
// radius r. It grows with the circumference and stays within
// [minCircleSegments, maxCircleSegments]. The clamp is done in float64 so
// huge radii cannot overflow the conversion.
func circleSegments(r float64) int {
	n := 2 * math.Pi * r / circleSegmentLength
	switch {
	case !(n >= minCircleSegments): // also NaN
		return minCircleSegments
	case n > maxCircleSegments:
		return maxCircleSegments
	}
	return int(n)
}

// circleRim returns the polygon approximating the circle, explicitly closed:
// the first vertex is repeated at the end.
func circleRim(center Point, r float64) ([]Point, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "circle radius %v", r)
	}
	n := circleSegments(r)
	step := 2 * math.Pi / float64(n)
	rim := make([]Point, n+1)
	for i := 0; i < n; i++ {
		s, c := math.Sincos(float64(i) * step)
		rim[i] = Point{X: center.X + r*c, Y: center.Y + r*s}
	}
	rim[n] = rim[0]
	return rim, nil
}

// StrokeCircle outlines a circle with the stroke color and line width.
func (gc *GraphicsContext) StrokeCircle(center Point, r float64) error {
	rim, err := circleRim(center, r)
	if err != nil {
		return err
	}
	gc.r.LineLoop(rim, gc.stroke, gc.lineWidth)
	return nil
}

// FillCircle fills a circle with the fill color. The fan is pivoted at the
// center.
func (gc *GraphicsContext) FillCircle(center Point, r float64) error {
	rim, err := circleRim(center, r)
	if err != nil {
		return err
	}
	fan := make([]Point, 0, len(rim)+1)
	fan = append(fan, center)
	fan = append(fan, rim...)
	gc.r.FillTriangleFan(fan, gc.fill)
	return nil
}

// FillRect fills r with the fill color.
func (gc *GraphicsContext) FillRect(r Rect) {
	gc.r.FillRect(r, gc.fill)
}

// StrokeRect outlines r with the stroke color and line width.
func (gc *GraphicsContext) StrokeRect(r Rect) {
	c := r.Corners()
	gc.r.LineLoop([]Point{c[0], c[1], c[2], c[3], c[0]}, gc.stroke, gc.lineWidth)
}

// Lines draws an open polyline through points in order. At least two
// points are required.
func (gc *GraphicsContext) Lines(points ...Point) error {
	if len(points) < 2 {
		return errors.Wrapf(ErrInvalidArgument, "lines needs at least 2 points, got %d", len(points))
	}
	gc.r.LineStrip(append([]Point(nil), points...), gc.stroke, gc.lineWidth)
	return nil
}

// LineLoop draws a closed polygon outline through points. At least three
// points are required. The outline is closed explicitly, so the rasterized
// vertex list ends where it starts.
func (gc *GraphicsContext) LineLoop(points ...Point) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrInvalidArgument, "line loop needs at least 3 points, got %d", len(points))
	}
	closed := make([]Point, 0, len(points)+1)
	closed = append(closed, points...)
	if closed[0] != closed[len(closed)-1] {
		closed = append(closed, closed[0])
	}
	gc.r.LineLoop(closed, gc.stroke, gc.lineWidth)
	return nil
}

// Line draws a single segment from a to b.
func (gc *GraphicsContext) Line(a, b Point) {
	gc.r.Line(a, b, gc.stroke, gc.lineWidth)
}

// Point draws a single point with the stroke color.
func (gc *GraphicsContext) Point(x, y float64) {
	gc.r.DrawPoint(Point{X: x, Y: y}, gc.stroke)
}

// Text draws a label with its top-left corner at p using the stroke color.
func (gc *GraphicsContext) Text(s string, p Point) {
	gc.r.Text(s, p, gc.stroke)
}
