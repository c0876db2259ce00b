package sandbox

// Rasterizer is the drawing surface a backend exposes. The GraphicsContext
// resolves style and geometry into these calls; nothing is retained between
// them. Slices passed in are owned by the callee for the duration of the
// call only.
type Rasterizer interface {
	// Clear fills the whole surface with c.
	Clear(c Color)
	// FillTriangleFan fills the fan pivoted at vs[0].
	FillTriangleFan(vs []Point, c Color)
	// LineLoop strokes a closed outline. If the first and last vertices
	// differ, the closing segment is added.
	LineLoop(vs []Point, c Color, width float64)
	// LineStrip strokes an open polyline.
	LineStrip(vs []Point, c Color, width float64)
	// Line strokes a single segment.
	Line(a, b Point, c Color, width float64)
	// DrawPoint sets a single pixel-sized point.
	DrawPoint(p Point, c Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)
	// Text draws a single-line label with its top-left corner at p.
	Text(s string, p Point, c Color)
}

// DrawOp identifies a recorded rasterizer call.
type DrawOp uint8

const (
	OpClear DrawOp = iota
	OpFillTriangleFan
	OpLineLoop
	OpLineStrip
	OpLine
	OpPoint
	OpFillRect
	OpText
)

func (op DrawOp) String() string {
	switch op {
	case OpClear:
		return "clear"
	case OpFillTriangleFan:
		return "fill-triangle-fan"
	case OpLineLoop:
		return "line-loop"
	case OpLineStrip:
		return "line-strip"
	case OpLine:
		return "line"
	case OpPoint:
		return "point"
	case OpFillRect:
		return "fill-rect"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCall is one recorded rasterizer call.
type DrawCall struct {
	Op     DrawOp
	Points []Point
	Rect   Rect
	Color  Color
	Width  float64
	Text   string
}

// Recorder is a Rasterizer that appends every call to Calls. When Next is
// set, calls are forwarded to it after being recorded.
type Recorder struct {
	Calls []DrawCall
	Next  Rasterizer
}

var _ Rasterizer = (*Recorder)(nil)

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns how many recorded calls used op.
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for i := range r.Calls {
		if r.Calls[i].Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent call and false if nothing was recorded.
func (r *Recorder) Last() (DrawCall, bool) {
	if len(r.Calls) == 0 {
		return DrawCall{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}

func (r *Recorder) record(c DrawCall) {
	if len(c.Points) > 0 {
		c.Points = append([]Point(nil), c.Points...)
	}
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) Clear(c Color) {
	r.record(DrawCall{Op: OpClear, Color: c})
	if r.Next != nil {
		r.Next.Clear(c)
	}
}

func (r *Recorder) FillTriangleFan(vs []Point, c Color) {
	r.record(DrawCall{Op: OpFillTriangleFan, Points: vs, Color: c})
	if r.Next != nil {
		r.Next.FillTriangleFan(vs, c)
	}
}

func (r *Recorder) LineLoop(vs []Point, c Color, width float64) {
	r.record(DrawCall{Op: OpLineLoop, Points: vs, Color: c, Width: width})
	if r.Next != nil {
		r.Next.LineLoop(vs, c, width)
	}
}

func (r *Recorder) LineStrip(vs []Point, c Color, width float64) {
	r.record(DrawCall{Op: OpLineStrip, Points: vs, Color: c, Width: width})
	if r.Next != nil {
		r.Next.LineStrip(vs, c, width)
	}
}

func (r *Recorder) Line(a, b Point, c Color, width float64) {
	r.record(DrawCall{Op: OpLine, Points: []Point{a, b}, Color: c, Width: width})
	if r.Next != nil {
		r.Next.Line(a, b, c, width)
	}
}

func (r *Recorder) DrawPoint(p Point, c Color) {
	r.record(DrawCall{Op: OpPoint, Points: []Point{p}, Color: c})
	if r.Next != nil {
		r.Next.DrawPoint(p, c)
	}
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.record(DrawCall{Op: OpFillRect, Rect: rect, Color: c})
	if r.Next != nil {
		r.Next.FillRect(rect, c)
	}
}

func (r *Recorder) Text(s string, p Point, c Color) {
	r.record(DrawCall{Op: OpText, Points: []Point{p}, Color: c, Text: s})
	if r.Next != nil {
		r.Next.Text(s, p, c)
	}
}

// nopRasterizer discards everything. It backs a GraphicsContext outside of
// a draw pass.
type nopRasterizer struct{}

func (nopRasterizer) Clear(Color)                       {}
func (nopRasterizer) FillTriangleFan([]Point, Color)    {}
func (nopRasterizer) LineLoop([]Point, Color, float64)  {}
func (nopRasterizer) LineStrip([]Point, Color, float64) {}
func (nopRasterizer) Line(Point, Point, Color, float64) {}
func (nopRasterizer) DrawPoint(Point, Color)            {}
func (nopRasterizer) FillRect(Rect, Color)              {}
func (nopRasterizer) Text(string, Point, Color)         {}
