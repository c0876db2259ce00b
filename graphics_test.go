package sandbox

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func newTestContext() (*GraphicsContext, *Recorder) {
	rec := &Recorder{}
	return NewGraphicsContext(rec, ColorBlack), rec
}

func TestLineLoopArity(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		wantErr bool
	}{
		{"zero", nil, true},
		{"one", []Point{Pt(0, 0)}, true},
		{"two", []Point{Pt(0, 0), Pt(1, 0)}, true},
		{"three", []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, false},
		{"four", []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc, rec := newTestContext()
			err := gc.LineLoop(tt.points...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("err = %v, want ErrInvalidArgument", err)
				}
				if len(rec.Calls) != 0 {
					t.Errorf("rasterizer called %d times on error", len(rec.Calls))
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			call, _ := rec.Last()
			if call.Op != OpLineLoop {
				t.Fatalf("op = %v, want line-loop", call.Op)
			}
			if len(call.Points) != len(tt.points)+1 {
				t.Fatalf("got %d vertices, want %d", len(call.Points), len(tt.points)+1)
			}
			if call.Points[0] != call.Points[len(call.Points)-1] {
				t.Errorf("outline not closed: %v", call.Points)
			}
		})
	}
}

func TestLineLoopAlreadyClosed(t *testing.T) {
	gc, rec := newTestContext()
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0)}
	if err := gc.LineLoop(pts...); err != nil {
		t.Fatal(err)
	}
	call, _ := rec.Last()
	if len(call.Points) != len(pts) {
		t.Errorf("got %d vertices, want %d", len(call.Points), len(pts))
	}
}

func TestLinesArity(t *testing.T) {
	gc, rec := newTestContext()
	if err := gc.Lines(Pt(1, 1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("one point: err = %v", err)
	}
	if err := gc.Lines(Pt(0, 0), Pt(5, 5), Pt(10, 0)); err != nil {
		t.Fatal(err)
	}
	call, _ := rec.Last()
	if call.Op != OpLineStrip || len(call.Points) != 3 {
		t.Errorf("call = %+v", call)
	}
	if call.Points[0] == call.Points[2] {
		t.Error("open polyline must not be closed")
	}
}

func TestCircleSegments(t *testing.T) {
	prev := 0
	for r := 0.0; r <= 500; r += 0.5 {
		n := circleSegments(r)
		if n < 3 {
			t.Fatalf("r=%v: %d segments", r, n)
		}
		if n < prev {
			t.Fatalf("r=%v: %d segments, fewer than %d at smaller radius", r, n, prev)
		}
		if n != circleSegments(r) {
			t.Fatalf("r=%v: not deterministic", r)
		}
		prev = n
	}
	if circleSegments(100) <= circleSegments(10) {
		t.Error("segment count should grow with radius")
	}
}

func TestCircleSegmentsLargeRadius(t *testing.T) {
	radii := []float64{500, 1e3, 1e4, 1e9, 1e18, 1e19, math.MaxFloat64}
	prev := 0
	for _, r := range radii {
		n := circleSegments(r)
		if n < prev {
			t.Errorf("r=%g: %d segments, fewer than %d at smaller radius", r, n, prev)
		}
		if n > maxCircleSegments {
			t.Errorf("r=%g: %d segments, above %d", r, n, maxCircleSegments)
		}
		prev = n
	}
	if n := circleSegments(1e9); n != maxCircleSegments {
		t.Errorf("circleSegments(1e9) = %d, want %d", n, maxCircleSegments)
	}
	if n := circleSegments(math.NaN()); n != minCircleSegments {
		t.Errorf("circleSegments(NaN) = %d", n)
	}
}

func TestFillHugeCircle(t *testing.T) {
	gc, rec := newTestContext()
	if err := gc.FillCircle(Pt(0, 0), 1e18); err != nil {
		t.Fatal(err)
	}
	call, _ := rec.Last()
	if call.Op != OpFillTriangleFan {
		t.Fatalf("op = %v", call.Op)
	}
	if len(call.Points) != maxCircleSegments+2 {
		t.Errorf("fan has %d points, want %d", len(call.Points), maxCircleSegments+2)
	}
}

func TestStrokeCircleVertices(t *testing.T) {
	gc, rec := newTestContext()
	center := Pt(100, 100)
	if err := gc.StrokeCircle(center, 20); err != nil {
		t.Fatal(err)
	}
	call, _ := rec.Last()
	if call.Op != OpLineLoop {
		t.Fatalf("op = %v", call.Op)
	}
	n := circleSegments(20)
	if len(call.Points) != n+1 {
		t.Fatalf("got %d vertices, want %d", len(call.Points), n+1)
	}
	if call.Points[0] != call.Points[n] {
		t.Error("rim not closed")
	}
	for i, p := range call.Points {
		if d := p.Distance(center); math.Abs(d-20) > 1e-9 {
			t.Errorf("vertex %d at distance %v", i, d)
		}
	}
}

func TestFillCircleFan(t *testing.T) {
	gc, rec := newTestContext()
	gc.SetFillRGBA(1, 1, 0, 0.5)
	if err := gc.FillCircle(Pt(5, 5), 3); err != nil {
		t.Fatal(err)
	}
	call, _ := rec.Last()
	if call.Op != OpFillTriangleFan {
		t.Fatalf("op = %v", call.Op)
	}
	if call.Points[0] != Pt(5, 5) {
		t.Errorf("fan pivot = %v, want center", call.Points[0])
	}
	if len(call.Points) != circleSegments(3)+2 {
		t.Errorf("got %d vertices", len(call.Points))
	}
	if call.Color != (Color{1, 1, 0, 0.5}) {
		t.Errorf("color = %v", call.Color)
	}
}

func TestCircleBadRadius(t *testing.T) {
	gc, rec := newTestContext()
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		if err := gc.StrokeCircle(Pt(0, 0), r); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("StrokeCircle r=%v: err = %v", r, err)
		}
		if err := gc.FillCircle(Pt(0, 0), r); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("FillCircle r=%v: err = %v", r, err)
		}
	}
	if len(rec.Calls) != 0 {
		t.Errorf("%d calls recorded", len(rec.Calls))
	}
}

func TestFillRectFormsAgree(t *testing.T) {
	gcA, recA := newTestContext()
	gcB, recB := newTestContext()
	gcA.FillRect(RectXYWH(10, 10, 5, 5))
	gcB.FillRect(RectFromPoints(Pt(10, 10), Pt(5, 5)))
	a, _ := recA.Last()
	b, _ := recB.Last()
	if a.Op != OpFillRect || a.Rect != b.Rect || a.Color != b.Color {
		t.Errorf("xywh = %+v, points = %+v", a, b)
	}
}

func TestStrokeRectClosed(t *testing.T) {
	gc, rec := newTestContext()
	gc.StrokeRect(RectXYWH(0, 0, 4, 3))
	call, _ := rec.Last()
	want := []Point{{0, 0}, {4, 0}, {4, 3}, {0, 3}, {0, 0}}
	if len(call.Points) != len(want) {
		t.Fatalf("points = %v", call.Points)
	}
	for i := range want {
		if call.Points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, call.Points[i], want[i])
		}
	}
}

func TestSetLineWidth(t *testing.T) {
	gc, rec := newTestContext()
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := gc.SetLineWidth(w); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetLineWidth(%v): err = %v", w, err)
		}
	}
	if gc.LineWidth() != 1 {
		t.Errorf("width changed to %v after rejected values", gc.LineWidth())
	}
	if err := gc.SetLineWidth(3); err != nil {
		t.Fatal(err)
	}
	gc.Line(Pt(0, 0), Pt(1, 1))
	call, _ := rec.Last()
	if call.Width != 3 {
		t.Errorf("line width = %v, want 3", call.Width)
	}
}

func TestStylePersists(t *testing.T) {
	gc, rec := newTestContext()
	gc.SetStrokeRGB(0, 1, 0)
	gc.Point(1, 1)
	gc.Text("hi", Pt(2, 2))
	gc.Line(Pt(0, 0), Pt(3, 3))
	for i, c := range rec.Calls {
		if c.Color != RGB(0, 1, 0) {
			t.Errorf("call %d (%v) color = %v", i, c.Op, c.Color)
		}
	}
	if gc.Stroke() != RGB(0, 1, 0) || gc.Fill() != ColorWhite {
		t.Errorf("stroke = %v, fill = %v", gc.Stroke(), gc.Fill())
	}
}

func TestClearUsesClearColor(t *testing.T) {
	rec := &Recorder{}
	gc := NewGraphicsContext(rec, DefaultClearColor)
	gc.Clear()
	call, _ := rec.Last()
	if call.Op != OpClear || call.Color != DefaultClearColor {
		t.Errorf("call = %+v", call)
	}
}

func TestUnboundContextDiscards(t *testing.T) {
	gc := NewGraphicsContext(nil, ColorBlack)
	gc.Clear()
	gc.FillRect(RectXYWH(0, 0, 1, 1))
	if err := gc.LineLoop(Pt(0, 0), Pt(1, 0), Pt(1, 1)); err != nil {
		t.Fatal(err)
	}
}

func TestRecorderForwards(t *testing.T) {
	inner := &Recorder{}
	outer := &Recorder{Next: inner}
	gc := NewGraphicsContext(outer, ColorBlack)
	gc.Clear()
	gc.Line(Pt(0, 0), Pt(1, 1))
	if len(outer.Calls) != 2 || len(inner.Calls) != 2 {
		t.Fatalf("outer %d, inner %d", len(outer.Calls), len(inner.Calls))
	}
	if outer.Count(OpLine) != 1 || inner.Count(OpClear) != 1 {
		t.Error("counts mismatch")
	}
	outer.Reset()
	if _, ok := outer.Last(); ok {
		t.Error("Last after Reset should report false")
	}
}
