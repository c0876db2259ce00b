// Package plot draws functions of one variable onto a GraphicsContext and
// builds Taylor polynomials that can be blended in term by term.
package plot

import (
	"math"

	"github.com/phanxgames/sandbox"
	"github.com/pkg/errors"
)

// DefaultSamples is how many points each function is evaluated at.
const DefaultSamples = 100

// Function is a real function of one variable.
type Function interface {
	Eval(x float64) float64
}

// FunctionFunc adapts an ordinary function to Function.
type FunctionFunc func(x float64) float64

func (f FunctionFunc) Eval(x float64) float64 { return f(x) }

// Sin is math.Sin as a Function.
var Sin Function = FunctionFunc(math.Sin)

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// Sample evaluates f at n evenly spaced points in [lo, hi].
func Sample(f Function, lo, hi float64, n int) []sandbox.Point {
	xs := Linspace(lo, hi, n)
	pts := make([]sandbox.Point, len(xs))
	for i, x := range xs {
		pts[i] = sandbox.Point{X: x, Y: f.Eval(x)}
	}
	return pts
}

// Polynomial is c0 + c1*x + c2*x^2 + ...
type Polynomial struct {
	Coeffs []float64
}

// Eval implements Function.
func (p *Polynomial) Eval(x float64) float64 {
	y := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return y
}

// SetCoeffs replaces all coefficients with a copy of c.
func (p *Polynomial) SetCoeffs(c []float64) {
	p.Coeffs = append(p.Coeffs[:0], c...)
}

// SetCoeff sets the coefficient of x^i, growing the polynomial with zeros
// as needed. Negative indices are ignored.
func (p *Polynomial) SetCoeff(i int, v float64) {
	if i < 0 {
		return
	}
	for len(p.Coeffs) <= i {
		p.Coeffs = append(p.Coeffs, 0)
	}
	p.Coeffs[i] = v
}

// SinFactors returns the first n Taylor coefficients of sin around 0.
func SinFactors(n int) []float64 {
	fs := make([]float64, n)
	fact := 1.0
	for i := 0; i < n; i++ {
		if i > 0 {
			fact *= float64(i)
		}
		if i%2 == 0 {
			continue
		}
		fs[i] = 1 / fact
		if i%4 == 3 {
			fs[i] = -fs[i]
		}
	}
	return fs
}

// CoeffModifier blends a target coefficient list into a polynomial one
// term at a time. Each term has a factor in [0, 1]; Better raises the
// current term's factor by Speed and moves on to the next non-zero term
// once it reaches 1, Worse does the reverse.
type CoeffModifier struct {
	// Speed is the factor change per step.
	Speed float64

	poly    *Polynomial
	coeffs  []float64
	factors []float64
	blended []float64
	index   int
}

// NewCoeffModifier starts with every factor at zero.
func NewCoeffModifier(p *Polynomial, coeffs []float64, speed float64) *CoeffModifier {
	m := &CoeffModifier{
		Speed:   speed,
		poly:    p,
		coeffs:  append([]float64(nil), coeffs...),
		factors: make([]float64, len(coeffs)),
		blended: make([]float64, len(coeffs)),
	}
	return m
}

// Index returns the term currently being blended.
func (m *CoeffModifier) Index() int { return m.index }

// Factor returns the blend factor of term i.
func (m *CoeffModifier) Factor(i int) float64 { return m.factors[i] }

func (m *CoeffModifier) nextIndex() int {
	for i := m.index + 1; i < len(m.coeffs); i++ {
		if m.coeffs[i] != 0 {
			return i
		}
	}
	return m.index
}

func (m *CoeffModifier) previousIndex() int {
	for i := m.index - 1; i >= 0; i-- {
		if m.coeffs[i] != 0 {
			return i
		}
	}
	return m.index
}

// Apply writes factor*coeff for every term into the polynomial.
func (m *CoeffModifier) Apply() {
	for i, c := range m.coeffs {
		m.blended[i] = m.factors[i] * c
	}
	m.poly.SetCoeffs(m.blended)
}

// Better moves the polynomial one step closer to the target.
func (m *CoeffModifier) Better() {
	if len(m.coeffs) == 0 {
		return
	}
	if m.coeffs[m.index] == 0 || m.factors[m.index] > 0.999 {
		m.factors[m.index] = 1
		m.index = m.nextIndex()
	}
	if m.factors[m.index] < 0.999 {
		m.factors[m.index] = math.Min(1, m.factors[m.index]+m.Speed)
	}
	m.Apply()
}

// Worse moves the polynomial one step away from the target.
func (m *CoeffModifier) Worse() {
	if len(m.coeffs) == 0 {
		return
	}
	if m.factors[m.index] > 0.001 {
		m.factors[m.index] = math.Max(0, m.factors[m.index]-m.Speed)
	}
	if m.coeffs[m.index] == 0 || m.factors[m.index] < 0.001 {
		m.factors[m.index] = 0
		m.index = m.previousIndex()
	}
	m.Apply()
}

type series struct {
	f     Function
	color sandbox.Color
}

// FunctionPlot maps [XMin, XMax] x [YMin, YMax] onto a Width x Height pixel
// area with y pointing up.
type FunctionPlot struct {
	XMin, XMax float64
	YMin, YMax float64
	Width      float64
	Height     float64
	Samples    int
	AxisColor  sandbox.Color

	series []series
}

// NewFunctionPlot shows [-10, 10] on both axes over a w x h pixel area.
func NewFunctionPlot(w, h int) *FunctionPlot {
	return &FunctionPlot{
		XMin:      -10,
		XMax:      10,
		YMin:      -10,
		YMax:      10,
		Width:     float64(w),
		Height:    float64(h),
		Samples:   DefaultSamples,
		AxisColor: sandbox.ColorWhite,
	}
}

// AddFunction adds f, drawn in c.
func (fp *FunctionPlot) AddFunction(f Function, c sandbox.Color) {
	fp.series = append(fp.series, series{f: f, color: c})
}

// SetXRange sets the visible x interval.
func (fp *FunctionPlot) SetXRange(lo, hi float64) error {
	if !(hi > lo) {
		return errors.Wrapf(sandbox.ErrInvalidArgument, "x range [%v, %v]", lo, hi)
	}
	fp.XMin, fp.XMax = lo, hi
	return nil
}

// ToScreen maps a plot coordinate to pixels.
func (fp *FunctionPlot) ToScreen(p sandbox.Point) sandbox.Point {
	xw := fp.XMax - fp.XMin
	yw := fp.YMax - fp.YMin
	return sandbox.Point{
		X: (p.X - fp.XMin) * fp.Width / xw,
		Y: fp.Height - (p.Y-fp.YMin)*fp.Height/yw,
	}
}

// Draw draws the axes and then every function as a polyline.
func (fp *FunctionPlot) Draw(gc *sandbox.GraphicsContext) error {
	origin := fp.ToScreen(sandbox.Point{})
	gc.SetStroke(fp.AxisColor)
	gc.Line(sandbox.Pt(0, origin.Y), sandbox.Pt(fp.Width, origin.Y))
	gc.Line(sandbox.Pt(origin.X, 0), sandbox.Pt(origin.X, fp.Height))

	n := fp.Samples
	if n < 2 {
		n = 2
	}
	for _, s := range fp.series {
		pts := Sample(s.f, fp.XMin, fp.XMax, n)
		for i := range pts {
			pts[i] = fp.ToScreen(pts[i])
			// keep diverging terms from producing unbounded geometry
			pts[i].Y = math.Max(-fp.Height, math.Min(2*fp.Height, pts[i].Y))
		}
		gc.SetStroke(s.color)
		if err := gc.Lines(pts...); err != nil {
			return err
		}
	}
	return nil
}
