package sandbox

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// RGB returns an opaque color. Alpha is exactly 1.0.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA returns a color from four components, each clamped to [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// Clamped returns c with every component clamped to [0, 1]. NaN becomes 0.
func (c Color) Clamped() Color {
	return RGBA(c.R, c.G, c.B, c.A)
}

func (c Color) toNRGBA() color.NRGBA {
	c = c.Clamped()
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Point is a 2D position. It is the coordinate currency of the whole API.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both coordinates multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp interpolates between p (t=0) and q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectXYWH builds a rectangle from its origin and extent.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFromPoints builds a rectangle from an origin point and a size point
// whose X is the width and Y the height.
func RectFromPoints(origin, size Point) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.X, Height: size.Y}
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Corners returns the four corners in drawing order, starting at the origin.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}

// BlendMode is how all drawing composites onto the window. It is chosen once
// per App.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over alpha
	BlendAdd                     // additive, for glows and trails
	BlendCopy                    // replace destination pixels
)

func (b BlendMode) String() string {
	switch b {
	case BlendNormal:
		return "normal"
	case BlendAdd:
		return "add"
	case BlendCopy:
		return "copy"
	default:
		return "unknown"
	}
}

func (b BlendMode) valid() bool {
	return b <= BlendCopy
}

// ebitenBlend maps b onto one of Ebitengine's preset blends.
func (b BlendMode) ebitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendCopy:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// MouseButton is a backend-assigned button index. Indices are passed through
// unchanged; only 0..7 are tracked.
type MouseButton int

const maxMouseButtons = 8

const (
	MouseButtonLeft   = MouseButton(ebiten.MouseButtonLeft)
	MouseButtonRight  = MouseButton(ebiten.MouseButtonRight)
	MouseButtonMiddle = MouseButton(ebiten.MouseButtonMiddle)
)

func (b MouseButton) valid() bool {
	return b >= 0 && b < maxMouseButtons
}

// ButtonMask is a set of held mouse buttons, one bit per index.
type ButtonMask uint8

// Has reports whether button b is in the mask.
func (m ButtonMask) Has(b MouseButton) bool {
	return b.valid() && m&(1<<uint(b)) != 0
}

func (m ButtonMask) with(b MouseButton) ButtonMask {
	if !b.valid() {
		return m
	}
	return m | 1<<uint(b)
}

func (m ButtonMask) without(b MouseButton) ButtonMask {
	if !b.valid() {
		return m
	}
	return m &^ (1 << uint(b))
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// RedrawPolicy decides when the draw hook runs relative to the tick.
type RedrawPolicy uint8

const (
	// RedrawOnEvent runs OnUpdate on each tick and OnDraw whenever the backend
	// signals a redraw.
	RedrawOnEvent RedrawPolicy = iota
	// RedrawOnTick runs OnUpdate and then OnDraw in the same tick.
	RedrawOnTick
)

func (p RedrawPolicy) String() string {
	switch p {
	case RedrawOnEvent:
		return "on-event"
	case RedrawOnTick:
		return "on-tick"
	default:
		return "unknown"
	}
}
