package hexgrid

import (
	"math"
	"testing"

	"github.com/phanxgames/sandbox"
	"github.com/pkg/errors"
)

const size = 32

func TestHexToPointRoundTrip(t *testing.T) {
	l := Layout{Size: size}
	for q := -5; q <= 5; q++ {
		for r := -5; r <= 5; r++ {
			h := Hex{Q: q, R: r}
			if got := l.HexAt(l.HexToPoint(h)); got != h {
				t.Errorf("HexAt(HexToPoint(%v)) = %v", h, got)
			}
		}
	}
}

func TestHexAtNearCenter(t *testing.T) {
	l := Layout{Size: size}
	h := Hex{Q: 2, R: -1}
	c := l.HexToPoint(h)
	// Anything within the inner radius belongs to the same hexagon.
	inner := size * math.Sqrt(3) / 2 * 0.9
	for i := 0; i < 12; i++ {
		a := float64(i) * math.Pi / 6
		p := sandbox.Pt(c.X+inner*math.Cos(a), c.Y+inner*math.Sin(a))
		if got := l.HexAt(p); got != h {
			t.Errorf("angle %d: HexAt = %v, want %v", i, got, h)
		}
	}
}

func TestRoundKeepsCubeInvariant(t *testing.T) {
	tests := []FracHex{
		{0.4, 0.4},
		{0.6, -0.2},
		{-1.49, 0.51},
		{2.5, -2.5},
		{-0.3, -0.3},
	}
	for _, f := range tests {
		h := f.Round()
		s := -h.Q - h.R
		if h.Q+h.R+s != 0 {
			t.Errorf("%v rounded to %v breaks q+r+s=0", f, h)
		}
		if math.Abs(float64(h.Q)-f.Q) > 1 || math.Abs(float64(h.R)-f.R) > 1 {
			t.Errorf("%v rounded too far to %v", f, h)
		}
	}
}

func TestCornersAreSizeFromCenter(t *testing.T) {
	l := Layout{Size: size}
	h := Hex{Q: 1, R: 1}
	c := l.HexToPoint(h)
	corners := l.Corners(h)
	for i, p := range corners {
		if d := c.Distance(p); math.Abs(d-size) > 1e-9 {
			t.Errorf("corner %d at distance %f, want %d", i, d, size)
		}
	}
	// Flat top: corner 0 points east.
	if math.Abs(corners[0].Y-c.Y) > 1e-9 || corners[0].X <= c.X {
		t.Errorf("corner 0 = %v, want due east of %v", corners[0], c)
	}
}

func TestGridCoversArea(t *testing.T) {
	l := Layout{Size: size}
	g := NewGrid(l, 800, 600)
	if g.Len() == 0 {
		t.Fatal("empty grid")
	}
	if len(g.Hexes()) != g.Len() {
		t.Fatalf("Hexes() has %d entries, Len() = %d", len(g.Hexes()), g.Len())
	}
	for _, p := range []sandbox.Point{{X: 0, Y: 0}, {X: 400, Y: 300}, {X: 96, Y: 55.4}} {
		if _, err := g.Lookup(p); err != nil {
			t.Errorf("Lookup(%v): %v", p, err)
		}
	}
}

func TestGridLookupMiss(t *testing.T) {
	g := NewGrid(Layout{Size: size}, 200, 200)
	h, err := g.Lookup(sandbox.Pt(-500, -500))
	if !errors.Is(err, sandbox.ErrLookupMiss) {
		t.Fatalf("err = %v, want ErrLookupMiss", err)
	}
	if g.Contains(h) {
		t.Errorf("missed hex %v reported as contained", h)
	}
}
