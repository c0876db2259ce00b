// Package hexgrid converts between pixel positions and flat-top hexagons in
// axial coordinates, following https://www.redblobgames.com/grids/hexagons/.
package hexgrid

import (
	"math"

	"github.com/phanxgames/sandbox"
	"github.com/pkg/errors"
)

var sqrt3 = math.Sqrt(3)

// Hex is a hexagon in axial coordinates.
type Hex struct {
	Q, R int
}

// FracHex is an axial position that has not been rounded to a hexagon.
type FracHex struct {
	Q, R float64
}

// Round returns the hexagon containing f, using cube rounding: the
// component with the largest rounding error is recomputed from the other
// two so that q + r + s stays zero.
func (f FracHex) Round() Hex {
	q, r := f.Q, f.R
	s := -q - r

	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}

// Layout maps hexagons of a given size (center to corner, in pixels) onto
// the plane. Hex{0, 0} is centered on the origin.
type Layout struct {
	Size float64
}

// PointToHex returns the fractional axial position of p.
func (l Layout) PointToHex(p sandbox.Point) FracHex {
	return FracHex{
		Q: (2.0 / 3 * p.X) / l.Size,
		R: (-1.0/3*p.X + sqrt3/3*p.Y) / l.Size,
	}
}

// HexAt returns the hexagon containing p.
func (l Layout) HexAt(p sandbox.Point) Hex {
	return l.PointToHex(p).Round()
}

// HexToPoint returns the center of h.
func (l Layout) HexToPoint(h Hex) sandbox.Point {
	q, r := float64(h.Q), float64(h.R)
	return sandbox.Point{
		X: 1.5 * l.Size * q,
		Y: sqrt3/2*l.Size*q + sqrt3*l.Size*r,
	}
}

// Corners returns the six corners of h, starting east and going clockwise
// in screen coordinates.
func (l Layout) Corners(h Hex) [6]sandbox.Point {
	c := l.HexToPoint(h)
	var pts [6]sandbox.Point
	for i := range pts {
		s, cs := math.Sincos(float64(i) * math.Pi / 3)
		pts[i] = sandbox.Point{X: c.X + l.Size*cs, Y: c.Y + l.Size*s}
	}
	return pts
}

// Grid is the set of hexagons covering a w x h pixel area.
type Grid struct {
	Layout Layout

	hexes map[Hex]struct{}
	order []Hex
}

// NewGrid covers a w x h area with hexagons, overshooting by one row and
// column so the edges are filled.
func NewGrid(l Layout, w, h int) *Grid {
	g := &Grid{Layout: l, hexes: make(map[Hex]struct{})}

	hexH := sqrt3 * l.Size
	hexW := 2 * l.Size
	rows := int((float64(h) + hexH) / (hexH / 2))
	cols := int((float64(w) + hexW) / (hexW * 1.5))
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			x := float64(i)*l.Size*3 + float64(j%2)*l.Size*1.5
			y := float64(j) * hexH / 2
			hx := l.HexAt(sandbox.Pt(x, y))
			if _, ok := g.hexes[hx]; ok {
				continue
			}
			g.hexes[hx] = struct{}{}
			g.order = append(g.order, hx)
		}
	}
	return g
}

// Len returns the number of hexagons in the grid.
func (g *Grid) Len() int { return len(g.order) }

// Hexes returns the grid's hexagons in construction order. The slice must not
// be modified.
func (g *Grid) Hexes() []Hex { return g.order }

// Contains reports whether h is part of the grid.
func (g *Grid) Contains(h Hex) bool {
	_, ok := g.hexes[h]
	return ok
}

// Lookup returns the grid hexagon under p. Positions outside the grid
// return an error wrapping sandbox.ErrLookupMiss together with the hexagon
// that was computed.
func (g *Grid) Lookup(p sandbox.Point) (Hex, error) {
	h := g.Layout.HexAt(p)
	if !g.Contains(h) {
		return h, errors.Wrapf(sandbox.ErrLookupMiss, "no hex at qr=(%d, %d)", h.Q, h.R)
	}
	return h, nil
}
