// Package bounce moves balls inside a box, reflecting them off the walls.
package bounce

import "github.com/phanxgames/sandbox"

// Ball is a moving circle. Vel is in pixels per second.
type Ball struct {
	Pos    sandbox.Point
	Vel    sandbox.Point
	Radius float64
	Color  sandbox.Color
}

// Step advances b by dt seconds inside a w x h box. A ball that crosses a
// wall is mirrored back inside and its velocity on that axis flips.
func (b *Ball) Step(dt, w, h float64) {
	b.Pos.X, b.Vel.X = reflect(b.Pos.X+b.Vel.X*dt, b.Vel.X, b.Radius, w-b.Radius)
	b.Pos.Y, b.Vel.Y = reflect(b.Pos.Y+b.Vel.Y*dt, b.Vel.Y, b.Radius, h-b.Radius)
}

func reflect(x, v, lo, hi float64) (float64, float64) {
	if hi < lo {
		// box narrower than the ball
		return (lo + hi) / 2, 0
	}
	switch {
	case x < lo:
		x = 2*lo - x
		v = -v
	case x > hi:
		x = 2*hi - x
		v = -v
	}
	// a step longer than the box can overshoot the opposite wall
	if x < lo {
		x = lo
	} else if x > hi {
		x = hi
	}
	return x, v
}

// Inside reports whether the whole ball lies within a w x h box.
func (b *Ball) Inside(w, h float64) bool {
	return b.Pos.X >= b.Radius && b.Pos.X <= w-b.Radius &&
		b.Pos.Y >= b.Radius && b.Pos.Y <= h-b.Radius
}
