package sandbox

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenValue, TweenPoint, TweenColor) and call
// Update(dt) from OnUpdate. The group writes values straight into the fields
// it was built on.
//
// There is no global animation manager; extensions call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Cancel stops the group where it is. The fields keep their current values.
func (g *TweenGroup) Cancel() {
	g.Done = true
}

// TweenValue creates a TweenGroup that animates *v to the given target over
// the given duration using the easing function.
func TweenValue(v *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*v), float32(to), duration, fn)
	g.fields[0] = v
	return g
}

// TweenPoint creates a TweenGroup that animates p.X and p.Y to the target.
func TweenPoint(p *Point, to Point, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(p.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(to.Y), duration, fn)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	return g
}

// TweenColor creates a TweenGroup that animates all four components of c
// (R, G, B, A) to the target color.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}
