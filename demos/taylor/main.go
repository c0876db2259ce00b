// taylor plots sin(x) against its Taylor polynomial and blends the
// polynomial's terms in one at a time.
//
// Keys: right converges, left diverges, up/down change the blend speed,
// space pauses, enter toggles auto mode (in manual mode the arrows only act
// while held).
package main

import (
	"fmt"
	"log"

	"github.com/phanxgames/sandbox"
	"github.com/phanxgames/sandbox/internal/plot"
	"github.com/tanema/gween/ease"
)

const (
	windowTitle = "Sandbox - Taylor Series"
	screenW     = 800
	screenH     = 600
	terms       = 29
	rampSecs    = 0.2
)

type demo struct {
	sandbox.NopExtension

	plot     *plot.FunctionPlot
	approx   *plot.Polynomial
	modifier *plot.CoeffModifier

	speed     float64
	speedStep float64
	target    float64
	ramp      *sandbox.TweenGroup

	better bool
	worse  bool
	pause  bool
	auto   bool
}

func newDemo() *demo {
	return &demo{
		speed:     0.06,
		speedStep: 0.02,
		target:    0.06,
		better:    true,
		auto:      true,
	}
}

func (d *demo) OnInit(app *sandbox.App) error {
	d.plot = plot.NewFunctionPlot(app.Width(), app.Height())
	d.approx = &plot.Polynomial{}
	d.modifier = plot.NewCoeffModifier(d.approx, plot.SinFactors(terms), d.speed)
	d.plot.AddFunction(plot.Sin, sandbox.RGBA(1, 1, 0, 0.5))
	d.plot.AddFunction(d.approx, sandbox.RGBA(0, 1, 0, 0.5))
	d.modifier.Apply()
	return nil
}

func (d *demo) OnUpdate(dt float64) error {
	if d.ramp != nil {
		d.ramp.Update(dt)
	}
	d.modifier.Speed = d.speed
	if d.pause {
		return nil
	}
	switch {
	case d.better:
		d.modifier.Better()
	case d.worse:
		d.modifier.Worse()
	}
	return nil
}

func (d *demo) OnDraw(gc *sandbox.GraphicsContext) error {
	gc.Clear()
	if err := d.plot.Draw(gc); err != nil {
		return err
	}
	mode := "auto"
	if !d.auto {
		mode = "manual"
	}
	if d.pause {
		mode += ", paused"
	}
	gc.SetStroke(sandbox.ColorWhite)
	gc.Text(fmt.Sprintf("term %d  speed %.2f  %s", d.modifier.Index(), d.speed, mode), sandbox.Pt(10, 10))
	return nil
}

func (d *demo) setSpeed(v float64) {
	d.target = min(1, max(0, v))
	d.ramp = sandbox.TweenValue(&d.speed, d.target, rampSecs, ease.OutQuad)
}

func (d *demo) OnKeyPress(k sandbox.Key, _ sandbox.KeyModifiers) error {
	switch k {
	case sandbox.KeyArrowLeft:
		d.better, d.worse = false, true
	case sandbox.KeyArrowRight:
		d.better, d.worse = true, false
	case sandbox.KeyArrowUp:
		d.setSpeed(d.target + d.speedStep)
	case sandbox.KeyArrowDown:
		d.setSpeed(d.target - d.speedStep)
	case sandbox.KeySpace:
		d.pause = !d.pause
	case sandbox.KeyEnter:
		d.auto = !d.auto
	}
	return nil
}

func (d *demo) OnKeyRelease(k sandbox.Key, _ sandbox.KeyModifiers) error {
	if d.auto {
		return nil
	}
	switch k {
	case sandbox.KeyArrowLeft:
		d.worse = false
	case sandbox.KeyArrowRight:
		d.better = false
	}
	return nil
}

func main() {
	app, err := sandbox.New(newDemo(), sandbox.Config{
		Title:  windowTitle,
		Width:  screenW,
		Height: screenH,
	})
	if err != nil {
		log.Fatalf("taylor: %v", err)
	}
	if err := app.Start(); err != nil {
		log.Fatalf("taylor: %v", err)
	}
}
