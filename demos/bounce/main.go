// bounce bounces balls around the window. Balls are donburi entities; a
// click spawns a new ball at the pointer, delivered through the ECS event
// bridge rather than the mouse hook.
package main

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/phanxgames/sandbox"
	"github.com/phanxgames/sandbox/ecs"
	"github.com/phanxgames/sandbox/internal/bounce"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

const (
	windowTitle = "Sandbox - Bounce"
	screenW     = 800
	screenH     = 600
	radius      = 10.0
	speed       = 216.0 // pixels per second
	maxBalls    = 200
)

// Ball is the component holding a ball's state.
var Ball = donburi.NewComponentType[bounce.Ball]()

type demo struct {
	sandbox.NopExtension

	app   *sandbox.App
	world donburi.World
	balls *donburi.Query
}

func newDemo() *demo {
	d := &demo{
		world: donburi.NewWorld(),
		balls: donburi.NewQuery(filter.Contains(Ball)),
	}
	ecs.InputEventType.Subscribe(d.world, d.onInput)
	return d
}

func (d *demo) spawn(p sandbox.Point, vel sandbox.Point) {
	if d.balls.Count(d.world) >= maxBalls {
		return
	}
	e := d.world.Entry(d.world.Create(Ball))
	Ball.SetValue(e, bounce.Ball{
		Pos:    p,
		Vel:    vel,
		Radius: radius,
		Color:  sandbox.RGBA(1, 1, 0, 0.5),
	})
}

func (d *demo) onInput(_ donburi.World, ev sandbox.Event) {
	if ev.Kind != sandbox.EventMousePress || ev.Button != sandbox.MouseButtonLeft {
		return
	}
	a := rand.Float64() * 2 * math.Pi
	d.spawn(ev.Point(), sandbox.Pt(speed*math.Cos(a), speed*math.Sin(a)))
}

func (d *demo) OnInit(app *sandbox.App) error {
	d.app = app
	app.SetEventSink(ecs.NewDonburiSink(d.world))
	d.spawn(sandbox.Pt(radius, radius), sandbox.Pt(120, 180))
	return nil
}

func (d *demo) OnUpdate(dt float64) error {
	events.ProcessAllEvents(d.world)
	w, h := float64(d.app.Width()), float64(d.app.Height())
	d.balls.Each(d.world, func(e *donburi.Entry) {
		Ball.Get(e).Step(dt, w, h)
	})
	return nil
}

func (d *demo) OnDraw(gc *sandbox.GraphicsContext) error {
	gc.Clear()
	var err error
	d.balls.Each(d.world, func(e *donburi.Entry) {
		b := Ball.Get(e)
		gc.SetFill(b.Color)
		if ferr := gc.FillCircle(b.Pos, b.Radius); ferr != nil && err == nil {
			err = ferr
		}
	})
	return err
}

func main() {
	app, err := sandbox.New(newDemo(), sandbox.Config{
		Title:  windowTitle,
		Width:  screenW,
		Height: screenH,
	})
	if err != nil {
		log.Fatalf("bounce: %v", err)
	}
	if err := app.Start(); err != nil {
		log.Fatalf("bounce: %v", err)
	}
}
