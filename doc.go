// Package sandbox is a small runtime for interactive 2D experiments on top of
// [Ebitengine].
//
// It opens a fixed-size window, turns backend input into a uniform set of
// events and hands an application an immediate-mode drawing context. An
// application is an [Extension]: a set of hooks the [App] calls through its
// lifecycle.
//
// # Quick start
//
// Embed [NopExtension] and override the hooks you need:
//
//	type demo struct {
//		sandbox.NopExtension
//		app *sandbox.App
//	}
//
//	func (d *demo) OnInit(app *sandbox.App) error { d.app = app; return nil }
//
//	func (d *demo) OnDraw(gc *sandbox.GraphicsContext) error {
//		gc.Clear()
//		gc.SetFillRGB(1, 0.5, 0)
//		return gc.FillCircle(d.app.Mouse().Position(), 20)
//	}
//
//	app, err := sandbox.New(&demo{}, sandbox.Config{Title: "demo"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Start(); err != nil {
//		log.Fatal(err)
//	}
//
// Start blocks until [App.Stop] is called, escape is pressed or a hook
// returns an error.
//
// # Drawing
//
// [GraphicsContext] keeps a fill color, a stroke color and a line width that
// persist across frames. Shapes are circles, rectangles, polylines, closed
// loops, single lines, points and text labels. Circles are tessellated into
// line segments about two pixels long.
//
// By default OnDraw runs after every loop iteration ([RedrawOnEvent]) into
// a window that is not cleared between frames. With [RedrawOnTick] it runs
// right after OnUpdate into an off-screen canvas.
//
// # Headless runs
//
// [HeadlessBackend] runs the same loop without a window, rendering with the
// gg software rasterizer. Input is injected directly or from a JSON
// [Script], which makes it the tool for tests and screenshots:
//
//	b := sandbox.NewHeadlessBackend()
//	b.ExitWhenIdle = true
//	b.InjectClick(100, 100, sandbox.MouseButtonLeft)
//	app, _ := sandbox.New(ext, sandbox.Config{Backend: b})
//	err := app.Start()
//
// # Logging
//
// The package logs through [log/slog] and is silent by default. Call
// [SetLogger], or set DEBUG=1 in the environment to log every event and
// periodic frame stats to stderr.
//
// # Extras
//
// Tweens (via [gween]) animate values, points and colors. The ecs
// subpackage forwards input events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sandbox
