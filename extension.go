package sandbox

// Extension is implemented by applications running on an App. Every hook
// runs on the loop goroutine. A non-nil error from OnInit aborts startup; a
// non-nil error from any other hook terminates the loop and is returned by
// App.Start.
//
// Embed NopExtension to implement only the hooks you need:
//
//	type game struct {
//		sandbox.NopExtension
//		pos sandbox.Point
//	}
//
//	func (g *game) OnDraw(gc *sandbox.GraphicsContext) error {
//		gc.Clear()
//		return gc.FillCircle(g.pos, 10)
//	}
type Extension interface {
	OnInit(app *App) error
	OnUpdate(dt float64) error
	OnDraw(gc *GraphicsContext) error

	OnMouseMotion(p Point, dx, dy float64) error
	OnMousePress(p Point, button MouseButton, mods KeyModifiers) error
	OnMouseDrag(p Point, dx, dy float64, buttons ButtonMask, mods KeyModifiers) error
	OnMouseRelease(p Point, button MouseButton, mods KeyModifiers) error

	OnKeyPress(key Key, mods KeyModifiers) error
	OnKeyRelease(key Key, mods KeyModifiers) error
}

// NopExtension implements every Extension hook as a no-op.
type NopExtension struct{}

var _ Extension = NopExtension{}

func (NopExtension) OnInit(*App) error             { return nil }
func (NopExtension) OnUpdate(float64) error        { return nil }
func (NopExtension) OnDraw(*GraphicsContext) error { return nil }
func (NopExtension) OnMouseMotion(Point, float64, float64) error {
	return nil
}
func (NopExtension) OnMousePress(Point, MouseButton, KeyModifiers) error {
	return nil
}
func (NopExtension) OnMouseDrag(Point, float64, float64, ButtonMask, KeyModifiers) error {
	return nil
}
func (NopExtension) OnMouseRelease(Point, MouseButton, KeyModifiers) error {
	return nil
}
func (NopExtension) OnKeyPress(Key, KeyModifiers) error   { return nil }
func (NopExtension) OnKeyRelease(Key, KeyModifiers) error { return nil }
