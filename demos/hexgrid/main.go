// hexgrid covers the window with flat-top hexagons. The hexagon under the
// pointer fades to white and a label shows pointer and axial coordinates.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phanxgames/sandbox"
	"github.com/phanxgames/sandbox/internal/hexgrid"
	"github.com/pkg/errors"
	"github.com/tanema/gween/ease"
)

const (
	windowTitle = "Sandbox - Hex Grid"
	screenW     = 800
	screenH     = 600
	hexSize     = 32
	cursorR     = 11
	fadeSecs    = 0.25
)

var (
	gridColor  = sandbox.RGBA(0.5, 0.5, 0, 1)
	labelColor = sandbox.RGBA(1, 1, 0, 1)
	hoverColor = sandbox.RGBA(1, 1, 1, 1)
	mouseColor = sandbox.RGBA(0, 1, 0, 1)
)

type demo struct {
	sandbox.NopExtension

	app  *sandbox.App
	grid *hexgrid.Grid
	log  *slog.Logger

	hover    hexgrid.Hex
	hasHover bool
	hoverCol sandbox.Color
	fade     *sandbox.TweenGroup
	label    string
}

func (d *demo) OnInit(app *sandbox.App) error {
	d.app = app
	d.log = sandbox.Logger().With("demo", "hexgrid")
	d.grid = hexgrid.NewGrid(hexgrid.Layout{Size: hexSize}, app.Width(), app.Height())
	d.log.Info("grid built", "hexes", d.grid.Len())
	return nil
}

func (d *demo) OnMouseMotion(p sandbox.Point, _, _ float64) error {
	h, err := d.grid.Lookup(p)
	switch {
	case errors.Is(err, sandbox.ErrLookupMiss):
		d.log.Info("no hex found", "q", h.Q, "r", h.R)
	case err != nil:
		return err
	case !d.hasHover || h != d.hover:
		d.hover, d.hasHover = h, true
		d.hoverCol = gridColor
		d.fade = sandbox.TweenColor(&d.hoverCol, hoverColor, fadeSecs, ease.OutQuad)
	}
	d.label = fmt.Sprintf("xy=(%d, %d), qr=(%d, %d)", int(p.X), int(p.Y), h.Q, h.R)
	return nil
}

func (d *demo) OnUpdate(dt float64) error {
	if d.fade != nil {
		d.fade.Update(dt)
	}
	return nil
}

func (d *demo) drawHex(gc *sandbox.GraphicsContext, h hexgrid.Hex) error {
	c := d.grid.Layout.Corners(h)
	return gc.LineLoop(c[:]...)
}

func (d *demo) OnDraw(gc *sandbox.GraphicsContext) error {
	gc.Clear()

	gc.SetStroke(gridColor)
	for _, h := range d.grid.Hexes() {
		if err := d.drawHex(gc, h); err != nil {
			return err
		}
	}

	if d.label != "" {
		gc.SetStroke(labelColor)
		gc.Text(d.label, sandbox.Pt(40, 40))
	}

	if d.hasHover {
		gc.SetStroke(d.hoverCol)
		if err := d.drawHex(gc, d.hover); err != nil {
			return err
		}
	}

	gc.SetStroke(mouseColor)
	return gc.StrokeCircle(d.app.Mouse().Position(), cursorR)
}

func main() {
	sandbox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := sandbox.New(&demo{}, sandbox.Config{
		Title:  windowTitle,
		Width:  screenW,
		Height: screenH,
	})
	if err != nil {
		log.Fatalf("hexgrid: %v", err)
	}
	if err := app.Start(); err != nil {
		log.Fatalf("hexgrid: %v", err)
	}
}
