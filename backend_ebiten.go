package sandbox

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
)

// EbitenBackend runs the App in an Ebitengine window.
type EbitenBackend struct {
	opts   WindowOptions
	opened bool
}

var _ Backend = (*EbitenBackend)(nil)

// NewEbitenBackend returns the default windowed backend.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{}
}

// Open applies the window options. Ebitengine creates the OS window when Run
// starts, so this only configures it.
func (b *EbitenBackend) Open(opts WindowOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "window size %dx%d", opts.Width, opts.Height)
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(opts.Vsync)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetScreenClearedEveryFrame(false)
	if opts.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	b.opts = opts
	b.opened = true
	return nil
}

// Run blocks in ebiten.RunGame until the loop stops or a hook fails.
func (b *EbitenBackend) Run(loop Loop) error {
	if !b.opened {
		return errors.Wrap(ErrInvalidState, "sandbox: run before open")
	}
	g := &ebitenGame{
		loop:  loop,
		opts:  b.opts,
		dt:    1 / float64(b.opts.TPS),
		blend: b.opts.Blend.ebitenBlend(),
	}
	if b.opts.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "sandbox: ebiten")
	}
	return nil
}

// ebitenGame adapts a Loop to ebiten.Game.
type ebitenGame struct {
	loop  Loop
	opts  WindowOptions
	dt    float64
	blend ebiten.Blend

	// canvas holds the last frame drawn under RedrawOnTick.
	canvas *ebiten.Image
	fps    *fpsOverlay

	// Draw cannot return an error; it is surfaced by the next Update.
	drawErr error

	cursorSeen bool
	cursorX    int
	cursorY    int
	keys       []ebiten.Key
	events     []Event
	raster     ebitenRasterizer
}

func (g *ebitenGame) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if !g.loop.Running() {
		return ebiten.Termination
	}

	g.events = g.pollEvents(g.events[:0])
	for _, ev := range g.events {
		if err := g.loop.Dispatch(ev); err != nil {
			return err
		}
		if !g.loop.Running() {
			return ebiten.Termination
		}
	}

	var canvas Rasterizer
	if g.opts.Redraw == RedrawOnTick {
		if g.canvas == nil {
			g.canvas = ebiten.NewImage(g.opts.Width, g.opts.Height)
		}
		g.raster.reset(g.canvas, g.blend)
		canvas = &g.raster
	}
	if err := g.loop.Tick(g.dt, canvas); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.update(g.dt)
	}
	if !g.loop.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	if g.drawErr != nil {
		return
	}
	switch g.opts.Redraw {
	case RedrawOnTick:
		if g.canvas != nil {
			screen.DrawImage(g.canvas, &ebiten.DrawImageOptions{Blend: ebiten.BlendCopy})
		}
	default:
		g.raster.reset(screen, g.blend)
		g.drawErr = g.loop.Redraw(&g.raster)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the logical screen at the size the window was opened with.
func (g *ebitenGame) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// pollEvents turns this frame's input into raw events: button presses first,
// then pointer movement, then releases, then keys.
func (g *ebitenGame) pollEvents(dst []Event) []Event {
	mods := readModifiers()
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	var held ButtonMask
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		mb := MouseButton(b)
		if inpututil.IsMouseButtonJustPressed(b) {
			dst = append(dst, Event{Kind: EventMousePress, X: x, Y: y, Button: mb, Mods: mods})
		}
		if ebiten.IsMouseButtonPressed(b) {
			held = held.with(mb)
		}
	}

	if !g.cursorSeen {
		g.cursorSeen = true
		g.cursorX, g.cursorY = cx, cy
	} else if cx != g.cursorX || cy != g.cursorY {
		dx, dy := float64(cx-g.cursorX), float64(cy-g.cursorY)
		g.cursorX, g.cursorY = cx, cy
		if held != 0 {
			dst = append(dst, Event{Kind: EventMouseDrag, X: x, Y: y, DX: dx, DY: dy, Buttons: held, Mods: mods})
		} else {
			dst = append(dst, Event{Kind: EventMouseMotion, X: x, Y: y, DX: dx, DY: dy})
		}
	}

	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustReleased(b) {
			dst = append(dst, Event{Kind: EventMouseRelease, X: x, Y: y, Button: MouseButton(b), Mods: mods})
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		dst = append(dst, Event{Kind: EventKeyPress, Key: Key(k), Mods: mods})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		dst = append(dst, Event{Kind: EventKeyRelease, Key: Key(k), Mods: mods})
	}
	return dst
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

var whiteImage *ebiten.Image

// whiteSubImage returns a lazily-initialized 1x1 white region inside a 3x3
// image, so that sampling at its edge stays white.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// ebitenRasterizer draws onto an ebiten.Image with untextured triangles.
// Vertex colors are straight alpha.
type ebitenRasterizer struct {
	dst   *ebiten.Image
	blend ebiten.Blend

	vs   []ebiten.Vertex
	is   []uint16
	path *vector.Path
}

var _ Rasterizer = (*ebitenRasterizer)(nil)

func (r *ebitenRasterizer) reset(dst *ebiten.Image, blend ebiten.Blend) {
	r.dst = dst
	r.blend = blend
}

func (r *ebitenRasterizer) drawTriangles(c Color) {
	if len(r.is) == 0 {
		return
	}
	cr, cg, cb, ca := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = cr
		r.vs[i].ColorG = cg
		r.vs[i].ColorB = cb
		r.vs[i].ColorA = ca
	}
	r.dst.DrawTriangles(r.vs, r.is, whiteSubImage(), &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		Blend:          r.blend,
		AntiAlias:      true,
	})
}

func (r *ebitenRasterizer) Clear(c Color) {
	r.dst.Fill(c.toNRGBA())
}

func (r *ebitenRasterizer) FillTriangleFan(vs []Point, c Color) {
	if len(vs) < 3 {
		return
	}
	// Indices are uint16; long fans are drawn in pieces sharing the pivot.
	const maxFan = math.MaxUint16
	pivot := ebiten.Vertex{DstX: float32(vs[0].X), DstY: float32(vs[0].Y)}
	for start := 1; start+1 < len(vs); start += maxFan - 2 {
		end := min(start+maxFan-1, len(vs))
		r.vs = append(r.vs[:0], pivot)
		r.is = r.is[:0]
		for _, p := range vs[start:end] {
			r.vs = append(r.vs, ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y)})
		}
		for i := 1; i+1 < len(r.vs); i++ {
			r.is = append(r.is, 0, uint16(i), uint16(i+1))
		}
		r.drawTriangles(c)
	}
}

func (r *ebitenRasterizer) stroke(vs []Point, closed bool, c Color, width float64) {
	if len(vs) < 2 {
		return
	}
	r.path = &vector.Path{}
	r.path.MoveTo(float32(vs[0].X), float32(vs[0].Y))
	for _, p := range vs[1:] {
		r.path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		r.path.Close()
	}
	r.vs, r.is = r.path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		LineCap:    vector.LineCapButt,
		MiterLimit: 10,
	})
	r.drawTriangles(c)
}

func (r *ebitenRasterizer) LineLoop(vs []Point, c Color, width float64) {
	r.stroke(vs, true, c, width)
}

func (r *ebitenRasterizer) LineStrip(vs []Point, c Color, width float64) {
	r.stroke(vs, false, c, width)
}

func (r *ebitenRasterizer) Line(a, b Point, c Color, width float64) {
	r.stroke([]Point{a, b}, false, c, width)
}

func (r *ebitenRasterizer) DrawPoint(p Point, c Color) {
	r.FillRect(Rect{X: p.X, Y: p.Y, Width: 1, Height: 1}, c)
}

func (r *ebitenRasterizer) FillRect(rect Rect, c Color) {
	corners := rect.Corners()
	r.FillTriangleFan(corners[:], c)
}

// Text draws s with the default font, top-left at p. Labels are skipped when
// no font could be loaded.
func (r *ebitenRasterizer) Text(s string, p Point, c Color) {
	f := DefaultFont()
	if s == "" || f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(c.toNRGBA())
	op.Blend = r.blend
	op.LineSpacing = f.lh
	text.Draw(r.dst, s, f.face, op)
}
