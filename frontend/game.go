// Package frontend runs a script engine in an ebiten window with the debug
// overlay drawn on top.
package frontend

import (
	"image/color"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/debugui"
	"github.com/plus3/alscript/engine"
	"github.com/plus3/alscript/host"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// pixelsPerUnit scales the top-down view of the X/Z plane.
	pixelsPerUnit = 32
)

var (
	background   = color.RGBA{24, 26, 32, 255}
	gridColor    = color.RGBA{40, 44, 52, 255}
	bodyColor    = color.RGBA{120, 170, 255, 255}
	staticColor  = color.RGBA{150, 150, 160, 255}
	triggerColor = color.RGBA{255, 200, 90, 255}
	lightColor   = color.RGBA{255, 240, 150, 255}
	cameraColor  = color.RGBA{190, 120, 255, 255}
	inactive     = color.RGBA{70, 70, 70, 255}
)

// Game implements ebiten.Game. Each Update runs exactly one engine frame.
type Game struct {
	engine    *engine.Engine
	input     *Input
	overlay   *debugui.Overlay
	backend   *ebitenbackend.EbitenBackend
	dt        float32
	maxFrames uint64
}

// NewGame wires eng to in, which must also be the input source of eng's
// host. maxFrames of zero runs until the window closes.
func NewGame(eng *engine.Engine, in *Input, dt float32, maxFrames uint64) *Game {
	return &Game{
		engine:    eng,
		input:     in,
		overlay:   debugui.New(eng),
		dt:        dt,
		maxFrames: maxFrames,
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	g.backend = ebitenbackend.NewEbitenBackend()
	g.backend.CreateWindow(title, ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.maxFrames > 0 && g.engine.Frame() >= g.maxFrames {
		return ebiten.Termination
	}

	g.backend.BeginFrame()

	state := g.overlay.State()
	g.input.Block(state.WantCaptureMouse, state.WantCaptureKeyboard)
	g.engine.Once(g.dt)
	g.overlay.Render(g.dt)

	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float32(w)/2, float32(h)/2
	for x := cx; x < float32(w); x += pixelsPerUnit {
		vector.StrokeLine(screen, x, 0, x, float32(h), 1, gridColor, false)
		vector.StrokeLine(screen, 2*cx-x, 0, 2*cx-x, float32(h), 1, gridColor, false)
	}
	for y := cy; y < float32(h); y += pixelsPerUnit {
		vector.StrokeLine(screen, 0, y, float32(w), y, 1, gridColor, false)
		vector.StrokeLine(screen, 0, 2*cy-y, float32(w), 2*cy-y, 1, gridColor, false)
	}

	h2 := g.engine.Host()
	s := h2.Storage()
	for id := range s.Each(bridge.Transform) {
		pos := h2.TransformPosition(id)
		sx := cx + pos.X*pixelsPerUnit
		sy := cy + pos.Z*pixelsPerUnit

		if bc := host.Get[host.BoxCollider](s, id); bc != nil {
			bw, bh := bc.Size.X*pixelsPerUnit, bc.Size.Z*pixelsPerUnit
			x := sx + bc.Center.X*pixelsPerUnit - bw/2
			y := sy + bc.Center.Z*pixelsPerUnit - bh/2
			switch {
			case bc.IsTrigger:
				vector.StrokeRect(screen, x, y, bw, bh, 2, tint(s, id, triggerColor), false)
			case s.Has(id, bridge.Rigidbody) && !host.Get[host.Rigidbody](s, id).Kinematic:
				vector.DrawFilledRect(screen, x, y, bw, bh, tint(s, id, bodyColor), false)
			default:
				vector.DrawFilledRect(screen, x, y, bw, bh, tint(s, id, staticColor), false)
			}
			continue
		}

		switch {
		case s.Has(id, bridge.Light):
			vector.DrawFilledCircle(screen, sx, sy, 6, tint(s, id, lightColor), false)
		case s.Has(id, bridge.Camera):
			vector.DrawFilledCircle(screen, sx, sy, 4, tint(s, id, cameraColor), false)
		}
	}

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func tint(s *host.Storage, id bridge.EntityID, c color.RGBA) color.Color {
	if s.Active(id) {
		return c
	}
	return inactive
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
