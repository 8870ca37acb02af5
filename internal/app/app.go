//go:build ebiten

package app

import (
	"image"

	"torus-life/internal/render"
	"torus-life/internal/session"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var patternKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette
	scale   int

	prompt    *session.Prompt
	dragging  bool
	dragStart image.Point
}

// New constructs a Game around sess, drawing each cell scale pixels wide.
func New(sess *session.Session, scale int) *Game {
	size := sess.Grid().Size()
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(size),
		overlay: ui.NewOverlay(scale),
		hud:     ui.NewHUD(size*scale, session.Help()),
		palette: render.DefaultPalette(),
		scale:   scale,
	}
}

// WindowSize returns the window size that fits the grid and the HUD.
func (g *Game) WindowSize() (int, int) {
	extent := g.sess.Mapper().Extent()
	return extent, extent + g.hud.Height()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.prompt != nil {
		g.updatePrompt()
		g.hud.Update(g.sess, g.prompt.String())
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sess.SetPaused(true)
		g.prompt = session.NewPrompt(session.ActionSave)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.sess.SetPaused(true)
		g.prompt = session.NewPrompt(session.ActionLoad)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if g.palette == render.DefaultPalette() {
			g.palette = g.palette.Highlighted()
		} else {
			g.palette = render.DefaultPalette()
		}
	}
	g.updatePatterns()
	g.updateMouse()

	if g.prompt == nil {
		g.sess.Tick()
	}
	prompt := ""
	if g.prompt != nil {
		prompt = g.prompt.String()
	}
	g.hud.Update(g.sess, prompt)
	return nil
}

func (g *Game) updatePrompt() {
	for _, r := range ebiten.AppendInputChars(nil) {
		g.prompt.Insert(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.prompt.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.prompt = nil
		g.overlay.ClearSelection()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		// Failures are logged and shown as the session status.
		_ = g.sess.Submit(g.prompt)
		g.prompt = nil
		g.overlay.ClearSelection()
	}
}

func (g *Game) updatePatterns() {
	names := session.PatternKeys()
	x, y := ebiten.CursorPosition()
	at, err := g.sess.Mapper().CellAt(x, y)
	if err != nil {
		return
	}
	for i, key := range patternKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			_ = g.sess.Stamp(names[i], at)
		}
	}
}

// updateMouse toggles on click and offers a region save on drag.
func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if _, err := g.sess.Mapper().CellAt(x, y); err == nil {
			g.dragging = true
			g.dragStart = image.Pt(x, y)
		}
	}
	if !g.dragging {
		return
	}
	region, err := g.sess.SelectRegion(g.dragStart.X, g.dragStart.Y, x, y)
	if err == nil {
		g.overlay.SetSelection(region)
	}
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	g.dragging = false
	if err != nil {
		g.overlay.ClearSelection()
		return
	}
	if region.Rows() == 1 && region.Cols() == 1 {
		g.overlay.ClearSelection()
		_, _ = g.sess.ToggleAt(g.dragStart.X, g.dragStart.Y)
		return
	}
	g.sess.SetPaused(true)
	g.prompt = session.NewRegionPrompt(region)
}

// Draw renders the grid, the selection outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Grid(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sess.Mapper().Extent())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
