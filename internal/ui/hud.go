//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	hudLines   = 4
	hudPadding = 6
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
	Status() string
}

// HUD renders the status panel below the grid.
type HUD struct {
	width int
	panel *ebiten.Image
	lines []string
	help  string
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int, help string) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, help: help}
}

// Height is the panel height in pixels.
func (h *HUD) Height() int { return hudLines*lineHeight + 2*hudPadding }

// Update refreshes the text from the session and the active prompt, if any.
func (h *HUD) Update(p parameterProvider, prompt string) {
	h.lines = StatusLines(p.Parameters(), p.Status(), prompt, h.help)
}

// Draw paints the panel with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h.width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width {
		h.panel = ebiten.NewImage(h.width, h.Height())
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		if i >= hudLines {
			break
		}
		text.Draw(h.panel, line, face, hudPadding, hudPadding+(i+1)*lineHeight-4, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
