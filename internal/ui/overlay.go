//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay outlines the region being dragged over the grid.
type Overlay struct {
	scale     int
	active    bool
	selection core.Region
}

// NewOverlay constructs an overlay for cells drawn scale pixels wide.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale}
}

// SetSelection shows r until ClearSelection is called.
func (o *Overlay) SetSelection(r core.Region) {
	o.selection = r
	o.active = true
}

// ClearSelection hides the outline.
func (o *Overlay) ClearSelection() { o.active = false }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.active || o.selection.Empty() {
		return
	}
	rect := SelectionRect(o.selection, o.scale)
	vector.StrokeRect(screen,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		2, color.RGBA{R: 255, G: 200, B: 40, A: 255}, false)
}
