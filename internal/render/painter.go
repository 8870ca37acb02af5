//go:build ebiten

package render

import (
	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads grid state into a texture and draws it scaled.
type GridPainter struct {
	img  *ebiten.Image
	buf  []byte
	size int
}

// NewGridPainter allocates a texture for a size x size grid.
func NewGridPainter(size int) *GridPainter {
	return &GridPainter{
		img:  ebiten.NewImage(size, size),
		buf:  make([]byte, size*size*4),
		size: size,
	}
}

// Blit draws g onto screen with each cell as a scale x scale square.
func (p *GridPainter) Blit(screen *ebiten.Image, g *core.Grid, palette Palette, scale int) {
	if g.Size() != p.size {
		*p = *NewGridPainter(g.Size())
	}
	if scale <= 0 {
		scale = 1
	}
	fillGridRGBA(p.buf, g, palette)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
