package render

import (
	"image"
	"image/color"

	"torus-life/internal/core"

	"github.com/anthonynsimon/bild/transform"
)

// Palette maps cell states to colors. The mirror colors are used for the wrap
// border so it can be told apart from the interior.
type Palette struct {
	Alive       color.RGBA
	Dead        color.RGBA
	MirrorAlive color.RGBA
	MirrorDead  color.RGBA
}

// DefaultPalette draws live cells lawn green on black and does not
// distinguish the border.
func DefaultPalette() Palette {
	alive := color.RGBA{R: 127, G: 255, B: 0, A: 255}
	dead := color.RGBA{A: 255}
	return Palette{Alive: alive, Dead: dead, MirrorAlive: alive, MirrorDead: dead}
}

// Highlighted returns p with the border drawn dimmed.
func (p Palette) Highlighted() Palette {
	p.MirrorAlive = color.RGBA{R: p.Alive.R / 2, G: p.Alive.G / 2, B: p.Alive.B / 2, A: 255}
	p.MirrorDead = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	return p
}

// fillGridRGBA writes one RGBA pixel per cell of g into buf.
func fillGridRGBA(buf []byte, g *core.Grid, p Palette) {
	n := g.Size()
	cells := g.Cells()
	for i, c := range cells {
		row, col := i/n, i%n
		mirror := row == 0 || col == 0 || row == n-1 || col == n-1
		var px color.RGBA
		switch {
		case c != core.Dead && mirror:
			px = p.MirrorAlive
		case c != core.Dead:
			px = p.Alive
		case mirror:
			px = p.MirrorDead
		default:
			px = p.Dead
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// Frame renders g at one pixel per cell.
func Frame(g *core.Grid, p Palette) *image.RGBA {
	n := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	fillGridRGBA(img.Pix, g, p)
	return img
}

// Scaled renders g with each cell drawn as a cellSize square.
func Scaled(g *core.Grid, cellSize int, p Palette) *image.RGBA {
	img := Frame(g, p)
	if cellSize <= 1 {
		return img
	}
	side := g.Size() * cellSize
	return transform.Resize(img, side, side, transform.NearestNeighbor)
}
