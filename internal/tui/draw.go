package tui

import (
	"strings"

	"torus-life/internal/core"
	"torus-life/internal/session"
	"torus-life/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// Draw renders the visible part of the grid and the status lines.
func (d *Driver) Draw() {
	d.screen.Clear()
	g := d.sess.Grid()
	n := g.Size()
	rows, cols := d.viewSize()
	selection, selecting := d.selection()

	for y := 0; y < rows && d.offRow+y < n; y++ {
		for x := 0; x < cols && d.offCol+x < n; x++ {
			at := core.Coord{Row: d.offRow + y, Col: d.offCol + x}
			ch, style := cellGlyph(g, at)
			if selecting && selection.Contains(at) {
				style = style.Background(selectionColor)
			}
			if at == d.cursor {
				style = style.Reverse(true)
			}
			d.screen.SetContent(2*x, y, ch, nil, style)
			d.screen.SetContent(2*x+1, y, ch, nil, style)
		}
	}

	prompt := ""
	if d.prompt != nil {
		prompt = d.prompt.String()
	}
	lines := ui.StatusLines(d.sess.Parameters(), d.sess.Status(), prompt, session.Help())
	_, h := d.screen.Size()
	// The first line carries the counters and the last command status.
	top := lines[0]
	if lines[1] != "" {
		top += "  | " + lines[1]
	}
	d.drawText(0, h-2, top)
	d.drawText(0, h-1, strings.Join(lines[2:], "  "))
	d.screen.Show()
}

func cellGlyph(g *core.Grid, at core.Coord) (rune, tcell.Style) {
	mirror := g.IsMirror(at.Row, at.Col)
	switch alive := g.IsAlive(at.Row, at.Col); {
	case alive && mirror:
		return '█', styleMirrorAlive
	case alive:
		return '█', styleAlive
	case mirror:
		return ' ', styleMirrorDead
	default:
		return ' ', styleDead
	}
}

func (d *Driver) selection() (core.Region, bool) {
	switch {
	case d.mouseDown:
		return core.Span(d.mouseStart, d.mouseEnd), true
	case d.mark != nil:
		return core.Span(*d.mark, d.cursor), true
	case d.prompt != nil && d.prompt.Action == session.ActionSaveRegion:
		return d.prompt.Region, true
	}
	return core.Region{}, false
}

func (d *Driver) drawText(x, y int, text string) {
	w, _ := d.screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		d.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}
