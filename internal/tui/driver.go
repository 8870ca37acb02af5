// Package tui drives a session in a terminal. Each cell is drawn two columns
// wide so the board keeps its square aspect; the view scrolls to follow the
// keyboard cursor when the terminal is smaller than the grid.
package tui

import (
	"context"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/session"

	"github.com/gdamore/tcell/v2"
)

const (
	statusLines   = 2
	frameInterval = 16 * time.Millisecond
)

var (
	styleDead        = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
	styleAlive       = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(127, 255, 0))
	styleMirrorAlive = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(60, 120, 0))
	styleMirrorDead  = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 24, 32))
	styleStatus      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	selectionColor   = tcell.NewRGBColor(90, 70, 10)
)

// Driver owns the terminal presentation of one session.
type Driver struct {
	screen tcell.Screen
	sess   *session.Session
	step   *core.FixedStep

	prompt *session.Prompt
	cursor core.Coord
	mark   *core.Coord
	offRow int
	offCol int

	mouseDown  bool
	mouseStart core.Coord
	mouseEnd   core.Coord
}

// New creates a driver drawing sess onto screen, stepping tps times a second.
func New(screen tcell.Screen, sess *session.Session, tps int) *Driver {
	n := sess.Grid().Size()
	return &Driver{
		screen: screen,
		sess:   sess,
		step:   core.NewFixedStep(tps),
		cursor: core.Coord{Row: n / 2, Col: n / 2},
	}
}

// Cursor returns the cell under the keyboard cursor.
func (d *Driver) Cursor() core.Coord { return d.cursor }

// Prompt returns the filename prompt in progress, or nil.
func (d *Driver) Prompt() *session.Prompt { return d.prompt }

// Run processes terminal events and advances the session until the user
// quits or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
			d.Draw()
		case <-ticker.C:
			if d.prompt == nil && d.step.ShouldStep() {
				d.sess.Tick()
			}
			d.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if d.prompt != nil {
			d.handlePromptKey(ev)
			return true
		}
		return d.handleKey(ev)
	case *tcell.EventMouse:
		if d.prompt == nil {
			d.handleMouse(ev)
		}
	case *tcell.EventResize:
		d.screen.Sync()
		d.follow()
	}
	return true
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		d.moveCursor(-1, 0)
	case tcell.KeyDown:
		d.moveCursor(1, 0)
	case tcell.KeyLeft:
		d.moveCursor(0, -1)
	case tcell.KeyRight:
		d.moveCursor(0, 1)
	case tcell.KeyEnter:
		_ = d.sess.ToggleCell(d.cursor)
	case tcell.KeyRune:
		return d.handleRune(ev.Rune())
	}
	return true
}

func (d *Driver) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 'p', 'P', ' ':
		d.sess.TogglePause()
		d.step.Reset()
	case 'n', 'N':
		d.sess.StepOnce()
	case 'r', 'R':
		d.sess.Randomize()
	case 'c', 'C':
		d.sess.Clear()
	case 't', 'T':
		_ = d.sess.ToggleCell(d.cursor)
	case 's', 'S':
		d.sess.SetPaused(true)
		d.prompt = session.NewPrompt(session.ActionSave)
	case 'l', 'L':
		d.sess.SetPaused(true)
		d.prompt = session.NewPrompt(session.ActionLoad)
	case 'v', 'V':
		d.markRegion()
	default:
		if r >= '1' && r <= '9' {
			names := session.PatternKeys()
			if i := int(r - '1'); i < len(names) {
				_ = d.sess.Stamp(names[i], d.cursor)
			}
		}
	}
	return true
}

// markRegion starts a selection at the cursor, or finishes it and asks for a
// filename.
func (d *Driver) markRegion() {
	if d.mark == nil {
		at := d.cursor
		d.mark = &at
		return
	}
	region := core.Span(*d.mark, d.cursor)
	d.mark = nil
	d.sess.SetPaused(true)
	d.prompt = session.NewRegionPrompt(region)
}

func (d *Driver) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		d.prompt = nil
	case tcell.KeyEnter:
		// Failures are logged and shown as the session status.
		_ = d.sess.Submit(d.prompt)
		d.prompt = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		d.prompt.Backspace()
	case tcell.KeyRune:
		d.prompt.Insert(ev.Rune())
	}
}

// handleMouse toggles on click and offers a region save on drag.
func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	at, onGrid := d.cellAt(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !d.mouseDown:
		if !onGrid {
			return
		}
		d.mouseDown = true
		d.mouseStart, d.mouseEnd = at, at
	case pressed:
		if onGrid {
			d.mouseEnd = at
		}
	case d.mouseDown:
		d.mouseDown = false
		if onGrid {
			d.mouseEnd = at
		}
		if d.mouseStart == d.mouseEnd {
			_ = d.sess.ToggleCell(d.mouseStart)
			return
		}
		d.sess.SetPaused(true)
		d.prompt = session.NewRegionPrompt(core.Span(d.mouseStart, d.mouseEnd))
	}
}

// cellAt maps a terminal position to a grid cell.
func (d *Driver) cellAt(x, y int) (core.Coord, bool) {
	rows, _ := d.viewSize()
	if x < 0 || y < 0 || y >= rows {
		return core.Coord{}, false
	}
	c := core.Coord{Row: d.offRow + y, Col: d.offCol + x/2}
	return c, d.sess.Grid().InBounds(c.Row, c.Col)
}

func (d *Driver) moveCursor(dr, dc int) {
	n := d.sess.Grid().Size()
	d.cursor.Row = min(max(d.cursor.Row+dr, 0), n-1)
	d.cursor.Col = min(max(d.cursor.Col+dc, 0), n-1)
	d.follow()
}

// follow scrolls the view so the cursor stays visible.
func (d *Driver) follow() {
	rows, cols := d.viewSize()
	if d.cursor.Row < d.offRow {
		d.offRow = d.cursor.Row
	}
	if d.cursor.Row >= d.offRow+rows {
		d.offRow = d.cursor.Row - rows + 1
	}
	if d.cursor.Col < d.offCol {
		d.offCol = d.cursor.Col
	}
	if d.cursor.Col >= d.offCol+cols {
		d.offCol = d.cursor.Col - cols + 1
	}
}

func (d *Driver) viewSize() (rows, cols int) {
	w, h := d.screen.Size()
	return max(h-statusLines, 1), max(w/2, 1)
}
