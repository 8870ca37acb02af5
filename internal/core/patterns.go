package core

import (
	"fmt"
	"slices"
)

// Pattern is a named set of live cells given as offsets from a top-left origin.
type Pattern struct {
	Name  string
	Cells []Coord
}

// Bounds returns the pattern height and width.
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern under its name, replacing any earlier entry.
func RegisterPattern(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stamp sets the pattern's cells alive with its top-left corner at origin.
// Every cell must land in the interior; otherwise nothing is written.
func Stamp(g *Grid, p Pattern, origin Coord) error {
	interior := g.Interior()
	for _, c := range p.Cells {
		at := Coord{Row: origin.Row + c.Row, Col: origin.Col + c.Col}
		if !interior.Contains(at) {
			return fmt.Errorf("stamp %s: %w", p.Name, cellRangeError("stamp", at.Row, at.Col, g.n))
		}
	}
	for _, c := range p.Cells {
		g.cells[g.index(origin.Row+c.Row, origin.Col+c.Col)] = Alive
	}
	Wrap(g)
	return nil
}

// StampCentered stamps p in the middle of the grid.
func StampCentered(g *Grid, p Pattern) error {
	rows, cols := p.Bounds()
	return Stamp(g, p, Coord{Row: (g.n - rows) / 2, Col: (g.n - cols) / 2})
}

func init() {
	RegisterPattern(Pattern{Name: "blinker", Cells: []Coord{{0, 0}, {0, 1}, {0, 2}}})
	RegisterPattern(Pattern{Name: "glider", Cells: []Coord{{0, 2}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}})
	RegisterPattern(Pattern{Name: "block", Cells: []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}})
	RegisterPattern(Pattern{Name: "beehive", Cells: []Coord{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2}}})
	RegisterPattern(Pattern{Name: "toad", Cells: []Coord{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}}})
	RegisterPattern(Pattern{Name: "beacon", Cells: []Coord{{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}}})
}
