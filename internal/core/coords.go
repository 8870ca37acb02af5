package core

import "fmt"

// DefaultCellSize is the rendered edge of one cell in pixels.
const DefaultCellSize = 10

// Mapper converts screen pixels to grid cells for a grid drawn at a fixed
// cell size with its top-left corner at the screen origin.
type Mapper struct {
	CellSize int
	GridSize int
}

// NewMapper returns a Mapper, rejecting non-positive sizes.
func NewMapper(cellSize, gridSize int) (Mapper, error) {
	if cellSize <= 0 || gridSize <= 0 {
		return Mapper{}, fmt.Errorf("mapper cell=%d grid=%d: %w", cellSize, gridSize, ErrInvalidSize)
	}
	return Mapper{CellSize: cellSize, GridSize: gridSize}, nil
}

// Extent returns the rendered grid edge in pixels.
func (m Mapper) Extent() int { return m.CellSize * m.GridSize }

// CellAt maps the pixel (x, y) to the cell under it. x selects the column and
// y the row. Pixels outside the rendered grid are rejected.
func (m Mapper) CellAt(x, y int) (Coord, error) {
	if m.CellSize <= 0 {
		return Coord{}, fmt.Errorf("map pixel: %w", ErrInvalidSize)
	}
	limit := m.Extent()
	if x < 0 || y < 0 || x >= limit || y >= limit {
		return Coord{}, &RangeError{Op: "map pixel", Unit: "pixel", Row: y, Col: x, Limit: limit}
	}
	return Coord{Row: y / m.CellSize, Col: x / m.CellSize}, nil
}

// PixelOf returns the top-left pixel of cell c.
func (m Mapper) PixelOf(c Coord) (x, y int) {
	return c.Col * m.CellSize, c.Row * m.CellSize
}

// ToggleCell flips the cell under pixel (x, y) and returns its coordinate.
// The grid is left untouched when the pixel is rejected.
func (m Mapper) ToggleCell(g *Grid, x, y int) (Coord, error) {
	c, err := m.CellAt(x, y)
	if err != nil {
		return Coord{}, err
	}
	if err := g.Toggle(c.Row, c.Col); err != nil {
		return Coord{}, err
	}
	return c, nil
}
