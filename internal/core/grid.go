package core

import (
	"fmt"
	"strings"

	pcore "torus-life/pkg/core"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// DefaultSize is the edge length of the reference grid, mirror layer included.
const DefaultSize = 150

// MinSize is the smallest grid that still has one interior cell.
const MinSize = 3

// Coord addresses a grid cell by row and column.
type Coord struct {
	Row, Col int
}

// Grid is a square toroidal Life board stored in row-major order.
//
// Rows and columns 0 and Size()-1 form the mirror layer: they hold copies of
// the opposite interior edge so neighbour counts near the boundary need no
// special cases. The simulation itself lives in [1, Size()-2].
type Grid struct {
	n     int
	cells []Cell
}

// New allocates a size x size grid with every cell dead.
func New(size int) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("new grid %d: %w", size, ErrInvalidSize)
	}
	return &Grid{n: size, cells: make([]Cell, size*size)}, nil
}

// Size returns the edge length, mirror layer included.
func (g *Grid) Size() int { return g.n }

// Cells exposes the backing slice for renderers. The slice is only valid until
// the next generation is produced, because stepping swaps buffers.
func (g *Grid) Cells() []Cell { return g.cells }

// Interior returns the region covered by live simulation cells.
func (g *Grid) Interior() Region {
	return Region{RowMin: 1, RowMax: g.n - 1, ColMin: 1, ColMax: g.n - 1}
}

// InBounds reports whether (row, col) addresses a stored cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// IsMirror reports whether (row, col) belongs to the wrap-mirror layer.
func (g *Grid) IsMirror(row, col int) bool {
	return g.InBounds(row, col) && (row == 0 || col == 0 || row == g.n-1 || col == g.n-1)
}

// Canonical maps a mirror coordinate to the interior cell it copies. Interior
// coordinates are returned unchanged.
func (g *Grid) Canonical(row, col int) (int, int) {
	return g.canonicalIndex(row), g.canonicalIndex(col)
}

func (g *Grid) canonicalIndex(i int) int {
	switch i {
	case 0:
		return g.n - 2
	case g.n - 1:
		return 1
	}
	return i
}

func (g *Grid) index(row, col int) int { return row*g.n + col }

// Get returns the state stored at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Dead, cellRangeError("get", row, col, g.n)
	}
	return g.cells[g.index(row, col)], nil
}

// IsAlive is Get for callers that treat out-of-range cells as dead.
func (g *Grid) IsAlive(row, col int) bool {
	return g.InBounds(row, col) && g.cells[g.index(row, col)] == Alive
}

// Set stores state at exactly (row, col). Writing a mirror cell is allowed but
// the value only lasts until the next wrap refresh.
func (g *Grid) Set(row, col int, state Cell) error {
	if !g.InBounds(row, col) {
		return cellRangeError("set", row, col, g.n)
	}
	if state != Dead {
		state = Alive
	}
	g.cells[g.index(row, col)] = state
	return nil
}

// Toggle flips the canonical cell behind (row, col) and refreshes the mirror
// layer, so a toggle on the border edits the interior cell it shows.
func (g *Grid) Toggle(row, col int) error {
	if !g.InBounds(row, col) {
		return cellRangeError("toggle", row, col, g.n)
	}
	r, c := g.Canonical(row, col)
	idx := g.index(r, c)
	g.cells[idx] ^= Alive
	Wrap(g)
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Randomize sets liveCount random interior cells alive. Positions may repeat,
// so the resulting population can be smaller than liveCount.
func (g *Grid) Randomize(rng *pcore.RNG, liveCount int) {
	if g.n < MinSize {
		return
	}
	for i := 0; i < liveCount; i++ {
		row := rng.Between(1, g.n-1)
		col := rng.Between(1, g.n-1)
		g.cells[g.index(row, col)] = Alive
	}
	Wrap(g)
}

// Population counts live interior cells.
func (g *Grid) Population() int {
	count := 0
	for row := 1; row < g.n-1; row++ {
		for _, c := range g.cells[g.index(row, 1):g.index(row, g.n-1)] {
			if c == Alive {
				count++
			}
		}
	}
	return count
}

// Replace overwrites every cell, mirror layer included.
func (g *Grid) Replace(cells []Cell) error {
	if len(cells) != len(g.cells) {
		return fmt.Errorf("replace %d cells into %dx%d grid: %w", len(cells), g.n, g.n, ErrSizeMismatch)
	}
	copy(g.cells, cells)
	return nil
}

// CopyFrom overwrites g with the contents of src.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.n != g.n {
		return fmt.Errorf("copy %dx%d into %dx%d: %w", src.n, src.n, g.n, g.n, ErrSizeMismatch)
	}
	copy(g.cells, src.cells)
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, cells: append([]Cell(nil), g.cells...)}
}

// Equal reports whether both grids store identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// LiveCells lists live interior cells in row-major order.
func (g *Grid) LiveCells() []Coord {
	var out []Coord
	for row := 1; row < g.n-1; row++ {
		for col := 1; col < g.n-1; col++ {
			if g.cells[g.index(row, col)] == Alive {
				out = append(out, Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

// String renders the interior with '*' for live cells and '.' for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.n - 1) * (g.n - 2))
	for row := 1; row < g.n-1; row++ {
		for col := 1; col < g.n-1; col++ {
			if g.cells[g.index(row, col)] == Alive {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
