package core

// Rule applies B3/S23: a live cell survives with two or three neighbours and a
// dead cell is born with exactly three.
func Rule(alive bool, neighbors int) Cell {
	if neighbors == 3 || (alive && neighbors == 2) {
		return Alive
	}
	return Dead
}

// Engine advances grids one generation at a time. It owns the write buffer
// used during a step and reuses it across calls while the grid size is stable.
// An Engine is not safe for concurrent use.
type Engine struct {
	next       []Cell
	generation int
}

// NewEngine returns an engine with no buffer allocated yet.
func NewEngine() *Engine { return &Engine{} }

// Generation reports how many generations this engine has produced.
func (e *Engine) Generation() int { return e.generation }

// Reset zeroes the generation counter.
func (e *Engine) Reset() { e.generation = 0 }

// Advance computes the next generation of g. Every interior cell reads the
// current generation only; results go to the engine buffer, which is swapped
// in once the pass is complete. The mirror layer is refreshed before counting
// and again after the swap.
func (e *Engine) Advance(g *Grid) {
	n := g.n
	if n < MinSize {
		return
	}
	Wrap(g)
	if len(e.next) != len(g.cells) {
		e.next = make([]Cell, len(g.cells))
	}
	cur := g.cells
	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			idx := row*n + col
			e.next[idx] = Rule(cur[idx] == Alive, g.neighbors(row, col))
		}
	}
	g.cells, e.next = e.next, g.cells
	Wrap(g)
	e.generation++
}

// Advance steps g once with a throwaway engine.
func Advance(g *Grid) {
	NewEngine().Advance(g)
}
