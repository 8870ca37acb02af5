package core

// Region is the half-open rectangle [RowMin, RowMax) x [ColMin, ColMax).
type Region struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// NewRegion normalizes two opposite corners into a region. The larger
// coordinate on each axis is exclusive.
func NewRegion(a, b Coord) Region {
	return Region{
		RowMin: min(a.Row, b.Row),
		RowMax: max(a.Row, b.Row),
		ColMin: min(a.Col, b.Col),
		ColMax: max(a.Col, b.Col),
	}
}

// Span returns the region covering both corner cells inclusively, which is
// what a drag from one cell to another selects.
func Span(a, b Coord) Region {
	r := NewRegion(a, b)
	r.RowMax++
	r.ColMax++
	return r
}

// Rows returns the region height.
func (r Region) Rows() int { return r.RowMax - r.RowMin }

// Cols returns the region width.
func (r Region) Cols() int { return r.ColMax - r.ColMin }

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool { return r.Rows() <= 0 || r.Cols() <= 0 }

// Origin returns the top-left cell.
func (r Region) Origin() Coord { return Coord{Row: r.RowMin, Col: r.ColMin} }

// Contains reports whether c lies inside the region.
func (r Region) Contains(c Coord) bool {
	return c.Row >= r.RowMin && c.Row < r.RowMax && c.Col >= r.ColMin && c.Col < r.ColMax
}

// Within reports whether the region fits inside a size x size grid.
func (r Region) Within(size int) bool {
	return r.RowMin >= 0 && r.ColMin >= 0 && r.RowMax <= size && r.ColMax <= size
}

// At returns the region of the same shape with its origin moved to o.
func (r Region) At(o Coord) Region {
	return Region{RowMin: o.Row, RowMax: o.Row + r.Rows(), ColMin: o.Col, ColMax: o.Col + r.Cols()}
}
