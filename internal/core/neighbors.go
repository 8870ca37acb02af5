package core

// CountNeighbors returns the number of live cells in the Moore neighbourhood
// of the interior cell (row, col), the cell itself excluded. The mirror layer
// must be current, which Advance guarantees before it counts.
func CountNeighbors(g *Grid, row, col int) (int, error) {
	if row < 1 || row > g.n-2 || col < 1 || col > g.n-2 {
		return 0, cellRangeError("count neighbors", row, col, g.n)
	}
	return g.neighbors(row, col), nil
}

func (g *Grid) neighbors(row, col int) int {
	n := g.n
	up := (row-1)*n + col
	mid := row*n + col
	down := (row+1)*n + col
	c := g.cells
	return int(c[up-1]+c[up]+c[up+1]) +
		int(c[mid-1]+c[mid+1]) +
		int(c[down-1]+c[down]+c[down+1])
}
