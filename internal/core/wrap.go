package core

// Wrap refreshes the mirror layer so the interior behaves as a torus: column 0
// copies column n-2, column n-1 copies column 1, then row 0 copies row n-2 and
// row n-1 copies row 1. Rows are copied after columns so the corners pick up
// the diagonally opposite interior cell.
func Wrap(g *Grid) {
	n := g.n
	if n < MinSize {
		return
	}
	c := g.cells
	for row := 0; row < n; row++ {
		base := row * n
		c[base] = c[base+n-2]
		c[base+n-1] = c[base+1]
	}
	copy(c[:n], c[(n-2)*n:(n-1)*n])
	copy(c[(n-1)*n:], c[n:2*n])
}
