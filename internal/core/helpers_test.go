package core

import (
	"slices"
	"testing"
)

func mustGrid(t *testing.T, size int) *Grid {
	t.Helper()
	g, err := New(size)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return g
}

func setAlive(t *testing.T, g *Grid, cells ...Coord) {
	t.Helper()
	for _, c := range cells {
		if err := g.Set(c.Row, c.Col, Alive); err != nil {
			t.Fatalf("Set(%d, %d): %v", c.Row, c.Col, err)
		}
	}
	Wrap(g)
}

func expectLive(t *testing.T, g *Grid, want ...Coord) {
	t.Helper()
	got := g.LiveCells()
	slices.SortFunc(want, func(a, b Coord) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	if !slices.Equal(got, want) {
		t.Fatalf("live cells = %v, want %v", got, want)
	}
}

func wrapConsistent(g *Grid) bool {
	n := g.Size()
	for j := 0; j < n; j++ {
		if g.IsAlive(0, j) != g.IsAlive(n-2, j) || g.IsAlive(n-1, j) != g.IsAlive(1, j) {
			return false
		}
		if g.IsAlive(j, 0) != g.IsAlive(j, n-2) || g.IsAlive(j, n-1) != g.IsAlive(j, 1) {
			return false
		}
	}
	return true
}
