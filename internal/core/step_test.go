package core

import (
	"testing"

	pcore "torus-life/pkg/core"
)

// referenceStep advances the interior as a torus using modular arithmetic,
// without the mirror layer.
func referenceStep(g *Grid) *Grid {
	n := g.Size()
	m := n - 2
	out := mustGridNoT(n)
	for row := 1; row <= m; row++ {
		for col := 1; col <= m; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					r := (row-1+dr+m)%m + 1
					c := (col-1+dc+m)%m + 1
					if g.IsAlive(r, c) {
						neighbors++
					}
				}
			}
			out.cells[out.index(row, col)] = Rule(g.IsAlive(row, col), neighbors)
		}
	}
	Wrap(out)
	return out
}

func mustGridNoT(n int) *Grid {
	g, err := New(n)
	if err != nil {
		panic(err)
	}
	return g
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Rule(true, n) == Alive; got != wantAlive {
			t.Fatalf("live cell with %d neighbours: alive=%v want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Rule(false, n) == Alive; got != wantBorn {
			t.Fatalf("dead cell with %d neighbours: alive=%v want %v", n, got, wantBorn)
		}
	}
}

func TestAdvanceMatchesTorusReference(t *testing.T) {
	g := mustGrid(t, 40)
	g.Randomize(pcore.NewRNG(11), 600)
	engine := NewEngine()
	for gen := 0; gen < 25; gen++ {
		want := referenceStep(g)
		engine.Advance(g)
		if !g.Equal(want) {
			t.Fatalf("generation %d diverged from torus reference", gen+1)
		}
		if !wrapConsistent(g) {
			t.Fatalf("generation %d left the mirror layer stale", gen+1)
		}
	}
	if engine.Generation() != 25 {
		t.Fatalf("generation counter = %d, want 25", engine.Generation())
	}
}

func TestAdvanceAppliesRulesPerCell(t *testing.T) {
	g := mustGrid(t, 30)
	g.Randomize(pcore.NewRNG(21), 300)
	before := g.Clone()
	Advance(g)
	for row := 1; row < 29; row++ {
		for col := 1; col < 29; col++ {
			n, err := CountNeighbors(before, row, col)
			if err != nil {
				t.Fatal(err)
			}
			alive := before.IsAlive(row, col)
			want := (alive && (n == 2 || n == 3)) || (!alive && n == 3)
			if g.IsAlive(row, col) != want {
				t.Fatalf("cell (%d,%d) alive=%v neighbours=%d: got %v", row, col, alive, n, !want)
			}
		}
	}
}

func TestClearThenAdvanceStaysEmpty(t *testing.T) {
	g := mustGrid(t, DefaultSize)
	g.Randomize(pcore.NewRNG(1), 5000)
	g.Clear()
	Advance(g)
	for i, c := range g.Cells() {
		if c != Dead {
			t.Fatalf("cell %d came alive from nothing", i)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, DefaultSize)
	setAlive(t, g, Coord{1, 4}, Coord{1, 5}, Coord{1, 6})
	engine := NewEngine()

	engine.Advance(g)
	// Row 0 is the mirror of row n-2, so the vertical phase straddles the edge.
	for _, c := range []Coord{{0, 5}, {1, 5}, {2, 5}} {
		if !g.IsAlive(c.Row, c.Col) {
			t.Fatalf("after first step cell %v should be alive", c)
		}
	}
	expectLive(t, g, Coord{1, 5}, Coord{2, 5}, Coord{DefaultSize - 2, 5})

	engine.Advance(g)
	expectLive(t, g, Coord{1, 4}, Coord{1, 5}, Coord{1, 6})
}

func TestGliderTranslates(t *testing.T) {
	g := mustGrid(t, 20)
	glider, ok := LookupPattern("glider")
	if !ok {
		t.Fatal("glider pattern not registered")
	}
	origin := Coord{Row: 5, Col: 5}
	if err := Stamp(g, glider, origin); err != nil {
		t.Fatal(err)
	}
	engine := NewEngine()
	for i := 0; i < 4; i++ {
		engine.Advance(g)
	}
	want := make([]Coord, 0, len(glider.Cells))
	for _, c := range glider.Cells {
		want = append(want, Coord{Row: origin.Row + c.Row + 1, Col: origin.Col + c.Col + 1})
	}
	expectLive(t, g, want...)
}

func TestGliderCrossesSeam(t *testing.T) {
	g := mustGrid(t, 10)
	glider, _ := LookupPattern("glider")
	if err := Stamp(g, glider, Coord{Row: 1, Col: 1}); err != nil {
		t.Fatal(err)
	}
	start := g.Clone()
	engine := NewEngine()
	// An 8x8 torus brings the glider home after 4 * 8 generations.
	for i := 0; i < 32; i++ {
		engine.Advance(g)
		if g.Population() != 5 {
			t.Fatalf("glider lost cells at generation %d: population %d", i+1, g.Population())
		}
	}
	if !g.Equal(start) {
		t.Fatal("glider should return to its starting position on the torus")
	}
}

func TestEngineReusesBufferAcrossSizes(t *testing.T) {
	engine := NewEngine()
	small := mustGrid(t, 8)
	large := mustGrid(t, 16)
	setAlive(t, small, Coord{2, 2}, Coord{2, 3}, Coord{2, 4})
	setAlive(t, large, Coord{5, 5}, Coord{5, 6}, Coord{5, 7})
	engine.Advance(small)
	engine.Advance(large)
	expectLive(t, small, Coord{1, 3}, Coord{2, 3}, Coord{3, 3})
	expectLive(t, large, Coord{4, 6}, Coord{5, 6}, Coord{6, 6})
}
