package gridfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"torus-life/internal/core"
	pcore "torus-life/pkg/core"
)

func newGrid(t *testing.T, size int) *core.Grid {
	t.Helper()
	g, err := core.New(size)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSaveFullLayout(t *testing.T) {
	g := newGrid(t, 3)
	if err := g.Set(1, 1, core.Alive); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := SaveFull(g, &buf); err != nil {
		t.Fatal(err)
	}
	want := "0 0 0\n0 1 0\n0 0 0\n"
	if buf.String() != want {
		t.Fatalf("SaveFull wrote %q, want %q", buf.String(), want)
	}
}

func TestFullRoundTrip(t *testing.T) {
	g := newGrid(t, core.DefaultSize)
	g.Randomize(pcore.NewRNG(9), 5000)
	core.Advance(g)

	var buf bytes.Buffer
	if err := SaveFull(g, &buf); err != nil {
		t.Fatal(err)
	}
	if got := len(strings.Fields(buf.String())); got != core.DefaultSize*core.DefaultSize {
		t.Fatalf("wrote %d tokens", got)
	}

	loaded := newGrid(t, core.DefaultSize)
	if err := LoadFull(bytes.NewReader(buf.Bytes()), loaded); err != nil {
		t.Fatal(err)
	}
	if !loaded.Equal(g) {
		t.Fatal("round trip changed the grid")
	}
}

func TestLoadFullIgnoresLineStructure(t *testing.T) {
	g := newGrid(t, 3)
	if err := LoadFull(strings.NewReader("0 0 0 0\t1\n\n0 0 0   0 "), g); err != nil {
		t.Fatal(err)
	}
	if !g.IsAlive(1, 1) || g.Population() != 1 {
		t.Fatal("tokens must be read regardless of line breaks")
	}
}

func TestLoadFullRejectsBadInputUnchanged(t *testing.T) {
	cases := map[string]string{
		"truncated":  "1 1 1 1",
		"bad token":  "0 0 0 0 2 0 0 0 0",
		"word":       "0 0 0 x 0 0 0 0 0",
		"trailing":   "0 0 0 0 0 0 0 0 0 1",
		"region":     "region 0 0 1 1 1",
		"empty file": "",
	}
	for name, input := range cases {
		g := newGrid(t, 3)
		if err := g.Set(1, 1, core.Alive); err != nil {
			t.Fatal(err)
		}
		before := g.Clone()
		err := LoadFull(strings.NewReader(input), g)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: error = %v, want ErrMalformed", name, err)
		}
		if !g.Equal(before) {
			t.Fatalf("%s: grid modified by failed load", name)
		}
	}

	var malformed *MalformedError
	err := LoadFull(strings.NewReader("0 0 0 0 7"), newGrid(t, 3))
	if !errors.As(err, &malformed) || malformed.Token != 5 {
		t.Fatalf("expected token 5 to be reported, got %v", err)
	}
}

func TestSavePartialNormalizesCorners(t *testing.T) {
	g := newGrid(t, 8)
	for _, c := range []core.Coord{{Row: 2, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 2}} {
		if err := g.Set(c.Row, c.Col, core.Alive); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := SavePartial(g, core.Coord{Row: 5, Col: 5}, core.Coord{Row: 2, Col: 2}, &buf); err != nil {
		t.Fatal(err)
	}
	want := "region 2 2 3 3\n0 1 0\n0 0 1\n1 0 0\n"
	if buf.String() != want {
		t.Fatalf("SavePartial wrote %q, want %q", buf.String(), want)
	}
}

func TestSaveRegionRejectsOutside(t *testing.T) {
	g := newGrid(t, 5)
	var buf bytes.Buffer
	err := SaveRegion(g, core.Region{RowMin: 2, RowMax: 7, ColMin: 0, ColMax: 2}, &buf)
	if !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
	err = SavePartial(g, core.Coord{Row: 1, Col: 1}, core.Coord{Row: 1, Col: 4}, &buf)
	if !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("empty region error = %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("rejected saves must not write anything")
	}
}

func TestPartialRoundTrip(t *testing.T) {
	src := newGrid(t, 20)
	glider, _ := core.LookupPattern("glider")
	if err := core.Stamp(src, glider, core.Coord{Row: 4, Col: 6}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	region := core.Span(core.Coord{Row: 4, Col: 6}, core.Coord{Row: 6, Col: 8})
	if err := SaveRegion(src, region, &buf); err != nil {
		t.Fatal(err)
	}

	// Saved origin.
	dst := newGrid(t, 20)
	got, err := LoadPartial(bytes.NewReader(buf.Bytes()), dst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != region || !dst.Equal(src) {
		t.Fatalf("restored region %+v does not match source", got)
	}

	// Explicit origin.
	moved := newGrid(t, 20)
	at := core.Coord{Row: 10, Col: 1}
	got, err = LoadPartial(bytes.NewReader(buf.Bytes()), moved, &at)
	if err != nil {
		t.Fatal(err)
	}
	if got.Origin() != at || moved.Population() != 5 {
		t.Fatalf("moved region %+v population %d", got, moved.Population())
	}
	for _, c := range glider.Cells {
		if !moved.IsAlive(at.Row+c.Row, at.Col+c.Col) {
			t.Fatalf("glider cell %v missing after move", c)
		}
	}
}

func TestLoadPartialRequiresHeader(t *testing.T) {
	g := newGrid(t, 6)
	_, err := LoadPartial(strings.NewReader("1 1 1 1"), g, nil)
	if !errors.Is(err, ErrMalformed) || !strings.Contains(err.Error(), "region header") {
		t.Fatalf("headerless partial load error = %v", err)
	}
	for _, input := range []string{"region 1 1", "region 1 1 x 2", "region 1 1 0 3", "region 1 1 2 2 1 1 1"} {
		if _, err := LoadPartial(strings.NewReader(input), g, nil); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%q: error = %v, want ErrMalformed", input, err)
		}
	}
	if g.Population() != 0 {
		t.Fatal("failed partial loads must not write cells")
	}
}

func TestLoadPartialRejectsPlacementOutside(t *testing.T) {
	g := newGrid(t, 6)
	at := core.Coord{Row: 4, Col: 4}
	_, err := LoadPartial(strings.NewReader("region 0 0 3 3 1 1 1 1 1 1 1 1 1"), g, &at)
	if !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
	if g.Population() != 0 {
		t.Fatal("out-of-range placement must not write cells")
	}
}

func TestLoadDetectsFlavour(t *testing.T) {
	g := newGrid(t, 3)
	r, err := Load(strings.NewReader("0 0 0 0 1 0 0 0 0"), g)
	if err != nil || r.Rows() != 3 || !g.IsAlive(1, 1) {
		t.Fatalf("full load: %+v %v", r, err)
	}
	g.Clear()
	r, err = Load(strings.NewReader("region 1 1 1 1\n1\n"), g)
	if err != nil || r.Origin() != (core.Coord{Row: 1, Col: 1}) || !g.IsAlive(1, 1) {
		t.Fatalf("region load: %+v %v", r, err)
	}
}

func TestLoadRejectsOversizedHeader(t *testing.T) {
	inputs := []string{
		"region 1 0 9223372036854775807 1\n1\n",
		"region 9223372036854775807 9223372036854775807 1 1\n1\n",
		"region 1 1 7 1\n1 1 1 1 1 1 1\n",
	}
	for _, input := range inputs {
		g := newGrid(t, 6)
		if _, err := LoadPartial(strings.NewReader(input), g, nil); !errors.Is(err, ErrMalformed) {
			t.Fatalf("LoadPartial(%q) error = %v, want ErrMalformed", input, err)
		}
		if _, err := Load(strings.NewReader(input), g); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Load(%q) error = %v, want ErrMalformed", input, err)
		}
		if g.Population() != 0 {
			t.Fatalf("%q: failed load wrote cells", input)
		}
	}
}

func TestLoadPartialRejectsHugeOrigin(t *testing.T) {
	g := newGrid(t, 6)
	for _, at := range []core.Coord{
		{Row: int(^uint(0) >> 1), Col: 1},
		{Row: 1, Col: -1},
		{Row: 5, Col: 5},
	} {
		_, err := LoadPartial(strings.NewReader("region 0 0 2 2\n1 1\n1 1\n"), g, &at)
		if !errors.Is(err, core.ErrOutOfRange) {
			t.Fatalf("origin %v: error = %v, want ErrOutOfRange", at, err)
		}
	}
	if g.Population() != 0 {
		t.Fatal("rejected placements must not write cells")
	}
}

func TestLoadFullRedrawsBorder(t *testing.T) {
	g := newGrid(t, 4)
	// Interior cell (1,1) is alive but the file's border is all dead.
	if err := LoadFull(strings.NewReader("0 0 0 0\n0 1 0 0\n0 0 0 0\n0 0 0 0\n"), g); err != nil {
		t.Fatal(err)
	}
	for _, c := range []core.Coord{{Row: 1, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 3}} {
		if !g.IsAlive(c.Row, c.Col) {
			t.Fatalf("border cell %v not refreshed from the interior", c)
		}
	}
	if g.IsAlive(0, 0) {
		t.Fatal("border cell (0,0) should mirror dead interior cell (2,2)")
	}
}
