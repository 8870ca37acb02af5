// Package gridfile reads and writes grids as whitespace-separated 0/1 tokens
// in row-major order.
//
// A full save is exactly N rows of N tokens with no header. A region save
// starts with the header line
//
//	region <row> <col> <rows> <cols>
//
// giving the region origin and shape, followed by rows lines of cols tokens.
// Line breaks carry no meaning to the reader.
package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"torus-life/internal/core"
)

const regionTag = "region"

// SaveFull writes every cell of g, mirror layer included.
func SaveFull(g *core.Grid, w io.Writer) error {
	n := g.Size()
	return writeCells(w, g, core.Region{RowMax: n, ColMax: n})
}

// SavePartial writes the region spanned by two opposite corners. The larger
// corner coordinate on each axis is exclusive.
func SavePartial(g *core.Grid, a, b core.Coord, w io.Writer) error {
	return SaveRegion(g, core.NewRegion(a, b), w)
}

// SaveRegion writes the header and cells of r.
func SaveRegion(g *core.Grid, r core.Region, w io.Writer) error {
	if r.Empty() {
		return fmt.Errorf("save empty region %+v: %w", r, core.ErrInvalidSize)
	}
	if !r.Within(g.Size()) {
		return fmt.Errorf("save region: %w", &core.RangeError{
			Op: "save region", Unit: "cell", Row: r.RowMax - 1, Col: r.ColMax - 1, Limit: g.Size(),
		})
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d %d %d %d\n", regionTag, r.RowMin, r.ColMin, r.Rows(), r.Cols())
	if err := writeCells(bw, g, r); err != nil {
		return err
	}
	return flush(bw)
}

func writeCells(w io.Writer, g *core.Grid, r core.Region) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	cells := g.Cells()
	n := g.Size()
	line := make([]byte, 0, 2*r.Cols())
	for row := r.RowMin; row < r.RowMax; row++ {
		line = line[:0]
		for col := r.ColMin; col < r.ColMax; col++ {
			if col > r.ColMin {
				line = append(line, ' ')
			}
			line = append(line, '0'+byte(cells[row*n+col]))
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	return flush(bw)
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// LoadFull reads exactly Size()*Size() tokens into g and refreshes the wrap
// border from the interior. On any error g is left as it was.
func LoadFull(r io.Reader, g *core.Grid) error {
	return newScanner(r).full(g)
}

// LoadPartial reads a region file and writes its cells into g with the top-left
// corner at origin, or at the saved origin when origin is nil. It returns the
// region that was written. On any error g is left as it was.
func LoadPartial(r io.Reader, g *core.Grid, origin *core.Coord) (core.Region, error) {
	s := newScanner(r)
	h, err := s.header(g.Size())
	if err != nil {
		return core.Region{}, err
	}
	return s.stamp(g, h, origin)
}

// Load decodes either file flavour: a region file is written at its saved
// origin, anything else must be a full grid.
func Load(r io.Reader, g *core.Grid) (core.Region, error) {
	s := newScanner(r)
	if !s.peekRegion() {
		if err := s.full(g); err != nil {
			return core.Region{}, err
		}
		n := g.Size()
		return core.Region{RowMax: n, ColMax: n}, nil
	}
	h, err := s.header(g.Size())
	if err != nil {
		return core.Region{}, err
	}
	return s.stamp(g, h, nil)
}

type regionHeader struct {
	Region core.Region
}

type scanner struct {
	sc     *bufio.Scanner
	count  int
	peeked string
	has    bool
}

func newScanner(r io.Reader) *scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &scanner{sc: sc}
}

func (s *scanner) next() (string, bool, error) {
	if s.has {
		s.has = false
		s.count++
		return s.peeked, true, nil
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", false, &IOError{Op: "read", Err: err}
		}
		return "", false, nil
	}
	s.count++
	return s.sc.Text(), true, nil
}

func (s *scanner) peekRegion() bool {
	tok, ok, err := s.next()
	if err != nil || !ok {
		// Let the caller's read report the failure.
		return false
	}
	s.count--
	s.peeked, s.has = tok, true
	return tok == regionTag
}

func (s *scanner) cells(dst []core.Cell, full bool) error {
	for i := range dst {
		tok, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok {
			return &MalformedError{Reason: fmt.Sprintf("want %d cells, found %d", len(dst), i)}
		}
		switch tok {
		case "0":
			dst[i] = core.Dead
		case "1":
			dst[i] = core.Alive
		case regionTag:
			if full && i == 0 {
				return &MalformedError{Token: s.count, Reason: "region file where a full grid was expected"}
			}
			fallthrough
		default:
			return &MalformedError{Token: s.count, Reason: fmt.Sprintf("unexpected token %q", tok)}
		}
	}
	return nil
}

func (s *scanner) full(g *core.Grid) error {
	n := g.Size()
	cells := make([]core.Cell, n*n)
	if err := s.cells(cells, true); err != nil {
		return err
	}
	if err := s.expectEOF(); err != nil {
		return err
	}
	if err := g.Replace(cells); err != nil {
		return err
	}
	// The interior is authoritative; stale border cells in the file are redrawn.
	core.Wrap(g)
	return nil
}

func (s *scanner) expectEOF() error {
	tok, ok, err := s.next()
	if err != nil {
		return err
	}
	if ok {
		return &MalformedError{Token: s.count, Reason: fmt.Sprintf("trailing token %q", tok)}
	}
	return nil
}

// header reads the region line. No value may exceed size, which keeps the
// region arithmetic below from overflowing.
func (s *scanner) header(size int) (regionHeader, error) {
	tok, ok, err := s.next()
	if err != nil {
		return regionHeader{}, err
	}
	if !ok || tok != regionTag {
		return regionHeader{}, &MalformedError{Token: 1, Reason: "missing region header; the file does not record region bounds"}
	}
	var vals [4]int
	for i := range vals {
		tok, ok, err := s.next()
		if err != nil {
			return regionHeader{}, err
		}
		if !ok {
			return regionHeader{}, &MalformedError{Reason: "truncated region header"}
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return regionHeader{}, &MalformedError{Token: s.count, Reason: fmt.Sprintf("bad header value %q", tok)}
		}
		if v > size {
			return regionHeader{}, &MalformedError{Token: s.count, Reason: fmt.Sprintf("header value %d exceeds grid size %d", v, size)}
		}
		vals[i] = v
	}
	origin := core.Coord{Row: vals[0], Col: vals[1]}
	r := core.Region{RowMax: vals[2], ColMax: vals[3]}.At(origin)
	if r.Empty() {
		return regionHeader{}, &MalformedError{Reason: fmt.Sprintf("empty region %dx%d", vals[2], vals[3])}
	}
	return regionHeader{Region: r}, nil
}

func (s *scanner) stamp(g *core.Grid, h regionHeader, origin *core.Coord) (core.Region, error) {
	target := h.Region
	if origin != nil {
		n := g.Size()
		if origin.Row < 0 || origin.Col < 0 || origin.Row > n-target.Rows() || origin.Col > n-target.Cols() {
			return core.Region{}, fmt.Errorf("load region: %w", &core.RangeError{
				Op: "load region", Unit: "cell", Row: origin.Row, Col: origin.Col, Limit: n,
			})
		}
		target = target.At(*origin)
	}
	if !target.Within(g.Size()) {
		return core.Region{}, fmt.Errorf("load region: %w", &core.RangeError{
			Op: "load region", Unit: "cell", Row: target.RowMax - 1, Col: target.ColMax - 1, Limit: g.Size(),
		})
	}
	cells := make([]core.Cell, target.Rows()*target.Cols())
	if err := s.cells(cells, false); err != nil {
		return core.Region{}, err
	}
	if err := s.expectEOF(); err != nil {
		return core.Region{}, err
	}
	i := 0
	for row := target.RowMin; row < target.RowMax; row++ {
		for col := target.ColMin; col < target.ColMax; col++ {
			// Bounds were checked against target above.
			_ = g.Set(row, col, cells[i])
			i++
		}
	}
	core.Wrap(g)
	return target, nil
}
