// Package session holds the state a driver loop keeps around the engine:
// the grid, pause and single-step flags, and the save/load commands bound to
// keys in the interactive front ends.
package session

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"torus-life/internal/core"
	"torus-life/internal/gridfile"
	pcore "torus-life/pkg/core"
)

// ErrEmptyName is returned when a save or load is requested without a name.
var ErrEmptyName = errors.New("empty file name")

// Options configure a Session.
type Options struct {
	Size        int
	CellSize    int
	RandomCount int
	Seed        int64
	Dir         string
	Logger      *log.Logger
}

// DefaultOptions mirrors the reference setup: a 150x150 board drawn with
// 10 pixel cells, seeded with 5000 random cells.
func DefaultOptions() Options {
	return Options{
		Size:        core.DefaultSize,
		CellSize:    core.DefaultCellSize,
		RandomCount: 5000,
		Seed:        1,
		Dir:         ".",
	}
}

// Session owns one grid and everything needed to drive it interactively.
// It is not safe for concurrent use.
type Session struct {
	grid   *core.Grid
	engine *core.Engine
	mapper core.Mapper
	rng    *pcore.RNG
	opts   Options
	log    *log.Logger

	paused   bool
	stepOnce bool
	status   string
}

// New creates a session with an empty grid.
func New(opts Options) (*Session, error) {
	grid, err := core.New(opts.Size)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	mapper, err := core.NewMapper(opts.CellSize, opts.Size)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &Session{
		grid:   grid,
		engine: core.NewEngine(),
		mapper: mapper,
		rng:    pcore.NewRNG(opts.Seed),
		opts:   opts,
		log:    logger,
	}, nil
}

// Grid exposes the owned grid for rendering.
func (s *Session) Grid() *core.Grid { return s.grid }

// Mapper returns the pixel mapper for the configured cell size.
func (s *Session) Mapper() core.Mapper { return s.mapper }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Generation counts generations since the last clear or load.
func (s *Session) Generation() int { return s.engine.Generation() }

// Status returns the message of the last command, for display.
func (s *Session) Status() string { return s.status }

// TogglePause flips the pause flag.
func (s *Session) TogglePause() { s.paused = !s.paused }

// SetPaused sets the pause flag.
func (s *Session) SetPaused(p bool) { s.paused = p }

// StepOnce requests a single generation on the next Tick even while paused.
func (s *Session) StepOnce() { s.stepOnce = true }

// Tick advances one generation unless paused. It reports whether it stepped.
func (s *Session) Tick() bool {
	if s.paused && !s.stepOnce {
		return false
	}
	s.stepOnce = false
	s.engine.Advance(s.grid)
	return true
}

// Seed fills a fresh board for startup: the named pattern centred on the
// grid, or the configured number of random cells when name is empty. The
// pause flag is left alone.
func (s *Session) Seed(name string) error {
	if name == "" {
		s.grid.Randomize(s.rng, s.opts.RandomCount)
		return nil
	}
	p, ok := core.LookupPattern(name)
	if !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}
	return core.StampCentered(s.grid, p)
}

// Randomize pauses and adds the configured number of random live cells on
// top of the current board.
func (s *Session) Randomize() {
	s.paused = true
	s.grid.Randomize(s.rng, s.opts.RandomCount)
	s.setStatus("randomized %d cells", s.opts.RandomCount)
}

// Clear pauses and kills every cell.
func (s *Session) Clear() {
	s.paused = true
	s.grid.Clear()
	s.engine.Reset()
	s.setStatus("cleared")
}

// ToggleAt flips the cell under pixel (x, y).
func (s *Session) ToggleAt(x, y int) (core.Coord, error) {
	return s.mapper.ToggleCell(s.grid, x, y)
}

// ToggleCell flips the cell at c.
func (s *Session) ToggleCell(c core.Coord) error {
	return s.grid.Toggle(c.Row, c.Col)
}

// Stamp writes a registered pattern with its top-left corner at origin.
func (s *Session) Stamp(name string, origin core.Coord) error {
	p, ok := core.LookupPattern(name)
	if !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}
	if err := core.Stamp(s.grid, p, origin); err != nil {
		return err
	}
	s.setStatus("placed %s at (%d, %d)", name, origin.Row, origin.Col)
	return nil
}

// SelectRegion converts a drag between two pixels into the region of cells it
// covers, both end cells included.
func (s *Session) SelectRegion(x0, y0, x1, y1 int) (core.Region, error) {
	a, err := s.mapper.CellAt(x0, y0)
	if err != nil {
		return core.Region{}, err
	}
	b, err := s.mapper.CellAt(x1, y1)
	if err != nil {
		return core.Region{}, err
	}
	return core.Span(a, b), nil
}

// Path resolves a user-typed name inside the session directory.
func (s *Session) Path(name string) string {
	return filepath.Join(s.opts.Dir, gridfile.Filename(name))
}

// Save pauses and writes the grid, or only region when it is non-nil, to the
// named file. It returns the path written.
func (s *Session) Save(name string, region *core.Region) (string, error) {
	s.paused = true
	if name == "" {
		return "", s.fail("save", ErrEmptyName)
	}
	path := s.Path(name)
	if err := gridfile.SaveFile(path, s.grid, region); err != nil {
		return path, s.fail("save", err)
	}
	if region != nil {
		s.setStatus("saved %dx%d region to %s", region.Rows(), region.Cols(), path)
	} else {
		s.setStatus("saved grid to %s", path)
	}
	return path, nil
}

// Load pauses and replaces the board with the named file. A region file is
// placed at its saved origin on an otherwise empty board. On failure the
// board is left untouched.
func (s *Session) Load(name string) (string, error) {
	s.paused = true
	if name == "" {
		return "", s.fail("load", ErrEmptyName)
	}
	path := s.Path(name)
	scratch, err := core.New(s.grid.Size())
	if err != nil {
		return path, s.fail("load", err)
	}
	region, err := gridfile.LoadFile(path, scratch)
	if err != nil {
		return path, s.fail("load", err)
	}
	if err := s.grid.CopyFrom(scratch); err != nil {
		return path, s.fail("load", err)
	}
	s.engine.Reset()
	s.setStatus("loaded %dx%d cells from %s", region.Rows(), region.Cols(), path)
	return path, nil
}

// Parameters reports the values a driver shows on its status panel.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.Generation()),
				core.IntParam("population", "Population", s.grid.Population()),
				core.BoolParam("paused", "Paused", s.paused),
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("size", "Size", s.grid.Size()),
				core.Int64Param("seed", "Seed", s.opts.Seed),
			},
		},
	}}
}

func (s *Session) setStatus(format string, args ...any) {
	s.status = fmt.Sprintf(format, args...)
	s.log.Print(s.status)
}

func (s *Session) fail(op string, err error) error {
	err = fmt.Errorf("%s: %w", op, err)
	s.status = err.Error()
	s.log.Printf("%s failed: %v", op, err)
	return err
}
