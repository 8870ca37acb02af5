package record

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"torus-life/internal/core"
)

func gliderGrid(t *testing.T) *core.Grid {
	t.Helper()
	g, err := core.New(16)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := core.LookupPattern("glider")
	if err := core.Stamp(g, p, core.Coord{Row: 2, Col: 2}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGenerationsWritesAVI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.avi")
	g := gliderGrid(t)
	opts := DefaultOptions()
	opts.Generations = 8
	frames, err := Generations(context.Background(), path, g, opts)
	if err != nil {
		t.Fatalf("Generations: %v", err)
	}
	if frames != 9 {
		t.Fatalf("frames = %d, want 9", frames)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "AVI " {
		t.Fatalf("not an AVI file: % x", data[:min(12, len(data))])
	}
	// Eight generations move the glider two cells down and right.
	want, err := core.New(16)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := core.LookupPattern("glider")
	if err := core.Stamp(want, p, core.Coord{Row: 4, Col: 4}); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(want) {
		t.Fatalf("grid not advanced in place:\n%s", g)
	}
}

func TestAddFrameRejectsOtherSizes(t *testing.T) {
	rec, err := New(filepath.Join(t.TempDir(), "x.avi"), 16, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Close()
	other, err := core.New(10)
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.AddFrame(other); !errors.Is(err, core.ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestGenerationsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "c.avi")
	frames, err := Generations(ctx, path, gliderGrid(t), DefaultOptions())
	if !errors.Is(err, context.Canceled) || frames != 0 {
		t.Fatalf("frames=%d err=%v", frames, err)
	}
}

func TestNewFailsForMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "x.avi")
	if _, err := New(path, 8, DefaultOptions()); err == nil {
		t.Fatalf("expected error for %s", path)
	}
}

func TestGenerationsRejectsNegativeCount(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	path := filepath.Join(t.TempDir(), "neg.avi")
	opts := DefaultOptions()
	opts.Generations = -1
	frames, err := Generations(ctx, path, gliderGrid(t), opts)
	if err == nil || errors.Is(err, context.DeadlineExceeded) || frames != 0 {
		t.Fatalf("frames=%d err=%v, want an immediate validation error", frames, err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("no file should be created, stat err = %v", err)
	}
}

func TestGenerationsZeroWritesInitialFrame(t *testing.T) {
	opts := DefaultOptions()
	opts.Generations = 0
	frames, err := Generations(context.Background(), filepath.Join(t.TempDir(), "one.avi"), gliderGrid(t), opts)
	if err != nil || frames != 1 {
		t.Fatalf("frames=%d err=%v", frames, err)
	}
}
