// Package record writes successive generations of a grid to an MJPEG AVI.
package record

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"torus-life/internal/core"
	"torus-life/internal/render"

	"github.com/icza/mjpeg"
)

// Options control a recording.
type Options struct {
	Generations int
	CellSize    int
	FPS         int
	Quality     int
	Palette     render.Palette
}

// DefaultOptions records ten seconds at the interactive rate.
func DefaultOptions() Options {
	return Options{
		Generations: 150,
		CellSize:    4,
		FPS:         15,
		Quality:     90,
		Palette:     render.DefaultPalette(),
	}
}

// Recorder encodes frames into an AVI file.
type Recorder struct {
	aw      mjpeg.AviWriter
	opts    Options
	buf     bytes.Buffer
	frames  int
	closed  bool
	extent  int
	jpegOpt *jpeg.Options
}

// New creates path and prepares it for frames of a size x size grid.
func New(path string, size int, opts Options) (*Recorder, error) {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.FPS <= 0 {
		opts.FPS = 15
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = jpeg.DefaultQuality
	}
	extent := size * opts.CellSize
	aw, err := mjpeg.New(path, int32(extent), int32(extent), int32(opts.FPS))
	if err != nil {
		return nil, fmt.Errorf("record: create %s: %w", path, err)
	}
	return &Recorder{
		aw:      aw,
		opts:    opts,
		extent:  extent,
		jpegOpt: &jpeg.Options{Quality: opts.Quality},
	}, nil
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// AddFrame encodes the current state of g.
func (r *Recorder) AddFrame(g *core.Grid) error {
	if g.Size()*r.opts.CellSize != r.extent {
		return fmt.Errorf("record: %w: grid of %d cells does not fit a %dpx frame", core.ErrSizeMismatch, g.Size(), r.extent)
	}
	img := render.Scaled(g, r.opts.CellSize, r.opts.Palette)
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, r.jpegOpt); err != nil {
		return fmt.Errorf("record: encode frame %d: %w", r.frames, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("record: add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Close finalizes the AVI index. It is safe to call more than once.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.aw.Close(); err != nil {
		return fmt.Errorf("record: close: %w", err)
	}
	return nil
}

// Generations records the initial board and then opts.Generations advances
// of g into path. g is advanced in place.
func Generations(ctx context.Context, path string, g *core.Grid, opts Options) (int, error) {
	if opts.Generations < 0 {
		return 0, fmt.Errorf("record: generations must not be negative, got %d", opts.Generations)
	}
	rec, err := New(path, g.Size(), opts)
	if err != nil {
		return 0, err
	}
	engine := core.NewEngine()
	for gen := 0; ; gen++ {
		if err := ctx.Err(); err != nil {
			rec.Close()
			return rec.Frames(), err
		}
		if err := rec.AddFrame(g); err != nil {
			rec.Close()
			return rec.Frames(), err
		}
		if gen == opts.Generations {
			break
		}
		engine.Advance(g)
	}
	return rec.Frames(), rec.Close()
}
