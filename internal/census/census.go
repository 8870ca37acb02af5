// Package census runs many independent simulations in parallel and reports
// how their populations evolve: final counts, extinctions and the generation
// at which each board settled into a still life or a period-2 oscillation.
package census

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"torus-life/internal/core"
	pcore "torus-life/pkg/core"

	"golang.org/x/sync/errgroup"
)

// Options control a census.
type Options struct {
	Size        int
	Live        int
	Pattern     string
	Generations int
	Runs        int
	// Seed is the seed of the first run; run i uses Seed+i.
	Seed    int64
	Workers int
}

// DefaultOptions mirrors the interactive defaults with a short horizon.
func DefaultOptions() Options {
	return Options{
		Size:        core.DefaultSize,
		Live:        5000,
		Generations: 500,
		Runs:        8,
		Seed:        1,
		Workers:     runtime.NumCPU(),
	}
}

// Result describes one run.
type Result struct {
	Seed int64
	// Population[g] is the interior population after g generations.
	Population []int
	Final      int
	Extinct    bool
	// SettledAt is the first generation whose board repeats the board one or
	// two generations earlier, or -1.
	SettledAt int
	Period    int
}

func (o Options) validate() error {
	switch {
	case o.Generations < 1:
		return fmt.Errorf("census: generations must be positive, got %d", o.Generations)
	case o.Runs < 1:
		return fmt.Errorf("census: runs must be positive, got %d", o.Runs)
	case o.Live < 0:
		return fmt.Errorf("census: live count must not be negative, got %d", o.Live)
	}
	return nil
}

// Run executes opts.Runs simulations, at most opts.Workers at a time. Each run
// owns its grid. Results are returned in seed order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Pattern != "" {
		if _, ok := core.LookupPattern(opts.Pattern); !ok {
			return nil, fmt.Errorf("census: unknown pattern %q", opts.Pattern)
		}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range opts.Runs {
		seed := opts.Seed + int64(i)
		eg.Go(func() error {
			res, err := simulate(ctx, opts, seed)
			if err != nil {
				return fmt.Errorf("census: seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulate(ctx context.Context, opts Options, seed int64) (Result, error) {
	g, err := core.New(opts.Size)
	if err != nil {
		return Result{}, err
	}
	if opts.Pattern != "" {
		p, _ := core.LookupPattern(opts.Pattern)
		if err := core.StampCentered(g, p); err != nil {
			return Result{}, err
		}
	} else {
		g.Randomize(pcore.NewRNG(seed), opts.Live)
	}

	res := Result{Seed: seed, SettledAt: -1, Population: make([]int, 0, opts.Generations+1)}
	res.Population = append(res.Population, g.Population())

	// back1 and back2 hold the boards one and two generations ago.
	back1, back2 := g.Clone(), g.Clone()
	engine := core.NewEngine()
	for gen := 1; gen <= opts.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		engine.Advance(g)
		res.Population = append(res.Population, g.Population())
		if res.SettledAt >= 0 {
			continue
		}
		switch {
		case g.Equal(back1):
			res.SettledAt, res.Period = gen, 1
		case gen >= 2 && g.Equal(back2):
			res.SettledAt, res.Period = gen, 2
		}
		back1, back2 = back2, back1
		if err := back1.CopyFrom(g); err != nil {
			return Result{}, err
		}
	}
	res.Final = res.Population[len(res.Population)-1]
	res.Extinct = res.Final == 0
	return res, nil
}

// Summary aggregates a census.
type Summary struct {
	Runs      int
	Extinct   int
	Settled   int
	MinFinal  int
	MaxFinal  int
	MeanFinal float64
}

// ErrNoResults is returned by Summarize for an empty census.
var ErrNoResults = errors.New("census: no results")

// Summarize aggregates results.
func Summarize(results []Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrNoResults
	}
	s := Summary{Runs: len(results), MinFinal: results[0].Final, MaxFinal: results[0].Final}
	total := 0
	for _, r := range results {
		if r.Extinct {
			s.Extinct++
		}
		if r.SettledAt >= 0 {
			s.Settled++
		}
		s.MinFinal = min(s.MinFinal, r.Final)
		s.MaxFinal = max(s.MaxFinal, r.Final)
		total += r.Final
	}
	s.MeanFinal = float64(total) / float64(len(results))
	return s, nil
}
