package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/census"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func (l kvList) toMap() (map[string]string, error) {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		m[k] = v
	}
	return m, nil
}

func main() {
	runs := flag.Int("runs", 8, "number of seeds to simulate")
	gens := flag.Int("gens", 500, "generations per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	chartPath := flag.String("chart", "", "write a population chart PNG to this path")
	var overrides kvList
	flag.Var(&overrides, "set", "board override in key=value form: size, seed, live, pattern (repeatable)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("life-census: ")

	m, err := overrides.toMap()
	if err != nil {
		log.Fatal(err)
	}
	cfg := app.FromMap(m)

	opts := census.Options{
		Size:        cfg.Size,
		Live:        cfg.Live,
		Pattern:     cfg.Pattern,
		Generations: *gens,
		Runs:        *runs,
		Seed:        cfg.Seed,
		Workers:     *workers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := census.Run(ctx, opts)
	if err != nil {
		log.Fatalf("census failed: %v", err)
	}
	log.Printf("%d runs of %d generations on a %dx%d board in %s", *runs, *gens, cfg.Size, cfg.Size, time.Since(start).Round(time.Millisecond))

	fmt.Printf("%-10s %8s %8s %8s %8s\n", "seed", "initial", "final", "settled", "period")
	for _, r := range results {
		settled := "-"
		if r.SettledAt >= 0 {
			settled = fmt.Sprint(r.SettledAt)
		}
		fmt.Printf("%-10d %8d %8d %8s %8d\n", r.Seed, r.Population[0], r.Final, settled, r.Period)
	}
	sum, err := census.Summarize(results)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("extinct %d/%d, settled %d/%d, final population min %d mean %.1f max %d\n",
		sum.Extinct, sum.Runs, sum.Settled, sum.Runs, sum.MinFinal, sum.MeanFinal, sum.MaxFinal)

	if *chartPath != "" {
		f, err := os.Create(*chartPath)
		if err != nil {
			log.Fatalf("create chart: %v", err)
		}
		if err := census.WriteChart(f, results); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close chart: %v", err)
		}
		log.Printf("wrote %s", *chartPath)
	}
}
