package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/gridfile"
	"torus-life/internal/record"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("o", "life.avi", "output AVI path")
	gens := flag.Int("gens", 150, "generations to record after the initial board")
	fps := flag.Int("fps", 15, "frames per second of the video")
	scale := flag.Int("scale", 4, "pixels per cell in the video")
	load := flag.String("load", "", "start from a saved grid file instead of a fresh board")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("life-record: ")

	var grid *core.Grid
	if *load != "" {
		g, err := core.New(cfg.Size)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := gridfile.LoadFile(*load, g); err != nil {
			log.Fatalf("load %s: %v", *load, err)
		}
		grid = g
	} else {
		sess, err := cfg.NewSession(log.Default())
		if err != nil {
			log.Fatalf("start session: %v", err)
		}
		grid = sess.Grid()
	}

	opts := record.DefaultOptions()
	opts.Generations = *gens
	opts.FPS = *fps
	opts.CellSize = *scale

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frames, err := record.Generations(ctx, *out, grid, opts)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s", frames, *out)
}
