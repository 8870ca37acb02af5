package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append session messages to this file")
	flag.Parse()

	// The terminal is owned by the driver, so messages go to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "life-tui: ", log.LstdFlags)
	}

	sess, err := cfg.NewSession(logger)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.New(screen, sess, cfg.TPS).Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
