//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sess, err := cfg.NewSession(log.Default())
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	game := app.New(sess, cfg.Cell)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("torus-life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
