package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particleground/internal/cli"
	"github.com/olivierh59500/particleground/internal/ebitenhost"
	"github.com/olivierh59500/particleground/internal/particleground"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine)
	antialias := flag.Bool("antialias", true, "antialias dots and lines")
	status := flag.Bool("status", true, "show the status line")
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	if saved, err := flags.SaveIfRequested(cfg); err != nil {
		log.Fatal(err)
	} else if saved {
		return
	}

	reg := particleground.NewRegistry()
	win := ebitenhost.NewWindow(reg, ebitenhost.Options{
		Width:       int(cfg.Width),
		Height:      int(cfg.Height),
		TrackResize: flags.TrackResize,
		Wobble:      flags.NewWobble(),
		Antialias:   *antialias,
		ShowStatus:  *status,
	})

	g := reg.Attach(win, cfg,
		particleground.WithEnvironment(flags.Environment()),
		particleground.WithOnInit(func(g *particleground.Group) {
			log.Printf("particle field ready: %d particles", len(g.Particles()))
		}),
	)
	if g == nil {
		log.Fatal("no drawing surface available")
	}

	// Set up Ebitengine game
	ebiten.SetWindowSize(int(cfg.Width)/2, int(cfg.Height)/2)
	ebiten.SetWindowTitle("Particleground")
	if flags.TrackResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(60)

	// Run the game loop
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
