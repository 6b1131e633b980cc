// Command particleground-term draws the particle field in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particleground/internal/cli"
	"github.com/olivierh59500/particleground/internal/particleground"
	"github.com/olivierh59500/particleground/internal/termhost"
)

func main() {
	os.Exit(run())
}

func run() int {
	var flags cli.Flags
	flags.Register(flag.CommandLine)
	fps := flag.Int("fps", 30, "frames per second")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// The terminal is the display; keep log lines off it.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := flags.Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if saved, err := flags.SaveIfRequested(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	} else if saved {
		return 0
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	reg := particleground.NewRegistry()
	term := termhost.New(screen, reg, termhost.Options{
		FPS:         *fps,
		TrackResize: flags.TrackResize,
		Wobble:      flags.NewWobble(),
	})
	if flags.TrackResize {
		cfg.Width, cfg.Height = term.SurfaceSize()
	}

	g := reg.Attach(term, cfg, particleground.WithEnvironment(flags.Environment()))
	if g == nil {
		fmt.Fprintln(os.Stderr, "Error: no drawing surface available")
		return 1
	}
	log.Printf("particle field ready: %d particles", len(g.Particles()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("run: %v", err)
		return 1
	}
	return 0
}
