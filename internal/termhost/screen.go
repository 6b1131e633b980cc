// Package termhost runs particle groups in a terminal through tcell. A ticker
// drives the frame queue; keyboard, mouse and resize events share the same
// goroutine so groups never see concurrent calls.
package termhost

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particleground/internal/particleground"
	"github.com/olivierh59500/particleground/internal/tilt"
)

// Cell size in surface pixels, used when the surface tracks the terminal.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Options configures a terminal element.
type Options struct {
	FPS         int
	TrackResize bool
	Wobble      *tilt.Wobble
}

// Screen is an element backed by a tcell screen.
type Screen struct {
	particleground.InputHub

	opts     Options
	screen   tcell.Screen
	canvas   *cellCanvas
	frames   *particleground.FrameQueue
	registry *particleground.Registry
}

// New wraps an initialized tcell screen.
func New(screen tcell.Screen, reg *particleground.Registry, opts Options) *Screen {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return &Screen{
		opts:     opts,
		screen:   screen,
		canvas:   newCellCanvas(screen),
		frames:   particleground.NewFrameQueue(),
		registry: reg,
	}
}

// Canvas returns the cell canvas.
func (s *Screen) Canvas() particleground.Canvas {
	return s.canvas
}

// Frames returns the queue ticked by Run.
func (s *Screen) Frames() particleground.Scheduler {
	return s.frames
}

// SurfaceSize returns the surface size matching the terminal grid.
func (s *Screen) SurfaceSize() (float64, float64) {
	return float64(s.canvas.cols * CellWidth), float64(s.canvas.rows * CellHeight)
}

// Run pumps events and frames until the context ends or the user quits.
func (s *Screen) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go s.pump(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.registry.Destroy(s)
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				s.registry.Destroy(s)
				return nil
			}
			if s.handle(ev) {
				s.registry.Destroy(s)
				return nil
			}
		case <-ticker.C:
			s.tick()
		}
	}
}

// pump forwards screen events until the screen is finalized or done closes.
func (s *Screen) pump(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (s *Screen) tick() {
	if s.opts.Wobble != nil {
		s.Oriented(s.opts.Wobble.Next())
	}
	if s.frames.Tick() > 0 {
		s.screen.Show()
	}
}

// handle applies one event and reports whether the user asked to quit.
func (s *Screen) handle(ev tcell.Event) bool {
	g, _ := s.registry.Lookup(s)

	switch e := ev.(type) {
	case *tcell.EventKey:
		switch {
		case e.Key() == tcell.KeyEscape, e.Key() == tcell.KeyCtrlC:
			return true
		case e.Key() == tcell.KeyRune && e.Rune() == 'q':
			return true
		case e.Key() == tcell.KeyRune && e.Rune() == ' ':
			if g != nil {
				if g.State() == particleground.Running {
					g.Pause()
				} else {
					g.Start()
				}
			}
		}
	case *tcell.EventMouse:
		x, y := e.Position()
		s.PointerMoved(s.canvas.toSurface(x, y))
	case *tcell.EventResize:
		s.screen.Sync()
		s.canvas.relayout()
		if g != nil && s.opts.TrackResize {
			w, h := s.SurfaceSize()
			g.Resize(w, h)
			log.Printf("resized surface to %vx%v", w, h)
		}
	}
	return false
}
