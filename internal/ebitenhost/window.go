// Package ebitenhost runs particle groups inside an ebiten window. The game
// loop is the frame driver: every Update ticks the window's frame queue.
package ebitenhost

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particleground/internal/particleground"
	"github.com/olivierh59500/particleground/internal/tilt"
)

// Options configures a window.
type Options struct {
	Width, Height int
	// TrackResize forwards the live window size to the group instead of
	// keeping the configured surface size.
	TrackResize bool
	// Wobble, when set, feeds synthetic orientation events every tick.
	Wobble     *tilt.Wobble
	Antialias  bool
	ShowStatus bool
	// NoCanvas simulates a host without drawing capability.
	NoCanvas bool
}

// Window is an element backed by an ebiten game.
type Window struct {
	particleground.InputHub

	opts     Options
	canvas   *imageCanvas
	frames   *particleground.FrameQueue
	registry *particleground.Registry

	width, height          int
	pendingW, pendingH     int
	lastMouseX, lastMouseY int
	mouseSeen              bool
}

// NewWindow returns a window whose groups are tracked in reg.
func NewWindow(reg *particleground.Registry, opts Options) *Window {
	w := &Window{
		opts:     opts,
		frames:   particleground.NewFrameQueue(),
		registry: reg,
		width:    opts.Width,
		height:   opts.Height,
	}
	if !opts.NoCanvas {
		w.canvas = newImageCanvas(opts.Antialias)
	}
	return w
}

// Canvas returns the offscreen canvas, or nil when the window was built
// without one.
func (w *Window) Canvas() particleground.Canvas {
	if w.canvas == nil {
		return nil
	}
	return w.canvas
}

// Frames returns the queue ticked by Update.
func (w *Window) Frames() particleground.Scheduler {
	return w.frames
}

func (w *Window) group() *particleground.Group {
	g, _ := w.registry.Lookup(w)
	return g
}

// Update handles input, applies pending resizes and runs due frames.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if g := w.group(); g != nil {
			g.Destroy()
		}
		return ebiten.Termination
	}

	g := w.group()
	if g != nil && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		togglePause(g)
	}

	if w.pendingW > 0 && w.pendingH > 0 {
		if g != nil {
			g.Resize(float64(w.pendingW), float64(w.pendingH))
			log.Printf("resized surface to %dx%d", w.pendingW, w.pendingH)
		}
		w.width, w.height = w.pendingW, w.pendingH
		w.pendingW, w.pendingH = 0, 0
	}

	mx, my := ebiten.CursorPosition()
	if !w.mouseSeen || mx != w.lastMouseX || my != w.lastMouseY {
		w.mouseSeen = true
		w.lastMouseX, w.lastMouseY = mx, my
		w.PointerMoved(float64(mx), float64(my))
	}

	if w.opts.Wobble != nil {
		w.Oriented(w.opts.Wobble.Next())
	}

	w.frames.Tick()
	return nil
}

// Draw blits the group's surface onto the screen.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.canvas != nil && w.canvas.Image() != nil {
		screen.DrawImage(w.canvas.Image(), &ebiten.DrawImageOptions{})
	}
	if !w.opts.ShowStatus {
		return
	}
	status := "no canvas"
	if g := w.group(); g != nil {
		status = statusLine(g)
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout keeps the configured surface size unless resize tracking is on.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !w.opts.TrackResize {
		return w.width, w.height
	}
	if outsideWidth != w.width || outsideHeight != w.height {
		w.pendingW, w.pendingH = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

func togglePause(g *particleground.Group) {
	if g.State() == particleground.Running {
		g.Pause()
	} else {
		g.Start()
	}
}

func statusLine(g *particleground.Group) string {
	return fmt.Sprintf("%s | particles %d | frame %d | Space: pause, Esc/Q: quit",
		g.State(), len(g.Particles()), g.Frames())
}
