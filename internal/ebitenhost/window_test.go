package ebitenhost

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/olivierh59500/particleground/internal/config"
	"github.com/olivierh59500/particleground/internal/particleground"
)

type nopCanvas struct{}

func (nopCanvas) SetSize(w, h float64)                 {}
func (nopCanvas) SetStyle(s particleground.Style)      {}
func (nopCanvas) Clear()                               {}
func (nopCanvas) FillCircle(x, y, r float64)           {}
func (nopCanvas) Line(x0, y0, x1, y1 float64)          {}
func (nopCanvas) Curve(x0, y0, cx, cy, x1, y1 float64) {}

type stubElement struct {
	frames *particleground.FrameQueue
}

func (e *stubElement) Canvas() particleground.Canvas    { return nopCanvas{} }
func (e *stubElement) Frames() particleground.Scheduler { return e.frames }

func TestWindowWithoutCanvas(t *testing.T) {
	reg := particleground.NewRegistry()
	w := NewWindow(reg, Options{Width: 640, Height: 480, NoCanvas: true})

	if w.Canvas() != nil {
		t.Fatal("expected nil canvas")
	}
	if g := reg.Attach(w, config.Default()); g != nil {
		t.Error("attach should degrade to nil without a canvas")
	}
	if w.group() != nil {
		t.Error("window should have no group")
	}
}

func TestLayoutFixed(t *testing.T) {
	w := NewWindow(particleground.NewRegistry(), Options{Width: 2020, Height: 1180, NoCanvas: true})

	gw, gh := w.Layout(800, 600)
	if gw != 2020 || gh != 1180 {
		t.Errorf("Layout() = %dx%d, want 2020x1180", gw, gh)
	}
	if w.pendingW != 0 || w.pendingH != 0 {
		t.Error("fixed layout should not queue a resize")
	}
}

func TestLayoutTracksResize(t *testing.T) {
	w := NewWindow(particleground.NewRegistry(), Options{Width: 2020, Height: 1180, TrackResize: true, NoCanvas: true})

	gw, gh := w.Layout(800, 600)
	if gw != 800 || gh != 600 {
		t.Errorf("Layout() = %dx%d, want 800x600", gw, gh)
	}
	if w.pendingW != 800 || w.pendingH != 600 {
		t.Errorf("pending resize = %dx%d", w.pendingW, w.pendingH)
	}
}

func TestTogglePause(t *testing.T) {
	el := &stubElement{frames: particleground.NewFrameQueue()}
	g := particleground.NewRegistry().Attach(el, config.Default(),
		particleground.WithRand(rand.New(rand.NewSource(1))))

	togglePause(g)
	if g.State() != particleground.Paused {
		t.Errorf("expected paused, got %v", g.State())
	}
	togglePause(g)
	if g.State() != particleground.Running {
		t.Errorf("expected running, got %v", g.State())
	}

	el.frames.Tick()
	line := statusLine(g)
	if !strings.HasPrefix(line, "running | particles 238 | frame 1") {
		t.Errorf("unexpected status %q", line)
	}
}
