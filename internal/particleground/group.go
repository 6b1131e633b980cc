package particleground

import (
	"math"
	"math/rand"
	"time"

	"github.com/olivierh59500/particleground/internal/config"
)

// State is the lifecycle stage of a group.
type State int

const (
	// Created groups are populated but have not requested a frame yet.
	Created State = iota
	// Running groups hold exactly one pending frame.
	Running
	// Paused groups hold no pending frame.
	Paused
	// Destroyed groups are unregistered and ignore every call.
	Destroyed
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Destroyed:
		return "destroyed"
	}
	return "unknown"
}

// Option customizes a group at attach time.
type Option func(*Group)

// WithRand sets the random source used to spawn particles.
func WithRand(rng *rand.Rand) Option {
	return func(g *Group) { g.rng = rng }
}

// WithEnvironment describes the host for tilt detection.
func WithEnvironment(env Environment) Option {
	return func(g *Group) { g.env = env }
}

// WithOnInit registers a hook run once the initial particles exist, before
// the first frame is requested.
func WithOnInit(fn func(*Group)) Option {
	return func(g *Group) { g.onInit = fn }
}

// WithOnDestroy registers a hook run when the group is destroyed, used by
// binding layers to drop their per-element data.
func WithOnDestroy(fn func(*Group)) Option {
	return func(g *Group) { g.onDestroy = fn }
}

// Group is a particle field bound to one element. All methods must be called
// from the goroutine that drives the element's scheduler.
type Group struct {
	el       Element
	canvas   Canvas
	frames   Scheduler
	registry *Registry

	cfg           config.Config
	width, height float64
	particles     []*Particle

	pointer Vec
	tilt    Vec
	env     Environment
	rng     *rand.Rand

	state      State
	pending    FrameID
	frameCount int

	onInit    func(*Group)
	onDestroy func(*Group)
	unsub     []func()
}

func newGroup(r *Registry, el Element, canvas Canvas, frames Scheduler, cfg config.Config, opts []Option) *Group {
	g := &Group{
		el:       el,
		canvas:   canvas,
		frames:   frames,
		registry: r,
		cfg:      config.Normalize(cfg),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.width, g.height = g.cfg.Width, g.cfg.Height
	return g
}

func (g *Group) initialize() {
	g.applyStyle()

	n := g.targetCount()
	g.particles = make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		p := newParticle(g)
		p.stackPos = i
		g.particles = append(g.particles, p)
	}

	if src, ok := g.el.(InputSource); ok {
		g.unsub = append(g.unsub, src.OnPointerMove(g.MovePointer))
		if g.env.TiltEnabled() {
			g.unsub = append(g.unsub, src.OnOrientation(g.Orient))
		}
	}

	if g.onInit != nil {
		g.onInit(g)
	}
	g.Start()
}

func (g *Group) applyStyle() {
	g.canvas.SetSize(g.width, g.height)
	g.canvas.SetStyle(Style{
		Fill:      g.cfg.DotRGBA(),
		Stroke:    g.cfg.LineRGBA(),
		LineWidth: g.cfg.LineWidth,
	})
}

func (g *Group) targetCount() int {
	return int(math.Round(g.width * g.height / g.cfg.Density))
}

// Step runs one frame: it clears the canvas, moves every particle, draws
// every particle and requests the next frame unless the group is paused.
// A frame already queued is cancelled first, so calling Step by hand never
// leaves two frames pending.
func (g *Group) Step() {
	if g.state == Destroyed {
		return
	}
	g.cancel()
	g.frameCount++

	g.canvas.Clear()
	for _, p := range g.particles {
		p.updatePosition()
	}
	for _, p := range g.particles {
		p.draw(g.canvas)
	}

	if g.state == Running {
		g.animate()
	}
}

func (g *Group) animate() {
	if g.pending != 0 {
		return
	}
	g.pending = g.frames.RequestFrame(g.Step)
}

func (g *Group) cancel() {
	if g.pending == 0 {
		return
	}
	g.frames.CancelFrame(g.pending)
	g.pending = 0
}

// Start resumes the frame loop.
func (g *Group) Start() {
	if g.state == Destroyed {
		return
	}
	g.state = Running
	g.animate()
}

// Pause stops the frame loop after cancelling the pending frame.
func (g *Group) Pause() {
	if g.state == Destroyed {
		return
	}
	g.state = Paused
	g.cancel()
}

// Destroy stops the group for good, removes it from its registry and
// releases the canvas. Destroying twice is a no-op.
func (g *Group) Destroy() {
	if g.state == Destroyed {
		return
	}
	if g.registry != nil {
		g.registry.remove(g.el, g)
	}
	g.Pause()
	for _, fn := range g.unsub {
		if fn != nil {
			fn()
		}
	}
	g.unsub = nil
	if g.onDestroy != nil {
		g.onDestroy(g)
	}
	if r, ok := g.canvas.(Releaser); ok {
		r.Release()
	}
	g.state = Destroyed
}

// Resize applies a new surface size, drops particles now outside it, grows or
// truncates the field to match the density and reindexes the stack.
// Non-positive dimensions keep the current size.
func (g *Group) Resize(width, height float64) {
	if g.state == Destroyed {
		return
	}
	if width > 0 {
		g.width = width
	}
	if height > 0 {
		g.height = height
	}
	g.applyStyle()

	kept := g.particles[:0]
	for _, p := range g.particles {
		if p.Position.X < 0 || p.Position.X > g.width || p.Position.Y < 0 || p.Position.Y > g.height {
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(g.particles); i++ {
		g.particles[i] = nil
	}
	g.particles = kept

	n := g.targetCount()
	for len(g.particles) < n {
		g.particles = append(g.particles, newParticle(g))
	}
	if len(g.particles) > n {
		for i := n; i < len(g.particles); i++ {
			g.particles[i] = nil
		}
		g.particles = g.particles[:n]
	}

	for i, p := range g.particles {
		p.stackPos = i
	}
}

// MovePointer records the latest pointer position.
func (g *Group) MovePointer(x, y float64) {
	g.pointer = Vec{X: x, Y: y}
}

// Orient records the latest device orientation. Angles are negated and
// clamped to the tilt range. Ignored unless tilt drives parallax.
func (g *Group) Orient(beta, gamma float64) {
	if !g.env.TiltEnabled() {
		return
	}
	g.tilt = Vec{X: clampTilt(-gamma), Y: clampTilt(-beta)}
}

func (g *Group) parallaxPointer() Vec {
	if g.env.TiltEnabled() {
		return Vec{
			X: tiltToSurface(g.tilt.X, g.width),
			Y: tiltToSurface(g.tilt.Y, g.height),
		}
	}
	return g.pointer
}

// State returns the lifecycle stage.
func (g *Group) State() State {
	return g.state
}

// Frames returns the number of frames drawn so far.
func (g *Group) Frames() int {
	return g.frameCount
}

// Particles returns the particles in stack order.
func (g *Group) Particles() []*Particle {
	out := make([]*Particle, len(g.particles))
	copy(out, g.particles)
	return out
}

// Size returns the current surface size.
func (g *Group) Size() (width, height float64) {
	return g.width, g.height
}

// Config returns the normalized options the group was created with.
func (g *Group) Config() config.Config {
	return g.cfg
}

// Pointer returns the latest pointer position.
func (g *Group) Pointer() Vec {
	return g.pointer
}

// Tilt returns the latest clamped tilt.
func (g *Group) Tilt() Vec {
	return g.tilt
}
