package particleground

import (
	"math"
	"math/rand"

	"github.com/olivierh59500/particleground/internal/config"
)

// Easing divides the gap between the parallax target and the current offset
// on every frame.
const Easing = 10.0

// Vec is a pair of surface coordinates or per-frame displacements.
type Vec struct {
	X, Y float64
}

// Particle is a single drifting point. Its parallax offset only shifts where
// it is drawn; the true position is advanced by speed alone.
type Particle struct {
	Position Vec
	Speed    Vec
	// Layer in [1,3]; higher layers move less with the pointer.
	Layer int

	ParallaxOffsetX float64
	ParallaxOffsetY float64

	stackPos int
	group    *Group
}

func newParticle(g *Group) *Particle {
	c := g.cfg
	return &Particle{
		Position: Vec{
			X: g.rng.Float64() * g.width,
			Y: g.rng.Float64() * g.height,
		},
		Speed: Vec{
			X: axisSpeed(g.rng, c.DirectionX, config.Left, config.Right, c.MinSpeedX, c.MaxSpeedX),
			Y: axisSpeed(g.rng, c.DirectionY, config.Up, config.Down, c.MinSpeedY, c.MaxSpeedY),
		},
		Layer: g.rng.Intn(3) + 1,
		group: g,
	}
}

// axisSpeed draws a velocity for one axis. Directional policies bias the
// sign; center draws around zero and pushes the result away from it by lo.
func axisSpeed(rng *rand.Rand, dir, negative, positive config.Direction, lo, hi float64) float64 {
	switch dir {
	case negative:
		return round2(-hi + rng.Float64()*hi - lo)
	case positive:
		return round2(rng.Float64()*hi + lo)
	default:
		v := round2(-hi/2 + rng.Float64()*hi)
		if v > 0 {
			return v + lo
		}
		return v - lo
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StackPos returns the particle's index in its group at the last reindex.
func (p *Particle) StackPos() int {
	return p.stackPos
}

// Rendered returns the position the particle is drawn at.
func (p *Particle) Rendered() Vec {
	return Vec{X: p.Position.X + p.ParallaxOffsetX, Y: p.Position.Y + p.ParallaxOffsetY}
}

func (p *Particle) updatePosition() {
	g := p.group
	c := g.cfg

	if c.Parallax {
		ptr := g.parallaxPointer()
		targX := (ptr.X - g.width/2) / (c.ParallaxMultiplier * float64(p.Layer))
		p.ParallaxOffsetX += (targX - p.ParallaxOffsetX) / Easing
		targY := (ptr.Y - g.height/2) / (c.ParallaxMultiplier * float64(p.Layer))
		p.ParallaxOffsetY += (targY - p.ParallaxOffsetY) / Easing
	}

	if !moveAxis(&p.Position.X, &p.Speed.X, p.ParallaxOffsetX, g.width, c.DirectionX, config.Left, config.Right) {
		p.Position.X += p.Speed.X
	}
	if !moveAxis(&p.Position.Y, &p.Speed.Y, p.ParallaxOffsetY, g.height, c.DirectionY, config.Up, config.Down) {
		p.Position.Y += p.Speed.Y
	}
}

// moveAxis applies the boundary policy for one axis and reports whether the
// particle wrapped. A wrapped particle is placed on the opposite edge and
// does not advance this frame.
func moveAxis(pos, speed *float64, offset, size float64, dir, negative, positive config.Direction) bool {
	next := *pos + *speed + offset
	switch dir {
	case negative:
		if next < 0 {
			*pos = size - offset
			return true
		}
	case positive:
		if next > size {
			*pos = 0 - offset
			return true
		}
	default:
		if next > size || next < 0 {
			*speed = -*speed
		}
	}
	return false
}

// draw paints the dot and joins it to every particle higher in the stack
// that lies within proximity.
func (p *Particle) draw(cv Canvas) {
	g := p.group
	c := g.cfg
	from := p.Rendered()

	cv.FillCircle(from.X, from.Y, c.ParticleRadius/2)

	for i := len(g.particles) - 1; i > p.stackPos; i-- {
		q := g.particles[i]
		if !p.joins(q) {
			continue
		}
		to := q.Rendered()
		if c.CurvedLines {
			cv.Curve(from.X, from.Y, q.Position.X, q.Position.Y, to.X, to.Y)
		} else {
			cv.Line(from.X, from.Y, to.X, to.Y)
		}
	}
}

func (p *Particle) joins(q *Particle) bool {
	d := math.Hypot(p.Position.X-q.Position.X, p.Position.Y-q.Position.Y)
	return round2(d) < p.group.cfg.Proximity
}
