// Package config holds the tunables of a particle field and the helpers that
// load, merge and save them as JSON overrides on top of the defaults.
package config

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Direction is the per-axis boundary policy. Center bounces particles off
// both edges; the other values make particles drift one way and wrap.
type Direction string

const (
	Center Direction = "center"
	Left   Direction = "left"
	Right  Direction = "right"
	Up     Direction = "up"
	Down   Direction = "down"
)

// Default option values.
const (
	DefaultMinSpeed           = 0.1
	DefaultMaxSpeed           = 0.7
	DefaultDensity            = 10000
	DefaultColor              = "#666666"
	DefaultParticleRadius     = 7
	DefaultLineWidth          = 1
	DefaultProximity          = 100
	DefaultParallaxMultiplier = 5

	// The surface is a fixed configured size rather than the live size of
	// the host region. Hosts that want live tracking pass sizes to Resize.
	DefaultWidth  = 2020
	DefaultHeight = 1180
)

// Config is an immutable snapshot of every option of a particle field.
type Config struct {
	MinSpeedX float64 `json:"minSpeedX"`
	MaxSpeedX float64 `json:"maxSpeedX"`
	MinSpeedY float64 `json:"minSpeedY"`
	MaxSpeedY float64 `json:"maxSpeedY"`

	DirectionX Direction `json:"directionX"`
	DirectionY Direction `json:"directionY"`

	// Density is the number of surface pixels per particle.
	Density float64 `json:"density"`

	DotColor  string `json:"dotColor"`
	LineColor string `json:"lineColor"`

	// ParticleRadius is drawn at half its value.
	ParticleRadius float64 `json:"particleRadius"`
	LineWidth      float64 `json:"lineWidth"`
	CurvedLines    bool    `json:"curvedLines"`

	// Proximity is the maximum distance at which two particles are joined.
	Proximity float64 `json:"proximity"`

	Parallax bool `json:"parallax"`
	// ParallaxMultiplier divides the pointer offset; lower is stronger.
	ParallaxMultiplier float64 `json:"parallaxMultiplier"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		MinSpeedX:          DefaultMinSpeed,
		MaxSpeedX:          DefaultMaxSpeed,
		MinSpeedY:          DefaultMinSpeed,
		MaxSpeedY:          DefaultMaxSpeed,
		DirectionX:         Center,
		DirectionY:         Center,
		Density:            DefaultDensity,
		DotColor:           DefaultColor,
		LineColor:          DefaultColor,
		ParticleRadius:     DefaultParticleRadius,
		LineWidth:          DefaultLineWidth,
		CurvedLines:        false,
		Proximity:          DefaultProximity,
		Parallax:           true,
		ParallaxMultiplier: DefaultParallaxMultiplier,
		Width:              DefaultWidth,
		Height:             DefaultHeight,
	}
}

// ValidX reports whether d is a policy for the horizontal axis.
func (d Direction) ValidX() bool {
	return d == Center || d == Left || d == Right
}

// ValidY reports whether d is a policy for the vertical axis.
func (d Direction) ValidY() bool {
	return d == Center || d == Up || d == Down
}

// Normalize replaces every out-of-range option with its default.
func Normalize(c Config) Config {
	d := Default()

	if c.MinSpeedX < 0 {
		c.MinSpeedX = d.MinSpeedX
	}
	if c.MaxSpeedX < 0 {
		c.MaxSpeedX = d.MaxSpeedX
	}
	if c.MinSpeedY < 0 {
		c.MinSpeedY = d.MinSpeedY
	}
	if c.MaxSpeedY < 0 {
		c.MaxSpeedY = d.MaxSpeedY
	}
	if !c.DirectionX.ValidX() {
		c.DirectionX = d.DirectionX
	}
	if !c.DirectionY.ValidY() {
		c.DirectionY = d.DirectionY
	}
	if c.Density <= 0 {
		c.Density = d.Density
	}
	if _, err := colorful.Hex(c.DotColor); err != nil {
		c.DotColor = d.DotColor
	}
	if _, err := colorful.Hex(c.LineColor); err != nil {
		c.LineColor = d.LineColor
	}
	if c.ParticleRadius <= 0 {
		c.ParticleRadius = d.ParticleRadius
	}
	if c.LineWidth <= 0 {
		c.LineWidth = d.LineWidth
	}
	if c.Proximity < 0 {
		c.Proximity = d.Proximity
	}
	if c.ParallaxMultiplier <= 0 {
		c.ParallaxMultiplier = d.ParallaxMultiplier
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	return c
}

// DotRGBA returns the dot color. Unparsable values yield the default color.
func (c Config) DotRGBA() color.RGBA {
	return hexRGBA(c.DotColor)
}

// LineRGBA returns the join line color.
func (c Config) LineRGBA() color.RGBA {
	return hexRGBA(c.LineColor)
}

func hexRGBA(s string) color.RGBA {
	col, err := colorful.Hex(s)
	if err != nil {
		col, _ = colorful.Hex(DefaultColor)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
