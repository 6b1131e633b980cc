// Package tilt synthesizes device orientation for hosts without a sensor.
package tilt

import "github.com/aquilax/go-perlin"

const (
	DefaultSpeed     = 0.01
	DefaultAmplitude = 60.0
)

// Wobble produces a slowly wandering beta/gamma pair from perlin noise.
// Values are in degrees and may exceed the tilt range; consumers clamp.
type Wobble struct {
	Speed     float64
	Amplitude float64

	beta  *perlin.Perlin
	gamma *perlin.Perlin
	t     float64
}

// NewWobble returns a wobble whose sequence is fixed by seed.
func NewWobble(seed int64) *Wobble {
	return &Wobble{
		Speed:     DefaultSpeed,
		Amplitude: DefaultAmplitude,
		beta:      perlin.NewPerlin(2, 2, 3, seed),
		gamma:     perlin.NewPerlin(2, 2, 3, seed+1),
		// noise is zero on integer lattice points
		t: 0.5,
	}
}

// Next advances the wobble one step and returns the angles.
func (w *Wobble) Next() (beta, gamma float64) {
	w.t += w.Speed
	return w.beta.Noise1D(w.t) * w.Amplitude, w.gamma.Noise1D(w.t) * w.Amplitude
}
