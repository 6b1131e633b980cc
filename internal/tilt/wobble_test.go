package tilt

import (
	"math"
	"testing"
)

func TestWobbleDeterministic(t *testing.T) {
	a := NewWobble(42)
	b := NewWobble(42)

	for i := 0; i < 50; i++ {
		ab, ag := a.Next()
		bb, bg := b.Next()
		if ab != bb || ag != bg {
			t.Fatalf("step %d: sequences diverged (%v,%v) vs (%v,%v)", i, ab, ag, bb, bg)
		}
	}
}

func TestWobbleMoves(t *testing.T) {
	w := NewWobble(7)
	w.Speed = 0.05

	first, _ := w.Next()
	moved := false
	for i := 0; i < 200; i++ {
		beta, gamma := w.Next()
		if math.IsNaN(beta) || math.IsNaN(gamma) {
			t.Fatalf("step %d produced NaN", i)
		}
		if beta != first {
			moved = true
		}
	}
	if !moved {
		t.Error("wobble never changed")
	}
}

func TestWobbleZeroAmplitude(t *testing.T) {
	w := NewWobble(3)
	w.Amplitude = 0

	for i := 0; i < 10; i++ {
		if beta, gamma := w.Next(); beta != 0 || gamma != 0 {
			t.Fatalf("expected zero tilt, got %v/%v", beta, gamma)
		}
	}
}
