package particleground

import "regexp"

// TiltRange bounds device tilt angles, in degrees, on both sides of zero.
const TiltRange = 30.0

var mobileAgent = regexp.MustCompile(`(?i)(iPhone|iPod|iPad|Android|BlackBerry|BB10|mobi|tablet|opera mini|nexus 7)`)

// Environment describes the host a group runs in.
type Environment struct {
	// UserAgent is the host identification string.
	UserAgent string
	// Orientation reports whether the host can sense device tilt.
	Orientation bool
}

// Desktop reports whether the user agent carries no known mobile marker.
func (e Environment) Desktop() bool {
	return !mobileAgent.MatchString(e.UserAgent)
}

// TiltEnabled reports whether tilt, rather than the pointer, drives parallax.
func (e Environment) TiltEnabled() bool {
	return e.Orientation && !e.Desktop()
}

func clampTilt(v float64) float64 {
	if v < -TiltRange {
		return -TiltRange
	}
	if v > TiltRange {
		return TiltRange
	}
	return v
}

// tiltToSurface maps a tilt in [-TiltRange, TiltRange] onto [0, size].
func tiltToSurface(tilt, size float64) float64 {
	return (tilt + TiltRange) * size / (2 * TiltRange)
}
