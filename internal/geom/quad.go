// Package geom flattens curves into polylines for raster hosts that can only
// stroke straight segments.
package geom

import "math"

// Point is a position on a drawing surface.
type Point struct {
	X, Y float64
}

// QuadPoint evaluates the quadratic Bezier p0-c-p1 at t in [0,1].
func QuadPoint(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// FlattenQuad returns segments+1 points along the curve, both end points
// included. A non-positive segment count is derived from the curve length
// so that no segment is much longer than tolerance.
func FlattenQuad(p0, c, p1 Point, segments int, tolerance float64) []Point {
	if segments <= 0 {
		segments = SegmentsFor(p0, c, p1, tolerance)
	}
	pts := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		pts = append(pts, QuadPoint(p0, c, p1, float64(i)/float64(segments)))
	}
	return pts
}

// SegmentsFor estimates how many segments keep each one under tolerance,
// using the control polygon length as an upper bound of the arc length.
func SegmentsFor(p0, c, p1 Point, tolerance float64) int {
	if tolerance <= 0 {
		tolerance = 1
	}
	l := math.Hypot(c.X-p0.X, c.Y-p0.Y) + math.Hypot(p1.X-c.X, p1.Y-c.Y)
	n := int(math.Ceil(l / tolerance))
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}
	return n
}
