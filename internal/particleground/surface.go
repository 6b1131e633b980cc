// Package particleground animates a field of drifting particles joined by
// proximity lines, with pointer or tilt driven parallax.
//
// A Group draws onto a Canvas and paces itself with a Scheduler, both
// supplied by the Element it is attached to. Groups are created and looked up
// through a Registry owned by the caller.
package particleground

import "image/color"

// Style is the paint state applied to a canvas before drawing.
type Style struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
}

// Canvas is the drawing surface of an element.
type Canvas interface {
	// SetSize sets the logical surface size in pixels.
	SetSize(width, height float64)
	SetStyle(s Style)
	Clear()
	// FillCircle paints a disc in the fill color.
	FillCircle(x, y, r float64)
	// Line strokes a straight segment in the stroke color.
	Line(x0, y0, x1, y1 float64)
	// Curve strokes a quadratic curve from (x0,y0) to (x1,y1) with control
	// point (cx,cy).
	Curve(x0, y0, cx, cy, x1, y1 float64)
}

// Releaser is implemented by canvases that hold resources to free when
// their group is destroyed.
type Releaser interface {
	Release()
}

// FrameID identifies a requested frame. The zero value is never issued.
type FrameID uint64

// Scheduler paces frames, typically once per display refresh.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Element is a display region a group can be attached to. Implementations
// must be comparable; pointer types are the norm. A missing capability must
// be returned as an untyped nil, not as a nil pointer wrapped in the
// interface.
type Element interface {
	// Canvas returns nil when the element cannot be drawn on.
	Canvas() Canvas
	// Frames returns nil when the element cannot pace frames.
	Frames() Scheduler
}

// InputSource is implemented by elements that deliver pointer and device
// orientation events. The returned functions unsubscribe.
type InputSource interface {
	OnPointerMove(fn func(x, y float64)) (cancel func())
	OnOrientation(fn func(beta, gamma float64)) (cancel func())
}
