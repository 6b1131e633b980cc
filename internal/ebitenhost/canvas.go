package ebitenhost

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particleground/internal/geom"
	"github.com/olivierh59500/particleground/internal/particleground"
)

// curveTolerance is the longest straight segment used to approximate a
// curved join, in pixels.
const curveTolerance = 6.0

// imageCanvas draws onto an offscreen image that the window blits to the
// screen every frame.
type imageCanvas struct {
	img       *ebiten.Image
	fill      color.Color
	stroke    color.Color
	lineWidth float32
	antialias bool
}

func newImageCanvas(antialias bool) *imageCanvas {
	return &imageCanvas{
		fill:      color.White,
		stroke:    color.White,
		lineWidth: 1,
		antialias: antialias,
	}
}

// SetSize reallocates the offscreen image when the size changes.
func (c *imageCanvas) SetSize(width, height float64) {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w < 1 || h < 1 {
		return
	}
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

// SetStyle keeps the previous value for unset fields.
func (c *imageCanvas) SetStyle(s particleground.Style) {
	if s.Fill != nil {
		c.fill = s.Fill
	}
	if s.Stroke != nil {
		c.stroke = s.Stroke
	}
	if s.LineWidth > 0 {
		c.lineWidth = float32(s.LineWidth)
	}
}

// Clear wipes the offscreen image.
func (c *imageCanvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

// FillCircle draws a filled disc in the fill color.
func (c *imageCanvas) FillCircle(x, y, r float64) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), c.fill, c.antialias)
}

// Line strokes a segment in the stroke color.
func (c *imageCanvas) Line(x0, y0, x1, y1 float64) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), c.lineWidth, c.stroke, c.antialias)
}

// Curve strokes the curve as short straight segments.
func (c *imageCanvas) Curve(x0, y0, cx, cy, x1, y1 float64) {
	if c.img == nil {
		return
	}
	pts := geom.FlattenQuad(geom.Point{X: x0, Y: y0}, geom.Point{X: cx, Y: cy}, geom.Point{X: x1, Y: y1}, 0, curveTolerance)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(c.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), c.lineWidth, c.stroke, c.antialias)
	}
}

// Release frees the offscreen image.
func (c *imageCanvas) Release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

// Image returns the offscreen image, nil before the first SetSize.
func (c *imageCanvas) Image() *ebiten.Image {
	return c.img
}
