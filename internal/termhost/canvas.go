package termhost

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particleground/internal/geom"
	"github.com/olivierh59500/particleground/internal/particleground"
)

const (
	DotRune  = '●'
	LineRune = '·'

	// curveTolerance is measured in cells.
	curveTolerance = 1.5
)

// cellCanvas rasterizes surface coordinates onto the terminal grid. The
// surface is scaled to fill the screen whatever its pixel size.
type cellCanvas struct {
	screen tcell.Screen

	width, height float64
	cols, rows    int
	grid          []rune

	dot  tcell.Style
	line tcell.Style
}

func newCellCanvas(screen tcell.Screen) *cellCanvas {
	c := &cellCanvas{
		screen: screen,
		dot:    tcell.StyleDefault,
		line:   tcell.StyleDefault,
	}
	c.relayout()
	return c
}

// relayout picks up the current terminal size.
func (c *cellCanvas) relayout() {
	c.cols, c.rows = c.screen.Size()
	c.grid = make([]rune, c.cols*c.rows)
}

// SetSize sets the surface size that is scaled onto the grid.
func (c *cellCanvas) SetSize(width, height float64) {
	c.width, c.height = width, height
}

// SetStyle maps the fill and stroke colors to cell styles.
func (c *cellCanvas) SetStyle(s particleground.Style) {
	if s.Fill != nil {
		c.dot = tcell.StyleDefault.Foreground(tcellColor(s.Fill))
	}
	if s.Stroke != nil {
		c.line = tcell.StyleDefault.Foreground(tcellColor(s.Stroke))
	}
}

// Clear blanks the screen and the rune grid.
func (c *cellCanvas) Clear() {
	c.screen.Clear()
	for i := range c.grid {
		c.grid[i] = 0
	}
}

// FillCircle marks the cell under the centre; r is below cell resolution.
func (c *cellCanvas) FillCircle(x, y, r float64) {
	cx, cy := c.toCell(x, y)
	c.set(cx, cy, DotRune, c.dot)
}

// Line rasterizes a segment between the cells of its end points.
func (c *cellCanvas) Line(x0, y0, x1, y1 float64) {
	ax, ay := c.toCell(x0, y0)
	bx, by := c.toCell(x1, y1)
	c.segment(ax, ay, bx, by)
}

// Curve strokes the flattened curve cell by cell.
func (c *cellCanvas) Curve(x0, y0, cx, cy, x1, y1 float64) {
	ax, ay := c.toCellF(x0, y0)
	kx, ky := c.toCellF(cx, cy)
	bx, by := c.toCellF(x1, y1)
	pts := geom.FlattenQuad(geom.Point{X: ax, Y: ay}, geom.Point{X: kx, Y: ky}, geom.Point{X: bx, Y: by}, 0, curveTolerance)
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		c.segment(int(math.Floor(p.X)), int(math.Floor(p.Y)), int(math.Floor(q.X)), int(math.Floor(q.Y)))
	}
}

// segment draws a Bresenham line between two cells, keeping dots on top.
func (c *cellCanvas) segment(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if c.at(x0, y0) != DotRune {
			c.set(x0, y0, LineRune, c.line)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *cellCanvas) toCellF(x, y float64) (float64, float64) {
	if c.width <= 0 || c.height <= 0 {
		return 0, 0
	}
	return x / c.width * float64(c.cols), y / c.height * float64(c.rows)
}

func (c *cellCanvas) toCell(x, y float64) (int, int) {
	fx, fy := c.toCellF(x, y)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// toSurface maps the centre of a cell back to surface coordinates.
func (c *cellCanvas) toSurface(col, row int) (float64, float64) {
	if c.cols == 0 || c.rows == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) * c.width / float64(c.cols), (float64(row) + 0.5) * c.height / float64(c.rows)
}

func (c *cellCanvas) at(x, y int) rune {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return 0
	}
	return c.grid[y*c.cols+x]
}

func (c *cellCanvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.grid[y*c.cols+x] = r
	c.screen.SetContent(x, y, r, nil, style)
}

func tcellColor(col color.Color) tcell.Color {
	r, g, b, _ := col.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
