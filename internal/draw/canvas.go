package draw

import (
	"io"
	"math"
	"strconv"
	"unicode/utf8"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Shapes are given in logical coordinates and scaled to terminal pixels.
// Render only emits cells that changed since the previous frame.
type Canvas struct {
	cols       int    // Terminal columns
	rows       int    // Terminal rows
	pixelRows  int    // rows * 2
	pixels     []bool // [y*cols + x], current frame
	prev       []rune // Cell drawn at [row*cols + col] by the last Render
	fullRedraw bool

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offset of the render area
	offsetCol int
	offsetRow int

	out []byte // Render scratch
}

// NewCanvas creates a canvas of cols×rows terminal cells showing a
// logicalWidth×logicalHeight coordinate space.
func NewCanvas(cols, rows int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(cols, rows)
	return c
}

// Resize updates the terminal dimensions while keeping the logical size.
// A real size change forces the next Render to redraw every cell.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols = cols
		c.rows = rows
		c.pixelRows = rows * 2
		c.pixels = make([]bool, c.pixelRows*cols)
		c.prev = make([]rune, rows*cols)
		c.fullRedraw = true
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(c.pixelRows) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.fullRedraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// ForceRedraw makes the next Render emit every cell, e.g. after the terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.fullRedraw = true
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Cols returns the terminal column count.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal row count.
func (c *Canvas) Rows() int { return c.rows }

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Pixel reports whether the pixel at terminal pixel coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.pixelRows {
		return false
	}
	return c.pixels[y*c.cols+x]
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.pixelRows {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// Plot sets the pixel under a logical point.
func (c *Canvas) Plot(p Point) {
	c.setPixel(c.toPixel(p))
}

// Line draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) Line(p1, p2 Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws the closed outline through points.
func (c *Canvas) Polygon(points []Point) {
	if len(points) < 2 {
		return
	}
	for i := range points {
		c.Line(points[i], points[(i+1)%len(points)])
	}
}

// Circle draws the outline of a circle of logical radius r.
// The segment count grows with the on-screen size.
func (c *Canvas) Circle(center Point, r float64) {
	if r <= 0 {
		c.Plot(center)
		return
	}
	pixels := 2 * math.Pi * r * max(c.scaleX, c.scaleY)
	segments := int(max(8, min(64, pixels/2)))

	prev := Point{X: center.X + r, Y: center.Y}
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		next := Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
		c.Line(prev, next)
		prev = next
	}
}

// Disc fills a circle of logical radius r.
func (c *Canvas) Disc(center Point, r float64) {
	cx, cy := center.X*c.scaleX, center.Y*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx <= 0 || ry <= 0 {
		c.Plot(center)
		return
	}

	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		dy := (float64(y) - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for x := int(math.Ceil(cx - half)); x <= int(math.Floor(cx+half)); x++ {
			c.setPixel(x, y)
		}
	}
	c.Plot(center)
}

// LogicalToTerminal converts a logical point to a 1-based terminal (col, row)
// relative to the canvas.
func (c *Canvas) LogicalToTerminal(p Point) (col, row int) {
	px, py := c.toPixel(p)
	return px + 1, py/2 + 1
}

func (c *Canvas) cell(row, col int) rune {
	top := c.pixels[row*2*c.cols+col]
	bottom := c.pixels[(row*2+1)*c.cols+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return ' '
	}
}

// Render writes the cells that changed since the last Render to w.
func (c *Canvas) Render(w io.Writer) error {
	out := c.out[:0]
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			ch := c.cell(row, col)
			i := row*c.cols + col
			if !c.fullRedraw && c.prev[i] == ch {
				continue
			}
			if c.fullRedraw && ch == ' ' {
				c.prev[i] = ch
				continue
			}
			c.prev[i] = ch

			out = append(out, "\033["...)
			out = strconv.AppendInt(out, int64(row+1+c.offsetRow), 10)
			out = append(out, ';')
			out = strconv.AppendInt(out, int64(col+1+c.offsetCol), 10)
			out = append(out, 'H')
			out = utf8.AppendRune(out, ch)
		}
	}
	c.out = out
	c.fullRedraw = false

	if len(out) == 0 {
		return nil
	}
	_, err := w.Write(out)
	return err
}
