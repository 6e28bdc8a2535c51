package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/flightdeck/internal/panel"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille dot canvas. Cells touched while the highlight pen is
// down render in the theme's highlight color.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Marked        [][]bool

	pen bool
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Marked: make([][]bool, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Marked[i] = make([]bool, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// Dots returns the canvas size in sub-pixels.
func (c *Canvas) Dots() (w, h int) { return c.Width * 2, c.Height * 4 }

// Highlight lifts or lowers the highlight pen.
func (c *Canvas) Highlight(on bool) { c.pen = on }

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if c.pen {
		c.Marked[row][col] = true
	}
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Marked[i][j] = false
		}
	}
	c.pen = false
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm.
func (c *Canvas) DrawCircle(cx, cy, r int) {
	if r <= 0 {
		c.Set(cx, cy)
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y)
		c.Set(cx-x, cy+y)
		c.Set(cx+x, cy-y)
		c.Set(cx-x, cy-y)
		c.Set(cx+y, cy+x)
		c.Set(cx-y, cy+x)
		c.Set(cx+y, cy-x)
		c.Set(cx-y, cy-x)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle fills a disc of radius r.
func (c *Canvas) FillCircle(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		half := int(math.Sqrt(float64(r*r - dy*dy)))
		for dx := -half; dx <= half; dx++ {
			c.Set(cx+dx, cy+dy)
		}
	}
}

// FillRect fills w by h sub-pixels starting at (x, y).
func (c *Canvas) FillRect(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.Set(i, j)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors the canvas with the theme. Runs of cells sharing a color
// are styled together.
func (c *Canvas) Render(t Theme) string {
	normal := lipgloss.NewStyle().Foreground(t.color(panel.RoleNormal))
	high := lipgloss.NewStyle().Foreground(t.color(panel.RoleHighlight))

	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Marked[i][j] == c.Marked[i][start] {
				continue
			}
			style := normal
			if c.Marked[i][start] {
				style = high
			}
			b.WriteString(style.Render(string(row[start:j])))
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Rasterize draws panel primitives onto the canvas. One sub-pixel covers
// scale panel units. Background fills are left to the terminal.
func Rasterize(c *Canvas, prims []panel.Primitive, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	dot := func(v float64) int { return int(math.Floor(v / scale)) }

	for _, p := range prims {
		if p.Role() == panel.RoleBackground {
			continue
		}
		c.Highlight(p.Role() == panel.RoleHighlight)

		switch p := p.(type) {
		case panel.FillRect:
			r := p.Rect
			c.FillRect(dot(r.Min.X), dot(r.Min.Y), dot(r.W), dot(r.H))
		case panel.StrokeCircle:
			c.DrawCircle(dot(p.Circle.Center.X), dot(p.Circle.Center.Y), dot(p.Circle.Radius))
		case panel.FillCircle:
			c.FillCircle(dot(p.Circle.Center.X), dot(p.Circle.Center.Y), dot(p.Circle.Radius))
		case panel.Line:
			if p.Dot > 0 {
				for _, d := range p.Dots() {
					c.Set(dot(d.X), dot(d.Y))
				}
				continue
			}
			c.DrawLine(dot(p.From.X), dot(p.From.Y), dot(p.To.X), dot(p.To.Y))
		case panel.Polyline:
			for i := 1; i < len(p.Points); i++ {
				a, b := p.Points[i-1], p.Points[i]
				c.DrawLine(dot(a.X), dot(a.Y), dot(b.X), dot(b.Y))
			}
		}
	}
	c.Highlight(false)
}

// CanvasFor sizes a canvas in cells to hold a viewport at the given scale.
func CanvasFor(w, h, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	cols := int(math.Ceil(w / scale / 2))
	rows := int(math.Ceil(h / scale / 4))
	return NewCanvas(cols, rows)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
