package geom

import "math"

// Point is a position in host drawing units. Y grows downward.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type Size struct {
	W, H float64
}

func Sz(w, h float64) Size { return Size{W: w, H: h} }

// Degenerate reports a size with no drawable area.
func (s Size) Degenerate() bool {
	return !(s.W > 0 && s.H > 0)
}

func (s Size) Center() Point {
	return Point{s.W / 2, s.H / 2}
}

// Rect is an axis aligned rectangle. Containment is half-open, so rectangles
// sharing an edge never both contain a point on it.
type Rect struct {
	Min Point
	W   float64
	H   float64
}

func R(x, y, w, h float64) Rect {
	return Rect{Min: Point{x, y}, W: w, H: h}
}

func (r Rect) Max() Point { return Point{r.Min.X + r.W, r.Min.Y + r.H} }

func (r Rect) Center() Point {
	return Point{r.Min.X + r.W/2, r.Min.Y + r.H/2}
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.Min.X && p.X < r.Min.X+r.W &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.H
}

// Overlaps reports whether the interiors of r and o intersect.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Min.X < o.Min.X+o.W && o.Min.X < r.Min.X+r.W &&
		r.Min.Y < o.Min.Y+o.H && o.Min.Y < r.Min.Y+r.H
}

type Circle struct {
	Center Point
	Radius float64
}

func C(cx, cy, r float64) Circle {
	return Circle{Center: Point{cx, cy}, Radius: r}
}

func (c Circle) Empty() bool { return c.Radius <= 0 }

// Contains uses a strict radius test so two tangent circles never share a
// point.
func (c Circle) Contains(p Point) bool {
	if c.Empty() {
		return false
	}
	return c.Center.Dist(p) < c.Radius
}

// Bounds is the square enclosing the circle.
func (c Circle) Bounds() Rect {
	return R(c.Center.X-c.Radius, c.Center.Y-c.Radius, 2*c.Radius, 2*c.Radius)
}
