package panel

import (
	"image/color"

	"github.com/san-kum/flightdeck/internal/geom"
)

// Role tells a host which palette entry to paint a primitive with.
type Role uint8

const (
	RoleBackground Role = iota
	RoleNormal
	RoleHighlight
)

func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleNormal:
		return "normal"
	case RoleHighlight:
		return "highlight"
	}
	return "unknown"
}

// Palette resolves roles to colors.
type Palette struct {
	Background color.RGBA
	Normal     color.RGBA
	Highlight  color.RGBA
}

// DefaultPalette is black with blue strokes and a cream highlight.
var DefaultPalette = Palette{
	Background: color.RGBA{0, 0, 0, 255},
	Normal:     color.RGBA{128, 179, 204, 255},
	Highlight:  color.RGBA{255, 255, 204, 255},
}

func (p Palette) Color(r Role) color.RGBA {
	switch r {
	case RoleHighlight:
		return p.Highlight
	case RoleNormal:
		return p.Normal
	default:
		return p.Background
	}
}

// StrokeWidth is the line width of every stroked primitive.
const StrokeWidth = 1.0

// Primitive is one drawing instruction. The set of implementations is
// closed; hosts switch on the concrete type.
type Primitive interface {
	Role() Role
	primitive()
}

type FillRect struct {
	Rect geom.Rect
	R    Role
}

type StrokeCircle struct {
	Circle geom.Circle
	R      Role
}

type FillCircle struct {
	Circle geom.Circle
	R      Role
}

// Line is a straight segment. A positive Dot draws only square dots spaced
// Dot units apart, starting at From.
type Line struct {
	From, To geom.Point
	Dot      float64
	R        Role
}

// Polyline is an open path through Points.
type Polyline struct {
	Points []geom.Point
	R      Role
}

func (p FillRect) Role() Role     { return p.R }
func (p StrokeCircle) Role() Role { return p.R }
func (p FillCircle) Role() Role   { return p.R }
func (p Line) Role() Role         { return p.R }
func (p Polyline) Role() Role     { return p.R }

func (FillRect) primitive()     {}
func (StrokeCircle) primitive() {}
func (FillCircle) primitive()   {}
func (Line) primitive()         {}
func (Polyline) primitive()     {}

// Dots returns the dot positions of a dotted line, or nil for a solid one.
func (p Line) Dots() []geom.Point {
	if p.Dot <= 0 {
		return nil
	}
	length := p.From.Dist(p.To)
	n := int(length/p.Dot) + 1
	dots := make([]geom.Point, 0, n)
	d := p.To.Sub(p.From)
	for i := 0; i < n; i++ {
		t := 0.0
		if length > 0 {
			t = float64(i) * p.Dot / length
		}
		dots = append(dots, geom.Pt(p.From.X+d.X*t, p.From.Y+d.Y*t))
	}
	return dots
}
