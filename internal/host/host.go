// Package host holds the pieces every window host shares: turning polled
// pointer state into panel events and painting primitives onto a
// backend's drawing calls.
package host

import (
	"image/color"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/panel"
)

// Tracker converts per-frame pointer polling into begin, move and end
// events for the first contact.
type Tracker struct {
	down bool
	last geom.Point
}

// Poll reports the pointer for one frame. It returns an event when the
// contact starts, moves or lifts.
func (t *Tracker) Poll(down bool, at geom.Point) (panel.Event, bool) {
	switch {
	case down && !t.down:
		t.down, t.last = true, at
		return panel.Begin(at), true
	case down && at != t.last:
		t.last = at
		return panel.Move(at), true
	case !down && t.down:
		t.down = false
		return panel.End(t.last), true
	}
	return panel.Event{}, false
}

// Surface is a backend's immediate mode drawing calls. Widths are stroke
// widths in the same units as coordinates.
type Surface interface {
	FillRect(r geom.Rect, c color.RGBA)
	FillCircle(c geom.Circle, col color.RGBA)
	StrokeCircle(c geom.Circle, width float64, col color.RGBA)
	Line(a, b geom.Point, width float64, col color.RGBA)
}

// Paint executes primitives back to front. Dotted lines become squares one
// stroke wide centered on each dot.
func Paint(s Surface, prims []panel.Primitive, pal panel.Palette) {
	const w = panel.StrokeWidth

	for _, p := range prims {
		col := pal.Color(p.Role())

		switch p := p.(type) {
		case panel.FillRect:
			s.FillRect(p.Rect, col)
		case panel.FillCircle:
			s.FillCircle(p.Circle, col)
		case panel.StrokeCircle:
			s.StrokeCircle(p.Circle, w, col)
		case panel.Line:
			if p.Dot > 0 {
				for _, d := range p.Dots() {
					s.FillRect(geom.R(d.X-w/2, d.Y-w/2, w, w), col)
				}
				continue
			}
			s.Line(p.From, p.To, w, col)
		case panel.Polyline:
			for i := 1; i < len(p.Points); i++ {
				s.Line(p.Points[i-1], p.Points[i], w, col)
			}
		}
	}
}
