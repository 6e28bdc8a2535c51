package panel

import "github.com/san-kum/flightdeck/internal/geom"

const (
	reticleRadius = 10.0
	wingInner     = 20.0
	wingOuter     = 120.0
	ladderDot     = 10.0
)

var ladderOffsets = [...]float64{20, 40, 60, 80}

// Render returns the drawing instructions for one frame, back to front.
// The horizon chrome is static: pitch and roll only move the highlighted
// cell in the caller's state, not the reticle.
func Render(s State, l *Layout, viewport geom.Size) []Primitive {
	prims := make([]Primitive, 0, 64)
	prims = append(prims, FillRect{Rect: geom.R(0, 0, viewport.W, viewport.H), R: RoleBackground})

	if l.Empty() || viewport.Degenerate() {
		return prims
	}

	prims = append(prims, StrokeCircle{Circle: l.Horizon, R: RoleNormal})
	prims = appendReticle(prims, viewport.Center())
	prims = appendPitchLadder(prims, viewport.Center())
	prims = appendThrottle(prims, l, s.Throttle)
	prims = appendButtons(prims, l, s.Pressed)
	prims = appendGlyphs(prims, viewport)

	return prims
}

func appendReticle(prims []Primitive, c geom.Point) []Primitive {
	return append(prims,
		StrokeCircle{Circle: geom.Circle{Center: c, Radius: reticleRadius}, R: RoleNormal},
		Line{From: geom.Pt(c.X-wingOuter, c.Y), To: geom.Pt(c.X-wingInner, c.Y), R: RoleNormal},
		Line{From: geom.Pt(c.X+wingInner, c.Y), To: geom.Pt(c.X+wingOuter, c.Y), R: RoleNormal},
	)
}

func appendPitchLadder(prims []Primitive, c geom.Point) []Primitive {
	for _, d := range ladderOffsets {
		for _, y := range [2]float64{c.Y - d, c.Y + d} {
			prims = append(prims, Line{
				From: geom.Pt(c.X-d, y),
				To:   geom.Pt(c.X+d+1, y),
				Dot:  ladderDot,
				R:    RoleNormal,
			})
		}
	}
	return prims
}

// chevron draws a caret across cell r with its base at y and apex at apexY.
func chevron(r geom.Rect, y, apexY float64, role Role) Polyline {
	return Polyline{
		Points: []geom.Point{
			geom.Pt(r.Min.X, y),
			geom.Pt(r.Min.X+r.W/2, apexY),
			geom.Pt(r.Min.X+r.W, y),
		},
		R: role,
	}
}

func appendThrottle(prims []Primitive, l *Layout, throttle int) []Primitive {
	for i := MinStep; i <= MaxStep; i++ {
		role := RoleNormal
		if i == throttle {
			role = RoleHighlight
		}
		r, _ := l.ThrottleCell(i)
		top, bottom := r.Min.Y, r.Min.Y+r.H

		switch {
		case i > 0:
			prims = append(prims, chevron(r, bottom, top, role))
		case i < 0:
			prims = append(prims, chevron(r, top, bottom, role))
		default:
			mid := r.Center().Y
			prims = append(prims,
				chevron(r, mid, bottom, role),
				chevron(r, mid, top, role))
		}
	}
	return prims
}

func appendButtons(prims []Primitive, l *Layout, pressed [NumButtons]bool) []Primitive {
	for i, c := range l.Buttons {
		if pressed[i] {
			prims = append(prims, FillCircle{Circle: c, R: RoleHighlight})
		} else {
			prims = append(prims, StrokeCircle{Circle: c, R: RoleNormal})
		}
	}
	return prims
}

// appendGlyphs draws the takeoff/landing double chevron inside the top
// button and the menu bars inside the bottom one. Both are decoration only.
func appendGlyphs(prims []Primitive, vp geom.Size) []Primitive {
	w, h := vp.W, vp.H
	for _, y := range [2]float64{40, 60} {
		prims = append(prims, Polyline{
			Points: []geom.Point{geom.Pt(w-40, y), geom.Pt(w-60, y+20), geom.Pt(w-80, y)},
			R:      RoleNormal,
		})
	}
	for _, y := range [3]float64{h - 40, h - 60, h - 80} {
		prims = append(prims, Line{From: geom.Pt(w-40, y), To: geom.Pt(w-80, y), R: RoleNormal})
	}
	return prims
}
