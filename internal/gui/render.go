package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/flightdeck/internal/geom"
)

// surface draws onto the current raylib frame.
type surface struct{}

const circleSegments = 64

func vec(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func (surface) FillRect(r geom.Rect, c color.RGBA) {
	rl.DrawRectangleV(vec(r.Min), rl.NewVector2(float32(r.W), float32(r.H)), c)
}

func (surface) FillCircle(c geom.Circle, col color.RGBA) {
	rl.DrawCircleV(vec(c.Center), float32(c.Radius), col)
}

func (surface) StrokeCircle(c geom.Circle, w float64, col color.RGBA) {
	inner := max(c.Radius-w/2, 0)
	rl.DrawRing(vec(c.Center), float32(inner), float32(c.Radius+w/2), 0, 360, circleSegments, col)
}

func (surface) Line(a, b geom.Point, w float64, col color.RGBA) {
	rl.DrawLineEx(vec(a), vec(b), float32(w), col)
}
