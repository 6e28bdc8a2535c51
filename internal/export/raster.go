package export

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/panel"
)

// Raster paints one frame of primitives into an RGBA image sized to the
// viewport, rounded up to whole pixels.
func Raster(prims []panel.Primitive, size geom.Size, pal panel.Palette) *image.RGBA {
	if size.Degenerate() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	w, h := int(math.Ceil(size.W)), int(math.Ceil(size.H))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)

	for _, p := range prims {
		z.Reset(w, h)
		z.DrawOp = draw.Over
		if !path(z, p) {
			continue
		}
		z.Draw(img, img.Bounds(), image.NewUniform(pal.Color(p.Role())), image.Point{})
	}
	return img
}

// path adds the outline of p to z and reports whether anything was added.
func path(z *vector.Rasterizer, p panel.Primitive) bool {
	const half = panel.StrokeWidth / 2

	switch p := p.(type) {
	case panel.FillRect:
		if p.Rect.Empty() {
			return false
		}
		quad(z, p.Rect.Min, geom.Pt(p.Rect.Max().X, p.Rect.Min.Y), p.Rect.Max(), geom.Pt(p.Rect.Min.X, p.Rect.Max().Y))
	case panel.FillCircle:
		if p.Circle.Empty() {
			return false
		}
		disc(z, p.Circle.Center, p.Circle.Radius, false)
	case panel.StrokeCircle:
		if p.Circle.Empty() {
			return false
		}
		disc(z, p.Circle.Center, p.Circle.Radius+half, false)
		if inner := p.Circle.Radius - half; inner > 0 {
			disc(z, p.Circle.Center, inner, true)
		}
	case panel.Line:
		if p.Dot > 0 {
			for _, d := range p.Dots() {
				quad(z, geom.Pt(d.X-half, d.Y-half), geom.Pt(d.X+half, d.Y-half),
					geom.Pt(d.X+half, d.Y+half), geom.Pt(d.X-half, d.Y+half))
			}
			return true
		}
		return segment(z, p.From, p.To)
	case panel.Polyline:
		drawn := false
		for i := 1; i < len(p.Points); i++ {
			drawn = segment(z, p.Points[i-1], p.Points[i]) || drawn
		}
		return drawn
	default:
		return false
	}
	return true
}

// segment strokes a from-to segment as a quad with square caps.
func segment(z *vector.Rasterizer, a, b geom.Point) bool {
	const half = panel.StrokeWidth / 2
	l := a.Dist(b)
	if l == 0 {
		return false
	}
	dx, dy := (b.X-a.X)/l*half, (b.Y-a.Y)/l*half
	a = geom.Pt(a.X-dx, a.Y-dy)
	b = geom.Pt(b.X+dx, b.Y+dy)
	quad(z,
		geom.Pt(a.X-dy, a.Y+dx), geom.Pt(b.X-dy, b.Y+dx),
		geom.Pt(b.X+dy, b.Y-dx), geom.Pt(a.X+dy, a.Y-dx))
	return true
}

// quad adds a closed four point path. Callers keep a consistent winding.
func quad(z *vector.Rasterizer, a, b, c, d geom.Point) {
	z.MoveTo(float32(a.X), float32(a.Y))
	z.LineTo(float32(b.X), float32(b.Y))
	z.LineTo(float32(c.X), float32(c.Y))
	z.LineTo(float32(d.X), float32(d.Y))
	z.ClosePath()
}

// disc adds a polygonal circle. A reversed disc cancels the coverage of a
// larger one around the same center, which leaves a ring.
func disc(z *vector.Rasterizer, c geom.Point, r float64, reverse bool) {
	n := max(32, int(r*math.Pi/2))
	step := 2 * math.Pi / float64(n)
	if reverse {
		step = -step
	}
	z.MoveTo(float32(c.X+r), float32(c.Y))
	for i := 1; i < n; i++ {
		a := float64(i) * step
		z.LineTo(float32(c.X+r*math.Cos(a)), float32(c.Y+r*math.Sin(a)))
	}
	z.ClosePath()
}
