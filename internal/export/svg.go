package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/panel"
)

// SVG serializes one frame of primitives as a standalone SVG document.
func SVG(prims []panel.Primitive, size geom.Size, pal panel.Palette) string {
	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<g stroke-width="%.1f" fill="none">
`, size.W, size.H, size.W, size.H, panel.StrokeWidth))

	for _, p := range prims {
		col := hex(pal.Color(p.Role()))

		switch p := p.(type) {
		case panel.FillRect:
			r := p.Rect
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="none"/>
`, r.Min.X, r.Min.Y, r.W, r.H, col))
		case panel.StrokeCircle:
			c := p.Circle
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" stroke="%s"/>
`, c.Center.X, c.Center.Y, c.Radius, col))
		case panel.FillCircle:
			c := p.Circle
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="none"/>
`, c.Center.X, c.Center.Y, c.Radius, col))
		case panel.Line:
			// Zero length dashes with square caps leave one square per gap.
			dash := ""
			if p.Dot > 0 {
				dash = fmt.Sprintf(` stroke-dasharray="0 %.1f" stroke-linecap="square"`, p.Dot)
			}
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"%s/>
`, p.From.X, p.From.Y, p.To.X, p.To.Y, col, dash))
		case panel.Polyline:
			if len(p.Points) == 0 {
				continue
			}
			pts := make([]string, len(p.Points))
			for i, pt := range p.Points {
				pts[i] = fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y)
			}
			sb.WriteString(fmt.Sprintf(`<polyline points="%s" stroke="%s"/>
`, strings.Join(pts, " "), col))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
