package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the terminal host, derived from a theme.
type Styles struct {
	Title       lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	Active      lipgloss.Style
	KeyHint     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Highlight),
		MetricLabel: lipgloss.NewStyle().Foreground(t.Muted),
		MetricValue: lipgloss.NewStyle().Foreground(t.Normal).Bold(true),
		Active: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Highlight),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(text)

	for i, c := range text {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// StepGauge renders a discrete value in [lo, hi] as a row of cells with the
// current step marked.
func StepGauge(v, lo, hi int, s Styles) string {
	var b strings.Builder
	for i := lo; i <= hi; i++ {
		switch {
		case i == v:
			b.WriteString(s.Active.Render("█"))
		case i == 0:
			b.WriteString(s.MetricValue.Render("┼"))
		default:
			b.WriteString(s.MetricLabel.Render("─"))
		}
	}
	return b.String()
}

// SparklineChart renders a mini sparkline from values
func SparklineChart(values []float64, width int, s Styles) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	// Keep the newest samples when there are more than fit.
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var result strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		result.WriteRune(chars[idx])
	}

	return s.MetricValue.Render(result.String())
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = max(0, min(v, 255))
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
