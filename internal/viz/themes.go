package viz

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/flightdeck/internal/panel"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

// Theme defines the panel palette and the terminal chrome around it.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Normal     lipgloss.Color
	Highlight  lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes
var (
	ThemeChiindii = Theme{
		Name:       "chiindii",
		Background: lipgloss.Color("#000000"),
		Normal:     lipgloss.Color("#80b3cc"), // blue 0.5, 0.7, 0.8
		Highlight:  lipgloss.Color("#ffffcc"), // cream 1.0, 1.0, 0.8
		Text:       lipgloss.Color("#ffffcc"),
		Muted:      lipgloss.Color("#4d6b7a"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Background: lipgloss.Color("#001100"),
		Normal:     lipgloss.Color("#00cc00"),
		Highlight:  lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Background: lipgloss.Color("#000000"),
		Normal:     lipgloss.Color("#888888"),
		Highlight:  lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#555555"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"),
		Normal:     lipgloss.Color("#00a8cc"),
		Highlight:  lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	Themes = []Theme{
		ThemeChiindii,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return ThemeChiindii, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Palette converts the theme to the colors hosts paint primitives with.
func (t Theme) Palette() panel.Palette {
	return panel.Palette{
		Background: rgba(t.Background),
		Normal:     rgba(t.Normal),
		Highlight:  rgba(t.Highlight),
	}
}

func (t Theme) color(r panel.Role) lipgloss.Color {
	switch r {
	case panel.RoleHighlight:
		return t.Highlight
	case panel.RoleNormal:
		return t.Normal
	default:
		return t.Background
	}
}

func rgba(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// NextTheme returns the theme after name, wrapping around. Unknown names
// start over at the first theme.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
