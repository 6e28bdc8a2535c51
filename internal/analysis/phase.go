package analysis

import (
	"strings"

	"github.com/san-kum/flightdeck/internal/panel"
)

// AttitudeMap counts how many states held each attitude cell, indexed
// [pitch-MinStep][roll-MinStep].
type AttitudeMap [panel.Steps][panel.Steps]int

func NewAttitudeMap(states []panel.State) *AttitudeMap {
	var m AttitudeMap
	for _, s := range states {
		if !s.Valid() {
			continue
		}
		m[s.Pitch-panel.MinStep][s.Roll-panel.MinStep]++
	}
	return &m
}

func (m *AttitudeMap) At(pitch, roll int) int {
	return m[pitch-panel.MinStep][roll-panel.MinStep]
}

var shades = []rune{'░', '▒', '▓', '█'}

// String draws the map the way the cells sit on the panel: pitch up and
// roll right at the top left. Empty cells show the level axes.
func (m *AttitudeMap) String() string {
	peak := 0
	for _, row := range m {
		for _, n := range row {
			peak = max(peak, n)
		}
	}

	var sb strings.Builder
	for pitch := panel.MaxStep; pitch >= panel.MinStep; pitch-- {
		for roll := panel.MaxStep; roll >= panel.MinStep; roll-- {
			n := m.At(pitch, roll)
			c := ' '
			switch {
			case n > 0:
				c = shades[(n*len(shades)-1)/peak]
			case pitch == 0 && roll == 0:
				c = '┼'
			case roll == 0:
				c = '│'
			case pitch == 0:
				c = '─'
			}
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
