// Package metrics reduces a stream of panel states to scalar session
// figures. Every metric observes each state in order and can be reset.
package metrics

import "github.com/san-kum/flightdeck/internal/panel"

type Metric interface {
	Name() string
	Observe(s panel.State, t float64)
	Value() float64
	Reset()
}

// Axis selects one control value from a state.
type Axis func(panel.State) int

var (
	Throttle Axis = func(s panel.State) int { return s.Throttle }
	Pitch    Axis = func(s panel.State) int { return s.Pitch }
	Roll     Axis = func(s panel.State) int { return s.Roll }
)

// Default is the set stored with every recorded session.
func Default() []Metric {
	return []Metric{
		NewDuration(),
		NewMin("throttle_min", Throttle),
		NewMax("throttle_max", Throttle),
		NewPresses("takeoff_presses", panel.ButtonTakeoff),
		NewPresses("menu_presses", panel.ButtonMenu),
		NewControlEffort(),
		NewStability(2),
	}
}

type Duration struct {
	first, last float64
	samples     int
}

func NewDuration() *Duration { return &Duration{} }

func (d *Duration) Name() string { return "duration" }

func (d *Duration) Observe(s panel.State, t float64) {
	if d.samples == 0 {
		d.first = t
	}
	d.last = t
	d.samples++
}

func (d *Duration) Value() float64 { return d.last - d.first }

func (d *Duration) Reset() { *d = Duration{} }
