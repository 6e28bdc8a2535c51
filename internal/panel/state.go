package panel

import (
	"fmt"
	"math"
)

const (
	// MinStep and MaxStep bound every discrete control value.
	MinStep = -6
	MaxStep = 6

	// Steps is the number of discrete positions per axis.
	Steps = MaxStep - MinStep + 1

	GPerStep       = 0.25
	DegreesPerStep = 5.0

	NumButtons = 2
)

// Button indices.
const (
	ButtonTakeoff = 0 // top right
	ButtonMenu    = 1 // bottom right
)

// State is the control output of the panel. The zero value is the initial
// state: everything centered, nothing pressed.
type State struct {
	Throttle int
	Pitch    int
	Roll     int
	Pressed  [NumButtons]bool
}

func inRange(v int) bool { return v >= MinStep && v <= MaxStep }

// Valid reports whether every discrete value lies in [MinStep, MaxStep].
func (s State) Valid() bool {
	return inRange(s.Throttle) && inRange(s.Pitch) && inRange(s.Roll)
}

// GForce is the commanded vertical acceleration in g.
func (s State) GForce() float64 { return float64(s.Throttle) * GPerStep }

func (s State) PitchDegrees() float64 { return float64(s.Pitch) * DegreesPerStep }
func (s State) RollDegrees() float64  { return float64(s.Roll) * DegreesPerStep }

func (s State) PitchRadians() float64 { return s.PitchDegrees() * math.Pi / 180 }
func (s State) RollRadians() float64  { return s.RollDegrees() * math.Pi / 180 }

func (s State) String() string {
	return fmt.Sprintf("throttle=%+d (%+.2fg) pitch=%+d (%+.0f°) roll=%+d (%+.0f°) pressed=[%v %v]",
		s.Throttle, s.GForce(), s.Pitch, s.PitchDegrees(), s.Roll, s.RollDegrees(),
		s.Pressed[0], s.Pressed[1])
}
