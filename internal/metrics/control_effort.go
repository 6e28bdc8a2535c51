package metrics

import "github.com/san-kum/flightdeck/internal/panel"

// ControlEffort is the mean total deflection, in steps, of throttle, pitch
// and roll.
type ControlEffort struct {
	name    string
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{
		name: "control_effort",
	}
}

func (c *ControlEffort) Name() string {
	return c.name
}

func (c *ControlEffort) Observe(s panel.State, t float64) {
	c.sum += float64(abs(s.Throttle) + abs(s.Pitch) + abs(s.Roll))
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
