package metrics

import "github.com/san-kum/flightdeck/internal/panel"

// Extremum tracks the smallest or largest value of one axis.
type Extremum struct {
	name    string
	axis    Axis
	larger  bool
	value   int
	samples int
}

func NewMin(name string, axis Axis) *Extremum {
	return &Extremum{name: name, axis: axis}
}

func NewMax(name string, axis Axis) *Extremum {
	return &Extremum{name: name, axis: axis, larger: true}
}

func (e *Extremum) Name() string { return e.name }

func (e *Extremum) Observe(s panel.State, t float64) {
	v := e.axis(s)
	if e.samples == 0 || (e.larger && v > e.value) || (!e.larger && v < e.value) {
		e.value = v
	}
	e.samples++
}

func (e *Extremum) Value() float64 { return float64(e.value) }

func (e *Extremum) Reset() {
	e.value = 0
	e.samples = 0
}

// Presses counts how often a button went down.
type Presses struct {
	name   string
	button int
	down   bool
	count  int
}

func NewPresses(name string, button int) *Presses {
	return &Presses{name: name, button: button}
}

func (p *Presses) Name() string { return p.name }

func (p *Presses) Observe(s panel.State, t float64) {
	down := s.Pressed[p.button]
	if down && !p.down {
		p.count++
	}
	p.down = down
}

func (p *Presses) Value() float64 { return float64(p.count) }

func (p *Presses) Reset() {
	p.down = false
	p.count = 0
}
