package metrics

import "github.com/san-kum/flightdeck/internal/panel"

// Stability is the fraction of states whose pitch and roll both stay within
// threshold steps of level.
type Stability struct {
	name       string
	threshold  int
	violations int
	samples    int
}

func NewStability(threshold int) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(st panel.State, t float64) {
	s.samples++
	if abs(st.Pitch) > s.threshold || abs(st.Roll) > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
