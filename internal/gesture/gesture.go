// Package gesture replays scripted pointer input against a panel.
//
// A script is YAML:
//
//	name: climb
//	viewport: {width: 300, height: 300}
//	steps:
//	  - {phase: begin, at: [40, 150]}
//	  - {phase: drag, from: [40, 150], to: [40, 40], moves: 4}
//	  - {phase: end}
//	  - {phase: tap, at: [240, 60]}
//
// begin, move and end take an optional point; without one they produce an
// event with no contacts. tap expands to begin and end at one point, drag to
// begin, evenly spaced moves and end.
package gesture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/flightdeck/internal/config"
	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/panel"
)

var (
	ErrUnknownPhase = errors.New("gesture: unknown phase")
	ErrEmptyScript  = errors.New("gesture: script has no steps")
	ErrBadPoint     = errors.New("gesture: point needs two coordinates")
)

type Script struct {
	Name     string                `yaml:"name"`
	Viewport config.ViewportConfig `yaml:"viewport"`
	Steps    []Step                `yaml:"steps"`
}

type Step struct {
	Phase string    `yaml:"phase"`
	At    []float64 `yaml:"at,omitempty"`
	From  []float64 `yaml:"from,omitempty"`
	To    []float64 `yaml:"to,omitempty"`
	Moves int       `yaml:"moves,omitempty"`
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("gesture: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks every step and fills in a missing viewport with the
// default device size.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	if s.Viewport.Width == 0 && s.Viewport.Height == 0 {
		s.Viewport = config.ViewportConfig{Width: config.DefaultWidth, Height: config.DefaultHeight}
	}

	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	optional := func(v []float64) error {
		if v != nil && len(v) != 2 {
			return ErrBadPoint
		}
		return nil
	}
	required := func(v []float64) error {
		if len(v) != 2 {
			return ErrBadPoint
		}
		return nil
	}

	switch st.Phase {
	case "begin", "move", "end":
		return optional(st.At)
	case "tap":
		return required(st.At)
	case "drag":
		if err := required(st.From); err != nil {
			return err
		}
		return required(st.To)
	}
	return fmt.Errorf("%w: %q", ErrUnknownPhase, st.Phase)
}

func (s *Script) Size() geom.Size {
	return geom.Sz(s.Viewport.Width, s.Viewport.Height)
}

// Events expands the script into the pointer events a host would deliver.
func (s *Script) Events() []panel.Event {
	var evs []panel.Event
	for _, st := range s.Steps {
		evs = append(evs, st.events()...)
	}
	return evs
}

func (st Step) events() []panel.Event {
	switch st.Phase {
	case "begin":
		return []panel.Event{panel.Begin(points(st.At)...)}
	case "move":
		return []panel.Event{panel.Move(points(st.At)...)}
	case "end":
		return []panel.Event{panel.End(points(st.At)...)}
	case "tap":
		p := pt(st.At)
		return []panel.Event{panel.Begin(p), panel.End(p)}
	case "drag":
		from, to := pt(st.From), pt(st.To)
		n := max(st.Moves, 1)
		evs := []panel.Event{panel.Begin(from)}
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			evs = append(evs, panel.Move(geom.Pt(
				from.X+(to.X-from.X)*t,
				from.Y+(to.Y-from.Y)*t,
			)))
		}
		return append(evs, panel.End(to))
	}
	return nil
}

func pt(v []float64) geom.Point { return geom.Pt(v[0], v[1]) }

func points(v []float64) []geom.Point {
	if v == nil {
		return nil
	}
	return []geom.Point{pt(v)}
}

// Outcome is the panel's response to one scripted event.
type Outcome struct {
	Event   panel.Event
	Changed bool
	State   panel.State
}

// Play resizes p to the script viewport and feeds it every event.
func Play(p *panel.Panel, s *Script) []Outcome {
	p.Resize(s.Size())

	evs := s.Events()
	out := make([]Outcome, 0, len(evs))
	for _, ev := range evs {
		changed := p.HandlePointer(ev)
		out = append(out, Outcome{Event: ev, Changed: changed, State: p.State()})
	}
	return out
}
