package panel

import (
	"fmt"

	"github.com/san-kum/flightdeck/internal/geom"
)

type Phase uint8

const (
	PhaseBegin Phase = iota
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Event is one pointer update from the host. Hosts may report several
// contacts; only the first is used.
type Event struct {
	Phase  Phase
	Points []geom.Point
}

func Begin(pts ...geom.Point) Event { return Event{Phase: PhaseBegin, Points: pts} }
func Move(pts ...geom.Point) Event  { return Event{Phase: PhaseMove, Points: pts} }
func End(pts ...geom.Point) Event   { return Event{Phase: PhaseEnd, Points: pts} }

// Point returns the first contact, if any.
func (e Event) Point() (geom.Point, bool) {
	if len(e.Points) == 0 {
		return geom.Point{}, false
	}
	return e.Points[0], true
}

type MapperState uint8

const (
	Idle MapperState = iota
	Interacting
)

func (s MapperState) String() string {
	if s == Interacting {
		return "interacting"
	}
	return "idle"
}

// InputMapper turns a pointer event stream into control values. It holds
// only the gesture phase; the state it writes belongs to the caller.
type InputMapper struct {
	state MapperState
}

func (m *InputMapper) State() MapperState { return m.state }

// Handle applies ev to s using the regions in l and reports whether s
// changed. Begin and move events without a point are dropped.
func (m *InputMapper) Handle(s *State, l *Layout, ev Event) bool {
	before := *s

	switch ev.Phase {
	case PhaseBegin:
		p, ok := ev.Point()
		if !ok {
			return false
		}
		for i := range s.Pressed {
			b, _ := l.Button(i)
			s.Pressed[i] = b.Contains(p)
		}
		if i, ok := l.HitThrottle(p); ok {
			s.Throttle = i
		}
		m.state = Interacting

	case PhaseMove:
		p, ok := ev.Point()
		if !ok {
			return false
		}
		if i, ok := l.HitThrottle(p); ok {
			s.Throttle = i
		}
		if x, y, ok := l.HitAttitude(p); ok {
			s.Roll, s.Pitch = x, y
		}

	case PhaseEnd:
		s.Pressed = [NumButtons]bool{}
		m.state = Idle

	default:
		return false
	}

	return *s != before
}
