package storage

import (
	"time"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/metrics"
	"github.com/san-kum/flightdeck/internal/panel"
)

// Sample is one accepted pointer event and the control state it left.
type Sample struct {
	T      float64      `msgpack:"t"`
	Phase  panel.Phase  `msgpack:"phase"`
	Points []geom.Point `msgpack:"points,omitempty"`
	State  panel.State  `msgpack:"state"`
}

func (s Sample) Event() panel.Event {
	return panel.Event{Phase: s.Phase, Points: s.Points}
}

// Recorder collects samples from a panel. T is seconds since the recorder
// was created.
type Recorder struct {
	now     func() time.Time
	start   time.Time
	samples []Sample
}

// NewRecorder uses clock for sample times, or the wall clock when nil.
func NewRecorder(clock func() time.Time) *Recorder {
	if clock == nil {
		clock = time.Now
	}
	return &Recorder{now: clock, start: clock()}
}

// Attach subscribes the recorder to every accepted event of p.
func (r *Recorder) Attach(p *panel.Panel) {
	p.OnChange(r.Record)
}

func (r *Recorder) Record(ev panel.Event, s panel.State) {
	pts := append([]geom.Point(nil), ev.Points...)
	r.samples = append(r.samples, Sample{
		T:      r.now().Sub(r.start).Seconds(),
		Phase:  ev.Phase,
		Points: pts,
		State:  s,
	})
}

func (r *Recorder) Samples() []Sample { return r.samples }
func (r *Recorder) Len() int          { return len(r.samples) }

// StepClock returns a clock that advances by step on every call. Headless
// replays use it to space samples at a fixed frame interval.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	t := start.Add(-step)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

// Summarize reduces samples to the metrics stored with a session.
func Summarize(samples []Sample) map[string]float64 {
	m := map[string]float64{
		"samples": float64(len(samples)),
	}
	if len(samples) == 0 {
		return m
	}

	ms := metrics.Default()
	for _, s := range samples {
		for _, mt := range ms {
			mt.Observe(s.State, s.T)
		}
	}
	for _, mt := range ms {
		m[mt.Name()] = mt.Value()
	}
	return m
}
