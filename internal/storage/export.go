package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/flightdeck/internal/panel"
)

type ExportData struct {
	ID      string             `json:"id"`
	Source  string             `json:"source"`
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Steps   int                `json:"steps"`
	Times   []float64          `json:"times"`
	Phases  []string           `json:"phases"`
	States  []panel.State      `json:"states"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a session and its full event log as one JSON document.
func (s *Store) ExportJSON(id string, w io.Writer) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(id)
	if err != nil {
		return err
	}

	data := ExportData{
		ID:      meta.ID,
		Source:  meta.Source,
		Width:   meta.Width,
		Height:  meta.Height,
		Steps:   len(samples),
		Times:   make([]float64, len(samples)),
		Phases:  make([]string, len(samples)),
		States:  make([]panel.State, len(samples)),
		Metrics: meta.Metrics,
	}

	for i, smp := range samples {
		data.Times[i] = smp.T
		data.Phases[i] = smp.Phase.String()
		data.States[i] = smp.State
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
