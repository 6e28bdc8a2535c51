package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/san-kum/flightdeck/internal/panel"
)

var ErrSessionNotFound = errors.New("storage: session not found")

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
	eventsFile   = "events.msgpack.zst"
)

var statesHeader = []string{"time", "phase", "x", "y", "throttle", "pitch", "roll", "pressed0", "pressed1"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID        string             `json:"id"`
	Source    string             `json:"source"`
	Timestamp time.Time          `json:"timestamp"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Theme     string             `json:"theme,omitempty"`
	Script    string             `json:"script,omitempty"`
	Final     panel.State        `json:"final"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a session directory and returns its id. A blank meta.ID is
// derived from the source and the current time.
func (s *Store) Save(meta SessionMetadata, samples []Sample) (string, error) {
	now := time.Now()
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Source, now.UnixNano())
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = now
	}
	if len(samples) > 0 {
		meta.Final = samples[len(samples)-1].State
	}
	meta.Metrics = Summarize(samples)

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(dir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(dir, statesFile), func(w io.Writer) error {
		return writeStates(w, samples)
	}); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(dir, eventsFile), func(w io.Writer) error {
		return writeEvents(w, samples)
	}); err != nil {
		return "", err
	}

	return meta.ID, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("storage: write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func writeStates(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(statesHeader); err != nil {
		return err
	}

	for _, smp := range samples {
		x, y := "", ""
		if p, ok := smp.Event().Point(); ok {
			x = strconv.FormatFloat(p.X, 'f', 2, 64)
			y = strconv.FormatFloat(p.Y, 'f', 2, 64)
		}
		st := smp.State
		row := []string{
			strconv.FormatFloat(smp.T, 'f', 6, 64),
			smp.Phase.String(),
			x, y,
			strconv.Itoa(st.Throttle),
			strconv.Itoa(st.Pitch),
			strconv.Itoa(st.Roll),
			strconv.FormatBool(st.Pressed[0]),
			strconv.FormatBool(st.Pressed[1]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeEvents(w io.Writer, samples []Sample) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	if err := msgpack.NewEncoder(zw).Encode(samples); err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}
	return zw.Close()
}

// List returns every readable session, oldest first.
func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		sessions = append(sessions, *meta)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.Before(sessions[j].Timestamp)
	})
	return sessions, nil
}

func (s *Store) open(id, name string) (*os.File, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return f, err
}

func (s *Store) Load(id string) (*SessionMetadata, error) {
	f, err := s.open(id, metadataFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var meta SessionMetadata
	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", id, err)
	}
	return &meta, nil
}

// LoadSamples decodes the full event log of a session.
func (s *Store) LoadSamples(id string) ([]Sample, error) {
	f, err := s.open(id, eventsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var samples []Sample
	if err := msgpack.NewDecoder(zr).Decode(&samples); err != nil {
		return nil, fmt.Errorf("failed to decode samples: %w", err)
	}
	return samples, nil
}

// LoadStates reads the state column of a session's CSV with its times.
func (s *Store) LoadStates(id string) ([]panel.State, []float64, error) {
	f, err := s.open(id, statesFile)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(statesHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []panel.State{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([]panel.State, 0, len(records)-1)

	for _, record := range records[1:] {
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		var st panel.State
		ints := []*int{&st.Throttle, &st.Pitch, &st.Roll}
		bad := false
		for i, dst := range ints {
			v, err := strconv.Atoi(record[4+i])
			if err != nil {
				bad = true
				break
			}
			*dst = v
		}
		if bad {
			continue
		}
		st.Pressed[0], _ = strconv.ParseBool(record[7])
		st.Pressed[1], _ = strconv.ParseBool(record[8])

		times = append(times, t)
		states = append(states, st)
	}

	return states, times, nil
}

// CopyStates streams the raw CSV of a session to w.
func (s *Store) CopyStates(id string, w io.Writer) error {
	f, err := s.open(id, statesFile)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
