package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/docksim/internal/dynamo"
)

var (
	ErrNotFound  = errors.New("storage: run not found")
	ErrMalformed = errors.New("storage: malformed trace")
)

// Columns of states.csv after the time column.
var StateColumns = []string{
	"chase_x", "chase_y", "chase_theta", "target_x", "target_y", "target_theta",
	"chase_vx", "chase_vy", "chase_omega", "target_vx", "target_vy", "target_omega",
}

var ControlColumns = []string{"f_x", "f_y", "tau"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Integrator string             `json:"integrator"`
	Controller string             `json:"controller"`
	Team       string             `json:"team"`
	TeamID     int                `json:"team_id"`
	Steps      int                `json:"steps"`
	Metrics    map[string]float64 `json:"metrics"`
	Errors     []string           `json:"errors,omitempty"`
}

// Save writes metadata.json and states.csv under a fresh run id and returns it.
// ID, Timestamp and Steps in meta are filled in here.
func (s *Store) Save(meta RunMetadata, result *dynamo.Result) (string, error) {
	meta.ID = uuid.NewString()
	meta.Timestamp = time.Now()
	meta.Steps = result.StepsTaken
	if meta.Metrics == nil {
		meta.Metrics = result.Metrics
	}
	for _, err := range result.Errors {
		meta.Errors = append(meta.Errors, err.Error())
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeStates(filepath.Join(runDir, "states.csv"), result); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStates(path string, result *dynamo.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append([]string{"time"}, StateColumns...)
	header = append(header, ControlColumns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range result.States {
		row := make([]string, 0, len(header))
		row = append(row, format(result.Times[i]))
		for _, v := range result.States[i] {
			row = append(row, format(v))
		}
		// The final state has no control applied after it.
		u := dynamo.Control{0, 0, 0}
		if i < len(result.Controls) {
			u = result.Controls[i]
		}
		for _, v := range u {
			row = append(row, format(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns all runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Trace is a stored run read back column-wise.
type Trace struct {
	Times    []float64
	States   [][]float64
	Controls [][]float64
}

// Column returns the named state or control column.
func (tr *Trace) Column(name string) ([]float64, bool) {
	for i, c := range StateColumns {
		if c == name {
			return pick(tr.States, i), true
		}
	}
	for i, c := range ControlColumns {
		if c == name {
			return pick(tr.Controls, i), true
		}
	}
	return nil, false
}

func pick(rows [][]float64, idx int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		if idx < len(r) {
			out[i] = r[idx]
		}
	}
	return out
}

func (s *Store) LoadTrace(runID string) (*Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	nState := len(StateColumns)
	width := 1 + nState + len(ControlColumns)
	for i, record := range records {
		if len(record) != width {
			return nil, fmt.Errorf("%w: states.csv line %d has %d columns, want %d", ErrMalformed, i+1, len(record), width)
		}
	}

	tr := &Trace{}
	if len(records) < 2 {
		return tr, nil
	}
	for _, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("states.csv: %w", err)
			}
			vals[j] = v
		}
		tr.Times = append(tr.Times, vals[0])
		tr.States = append(tr.States, vals[1:1+nState])
		tr.Controls = append(tr.Controls, vals[1+nState:])
	}
	return tr, nil
}
