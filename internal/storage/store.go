package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/dynarr/internal/script"
)

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.csv"
)

var stepsHeader = []string{"step", "op", "result", "error", "count", "capacity"}

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
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Timestamp       time.Time       `json:"timestamp"`
	InitialCapacity int             `json:"initial_capacity"`
	Ops             int             `json:"ops"`
	Errors          int             `json:"errors"`
	FinalCount      int             `json:"final_count"`
	FinalCapacity   int             `json:"final_capacity"`
	Growths         []script.Growth `json:"growths"`
	Final           []string        `json:"final"`
}

func (s *Store) Save(trace *script.Trace) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", runPrefix(trace.Name), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Name:            trace.Name,
		Timestamp:       now,
		InitialCapacity: trace.InitialCapacity,
		Ops:             len(trace.Steps),
		Errors:          trace.Errors(),
		FinalCount:      len(trace.Final),
		FinalCapacity:   trace.InitialCapacity,
		Growths:         trace.Growths,
		Final:           trace.Final,
	}
	if n := len(trace.Steps); n > 0 {
		meta.FinalCapacity = trace.Steps[n-1].Capacity
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, stepsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(stepsHeader); err != nil {
		return "", err
	}
	for i, step := range trace.Steps {
		row := []string{
			strconv.Itoa(i),
			step.Op,
			step.Result,
			step.Err,
			strconv.Itoa(step.Count),
			strconv.Itoa(step.Capacity),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// runPrefix reduces name to one path element so a run directory always
// lands directly under baseDir.
func runPrefix(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		return "run"
	}
	return name
}

// List returns saved runs, oldest first. Unreadable run directories are
// skipped.
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
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSteps(runID string) ([]script.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, stepsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(stepsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []script.Step{}, nil
	}

	steps := make([]script.Step, 0, len(records)-1)
	for i, record := range records[1:] {
		count, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad count: %w", stepsFile, i+1, err)
		}
		capacity, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad capacity: %w", stepsFile, i+1, err)
		}
		steps = append(steps, script.Step{
			Op:       record[1],
			Result:   record[2],
			Err:      record[3],
			Count:    count,
			Capacity: capacity,
		})
	}

	return steps, nil
}

type ExportData struct {
	RunMetadata
	Steps []script.Step `json:"steps"`
}

// Export writes a run's metadata and steps to w as indented JSON.
func (s *Store) Export(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	steps, err := s.LoadSteps(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Steps: steps})
}
