package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata records one calculator invocation. Scalar results are kept
// as decimal strings so a stored run reads back digit for digit.
type RunMetadata struct {
	ID         string            `json:"id"`
	Calculator string            `json:"calculator"`
	Preset     string            `json:"preset,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	Results    map[string]string `json:"results"`
}

// Save persists scalar results as JSON metadata and any series
// (schedules, trajectories, volume curves) as a CSV with one column
// per series.
func (s *Store) Save(calculator, preset string, results map[string]decimal.Decimal, series map[string][]decimal.Decimal) (string, error) {
	runID := fmt.Sprintf("%s_%s", calculator, uuid.New().String()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Calculator: calculator,
		Preset:     preset,
		Timestamp:  time.Now(),
		Results:    make(map[string]string, len(results)),
	}
	for name, val := range results {
		meta.Results[name] = val.String()
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if len(series) == 0 {
		return runID, nil
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	names := make([]string, 0, len(series))
	maxLen := 0
	for name, vals := range series {
		names = append(names, name)
		if len(vals) > maxLen {
			maxLen = len(vals)
		}
	}
	sort.Strings(names)

	if err := w.Write(names); err != nil {
		return "", err
	}

	for i := 0; i < maxLen; i++ {
		row := make([]string, len(names))
		for j, name := range names {
			if i < len(series[name]) {
				row[j] = series[name][i].String()
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads the stored CSV back into named decimal columns.
// A run with no series returns an empty map.
func (s *Store) LoadSeries(runID string) (map[string][]decimal.Decimal, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]decimal.Decimal{}, nil
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
	if len(records) < 2 {
		return map[string][]decimal.Decimal{}, nil
	}

	names := records[0]
	series := make(map[string][]decimal.Decimal, len(names))

	for i := 1; i < len(records); i++ {
		record := records[i]
		for j, cell := range record {
			if j >= len(names) || cell == "" {
				continue
			}
			val, err := decimal.NewFromString(cell)
			if err != nil {
				return nil, fmt.Errorf("storage: run %s column %s row %d: %w", runID, names[j], i, err)
			}
			series[names[j]] = append(series[names[j]], val)
		}
	}

	return series, nil
}
