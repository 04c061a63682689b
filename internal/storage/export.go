package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// ExportData is the self-contained JSON form of a stored run: the
// metadata plus the full trajectory.
type ExportData struct {
	RunMetadata
	Columns []string    `json:"columns"`
	Times   []float64   `json:"times"`
	Rows    [][]float64 `json:"rows"`
}

// ExportJSON writes a stored run as a single indented JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	rows, times, err := s.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		Columns:     TrajectoryColumns,
		Times:       times,
		Rows:        rows,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV streams the stored trajectory.csv as-is.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	csvPath := filepath.Join(s.baseDir, runID, "trajectory.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(w, file)
	return err
}
