package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/rocketsim/internal/runner"
)

// Store persists finished episodes as one directory per run:
// metadata.json with the summary and trajectory.csv with the full
// state history.
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
	ID           string             `json:"id"`
	Policy       string             `json:"policy"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         int64              `json:"seed"`
	Dt           float64            `json:"dt"`
	Steps        int                `json:"steps"`
	Duration     float64            `json:"duration"`
	Phase        string             `json:"phase"`
	ReachedSpace bool               `json:"reached_space"`
	TotalReward  float64            `json:"total_reward"`
	Metrics      map[string]float64 `json:"metrics"`
}

// TrajectoryColumns is the order of the non-time columns in
// trajectory.csv and in the rows LoadTrajectory returns.
var TrajectoryColumns = []string{"x", "y", "vx", "vy", "angle", "omega", "fuel", "reward"}

func (s *Store) Save(policyName string, dt float64, result *runner.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", policyName, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Policy:       policyName,
		Timestamp:    time.Now(),
		Seed:         result.Seed,
		Dt:           dt,
		Steps:        result.Steps,
		Duration:     result.Duration,
		Phase:        result.Phase.String(),
		ReachedSpace: result.ReachedSpace,
		TotalReward:  result.TotalReward,
		Metrics:      result.Metrics,
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

	csvPath := filepath.Join(runDir, "trajectory.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"time"}, TrajectoryColumns...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, st := range result.States {
		// Rewards has one fewer entry than States: the reset state
		// earned nothing.
		reward := 0.0
		if i > 0 && i-1 < len(result.Rewards) {
			reward = result.Rewards[i-1]
		}

		vals := []float64{
			st.Position.X, st.Position.Y,
			st.Velocity.X, st.Velocity.Y,
			st.Angle, st.AngularVel,
			st.FuelMass, reward,
		}
		row := make([]string, 0, len(vals)+1)
		row = append(row, strconv.FormatFloat(result.Times[i], 'f', 6, 64))
		for _, v := range vals {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
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

// LoadTrajectory returns the stored rows (ordered as TrajectoryColumns)
// and the matching timestamps.
func (s *Store) LoadTrajectory(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "trajectory.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	rows := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		row := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		rows = append(rows, row)
	}

	return rows, times, nil
}
