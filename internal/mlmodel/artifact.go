package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// Regressor is the opaque trained model behind the prediction pipeline.
// Implementations must be safe for concurrent readers; the pipeline treats
// them as immutable after load.
type Regressor interface {
	// Predict takes a single feature row and returns one value per target.
	Predict(row []float64) ([]float64, error)
	// Version identifies the loaded model artifact.
	Version() string
}

// Artifact bundles the loaded model with its companion column schema.
// Both are read once at startup and never mutated.
type Artifact struct {
	Model   Regressor
	Columns []string
}

// linearModelFile is the on-disk JSON layout of the trained regressor:
// one intercept and one coefficient vector (over the schema columns) per target.
type linearModelFile struct {
	Version      string      `json:"model_version"`
	Targets      []string    `json:"targets"`
	Intercepts   []float64   `json:"intercepts"`
	Coefficients [][]float64 `json:"coefficients"`
}

// LinearModel is a multi-output linear regression loaded from an artifact file
type LinearModel struct {
	version      string
	targets      []string
	intercepts   []float64
	coefficients [][]float64
}

// Targets returns the model's output names in output order
func (m *LinearModel) Targets() []string {
	return m.targets
}

// Version returns the artifact's model version string
func (m *LinearModel) Version() string {
	return m.version
}

// Predict computes intercept + coefficients·row for each target
func (m *LinearModel) Predict(row []float64) ([]float64, error) {
	if len(m.coefficients) > 0 && len(row) != len(m.coefficients[0]) {
		return nil, fmt.Errorf("feature row has %d values, model expects %d", len(row), len(m.coefficients[0]))
	}

	out := make([]float64, len(m.targets))
	for i := range m.targets {
		v := m.intercepts[i]
		for j, c := range m.coefficients[i] {
			v += c * row[j]
		}
		out[i] = v
	}
	return out, nil
}

// Load reads the model artifact and its column schema from disk.
// Any failure here is fatal for the caller: the service must not serve
// predictions without a valid model.
func Load(modelPath, columnsPath string) (*Artifact, error) {
	columns, err := loadColumns(columnsPath)
	if err != nil {
		return nil, err
	}

	model, err := loadModel(modelPath, len(columns))
	if err != nil {
		return nil, err
	}

	return &Artifact{Model: model, Columns: columns}, nil
}

func loadColumns(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column schema %s: %w", path, err)
	}

	var columns []string
	if err := json.Unmarshal(raw, &columns); err != nil {
		return nil, fmt.Errorf("failed to parse column schema %s: %w", path, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("column schema %s is empty", path)
	}

	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if seen[col] {
			return nil, fmt.Errorf("column schema %s has duplicate column %q", path, col)
		}
		seen[col] = true
	}

	return columns, nil
}

func loadModel(path string, width int) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var file linearModelFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}

	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("model artifact %s has no targets", path)
	}
	if len(file.Intercepts) != len(file.Targets) || len(file.Coefficients) != len(file.Targets) {
		return nil, fmt.Errorf("model artifact %s is inconsistent: %d targets, %d intercepts, %d coefficient rows",
			path, len(file.Targets), len(file.Intercepts), len(file.Coefficients))
	}
	for i, row := range file.Coefficients {
		if len(row) != width {
			return nil, fmt.Errorf("model artifact %s: coefficient row %d has width %d, schema has %d columns",
				path, i, len(row), width)
		}
	}

	return &LinearModel{
		version:      file.Version,
		targets:      file.Targets,
		intercepts:   file.Intercepts,
		coefficients: file.Coefficients,
	}, nil
}
