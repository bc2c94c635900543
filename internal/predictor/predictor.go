package predictor

import (
	"errors"
	"fmt"

	"github.com/hydrosense/hydrosense-backend-go/internal/mlmodel"
	"github.com/hydrosense/hydrosense-backend-go/internal/models"
)

// ErrOutputWidth indicates the model returned a different number of values
// than there are pollutants. The request must fail whole; callers never
// render a partial result.
var ErrOutputWidth = errors.New("model output width does not match pollutant count")

// Predictor adapts the opaque regressor to the pollutant enumeration
type Predictor struct {
	model mlmodel.Regressor
}

// New creates a predictor around a loaded model
func New(model mlmodel.Regressor) *Predictor {
	return &Predictor{model: model}
}

// Predict runs the model on a single encoded row and pairs each output with
// its pollutant code, in enumeration order
func (p *Predictor) Predict(fv models.FeatureVector) (models.PredictionResult, error) {
	out, err := p.model.Predict(fv.Values)
	if err != nil {
		return nil, fmt.Errorf("model predict failed: %w", err)
	}

	if len(out) != len(models.PollutantOrder) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrOutputWidth, len(out), len(models.PollutantOrder))
	}

	result := make(models.PredictionResult, len(out))
	for i, code := range models.PollutantOrder {
		result[i] = models.PollutantReading{Code: code, Value: out[i]}
	}
	return result, nil
}
