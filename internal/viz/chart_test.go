package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrosense/hydrosense-backend-go/internal/models"
)

func predictions(values ...float64) models.PredictionResult {
	result := make(models.PredictionResult, len(values))
	for i, v := range values {
		result[i] = models.PollutantReading{Code: models.PollutantOrder[i], Value: v}
	}
	return result
}

func TestBuildChart_TwelveRowsPollutantMajor(t *testing.T) {
	spec := BuildChart(predictions(4.0, 12.0, 0.15, 210.0, 0.05, 190.0), models.SafeLimits)

	require.Len(t, spec.Series, 12)
	for i, code := range models.PollutantOrder {
		predicted := spec.Series[2*i]
		limit := spec.Series[2*i+1]

		assert.Equal(t, code, predicted.Pollutant)
		assert.Equal(t, SeriesPredicted, predicted.Type)
		assert.Equal(t, code, limit.Pollutant)
		assert.Equal(t, SeriesSafeLimit, limit.Type)
		assert.Equal(t, models.SafeLimits[code], limit.Value)
	}
}

func TestBuildChart_LabelsOnlyAboveThreshold(t *testing.T) {
	spec := BuildChart(predictions(4.0, 12.0, 0.15, 210.0, 0.05, 190.0), models.SafeLimits)

	byKey := make(map[string]SeriesPoint)
	for _, p := range spec.Series {
		byKey[string(p.Pollutant)+"/"+p.Type] = p
	}

	// O2 predicted 4.0 < 10: no label; its limit 5.0 < 10: no label
	assert.Empty(t, byKey["O2/Predicted"].Label)
	assert.Empty(t, byKey["O2/Safe Limit"].Label)

	// NO3 predicted 12.0 >= 10: labeled
	assert.Equal(t, "12.00", byKey["NO3/Predicted"].Label)
	assert.Equal(t, "10.00", byKey["NO3/Safe Limit"].Label)

	// Exactly at threshold gets a label
	spec = BuildChart(predictions(10.0, 0, 0, 0, 0, 0), models.SafeLimits)
	assert.Equal(t, "10.00", spec.Series[0].Label)
}

func TestBuildChart_Styling(t *testing.T) {
	spec := BuildChart(predictions(0, 0, 0, 0, 0, 0), models.SafeLimits)

	assert.Equal(t, ColorPredicted, spec.Colors[SeriesPredicted])
	assert.Equal(t, ColorSafeLimit, spec.Colors[SeriesSafeLimit])
	assert.Equal(t, "Concentration (mg/L)", spec.YAxisTitle)
	assert.Equal(t, LabelThreshold, spec.LabelThreshold)
}

func TestDetectLowVisibility(t *testing.T) {
	preds := predictions(4.0, 12.0, 0.15, 210.0, 0.05, 190.0)
	flagged := DetectLowVisibility(preds, models.SafeLimits, LabelThreshold)

	// O2 (4.0 vs 5.0), NO2 (0.15 vs 0.1) and PO4 (0.05 vs 0.1) are both-small;
	// NO3 predicted 12 >= threshold, SO4/CL limits are large
	assert.Equal(t, []models.Pollutant{models.PollutantO2, models.PollutantNO2, models.PollutantPO4}, flagged)
}

func TestDetectLowVisibility_Empty(t *testing.T) {
	preds := predictions(15, 20, 30, 210, 40, 190)
	assert.Empty(t, DetectLowVisibility(preds, models.SafeLimits, LabelThreshold))
}

func TestBuildChart_Idempotent(t *testing.T) {
	preds := predictions(4.0, 12.0, 0.15, 210.0, 0.05, 190.0)
	assert.Equal(t, BuildChart(preds, models.SafeLimits), BuildChart(preds, models.SafeLimits))
}
