package viz

import (
	"fmt"

	"github.com/hydrosense/hydrosense-backend-go/internal/models"
)

// Series types of the grouped-bar comparison
const (
	SeriesPredicted = "Predicted"
	SeriesSafeLimit = "Safe Limit"
)

// LabelThreshold is the minimum bar value that gets a printed numeric label.
// Smaller bars stay unlabeled to avoid clutter on the shared linear scale,
// and pollutants whose predicted value and limit are both below it are
// flagged as low-visibility.
const LabelThreshold = 10.0

const (
	ColorPredicted = "#0077b6"
	ColorSafeLimit = "#90be6d"
)

// SeriesPoint is one long-format row of the comparison chart
type SeriesPoint struct {
	Pollutant models.Pollutant `json:"pollutant"`
	Type      string           `json:"type"`
	Value     float64          `json:"value"`
	Label     string           `json:"label,omitempty"` // empty below the label threshold
}

// ChartSpec is the renderer-agnostic description of the predicted-vs-safe
// grouped bar chart
type ChartSpec struct {
	Series         []SeriesPoint     `json:"series"`
	Colors         map[string]string `json:"colors"`
	XAxisTitle     string            `json:"x_axis_title"`
	YAxisTitle     string            `json:"y_axis_title"`
	LabelThreshold float64           `json:"label_threshold"`
	CornerRadius   int               `json:"corner_radius"`
	Height         int               `json:"height"`
}

// BuildChart melts the per-pollutant {predicted, safe limit} pairs into a
// long-format series: exactly two rows per pollutant, Predicted then Safe
// Limit, in pollutant enumeration order. Pure.
func BuildChart(predictions models.PredictionResult, limits map[models.Pollutant]float64) ChartSpec {
	series := make([]SeriesPoint, 0, 2*len(predictions))
	for _, reading := range predictions {
		series = append(series,
			point(reading.Code, SeriesPredicted, reading.Value),
			point(reading.Code, SeriesSafeLimit, limits[reading.Code]),
		)
	}

	return ChartSpec{
		Series: series,
		Colors: map[string]string{
			SeriesPredicted: ColorPredicted,
			SeriesSafeLimit: ColorSafeLimit,
		},
		XAxisTitle:     "Pollutant",
		YAxisTitle:     fmt.Sprintf("Concentration (%s)", models.Unit),
		LabelThreshold: LabelThreshold,
		CornerRadius:   8,
		Height:         400,
	}
}

func point(code models.Pollutant, seriesType string, value float64) SeriesPoint {
	p := SeriesPoint{Pollutant: code, Type: seriesType, Value: value}
	if value >= LabelThreshold {
		p.Label = fmt.Sprintf("%.2f", value)
	}
	return p
}

// DetectLowVisibility flags pollutants whose predicted value and safe limit
// are both below threshold: their bars are visually indistinguishable from
// zero on the shared axis, so the caller must render a textual disclaimer
// listing exactly these codes. An empty result means no disclaimer.
func DetectLowVisibility(predictions models.PredictionResult, limits map[models.Pollutant]float64, threshold float64) []models.Pollutant {
	var flagged []models.Pollutant
	for _, reading := range predictions {
		if reading.Value < threshold && limits[reading.Code] < threshold {
			flagged = append(flagged, reading.Code)
		}
	}
	return flagged
}
