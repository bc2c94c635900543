package models

import "time"

// FeatureVector is a model-ready input row: values aligned one-to-one with
// the column schema the model was trained on
type FeatureVector struct {
	Columns []string  `json:"columns"`
	Values  []float64 `json:"values"`
}

// PollutantReading is a single predicted concentration. Immutable once computed.
type PollutantReading struct {
	Code  Pollutant `json:"code"`
	Value float64   `json:"value"` // mg/L
}

// PredictionResult holds one reading per pollutant, in PollutantOrder
type PredictionResult []PollutantReading

// Values returns the raw concentrations in enumeration order
func (r PredictionResult) Values() []float64 {
	vals := make([]float64, len(r))
	for i, reading := range r {
		vals[i] = reading.Value
	}
	return vals
}

// Deviation direction relative to the safe limit. The polarity is uniform
// across pollutants: at or above the limit is "over" (up arrow, success
// color), below is "under" (down arrow, warning color). A zero limit makes
// the deviation undefined ("n/a", neutral).
const (
	DirectionOver          = "over"
	DirectionUnder         = "under"
	DirectionNotApplicable = "n/a"
)

// PollutantReport is one comparison card: predicted value vs. safe limit
type PollutantReport struct {
	Pollutant        Pollutant `json:"pollutant"`
	Value            float64   `json:"value"`             // mg/L
	Display          string    `json:"display"`           // value formatted to 2 decimals with unit
	SafeLimit        float64   `json:"safe_limit"`        // mg/L
	PercentDeviation float64   `json:"percent_deviation"` // |v-L|/L*100, 0 when not applicable
	Direction        string    `json:"direction"`
	Arrow            string    `json:"arrow"`
	Color            string    `json:"color"`
}

// PredictRequest is the body of POST /api/v1/predict
type PredictRequest struct {
	Year      int    `json:"year" binding:"required"`
	StationID string `json:"station_id" binding:"required"`
}

// PredictionRecord is a persisted history row for one prediction request
type PredictionRecord struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"`
	StationID string    `json:"station_id"`
	O2        float64   `json:"o2"`
	NO3       float64   `json:"no3"`
	NO2       float64   `json:"no2"`
	SO4       float64   `json:"so4"`
	PO4       float64   `json:"po4"`
	CL        float64   `json:"cl"`
	CreatedAt time.Time `json:"created_at"`
}
