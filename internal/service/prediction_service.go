package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hydrosense/hydrosense-backend-go/internal/features"
	"github.com/hydrosense/hydrosense-backend-go/internal/mlmodel"
	"github.com/hydrosense/hydrosense-backend-go/internal/models"
	"github.com/hydrosense/hydrosense-backend-go/internal/observability"
	"github.com/hydrosense/hydrosense-backend-go/internal/predictor"
	"github.com/hydrosense/hydrosense-backend-go/internal/report"
	"github.com/hydrosense/hydrosense-backend-go/internal/viz"
)

// HistoryStore persists completed predictions
type HistoryStore interface {
	Insert(record models.PredictionRecord) error
	Recent(limit int) ([]models.PredictionRecord, error)
	Purge() (int64, error)
}

// PredictionResponse is the full payload for one prediction request
type PredictionResponse struct {
	Year          int                      `json:"year"`
	StationID     string                   `json:"station_id"`
	ModelVersion  string                   `json:"model_version"`
	Cards         []models.PollutantReport `json:"cards"`
	Chart         viz.ChartSpec            `json:"chart"`
	LowVisibility []models.Pollutant       `json:"low_visibility"`
	Note          string                   `json:"note,omitempty"`
}

// PredictionService runs the encode-predict-compare-chart pipeline.
// The model artifact and safe-limit table are read-only after construction,
// so a single instance is safe for concurrent requests.
type PredictionService struct {
	columns   []string
	predictor *predictor.Predictor
	version   string
	limits    map[models.Pollutant]float64
	history   HistoryStore
	metrics   *observability.Metrics
}

// NewPredictionService creates the pipeline around a loaded model artifact.
// history may be nil when persistence is disabled.
func NewPredictionService(artifact *mlmodel.Artifact, history HistoryStore, metrics *observability.Metrics) *PredictionService {
	return &PredictionService{
		columns:   artifact.Columns,
		predictor: predictor.New(artifact.Model),
		version:   artifact.Model.Version(),
		limits:    models.SafeLimits,
		history:   history,
		metrics:   metrics,
	}
}

// Predict runs one full synchronous pass for a (year, station) selection
func (s *PredictionService) Predict(year int, stationID string) (*PredictionResponse, error) {
	start := time.Now()

	fv := features.Encode(year, stationID, s.columns)

	result, err := s.predictor.Predict(fv)
	if err != nil {
		s.metrics.PredictionErrors.Inc()
		return nil, fmt.Errorf("prediction failed for station %s, year %d: %w", stationID, year, err)
	}

	cards := report.Compare(result, s.limits)
	chart := viz.BuildChart(result, s.limits)
	lowVis := viz.DetectLowVisibility(result, s.limits, viz.LabelThreshold)

	resp := &PredictionResponse{
		Year:          year,
		StationID:     stationID,
		ModelVersion:  s.version,
		Cards:         cards,
		Chart:         chart,
		LowVisibility: lowVis,
		Note:          lowVisibilityNote(lowVis),
	}

	s.metrics.PredictionsTotal.Inc()
	s.metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	s.metrics.LowVisibilityFlags.Add(float64(len(lowVis)))

	s.record(year, stationID, result)

	return resp, nil
}

// record is write-behind: a history failure is logged and never surfaces
// to the client
func (s *PredictionService) record(year int, stationID string, result models.PredictionResult) {
	if s.history == nil {
		return
	}

	vals := result.Values()
	rec := models.PredictionRecord{
		Year:      year,
		StationID: stationID,
		O2:        vals[0],
		NO3:       vals[1],
		NO2:       vals[2],
		SO4:       vals[3],
		PO4:       vals[4],
		CL:        vals[5],
	}

	if err := s.history.Insert(rec); err != nil {
		log.Printf("Failed to record prediction history: %v", err)
		s.metrics.HistoryWrites.WithLabelValues("error").Inc()
		return
	}
	s.metrics.HistoryWrites.WithLabelValues("success").Inc()
}

// History returns the latest recorded predictions
func (s *PredictionService) History(limit int) ([]models.PredictionRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(limit)
}

// PurgeHistory removes all recorded predictions
func (s *PredictionService) PurgeHistory() (int64, error) {
	if s.history == nil {
		return 0, nil
	}
	return s.history.Purge()
}

// lowVisibilityNote renders the disclaimer for pollutants whose bars may be
// indistinguishable from zero on the shared chart scale
func lowVisibilityNote(flagged []models.Pollutant) string {
	if len(flagged) == 0 {
		return ""
	}

	names := make([]string, len(flagged))
	for i, p := range flagged {
		names[i] = string(p)
	}

	return "The following pollutants have predicted and safe limit values that are very small compared to the scale of the chart, " +
		"so their bars may not be visible or may appear as a thin line. " +
		"Please refer to the numeric predictions for exact values. " +
		"Pollutants affected: " + strings.Join(names, ", ") + "."
}
