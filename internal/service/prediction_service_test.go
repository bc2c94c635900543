package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrosense/hydrosense-backend-go/internal/mlmodel"
	"github.com/hydrosense/hydrosense-backend-go/internal/models"
	"github.com/hydrosense/hydrosense-backend-go/internal/observability"
)

// fakeRegressor plays back a fixed output row
type fakeRegressor struct {
	out []float64
	err error
}

func (f *fakeRegressor) Predict(row []float64) ([]float64, error) { return f.out, f.err }
func (f *fakeRegressor) Version() string                          { return "fake-v1" }

// memHistory collects inserts in memory
type memHistory struct {
	records   []models.PredictionRecord
	insertErr error
}

func (m *memHistory) Insert(rec models.PredictionRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memHistory) Recent(limit int) ([]models.PredictionRecord, error) {
	if limit > 0 && limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func (m *memHistory) Purge() (int64, error) {
	n := int64(len(m.records))
	m.records = nil
	return n, nil
}

func newTestService(reg *fakeRegressor, history HistoryStore) *PredictionService {
	artifact := &mlmodel.Artifact{
		Model:   reg,
		Columns: []string{"year", "id_1", "id_2"},
	}
	return NewPredictionService(artifact, history, observability.NewMetricsForTesting())
}

func TestPredict_FullPipeline(t *testing.T) {
	history := &memHistory{}
	svc := newTestService(&fakeRegressor{out: []float64{4.0, 12.0, 0.15, 210.0, 0.05, 190.0}}, history)

	resp, err := svc.Predict(2022, "1")
	require.NoError(t, err)

	assert.Equal(t, 2022, resp.Year)
	assert.Equal(t, "1", resp.StationID)
	assert.Equal(t, "fake-v1", resp.ModelVersion)

	require.Len(t, resp.Cards, 6)
	assert.Equal(t, models.PollutantO2, resp.Cards[0].Pollutant)
	assert.Equal(t, models.DirectionUnder, resp.Cards[0].Direction)
	assert.InDelta(t, 20.0, resp.Cards[0].PercentDeviation, 1e-9)

	assert.Len(t, resp.Chart.Series, 12)
	assert.Equal(t, []models.Pollutant{models.PollutantO2, models.PollutantNO2, models.PollutantPO4}, resp.LowVisibility)
	assert.Contains(t, resp.Note, "O2, NO2, PO4")

	// History recorded
	require.Len(t, history.records, 1)
	assert.Equal(t, 2022, history.records[0].Year)
	assert.Equal(t, 4.0, history.records[0].O2)
	assert.Equal(t, 190.0, history.records[0].CL)
}

func TestPredict_NoDisclaimerWhenAllVisible(t *testing.T) {
	svc := newTestService(&fakeRegressor{out: []float64{15, 20, 30, 210, 40, 190}}, nil)

	resp, err := svc.Predict(2030, "5")
	require.NoError(t, err)
	assert.Empty(t, resp.LowVisibility)
	assert.Empty(t, resp.Note)
}

func TestPredict_ModelWidthMismatchFailsWhole(t *testing.T) {
	history := &memHistory{}
	svc := newTestService(&fakeRegressor{out: []float64{1, 2, 3}}, history)

	_, err := svc.Predict(2022, "1")
	require.Error(t, err)
	assert.Empty(t, history.records)
}

func TestPredict_HistoryFailureDoesNotFailRequest(t *testing.T) {
	history := &memHistory{insertErr: errors.New("disk full")}
	svc := newTestService(&fakeRegressor{out: []float64{4.0, 12.0, 0.15, 210.0, 0.05, 190.0}}, history)

	resp, err := svc.Predict(2022, "1")
	require.NoError(t, err)
	assert.Len(t, resp.Cards, 6)
}

func TestHistoryPassthrough(t *testing.T) {
	history := &memHistory{}
	svc := newTestService(&fakeRegressor{out: []float64{4.0, 12.0, 0.15, 210.0, 0.05, 190.0}}, history)

	_, err := svc.Predict(2022, "1")
	require.NoError(t, err)
	_, err = svc.Predict(2023, "2")
	require.NoError(t, err)

	records, err := svc.History(10)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	n, err := svc.PurgeHistory()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestPredict_NilHistory(t *testing.T) {
	svc := newTestService(&fakeRegressor{out: []float64{4.0, 12.0, 0.15, 210.0, 0.05, 190.0}}, nil)

	_, err := svc.Predict(2022, "1")
	require.NoError(t, err)

	records, err := svc.History(10)
	require.NoError(t, err)
	assert.Nil(t, records)
}
