package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hydrosense/hydrosense-backend-go/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE predictions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			year INTEGER NOT NULL,
			station_id TEXT NOT NULL,
			o2 REAL NOT NULL,
			no3 REAL NOT NULL,
			no2 REAL NOT NULL,
			so4 REAL NOT NULL,
			po4 REAL NOT NULL,
			cl REAL NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	require.NoError(t, err)

	return db
}

func sampleRecord(year int, station string) models.PredictionRecord {
	return models.PredictionRecord{
		Year:      year,
		StationID: station,
		O2:        4.0,
		NO3:       12.0,
		NO2:       0.15,
		SO4:       210.0,
		PO4:       0.05,
		CL:        190.0,
	}
}

func TestInsertAndRecent(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))

	require.NoError(t, repo.Insert(sampleRecord(2022, "1")))
	require.NoError(t, repo.Insert(sampleRecord(2023, "2")))

	records, err := repo.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.Equal(t, 2023, records[0].Year)
	assert.Equal(t, "2", records[0].StationID)
	assert.Equal(t, 2022, records[1].Year)
	assert.Equal(t, 4.0, records[1].O2)
	assert.Equal(t, 190.0, records[1].CL)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestRecent_LimitApplied(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))

	for year := 2020; year < 2025; year++ {
		require.NoError(t, repo.Insert(sampleRecord(year, "1")))
	}

	records, err := repo.Recent(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 2024, records[0].Year)
}

func TestRecent_BadLimitFallsBack(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))

	require.NoError(t, repo.Insert(sampleRecord(2022, "1")))

	records, err := repo.Recent(-1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPurge(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t))

	require.NoError(t, repo.Insert(sampleRecord(2022, "1")))
	require.NoError(t, repo.Insert(sampleRecord(2023, "2")))

	n, err := repo.Purge()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	records, err := repo.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
