package repository

import (
	"database/sql"
	"fmt"

	"github.com/hydrosense/hydrosense-backend-go/internal/models"
)

// HistoryRepository handles database operations for prediction history
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert records one completed prediction
func (r *HistoryRepository) Insert(record models.PredictionRecord) error {
	query := `
		INSERT INTO predictions (year, station_id, o2, no3, no2, so4, po4, cl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		record.Year, record.StationID,
		record.O2, record.NO3, record.NO2, record.SO4, record.PO4, record.CL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction record: %w", err)
	}
	return nil
}

// Recent returns the latest prediction records, newest first
func (r *HistoryRepository) Recent(limit int) ([]models.PredictionRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	query := `
		SELECT id, year, station_id, o2, no3, no2, so4, po4, cl, created_at
		FROM predictions
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query prediction history: %w", err)
	}
	defer rows.Close()

	var records []models.PredictionRecord
	for rows.Next() {
		var rec models.PredictionRecord
		if err := rows.Scan(
			&rec.ID, &rec.Year, &rec.StationID,
			&rec.O2, &rec.NO3, &rec.NO2, &rec.SO4, &rec.PO4, &rec.CL,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prediction record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prediction history: %w", err)
	}

	return records, nil
}

// Purge deletes all prediction records and returns the number removed
func (r *HistoryRepository) Purge() (int64, error) {
	res, err := r.db.Exec("DELETE FROM predictions")
	if err != nil {
		return 0, fmt.Errorf("failed to purge prediction history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged records: %w", err)
	}
	return n, nil
}
