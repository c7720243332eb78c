package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"KonkurRankPredictor/internal/models"
)

var ErrNotInitialized = errors.New("storage is not initialized")

// SaveExtraction records one extraction run and all of its rows in a single transaction.
func SaveExtraction(source, output string, rows []models.Row) (int64, error) {
	if db == nil {
		return 0, ErrNotInitialized
	}
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO extraction_runs(source, output, row_count, created_at) VALUES(?, ?, ?, ?)",
		source, output, len(rows), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare("INSERT INTO extracted_rows(run_id, row_index, cell_count, cells) VALUES(?, ?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, row := range rows {
		cells, err := json.Marshal([]string(row))
		if err != nil {
			return 0, err
		}
		if _, err := stmt.Exec(runID, i, len(row), string(cells)); err != nil {
			return 0, fmt.Errorf("SaveExtraction(): row %d: %w", i, err)
		}
	}
	return runID, tx.Commit()
}

func GetRun(runID int64) (models.ExtractionRun, error) {
	var run models.ExtractionRun
	if db == nil {
		return run, ErrNotInitialized
	}
	var createdStr string // RFC3339 문자열로 저장

	row := db.QueryRow("SELECT id, source, output, row_count, created_at FROM extraction_runs WHERE id = ?", runID)
	if err := row.Scan(&run.ID, &run.Source, &run.Output, &run.RowCount, &createdStr); err != nil {
		return run, err // sql.ErrNoRows when the run does not exist
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return run, fmt.Errorf("GetRun(): bad created_at %q: %w", createdStr, err)
	}
	run.CreatedAt = createdAt
	return run, nil
}

// GetRowsByRunID returns the stored rows of a run in extraction order.
func GetRowsByRunID(runID int64) ([]models.Row, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := db.Query("SELECT cells FROM extracted_rows WHERE run_id = ? ORDER BY row_index", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Row
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var cells []string
		if err := json.Unmarshal([]byte(raw), &cells); err != nil {
			return nil, err
		}
		out = append(out, models.Row(cells))
	}
	return out, rows.Err()
}
