package storage

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens (or creates) the sqlite file at path and creates the tables.
// ":memory:" is accepted for tests.
func InitDB(path string) error {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("InitDB(): Failed to open database: %w", err)
	}
	// 인메모리 DB는 커넥션마다 별도 DB이므로 하나로 고정
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return fmt.Errorf("InitDB(): Failed to connect to database: %w", err)
	}

	createRunsTable := `
	CREATE TABLE IF NOT EXISTS extraction_runs (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"source" TEXT NOT NULL,
			"output" TEXT NOT NULL,
			"row_count" INTEGER NOT NULL,
			"created_at" TEXT NOT NULL
	);`
	createRowsTable := `
	CREATE TABLE IF NOT EXISTS extracted_rows (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"run_id" INTEGER NOT NULL,
			"row_index" INTEGER NOT NULL,
			"cell_count" INTEGER NOT NULL,
			"cells" TEXT NOT NULL,
			FOREIGN KEY(run_id) REFERENCES extraction_runs(id)
	)`

	if _, err := db.Exec(createRunsTable); err != nil {
		return fmt.Errorf("InitDB(): Failed to create extraction_runs table: %w", err)
	}
	if _, err := db.Exec(createRowsTable); err != nil {
		return fmt.Errorf("InitDB(): Failed to create extracted_rows table: %w", err)
	}
	log.Printf("InitDB(): Init and create tables successfully (%s)", path)
	return nil
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}
