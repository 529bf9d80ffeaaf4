package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type RunRecord struct {
	ID          int64
	CSVPath     string
	OutputPath  string
	RecordCount int
	WeekCount   int
	Warnings    int
	Errors      int
	StartedAt   time.Time
}

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		csv_path     TEXT NOT NULL,
		output_path  TEXT DEFAULT '',
		record_count INTEGER NOT NULL DEFAULT 0,
		week_count   INTEGER NOT NULL DEFAULT 0,
		warnings     INTEGER NOT NULL DEFAULT 0,
		errors       INTEGER NOT NULL DEFAULT 0,
		started_at   DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);

	CREATE TABLE IF NOT EXISTS activity_records (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id   INTEGER NOT NULL,
		date     TEXT NOT NULL,
		day      TEXT NOT NULL,
		activity TEXT NOT NULL,
		content  TEXT DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_activity_records_run ON activity_records(run_id);

	CREATE TABLE IF NOT EXISTS activity_suggestions (
		activity     TEXT PRIMARY KEY,
		suggestion   TEXT NOT NULL,
		llm_model    TEXT DEFAULT '',
		suggested_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return db, nil
}

func InsertRun(db *sql.DB, run RunRecord) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO runs (csv_path, output_path, record_count, week_count, warnings, errors, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.CSVPath, run.OutputPath, run.RecordCount, run.WeekCount,
		run.Warnings, run.Errors, run.StartedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func InsertActivityRecords(db *sql.DB, runID int64, records []ActivityRecord) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO activity_records (run_id, date, day, activity, content)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range records {
		if _, err := stmt.Exec(runID, rec.Date, rec.Day, rec.Activity, rec.Content); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, tx.Commit()
}

func GetRecentRuns(db *sql.DB, limit int) ([]RunRecord, error) {
	rows, err := db.Query(
		`SELECT id, csv_path, output_path, record_count, week_count, warnings, errors, started_at
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		if err := rows.Scan(
			&run.ID, &run.CSVPath, &run.OutputPath, &run.RecordCount,
			&run.WeekCount, &run.Warnings, &run.Errors, &run.StartedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func GetRunRecords(db *sql.DB, runID int64) ([]ActivityRecord, error) {
	rows, err := db.Query(
		`SELECT date, day, activity, content FROM activity_records
		 WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ActivityRecord
	for rows.Next() {
		var rec ActivityRecord
		if err := rows.Scan(&rec.Date, &rec.Day, &rec.Activity, &rec.Content); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// --- LLM suggestion cache ---

func GetSuggestion(db *sql.DB, activity string) (string, bool, error) {
	var suggestion string
	err := db.QueryRow(
		`SELECT suggestion FROM activity_suggestions WHERE activity = ?`,
		activity,
	).Scan(&suggestion)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return suggestion, true, nil
}

func PutSuggestion(db *sql.DB, activity, suggestion, model string) error {
	_, err := db.Exec(
		`INSERT INTO activity_suggestions (activity, suggestion, llm_model)
		 VALUES (?, ?, ?)
		 ON CONFLICT(activity) DO UPDATE SET suggestion = excluded.suggestion, llm_model = excluded.llm_model, suggested_at = CURRENT_TIMESTAMP`,
		activity, suggestion, model,
	)
	return err
}
