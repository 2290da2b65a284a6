package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Schema holds the tables storing runs and their step results
const Schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id UUID PRIMARY KEY,
		shop_url VARCHAR(255) NOT NULL,
		campaigns TEXT[] NOT NULL,
		status VARCHAR(50) NOT NULL,
		passed INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		finished_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);

	CREATE TABLE IF NOT EXISTS step_results (
		id UUID PRIMARY KEY,
		run_id UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		suite VARCHAR(255) NOT NULL,
		title TEXT NOT NULL,
		identifier VARCHAR(255) NOT NULL,
		status VARCHAR(50) NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_step_results_run_id ON step_results(run_id);
	CREATE INDEX IF NOT EXISTS idx_step_results_identifier ON step_results(identifier);
	`

// RunMigrations creates the results tables on the connected database
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}
	if err := Migrate(DB); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// Migrate creates the results tables on db
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create results tables: %w", err)
	}
	return nil
}
