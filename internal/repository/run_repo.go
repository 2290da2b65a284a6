package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/themizzi/shopcheck/internal/database"
	"github.com/themizzi/shopcheck/internal/models"
)

// ErrNotFound is returned when no row matches
var ErrNotFound = errors.New("not found")

// RunRepository handles database operations for runs and their step results
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a run repository on the shared connection
func NewRunRepository() *RunRepository {
	return &RunRepository{
		db: database.DB,
	}
}

// NewRunRepositoryWithDB creates a run repository with a specific database connection
func NewRunRepositoryWithDB(db *sql.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

// CreateRun inserts a new run
func (r *RunRepository) CreateRun(run *models.Run) error {
	query := `
		INSERT INTO runs (id, shop_url, campaigns, status, passed, failed, skipped, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.ShopURL,
		pq.Array(run.Campaigns),
		run.Status,
		run.Passed,
		run.Failed,
		run.Skipped,
		run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetRun retrieves a run by id
func (r *RunRepository) GetRun(id string) (*models.Run, error) {
	query := `
		SELECT id, shop_url, campaigns, status, passed, failed, skipped, started_at, finished_at
		FROM runs
		WHERE id = $1
	`

	run := &models.Run{}
	var finishedAt sql.NullTime
	err := r.db.QueryRow(query, id).Scan(
		&run.ID,
		&run.ShopURL,
		pq.Array(&run.Campaigns),
		&run.Status,
		&run.Passed,
		&run.Failed,
		&run.Skipped,
		&run.StartedAt,
		&finishedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	run.FinishedAt = finishedAt.Time
	return run, nil
}

// UpdateRun stores the status, counters and end time of a run
func (r *RunRepository) UpdateRun(run *models.Run) error {
	query := `
		UPDATE runs
		SET status = $1, passed = $2, failed = $3, skipped = $4, finished_at = $5
		WHERE id = $6
	`

	var finishedAt sql.NullTime
	if !run.FinishedAt.IsZero() {
		finishedAt = sql.NullTime{Time: run.FinishedAt, Valid: true}
	}

	result, err := r.db.Exec(query, run.Status, run.Passed, run.Failed, run.Skipped, finishedAt, run.ID)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("run %s: %w", run.ID, ErrNotFound)
	}

	return nil
}

// CreateStepResult inserts a step result of an existing run
func (r *RunRepository) CreateStepResult(step *models.StepResult) error {
	query := `
		INSERT INTO step_results (id, run_id, suite, title, identifier, status, message, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		step.ID,
		step.RunID,
		step.Suite,
		step.Title,
		step.Identifier,
		step.Status,
		step.Message,
		step.Duration.Milliseconds(),
		step.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create step result: %w", err)
	}

	return nil
}

// ListStepResults returns the step results of a run in recording order
func (r *RunRepository) ListStepResults(runID string) ([]*models.StepResult, error) {
	query := `
		SELECT id, run_id, suite, title, identifier, status, message, duration_ms, created_at
		FROM step_results
		WHERE run_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list step results: %w", err)
	}
	defer rows.Close()

	var steps []*models.StepResult
	for rows.Next() {
		step := &models.StepResult{}
		var durationMs int64
		if err := rows.Scan(
			&step.ID,
			&step.RunID,
			&step.Suite,
			&step.Title,
			&step.Identifier,
			&step.Status,
			&step.Message,
			&durationMs,
			&step.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan step result: %w", err)
		}
		step.Duration = time.Duration(durationMs) * time.Millisecond
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list step results: %w", err)
	}

	return steps, nil
}
