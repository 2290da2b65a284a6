package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents valid run states
type RunStatus string

// Run statuses
const (
	RunStatusRunning     RunStatus = "running"
	RunStatusPassed      RunStatus = "passed"
	RunStatusFailed      RunStatus = "failed"
	RunStatusInterrupted RunStatus = "interrupted"
)

// Run is one execution of a set of campaigns against a shop
type Run struct {
	ID         string
	ShopURL    string
	Campaigns  []string
	Status     RunStatus
	Passed     int
	Failed     int
	Skipped    int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Domain errors
var (
	ErrInvalidShopURL          = errors.New("shop URL cannot be empty")
	ErrNoCampaigns             = errors.New("a run needs at least one campaign")
	ErrInvalidStatusTransition = errors.New("invalid run status transition")
	ErrRunFinished             = errors.New("run is already finished")
)

// NewRun creates a running run with validation
func NewRun(shopURL string, campaigns []string) (*Run, error) {
	if shopURL == "" {
		return nil, ErrInvalidShopURL
	}
	if len(campaigns) == 0 {
		return nil, ErrNoCampaigns
	}

	return &Run{
		ID:        uuid.New().String(),
		ShopURL:   shopURL,
		Campaigns: campaigns,
		Status:    RunStatusRunning,
		StartedAt: time.Now(),
	}, nil
}

// Record counts a step result into the run
func (r *Run) Record(step *StepResult) error {
	if !r.IsRunning() {
		return fmt.Errorf("%w: cannot record a step in a %s run", ErrRunFinished, r.Status)
	}
	if step.RunID != r.ID {
		return fmt.Errorf("step belongs to run %s, not %s", step.RunID, r.ID)
	}

	switch step.Status {
	case StepStatusPassed:
		r.Passed++
	case StepStatusFailed:
		r.Failed++
	case StepStatusSkipped:
		r.Skipped++
	}
	return nil
}

// Finish closes the run as passed or failed depending on its failed steps
func (r *Run) Finish() error {
	if !r.IsRunning() {
		return fmt.Errorf("%w: cannot finish a %s run", ErrInvalidStatusTransition, r.Status)
	}

	r.Status = RunStatusPassed
	if r.Failed > 0 {
		r.Status = RunStatusFailed
	}
	r.FinishedAt = time.Now()
	return nil
}

// Interrupt closes a run that was cancelled before completion
func (r *Run) Interrupt() error {
	if !r.IsRunning() {
		return fmt.Errorf("%w: cannot interrupt a %s run", ErrInvalidStatusTransition, r.Status)
	}

	r.Status = RunStatusInterrupted
	r.FinishedAt = time.Now()
	return nil
}

// IsRunning returns true while steps can still be recorded
func (r *Run) IsRunning() bool {
	return r.Status == RunStatusRunning
}

// Total returns the number of recorded steps
func (r *Run) Total() int {
	return r.Passed + r.Failed + r.Skipped
}

// Duration returns how long the run took, or has taken so far
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
