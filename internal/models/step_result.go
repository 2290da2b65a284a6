package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StepStatus is the outcome of a step
type StepStatus string

// Step statuses
const (
	StepStatusPassed  StepStatus = "passed"
	StepStatusFailed  StepStatus = "failed"
	StepStatusSkipped StepStatus = "skipped"
)

// StepResult is a recorded step outcome
type StepResult struct {
	ID         string
	RunID      string
	Suite      string
	Title      string
	Identifier string
	Status     StepStatus
	Message    string
	Duration   time.Duration
	CreatedAt  time.Time
}

// Domain errors
var (
	ErrMissingRunID      = errors.New("step result needs a run id")
	ErrInvalidStepTitle  = errors.New("step title cannot be empty")
	ErrInvalidStepStatus = errors.New("invalid step status")
)

// NewStepResult creates a step result with validation. Failed steps without
// a message get a generic one.
func NewStepResult(runID, suite, title, identifier string, status StepStatus, message string, duration time.Duration) (*StepResult, error) {
	if runID == "" {
		return nil, ErrMissingRunID
	}
	if title == "" {
		return nil, ErrInvalidStepTitle
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStepStatus, status)
	}
	if status == StepStatusFailed && message == "" {
		message = "step failed"
	}

	return &StepResult{
		ID:         uuid.New().String(),
		RunID:      runID,
		Suite:      suite,
		Title:      title,
		Identifier: identifier,
		Status:     status,
		Message:    message,
		Duration:   duration,
		CreatedAt:  time.Now(),
	}, nil
}

// Valid reports whether s is a known status
func (s StepStatus) Valid() bool {
	switch s {
	case StepStatusPassed, StepStatusFailed, StepStatusSkipped:
		return true
	}
	return false
}
