package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/themizzi/shopcheck/internal/models"
)

// RunRepository defines the interface for run persistence
type RunRepository interface {
	CreateRun(run *models.Run) error
	GetRun(id string) (*models.Run, error)
	UpdateRun(run *models.Run) error
	CreateStepResult(step *models.StepResult) error
}

// StepRecord is a step outcome as reported by the runner
type StepRecord struct {
	Suite      string
	Title      string
	Identifier string
	Status     string
	Message    string
	Duration   time.Duration
}

// ResultService records runs and their step results
type ResultService interface {
	StartRun(shopURL string, campaigns []string) (*models.Run, error)
	RecordStep(runID string, record StepRecord) error
	FinishRun(runID string, interrupted bool) (*models.Run, error)
}

// ResultServiceImpl implements ResultService
type ResultServiceImpl struct {
	runRepo RunRepository
	// serialises read-modify-write of run counters across parallel suites
	mu sync.Mutex
}

// NewResultService creates a new result service
func NewResultService(runRepo RunRepository) ResultService {
	return &ResultServiceImpl{
		runRepo: runRepo,
	}
}

// StartRun creates and stores a running run
func (s *ResultServiceImpl) StartRun(shopURL string, campaigns []string) (*models.Run, error) {
	run, err := models.NewRun(shopURL, campaigns)
	if err != nil {
		return nil, fmt.Errorf("invalid run: %w", err)
	}

	if err := s.runRepo.CreateRun(run); err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return run, nil
}

// RecordStep stores a step result and counts it into its run
func (s *ResultServiceImpl) RecordStep(runID string, record StepRecord) error {
	step, err := models.NewStepResult(runID, record.Suite, record.Title, record.Identifier,
		models.StepStatus(record.Status), record.Message, record.Duration)
	if err != nil {
		return fmt.Errorf("invalid step result: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	run, err := s.runRepo.GetRun(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	if err := run.Record(step); err != nil {
		return err
	}

	if err := s.runRepo.CreateStepResult(step); err != nil {
		return fmt.Errorf("failed to record step: %w", err)
	}
	if err := s.runRepo.UpdateRun(run); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	return nil
}

// FinishRun closes a run, as interrupted when the run was cancelled
func (s *ResultServiceImpl) FinishRun(runID string, interrupted bool) (*models.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, err := s.runRepo.GetRun(runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if interrupted {
		err = run.Interrupt()
	} else {
		err = run.Finish()
	}
	if err != nil {
		return nil, err
	}

	if err := s.runRepo.UpdateRun(run); err != nil {
		return nil, fmt.Errorf("failed to update run: %w", err)
	}

	return run, nil
}
