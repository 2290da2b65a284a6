package report

import (
	"log"

	"github.com/themizzi/shopcheck/internal/scenario"
	"github.com/themizzi/shopcheck/internal/services"
)

// Database records every step of a run through the result service. Storage
// failures are logged and never fail the run.
type Database struct {
	service services.ResultService
	runID   string
}

// StartRun opens a run for campaigns and returns the reporter recording into it
func StartRun(service services.ResultService, shopURL string, campaigns []string) (*Database, error) {
	run, err := service.StartRun(shopURL, campaigns)
	if err != nil {
		return nil, err
	}
	log.Printf("Recording run %s", run.ID)
	return &Database{service: service, runID: run.ID}, nil
}

// RunID returns the id of the recorded run
func (d *Database) RunID() string {
	return d.runID
}

// StepFinished records the step
func (d *Database) StepFinished(suite *scenario.Suite, result scenario.StepResult) {
	record := services.StepRecord{
		Suite:      suiteName(suite),
		Title:      result.Title,
		Identifier: result.Context.Value,
		Status:     string(result.Status),
		Message:    result.Message,
		Duration:   result.Duration,
	}
	if err := d.service.RecordStep(d.runID, record); err != nil {
		log.Printf("Failed to record step %q of run %s: %v", result.Title, d.runID, err)
	}
}

// SuiteFinished is a no-op, runs are counted per step
func (d *Database) SuiteFinished(*scenario.SuiteResult) {}

// Finish closes the run
func (d *Database) Finish(interrupted bool) error {
	run, err := d.service.FinishRun(d.runID, interrupted)
	if err != nil {
		return err
	}
	log.Printf("Run %s %s: %d passed, %d failed, %d skipped", run.ID, run.Status, run.Passed, run.Failed, run.Skipped)
	return nil
}
