package report_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/models"
	"github.com/themizzi/shopcheck/internal/report"
	"github.com/themizzi/shopcheck/internal/scenario"
	"github.com/themizzi/shopcheck/internal/services"
	"github.com/themizzi/shopcheck/internal/testcontext"
)

var suite = &scenario.Suite{Title: "Edit order", BaseContext: "sanity_ordersBO_editOrder"}

func step(title string, status scenario.Status, message string) scenario.StepResult {
	return scenario.StepResult{
		Title:    title,
		Context:  testcontext.TestIdentifier(suite.BaseContext, "step"),
		Status:   status,
		Message:  message,
		Logs:     []string{"clicked #save"},
		Duration: 1200 * time.Millisecond,
	}
}

func TestConsoleStepFinished(t *testing.T) {
	var out bytes.Buffer
	console := report.NewConsole(&out, false, true)

	console.StepFinished(suite, step("should login in BO", scenario.Passed, ""))
	console.StepFinished(suite, step("should go to orders", scenario.Failed, "element not found\nselector #orders"))
	console.StepFinished(suite, step("should logout", scenario.Skipped, "previous step failed"))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "  ✓ [sanity_ordersBO_editOrder] should login in BO", lines[0])
	assert.Equal(t, "  ✗ [sanity_ordersBO_editOrder] should go to orders", lines[1])
	assert.Equal(t, "      element not found", lines[2])
	assert.Equal(t, "      selector #orders", lines[3])
	assert.Equal(t, "  - [sanity_ordersBO_editOrder] should logout", lines[4])
	assert.NotContains(t, out.String(), "clicked #save")
}

func TestConsoleVerbose(t *testing.T) {
	var out bytes.Buffer
	console := report.NewConsole(&out, true, true)

	console.StepFinished(suite, step("should go to orders", scenario.Failed, "boom"))

	assert.Contains(t, out.String(), "testIdentifier=sanity_ordersBO_editOrder_step")
	assert.Contains(t, out.String(), "clicked #save")
}

func TestConsoleSuiteFinished(t *testing.T) {
	var out bytes.Buffer
	console := report.NewConsole(&out, false, true)

	console.SuiteFinished(&scenario.SuiteResult{
		Title:         "Edit order",
		Status:        scenario.Failed,
		CleanupFailed: true,
		Err:           errors.New("failed to open session"),
		Duration:      1500 * time.Millisecond,
	})

	assert.Contains(t, out.String(), "Edit order failed (1.5s)")
	assert.Contains(t, out.String(), "post-condition failed")
	assert.Contains(t, out.String(), "failed to open session")
}

func TestConsoleSummary(t *testing.T) {
	var out bytes.Buffer
	console := report.NewConsole(&out, false, true)

	console.Summary([]*scenario.SuiteResult{
		{
			BaseContext: "sanity_ordersBO_editOrder",
			Status:      scenario.Passed,
			Steps:       []scenario.StepResult{{Status: scenario.Passed}, {Status: scenario.Passed}},
			Duration:    time.Second,
		},
		{
			BaseContext: "functional_BO_modules_moduleManager_filterModulesByStatus",
			Status:      scenario.Failed,
			Steps:       []scenario.StepResult{{Status: scenario.Failed}, {Status: scenario.Skipped}},
			Duration:    2 * time.Second,
		},
	})

	rendered := out.String()
	assert.Contains(t, rendered, "CAMPAIGN")
	assert.Contains(t, rendered, "sanity_ordersBO_editOrder")
	assert.Contains(t, rendered, "functional_BO_modules_moduleManager_filterModulesByStatus")
	assert.Contains(t, rendered, "TOTAL")
	assert.Contains(t, rendered, "3s")
}

func TestConsoleSummaryDurationCase(t *testing.T) {
	var out bytes.Buffer
	console := report.NewConsole(&out, false, true)

	console.Summary([]*scenario.SuiteResult{
		{
			BaseContext: "sanity_ordersBO_editOrder",
			Status:      scenario.Passed,
			Steps:       []scenario.StepResult{{Status: scenario.Passed}},
			Duration:    62 * time.Second,
		},
	})

	footer := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(footer), 2)
	totals := footer[len(footer)-2]
	assert.Contains(t, totals, "TOTAL")
	assert.Contains(t, totals, "1m2s")
	assert.NotContains(t, totals, "1M2S")
}

type recordingService struct {
	mu        sync.Mutex
	records   []services.StepRecord
	recordErr error
	finished  *bool
}

func (s *recordingService) StartRun(shopURL string, campaigns []string) (*models.Run, error) {
	return models.NewRun(shopURL, campaigns)
}

func (s *recordingService) RecordStep(_ string, record services.StepRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return s.recordErr
}

func (s *recordingService) FinishRun(runID string, interrupted bool) (*models.Run, error) {
	s.finished = &interrupted
	return &models.Run{ID: runID, Status: models.RunStatusPassed}, nil
}

func TestDatabase(t *testing.T) {
	service := &recordingService{}
	db, err := report.StartRun(service, "http://localhost:8001/", []string{suite.BaseContext})
	require.NoError(t, err)
	assert.NotEmpty(t, db.RunID())

	db.StepFinished(suite, step("should login in BO", scenario.Passed, ""))
	db.StepFinished(suite, step("should go to orders", scenario.Failed, "boom"))
	db.SuiteFinished(&scenario.SuiteResult{})
	require.NoError(t, db.Finish(true))

	require.Len(t, service.records, 2)
	assert.Equal(t, services.StepRecord{
		Suite:      "sanity_ordersBO_editOrder",
		Title:      "should go to orders",
		Identifier: "sanity_ordersBO_editOrder_step",
		Status:     "failed",
		Message:    "boom",
		Duration:   1200 * time.Millisecond,
	}, service.records[1])
	require.NotNil(t, service.finished)
	assert.True(t, *service.finished)
}

func TestDatabaseRecordErrorIsNotFatal(t *testing.T) {
	service := &recordingService{recordErr: errors.New("database down")}
	db, err := report.StartRun(service, "http://localhost:8001/", []string{suite.BaseContext})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		db.StepFinished(suite, step("should login in BO", scenario.Passed, ""))
	})
}

func TestStartRunInvalid(t *testing.T) {
	_, err := report.StartRun(&recordingService{}, "", []string{suite.BaseContext})
	require.ErrorIs(t, err, models.ErrInvalidShopURL)
}

type countingReporter struct{ steps, suites int }

func (c *countingReporter) StepFinished(*scenario.Suite, scenario.StepResult) { c.steps++ }
func (c *countingReporter) SuiteFinished(*scenario.SuiteResult)               { c.suites++ }

func TestMulti(t *testing.T) {
	first, second := &countingReporter{}, &countingReporter{}
	multi := report.Multi{first, second}

	multi.StepFinished(suite, step("a", scenario.Passed, ""))
	multi.StepFinished(suite, step("b", scenario.Passed, ""))
	multi.SuiteFinished(&scenario.SuiteResult{})

	for _, r := range []*countingReporter{first, second} {
		assert.Equal(t, 2, r.steps)
		assert.Equal(t, 1, r.suites)
	}
}
