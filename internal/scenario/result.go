package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/themizzi/shopcheck/internal/testcontext"
)

// Status is the outcome of a step or suite
type Status string

// Statuses
const (
	Passed  Status = "passed"
	Failed  Status = "failed"
	Skipped Status = "skipped"
)

// StepResult is the outcome of one step
type StepResult struct {
	Title    string
	Context  testcontext.Item
	Status   Status
	Message  string
	Logs     []string
	Duration time.Duration
}

// SuiteResult is the outcome of a suite and its pre and post suites
type SuiteResult struct {
	Title       string
	BaseContext string
	Status      Status
	Pre         []*SuiteResult
	Steps       []StepResult
	Post        []*SuiteResult
	// CleanupFailed is set when a post suite failed
	CleanupFailed bool
	// Err holds session failures that are not attributable to a step
	Err      error
	Started  time.Time
	Duration time.Duration
}

// Passed reports whether the suite and all of its pre and post suites passed
func (r *SuiteResult) Passed() bool {
	return r.Status == Passed
}

// Counts returns the number of passed, failed and skipped steps, including
// those of pre and post suites
func (r *SuiteResult) Counts() (passed, failed, skipped int) {
	for _, nested := range r.Pre {
		p, f, s := nested.Counts()
		passed, failed, skipped = passed+p, failed+f, skipped+s
	}
	for _, step := range r.Steps {
		switch step.Status {
		case Passed:
			passed++
		case Failed:
			failed++
		case Skipped:
			skipped++
		}
	}
	for _, nested := range r.Post {
		p, f, s := nested.Counts()
		passed, failed, skipped = passed+p, failed+f, skipped+s
	}
	return passed, failed, skipped
}

// Failures lists the failing steps as "suite > step: message"
func (r *SuiteResult) Failures() []string {
	var failures []string
	for _, nested := range r.Pre {
		failures = append(failures, nested.Failures()...)
	}
	if r.Err != nil {
		failures = append(failures, fmt.Sprintf("%s: %v", r.Title, r.Err))
	}
	for _, step := range r.Steps {
		if step.Status == Failed {
			failures = append(failures, fmt.Sprintf("%s > %s: %s", r.Title, step.Title, step.Message))
		}
	}
	for _, nested := range r.Post {
		failures = append(failures, nested.Failures()...)
	}
	return failures
}

// Summary renders the failures of the suite, one per line
func (r *SuiteResult) Summary() string {
	if r.Passed() {
		return r.Title + ": passed"
	}
	return strings.Join(r.Failures(), "\n")
}
