package report

import "github.com/themizzi/shopcheck/internal/scenario"

// Multi forwards results to every reporter in order
type Multi []scenario.Reporter

// StepFinished implements scenario.Reporter
func (m Multi) StepFinished(suite *scenario.Suite, result scenario.StepResult) {
	for _, r := range m {
		r.StepFinished(suite, result)
	}
}

// SuiteFinished implements scenario.Reporter
func (m Multi) SuiteFinished(result *scenario.SuiteResult) {
	for _, r := range m {
		r.SuiteFinished(result)
	}
}
