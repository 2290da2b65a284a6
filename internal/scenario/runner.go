package scenario

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/themizzi/shopcheck/internal/testcontext"
)

// Skip reasons
var (
	ErrPreconditionFailed = errors.New("pre-condition failed")
	ErrPreviousStepFailed = errors.New("previous step failed")
)

// Reporter receives results as they are produced. Implementations must be
// safe for concurrent use when suites run in parallel.
type Reporter interface {
	StepFinished(suite *Suite, result StepResult)
	SuiteFinished(result *SuiteResult)
}

// Runner executes suites, each against a fresh session
type Runner struct {
	NewSession SessionFactory
	Reporter   Reporter
}

// NewRunner creates a runner. A nil reporter discards results.
func NewRunner(newSession SessionFactory, reporter Reporter) *Runner {
	if reporter == nil {
		reporter = discard{}
	}
	return &Runner{NewSession: newSession, Reporter: reporter}
}

// RunAll runs suites with at most parallel of them in flight and returns
// their results in the order given. A failing suite never stops the others.
func (r *Runner) RunAll(ctx context.Context, suites []*Suite, parallel int) []*SuiteResult {
	if parallel < 1 {
		parallel = 1
	}
	results := make([]*SuiteResult, len(suites))

	var g errgroup.Group
	g.SetLimit(parallel)
	for i, suite := range suites {
		g.Go(func() error {
			results[i] = r.Run(ctx, suite)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Run executes a suite. Pre suites run first and a failing one skips the
// steps. The first failing step skips the remaining ones. The session is
// closed and post suites run whatever happened before. A suite whose context
// is already done is skipped entirely.
func (r *Runner) Run(ctx context.Context, suite *Suite) *SuiteResult {
	result := &SuiteResult{
		Title:       suite.Title,
		BaseContext: suite.BaseContext,
		Started:     time.Now(),
	}

	if err := ctx.Err(); err != nil {
		result.Steps = r.skipSteps(suite, 0, err)
		result.Status = Skipped
		r.Reporter.SuiteFinished(result)
		return result
	}

	var skip error
	for _, pre := range suite.Pre {
		res := r.Run(ctx, pre)
		result.Pre = append(result.Pre, res)
		if !res.Passed() && skip == nil {
			skip = fmt.Errorf("%w: %s", ErrPreconditionFailed, pre.Title)
		}
	}

	if skip == nil {
		result.Steps = r.runSteps(ctx, suite, result)
	} else {
		result.Steps = r.skipSteps(suite, 0, skip)
	}

	// post-conditions clean the shop even when the run is being cancelled
	cleanup := context.WithoutCancel(ctx)
	for _, post := range suite.Post {
		res := r.Run(cleanup, post)
		result.Post = append(result.Post, res)
		if !res.Passed() {
			result.CleanupFailed = true
			log.Printf("Post-condition %q of %q failed", post.Title, suite.Title)
		}
	}

	result.Status = status(result, skip)
	result.Duration = time.Since(result.Started)
	r.Reporter.SuiteFinished(result)
	return result
}

func status(result *SuiteResult, skip error) Status {
	if skip != nil || result.Err != nil || result.CleanupFailed {
		return Failed
	}
	for _, step := range result.Steps {
		if step.Status != Passed {
			return Failed
		}
	}
	return Passed
}

func (r *Runner) runSteps(ctx context.Context, suite *Suite, result *SuiteResult) []StepResult {
	session, err := r.NewSession()
	if err != nil {
		result.Err = fmt.Errorf("failed to open session: %w", err)
		return r.skipSteps(suite, 0, result.Err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			result.Err = errors.Join(result.Err, fmt.Errorf("failed to close session: %w", err))
		}
	}()

	tab, err := session.NewTab()
	if err != nil {
		result.Err = fmt.Errorf("failed to open tab: %w", err)
		return r.skipSteps(suite, 0, result.Err)
	}

	env := &Env{Context: ctx, Tab: tab, Request: session.Request()}
	steps := make([]StepResult, 0, len(suite.Steps))
	for i, step := range suite.Steps {
		if err := ctx.Err(); err != nil {
			return append(steps, r.skipSteps(suite, i, err)...)
		}

		res := r.runStep(suite, step, env)
		steps = append(steps, res)
		r.Reporter.StepFinished(suite, res)

		if res.Status == Failed {
			return append(steps, r.skipSteps(suite, i+1, ErrPreviousStepFailed)...)
		}
	}
	return steps
}

func (r *Runner) runStep(suite *Suite, step Step, env *Env) (res StepResult) {
	t := &T{}
	started := time.Now()
	res = StepResult{Title: step.Title, Context: identifier(suite, step)}

	defer func() {
		if v := recover(); v != nil {
			if _, ok := v.(failNow); !ok {
				t.Errorf("panic: %v", v)
			}
		}
		res.Duration = time.Since(started)
		res.Logs = t.output()
		res.Status = Passed
		if t.Failed() {
			res.Status = Failed
			res.Message = t.message()
		}
	}()

	if step.Do != nil {
		step.Do(t, env)
	}
	return res
}

func (r *Runner) skipSteps(suite *Suite, from int, reason error) []StepResult {
	skipped := make([]StepResult, 0, len(suite.Steps)-from)
	for _, step := range suite.Steps[from:] {
		res := StepResult{
			Title:   step.Title,
			Context: identifier(suite, step),
			Status:  Skipped,
			Message: reason.Error(),
		}
		skipped = append(skipped, res)
		r.Reporter.StepFinished(suite, res)
	}
	return skipped
}

func identifier(suite *Suite, step Step) testcontext.Item {
	base := step.BaseContext
	if base == "" {
		base = suite.BaseContext
	}
	return testcontext.TestIdentifier(base, step.ID)
}

type discard struct{}

func (discard) StepFinished(*Suite, StepResult) {}
func (discard) SuiteFinished(*SuiteResult)      {}
