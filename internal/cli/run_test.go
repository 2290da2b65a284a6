package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/themizzi/shopcheck/internal/api"
	"github.com/themizzi/shopcheck/internal/campaigns"
	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/models"
	"github.com/themizzi/shopcheck/internal/page"
	"github.com/themizzi/shopcheck/internal/page/pagetest"
	"github.com/themizzi/shopcheck/internal/report"
	"github.com/themizzi/shopcheck/internal/scenario"
	"github.com/themizzi/shopcheck/internal/services"
)

type fakeSession struct{}

func (fakeSession) NewTab() (page.Tab, error) { return pagetest.New("about:blank"), nil }
func (fakeSession) Request() api.Requester    { return nil }
func (fakeSession) Close() error              { return nil }

func newSession() (scenario.Session, error) { return fakeSession{}, nil }

func campaign(baseContext string, steps ...scenario.Step) campaigns.Campaign {
	return campaigns.Campaign{
		BaseContext: baseContext,
		Title:       baseContext,
		Build: func(campaigns.Deps) *scenario.Suite {
			return &scenario.Suite{Steps: steps}
		},
	}
}

func step(id string, ok bool) scenario.Step {
	return scenario.Step{Title: "should " + id, ID: id, Do: func(t *scenario.T, _ *scenario.Env) {
		if !ok {
			t.Errorf("%s failed", id)
		}
	}}
}

func createTestDeps(out *bytes.Buffer, selected ...campaigns.Campaign) RunDependencies {
	return RunDependencies{
		Shop:       &config.ShopConfig{FrontOfficeURL: "http://localhost:8001/", BackOfficeURL: "http://localhost:8001/admin-dev/"},
		Timeouts:   page.DefaultTimeouts(),
		Campaigns:  selected,
		NewSession: newSession,
		Console:    report.NewConsole(out, false, true),
		Parallel:   2,
		Seed:       1,
	}
}

func TestRunCampaigns_AllPassed(t *testing.T) {
	var out bytes.Buffer
	deps := createTestDeps(&out, campaign("first", step("a", true)), campaign("second", step("b", true)))

	results, err := RunCampaignsWithSignals(context.Background(), deps, make(chan os.Signal))
	if err != nil {
		t.Fatalf("RunCampaigns() unexpected error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, result := range results {
		if !result.Passed() {
			t.Errorf("Expected %s to pass", result.BaseContext)
		}
	}
	if !strings.Contains(out.String(), "TOTAL") {
		t.Errorf("Expected a summary table, got:\n%s", out.String())
	}
}

func TestRunCampaigns_Failure(t *testing.T) {
	var out bytes.Buffer
	deps := createTestDeps(&out, campaign("first", step("a", true)), campaign("second", step("b", false), step("c", true)))

	results, err := RunCampaignsWithSignals(context.Background(), deps, make(chan os.Signal))
	if !errors.Is(err, ErrRunFailed) {
		t.Fatalf("Expected ErrRunFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "second") || strings.Contains(err.Error(), "first") {
		t.Errorf("Expected only the failed campaign in %q", err.Error())
	}
	if results[1].Steps[1].Status != scenario.Skipped {
		t.Errorf("Expected the step after a failure to be skipped, got %s", results[1].Steps[1].Status)
	}
}

func TestRunCampaigns_Signal(t *testing.T) {
	var out bytes.Buffer
	shutdown := make(chan os.Signal, 1)
	blocking := scenario.Step{Title: "should wait", ID: "wait", Do: func(_ *scenario.T, env *scenario.Env) {
		shutdown <- syscall.SIGTERM
		select {
		case <-env.Context.Done():
		case <-time.After(5 * time.Second):
		}
	}}
	deps := createTestDeps(&out, campaign("first", blocking, step("after", true)))

	results, err := RunCampaignsWithSignals(context.Background(), deps, shutdown)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("Expected ErrInterrupted, got %v", err)
	}
	if results[0].Steps[1].Status != scenario.Skipped {
		t.Errorf("Expected remaining step to be skipped, got %s", results[0].Steps[1].Status)
	}
}

type memoryResults struct {
	steps       int
	interrupted *bool
}

func (m *memoryResults) StartRun(shopURL string, selected []string) (*models.Run, error) {
	return models.NewRun(shopURL, selected)
}

func (m *memoryResults) RecordStep(string, services.StepRecord) error {
	m.steps++
	return nil
}

func (m *memoryResults) FinishRun(runID string, interrupted bool) (*models.Run, error) {
	m.interrupted = &interrupted
	return &models.Run{ID: runID, Status: models.RunStatusPassed}, nil
}

func TestRunCampaigns_Recorder(t *testing.T) {
	var out bytes.Buffer
	deps := createTestDeps(&out, campaign("first", step("a", true), step("b", true)))
	deps.Parallel = 1

	service := &memoryResults{}
	recorder, err := report.StartRun(service, deps.Shop.FrontOfficeURL, []string{"first"})
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	deps.Recorder = recorder

	if _, err := RunCampaignsWithSignals(context.Background(), deps, make(chan os.Signal)); err != nil {
		t.Fatalf("RunCampaigns() unexpected error = %v", err)
	}
	if service.steps != 2 {
		t.Errorf("Expected 2 recorded steps, got %d", service.steps)
	}
	if service.interrupted == nil || *service.interrupted {
		t.Error("Expected the run to be finished, not interrupted")
	}
}

func TestListCampaigns(t *testing.T) {
	var out bytes.Buffer
	deps := createTestDeps(&out)

	ListCampaigns(&out, []campaigns.Campaign{campaign("first", step("a", true), step("b", true))}, campaigns.Deps{Shop: deps.Shop})

	rendered := out.String()
	for _, want := range []string{"BASE CONTEXT", "first", "2", "TOTAL"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Expected %q in:\n%s", want, rendered)
		}
	}
}
