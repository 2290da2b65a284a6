package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/themizzi/shopcheck/internal/campaigns"
	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/page"
	"github.com/themizzi/shopcheck/internal/pages/bo"
	"github.com/themizzi/shopcheck/internal/pages/fo"
	"github.com/themizzi/shopcheck/internal/report"
	"github.com/themizzi/shopcheck/internal/scenario"
)

// Run outcomes
var (
	ErrRunFailed   = errors.New("some campaigns failed")
	ErrInterrupted = errors.New("run interrupted")
)

// RunDependencies holds everything needed to run campaigns
type RunDependencies struct {
	Shop       *config.ShopConfig
	Timeouts   page.Timeouts
	Campaigns  []campaigns.Campaign
	NewSession scenario.SessionFactory
	Console    *report.Console
	// Recorder stores the run when set
	Recorder *report.Database
	Parallel int
	Seed     int64
}

// RunCampaigns runs the campaigns until they finish or the process is signalled
func RunCampaigns(deps RunDependencies) ([]*scenario.SuiteResult, error) {
	return RunCampaignsWithSignals(context.Background(), deps, nil)
}

// RunCampaignsWithSignals runs the campaigns and cancels them when a signal
// arrives on shutdown. A nil channel is registered with signal.Notify.
// Cancelled suites skip their remaining steps, close their session and
// still run their post-conditions.
func RunCampaignsWithSignals(ctx context.Context, deps RunDependencies, shutdown chan os.Signal) ([]*scenario.SuiteResult, error) {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case sig := <-shutdown:
			log.Printf("Received signal: %v, stopping campaigns...", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	suites := campaigns.Suites(campaigns.Deps{
		Shop:     deps.Shop,
		BO:       bo.New(deps.Shop, deps.Timeouts),
		FO:       fo.New(deps.Shop, deps.Timeouts),
		Fixtures: fixtures.NewGenerator(deps.Seed),
	}, deps.Campaigns)

	reporters := report.Multi{deps.Console}
	if deps.Recorder != nil {
		reporters = append(reporters, deps.Recorder)
	}

	log.Printf("Running %d campaigns against %s", len(suites), deps.Shop.FrontOfficeURL)
	results := scenario.NewRunner(deps.NewSession, reporters).RunAll(ctx, suites, deps.Parallel)
	deps.Console.Summary(results)

	interrupted := ctx.Err() != nil
	if deps.Recorder != nil {
		if err := deps.Recorder.Finish(interrupted); err != nil {
			log.Printf("Failed to close recorded run %s: %v", deps.Recorder.RunID(), err)
		}
	}

	if interrupted {
		return results, ErrInterrupted
	}
	for _, result := range results {
		if !result.Passed() {
			return results, fmt.Errorf("%w: %s", ErrRunFailed, failedContexts(results))
		}
	}
	return results, nil
}

func failedContexts(results []*scenario.SuiteResult) string {
	var failed []string
	for _, result := range results {
		if !result.Passed() {
			failed = append(failed, result.BaseContext)
		}
	}
	return fmt.Sprint(failed)
}
