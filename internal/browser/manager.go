// Package browser drives real browsers through playwright and adapts them to
// the page and api capability interfaces.
package browser

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/page"
	"github.com/themizzi/shopcheck/internal/scenario"
)

// clipboard permissions are only understood by chromium
var clipboardPermissions = []string{"clipboard-read", "clipboard-write"}

// Manager owns the playwright driver and one launched browser
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     config.BrowserConfig
}

// Launch starts the playwright driver and the configured browser
func Launch(cfg *config.BrowserConfig) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	engine, err := browserType(pw, cfg.Name)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(milliseconds(cfg.SlowMo))
	}

	b, err := engine.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Name, err)
	}
	log.Printf("Launched %s %s (headless=%t)", cfg.Name, b.Version(), cfg.Headless)

	return &Manager{pw: pw, browser: b, cfg: *cfg}, nil
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.Chromium, "":
		return pw.Chromium, nil
	case config.Firefox:
		return pw.Firefox, nil
	case config.WebKit:
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("unsupported browser %q", name)
}

// Timeouts returns the page timeouts derived from the browser configuration
func (m *Manager) Timeouts() page.Timeouts {
	return Timeouts(&m.cfg)
}

// Timeouts converts browser configuration into page timeouts
func Timeouts(cfg *config.BrowserConfig) page.Timeouts {
	return page.NewBase(page.Timeouts{
		Action:     cfg.ActionTimeout,
		Navigation: cfg.NavigationTimeout,
	}).Timeouts
}

// NewSession creates an isolated browser context. Sessions share nothing:
// cookies, storage and downloads belong to the session that created them.
func (m *Manager) NewSession() (*Session, error) {
	opts := playwright.BrowserNewContextOptions{
		AcceptDownloads:   playwright.Bool(true),
		IgnoreHttpsErrors: playwright.Bool(m.cfg.IgnoreHTTPSErrors),
		Locale:            playwright.String(m.cfg.Locale),
		Viewport: &playwright.Size{
			Width:  m.cfg.ViewportWidth,
			Height: m.cfg.ViewportHeight,
		},
	}
	if m.cfg.Name == config.Chromium {
		opts.Permissions = clipboardPermissions
	}

	ctx, err := m.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	ctx.SetDefaultTimeout(milliseconds(m.cfg.ActionTimeout))
	ctx.SetDefaultNavigationTimeout(milliseconds(m.cfg.NavigationTimeout))

	return &Session{ctx: ctx}, nil
}

// Sessions adapts NewSession to the scenario runner
func (m *Manager) Sessions() scenario.SessionFactory {
	return func() (scenario.Session, error) {
		session, err := m.NewSession()
		if err != nil {
			return nil, err
		}
		return session, nil
	}
}

// Close closes the browser and stops the driver
func (m *Manager) Close() error {
	var errs []error
	if err := m.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
	}
	if err := m.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
	}
	return errors.Join(errs...)
}

// Install downloads the playwright driver and the given browsers
func Install(browsers ...string) error {
	if len(browsers) == 0 {
		browsers = []string{config.Chromium}
	}
	if err := playwright.Install(&playwright.RunOptions{Browsers: browsers}); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	return nil
}

func milliseconds(d time.Duration) float64 {
	return float64(d / time.Millisecond)
}
