package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/shopcheck/internal/api"
	"github.com/themizzi/shopcheck/internal/page"
)

// Session is one isolated browser context
type Session struct {
	ctx playwright.BrowserContext
}

// NewTab opens a new tab in the session
func (s *Session) NewTab() (page.Tab, error) {
	p, err := s.ctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}
	return &Tab{page: p}, nil
}

// Request returns an HTTP client sharing the session cookies
func (s *Session) Request() api.Requester {
	return &Requester{request: s.ctx.Request()}
}

// Close closes every tab of the session and discards its state
func (s *Session) Close() error {
	if err := s.ctx.Close(); err != nil && !errors.Is(err, playwright.ErrTargetClosed) {
		return fmt.Errorf("failed to close browser context: %w", err)
	}
	return nil
}
