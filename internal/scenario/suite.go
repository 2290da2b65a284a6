// Package scenario runs suites of ordered steps against isolated browser sessions.
package scenario

import (
	"context"

	"github.com/themizzi/shopcheck/internal/api"
	"github.com/themizzi/shopcheck/internal/page"
)

// Session is an isolated browsing context owned by one suite run
type Session interface {
	NewTab() (page.Tab, error)
	Request() api.Requester
	Close() error
}

// SessionFactory opens a new Session
type SessionFactory func() (Session, error)

// Env is what a step acts on
type Env struct {
	Context context.Context
	Tab     page.Tab
	Request api.Requester
}

// Step is one ordered action and its assertions
type Step struct {
	Title string
	// ID is combined with the base context into the step test identifier
	ID string
	// BaseContext overrides the suite base context, for shared steps
	BaseContext string
	Do          func(t *T, env *Env)
}

// Suite is an ordered list of steps sharing one session. Pre suites run
// before it and post suites after it, each with a session of its own.
type Suite struct {
	Title       string
	BaseContext string
	Pre         []*Suite
	Steps       []Step
	Post        []*Suite
}
