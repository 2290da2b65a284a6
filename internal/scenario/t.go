package scenario

import (
	"fmt"
	"strings"
	"sync"
)

// failNow unwinds a step after a fatal assertion
type failNow struct{}

// T records the assertion failures of a step. It satisfies
// require.TestingT and assert.TestingT.
type T struct {
	mu       sync.Mutex
	failed   bool
	messages []string
	logs     []string
}

// Errorf records a failure and lets the step continue
func (t *T) Errorf(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failed = true
	t.messages = append(t.messages, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// FailNow marks the step failed and stops it
func (t *T) FailNow() {
	t.mu.Lock()
	t.failed = true
	t.mu.Unlock()
	panic(failNow{})
}

// Fatalf records a failure and stops the step
func (t *T) Fatalf(format string, args ...interface{}) {
	t.Errorf(format, args...)
	t.FailNow()
}

// Logf attaches a message to the step result
func (t *T) Logf(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logs = append(t.logs, fmt.Sprintf(format, args...))
}

// Helper is a no-op kept for compatibility with testing helpers
func (t *T) Helper() {}

// Failed reports whether the step failed
func (t *T) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failed
}

func (t *T) message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.messages, "\n")
}

func (t *T) output() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.logs...)
}
