package page

import "time"

// ElementState is a state a selector can be waited for
type ElementState string

// Element states
const (
	StateVisible  ElementState = "visible"
	StateHidden   ElementState = "hidden"
	StateAttached ElementState = "attached"
	StateDetached ElementState = "detached"
)

// LoadState is a page load milestone
type LoadState string

// Load states
const (
	LoadStateLoad             LoadState = "load"
	LoadStateDOMContentLoaded LoadState = "domcontentloaded"
	LoadStateNetworkIdle      LoadState = "networkidle"
)

// Tab is a single navigable browsing surface.
//
// It is the only contact point between page objects and the browser
// automation library. Implementations report unsatisfied waits with an error
// wrapping ErrTimeout.
type Tab interface {
	URL() string
	Goto(url string, timeout time.Duration) error
	Title() (string, error)

	Click(selector string, timeout time.Duration) error
	// ClickDOM dispatches element.click() in the page, bypassing actionability checks.
	ClickDOM(selector string) error
	Hover(selector string, timeout time.Duration) error
	Fill(selector, value string, timeout time.Duration) error
	Press(selector, key string, timeout time.Duration) error
	Check(selector string, checked bool, timeout time.Duration) error
	SelectOption(selector, label string, timeout time.Duration) error
	DragAndDrop(source, target string, timeout time.Duration) error

	TextContent(selector string, timeout time.Duration) (string, error)
	Attribute(selector, name string, timeout time.Duration) (string, error)
	Count(selector string) (int, error)

	WaitForSelector(selector string, state ElementState, timeout time.Duration) error
	WaitForURL(match func(url string) bool, timeout time.Duration) error
	WaitForLoadState(state LoadState, timeout time.Duration) error

	// ExpectNavigation runs action and waits until the navigation it triggers has loaded.
	ExpectNavigation(action func() error, timeout time.Duration) error
	// ExpectDownload runs action and returns the local path of the file it downloads.
	ExpectDownload(action func() error, timeout time.Duration) (string, error)

	ClipboardText() (string, error)
}
