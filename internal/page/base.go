package page

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Timeouts bounds every wait performed by page objects
type Timeouts struct {
	Action     time.Duration
	Navigation time.Duration
	Probe      time.Duration
	LongWait   time.Duration
}

// DefaultTimeouts returns the timeouts used when none are configured
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Action:     10 * time.Second,
		Navigation: 30 * time.Second,
		Probe:      2 * time.Second,
		LongWait:   20 * time.Second,
	}
}

// Base provides the interaction primitives every page object is built from.
//
// A Base holds configuration only. Every method receives the Tab it acts on,
// so one value can be shared by any number of concurrently running suites.
type Base struct {
	Timeouts Timeouts
}

// NewBase creates a Base, filling zero timeouts with defaults
func NewBase(timeouts Timeouts) Base {
	defaults := DefaultTimeouts()
	if timeouts.Action <= 0 {
		timeouts.Action = defaults.Action
	}
	if timeouts.Navigation <= 0 {
		timeouts.Navigation = defaults.Navigation
	}
	if timeouts.Probe <= 0 {
		timeouts.Probe = defaults.Probe
	}
	if timeouts.LongWait <= 0 {
		timeouts.LongWait = defaults.LongWait
	}
	return Base{Timeouts: timeouts}
}

var numberPattern = regexp.MustCompile(`\d+`)

// GoTo navigates the tab to url
func (b Base) GoTo(tab Tab, url string) error {
	if err := tab.Goto(url, b.Timeouts.Navigation); err != nil {
		return classify(ErrNavigationTimeout, url, err)
	}
	return nil
}

// PageTitle returns the document title
func (b Base) PageTitle(tab Tab) (string, error) {
	title, err := tab.Title()
	if err != nil {
		return "", fmt.Errorf("failed to read page title: %w", err)
	}
	return title, nil
}

// ClickAndWaitForURL clicks selector and waits for the navigation it triggers
func (b Base) ClickAndWaitForURL(tab Tab, selector string) error {
	err := tab.ExpectNavigation(func() error {
		return tab.Click(selector, b.Timeouts.Action)
	}, b.Timeouts.Navigation)
	if err != nil {
		return classify(ErrNavigationTimeout, selector, err)
	}
	return nil
}

// ClickAndWaitForLoadState clicks selector and waits for the network to go idle
func (b Base) ClickAndWaitForLoadState(tab Tab, selector string) error {
	if err := tab.Click(selector, b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, selector, err)
	}
	if err := tab.WaitForLoadState(LoadStateNetworkIdle, b.Timeouts.Navigation); err != nil {
		return classify(ErrNavigationTimeout, selector, err)
	}
	return nil
}

// Click clicks selector without waiting for any navigation
func (b Base) Click(tab Tab, selector string) error {
	if err := tab.Click(selector, b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, selector, err)
	}
	return nil
}

// Hover moves the pointer over selector
func (b Base) Hover(tab Tab, selector string) error {
	if err := tab.Hover(selector, b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, selector, err)
	}
	return nil
}

// SetValue clears the field at selector and types value into it
func (b Base) SetValue(tab Tab, selector, value string) error {
	if err := tab.Fill(selector, "", b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, selector, err)
	}
	if err := tab.Fill(selector, value, b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, selector, err)
	}
	return nil
}

// PressAndWaitForURL presses key in selector and waits for the navigation it triggers
func (b Base) PressAndWaitForURL(tab Tab, selector, key string) error {
	err := tab.ExpectNavigation(func() error {
		return tab.Press(selector, key, b.Timeouts.Action)
	}, b.Timeouts.Navigation)
	if err != nil {
		return classify(ErrNavigationTimeout, selector, err)
	}
	return nil
}

// SetChecked sets a checkbox or radio to checked
func (b Base) SetChecked(tab Tab, selector string, checked bool) error {
	if err := tab.Check(selector, checked, b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, selector, err)
	}
	return nil
}

// SelectByVisibleText picks the option labelled label in a select element
func (b Base) SelectByVisibleText(tab Tab, selector, label string) error {
	if err := tab.SelectOption(selector, label, b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, selector, err)
	}
	return nil
}

// TextContent returns the text of the first element matching selector
func (b Base) TextContent(tab Tab, selector string) (string, error) {
	text, err := tab.TextContent(selector, b.Timeouts.Action)
	if err != nil {
		return "", classify(ErrElementNotFound, selector, err)
	}
	return strings.TrimSpace(text), nil
}

// AttributeContent returns attribute name of the first element matching selector
func (b Base) AttributeContent(tab Tab, selector, name string) (string, error) {
	value, err := tab.Attribute(selector, name, b.Timeouts.Action)
	if err != nil {
		return "", classify(ErrElementNotFound, selector, err)
	}
	return value, nil
}

// NumberFromText extracts the first integer from the text at selector
func (b Base) NumberFromText(tab Tab, selector string) (int, error) {
	text, err := b.TextContent(tab, selector)
	if err != nil {
		return 0, err
	}
	return ParseNumber(text)
}

// ParseNumber returns the first integer embedded in text
func ParseNumber(text string) (int, error) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrParse, text, err)
	}
	return n, nil
}

// ElementsCount returns how many elements currently match selector
func (b Base) ElementsCount(tab Tab, selector string) (int, error) {
	n, err := tab.Count(selector)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", selector, err)
	}
	return n, nil
}

// WaitForVisibleSelector reports whether selector became visible within timeout
func (b Base) WaitForVisibleSelector(tab Tab, selector string, timeout time.Duration) bool {
	return tab.WaitForSelector(selector, StateVisible, timeout) == nil
}

// ElementNotVisible reports whether selector is hidden or became hidden within timeout
func (b Base) ElementNotVisible(tab Tab, selector string, timeout time.Duration) bool {
	return tab.WaitForSelector(selector, StateHidden, timeout) == nil
}

// ElementVisible reports whether selector is visible right now, probing briefly
func (b Base) ElementVisible(tab Tab, selector string) bool {
	return b.WaitForVisibleSelector(tab, selector, b.Timeouts.Probe)
}

// RequireVisible waits for selector to become visible, failing after the action timeout
func (b Base) RequireVisible(tab Tab, selector string) error {
	return b.RequireVisibleWithin(tab, selector, b.Timeouts.Action)
}

// RequireVisibleWithin waits for selector to become visible, failing after timeout
func (b Base) RequireVisibleWithin(tab Tab, selector string, timeout time.Duration) error {
	if err := tab.WaitForSelector(selector, StateVisible, timeout); err != nil {
		return classify(ErrElementNotFound, selector, err)
	}
	return nil
}

// RequireHidden waits for selector to disappear, failing after the action timeout
func (b Base) RequireHidden(tab Tab, selector string) error {
	if err := tab.WaitForSelector(selector, StateHidden, b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, selector, err)
	}
	return nil
}

// ClickAndRequireVisible clicks selector then waits for next to become visible
func (b Base) ClickAndRequireVisible(tab Tab, selector, next string) error {
	if err := b.Click(tab, selector); err != nil {
		return err
	}
	return b.RequireVisible(tab, next)
}

// DragAndDrop drags source onto target. With confirm set, it also waits for
// the request the drop triggers to settle.
func (b Base) DragAndDrop(tab Tab, source, target string, confirm bool) error {
	if err := tab.DragAndDrop(source, target, b.Timeouts.Action); err != nil {
		return classify(ErrElementNotInteractable, source, err)
	}
	if !confirm {
		return nil
	}
	if err := tab.WaitForLoadState(LoadStateNetworkIdle, b.Timeouts.Navigation); err != nil {
		return classify(ErrNavigationTimeout, target, err)
	}
	return nil
}

// DownloadFile clicks selector and returns the path of the downloaded file
func (b Base) DownloadFile(tab Tab, selector string) (string, error) {
	path, err := tab.ExpectDownload(func() error {
		return tab.Click(selector, b.Timeouts.Action)
	}, b.Timeouts.Navigation)
	if err != nil {
		return "", classify(ErrNavigationTimeout, selector, err)
	}
	return path, nil
}

// Until runs action until satisfied reports true, at most attempts times.
// It returns ErrAttemptsExhausted if the condition still does not hold.
func Until(attempts int, satisfied func() bool, action func() error) error {
	for i := 0; i < attempts; i++ {
		if satisfied() {
			return nil
		}
		if err := action(); err != nil {
			return err
		}
	}
	if satisfied() {
		return nil
	}
	return fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, attempts)
}

// Nth selects the 0-based i-th element matching selector
func Nth(selector string, i int) string {
	return fmt.Sprintf("%s >> nth=%d", selector, i)
}

// classify maps a Tab error onto the page error taxonomy
func classify(kind error, selector string, err error) error {
	if errors.Is(err, ErrTimeout) {
		return fmt.Errorf("%w: %s: %w", kind, selector, err)
	}
	return fmt.Errorf("failed on %s: %w", selector, err)
}
