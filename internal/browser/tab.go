package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/shopcheck/internal/page"
)

// Tab adapts a playwright page to page.Tab
type Tab struct {
	page playwright.Page
}

var _ page.Tab = (*Tab)(nil)

// translate wraps playwright timeouts with page.ErrTimeout
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %w", page.ErrTimeout, err)
	}
	return err
}

func timeout(d time.Duration) *float64 {
	return playwright.Float(milliseconds(d))
}

func (t *Tab) locator(selector string) playwright.Locator {
	return t.page.Locator(selector).First()
}

func (t *Tab) URL() string {
	return t.page.URL()
}

func (t *Tab) Goto(url string, d time.Duration) error {
	_, err := t.page.Goto(url, playwright.PageGotoOptions{Timeout: timeout(d)})
	return translate(err)
}

func (t *Tab) Title() (string, error) {
	return t.page.Title()
}

func (t *Tab) Click(selector string, d time.Duration) error {
	return translate(t.locator(selector).Click(playwright.LocatorClickOptions{Timeout: timeout(d)}))
}

func (t *Tab) ClickDOM(selector string) error {
	_, err := t.locator(selector).Evaluate("el => el.click()", nil)
	return translate(err)
}

func (t *Tab) Hover(selector string, d time.Duration) error {
	return translate(t.locator(selector).Hover(playwright.LocatorHoverOptions{Timeout: timeout(d)}))
}

func (t *Tab) Fill(selector, value string, d time.Duration) error {
	return translate(t.locator(selector).Fill(value, playwright.LocatorFillOptions{Timeout: timeout(d)}))
}

func (t *Tab) Press(selector, key string, d time.Duration) error {
	return translate(t.locator(selector).Press(key, playwright.LocatorPressOptions{Timeout: timeout(d)}))
}

func (t *Tab) Check(selector string, checked bool, d time.Duration) error {
	return translate(t.locator(selector).SetChecked(checked, playwright.LocatorSetCheckedOptions{Timeout: timeout(d)}))
}

func (t *Tab) SelectOption(selector, label string, d time.Duration) error {
	_, err := t.locator(selector).SelectOption(
		playwright.SelectOptionValues{Labels: &[]string{label}},
		playwright.LocatorSelectOptionOptions{Timeout: timeout(d)},
	)
	return translate(err)
}

func (t *Tab) DragAndDrop(source, target string, d time.Duration) error {
	return translate(t.locator(source).DragTo(t.locator(target), playwright.LocatorDragToOptions{Timeout: timeout(d)}))
}

func (t *Tab) TextContent(selector string, d time.Duration) (string, error) {
	text, err := t.locator(selector).TextContent(playwright.LocatorTextContentOptions{Timeout: timeout(d)})
	return text, translate(err)
}

func (t *Tab) Attribute(selector, name string, d time.Duration) (string, error) {
	value, err := t.locator(selector).GetAttribute(name, playwright.LocatorGetAttributeOptions{Timeout: timeout(d)})
	return value, translate(err)
}

func (t *Tab) Count(selector string) (int, error) {
	return t.page.Locator(selector).Count()
}

var selectorStates = map[page.ElementState]*playwright.WaitForSelectorState{
	page.StateVisible:  playwright.WaitForSelectorStateVisible,
	page.StateHidden:   playwright.WaitForSelectorStateHidden,
	page.StateAttached: playwright.WaitForSelectorStateAttached,
	page.StateDetached: playwright.WaitForSelectorStateDetached,
}

func (t *Tab) WaitForSelector(selector string, state page.ElementState, d time.Duration) error {
	s, ok := selectorStates[state]
	if !ok {
		return fmt.Errorf("unknown element state %q", state)
	}
	return translate(t.locator(selector).WaitFor(playwright.LocatorWaitForOptions{State: s, Timeout: timeout(d)}))
}

func (t *Tab) WaitForURL(match func(url string) bool, d time.Duration) error {
	return translate(t.page.WaitForURL(match, playwright.PageWaitForURLOptions{Timeout: timeout(d)}))
}

var loadStates = map[page.LoadState]*playwright.LoadState{
	page.LoadStateLoad:             playwright.LoadStateLoad,
	page.LoadStateDOMContentLoaded: playwright.LoadStateDomcontentloaded,
	page.LoadStateNetworkIdle:      playwright.LoadStateNetworkidle,
}

func (t *Tab) WaitForLoadState(state page.LoadState, d time.Duration) error {
	s, ok := loadStates[state]
	if !ok {
		return fmt.Errorf("unknown load state %q", state)
	}
	return translate(t.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{State: s, Timeout: timeout(d)}))
}

func (t *Tab) ExpectNavigation(action func() error, d time.Duration) error {
	_, err := t.page.ExpectNavigation(action, playwright.PageExpectNavigationOptions{Timeout: timeout(d)})
	return translate(err)
}

func (t *Tab) ExpectDownload(action func() error, d time.Duration) (string, error) {
	download, err := t.page.ExpectDownload(action, playwright.PageExpectDownloadOptions{Timeout: timeout(d)})
	if err != nil {
		return "", translate(err)
	}
	path, err := download.Path()
	if err != nil {
		return "", fmt.Errorf("failed to save download %s: %w", download.SuggestedFilename(), err)
	}
	return path, nil
}

func (t *Tab) ClipboardText() (string, error) {
	value, err := t.page.Evaluate("() => navigator.clipboard.readText()")
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("clipboard returned %T", value)
	}
	return text, nil
}
