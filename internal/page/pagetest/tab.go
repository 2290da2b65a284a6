// Package pagetest provides a scripted in-memory page.Tab for testing page objects.
package pagetest

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/themizzi/shopcheck/internal/page"
)

// Element is the scripted state of one selector
type Element struct {
	Text     string
	Value    string
	Attrs    map[string]string
	Hidden   bool
	Disabled bool
	Checked  bool
	Options  []string

	OnClick  func(t *Tab)
	OnSelect func(t *Tab, label string)
	OnDrop   func(t *Tab, source string)
	OnPress  func(t *Tab, key string)
}

// Tab is a page.Tab backed by a map of exact selectors to elements.
// Unsatisfied waits fail immediately with an error wrapping page.ErrTimeout.
type Tab struct {
	mu        sync.Mutex
	url       string
	title     string
	elements  map[string]*Element
	counts    map[string]int
	navigated bool
	actions   []string

	Download  string
	Clipboard string
	LoadErr   error
	OnGoto    func(t *Tab, url string)
}

var _ page.Tab = (*Tab)(nil)

// New creates a fake tab positioned at url
func New(url string) *Tab {
	return &Tab{
		url:      url,
		elements: make(map[string]*Element),
		counts:   make(map[string]int),
	}
}

// Set registers el under selector, replacing any previous element
func (t *Tab) Set(selector string, el *Element) *Tab {
	t.mu.Lock()
	defer t.mu.Unlock()
	if el.Attrs == nil {
		el.Attrs = make(map[string]string)
	}
	t.elements[selector] = el
	return t
}

// Remove detaches selector
func (t *Tab) Remove(selector string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.elements, selector)
}

// Element returns the element registered under selector, or nil
func (t *Tab) Element(selector string) *Element {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elements[selector]
}

// SetCount fixes the value Count returns for selector
func (t *Tab) SetCount(selector string, n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[selector] = n
}

// SetTitle sets the document title
func (t *Tab) SetTitle(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.title = title
}

// Navigate moves the tab to url and records that a navigation happened
func (t *Tab) Navigate(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.url = url
	t.navigated = true
}

// Actions returns the interactions performed so far, in order
func (t *Tab) Actions() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.actions...)
}

// Selectors returns every registered selector, sorted
func (t *Tab) Selectors() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	selectors := make([]string, 0, len(t.elements))
	for s := range t.elements {
		selectors = append(selectors, s)
	}
	sort.Strings(selectors)
	return selectors
}

func (t *Tab) record(format string, args ...any) {
	t.actions = append(t.actions, fmt.Sprintf(format, args...))
}

func timeout(selector, state string) error {
	return fmt.Errorf("%w: waiting for %s to be %s", page.ErrTimeout, selector, state)
}

// visible returns the element when it is attached and shown
func (t *Tab) visible(selector string) (*Element, error) {
	el, ok := t.elements[selector]
	if !ok || el.Hidden {
		return nil, timeout(selector, "visible")
	}
	return el, nil
}

func (t *Tab) attached(selector string) (*Element, error) {
	el, ok := t.elements[selector]
	if !ok {
		return nil, timeout(selector, "attached")
	}
	return el, nil
}

func (t *Tab) URL() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.url
}

func (t *Tab) Goto(url string, _ time.Duration) error {
	t.Navigate(url)
	t.mu.Lock()
	t.record("goto %s", url)
	hook := t.OnGoto
	t.mu.Unlock()
	if hook != nil {
		hook(t, url)
	}
	return nil
}

func (t *Tab) Title() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.title, nil
}

func (t *Tab) Click(selector string, _ time.Duration) error {
	t.mu.Lock()
	el, err := t.visible(selector)
	if err == nil && el.Disabled {
		err = timeout(selector, "enabled")
	}
	if err != nil {
		t.mu.Unlock()
		return err
	}
	t.record("click %s", selector)
	hook := el.OnClick
	t.mu.Unlock()

	if hook != nil {
		hook(t)
	}
	return nil
}

func (t *Tab) ClickDOM(selector string) error {
	t.mu.Lock()
	el, err := t.attached(selector)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	t.record("dom-click %s", selector)
	hook := el.OnClick
	t.mu.Unlock()

	if hook != nil {
		hook(t)
	}
	return nil
}

func (t *Tab) Hover(selector string, _ time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.visible(selector); err != nil {
		return err
	}
	t.record("hover %s", selector)
	return nil
}

func (t *Tab) Fill(selector, value string, _ time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, err := t.visible(selector)
	if err != nil {
		return err
	}
	if el.Disabled {
		return timeout(selector, "editable")
	}
	el.Value = value
	t.record("fill %s=%s", selector, value)
	return nil
}

func (t *Tab) Press(selector, key string, _ time.Duration) error {
	t.mu.Lock()
	el, err := t.visible(selector)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	t.record("press %s=%s", selector, key)
	hook := el.OnPress
	t.mu.Unlock()

	if hook != nil {
		hook(t, key)
	}
	return nil
}

func (t *Tab) Check(selector string, checked bool, _ time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, err := t.visible(selector)
	if err != nil {
		return err
	}
	el.Checked = checked
	t.record("check %s=%t", selector, checked)
	return nil
}

func (t *Tab) SelectOption(selector, label string, _ time.Duration) error {
	t.mu.Lock()
	el, err := t.visible(selector)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	if len(el.Options) > 0 && !contains(el.Options, label) {
		t.mu.Unlock()
		return timeout(fmt.Sprintf("%s option %q", selector, label), "attached")
	}
	el.Value = label
	t.record("select %s=%s", selector, label)
	hook := el.OnSelect
	t.mu.Unlock()

	if hook != nil {
		hook(t, label)
	}
	return nil
}

func (t *Tab) DragAndDrop(source, target string, _ time.Duration) error {
	t.mu.Lock()
	if _, err := t.visible(source); err != nil {
		t.mu.Unlock()
		return err
	}
	dst, err := t.visible(target)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	t.record("drag %s -> %s", source, target)
	hook := dst.OnDrop
	t.mu.Unlock()

	if hook != nil {
		hook(t, source)
	}
	return nil
}

func (t *Tab) TextContent(selector string, _ time.Duration) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, err := t.attached(selector)
	if err != nil {
		return "", err
	}
	return el.Text, nil
}

func (t *Tab) Attribute(selector, name string, _ time.Duration) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, err := t.attached(selector)
	if err != nil {
		return "", err
	}
	return el.Attrs[name], nil
}

func (t *Tab) Count(selector string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.counts[selector]; ok {
		return n, nil
	}
	n := 0
	for s := range t.elements {
		if s == selector || strings.HasPrefix(s, selector+":nth-child(") && !strings.Contains(strings.TrimPrefix(s, selector), " ") {
			n++
		}
	}
	return n, nil
}

func (t *Tab) WaitForSelector(selector string, state page.ElementState, _ time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, ok := t.elements[selector]
	var satisfied bool
	switch state {
	case page.StateVisible:
		satisfied = ok && !el.Hidden
	case page.StateHidden:
		satisfied = !ok || el.Hidden
	case page.StateAttached:
		satisfied = ok
	case page.StateDetached:
		satisfied = !ok
	}
	if !satisfied {
		return timeout(selector, string(state))
	}
	return nil
}

func (t *Tab) WaitForURL(match func(url string) bool, _ time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !match(t.url) {
		return fmt.Errorf("%w: url %s did not match", page.ErrTimeout, t.url)
	}
	return nil
}

func (t *Tab) WaitForLoadState(_ page.LoadState, _ time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.LoadErr
}

func (t *Tab) ExpectNavigation(action func() error, _ time.Duration) error {
	t.mu.Lock()
	t.navigated = false
	t.mu.Unlock()

	if err := action(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.navigated {
		return fmt.Errorf("%w: no navigation from %s", page.ErrTimeout, t.url)
	}
	return nil
}

func (t *Tab) ExpectDownload(action func() error, _ time.Duration) (string, error) {
	if err := action(); err != nil {
		return "", err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Download == "" {
		return "", fmt.Errorf("%w: no download started", page.ErrTimeout)
	}
	return t.Download, nil
}

func (t *Tab) ClipboardText() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.Clipboard, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
