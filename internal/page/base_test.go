package page_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/page"
	"github.com/themizzi/shopcheck/internal/page/pagetest"
)

func TestNewBase_Defaults(t *testing.T) {
	base := page.NewBase(page.Timeouts{Action: time.Second})

	assert.Equal(t, time.Second, base.Timeouts.Action)
	assert.Equal(t, page.DefaultTimeouts().Navigation, base.Timeouts.Navigation)
	assert.Equal(t, page.DefaultTimeouts().Probe, base.Timeouts.Probe)
	assert.Equal(t, page.DefaultTimeouts().LongWait, base.Timeouts.LongWait)
}

func TestBase_ClickAndWaitForURL(t *testing.T) {
	base := page.NewBase(page.Timeouts{})

	t.Run("click triggers navigation", func(t *testing.T) {
		tab := pagetest.New("http://shop/admin")
		tab.Set("#link", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Navigate("http://shop/admin/groups")
		}})

		require.NoError(t, base.ClickAndWaitForURL(tab, "#link"))
		assert.Equal(t, "http://shop/admin/groups", tab.URL())
	})

	t.Run("click without navigation times out", func(t *testing.T) {
		tab := pagetest.New("http://shop/admin")
		tab.Set("#link", &pagetest.Element{})

		err := base.ClickAndWaitForURL(tab, "#link")
		require.Error(t, err)
		assert.ErrorIs(t, err, page.ErrNavigationTimeout)
		assert.ErrorIs(t, err, page.ErrTimeout)
	})

	t.Run("missing element times out", func(t *testing.T) {
		tab := pagetest.New("http://shop/admin")

		err := base.ClickAndWaitForURL(tab, "#missing")
		assert.ErrorIs(t, err, page.ErrNavigationTimeout)
	})
}

func TestBase_ClickAndWaitForLoadState(t *testing.T) {
	base := page.NewBase(page.Timeouts{})
	tab := pagetest.New("http://shop/admin")
	tab.Set("#save", &pagetest.Element{})

	require.NoError(t, base.ClickAndWaitForLoadState(tab, "#save"))

	tab.LoadErr = page.ErrTimeout
	err := base.ClickAndWaitForLoadState(tab, "#save")
	assert.ErrorIs(t, err, page.ErrNavigationTimeout)
}

func TestBase_SetValue(t *testing.T) {
	base := page.NewBase(page.Timeouts{})

	t.Run("clears then fills", func(t *testing.T) {
		tab := pagetest.New("http://shop")
		tab.Set("#name", &pagetest.Element{Value: "old"})

		require.NoError(t, base.SetValue(tab, "#name", "new"))
		assert.Equal(t, []string{"fill #name=", "fill #name=new"}, tab.Actions())
		assert.Equal(t, "new", tab.Element("#name").Value)
	})

	t.Run("hidden field is not interactable", func(t *testing.T) {
		tab := pagetest.New("http://shop")
		tab.Set("#name", &pagetest.Element{Hidden: true})

		err := base.SetValue(tab, "#name", "new")
		assert.ErrorIs(t, err, page.ErrElementNotInteractable)
	})

	t.Run("disabled field is not interactable", func(t *testing.T) {
		tab := pagetest.New("http://shop")
		tab.Set("#name", &pagetest.Element{Disabled: true})

		err := base.SetValue(tab, "#name", "new")
		assert.ErrorIs(t, err, page.ErrElementNotInteractable)
	})
}

func TestBase_TextAndAttributeContent(t *testing.T) {
	base := page.NewBase(page.Timeouts{})
	tab := pagetest.New("http://shop")
	tab.Set("h1", &pagetest.Element{Text: "  Groups \n", Attrs: map[string]string{"data-id": "3"}})

	text, err := base.TextContent(tab, "h1")
	require.NoError(t, err)
	assert.Equal(t, "Groups", text)

	attr, err := base.AttributeContent(tab, "h1", "data-id")
	require.NoError(t, err)
	assert.Equal(t, "3", attr)

	_, err = base.TextContent(tab, "h2")
	assert.ErrorIs(t, err, page.ErrElementNotFound)

	_, err = base.AttributeContent(tab, "h2", "data-id")
	assert.ErrorIs(t, err, page.ErrElementNotFound)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "count in parentheses", text: "Attribute values (14)", want: 14},
		{name: "leading number", text: "3 results", want: 3},
		{name: "first of several", text: "Showing 1 - 50 of 120", want: 1},
		{name: "zero", text: "Groups (0)", want: 0},
		{name: "no number", text: "No records found", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := page.ParseNumber(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, page.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBase_NumberFromText(t *testing.T) {
	base := page.NewBase(page.Timeouts{})
	tab := pagetest.New("http://shop")
	tab.Set(".title", &pagetest.Element{Text: "Customers (42)"})
	tab.Set(".empty", &pagetest.Element{Text: "Customers"})

	n, err := base.NumberFromText(tab, ".title")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = base.NumberFromText(tab, ".empty")
	assert.ErrorIs(t, err, page.ErrParse)
}

func TestBase_VisibilityProbes(t *testing.T) {
	base := page.NewBase(page.Timeouts{})
	tab := pagetest.New("http://shop")
	tab.Set("#shown", &pagetest.Element{})
	tab.Set("#hidden", &pagetest.Element{Hidden: true})

	assert.True(t, base.WaitForVisibleSelector(tab, "#shown", time.Second))
	assert.False(t, base.WaitForVisibleSelector(tab, "#hidden", time.Second))
	assert.False(t, base.WaitForVisibleSelector(tab, "#missing", time.Second))

	assert.False(t, base.ElementNotVisible(tab, "#shown", time.Second))
	assert.True(t, base.ElementNotVisible(tab, "#hidden", time.Second))
	assert.True(t, base.ElementNotVisible(tab, "#missing", time.Second))

	assert.NoError(t, base.RequireVisible(tab, "#shown"))
	assert.ErrorIs(t, base.RequireVisible(tab, "#hidden"), page.ErrElementNotFound)
}

func TestBase_DragAndDrop(t *testing.T) {
	base := page.NewBase(page.Timeouts{})
	tab := pagetest.New("http://shop")
	tab.Set("#a", &pagetest.Element{})
	tab.Set("#b", &pagetest.Element{})

	require.NoError(t, base.DragAndDrop(tab, "#a", "#b", false))
	assert.Equal(t, []string{"drag #a -> #b"}, tab.Actions())

	tab.LoadErr = page.ErrTimeout
	assert.NoError(t, base.DragAndDrop(tab, "#a", "#b", false))
	assert.ErrorIs(t, base.DragAndDrop(tab, "#a", "#b", true), page.ErrNavigationTimeout)

	assert.ErrorIs(t, base.DragAndDrop(tab, "#a", "#missing", false), page.ErrElementNotInteractable)
}

func TestBase_DownloadFile(t *testing.T) {
	base := page.NewBase(page.Timeouts{})
	tab := pagetest.New("http://shop")
	tab.Set("#generate", &pagetest.Element{})

	_, err := base.DownloadFile(tab, "#generate")
	assert.ErrorIs(t, err, page.ErrNavigationTimeout)

	tab.Download = "/tmp/slips.pdf"
	path, err := base.DownloadFile(tab, "#generate")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/slips.pdf", path)
}

func TestUntil(t *testing.T) {
	t.Run("already satisfied runs no action", func(t *testing.T) {
		calls := 0
		err := page.Until(2, func() bool { return true }, func() error { calls++; return nil })
		require.NoError(t, err)
		assert.Equal(t, 0, calls)
	})

	t.Run("satisfied after one action", func(t *testing.T) {
		calls := 0
		err := page.Until(2, func() bool { return calls >= 1 }, func() error { calls++; return nil })
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("satisfied by the last action", func(t *testing.T) {
		calls := 0
		err := page.Until(2, func() bool { return calls >= 2 }, func() error { calls++; return nil })
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("never satisfied", func(t *testing.T) {
		calls := 0
		err := page.Until(2, func() bool { return false }, func() error { calls++; return nil })
		assert.ErrorIs(t, err, page.ErrAttemptsExhausted)
		assert.Equal(t, 2, calls)
	})

	t.Run("action error stops retrying", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := page.Until(3, func() bool { return false }, func() error { calls++; return boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
