package bo

import (
	"fmt"

	"github.com/themizzi/shopcheck/internal/page"
)

// Theme names
const (
	ThemeClassic     = "classic"
	ThemeHummingbird = "hummingbird"
)

const (
	themeCardPattern     = "div.theme-card[data-theme-name='%s']"
	themeUseButton       = " button.js-display-use-theme-modal"
	themeUseModalConfirm = "#use_theme_modal_%s button.js-submit-use-theme"
	themeActiveCard      = "div.theme-card-container.active div.theme-card[data-theme-name='%s']"
)

// ThemeSuccessMessage is shown once a theme is enabled
const ThemeSuccessMessage = "Your theme has been correctly enabled"

// Themes is Design > Theme & Logo
type Themes struct {
	Base
}

// ExpectedTitle is the document title of the theme manager
func (p Themes) ExpectedTitle() string {
	return p.Title("Theme & Logo")
}

// IsThemeEnabled reports whether theme is the active one
func (p Themes) IsThemeEnabled(tab page.Tab, theme string) bool {
	return p.ElementVisible(tab, fmt.Sprintf(themeActiveCard, theme))
}

// EnableTheme activates theme and returns the success message. An already
// active theme is left alone and the message is empty.
func (p Themes) EnableTheme(tab page.Tab, theme string) (string, error) {
	if p.IsThemeEnabled(tab, theme) {
		return "", nil
	}
	card := fmt.Sprintf(themeCardPattern, theme)
	if err := p.Hover(tab, card); err != nil {
		return "", err
	}
	confirm := fmt.Sprintf(themeUseModalConfirm, theme)
	if err := p.ClickAndRequireVisible(tab, card+themeUseButton, confirm); err != nil {
		return "", err
	}
	if err := p.ClickAndWaitForURL(tab, confirm); err != nil {
		return "", err
	}
	return p.AlertSuccessContent(tab)
}
