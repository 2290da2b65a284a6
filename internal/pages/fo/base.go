// Package fo holds the page objects of the storefront rendered by the hummingbird theme.
package fo

import (
	"fmt"
	"strings"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/page"
)

const (
	languageToggle      = "#_desktop_language_selector button.dropdown-toggle"
	languageItemPattern = "#_desktop_language_selector ul.dropdown-menu a[data-iso-code='%s']"
	desktopLogo         = "#_desktop_logo a"
	signedInLink        = "#_desktop_user_info a[href*='mylogout']"
	productMiniature    = ".product-miniature"
	quickViewButton     = ".product-miniature__quickview-button"
	quickViewModal      = "div.modal.quickview"
)

// Base holds what every storefront page shares
type Base struct {
	page.Base
	Shop *config.ShopConfig
}

// GoToFo opens the storefront home page
func (b Base) GoToFo(tab page.Tab) error {
	return b.GoTo(tab, b.Shop.FrontOfficeURL)
}

// GoToHomePage follows the shop logo
func (b Base) GoToHomePage(tab page.Tab) error {
	return b.ClickAndWaitForURL(tab, desktopLogo)
}

// ChangeLanguage switches the storefront to the language with iso code lang
func (b Base) ChangeLanguage(tab page.Tab, lang string) error {
	current, err := b.AttributeContent(tab, "html", "lang")
	if err == nil && strings.HasPrefix(current, lang) {
		return nil
	}
	item := fmt.Sprintf(languageItemPattern, lang)
	if err := b.ClickAndRequireVisible(tab, languageToggle, item); err != nil {
		return err
	}
	return b.ClickAndWaitForURL(tab, item)
}

// IsCustomerConnected reports whether a customer is signed in
func (b Base) IsCustomerConnected(tab page.Tab) bool {
	return b.ElementVisible(tab, signedInLink)
}

// miniature returns the selector of the 1-based product miniature inside list
func miniature(list string, n int) string {
	return page.Nth(list+" "+productMiniature, n-1)
}

// within scopes child to the element matched by parent
func within(parent, child string) string {
	return parent + " >> " + child
}

// quickView opens the quick view modal of the 1-based product in list
func (b Base) quickView(tab page.Tab, list string, n int) error {
	product := miniature(list, n)
	if err := b.Hover(tab, product); err != nil {
		return err
	}
	return b.ClickAndRequireVisible(tab, within(product, quickViewButton), quickViewModal)
}
