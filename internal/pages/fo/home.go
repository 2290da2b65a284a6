package fo

import "github.com/themizzi/shopcheck/internal/page"

const (
	homeContent       = "section#content.page-home"
	homeProducts      = "#content section.featured-products"
	searchInput       = "#_desktop_search_widget input.js-search-input"
	miniatureTitleTag = ".product-miniature__title a"
)

// Home is the storefront landing page
type Home struct {
	Base
}

// IsHomePage reports whether the tab shows the home page
func (p Home) IsHomePage(tab page.Tab) bool {
	return p.ElementVisible(tab, homeContent)
}

// SearchProduct searches the catalog for name and waits for the results page
func (p Home) SearchProduct(tab page.Tab, name string) error {
	if err := p.SetValue(tab, searchInput, name); err != nil {
		return err
	}
	return p.PressAndWaitForURL(tab, searchInput, "Enter")
}

// GoToProductPage opens the 1-based featured product
func (p Home) GoToProductPage(tab page.Tab, n int) error {
	return p.ClickAndWaitForURL(tab, within(miniature(homeProducts, n), miniatureTitleTag))
}

// ProductName returns the name of the 1-based featured product
func (p Home) ProductName(tab page.Tab, n int) (string, error) {
	return p.TextContent(tab, within(miniature(homeProducts, n), miniatureTitleTag))
}
