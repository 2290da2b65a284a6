package fo

import (
	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/page"
)

// Pages bundles every storefront page object
type Pages struct {
	Home              Home
	Product           Product
	SearchResults     SearchResults
	QuickView         QuickView
	BlockCart         BlockCart
	Cart              Cart
	Checkout          Checkout
	OrderConfirmation OrderConfirmation
	Category          Category
}

// New builds the storefront pages of shop
func New(shop *config.ShopConfig, timeouts page.Timeouts) *Pages {
	base := Base{Base: page.NewBase(timeouts), Shop: shop}
	blockCart := BlockCart{base}
	return &Pages{
		Home:              Home{base},
		Product:           Product{Base: base, BlockCart: blockCart},
		SearchResults:     SearchResults{base},
		QuickView:         QuickView{base},
		BlockCart:         blockCart,
		Cart:              Cart{base},
		Checkout:          Checkout{base},
		OrderConfirmation: OrderConfirmation{base},
		Category:          Category{base},
	}
}
