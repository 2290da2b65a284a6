package fo

import (
	"strconv"

	"github.com/themizzi/shopcheck/internal/page"
)

const (
	productQuantityInput = "#quantity_wanted"
	productAddToCart     = "#add-to-cart-or-refresh button[data-button-action='add-to-cart']"
	productName          = "#content-wrapper h1.product__name"
)

// Product is a product detail page
type Product struct {
	Base
	BlockCart BlockCart
}

// Name returns the name of the displayed product
func (p Product) Name(tab page.Tab) (string, error) {
	return p.TextContent(tab, productName)
}

// AddProductToTheCart adds quantity items and continues to the cart page
func (p Product) AddProductToTheCart(tab page.Tab, quantity int) error {
	if quantity > 1 {
		if err := p.SetValue(tab, productQuantityInput, strconv.Itoa(quantity)); err != nil {
			return err
		}
	}
	if err := p.ClickAndRequireVisible(tab, productAddToCart, blockCartModal); err != nil {
		return err
	}
	return p.BlockCart.ProceedToCheckout(tab)
}

const searchResultsList = "#js-product-list"

// SearchResults lists the products matching a search
type SearchResults struct {
	Base
}

// QuickViewProduct opens the quick view of the 1-based result
func (p SearchResults) QuickViewProduct(tab page.Tab, n int) error {
	return p.quickView(tab, searchResultsList, n)
}

const quickViewAddToCart = quickViewModal + " button.add-to-cart"

// QuickView is the modal previewing a product from a list
type QuickView struct {
	Base
}

// IsQuickViewProductModalVisible reports whether the modal is displayed
func (p QuickView) IsQuickViewProductModalVisible(tab page.Tab) bool {
	return p.ElementVisible(tab, quickViewModal)
}

// AddToCartByQuickView adds the previewed product and waits for the cart modal
func (p QuickView) AddToCartByQuickView(tab page.Tab) error {
	return p.ClickAndRequireVisible(tab, quickViewAddToCart, blockCartModal)
}

const (
	blockCartModal           = "#blockcart-modal"
	blockCartCheckoutLink    = blockCartModal + " div.cart-content-btn a.btn-primary"
	blockCartContinueButton  = blockCartModal + " div.cart-content-btn button.btn-secondary"
	blockCartProductQuantity = blockCartModal + " .product-quantity"
)

// BlockCart is the modal shown after adding a product to the cart
type BlockCart struct {
	Base
}

// ProceedToCheckout leaves the modal for the cart page
func (p BlockCart) ProceedToCheckout(tab page.Tab) error {
	return p.ClickAndWaitForURL(tab, blockCartCheckoutLink)
}

// ContinueShopping closes the modal
func (p BlockCart) ContinueShopping(tab page.Tab) error {
	if err := p.Click(tab, blockCartContinueButton); err != nil {
		return err
	}
	return p.RequireHidden(tab, blockCartModal)
}

// ProductQuantity returns the quantity displayed in the modal
func (p BlockCart) ProductQuantity(tab page.Tab) (int, error) {
	return p.NumberFromText(tab, blockCartProductQuantity)
}

const categoryBody = "body#category"

// Category is a product listing of one category
type Category struct {
	Base
}

// IsCategoryPage reports whether the tab shows a category
func (p Category) IsCategoryPage(tab page.Tab) bool {
	return p.ElementVisible(tab, categoryBody)
}
