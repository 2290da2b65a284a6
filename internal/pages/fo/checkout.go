package fo

import (
	"fmt"

	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/page"
)

// Cart messages
const (
	CartTitle                = "Cart"
	NoItemsInYourCartMessage = "There are no more items in your cart"
)

const (
	cartCheckoutLink = "div.cart-summary div.checkout a.btn"
	cartNoItems      = "#main div.cart-grid__body span.no-items"
)

// Cart is the shopping cart page
type Cart struct {
	Base
}

// ProceedToCheckout validates the cart and opens the checkout
func (p Cart) ProceedToCheckout(tab page.Tab) error {
	return p.ClickAndWaitForURL(tab, cartCheckoutLink)
}

// NoItemsInYourCartMessage returns the notice shown by an empty cart
func (p Cart) NoItemsInYourCartMessage(tab page.Tab) (string, error) {
	return p.TextContent(tab, cartNoItems)
}

// Checkout messages
const (
	AuthenticationErrorMessage = "Authentication failed."
	MessageIfYouSignOut        = "If you sign out now, your cart will be emptied."
)

const (
	checkoutBody = "body#checkout"

	personalInformationStep = "#checkout-personal-information-step"
	addressesStep           = "#checkout-addresses-step"
	deliveryStep            = "#checkout-delivery-step"
	stepCompleteClass       = ".step--complete"
	signInLink              = personalInformationStep + " a[href='#checkout-login-form']"
	loginForm               = "#checkout-login-form"
	loginEmailInput         = loginForm + " input[name='email']"
	loginPasswordInput      = loginForm + " input[name='password']"
	loginSubmitButton       = loginForm + " button#submit-login"
	loginError              = loginForm + " div.alert-danger"
	personalInformationEdit = personalInformationStep + " button.step-edit"
	customerIdentity        = personalInformationStep + " p.identity a"
	logoutMessage           = personalInformationStep + " p.logout-message"
	logoutLink              = personalInformationStep + " a[href*='mylogout']"
	confirmAddressesButton  = addressesStep + " button[name='confirm-addresses']"
	deliveryOptionPattern   = "#delivery_option_%d"
	confirmDeliveryButton   = deliveryStep + " button[name='confirmDeliveryOption']"
	paymentOptionPattern    = "input[data-module-name='%s']"
	termsCheckbox           = "input[name='conditions_to_approve[terms-and-conditions]']"
	paymentConfirmation     = "#payment-confirmation button[type='submit']"
)

// Checkout is the one page checkout
type Checkout struct {
	Base
}

func isComplete(step string) string {
	return step + stepCompleteClass
}

// IsCheckoutPage reports whether the tab shows the checkout
func (p Checkout) IsCheckoutPage(tab page.Tab) bool {
	return p.ElementVisible(tab, checkoutBody)
}

// ClickOnSignIn reveals the login form of the personal information step
func (p Checkout) ClickOnSignIn(tab page.Tab) error {
	return p.ClickAndRequireVisible(tab, signInLink, loginForm)
}

// CustomerLogin submits customer credentials and reports whether the
// personal information step completed
func (p Checkout) CustomerLogin(tab page.Tab, customer fixtures.Customer) (bool, error) {
	if err := p.SetValue(tab, loginEmailInput, customer.Email); err != nil {
		return false, err
	}
	if err := p.SetValue(tab, loginPasswordInput, customer.Password); err != nil {
		return false, err
	}
	if err := p.ClickAndWaitForLoadState(tab, loginSubmitButton); err != nil {
		return false, err
	}
	return p.ElementVisible(tab, isComplete(personalInformationStep)), nil
}

// LoginError returns the error displayed after rejected credentials
func (p Checkout) LoginError(tab page.Tab) (string, error) {
	return p.TextContent(tab, loginError)
}

// ClickOnEditPersonalInformationStep reopens the completed personal information step
func (p Checkout) ClickOnEditPersonalInformationStep(tab page.Tab) error {
	return p.ClickAndRequireVisible(tab, personalInformationEdit, customerIdentity)
}

// CustomerIdentity returns the name of the connected customer
func (p Checkout) CustomerIdentity(tab page.Tab) (string, error) {
	return p.TextContent(tab, customerIdentity)
}

// LogoutMessage returns the warning displayed next to the sign out link
func (p Checkout) LogoutMessage(tab page.Tab) (string, error) {
	return p.TextContent(tab, logoutMessage)
}

// LogOutCustomer signs the customer out and reports whether one is still connected
func (p Checkout) LogOutCustomer(tab page.Tab) (bool, error) {
	if err := p.ClickAndWaitForURL(tab, logoutLink); err != nil {
		return false, err
	}
	return p.IsCustomerConnected(tab), nil
}

// GoToDeliveryStep confirms the addresses and reports whether the step completed
func (p Checkout) GoToDeliveryStep(tab page.Tab) (bool, error) {
	if err := p.ClickAndWaitForLoadState(tab, confirmAddressesButton); err != nil {
		return false, err
	}
	return p.ElementVisible(tab, isComplete(addressesStep)), nil
}

// ChooseShippingMethod selects the carrier with id
func (p Checkout) ChooseShippingMethod(tab page.Tab, carrierID int) error {
	return p.SetChecked(tab, fmt.Sprintf(deliveryOptionPattern, carrierID), true)
}

// GoToPaymentStep confirms the delivery option and reports whether the step completed
func (p Checkout) GoToPaymentStep(tab page.Tab) (bool, error) {
	if err := p.ClickAndWaitForLoadState(tab, confirmDeliveryButton); err != nil {
		return false, err
	}
	return p.ElementVisible(tab, isComplete(deliveryStep)), nil
}

// ChoosePaymentAndOrder pays with moduleName, accepts the terms and places the order
func (p Checkout) ChoosePaymentAndOrder(tab page.Tab, moduleName string) error {
	if err := p.SetChecked(tab, fmt.Sprintf(paymentOptionPattern, moduleName), true); err != nil {
		return err
	}
	if err := p.SetChecked(tab, termsCheckbox, true); err != nil {
		return err
	}
	return p.ClickAndWaitForURL(tab, paymentConfirmation)
}

// Order confirmation texts
const (
	OrderConfirmationTitle     = "Order confirmation"
	OrderConfirmationCardTitle = "Your order is confirmed"
)

const (
	confirmationCardTitle = "#content-hook_order_confirmation h1.card-title"
	popularProductsBlock  = "section.featured-products"
	popularProductsTitle  = popularProductsBlock + " h2"
	popularProductsItems  = popularProductsBlock + " " + productMiniature
	allProductsLink       = popularProductsBlock + " a.all-product-link"
)

// OrderConfirmation is shown once an order is placed
type OrderConfirmation struct {
	Base
}

// CardTitle returns the heading of the confirmation card
func (p OrderConfirmation) CardTitle(tab page.Tab) (string, error) {
	return p.TextContent(tab, confirmationCardTitle)
}

// BlockTitle returns the title of the popular products block
func (p OrderConfirmation) BlockTitle(tab page.Tab) (string, error) {
	return p.TextContent(tab, popularProductsTitle)
}

// ProductsBlockNumber returns how many popular products are listed
func (p OrderConfirmation) ProductsBlockNumber(tab page.Tab) (int, error) {
	return p.ElementsCount(tab, popularProductsItems)
}

// QuickViewProduct opens the quick view of the 1-based popular product
func (p OrderConfirmation) QuickViewProduct(tab page.Tab, n int) error {
	return p.quickView(tab, popularProductsBlock, n)
}

// GoToAllProductsPage follows the link below the popular products
func (p OrderConfirmation) GoToAllProductsPage(tab page.Tab) error {
	return p.ClickAndWaitForURL(tab, allProductsLink)
}
