package campaigns

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/fragments"
	"github.com/themizzi/shopcheck/internal/pages/fo"
	"github.com/themizzi/shopcheck/internal/scenario"
	"github.com/themizzi/shopcheck/internal/testcontext"
)

const (
	signInContext         = "functional_FO_hummingbird_checkout_personalInformation_signIn"
	popularProductContext = "functional_FO_hummingbird_orderConfirmation_popularProduct"
)

func init() {
	register(Campaign{
		BaseContext: signInContext,
		Title:       "FO - Checkout - Personal information : Sign in",
		Build:       checkoutSignIn,
	})
	register(Campaign{
		BaseContext: popularProductContext,
		Title:       "FO - Order confirmation : Popular product",
		Build:       orderConfirmationPopularProduct,
	})
}

// withHummingbird runs suite on the hummingbird theme and restores the default one afterwards
func withHummingbird(d Deps, baseContext string, suite *scenario.Suite) *scenario.Suite {
	suite.Pre = append(suite.Pre, fragments.EnableHummingbird(d.BO, testcontext.PreTest(baseContext)))
	suite.Post = append(suite.Post, fragments.DisableHummingbird(d.BO, testcontext.PostTest(baseContext)))
	return suite
}

func openShopStep(pages *fo.Pages, id string) scenario.Step {
	return scenario.Step{
		Title: "should open FO page",
		ID:    id,
		Do: func(t *scenario.T, env *scenario.Env) {
			require.NoError(t, pages.Home.GoToFo(env.Tab))
			require.NoError(t, pages.Home.ChangeLanguage(env.Tab, "en"))
			assert.True(t, pages.Home.IsHomePage(env.Tab), "Fail to open FO home page")
		},
	}
}

func checkCartTitle(t *scenario.T, pages *fo.Pages, env *scenario.Env) {
	title, err := pages.Cart.PageTitle(env.Tab)
	require.NoError(t, err)
	assert.Equal(t, fo.CartTitle, title)
}

func proceedToCheckoutStep(pages *fo.Pages, title, id string) scenario.Step {
	return scenario.Step{
		Title: title,
		ID:    id,
		Do: func(t *scenario.T, env *scenario.Env) {
			require.NoError(t, pages.Cart.ProceedToCheckout(env.Tab))
			assert.True(t, pages.Checkout.IsCheckoutPage(env.Tab))
		},
	}
}

func signInStep(pages *fo.Pages, id string, customer fixtures.Customer) scenario.Step {
	return scenario.Step{
		Title: "should sign in by default customer",
		ID:    id,
		Do: func(t *scenario.T, env *scenario.Env) {
			require.NoError(t, pages.Checkout.ClickOnSignIn(env.Tab))
			connected, err := pages.Checkout.CustomerLogin(env.Tab, customer)
			require.NoError(t, err)
			assert.True(t, connected, "Customer is not connected")
		},
	}
}

func checkoutSignIn(d Deps) *scenario.Suite {
	pages := d.FO
	credentials := d.Fixtures.Customer()

	return withHummingbird(d, signInContext, &scenario.Suite{
		Steps: []scenario.Step{
			openShopStep(pages, "openFO"),
			{
				Title: "should add product to cart",
				ID:    "addProductToCart",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Home.GoToProductPage(env.Tab, 1))
					require.NoError(t, pages.Product.AddProductToTheCart(env.Tab, 1))
					checkCartTitle(t, pages, env)
				},
			},
			proceedToCheckoutStep(pages, "should proceed to checkout validate the cart", "validateCart"),
			{
				Title: "should enter an invalid credentials",
				ID:    "enterInvalidCredentials",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Checkout.ClickOnSignIn(env.Tab))
					connected, err := pages.Checkout.CustomerLogin(env.Tab, credentials)
					require.NoError(t, err)
					assert.False(t, connected, "Customer is connected")

					loginError, err := pages.Checkout.LoginError(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, loginError, fo.AuthenticationErrorMessage)
				},
			},
			{
				Title: "should sign in with customer credentials",
				ID:    "signIn",
				Do: func(t *scenario.T, env *scenario.Env) {
					connected, err := pages.Checkout.CustomerLogin(env.Tab, fixtures.JohnDoe)
					require.NoError(t, err)
					assert.True(t, connected, "Customer is not connected")
				},
			},
			{
				Title: "should click on edit Personal information step and get the identity of the customer",
				ID:    "checkCustomerIdentity",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Checkout.ClickOnEditPersonalInformationStep(env.Tab))
					identity, err := pages.Checkout.CustomerIdentity(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, fixtures.JohnDoe.FullName(), identity)
				},
			},
			{
				Title: "should check the existence of the text message 'If you sign out now, your cart will be emptied.'",
				ID:    "checkMessage",
				Do: func(t *scenario.T, env *scenario.Env) {
					message, err := pages.Checkout.LogoutMessage(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, fo.MessageIfYouSignOut, message)
				},
			},
			{
				Title: "should logout and check that the customer is no longer connected",
				ID:    "logout",
				Do: func(t *scenario.T, env *scenario.Env) {
					connected, err := pages.Checkout.LogOutCustomer(env.Tab)
					require.NoError(t, err)
					assert.False(t, connected, "Customer is still connected")
				},
			},
			{
				Title: "should check the message 'There are no more items in your cart' in shopping cart page",
				ID:    "checkNoItemsNumber",
				Do: func(t *scenario.T, env *scenario.Env) {
					message, err := pages.Cart.NoItemsInYourCartMessage(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, fo.NoItemsInYourCartMessage, message)
				},
			},
		},
	})
}

func orderConfirmationPopularProduct(d Deps) *scenario.Suite {
	pages := d.FO

	confirmOrder := func(t *scenario.T, env *scenario.Env, payment fixtures.PaymentMethod) {
		require.NoError(t, pages.Checkout.ChoosePaymentAndOrder(env.Tab, payment.ModuleName))
		cardTitle, err := pages.OrderConfirmation.CardTitle(env.Tab)
		require.NoError(t, err)
		assert.Contains(t, cardTitle, fo.OrderConfirmationCardTitle)
	}
	addByQuickView := func(t *scenario.T, env *scenario.Env) {
		require.NoError(t, pages.QuickView.AddToCartByQuickView(env.Tab))
		require.NoError(t, pages.BlockCart.ProceedToCheckout(env.Tab))
		checkCartTitle(t, pages, env)
	}

	return withHummingbird(d, popularProductContext, &scenario.Suite{
		Steps: []scenario.Step{
			openShopStep(pages, "openFoShop"),
			{
				Title: "should go to home page",
				ID:    "goToHomePage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Home.GoToHomePage(env.Tab))
					assert.True(t, pages.Home.IsHomePage(env.Tab))
				},
			},
			{
				Title: "should add the product " + fixtures.MugBestIsYetToCome.Name + " to cart by quick view",
				ID:    "addDemo3ByQuickView",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Home.SearchProduct(env.Tab, fixtures.MugBestIsYetToCome.Name))
					require.NoError(t, pages.SearchResults.QuickViewProduct(env.Tab, 1))
					addByQuickView(t, env)
				},
			},
			proceedToCheckoutStep(pages, "should validate shopping cart and go to checkout page", "goToCheckoutPage"),
			signInStep(pages, "signInFO", fixtures.JohnDoe),
			{
				Title: "should go to delivery step",
				ID:    "goToDeliveryStep",
				Do: func(t *scenario.T, env *scenario.Env) {
					complete, err := pages.Checkout.GoToDeliveryStep(env.Tab)
					require.NoError(t, err)
					assert.True(t, complete, "Step Address is not complete")
				},
			},
			{
				Title: "should select the first carrier and go to payment step",
				ID:    "checkShippingPrice1",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Checkout.ChooseShippingMethod(env.Tab, fixtures.ClickAndCollect.ID))
					complete, err := pages.Checkout.GoToPaymentStep(env.Tab)
					require.NoError(t, err)
					assert.True(t, complete)
				},
			},
			{
				Title: "should Pay by check and confirm order",
				ID:    "confirmOrder",
				Do: func(t *scenario.T, env *scenario.Env) {
					confirmOrder(t, env, fixtures.CheckPayment)
					title, err := pages.OrderConfirmation.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, fo.OrderConfirmationTitle, title)
				},
			},
			{
				Title: "should check popular product title",
				ID:    "checkPopularProducts",
				Do: func(t *scenario.T, env *scenario.Env) {
					title, err := pages.OrderConfirmation.BlockTitle(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, "Popular Products", title)
				},
			},
			{
				Title: "should check the number of popular products",
				ID:    "checkPopularProductsNumber",
				Do: func(t *scenario.T, env *scenario.Env) {
					n, err := pages.OrderConfirmation.ProductsBlockNumber(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, 8, n)
				},
			},
			{
				Title: "should quick view the first product in list",
				ID:    "quickViewFirstProduct",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.OrderConfirmation.QuickViewProduct(env.Tab, 1))
					assert.True(t, pages.QuickView.IsQuickViewProductModalVisible(env.Tab))
				},
			},
			{
				Title: "should add the product to cart",
				ID:    "addProductToCart",
				Do:    func(t *scenario.T, env *scenario.Env) { addByQuickView(t, env) },
			},
			proceedToCheckoutStep(pages, "should proceed to checkout", "proceedToCheckout"),
			{
				Title: "should go to delivery address step",
				ID:    "confirmAddressStep",
				Do: func(t *scenario.T, env *scenario.Env) {
					complete, err := pages.Checkout.GoToDeliveryStep(env.Tab)
					require.NoError(t, err)
					assert.True(t, complete, "Delivery Step boc is not displayed")
				},
			},
			{
				Title: "should choose the shipping method",
				ID:    "shippingMethodStep",
				Do: func(t *scenario.T, env *scenario.Env) {
					complete, err := pages.Checkout.GoToPaymentStep(env.Tab)
					require.NoError(t, err)
					assert.True(t, complete, "Payment Step bloc is not displayed")
				},
			},
			{
				Title: "should choose the payment type and confirm the order",
				ID:    "choosePaymentMethod",
				Do: func(t *scenario.T, env *scenario.Env) {
					confirmOrder(t, env, fixtures.WirePayment)
				},
			},
			{
				Title: "should click on all products page",
				ID:    "clickOnAllProductsPage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.OrderConfirmation.GoToAllProductsPage(env.Tab))
					assert.True(t, pages.Category.IsCategoryPage(env.Tab), "Home category page was not opened")
				},
			},
		},
	})
}
