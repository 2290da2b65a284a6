package campaigns

import (
	"os"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/fragments"
	"github.com/themizzi/shopcheck/internal/pages/bo"
	"github.com/themizzi/shopcheck/internal/scenario"
)

func init() {
	register(Campaign{
		BaseContext: "functional_BO_orders_deliverySlips_generateDeliverySlipByDate",
		Title:       "BO - Orders - Delivery slips : Generate Delivery slip file by date",
		Build:       generateDeliverySlipByDate,
	})
	register(Campaign{
		BaseContext: "sanity_ordersBO_editOrder",
		Title:       "BO - Orders - Orders : Edit Order BO",
		Build:       editOrder,
	})
}

// goToOrdersStep opens Orders > Orders
func goToOrdersStep(pages *bo.Pages) scenario.Step {
	return scenario.Step{
		Title: "should go to 'Orders > Orders' page",
		ID:    "goToOrdersPage",
		Do: func(t *scenario.T, env *scenario.Env) {
			require.NoError(t, pages.Dashboard.GoToSubMenu(env.Tab, bo.OrdersParentLink, bo.OrdersLink))
			require.NoError(t, pages.Orders.CloseSfToolBar(env.Tab))
			title, err := pages.Orders.PageTitle(env.Tab)
			require.NoError(t, err)
			assert.Contains(t, title, pages.Orders.ExpectedTitle())
		},
	}
}

func goToFirstOrderStep(pages *bo.Pages, id string) scenario.Step {
	return scenario.Step{
		Title: "should go to the first order page",
		ID:    id,
		Do: func(t *scenario.T, env *scenario.Env) {
			require.NoError(t, pages.Orders.GoToOrder(env.Tab, 1))
			title, err := pages.OrderView.PageTitle(env.Tab)
			require.NoError(t, err)
			assert.Contains(t, title, pages.OrderView.ExpectedTitle())
		},
	}
}

func modifyOrderStatusStep(pages *bo.Pages, id string, status fixtures.OrderStatus) scenario.Step {
	return scenario.Step{
		Title: "should change the order status to '" + status.Name + "' and check it",
		ID:    id,
		Do: func(t *scenario.T, env *scenario.Env) {
			current, err := pages.OrderView.ModifyOrderStatus(env.Tab, status.Name)
			require.NoError(t, err)
			assert.Equal(t, status.Name, current)
		},
	}
}

func generateDeliverySlipByDate(d Deps) *scenario.Suite {
	pages := d.BO
	future := d.Now().AddDate(0, 0, 1)

	return &scenario.Suite{
		Steps: []scenario.Step{
			fragments.LoginBO(pages),
			goToOrdersStep(pages),
			goToFirstOrderStep(pages, "goToFirstOrderPage"),
			modifyOrderStatusStep(pages, "updateOrderStatus", fixtures.Shipped),
			{
				Title: "should check the delivery slip document name",
				ID:    "checkDocumentName",
				Do: func(t *scenario.T, env *scenario.Env) {
					documentType, err := pages.OrderView.DocumentType(env.Tab, 3)
					require.NoError(t, err)
					assert.Equal(t, "Delivery slip", documentType)
				},
			},
			{
				Title: "should go to 'Orders > Delivery slips' page",
				ID:    "goToDeliverySlipsPage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.OrderView.GoToSubMenu(env.Tab, bo.OrdersParentLink, bo.DeliverySlipsLink))
					title, err := pages.DeliverySlips.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, title, pages.DeliverySlips.ExpectedTitle())
				},
			},
			{
				Title: "should generate PDF file by date and check the file existence",
				ID:    "generateDeliverySlips",
				Do: func(t *scenario.T, env *scenario.Env) {
					path, err := pages.DeliverySlips.GeneratePDFByDateAndDownload(env.Tab, d.Now(), d.Now())
					require.NoError(t, err)
					_, err = os.Stat(path)
					assert.NoError(t, err, "downloaded file does not exist")
				},
			},
			{
				Title: "should check the error message when there is no delivery slip at the entered date",
				ID:    "checkNoDeliverySlipsErrorMessage",
				Do: func(t *scenario.T, env *scenario.Env) {
					message, err := pages.DeliverySlips.GeneratePDFByDateAndFail(env.Tab, future, future)
					require.NoError(t, err)
					assert.Equal(t, bo.DeliverySlipsNoResultMessage, message)
				},
			},
		},
	}
}

func editOrder(d Deps) *scenario.Suite {
	pages := d.BO

	return &scenario.Suite{
		Steps: []scenario.Step{
			fragments.LoginBO(pages),
			goToOrdersStep(pages),
			goToFirstOrderStep(pages, "goToFirstOrder"),
			{
				Title: "should modify the product quantity and check the validation",
				ID:    "editOrderQuantity",
				Do: func(t *scenario.T, env *scenario.Env) {
					quantity, err := pages.OrderView.ModifyProductQuantity(env.Tab, 1, 5)
					require.NoError(t, err)
					assert.Equal(t, 5, quantity, "Quantity was not updated")
				},
			},
			modifyOrderStatusStep(pages, "editOrderStatus", fixtures.PaymentAccepted),
			fragments.LogoutBO(pages),
		},
	}
}
