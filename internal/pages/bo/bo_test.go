package bo_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/page"
	"github.com/themizzi/shopcheck/internal/page/pagetest"
	"github.com/themizzi/shopcheck/internal/pages/bo"
)

var shop = &config.ShopConfig{
	FrontOfficeURL: "http://shop/",
	BackOfficeURL:  "http://shop/admin-dev/",
	APIURL:         "http://shop/admin-api/",
	ShopName:       "shop",
}

func newPages() *bo.Pages {
	return bo.New(shop, page.Timeouts{})
}

// navigates returns a click hook moving the tab to url
func navigates(url string) func(*pagetest.Tab) {
	return func(tab *pagetest.Tab) { tab.Navigate(url) }
}

func TestTitle(t *testing.T) {
	pages := newPages()
	assert.Equal(t, "API Clients • shop", pages.APIClients.ExpectedTitle())
	assert.Equal(t, "Dashboard • shop", pages.Dashboard.ExpectedTitle())
	assert.Equal(t, "Attribute Color • shop", pages.AttributeValues.ExpectedTitle("Color"))
}

func TestGoToSubMenu(t *testing.T) {
	pages := newPages()

	t.Run("opens the collapsed parent", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL)
		tab.Set(bo.ModulesParentLink, &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Set(bo.ModuleManagerLink, &pagetest.Element{OnClick: navigates(shop.BackOfficeURL + "modules")})
		}})

		require.NoError(t, pages.Dashboard.GoToSubMenu(tab, bo.ModulesParentLink, bo.ModuleManagerLink))
		assert.Equal(t, []string{"click " + bo.ModulesParentLink, "click " + bo.ModuleManagerLink}, tab.Actions())
		assert.Equal(t, shop.BackOfficeURL+"modules", tab.URL())
	})

	t.Run("follows a visible link directly", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL)
		tab.Set(bo.OrdersLink, &pagetest.Element{OnClick: navigates(shop.BackOfficeURL + "orders")})

		require.NoError(t, pages.Dashboard.GoToSubMenu(tab, bo.OrdersParentLink, bo.OrdersLink))
		assert.Equal(t, []string{"click " + bo.OrdersLink}, tab.Actions())
	})

	t.Run("parent that opens nothing", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL)
		tab.Set(bo.OrdersParentLink, &pagetest.Element{})

		err := pages.Dashboard.GoToSubMenu(tab, bo.OrdersParentLink, bo.OrdersLink)
		assert.ErrorIs(t, err, page.ErrElementNotFound)
	})
}

func TestLogin(t *testing.T) {
	pages := newPages()
	tab := pagetest.New("about:blank")
	tab.Set("#email", &pagetest.Element{})
	tab.Set("#passwd", &pagetest.Element{})
	tab.Set("#submit_login", &pagetest.Element{OnClick: navigates(shop.BackOfficeURL + "dashboard")})

	require.NoError(t, pages.Login.Open(tab))
	assert.Equal(t, shop.BackOfficeURL, tab.Actions()[0][len("goto "):])

	require.NoError(t, pages.Login.SignIn(tab, "demo@prestashop.com", "secret"))
	assert.Equal(t, "demo@prestashop.com", tab.Element("#email").Value)
	assert.Equal(t, "secret", tab.Element("#passwd").Value)
	assert.Equal(t, shop.BackOfficeURL+"dashboard", tab.URL())
}

func TestCloseSfToolBar(t *testing.T) {
	pages := newPages()
	tab := pagetest.New(shop.BackOfficeURL)
	require.NoError(t, pages.Orders.CloseSfToolBar(tab))
	assert.Empty(t, tab.Actions())

	tab.Set("a[id*='sfToolbarHideButton']", &pagetest.Element{})
	require.NoError(t, pages.Orders.CloseSfToolBar(tab))
	assert.Len(t, tab.Actions(), 1)
}

func TestGroupIDInRow(t *testing.T) {
	groups := newPages().Groups
	tab := pagetest.New(shop.BackOfficeURL)
	tab.Set("#table-group tbody tr:nth-child(1) td:nth-child(2)", &pagetest.Element{Text: " 4 "})
	tab.Set("#table-group tbody tr:nth-child(2) td:nth-child(2)", &pagetest.Element{Text: "--"})

	id, err := groups.GroupIDInRow(tab, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	_, err = groups.GroupIDInRow(tab, 2)
	assert.ErrorIs(t, err, page.ErrParse)

	_, err = groups.GroupIDInRow(tab, 3)
	assert.ErrorIs(t, err, page.ErrElementNotFound)
}

func TestCreateEditGroup(t *testing.T) {
	addGroup := newPages().AddGroup
	tab := pagetest.New(shop.BackOfficeURL + "groups/new")
	tab.Set("#name_1", &pagetest.Element{})
	tab.Set("#reduction", &pagetest.Element{})
	tab.Set("#price_display_method", &pagetest.Element{Options: []string{"Tax included", "Tax excluded"}})
	tab.Set("#show_prices_on", &pagetest.Element{})
	tab.Set("#show_prices_off", &pagetest.Element{})
	tab.Set("#group_form_submit_btn", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
		tab.Set("#content div.alert.alert-success", &pagetest.Element{Text: "\nSuccessful creation\n"})
		tab.Navigate(shop.BackOfficeURL + "groups")
	}})

	group := fixtures.Group{Name: "Resellers", FrenchName: "Revendeurs", Discount: 10, PriceDisplayMethod: "Tax excluded", ShownPrices: true}
	message, err := addGroup.CreateEditGroup(tab, group)
	require.NoError(t, err)
	assert.Equal(t, bo.SuccessfulCreationMessage, message)
	assert.Equal(t, "Resellers", tab.Element("#name_1").Value)
	assert.Equal(t, "10", tab.Element("#reduction").Value)
	assert.Equal(t, "Tax excluded", tab.Element("#price_display_method").Value)
	assert.True(t, tab.Element("#show_prices_on").Checked)
	assert.False(t, tab.Element("#show_prices_off").Checked)
}

func TestAddAPIClient(t *testing.T) {
	addClient := newPages().AddAPIClient
	tab := pagetest.New(shop.BackOfficeURL + "api-clients/new")
	for _, s := range []string{"#api_client_client_id", "#api_client_client_name", "#api_client_description", "#api_client_enabled_0", "#api_client_enabled_1"} {
		tab.Set(s, &pagetest.Element{})
	}
	scope := "input[name='api_client[scopes][]'][value='customer_group_write']"
	tab.Set(scope, &pagetest.Element{})
	tab.Set("#save-button", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
		tab.Set("#content div.alert.alert-success div.alert-text p", &pagetest.Element{Text: "Successful creation"})
		tab.Set("#content div.alert.alert-info div.alert-text p", &pagetest.Element{Text: bo.APIClientGeneratedMessage + ", you won't be able to see it again."})
		tab.Set("#content div.alert.alert-info button.copy-client-secret", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Clipboard = "s3cr3t"
		}})
		tab.Navigate(shop.BackOfficeURL + "api-clients/1/edit")
	}})

	client := fixtures.APIClient{ClientID: "id", ClientName: "name", Description: "desc", Enabled: true, Scopes: []string{"customer_group_write"}}
	message, err := addClient.AddAPIClient(tab, client)
	require.NoError(t, err)
	assert.Contains(t, message, bo.SuccessfulCreationMessage)
	assert.True(t, tab.Element("#api_client_enabled_1").Checked)
	assert.False(t, tab.Element("#api_client_enabled_0").Checked)
	assert.True(t, tab.Element(scope).Checked)

	info, err := addClient.AlertInfoContent(tab)
	require.NoError(t, err)
	assert.Contains(t, info, bo.APIClientGeneratedMessage)

	require.NoError(t, addClient.CopyClientSecret(tab))
	secret, err := addClient.ClipboardText(tab)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", secret)
}

func TestAddAPIClientUnknownScope(t *testing.T) {
	addClient := newPages().AddAPIClient
	tab := pagetest.New(shop.BackOfficeURL + "api-clients/new")
	for _, s := range []string{"#api_client_client_id", "#api_client_client_name", "#api_client_description", "#api_client_enabled_1"} {
		tab.Set(s, &pagetest.Element{})
	}

	_, err := addClient.AddAPIClient(tab, fixtures.APIClient{Enabled: true, Scopes: []string{"nope"}})
	assert.ErrorIs(t, err, page.ErrElementNotInteractable)
}

func TestModifyOrderStatus(t *testing.T) {
	view := newPages().OrderView
	selected := "#update_order_status_action_input option[selected='selected']"

	t.Run("changes the status", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL + "orders/5/view")
		tab.Set(selected, &pagetest.Element{Text: "Awaiting check payment"})
		tab.Set("#update_order_status_action_input", &pagetest.Element{})
		tab.Set("#update_order_status_action_form button.update-status", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Element(selected).Text = tab.Element("#update_order_status_action_input").Value
			tab.Navigate(shop.BackOfficeURL + "orders/5/view?updated")
		}})

		status, err := view.ModifyOrderStatus(tab, fixtures.PaymentAccepted.Name)
		require.NoError(t, err)
		assert.Equal(t, fixtures.PaymentAccepted.Name, status)
	})

	t.Run("keeps the current status", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL + "orders/5/view")
		tab.Set(selected, &pagetest.Element{Text: fixtures.Shipped.Name})

		status, err := view.ModifyOrderStatus(tab, fixtures.Shipped.Name)
		require.NoError(t, err)
		assert.Equal(t, fixtures.Shipped.Name, status)
		assert.Empty(t, tab.Actions())
	})
}

func TestDocumentType(t *testing.T) {
	view := newPages().OrderView
	tab := pagetest.New(shop.BackOfficeURL + "orders/5/view")
	tab.Set("#orderDocumentsTab", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
		tab.Set("#documents-grid-table", &pagetest.Element{})
		tab.Set("#documents-grid-table tbody tr:nth-child(3) td:nth-child(2)", &pagetest.Element{Text: "Delivery slip"})
	}})

	documentType, err := view.DocumentType(tab, 3)
	require.NoError(t, err)
	assert.Equal(t, "Delivery slip", documentType)
}

func TestModifyProductQuantity(t *testing.T) {
	view := newPages().OrderView
	tab := pagetest.New(shop.BackOfficeURL + "orders/5/view")
	row := "#orderProductsTable tbody tr:nth-child(1)"
	input := "#orderProductsTable tr.editProductRow input.editProductQuantity"
	tab.Set(row+" td.cellProductQuantity span", &pagetest.Element{Text: "1"})
	tab.Set(row+" button.js-order-product-edit-btn", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
		tab.Set(input, &pagetest.Element{})
	}})
	tab.Set("#orderProductsTable tr.editProductRow button.productEditSaveBtn", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
		tab.Element(row + " td.cellProductQuantity span").Text = tab.Element(input).Value
		tab.Remove(input)
	}})

	quantity, err := view.ModifyProductQuantity(tab, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, quantity)
}

func TestDeliverySlips(t *testing.T) {
	slips := newPages().DeliverySlips
	future := time.Now().AddDate(1, 0, 0)

	t.Run("download", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL + "delivery-slips")
		tab.Set("#form-delivery-slips-print-button", &pagetest.Element{})
		tab.Download = "/tmp/slips.pdf"

		path, err := slips.GeneratePDFByDateAndDownload(tab, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/slips.pdf", path)
	})

	t.Run("nothing to download", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL + "delivery-slips")
		tab.Set("#form-delivery-slips-print-button", &pagetest.Element{})

		_, err := slips.GeneratePDFByDateAndDownload(tab, time.Time{}, time.Time{})
		assert.ErrorIs(t, err, page.ErrNavigationTimeout)
	})

	t.Run("no slip in period", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL + "delivery-slips")
		tab.Set("#form_date_from", &pagetest.Element{})
		tab.Set("#form_date_to", &pagetest.Element{})
		tab.Set("#form-delivery-slips-print-button", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Set("#content div.alert.alert-danger div.alert-text p", &pagetest.Element{Text: bo.DeliverySlipsNoResultMessage})
			tab.Navigate(shop.BackOfficeURL + "delivery-slips?error")
		}})

		message, err := slips.GeneratePDFByDateAndFail(tab, future, future)
		require.NoError(t, err)
		assert.Equal(t, bo.DeliverySlipsNoResultMessage, message)
		assert.Equal(t, future.Format(bo.DateLayout), tab.Element("#form_date_from").Value)
		assert.Equal(t, future.Format(bo.DateLayout), tab.Element("#form_date_to").Value)
	})
}

func TestFilterByStatus(t *testing.T) {
	modules := newPages().ModuleManager
	tab := pagetest.New(shop.BackOfficeURL + "modules")
	item := "div.ps-dropdown-menu[aria-labelledby='module-status-dropdown'] [data-status-ref='0']"
	tab.Set("#notification-dropdown-status button.dropdown-toggle, .module-status-menu button", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
		tab.Set(item, &pagetest.Element{})
	}})

	require.NoError(t, modules.FilterByStatus(tab, bo.ModuleStatusDisabled))
	assert.Contains(t, tab.Actions(), "click "+item)

	err := modules.FilterByStatus(tab, "broken")
	assert.ErrorIs(t, err, page.ErrUnknownStatus)
}

func TestAllModulesStatus(t *testing.T) {
	modules := newPages().ModuleManager
	items := "#modules-list-container-all div.module-item"
	tab := pagetest.New(shop.BackOfficeURL + "modules")
	tab.SetCount(items, 2)
	tab.Set(page.Nth(items, 0), &pagetest.Element{Attrs: map[string]string{"data-name": "Contact form", "data-active": "0", "data-installed": "0"}})
	tab.Set(page.Nth(items, 1), &pagetest.Element{Attrs: map[string]string{"data-name": "Wishlist", "data-active": "1", "data-installed": "0"}})

	states, err := modules.AllModulesStatus(tab, bo.ModuleStatusEnabled)
	require.NoError(t, err)
	assert.Equal(t, []bo.ModuleState{{Name: "Contact form", Active: false}, {Name: "Wishlist", Active: true}}, states)

	states, err = modules.AllModulesStatus(tab, bo.ModuleStatusUninstalled)
	require.NoError(t, err)
	for _, state := range states {
		assert.False(t, state.Active, state.Name)
	}

	_, err = modules.AllModulesStatus(tab, bo.ModuleStatusAll)
	assert.ErrorIs(t, err, page.ErrUnknownStatus)
}

func TestInstallUninstallModule(t *testing.T) {
	modules := newPages().ModuleManager
	module := fixtures.ContactForm
	item := fmt.Sprintf("div.module-item[data-tech-name='%s']", module.Tag)
	growl := "#growls-default .growl-message"

	setup := func() *pagetest.Tab {
		tab := pagetest.New(shop.BackOfficeURL + "modules")
		tab.Set("#search-input-group input.pstaggerAddTagInput", &pagetest.Element{})
		tab.Set("#module-search-button", &pagetest.Element{})
		tab.Set(item, &pagetest.Element{})
		return tab
	}

	t.Run("uninstall", func(t *testing.T) {
		tab := setup()
		modal := "#module-modal-confirm-contactform-uninstall"
		tab.Set(item+" div.module-actions button.dropdown-toggle", &pagetest.Element{})
		tab.Set(item+" button.module_action_menu_uninstall", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Set(modal, &pagetest.Element{})
		}})
		tab.Set(modal+" a.module_action_modal_uninstall", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Set(growl, &pagetest.Element{Text: bo.InstallUninstallMessage(module, false)})
		}})

		message, err := modules.InstallUninstallModule(tab, module, false)
		require.NoError(t, err)
		assert.Equal(t, "Uninstall action on module contactform succeeded.", message)
		assert.Equal(t, module.Tag, tab.Element("#search-input-group input.pstaggerAddTagInput").Value)
	})

	t.Run("install", func(t *testing.T) {
		tab := setup()
		tab.Set(item+" button.module_action_menu_install", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Set(growl, &pagetest.Element{Text: bo.InstallUninstallMessage(module, true)})
		}})

		message, err := modules.InstallUninstallModule(tab, module, true)
		require.NoError(t, err)
		assert.Equal(t, "Install action on module contactform succeeded.", message)
	})

	t.Run("no growl", func(t *testing.T) {
		tab := setup()
		tab.Set(item+" button.module_action_menu_install", &pagetest.Element{})

		_, err := modules.InstallUninstallModule(tab, module, true)
		assert.True(t, errors.Is(err, page.ErrElementNotFound))
	})
}

func TestNumberOfBlocks(t *testing.T) {
	modules := newPages().ModuleManager
	tab := pagetest.New(shop.BackOfficeURL + "modules")
	tab.SetCount("#main-div div.module-short-list", 4)

	n, err := modules.NumberOfBlocks(tab)
	require.NoError(t, err)
	assert.Greater(t, n, 2)
}

func TestEnableTheme(t *testing.T) {
	themes := newPages().Themes
	active := "div.theme-card-container.active div.theme-card[data-theme-name='hummingbird']"

	t.Run("already active", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL + "themes")
		tab.Set(active, &pagetest.Element{})

		message, err := themes.EnableTheme(tab, bo.ThemeHummingbird)
		require.NoError(t, err)
		assert.Empty(t, message)
		assert.Empty(t, tab.Actions())
	})

	t.Run("activates", func(t *testing.T) {
		tab := pagetest.New(shop.BackOfficeURL + "themes")
		card := "div.theme-card[data-theme-name='hummingbird']"
		confirm := "#use_theme_modal_hummingbird button.js-submit-use-theme"
		tab.Set(card, &pagetest.Element{})
		tab.Set(card+" button.js-display-use-theme-modal", &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
			tab.Set(confirm, &pagetest.Element{OnClick: func(tab *pagetest.Tab) {
				tab.Set(active, &pagetest.Element{})
				tab.Set("#content div.alert.alert-success div.alert-text p", &pagetest.Element{Text: bo.ThemeSuccessMessage})
				tab.Navigate(shop.BackOfficeURL + "themes?enabled")
			}})
		}})

		message, err := themes.EnableTheme(tab, bo.ThemeHummingbird)
		require.NoError(t, err)
		assert.Equal(t, bo.ThemeSuccessMessage, message)
		assert.True(t, themes.IsThemeEnabled(tab, bo.ThemeHummingbird))
	})
}
