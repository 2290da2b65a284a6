// Package bo holds the page objects of the back office.
package bo

import (
	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/page"
)

// Side menu links
const (
	OrdersParentLink          = "li#subtab-AdminParentOrders"
	OrdersLink                = "#subtab-AdminOrders"
	DeliverySlipsLink         = "#subtab-AdminDeliverySlip"
	CatalogParentLink         = "li#subtab-AdminCatalog"
	AttributesAndFeaturesLink = "#subtab-AdminParentAttributesGroups"
	ModulesParentLink         = "#subtab-AdminParentModulesSf"
	ModuleManagerLink         = "#subtab-AdminModulesSf"
	DesignParentLink          = "#subtab-AdminParentThemes"
	ThemeAndLogoLink          = "#subtab-AdminThemesParent"
	ShopParametersParentLink  = "#subtab-ShopParameters"
	CustomerSettingsLink      = "#subtab-AdminParentCustomerPreferences"
	AdvancedParametersLink    = "#subtab-AdminAdvancedParameters"
	AdminAPILink              = "#subtab-AdminAdminAPI"
)

// Messages displayed after grid and form actions
const (
	SuccessfulCreationMessage    = "Successful creation"
	SuccessfulDeletionMessage    = "Successful deletion"
	SuccessfulUpdateMessage      = "Successful update"
	SuccessfulMultiDeleteMessage = "The selection has been successfully deleted"
	NoRecordsFoundMessage        = "warning No records found"
)

const (
	titleSeparator        = " • "
	sfToolbarHideButton   = "a[id*='sfToolbarHideButton']"
	alertSuccessParagraph = "#content div.alert.alert-success div.alert-text p"
	alertInfoParagraph    = "#content div.alert.alert-info div.alert-text p"
	alertDangerParagraph  = "#content div.alert.alert-danger div.alert-text p"
	growlMessage          = "#growls-default .growl-message"
	employeeInfosDropdown = "#employee_infos"
	logoutLink            = "#header_logout"
)

// Base holds what every back-office page shares
type Base struct {
	page.Base
	Shop *config.ShopConfig
}

// Title returns the document title of a back-office page named name
func (b Base) Title(name string) string {
	return name + titleSeparator + b.Shop.ShopName
}

// GoToSubMenu opens parent in the side menu if needed and follows link
func (b Base) GoToSubMenu(tab page.Tab, parent, link string) error {
	if !b.ElementVisible(tab, link) {
		if err := b.ClickAndRequireVisible(tab, parent, link); err != nil {
			return err
		}
	}
	return b.ClickAndWaitForURL(tab, link)
}

// CloseSfToolBar hides the Symfony debug toolbar when it is displayed
func (b Base) CloseSfToolBar(tab page.Tab) error {
	if !b.ElementVisible(tab, sfToolbarHideButton) {
		return nil
	}
	return b.Click(tab, sfToolbarHideButton)
}

// AlertSuccessContent returns the text of the success alert
func (b Base) AlertSuccessContent(tab page.Tab) (string, error) {
	return b.TextContent(tab, alertSuccessParagraph)
}

// AlertInfoContent returns the text of the info alert
func (b Base) AlertInfoContent(tab page.Tab) (string, error) {
	return b.TextContent(tab, alertInfoParagraph)
}

// AlertDangerContent returns the text of the error alert
func (b Base) AlertDangerContent(tab page.Tab) (string, error) {
	return b.TextContent(tab, alertDangerParagraph)
}

// GrowlMessage returns the text of the growl notification
func (b Base) GrowlMessage(tab page.Tab) (string, error) {
	if err := b.RequireVisible(tab, growlMessage); err != nil {
		return "", err
	}
	return b.TextContent(tab, growlMessage)
}

// Logout signs the employee out of the back office
func (b Base) Logout(tab page.Tab) error {
	if err := b.ClickAndRequireVisible(tab, employeeInfosDropdown, logoutLink); err != nil {
		return err
	}
	return b.ClickAndWaitForURL(tab, logoutLink)
}
