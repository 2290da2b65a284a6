package bo

import (
	"strconv"

	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/page"
)

const groupsNavItemLink = "#subtab-AdminGroups"

// CustomerSettings is Shop Parameters > Customer Settings
type CustomerSettings struct {
	Base
}

// ExpectedTitle is the document title of the customer settings page
func (p CustomerSettings) ExpectedTitle() string {
	return p.Title("Customers")
}

// GoToGroupsPage opens the groups tab
func (p CustomerSettings) GoToGroupsPage(tab page.Tab) error {
	return p.ClickAndWaitForURL(tab, groupsNavItemLink)
}

// Group grid columns
const (
	GroupID   page.Column = "id_group"
	GroupName page.Column = "b!name"
)

const addNewGroupLink = "#page-header-desc-group-new_group"

// Groups lists the customer groups
type Groups struct {
	Base
	Grid page.Grid
}

// NewGroups creates the customer groups page
func NewGroups(base Base) Groups {
	return Groups{
		Base: base,
		Grid: page.NewGrid(base.Base, page.LegacyGrid("group"), map[page.Column]page.ColumnSpec{
			GroupID:   {Cell: "td:nth-child(2)", Filter: page.InputFilter},
			GroupName: {Cell: "td:nth-child(3)", Filter: page.InputFilter},
		}),
	}
}

// ExpectedTitle is the document title of the groups list
func (p Groups) ExpectedTitle() string {
	return p.Title("Groups")
}

// GoToNewGroupPage opens the group creation form
func (p Groups) GoToNewGroupPage(tab page.Tab) error {
	return p.ClickAndWaitForURL(tab, addNewGroupLink)
}

// GroupIDInRow returns the id of the group in the 1-based row
func (p Groups) GroupIDInRow(tab page.Tab, row int) (int, error) {
	text, err := p.Grid.TextColumn(tab, row, GroupID)
	if err != nil {
		return 0, err
	}
	return page.ParseNumber(text)
}

const (
	groupNameInput          = "#name_1"
	groupFrenchNameInput    = "#name_2"
	groupDiscountInput      = "#reduction"
	groupPriceDisplaySelect = "#price_display_method"
	groupShowPricesOn       = "#show_prices_on"
	groupShowPricesOff      = "#show_prices_off"
	groupSaveButton         = "#group_form_submit_btn"
	groupAlertSuccess       = "#content div.alert.alert-success"
)

// AddGroup is the creation and edition form of a customer group
type AddGroup struct {
	Base
}

// ExpectedTitle is the document title of the creation form
func (p AddGroup) ExpectedTitle() string {
	return p.Title("Groups > Add new")
}

// CreateEditGroup fills the form with group, saves it and returns the success message
func (p AddGroup) CreateEditGroup(tab page.Tab, group fixtures.Group) (string, error) {
	if err := p.SetValue(tab, groupNameInput, group.Name); err != nil {
		return "", err
	}
	if p.ElementVisible(tab, groupFrenchNameInput) {
		if err := p.SetValue(tab, groupFrenchNameInput, group.FrenchName); err != nil {
			return "", err
		}
	}
	if err := p.SetValue(tab, groupDiscountInput, strconv.Itoa(group.Discount)); err != nil {
		return "", err
	}
	if err := p.SelectByVisibleText(tab, groupPriceDisplaySelect, group.PriceDisplayMethod); err != nil {
		return "", err
	}

	showPrices := groupShowPricesOff
	if group.ShownPrices {
		showPrices = groupShowPricesOn
	}
	if err := p.SetChecked(tab, showPrices, true); err != nil {
		return "", err
	}

	if err := p.ClickAndWaitForURL(tab, groupSaveButton); err != nil {
		return "", err
	}
	return p.TextContent(tab, groupAlertSuccess)
}
