package bo

import (
	"fmt"

	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/page"
)

// Attribute grid columns
const (
	AttributeID       page.Column = "id_attribute_group"
	AttributeName     page.Column = "name"
	AttributePosition page.Column = "position"
)

// Attribute value grid columns
const (
	ValueID       page.Column = "id_attribute"
	ValueName     page.Column = "name"
	ValueColor    page.Column = "color"
	ValuePosition page.Column = "position"
)

const (
	addNewValueLink          = "#page-header-desc-configuration-add"
	attributeValuesBackLink  = "#attribute_grid_panel > .card-footer > a.btn"
	attributeViewLinkPattern = "%s td.column-actions a.grid-view-row-link"
)

// Attributes lists the product attributes under Catalog > Attributes & Features
type Attributes struct {
	Base
	Grid page.Grid
}

// NewAttributes creates the attributes list page
func NewAttributes(base Base) Attributes {
	return Attributes{
		Base: base,
		Grid: page.NewGrid(base.Base, page.SymfonyGrid("attribute_group"), map[page.Column]page.ColumnSpec{
			AttributeID:       {Cell: "td.column-id_attribute_group", Filter: page.InputFilter},
			AttributeName:     {Cell: "td.column-name", Filter: page.InputFilter},
			AttributePosition: {Cell: "td.column-position", Filter: page.InputFilter},
		}),
	}
}

// ExpectedTitle is the document title of the attributes list
func (p Attributes) ExpectedTitle() string {
	return p.Title("Attributes")
}

// ViewAttribute opens the values of the attribute in the 1-based row
func (p Attributes) ViewAttribute(tab page.Tab, row int) error {
	return p.ClickAndWaitForURL(tab, fmt.Sprintf(attributeViewLinkPattern, p.Grid.Sel.Row(row)))
}

// AttributeValues is the value grid of one attribute
type AttributeValues struct {
	Base
	Grid page.Grid
}

// NewAttributeValues creates the attribute value grid page
func NewAttributeValues(base Base) AttributeValues {
	return AttributeValues{
		Base: base,
		Grid: page.NewGrid(base.Base, page.SymfonyGrid("attribute"), map[page.Column]page.ColumnSpec{
			ValueID:       {Cell: "td.column-id_attribute", Filter: page.InputFilter},
			ValueName:     {Cell: "td.column-name", Filter: page.InputFilter},
			ValueColor:    {Cell: "td.column-color", Inner: "div", Attribute: "style"},
			ValuePosition: {Cell: "td.column-position", Filter: page.InputFilter},
		}),
	}
}

// ExpectedTitle is the document title of the values of attribute
func (p AttributeValues) ExpectedTitle(attribute string) string {
	return p.Title("Attribute " + attribute)
}

// GoToAddNewValuePage opens the value creation form
func (p AttributeValues) GoToAddNewValuePage(tab page.Tab) error {
	return p.ClickAndWaitForURL(tab, addNewValueLink)
}

// GoToEditValuePage opens the edition form of the value in the 1-based row
func (p AttributeValues) GoToEditValuePage(tab page.Tab, row int) error {
	return p.Grid.GoToEditRow(tab, row)
}

// DeleteValue deletes the value in the 1-based row and returns the success message
func (p AttributeValues) DeleteValue(tab page.Tab, row int) (string, error) {
	return p.Grid.DeleteRow(tab, row)
}

// BulkDeleteValues deletes every listed value and returns the success message
func (p AttributeValues) BulkDeleteValues(tab page.Tab) (string, error) {
	return p.Grid.BulkDelete(tab)
}

// ChangePosition moves a value and returns the success message
func (p AttributeValues) ChangePosition(tab page.Tab, from, to int) (string, error) {
	return p.Grid.ChangePosition(tab, from, to)
}

// BackToAttributesList returns to the attributes list
func (p AttributeValues) BackToAttributesList(tab page.Tab) error {
	return p.ClickAndWaitForURL(tab, attributeValuesBackLink)
}

const (
	valueAttributeSelect = "#attribute_attribute_group"
	valueNameInput       = "#attribute_name_1"
	valueColorInput      = "#attribute_color"
	valueSaveButton      = "#save-button"
	valueSaveAndAddMore  = "#save-and-add-new-button"
)

// AddAttributeValue is the creation and edition form of an attribute value
type AddAttributeValue struct {
	Base
}

// ExpectedTitle is the document title of the creation form
func (p AddAttributeValue) ExpectedTitle() string {
	return p.Title("Attributes > Add New Value")
}

// AddEditValue fills the form with value and saves it. With addMore set, the
// form is saved and reopened empty. It returns the success message.
func (p AddAttributeValue) AddEditValue(tab page.Tab, value fixtures.AttributeValue, addMore bool) (string, error) {
	if err := p.SelectByVisibleText(tab, valueAttributeSelect, value.AttributeName); err != nil {
		return "", err
	}
	if err := p.SetValue(tab, valueNameInput, value.Value); err != nil {
		return "", err
	}
	if value.Color != "" && p.ElementVisible(tab, valueColorInput) {
		if err := p.SetValue(tab, valueColorInput, value.Color); err != nil {
			return "", err
		}
	}

	save := valueSaveButton
	if addMore {
		save = valueSaveAndAddMore
	}
	if err := p.ClickAndWaitForURL(tab, save); err != nil {
		return "", err
	}
	return p.AlertSuccessContent(tab)
}
