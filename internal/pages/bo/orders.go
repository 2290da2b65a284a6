package bo

import (
	"fmt"
	"strconv"
	"time"

	"github.com/themizzi/shopcheck/internal/page"
)

// Order grid columns
const (
	OrderID        page.Column = "id_order"
	OrderReference page.Column = "reference"
	OrderCustomer  page.Column = "customer"
	OrderStatus    page.Column = "osname"
)

const orderViewLinkPattern = "%s td.column-actions a.grid-view-row-link"

// Orders lists the orders under Orders > Orders
type Orders struct {
	Base
	Grid page.Grid
}

// NewOrders creates the orders list page
func NewOrders(base Base) Orders {
	return Orders{
		Base: base,
		Grid: page.NewGrid(base.Base, page.SymfonyGrid("order"), map[page.Column]page.ColumnSpec{
			OrderID:        {Cell: "td.column-id_order", Filter: page.InputFilter},
			OrderReference: {Cell: "td.column-reference", Filter: page.InputFilter},
			OrderCustomer:  {Cell: "td.column-customer", Filter: page.InputFilter},
			OrderStatus:    {Cell: "td.column-osname", Inner: "button", Filter: page.SelectFilter},
		}),
	}
}

// ExpectedTitle is the document title of the orders list
func (p Orders) ExpectedTitle() string {
	return p.Title("Orders")
}

// GoToOrder opens the order in the 1-based row
func (p Orders) GoToOrder(tab page.Tab, row int) error {
	return p.ClickAndWaitForURL(tab, fmt.Sprintf(orderViewLinkPattern, p.Grid.Sel.Row(row)))
}

const (
	orderStatusSelect         = "#update_order_status_action_input"
	orderStatusSubmit         = "#update_order_status_action_form button.update-status"
	orderStatusSelected       = orderStatusSelect + " option[selected='selected']"
	orderDocumentsTabLink     = "#orderDocumentsTab"
	orderDocumentsTable       = "#documents-grid-table"
	orderDocumentTypePattern  = orderDocumentsTable + " tbody tr:nth-child(%d) td:nth-child(2)"
	orderProductRowPattern    = "#orderProductsTable tbody tr:nth-child(%d)"
	orderProductEditButton    = " button.js-order-product-edit-btn"
	orderProductQuantityInput = "#orderProductsTable tr.editProductRow input.editProductQuantity"
	orderProductUpdateButton  = "#orderProductsTable tr.editProductRow button.productEditSaveBtn"
	orderProductQuantity      = " td.cellProductQuantity span"
)

// OrderView is the detail page of one order
type OrderView struct {
	Base
}

// ExpectedTitle is the prefix of the order view document title
func (p OrderView) ExpectedTitle() string {
	return "Order"
}

// ModifyOrderStatus applies status and returns the status selected afterwards
func (p OrderView) ModifyOrderStatus(tab page.Tab, status string) (string, error) {
	current, err := p.CurrentOrderStatus(tab)
	if err == nil && current == status {
		return current, nil
	}
	if err := p.SelectByVisibleText(tab, orderStatusSelect, status); err != nil {
		return "", err
	}
	if err := p.ClickAndWaitForURL(tab, orderStatusSubmit); err != nil {
		return "", err
	}
	return p.CurrentOrderStatus(tab)
}

// CurrentOrderStatus returns the status the order is in
func (p OrderView) CurrentOrderStatus(tab page.Tab) (string, error) {
	return p.TextContent(tab, orderStatusSelected)
}

// DocumentType returns the type of the document in the 1-based row of the documents tab
func (p OrderView) DocumentType(tab page.Tab, row int) (string, error) {
	if !p.ElementVisible(tab, orderDocumentsTable) {
		if err := p.ClickAndRequireVisible(tab, orderDocumentsTabLink, orderDocumentsTable); err != nil {
			return "", err
		}
	}
	return p.TextContent(tab, fmt.Sprintf(orderDocumentTypePattern, row))
}

// ModifyProductQuantity sets the quantity of the product in the 1-based row
// and returns the quantity displayed once the order is updated
func (p OrderView) ModifyProductQuantity(tab page.Tab, row, quantity int) (int, error) {
	productRow := fmt.Sprintf(orderProductRowPattern, row)
	if err := p.ClickAndRequireVisible(tab, productRow+orderProductEditButton, orderProductQuantityInput); err != nil {
		return 0, err
	}
	if err := p.SetValue(tab, orderProductQuantityInput, strconv.Itoa(quantity)); err != nil {
		return 0, err
	}
	if err := p.Click(tab, orderProductUpdateButton); err != nil {
		return 0, err
	}
	if err := p.RequireHidden(tab, orderProductQuantityInput); err != nil {
		return 0, err
	}
	return p.NumberFromText(tab, productRow+orderProductQuantity)
}

// DeliverySlipsNoResultMessage is displayed when no slip exists for the requested dates
const DeliverySlipsNoResultMessage = "No delivery slip was found for this period."

// DateLayout is the date format of the delivery slip form
const DateLayout = "2006-01-02"

const (
	deliverySlipsDateFrom       = "#form_date_from"
	deliverySlipsDateTo         = "#form_date_to"
	deliverySlipsGenerateButton = "#form-delivery-slips-print-button"
)

// DeliverySlips is Orders > Delivery Slips
type DeliverySlips struct {
	Base
}

// ExpectedTitle is the document title of the delivery slips page
func (p DeliverySlips) ExpectedTitle() string {
	return p.Title("Delivery Slips")
}

func (p DeliverySlips) setDates(tab page.Tab, from, to time.Time) error {
	if !from.IsZero() {
		if err := p.SetValue(tab, deliverySlipsDateFrom, from.Format(DateLayout)); err != nil {
			return err
		}
	}
	if !to.IsZero() {
		if err := p.SetValue(tab, deliverySlipsDateTo, to.Format(DateLayout)); err != nil {
			return err
		}
	}
	return nil
}

// GeneratePDFByDateAndDownload generates the slips between from and to and
// returns the path of the downloaded file. Zero dates keep the form defaults.
func (p DeliverySlips) GeneratePDFByDateAndDownload(tab page.Tab, from, to time.Time) (string, error) {
	if err := p.setDates(tab, from, to); err != nil {
		return "", err
	}
	return p.DownloadFile(tab, deliverySlipsGenerateButton)
}

// GeneratePDFByDateAndFail submits dates with no slip and returns the error displayed
func (p DeliverySlips) GeneratePDFByDateAndFail(tab page.Tab, from, to time.Time) (string, error) {
	if err := p.setDates(tab, from, to); err != nil {
		return "", err
	}
	if err := p.ClickAndWaitForURL(tab, deliverySlipsGenerateButton); err != nil {
		return "", err
	}
	return p.AlertDangerContent(tab)
}
