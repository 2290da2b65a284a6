package page

import (
	"errors"
	"fmt"
	"strconv"
)

// Column is the data name of a grid column
type Column string

// FilterKind describes the filter control rendered for a column
type FilterKind int

// Filter kinds
const (
	NoFilter FilterKind = iota
	InputFilter
	SelectFilter
)

// SortDirection is the order a grid column can be sorted in
type SortDirection string

// Sort directions
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ColumnSpec locates a column inside a body row
type ColumnSpec struct {
	// Cell is the cell selector relative to its row, e.g. "td.column-name"
	Cell string
	// Inner narrows the cell to a descendant element
	Inner string
	// Attribute, when set, is read instead of the text content
	Attribute string
	Filter    FilterKind
	// FilterName overrides the column name used by the filter control
	FilterName string
}

// GridSelectors holds every selector a grid interaction needs
type GridSelectors struct {
	Panel       string
	HeaderCount string
	Table       string

	Filter       func(name string) string
	SearchButton string
	ResetButton  string

	Rows          string
	SelectAll     string
	EditLink      func(row int) string
	ActionsToggle func(row int) string
	DeleteLink    func(row int) string
	DeleteConfirm string

	BulkToggle       string
	BulkDelete       string
	BulkModal        string
	BulkModalConfirm string

	PositionHandle func(row int) string

	PaginationLimit    string
	PaginationLabel    string
	PaginationNext     string
	PaginationPrevious string

	SortColumn func(column string) string
	SortButton func(column string) string

	EmptyTable   string
	SuccessAlert string
}

// Row returns the selector of the 1-based body row
func (s GridSelectors) Row(row int) string {
	return fmt.Sprintf("%s:nth-child(%d)", s.Rows, row)
}

// Cell returns the selector of a column cell in the 1-based body row
func (s GridSelectors) Cell(row int, spec ColumnSpec) string {
	selector := fmt.Sprintf("%s %s", s.Row(row), spec.Cell)
	if spec.Inner != "" {
		selector += " " + spec.Inner
	}
	return selector
}

// SymfonyGrid builds the selectors of a back-office grid rendered by the grid component
func SymfonyGrid(name string) GridSelectors {
	panel := fmt.Sprintf("#%s_grid_panel", name)
	table := fmt.Sprintf("#%s_grid_table", name)
	filterRow := table + " tr.column-filters"
	rows := table + " tbody tr"
	row := func(n int) string { return fmt.Sprintf("%s:nth-child(%d)", rows, n) }
	actions := func(n int) string { return row(n) + " td.column-actions" }
	modal := fmt.Sprintf("#%s-grid-confirm-modal", name)
	sortColumn := func(column string) string {
		return fmt.Sprintf("%s thead div.ps-sortable-column[data-sort-col-name='%s']", table, column)
	}

	return GridSelectors{
		Panel:       panel,
		HeaderCount: panel + " .card-header h3.card-header-title",
		Table:       table,

		Filter: func(filterName string) string {
			return fmt.Sprintf("%s [name='%s[%s]']", filterRow, name, filterName)
		},
		SearchButton: filterRow + " button.grid-search-button",
		ResetButton:  filterRow + " button.grid-reset-button",

		Rows:          rows,
		SelectAll:     filterRow + " .grid_bulk_action_select_all",
		EditLink:      func(n int) string { return actions(n) + " a.grid-edit-row-link" },
		ActionsToggle: func(n int) string { return actions(n) + " a.dropdown-toggle" },
		DeleteLink:    func(n int) string { return actions(n) + " .dropdown-menu a.grid-delete-row-link" },
		DeleteConfirm: modal + " .modal-footer button.btn-confirm-submit",

		BulkToggle:       panel + " button.dropdown-toggle.js-bulk-actions-btn",
		BulkDelete:       fmt.Sprintf("%s #%s_grid_bulk_action_delete_selection", panel, name),
		BulkModal:        modal,
		BulkModalConfirm: modal + " button.btn-confirm-submit",

		PositionHandle: func(n int) string { return row(n) + " td.column-position_handle div i" },

		PaginationLimit:    "#paginator_select_page_limit",
		PaginationLabel:    panel + " .col-form-label",
		PaginationNext:     panel + " [data-role=next-page-link]",
		PaginationPrevious: panel + " [data-role='previous-page-link']",

		SortColumn: sortColumn,
		SortButton: func(column string) string { return sortColumn(column) + " span.ps-sort" },

		EmptyTable:   rows + ".empty_row td",
		SuccessAlert: "#content div.alert.alert-success div.alert-text p",
	}
}

// LegacyGrid builds the selectors of a back-office list rendered by a legacy controller
func LegacyGrid(table string) GridSelectors {
	form := fmt.Sprintf("#form-%s", table)
	tableID := fmt.Sprintf("#table-%s", table)
	rows := tableID + " tbody tr"
	row := func(n int) string { return fmt.Sprintf("%s:nth-child(%d)", rows, n) }

	return GridSelectors{
		Panel:       form,
		HeaderCount: form + " .panel-heading .badge",
		Table:       tableID,

		Filter: func(filterName string) string {
			return fmt.Sprintf("%s tr.filter [name='%sFilter_%s']", tableID, table, filterName)
		},
		SearchButton: fmt.Sprintf("#submitFilterButton%s", table),
		ResetButton:  fmt.Sprintf("%s button[name='submitReset%s']", tableID, table),

		Rows:          rows,
		SelectAll:     form + " .bulk-actions a[onclick*='checkDelBoxes']",
		EditLink:      func(n int) string { return row(n) + " a.edit" },
		ActionsToggle: func(n int) string { return row(n) + " button.dropdown-toggle" },
		DeleteLink:    func(n int) string { return row(n) + " .dropdown-menu a.delete" },
		DeleteConfirm: "#popup_ok",

		BulkToggle:       form + " .bulk-actions button.dropdown-toggle",
		BulkDelete:       form + " .bulk-actions a[onclick*='submitBulkdelete']",
		BulkModal:        "#popup_panel",
		BulkModalConfirm: "#popup_ok",

		PositionHandle: func(n int) string { return row(n) + " td.dragHandle" },

		PaginationLimit:    form + " .pagination select",
		PaginationLabel:    form + " .pagination",
		PaginationNext:     form + " .pagination li a[rel='next']",
		PaginationPrevious: form + " .pagination li a[rel='prev']",

		SortColumn: func(column string) string {
			return fmt.Sprintf("%s thead th[data-sort-col-name='%s']", tableID, column)
		},
		SortButton: func(column string) string {
			return fmt.Sprintf("%s thead th[data-sort-col-name='%s'] a.active", tableID, column)
		},

		EmptyTable:   rows + " td.list-empty",
		SuccessAlert: "#content div.alert.alert-success",
	}
}

// Grid implements the filter, read, row action, bulk action, pagination and
// sort interactions shared by every back-office grid.
type Grid struct {
	Base
	Sel     GridSelectors
	Columns map[Column]ColumnSpec
}

// NewGrid creates a grid over the given selectors and column table
func NewGrid(base Base, sel GridSelectors, columns map[Column]ColumnSpec) Grid {
	return Grid{Base: base, Sel: sel, Columns: columns}
}

func (g Grid) column(column Column) (ColumnSpec, error) {
	spec, ok := g.Columns[column]
	if !ok {
		return ColumnSpec{}, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	return spec, nil
}

// ResetFilter clears all filters when a reset control is rendered, otherwise it does nothing
func (g Grid) ResetFilter(tab Tab) error {
	if g.ElementNotVisible(tab, g.Sel.ResetButton, g.Timeouts.Probe) {
		return nil
	}
	if err := g.ClickAndWaitForLoadState(tab, g.Sel.ResetButton); err != nil {
		return err
	}
	g.ElementNotVisible(tab, g.Sel.ResetButton, g.Timeouts.Probe)
	return nil
}

// NumberOfElements reads the result count from the grid header
func (g Grid) NumberOfElements(tab Tab) (int, error) {
	return g.NumberFromText(tab, g.Sel.HeaderCount)
}

// RowsCount returns the number of data rows currently rendered. The
// placeholder row of an empty grid does not count.
func (g Grid) RowsCount(tab Tab) (int, error) {
	placeholder, err := g.ElementsCount(tab, g.Sel.EmptyTable)
	if err != nil {
		return 0, err
	}
	if placeholder > 0 {
		return 0, nil
	}
	return g.ElementsCount(tab, g.Sel.Rows)
}

// ResetAndGetNumberOfLines resets filters and returns the result count
func (g Grid) ResetAndGetNumberOfLines(tab Tab) (int, error) {
	if err := g.ResetFilter(tab); err != nil {
		return 0, err
	}
	return g.NumberOfElements(tab)
}

// FilterTable sets the filter of column to value and runs the search
func (g Grid) FilterTable(tab Tab, column Column, value string) error {
	spec, err := g.column(column)
	if err != nil {
		return err
	}
	name := spec.FilterName
	if name == "" {
		name = string(column)
	}
	selector := g.Sel.Filter(name)

	switch spec.Filter {
	case InputFilter:
		if err := g.SetValue(tab, selector, value); err != nil {
			return err
		}
	case SelectFilter:
		if err := g.SelectByVisibleText(tab, selector, value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s has no filter", ErrUnknownColumn, column)
	}

	return g.ClickAndWaitForURL(tab, g.Sel.SearchButton)
}

// TextColumn returns the content of column in the 1-based row
func (g Grid) TextColumn(tab Tab, row int, column Column) (string, error) {
	spec, err := g.column(column)
	if err != nil {
		return "", err
	}
	selector := g.Sel.Cell(row, spec)
	if spec.Attribute != "" {
		return g.AttributeContent(tab, selector, spec.Attribute)
	}
	return g.TextContent(tab, selector)
}

// AllRowsColumnContent returns the non-empty content of column for every rendered row
func (g Grid) AllRowsColumnContent(tab Tab, column Column) ([]string, error) {
	if _, err := g.column(column); err != nil {
		return nil, err
	}
	rows, err := g.RowsCount(tab)
	if err != nil {
		return nil, err
	}

	contents := make([]string, 0, rows)
	for i := 1; i <= rows; i++ {
		content, err := g.TextColumn(tab, i, column)
		if err != nil {
			return nil, err
		}
		if content != "" {
			contents = append(contents, content)
		}
	}
	return contents, nil
}

// GoToEditRow opens the edit page of the 1-based row
func (g Grid) GoToEditRow(tab Tab, row int) error {
	return g.ClickAndWaitForURL(tab, g.Sel.EditLink(row))
}

// DeleteRow deletes the 1-based row through its action menu and returns the success message
func (g Grid) DeleteRow(tab Tab, row int) (string, error) {
	if err := g.ClickAndRequireVisible(tab, g.Sel.ActionsToggle(row), g.Sel.DeleteLink(row)); err != nil {
		return "", err
	}
	if err := g.ClickAndRequireVisible(tab, g.Sel.DeleteLink(row), g.Sel.DeleteConfirm); err != nil {
		return "", err
	}
	if err := g.ClickAndWaitForURL(tab, g.Sel.DeleteConfirm); err != nil {
		return "", err
	}
	return g.TextContent(tab, g.Sel.SuccessAlert)
}

// BulkDelete selects every row, deletes the selection and returns the success message
func (g Grid) BulkDelete(tab Tab) (string, error) {
	if err := tab.ClickDOM(g.Sel.SelectAll); err != nil {
		return "", classify(ErrElementNotInteractable, g.Sel.SelectAll, err)
	}
	if err := g.RequireVisible(tab, g.Sel.BulkToggle+":not([disabled])"); err != nil {
		return "", err
	}
	if err := g.ClickAndRequireVisible(tab, g.Sel.BulkToggle, g.Sel.BulkToggle+"[aria-expanded='true']"); err != nil {
		return "", err
	}
	if err := g.ClickAndRequireVisible(tab, g.Sel.BulkDelete, g.Sel.BulkModal+".show"); err != nil {
		return "", err
	}
	if err := g.ClickAndWaitForLoadState(tab, g.Sel.BulkModalConfirm); err != nil {
		return "", err
	}
	g.ElementNotVisible(tab, g.Sel.BulkModal, g.Timeouts.Action)

	return g.TextContent(tab, g.Sel.SuccessAlert)
}

// ChangePosition drags the row at position from onto position to and returns the success message
func (g Grid) ChangePosition(tab Tab, from, to int) (string, error) {
	if err := g.DragAndDrop(tab, g.Sel.PositionHandle(from), g.Sel.PositionHandle(to), true); err != nil {
		return "", err
	}
	return g.TextContent(tab, g.Sel.SuccessAlert)
}

// PaginationLabel returns the pagination label text
func (g Grid) PaginationLabel(tab Tab) (string, error) {
	return g.TextContent(tab, g.Sel.PaginationLabel)
}

// SelectPaginationLimit changes the page size and returns the refreshed pagination label
func (g Grid) SelectPaginationLimit(tab Tab, limit int) (string, error) {
	current := tab.URL()
	if err := g.SelectByVisibleText(tab, g.Sel.PaginationLimit, strconv.Itoa(limit)); err != nil {
		return "", err
	}
	err := tab.WaitForURL(func(url string) bool { return url != current }, g.Timeouts.Navigation)
	if err != nil {
		return "", classify(ErrNavigationTimeout, g.Sel.PaginationLimit, err)
	}
	if err := tab.WaitForLoadState(LoadStateNetworkIdle, g.Timeouts.Navigation); err != nil {
		return "", classify(ErrNavigationTimeout, g.Sel.PaginationLimit, err)
	}
	return g.PaginationLabel(tab)
}

// PaginationNext moves to the next page and returns the refreshed pagination label
func (g Grid) PaginationNext(tab Tab) (string, error) {
	if err := g.ClickAndWaitForURL(tab, g.Sel.PaginationNext); err != nil {
		return "", err
	}
	return g.PaginationLabel(tab)
}

// PaginationPrevious moves to the previous page and returns the refreshed pagination label
func (g Grid) PaginationPrevious(tab Tab) (string, error) {
	if err := g.ClickAndWaitForURL(tab, g.Sel.PaginationPrevious); err != nil {
		return "", err
	}
	return g.PaginationLabel(tab)
}

// SortTable sorts column in direction. The sort control cycles through
// directions, so it is clicked at most twice before waiting for the header
// to report the requested direction.
func (g Grid) SortTable(tab Tab, column Column, direction SortDirection) error {
	if _, err := g.column(column); err != nil {
		return err
	}
	name := string(column)
	sorted := fmt.Sprintf("%s[data-sort-direction='%s']", g.Sel.SortColumn(name), direction)

	err := Until(2,
		func() bool { return g.WaitForVisibleSelector(tab, sorted, g.Timeouts.Probe) },
		func() error {
			if err := g.Hover(tab, g.Sel.SortColumn(name)); err != nil {
				return err
			}
			return g.ClickAndWaitForURL(tab, g.Sel.SortButton(name))
		},
	)
	if err != nil && !errors.Is(err, ErrAttemptsExhausted) {
		return err
	}

	return g.RequireVisibleWithin(tab, sorted, g.Timeouts.LongWait)
}

// TextForEmptyTable returns the message rendered when the grid has no rows
func (g Grid) TextForEmptyTable(tab Tab) (string, error) {
	return g.TextContent(tab, g.Sel.EmptyTable)
}
