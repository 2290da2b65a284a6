package bo

import (
	"fmt"
	"strconv"

	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/page"
)

// API client grid columns
const (
	APIClientID       page.Column = "id_api_client"
	APIClientClientID page.Column = "client_id"
	APIClientName     page.Column = "client_name"
)

// APIClientGeneratedMessage starts the notice displayed with a new client secret
const APIClientGeneratedMessage = "Make sure to copy your client secret now"

const addNewAPIClientLink = "#page-header-desc-configuration-add"

// APIClients lists the clients of the admin API
type APIClients struct {
	Base
	Grid page.Grid
}

// NewAPIClients creates the API clients list page
func NewAPIClients(base Base) APIClients {
	return APIClients{
		Base: base,
		Grid: page.NewGrid(base.Base, page.SymfonyGrid("api_client"), map[page.Column]page.ColumnSpec{
			APIClientID:       {Cell: "td.column-id_api_client", Filter: page.InputFilter},
			APIClientClientID: {Cell: "td.column-client_id", Filter: page.InputFilter},
			APIClientName:     {Cell: "td.column-client_name", Filter: page.InputFilter},
		}),
	}
}

// ExpectedTitle is the document title of the API clients list
func (p APIClients) ExpectedTitle() string {
	return p.Title("API Clients")
}

// GoToNewAPIClientPage opens the client creation form
func (p APIClients) GoToNewAPIClientPage(tab page.Tab) error {
	return p.ClickAndWaitForURL(tab, addNewAPIClientLink)
}

// TextForEmptyTable returns the message shown when no client exists
func (p APIClients) TextForEmptyTable(tab page.Tab) (string, error) {
	return p.Grid.TextForEmptyTable(tab)
}

// DeleteAPIClient deletes the client in the 1-based row and returns the success message
func (p APIClients) DeleteAPIClient(tab page.Tab, row int) (string, error) {
	return p.Grid.DeleteRow(tab, row)
}

const (
	apiClientIDInput          = "#api_client_client_id"
	apiClientNameInput        = "#api_client_client_name"
	apiClientDescriptionInput = "#api_client_description"
	apiClientLifetimeInput    = "#api_client_lifetime"
	apiClientEnabledPattern   = "#api_client_enabled_%d"
	apiClientScopePattern     = "input[name='api_client[scopes][]'][value='%s']"
	apiClientSaveButton       = "#save-button"
	apiClientCopySecretButton = "#content div.alert.alert-info button.copy-client-secret"
)

// AddAPIClient is the creation form of an API client
type AddAPIClient struct {
	Base
}

// ExpectedTitle is the document title of the creation form
func (p AddAPIClient) ExpectedTitle() string {
	return p.Title("New API Client")
}

// AddAPIClient fills the form with client, saves it and returns the success message
func (p AddAPIClient) AddAPIClient(tab page.Tab, client fixtures.APIClient) (string, error) {
	if err := p.SetValue(tab, apiClientIDInput, client.ClientID); err != nil {
		return "", err
	}
	if err := p.SetValue(tab, apiClientNameInput, client.ClientName); err != nil {
		return "", err
	}
	if err := p.SetValue(tab, apiClientDescriptionInput, client.Description); err != nil {
		return "", err
	}
	if client.TokenLifetime > 0 {
		if err := p.SetValue(tab, apiClientLifetimeInput, strconv.Itoa(client.TokenLifetime)); err != nil {
			return "", err
		}
	}

	enabled := 0
	if client.Enabled {
		enabled = 1
	}
	if err := p.SetChecked(tab, fmt.Sprintf(apiClientEnabledPattern, enabled), true); err != nil {
		return "", err
	}
	for _, scope := range client.Scopes {
		if err := p.SetChecked(tab, fmt.Sprintf(apiClientScopePattern, scope), true); err != nil {
			return "", err
		}
	}

	if err := p.ClickAndWaitForURL(tab, apiClientSaveButton); err != nil {
		return "", err
	}
	return p.AlertSuccessContent(tab)
}

// CopyClientSecret copies the generated secret to the clipboard
func (p AddAPIClient) CopyClientSecret(tab page.Tab) error {
	return p.Click(tab, apiClientCopySecretButton)
}

// ClipboardText returns the clipboard content of the session
func (p AddAPIClient) ClipboardText(tab page.Tab) (string, error) {
	text, err := tab.ClipboardText()
	if err != nil {
		return "", fmt.Errorf("failed to read client secret: %w", err)
	}
	return text, nil
}
