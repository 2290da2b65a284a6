package campaigns

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/api"
	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/fragments"
	"github.com/themizzi/shopcheck/internal/pages/bo"
	"github.com/themizzi/shopcheck/internal/scenario"
	"github.com/themizzi/shopcheck/internal/testcontext"
)

const (
	deleteCustomerGroupContext = "functional_API_endpoints_customerGroup_deleteCustomerGroupsId"
	customerGroupWriteScope    = "customer_group_write"
)

func init() {
	register(Campaign{
		BaseContext: deleteCustomerGroupContext,
		Title:       "API : DELETE /customers/group/{customerGroupId}",
		Build:       deleteCustomerGroup,
	})
}

func deleteCustomerGroup(d Deps) *scenario.Suite {
	pages := d.BO
	client := d.Fixtures.APIClient(fixtures.WithEnabled(true), fixtures.WithScopes(customerGroupWriteScope))
	group := d.Fixtures.Group()

	var (
		clientSecret   string
		accessToken    string
		numberOfGroups int
		groupID        int
	)
	apiClient := func(env *scenario.Env) *api.Client {
		return api.NewClient(d.Shop.APIURL, env.Request)
	}

	return &scenario.Suite{
		Steps: []scenario.Step{
			fragments.LoginBO(pages),
			{
				Title: "should go to 'Advanced Parameters > API Client' page",
				ID:    "goToAdminAPIPage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Dashboard.GoToSubMenu(env.Tab, bo.AdvancedParametersLink, bo.AdminAPILink))
					title, err := pages.APIClients.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, pages.APIClients.ExpectedTitle(), title)
				},
			},
			{
				Title: "should check that no records found",
				ID:    "checkThatNoRecordFound",
				Do: func(t *scenario.T, env *scenario.Env) {
					text, err := pages.APIClients.TextForEmptyTable(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, text, bo.NoRecordsFoundMessage)
				},
			},
			{
				Title: "should go to add New API Client page",
				ID:    "goToNewAPIClientPage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.APIClients.GoToNewAPIClientPage(env.Tab))
					title, err := pages.AddAPIClient.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, pages.AddAPIClient.ExpectedTitle(), title)
				},
			},
			{
				Title: "should create API Client",
				ID:    "createAPIClient",
				Do: func(t *scenario.T, env *scenario.Env) {
					message, err := pages.AddAPIClient.AddAPIClient(env.Tab, client)
					require.NoError(t, err)
					assert.Contains(t, message, bo.SuccessfulCreationMessage)

					info, err := pages.AddAPIClient.AlertInfoContent(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, info, bo.APIClientGeneratedMessage)
				},
			},
			{
				Title: "should copy client secret",
				ID:    "copyClientSecret",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.AddAPIClient.CopyClientSecret(env.Tab))
					secret, err := pages.AddAPIClient.ClipboardText(env.Tab)
					require.NoError(t, err)
					require.NotEmpty(t, secret)
					clientSecret = secret
				},
			},
			{
				Title: "should request the endpoint /access_token",
				ID:    "requestOauth2Token",
				Do: func(t *scenario.T, env *scenario.Env) {
					token, err := apiClient(env).RequestAccessToken(api.Credentials{
						ClientID:     client.ClientID,
						ClientSecret: clientSecret,
						Scopes:       []string{customerGroupWriteScope},
					})
					require.NoError(t, err)
					require.NoError(t, token.Validate())
					require.True(t, token.OAuth2Token().Valid(), "access token is already expired")
					accessToken = token.AccessToken
				},
			},
			{
				Title: "should go to 'Shop Parameters > Customer Settings' page",
				ID:    "goToCustomerSettingsPage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Dashboard.GoToSubMenu(env.Tab, bo.ShopParametersParentLink, bo.CustomerSettingsLink))
					require.NoError(t, pages.CustomerSettings.CloseSfToolBar(env.Tab))
					title, err := pages.CustomerSettings.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, title, pages.CustomerSettings.ExpectedTitle())
				},
			},
			{
				Title: "should go to 'Groups' page",
				ID:    "goToGroupsPage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.CustomerSettings.GoToGroupsPage(env.Tab))
					title, err := pages.Groups.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, title, pages.Groups.ExpectedTitle())
				},
			},
			{
				Title: "should reset all filters and get number of groups in BO",
				ID:    "resetFilterFirst",
				Do: func(t *scenario.T, env *scenario.Env) {
					n, err := pages.Groups.Grid.ResetAndGetNumberOfLines(env.Tab)
					require.NoError(t, err)
					assert.Positive(t, n)
					numberOfGroups = n
				},
			},
			{
				Title: "should go to add new group page",
				ID:    "goToAddNewGroup",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Groups.GoToNewGroupPage(env.Tab))
					title, err := pages.AddGroup.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, title, pages.AddGroup.ExpectedTitle())
				},
			},
			{
				Title: "should create group and check result",
				ID:    "createGroup",
				Do: func(t *scenario.T, env *scenario.Env) {
					message, err := pages.AddGroup.CreateEditGroup(env.Tab, group)
					require.NoError(t, err)
					assert.Contains(t, message, bo.SuccessfulCreationMessage)

					n, err := pages.Groups.Grid.NumberOfElements(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, numberOfGroups+1, n)
				},
			},
			{
				Title: "should filter list by name",
				ID:    "filterForCreation",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Groups.Grid.ResetFilter(env.Tab))
					require.NoError(t, pages.Groups.Grid.FilterTable(env.Tab, bo.GroupName, group.Name))

					n, err := pages.Groups.Grid.NumberOfElements(env.Tab)
					require.NoError(t, err)
					require.Equal(t, 1, n)

					name, err := pages.Groups.Grid.TextColumn(env.Tab, 1, bo.GroupName)
					require.NoError(t, err)
					assert.Contains(t, name, group.Name)

					groupID, err = pages.Groups.GroupIDInRow(env.Tab, 1)
					require.NoError(t, err)
					assert.Positive(t, groupID)
				},
			},
			{
				Title: "should request the endpoint /customers/group/{customerGroupId}",
				ID:    "requestEndpoint",
				Do: func(t *scenario.T, env *scenario.Env) {
					status, err := apiClient(env).DeleteCustomerGroup(groupID, accessToken)
					require.NoError(t, err)
					assert.Equal(t, http.StatusNoContent, status)
				},
			},
			{
				Title: "should filter list by name after deletion",
				ID:    "filterAfterDeletion",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Groups.Grid.ResetFilter(env.Tab))
					require.NoError(t, pages.Groups.Grid.FilterTable(env.Tab, bo.GroupName, group.Name))

					n, err := pages.Groups.Grid.NumberOfElements(env.Tab)
					require.NoError(t, err)
					assert.Zero(t, n)
				},
			},
		},
		Post: []*scenario.Suite{
			fragments.DeleteAPIClient(pages, testcontext.PostTest(deleteCustomerGroupContext)),
		},
	}
}
