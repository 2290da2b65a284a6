// Package fragments holds the steps and suites shared by several campaigns.
package fragments

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/pages/bo"
	"github.com/themizzi/shopcheck/internal/scenario"
)

// Base contexts of the shared steps
const (
	LoginBaseContext  = "commonTests-loginBO"
	LogoutBaseContext = "commonTests-logoutBO"
)

// LoginBO signs the configured employee into the back office
func LoginBO(pages *bo.Pages) scenario.Step {
	return scenario.Step{
		Title:       "should login in BO",
		ID:          "loginBO",
		BaseContext: LoginBaseContext,
		Do: func(t *scenario.T, env *scenario.Env) {
			shop := pages.Login.Shop
			require.NoError(t, pages.Login.Open(env.Tab))
			require.NoError(t, pages.Login.SignIn(env.Tab, shop.AdminEmail, shop.AdminPassword))

			title, err := pages.Dashboard.PageTitle(env.Tab)
			require.NoError(t, err)
			assert.Contains(t, title, pages.Dashboard.ExpectedTitle())
		},
	}
}

// LogoutBO signs the employee out and checks the login form is back
func LogoutBO(pages *bo.Pages) scenario.Step {
	return scenario.Step{
		Title:       "should log out from BO",
		ID:          "logoutBO",
		BaseContext: LogoutBaseContext,
		Do: func(t *scenario.T, env *scenario.Env) {
			require.NoError(t, pages.Dashboard.Logout(env.Tab))

			title, err := pages.Login.PageTitle(env.Tab)
			require.NoError(t, err)
			assert.Contains(t, title, pages.Login.ExpectedTitle())
		},
	}
}

// EnableHummingbird makes hummingbird the storefront theme
func EnableHummingbird(pages *bo.Pages, baseContext string) *scenario.Suite {
	return useTheme(pages, baseContext, "Enable the hummingbird theme", bo.ThemeHummingbird)
}

// DisableHummingbird restores the classic storefront theme
func DisableHummingbird(pages *bo.Pages, baseContext string) *scenario.Suite {
	return useTheme(pages, baseContext, "Disable the hummingbird theme", bo.ThemeClassic)
}

func useTheme(pages *bo.Pages, baseContext, title, theme string) *scenario.Suite {
	return &scenario.Suite{
		Title:       title,
		BaseContext: baseContext,
		Steps: []scenario.Step{
			LoginBO(pages),
			{
				Title: "should go to 'Design > Theme & Logo' page",
				ID:    "goToThemeAndLogoPage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Dashboard.GoToSubMenu(env.Tab, bo.DesignParentLink, bo.ThemeAndLogoLink))
					require.NoError(t, pages.Themes.CloseSfToolBar(env.Tab))

					title, err := pages.Themes.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, title, pages.Themes.ExpectedTitle())
				},
			},
			{
				Title: "should enable the theme " + theme,
				ID:    "enableTheme",
				Do: func(t *scenario.T, env *scenario.Env) {
					message, err := pages.Themes.EnableTheme(env.Tab, theme)
					require.NoError(t, err)
					if message != "" {
						assert.Contains(t, message, bo.ThemeSuccessMessage)
					}
					assert.True(t, pages.Themes.IsThemeEnabled(env.Tab, theme), "theme %s is not enabled", theme)
				},
			},
			LogoutBO(pages),
		},
	}
}

// DeleteAPIClient removes the first API client, undoing a campaign that created one
func DeleteAPIClient(pages *bo.Pages, baseContext string) *scenario.Suite {
	return &scenario.Suite{
		Title:       "Delete the API client",
		BaseContext: baseContext,
		Steps: []scenario.Step{
			LoginBO(pages),
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
				Title: "should delete the API client",
				ID:    "deleteAPIClient",
				Do: func(t *scenario.T, env *scenario.Env) {
					message, err := pages.APIClients.DeleteAPIClient(env.Tab, 1)
					require.NoError(t, err)
					assert.Contains(t, message, bo.SuccessfulDeletionMessage)
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
			LogoutBO(pages),
		},
	}
}
