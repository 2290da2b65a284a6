package campaigns

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/fragments"
	"github.com/themizzi/shopcheck/internal/pages/bo"
	"github.com/themizzi/shopcheck/internal/scenario"
)

func init() {
	register(Campaign{
		BaseContext: "functional_BO_modules_moduleManager_filterModulesByStatus",
		Title:       "BO - Modules - Module Manager : Filter modules by status",
		Build:       filterModulesByStatus,
	})
}

func filterModulesByStatus(d Deps) *scenario.Suite {
	pages := d.BO
	module := fixtures.ContactForm

	steps := []scenario.Step{
		fragments.LoginBO(pages),
		{
			Title: "should go to 'Modules > Module Manager' page",
			ID:    "goToModuleManagerPage",
			Do: func(t *scenario.T, env *scenario.Env) {
				require.NoError(t, pages.Dashboard.GoToSubMenu(env.Tab, bo.ModulesParentLink, bo.ModuleManagerLink))
				require.NoError(t, pages.ModuleManager.CloseSfToolBar(env.Tab))
				title, err := pages.ModuleManager.PageTitle(env.Tab)
				require.NoError(t, err)
				assert.Contains(t, title, pages.ModuleManager.ExpectedTitle())
			},
		},
		installUninstallStep(pages, module, false),
	}

	filters := []struct {
		status string
		active bool
	}{
		{bo.ModuleStatusEnabled, true},
		{bo.ModuleStatusEnabled, true},
		{bo.ModuleStatusDisabled, false},
		{bo.ModuleStatusInstalled, true},
		{bo.ModuleStatusUninstalled, false},
	}
	for i, filter := range filters {
		steps = append(steps, scenario.Step{
			Title: fmt.Sprintf("should filter by status : '%s'", filter.status),
			ID:    fmt.Sprintf("filterByStatus%d", i),
			Do: func(t *scenario.T, env *scenario.Env) {
				require.NoError(t, pages.ModuleManager.FilterByStatus(env.Tab, filter.status))

				states, err := pages.ModuleManager.AllModulesStatus(env.Tab, filter.status)
				require.NoError(t, err)
				for _, state := range states {
					assert.Equal(t, filter.active, state.Active, "module %q does not match the filter %s", state.Name, filter.status)
				}
			},
		})
	}

	steps = append(steps,
		installUninstallStep(pages, module, true),
		scenario.Step{
			Title: "should show all modules and check the different blocks",
			ID:    "showAllModules",
			Do: func(t *scenario.T, env *scenario.Env) {
				require.NoError(t, pages.ModuleManager.FilterByStatus(env.Tab, bo.ModuleStatusAll))
				blocks, err := pages.ModuleManager.NumberOfBlocks(env.Tab)
				require.NoError(t, err)
				assert.Greater(t, blocks, 2)
			},
		},
	)

	return &scenario.Suite{Steps: steps}
}

func installUninstallStep(pages *bo.Pages, module fixtures.Module, install bool) scenario.Step {
	title, id := "should uninstall the module '%s'", "uninstallModule"
	if install {
		title, id = "should install the module '%s'", "installModule"
	}
	return scenario.Step{
		Title: fmt.Sprintf(title, module.Name),
		ID:    id,
		Do: func(t *scenario.T, env *scenario.Env) {
			message, err := pages.ModuleManager.InstallUninstallModule(env.Tab, module, install)
			require.NoError(t, err)
			assert.Equal(t, bo.InstallUninstallMessage(module, install), message)
		},
	}
}
