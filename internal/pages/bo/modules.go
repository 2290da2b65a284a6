package bo

import (
	"fmt"

	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/page"
)

// Module statuses accepted by the status filter
const (
	ModuleStatusEnabled     = "enabled"
	ModuleStatusDisabled    = "disabled"
	ModuleStatusInstalled   = "installed"
	ModuleStatusUninstalled = "uninstalled"
	ModuleStatusAll         = "all-Modules"
)

var moduleStatusRefs = map[string]string{
	ModuleStatusEnabled:     "1",
	ModuleStatusDisabled:    "0",
	ModuleStatusInstalled:   "2",
	ModuleStatusUninstalled: "3",
	ModuleStatusAll:         "-1",
}

const (
	moduleSearchInput       = "#search-input-group input.pstaggerAddTagInput"
	moduleSearchButton      = "#module-search-button"
	moduleStatusToggle      = "#notification-dropdown-status button.dropdown-toggle, .module-status-menu button"
	moduleStatusItemPattern = "div.ps-dropdown-menu[aria-labelledby='module-status-dropdown'] [data-status-ref='%s']"
	moduleItemsSelector     = "#modules-list-container-all div.module-item"
	moduleItemPattern       = "div.module-item[data-tech-name='%s']"
	moduleActionToggle      = " div.module-actions button.dropdown-toggle"
	moduleInstallButton     = " button.module_action_menu_install"
	moduleUninstallButton   = " button.module_action_menu_uninstall"
	moduleUninstallModal    = "#module-modal-confirm-%s-uninstall"
	moduleModalConfirm      = " a.module_action_modal_uninstall"
	moduleBlocksSelector    = "#main-div div.module-short-list"
)

// ModuleState is what a listed module reports about itself
type ModuleState struct {
	Name string
	// Active is the enabled flag for the enabled and disabled filters, the
	// installed flag for the others
	Active bool
}

// ModuleManager is Modules > Module Manager
type ModuleManager struct {
	Base
}

// ExpectedTitle is the document title of the module manager
func (p ModuleManager) ExpectedTitle() string {
	return p.Title("Module manager")
}

// InstallUninstallMessage is the growl shown after installing or uninstalling module
func InstallUninstallMessage(module fixtures.Module, install bool) string {
	action := "Uninstall"
	if install {
		action = "Install"
	}
	return fmt.Sprintf("%s action on module %s succeeded.", action, module.Tag)
}

// SearchModule filters the list on the technical name of module and reports whether it is listed
func (p ModuleManager) SearchModule(tab page.Tab, module fixtures.Module) (bool, error) {
	if err := p.SetValue(tab, moduleSearchInput, module.Tag); err != nil {
		return false, err
	}
	if err := p.ClickAndWaitForLoadState(tab, moduleSearchButton); err != nil {
		return false, err
	}
	return p.ElementVisible(tab, fmt.Sprintf(moduleItemPattern, module.Tag)), nil
}

// FilterByStatus restricts the list to the modules in status
func (p ModuleManager) FilterByStatus(tab page.Tab, status string) error {
	ref, ok := moduleStatusRefs[status]
	if !ok {
		return fmt.Errorf("%w: %s", page.ErrUnknownStatus, status)
	}
	item := fmt.Sprintf(moduleStatusItemPattern, ref)
	if err := p.ClickAndRequireVisible(tab, moduleStatusToggle, item); err != nil {
		return err
	}
	return p.ClickAndWaitForLoadState(tab, item)
}

// AllModulesStatus reads the flag status filters on for every listed module
func (p ModuleManager) AllModulesStatus(tab page.Tab, status string) ([]ModuleState, error) {
	var attribute string
	switch status {
	case ModuleStatusEnabled, ModuleStatusDisabled:
		attribute = "data-active"
	case ModuleStatusInstalled, ModuleStatusUninstalled:
		attribute = "data-installed"
	default:
		return nil, fmt.Errorf("%w: %s", page.ErrUnknownStatus, status)
	}

	count, err := p.ElementsCount(tab, moduleItemsSelector)
	if err != nil {
		return nil, err
	}
	states := make([]ModuleState, 0, count)
	for i := 0; i < count; i++ {
		item := page.Nth(moduleItemsSelector, i)
		name, err := p.AttributeContent(tab, item, "data-name")
		if err != nil {
			return nil, err
		}
		value, err := p.AttributeContent(tab, item, attribute)
		if err != nil {
			return nil, err
		}
		states = append(states, ModuleState{Name: name, Active: value == "1"})
	}
	return states, nil
}

// InstallUninstallModule installs or uninstalls module and returns the growl message
func (p ModuleManager) InstallUninstallModule(tab page.Tab, module fixtures.Module, install bool) (string, error) {
	if _, err := p.SearchModule(tab, module); err != nil {
		return "", err
	}
	item := fmt.Sprintf(moduleItemPattern, module.Tag)

	if install {
		if err := p.Click(tab, item+moduleInstallButton); err != nil {
			return "", err
		}
		return p.GrowlMessage(tab)
	}

	if err := p.ClickAndRequireVisible(tab, item+moduleActionToggle, item+moduleUninstallButton); err != nil {
		return "", err
	}
	modal := fmt.Sprintf(moduleUninstallModal, module.Tag)
	if err := p.ClickAndRequireVisible(tab, item+moduleUninstallButton, modal); err != nil {
		return "", err
	}
	if err := p.Click(tab, modal+moduleModalConfirm); err != nil {
		return "", err
	}
	return p.GrowlMessage(tab)
}

// NumberOfBlocks returns how many module category blocks are displayed
func (p ModuleManager) NumberOfBlocks(tab page.Tab) (int, error) {
	return p.ElementsCount(tab, moduleBlocksSelector)
}
