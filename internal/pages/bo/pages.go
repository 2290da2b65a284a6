package bo

import (
	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/page"
)

// Pages bundles every back-office page object. It holds no per-tab state and
// can be shared by concurrently running suites.
type Pages struct {
	Login             Login
	Dashboard         Dashboard
	Attributes        Attributes
	AttributeValues   AttributeValues
	AddAttributeValue AddAttributeValue
	CustomerSettings  CustomerSettings
	Groups            Groups
	AddGroup          AddGroup
	APIClients        APIClients
	AddAPIClient      AddAPIClient
	Orders            Orders
	OrderView         OrderView
	DeliverySlips     DeliverySlips
	ModuleManager     ModuleManager
	Themes            Themes
}

// New builds the back-office pages of shop
func New(shop *config.ShopConfig, timeouts page.Timeouts) *Pages {
	base := Base{Base: page.NewBase(timeouts), Shop: shop}
	return &Pages{
		Login:             Login{base},
		Dashboard:         Dashboard{base},
		Attributes:        NewAttributes(base),
		AttributeValues:   NewAttributeValues(base),
		AddAttributeValue: AddAttributeValue{base},
		CustomerSettings:  CustomerSettings{base},
		Groups:            NewGroups(base),
		AddGroup:          AddGroup{base},
		APIClients:        NewAPIClients(base),
		AddAPIClient:      AddAPIClient{base},
		Orders:            NewOrders(base),
		OrderView:         OrderView{base},
		DeliverySlips:     DeliverySlips{base},
		ModuleManager:     ModuleManager{base},
		Themes:            Themes{base},
	}
}
