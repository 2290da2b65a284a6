// Package campaigns declares the scenarios run against the shop.
package campaigns

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/pages/bo"
	"github.com/themizzi/shopcheck/internal/pages/fo"
	"github.com/themizzi/shopcheck/internal/scenario"
)

// ErrNoCampaign is returned when a pattern selects nothing
var ErrNoCampaign = errors.New("no campaign matches")

// Deps is what campaigns are built from
type Deps struct {
	Shop     *config.ShopConfig
	BO       *bo.Pages
	FO       *fo.Pages
	Fixtures *fixtures.Generator
	Now      func() time.Time
}

// Campaign is a named scenario. BaseContext prefixes the identifier of every step.
type Campaign struct {
	BaseContext string
	Title       string
	Build       func(d Deps) *scenario.Suite
}

var registry = map[string]Campaign{}

func register(c Campaign) {
	if _, ok := registry[c.BaseContext]; ok {
		panic("campaign registered twice: " + c.BaseContext)
	}
	registry[c.BaseContext] = c
}

// All returns every campaign sorted by base context
func All() []Campaign {
	all := make([]Campaign, 0, len(registry))
	for _, c := range registry {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].BaseContext < all[j].BaseContext })
	return all
}

// Select returns the campaigns whose base context matches one of patterns,
// in path.Match syntax. No pattern selects everything.
func Select(patterns ...string) ([]Campaign, error) {
	if len(patterns) == 0 {
		return All(), nil
	}
	var selected []Campaign
	for _, c := range All() {
		for _, pattern := range patterns {
			ok, err := path.Match(pattern, c.BaseContext)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if ok {
				selected = append(selected, c)
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoCampaign, patterns)
	}
	return selected, nil
}

// Suites builds the suites of campaigns
func Suites(d Deps, campaigns []Campaign) []*scenario.Suite {
	if d.Now == nil {
		d.Now = time.Now
	}
	suites := make([]*scenario.Suite, 0, len(campaigns))
	for _, c := range campaigns {
		suite := c.Build(d)
		suite.BaseContext = c.BaseContext
		if suite.Title == "" {
			suite.Title = c.Title
		}
		suites = append(suites, suite)
	}
	return suites
}
