package campaigns

import (
	"sort"
	"strconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/shopcheck/internal/fragments"
	"github.com/themizzi/shopcheck/internal/page"
	"github.com/themizzi/shopcheck/internal/pages/bo"
	"github.com/themizzi/shopcheck/internal/scenario"
)

const colorAttribute = "Color"

func init() {
	register(Campaign{
		BaseContext: "functional_BO_catalog_attributesAndFeatures_attributes_values_CRUDValue",
		Title:       "BO - Catalog - Attributes & Features : CRUD attribute value",
		Build:       crudAttributeValue,
	})
}

func crudAttributeValue(d Deps) *scenario.Suite {
	pages := d.BO
	values := pages.AttributeValues
	value := d.Fixtures.AttributeValue(colorAttribute)

	var numberOfValues int

	return &scenario.Suite{
		Steps: []scenario.Step{
			fragments.LoginBO(pages),
			{
				Title: "should go to 'Catalog > Attributes & Features' page",
				ID:    "goToAttributesPage",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Dashboard.GoToSubMenu(env.Tab, bo.CatalogParentLink, bo.AttributesAndFeaturesLink))
					require.NoError(t, pages.Attributes.CloseSfToolBar(env.Tab))
					title, err := pages.Attributes.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, title, pages.Attributes.ExpectedTitle())
				},
			},
			{
				Title: "should filter by name and view the attribute " + colorAttribute,
				ID:    "viewAttribute",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, pages.Attributes.Grid.ResetFilter(env.Tab))
					require.NoError(t, pages.Attributes.Grid.FilterTable(env.Tab, bo.AttributeName, colorAttribute))
					require.NoError(t, pages.Attributes.ViewAttribute(env.Tab, 1))

					title, err := values.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, title, values.ExpectedTitle(colorAttribute))
				},
			},
			{
				Title: "should reset all filters and get number of values in BO",
				ID:    "resetFilterFirst",
				Do: func(t *scenario.T, env *scenario.Env) {
					n, err := values.Grid.ResetAndGetNumberOfLines(env.Tab)
					require.NoError(t, err)
					assert.Positive(t, n)
					numberOfValues = n
				},
			},
			{
				Title: "should create a new value",
				ID:    "createValue",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, values.GoToAddNewValuePage(env.Tab))
					message, err := pages.AddAttributeValue.AddEditValue(env.Tab, value, false)
					require.NoError(t, err)
					assert.Contains(t, message, bo.SuccessfulCreationMessage)

					n, err := values.Grid.NumberOfElements(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, numberOfValues+1, n)
				},
			},
			{
				Title: "should filter values by name",
				ID:    "filterByName",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, values.Grid.FilterTable(env.Tab, bo.ValueName, value.Value))
					n, err := values.Grid.NumberOfElements(env.Tab)
					require.NoError(t, err)
					require.Equal(t, 1, n)

					name, err := values.Grid.TextColumn(env.Tab, 1, bo.ValueName)
					require.NoError(t, err)
					assert.Equal(t, value.Value, name)

					color, err := values.Grid.TextColumn(env.Tab, 1, bo.ValueColor)
					require.NoError(t, err)
					assert.NotEmpty(t, color)
				},
			},
			{
				Title: "should sort values by id desc",
				ID:    "sortByIDDesc",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, values.Grid.ResetFilter(env.Tab))
					require.NoError(t, values.Grid.SortTable(env.Tab, bo.ValueID, page.SortDesc))

					ids, err := values.Grid.AllRowsColumnContent(env.Tab, bo.ValueID)
					require.NoError(t, err)
					numbers := make([]int, 0, len(ids))
					for _, id := range ids {
						n, err := strconv.Atoi(id)
						require.NoError(t, err)
						numbers = append(numbers, n)
					}
					assert.True(t, sort.IsSorted(sort.Reverse(sort.IntSlice(numbers))), "ids are not sorted desc: %v", numbers)
				},
			},
			{
				Title: "should delete the created value",
				ID:    "deleteValue",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, values.Grid.FilterTable(env.Tab, bo.ValueName, value.Value))
					message, err := values.DeleteValue(env.Tab, 1)
					require.NoError(t, err)
					assert.Contains(t, message, bo.SuccessfulDeletionMessage)

					n, err := values.Grid.ResetAndGetNumberOfLines(env.Tab)
					require.NoError(t, err)
					assert.Equal(t, numberOfValues, n)
				},
			},
			{
				Title: "should go back to the attributes list",
				ID:    "backToAttributes",
				Do: func(t *scenario.T, env *scenario.Env) {
					require.NoError(t, values.BackToAttributesList(env.Tab))
					title, err := pages.Attributes.PageTitle(env.Tab)
					require.NoError(t, err)
					assert.Contains(t, title, pages.Attributes.ExpectedTitle())
				},
			},
			fragments.LogoutBO(pages),
		},
	}
}
