package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/themizzi/shopcheck/internal/campaigns"
)

// ListCampaigns writes a table of the campaigns with their steps count
func ListCampaigns(out io.Writer, selected []campaigns.Campaign, d campaigns.Deps) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Base context", "Title", "Steps", "Pre", "Post"})

	for i, suite := range campaigns.Suites(d, selected) {
		t.AppendRow(table.Row{selected[i].BaseContext, suite.Title, len(suite.Steps), len(suite.Pre), len(suite.Post)})
	}
	t.AppendFooter(table.Row{"Total", len(selected)})
	t.Render()
}
