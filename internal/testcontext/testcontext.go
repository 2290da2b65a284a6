// Package testcontext builds the metadata attached to every scenario step for
// the external reporting pipeline.
package testcontext

import "fmt"

// IdentifierTitle is the title of the item identifying a step
const IdentifierTitle = "testIdentifier"

// Item is a titled value attached to a step result
type Item struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// String renders the item as title=value
func (i Item) String() string {
	return fmt.Sprintf("%s=%s", i.Title, i.Value)
}

// TestIdentifier returns the identifier of step id within baseContext.
// It is empty when either part is missing.
func TestIdentifier(baseContext, id string) Item {
	if baseContext == "" || id == "" {
		return Item{}
	}
	return Item{Title: IdentifierTitle, Value: baseContext + "_" + id}
}

// PreTest returns the base context of the pre-condition suite of baseContext
func PreTest(baseContext string) string {
	return baseContext + "_preTest"
}

// PostTest returns the base context of the post-condition suite of baseContext
func PostTest(baseContext string) string {
	return baseContext + "_postTest"
}
