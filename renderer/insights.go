package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finance "github.com/ali98nadhum/smart-finance-assistant"
)

// InsightsMarkdown renders the tip list, each entry tagged with its tone.
func InsightsMarkdown(insights []finance.Insight) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Insights")

	var items []string
	for _, in := range insights {
		items = append(items, fmt.Sprintf("%s %s", md.Bold(string(in.Type)), in.Text))
	}
	doc.BulletList(items...)

	return doc.String()
}
