package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	finance "github.com/ali98nadhum/smart-finance-assistant"
)

// GoalsMarkdown renders active goals with their progress, and grid
// completion counts for the ones split into cells.
func GoalsMarkdown(goals []finance.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goals")

	rendered := 0
	for _, g := range goals {
		if g.IsArchived {
			continue
		}
		rendered++

		doc.H2(g.Name)
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				md.Bold("Target"),
				md.Bold(finance.FormatIQD(g.Target)),
			},
			Rows: [][]string{
				{"Saved", finance.FormatIQD(g.Current)},
				{"Progress", progress(g)},
			},
		}
		if g.Deadline != "" {
			table.Rows = append(table.Rows, []string{"Deadline", g.Deadline})
		}
		if g.UseGrid {
			done := 0
			for _, cell := range g.Grid {
				if cell.Completed {
					done++
				}
			}
			table.Rows = append(table.Rows, []string{"Grid", fmt.Sprintf("%d of %d cells", done, len(g.Grid))})
		}
		doc.Table(table)
	}

	if rendered == 0 {
		doc.PlainText("No active goals.")
	}

	return doc.String()
}

func progress(g finance.Goal) string {
	if !g.Target.IsPositive() {
		return "n/a"
	}
	pct := g.Current.Div(g.Target).Mul(decimal.NewFromInt(100))
	return pct.Round(1).String() + "%"
}
