package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finance "github.com/ali98nadhum/smart-finance-assistant"
	"github.com/ali98nadhum/smart-finance-assistant/date"
)

// BudgetMarkdown renders the day's budget status.
func BudgetMarkdown(day date.Date, s finance.BudgetStatus) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget for %s", day))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Daily Limit"),
			md.Bold(finance.FormatIQD(s.Budget)),
		},
		Rows: [][]string{
			{"Spent", finance.FormatIQD(s.Spent)},
			{"Remaining", finance.FormatIQD(s.Remaining)},
		},
	})

	if s.Remaining.IsNegative() {
		doc.PlainText(md.Bold("Over budget."))
	}

	return doc.String()
}
