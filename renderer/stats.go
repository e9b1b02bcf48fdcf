package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	finance "github.com/ali98nadhum/smart-finance-assistant"
	"github.com/ali98nadhum/smart-finance-assistant/date"
)

// DailyStatsMarkdown renders one day's spending per category.
func DailyStatsMarkdown(day date.Date, s finance.DailyStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Spending on %s", day))

	if len(s.ByCategory) == 0 {
		doc.PlainText("No spending recorded.")
		return doc.String()
	}

	doc.Table(categoryTable(s.ByCategory))
	return doc.String()
}

// RangeStatsMarkdown renders a windowed report: the category breakdown
// followed by the day-by-day timeline. Zero days stay in the timeline so
// the gaps are visible.
func RangeStatsMarkdown(r finance.StatsRange, s finance.RangeStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Spending, %s", r))

	if len(s.ByCategory) > 0 {
		doc.H2("By Category")
		doc.Table(categoryTable(s.ByCategory))
	}

	doc.H2("Timeline")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Day", "Spent"},
	}
	total := decimal.Zero
	for _, point := range s.Timeline {
		table.Rows = append(table.Rows, []string{
			point.Date.String(),
			finance.FormatIQD(point.Amount),
		})
		total = total.Add(point.Amount)
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(finance.FormatIQD(total)),
	})
	doc.Table(table)

	return doc.String()
}

func categoryTable(totals []finance.CategoryTotal) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Category", "Spent"},
	}
	for _, t := range totals {
		table.Rows = append(table.Rows, []string{t.Name, finance.FormatIQD(t.Amount)})
	}
	return table
}
