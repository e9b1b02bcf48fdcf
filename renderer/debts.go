package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finance "github.com/ali98nadhum/smart-finance-assistant"
)

// DebtsMarkdown renders the debt list with payment history inline. Archived
// debts are skipped; use the archive explicitly to review them.
func DebtsMarkdown(debts []finance.DebtView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Debts")

	rendered := 0
	for _, d := range debts {
		if d.IsArchived {
			continue
		}
		rendered++

		direction := "owed to me"
		if d.Type == finance.OwedByMe {
			direction = "I owe"
		}
		doc.H2(fmt.Sprintf("%s (%s, %s)", d.PersonName, direction, d.Status))

		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				md.Bold("Amount"),
				md.Bold(finance.FormatIQD(d.Amount)),
			},
		}
		if !d.StoredAmount.IsZero() {
			table.Rows = append(table.Rows, []string{"Set Aside", finance.FormatIQD(d.StoredAmount)})
		}
		doc.Table(table)

		if d.Notes != "" {
			doc.PlainText(d.Notes)
		}

		if len(d.Payments) > 0 {
			var payments []string
			for _, p := range d.Payments {
				payments = append(payments, fmt.Sprintf("%s on %s",
					finance.FormatIQD(p.Amount), p.Date.Format("2006-01-02")))
			}
			doc.BulletList(payments...)
		}
	}

	if rendered == 0 {
		doc.PlainText("No open debts.")
	}

	return doc.String()
}
