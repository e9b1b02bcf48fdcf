package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	finance "github.com/ali98nadhum/smart-finance-assistant"
)

// TransactionsMarkdown renders a page of the transaction log, most recent
// first, with dangling references shown under their fallback labels.
func TransactionsMarkdown(page finance.TransactionPage) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(page.Transactions) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Day", "Description", "Amount", "Category", "Card"},
	}
	for _, tx := range page.Transactions {
		amount := finance.FormatIQD(tx.Amount)
		if tx.Type == finance.Expense {
			amount = "-" + amount
		}
		category := finance.Unclassified
		if tx.Category != nil {
			category = tx.Category.Name
		}
		card := "?"
		if tx.Card != nil {
			card = tx.Card.Name
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.Format("2006-01-02"),
			tx.Description,
			amount,
			category,
			card,
		})
	}
	doc.Table(table)

	if page.HasMore {
		doc.PlainText("More pages available.")
	}

	return doc.String()
}
