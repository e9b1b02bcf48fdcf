package finance

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV export of the joined transaction list. The file opens with a UTF-8
// BOM so spreadsheet applications detect the encoding of the Arabic
// headers and labels.

var csvHeader = []string{"التاريخ", "الوصف", "المبلغ", "القسم", "البطاقة", "النوع"}

// ExportTransactionsCSV writes the transactions as comma-separated values:
// date, description, amount, category name, card name and type label. A
// dangling category exports as the generic label, a dangling card as
// unknown.
func ExportTransactionsCSV(w io.Writer, txs []TransactionView) error {
	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return fmt.Errorf("could not write BOM: %w", err)
	}
	out := csv.NewWriter(w)
	if err := out.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for _, tx := range txs {
		category := "عام"
		if tx.Category != nil {
			category = tx.Category.Name
		}
		card := "غير معروف"
		if tx.Card != nil {
			card = tx.Card.Name
		}
		label := "دخل"
		if tx.Type == Expense {
			label = "صرفية"
		}
		row := []string{
			tx.Date.Format("2006-01-02"),
			tx.Description,
			tx.Amount.String(),
			category,
			card,
			label,
		}
		if err := out.Write(row); err != nil {
			return fmt.Errorf("could not write transaction %s: %w", tx.ID, err)
		}
	}
	out.Flush()
	return out.Error()
}
