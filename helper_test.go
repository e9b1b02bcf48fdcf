package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// newTestBook opens a Book over a fresh in-memory medium, with the standard
// first-run defaults installed (primary card "1", six categories, savings 0).
func newTestBook() *Book {
	return Open(NewMemMedium())
}

// expenseOn builds an expense of the given integer amount dated at the given
// instant, charged to the seeded primary card.
func expenseOn(amount int64, categoryID string, on time.Time) Transaction {
	return Transaction{
		Meta:       Meta{Date: on},
		Amount:     decimal.NewFromInt(amount),
		Type:       Expense,
		CategoryID: categoryID,
		CardID:     "1",
	}
}
