package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCreateTransaction_BalanceEffect(t *testing.T) {
	testCases := []struct {
		name   string
		typ    TxType
		amount int64
		want   int64
	}{
		{name: "expense decreases balance", typ: Expense, amount: 4000, want: -4000},
		{name: "income increases balance", typ: Income, amount: 9000, want: 9000},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBook()
			b.CreateTransaction(Transaction{
				Amount: decimal.NewFromInt(tc.amount),
				Type:   tc.typ,
				CardID: "1",
			})
			got := b.Cards()[0].Balance
			if !got.Equal(decimal.NewFromInt(tc.want)) {
				t.Errorf("balance = %s, want %d", got, tc.want)
			}
		})
	}
}

func TestCreateTransaction_MissingCardStillRecorded(t *testing.T) {
	b := newTestBook()
	b.CreateTransaction(Transaction{
		Amount: decimal.NewFromInt(100),
		Type:   Expense,
		CardID: "ghost",
	})
	if got := len(b.Transactions()); got != 1 {
		t.Errorf("transaction count = %d, want 1", got)
	}
	if got := b.Cards()[0].Balance; !got.IsZero() {
		t.Errorf("unrelated card balance = %s, want 0", got)
	}
}

func TestDeleteTransaction_DoesNotReverseBalance(t *testing.T) {
	b := newTestBook()
	tx := b.CreateTransaction(Transaction{
		Amount: decimal.NewFromInt(12000),
		Type:   Expense,
		CardID: "1",
	})
	after := b.Cards()[0].Balance

	b.DeleteTransaction(tx.ID)

	if got := len(b.Transactions()); got != 0 {
		t.Errorf("transaction still listed after delete: %d", got)
	}
	if got := b.Cards()[0].Balance; !got.Equal(after) {
		t.Errorf("balance changed on delete: %s, want %s", got, after)
	}
}

func TestTransactions_JoinAndSort(t *testing.T) {
	b := newTestBook()
	cat := b.CreateCategory(Category{Name: "قهوة"})

	old := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	recent := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	b.CreateTransaction(Transaction{
		Meta: Meta{Date: old}, Amount: decimal.NewFromInt(10), Type: Expense,
		CategoryID: cat.ID, CardID: "1",
	})
	b.CreateTransaction(Transaction{
		Meta: Meta{Date: recent}, Amount: decimal.NewFromInt(20), Type: Expense,
		CategoryID: "dangling", CardID: "gone",
	})

	views := b.Transactions()
	if len(views) != 2 {
		t.Fatalf("got %d transactions, want 2", len(views))
	}
	if !views[0].Date.Equal(recent) {
		t.Errorf("not sorted most recent first: %v", views[0].Date)
	}
	// Dangling references resolve to nil, never an error.
	if views[0].Category != nil || views[0].Card != nil {
		t.Errorf("dangling join should be nil: %+v", views[0])
	}
	if views[1].Category == nil || views[1].Category.Name != "قهوة" {
		t.Errorf("category join missing: %+v", views[1].Category)
	}
	if views[1].Card == nil || views[1].Card.ID != "1" {
		t.Errorf("card join missing: %+v", views[1].Card)
	}
}

func TestTransactionPage(t *testing.T) {
	b := newTestBook()
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		b.CreateTransaction(Transaction{
			Meta:   Meta{Date: base.Add(time.Duration(i) * time.Hour)},
			Amount: decimal.NewFromInt(int64(i + 1)),
			Type:   Expense,
			CardID: "1",
		})
	}

	testCases := []struct {
		name     string
		page     int
		limit    int
		wantLen  int
		wantMore bool
	}{
		{name: "first page", page: 1, limit: 2, wantLen: 2, wantMore: true},
		{name: "middle page", page: 2, limit: 2, wantLen: 2, wantMore: true},
		{name: "last page", page: 3, limit: 2, wantLen: 1, wantMore: false},
		{name: "past the end", page: 9, limit: 2, wantLen: 0, wantMore: false},
		{name: "no paging", page: 0, limit: 0, wantLen: 5, wantMore: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := b.TransactionPage(tc.page, tc.limit)
			if len(got.Transactions) != tc.wantLen {
				t.Errorf("len = %d, want %d", len(got.Transactions), tc.wantLen)
			}
			if got.HasMore != tc.wantMore {
				t.Errorf("HasMore = %v, want %v", got.HasMore, tc.wantMore)
			}
		})
	}

	// Pagination is applied after the full date-descending sort.
	first := b.TransactionPage(1, 1).Transactions[0]
	if !first.Amount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("first page entry amount = %s, want the most recent (5)", first.Amount)
	}
}
