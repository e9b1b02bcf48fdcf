package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TxType separates money leaving a card from money entering it.
type TxType string

const (
	Expense TxType = "EXPENSE"
	Income  TxType = "INCOME"
)

// Transaction is one ledger entry against a card. CategoryID and CardID are
// plain ids resolved at read time, never embedded entities, so deleting a
// category or card leaves a dangling reference rather than failing.
type Transaction struct {
	Meta
	Amount      decimal.Decimal `json:"amount"`
	Type        TxType          `json:"type"`
	CategoryID  string          `json:"categoryId"`
	CardID      string          `json:"cardId"`
	Description string          `json:"description"`
}

// TransactionView is a transaction joined to its category and card.
// A dangling reference resolves to nil, not an error.
type TransactionView struct {
	Transaction
	Category *Category `json:"category"`
	Card     *Card     `json:"card"`
}

// TransactionPage is one page of the date-descending transaction list.
type TransactionPage struct {
	Transactions []TransactionView `json:"transactions"`
	HasMore      bool              `json:"hasMore"`
}

// Transactions returns every transaction joined to its category and card,
// most recent first.
func (b *Book) Transactions() []TransactionView {
	categories := b.categories.All()
	cards := b.cards.All()

	catByID := make(map[string]Category, len(categories))
	for _, c := range categories {
		catByID[c.ID] = c
	}
	cardByID := make(map[string]Card, len(cards))
	for _, c := range cards {
		cardByID[c.ID] = c
	}

	txs := b.transactions.All()
	views := make([]TransactionView, 0, len(txs))
	for _, tx := range txs {
		view := TransactionView{Transaction: tx}
		if cat, ok := catByID[tx.CategoryID]; ok {
			view.Category = &cat
		}
		if card, ok := cardByID[tx.CardID]; ok {
			view.Card = &card
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date.After(views[j].Date)
	})
	return views
}

// TransactionPage slices the sorted transaction list. Pages are 1-based;
// pagination happens after the full sort, there is no indexed storage
// underneath. A page or limit below 1 returns everything.
func (b *Book) TransactionPage(page, limit int) TransactionPage {
	views := b.Transactions()
	if page < 1 || limit < 1 {
		return TransactionPage{Transactions: views}
	}
	start := (page - 1) * limit
	if start >= len(views) {
		return TransactionPage{Transactions: []TransactionView{}}
	}
	end := min(start+limit, len(views))
	return TransactionPage{
		Transactions: views[start:end],
		HasMore:      end < len(views),
	}
}

// CreateTransaction persists the transaction and then applies its amount to
// the referenced card: subtracted for an expense, added for an income. These
// are two sequential collection writes with no rollback; the storage medium
// offers nothing better, and a retry after a partial failure is safe enough.
// A missing card still records the transaction.
func (b *Book) CreateTransaction(tx Transaction) Transaction {
	stored := b.transactions.Save(tx)
	delta := stored.Amount
	if stored.Type != Income {
		delta = delta.Neg()
	}
	b.cards.Update(stored.CardID, func(c *Card) {
		c.Balance = c.Balance.Add(delta)
	})
	return stored
}

// DeleteTransaction removes the record only. It deliberately does not
// reverse the balance effect of the original creation; the card keeps its
// post-creation balance and callers surface that to the user.
func (b *Book) DeleteTransaction(id string) { b.transactions.Delete(id) }
