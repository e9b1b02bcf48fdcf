package finance

import (
	"github.com/shopspring/decimal"

	"github.com/ali98nadhum/smart-finance-assistant/date"
)

// defaultDailyLimit applies to any day without an explicit budget record.
var defaultDailyLimit = decimal.NewFromInt(50000)

// Budget is the spending limit for one calendar day. At most one budget
// exists per day; UpsertBudget maintains that invariant.
type Budget struct {
	Meta
	DailyLimit decimal.Decimal `json:"dailyLimit"`
}

// BudgetStatus is the derived state of a day's budget.
type BudgetStatus struct {
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}

// BudgetStatus computes the day's limit, what was spent against it, and the
// difference. Spent only counts expenses on cards flagged as budgeted, so a
// long-term savings wallet can be kept out of daily budget pressure.
func (b *Book) BudgetStatus(day date.Date) BudgetStatus {
	limit := defaultDailyLimit
	for _, budget := range b.budgets.All() {
		if date.Of(budget.Date) == day {
			limit = budget.DailyLimit
			break
		}
	}

	budgeted := make(map[string]bool)
	for _, card := range b.cards.All() {
		if card.IsBudgeted {
			budgeted[card.ID] = true
		}
	}

	spent := decimal.Zero
	for _, tx := range b.transactions.All() {
		if tx.Type == Expense && date.Of(tx.Date) == day && budgeted[tx.CardID] {
			spent = spent.Add(tx.Amount)
		}
	}

	return BudgetStatus{
		Budget:    limit,
		Spent:     spent,
		Remaining: limit.Sub(spent),
	}
}

// UpsertBudget sets the daily limit for the given day, overwriting the
// day's existing record or creating one.
func (b *Book) UpsertBudget(limit decimal.Decimal, day date.Date) Budget {
	for _, existing := range b.budgets.All() {
		if date.Of(existing.Date) != day {
			continue
		}
		updated := b.budgets.Update(existing.ID, func(bu *Budget) {
			bu.DailyLimit = limit
			bu.Date = day.Time()
		})
		return *updated
	}
	return b.budgets.Save(Budget{
		Meta:       Meta{Date: day.Time()},
		DailyLimit: limit,
	})
}
