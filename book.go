// Package finance implements the storage and domain core of the smart
// finance assistant: wallets, transactions, daily budgets, debts, savings
// goals, todos and the derived computations over them (budget status,
// spending stats, insights).
//
// All state lives in a fail-silent JSON key-value store; every collection is
// read and written whole. The package assumes one logical writer. Multi
// process use would need a single-writer queue or optimistic version checks
// on each collection write, which are deliberately not part of this layer.
package finance

import "github.com/shopspring/decimal"

// Book is the one shared ledger of the application: every collection bound
// to a single injected store. Domain operations are methods on Book, grouped
// by entity in their own files.
type Book struct {
	store *Store

	cards         collection[Card, *Card]
	transactions  collection[Transaction, *Transaction]
	budgets       collection[Budget, *Budget]
	debts         collection[Debt, *Debt]
	payments      collection[DebtPayment, *DebtPayment]
	categories    collection[Category, *Category]
	todos         collection[Todo, *Todo]
	notifications collection[Notification, *Notification]
	goals         collection[Goal, *Goal]
}

// Open builds a Book over the given medium and installs the first-run
// defaults (category set, primary wallet, savings counter, exchange rate)
// for any key not present yet.
func Open(medium StorageMedium) *Book {
	store := NewStore(medium)
	seed(store)
	return &Book{
		store:         store,
		cards:         newCollection[Card](store, keyCards),
		transactions:  newCollection[Transaction](store, keyTransactions),
		budgets:       newCollection[Budget](store, keyBudgets),
		debts:         newCollection[Debt](store, keyDebts),
		payments:      newCollection[DebtPayment](store, keyDebtPayments),
		categories:    newCollection[Category](store, keyCategories),
		todos:         newCollection[Todo](store, keyTodos),
		notifications: newCollection[Notification](store, keyNotifications),
		goals:         newCollection[Goal](store, keyGoals),
	}
}

// AdjustOp selects how an adjustment amount applies to a stored counter
// (debt stash or savings).
type AdjustOp int

const (
	// OpSet replaces the counter with the amount.
	OpSet AdjustOp = iota
	// OpIncrement adds the amount to the counter.
	OpIncrement
	// OpDecrement subtracts the amount from the counter.
	OpDecrement
)

func (op AdjustOp) String() string {
	switch op {
	case OpSet:
		return "SET"
	case OpIncrement:
		return "INCREMENT"
	case OpDecrement:
		return "DECREMENT"
	default:
		return "unknown"
	}
}

// ParseAdjustOp parses the wire name of an adjustment verb.
func ParseAdjustOp(s string) (AdjustOp, bool) {
	switch s {
	case "SET":
		return OpSet, true
	case "INCREMENT":
		return OpIncrement, true
	case "DECREMENT":
		return OpDecrement, true
	default:
		return 0, false
	}
}

// apply computes the new counter value for the verb.
func (op AdjustOp) apply(current, amount decimal.Decimal) decimal.Decimal {
	switch op {
	case OpIncrement:
		return current.Add(amount)
	case OpDecrement:
		return current.Sub(amount)
	default:
		return amount
	}
}
