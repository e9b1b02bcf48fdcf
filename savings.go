package finance

import "github.com/shopspring/decimal"

// Savings is the single cash-under-the-mattress counter. It is a scalar
// with no identity, adjusted with the same verbs as a debt stash.

// Savings returns the current savings counter.
func (b *Book) Savings() decimal.Decimal {
	value := decimal.Zero
	b.store.Get(keySavings, &value)
	return value
}

// AdjustSavings applies the verb to the savings counter and returns the
// new value. The counter is not clamped.
func (b *Book) AdjustSavings(amount decimal.Decimal, op AdjustOp) decimal.Decimal {
	value := op.apply(b.Savings(), amount)
	b.store.Set(keySavings, value)
	return value
}
