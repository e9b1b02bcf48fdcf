package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// defaultRate is the fallback IQD per USD rate used until one is stored.
var defaultRate = decimal.NewFromInt(1530)

// ExchangeRate is the single IQD-per-USD rate record, overwritten wholesale
// on every update.
type ExchangeRate struct {
	Rate        decimal.Decimal `json:"rate"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ExchangeRate returns the stored rate, or the default when none is stored.
func (b *Book) ExchangeRate() ExchangeRate {
	rate := ExchangeRate{Rate: defaultRate}
	b.store.Get(keyExchangeRate, &rate)
	return rate
}

// SetExchangeRate replaces the rate record, stamping the update time.
func (b *Book) SetExchangeRate(rate decimal.Decimal) ExchangeRate {
	record := ExchangeRate{Rate: rate, LastUpdated: time.Now()}
	b.store.Set(keyExchangeRate, record)
	return record
}

// Convert converts between dinars and dollars at the given rate. A zero
// rate or amount converts to zero rather than failing.
func Convert(amount, rate decimal.Decimal, toUSD bool) decimal.Decimal {
	if amount.IsZero() || rate.IsZero() {
		return decimal.Zero
	}
	if toUSD {
		return amount.Div(rate)
	}
	return amount.Mul(rate)
}
