package finance

import (
	"github.com/shopspring/decimal"

	"github.com/ali98nadhum/smart-finance-assistant/date"
)

// Unclassified is the bucket name for expenses whose category no longer
// exists (or was never set).
const Unclassified = "غير مصنف"

// CategoryTotal is the spending total for one category name.
type CategoryTotal struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// DailyStats buckets one day's expenses by category.
type DailyStats struct {
	ByCategory []CategoryTotal `json:"byCategory"`
}

// TimelinePoint is one day of a spending timeline.
type TimelinePoint struct {
	Date   date.Date       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// RangeStats covers a multi-day window: category breakdown over the whole
// window plus a dense daily timeline for charting.
type RangeStats struct {
	ByCategory []CategoryTotal `json:"byCategory"`
	Timeline   []TimelinePoint `json:"timeline"`
}

// StatsRange selects the window of a range report.
type StatsRange string

const (
	Weekly  StatsRange = "weekly"
	Monthly StatsRange = "monthly"
)

// days returns the window length; anything but weekly means monthly.
func (r StatsRange) days() int {
	if r == Weekly {
		return 7
	}
	return 30
}

// DailyStats sums the day's expenses per category name. Buckets appear in
// first-seen order; a dangling or missing category falls under Unclassified.
func (b *Book) DailyStats(day date.Date) DailyStats {
	byCategory := bucketByCategory(b.Transactions(), func(tx TransactionView) bool {
		return tx.Type == Expense && date.Of(tx.Date) == day
	})
	return DailyStats{ByCategory: byCategory}
}

// RangeStats reports expenses over the window ending today inclusive: the
// per-category breakdown, and one timeline entry per day. Days without
// spending carry a zero amount; the timeline never has gaps.
func (b *Book) RangeStats(r StatsRange) RangeStats {
	window := date.Last(r.days(), date.Today())
	views := b.Transactions()

	inWindow := func(tx TransactionView) bool {
		day := date.Of(tx.Date)
		return tx.Type == Expense && !day.Before(window.From) && !day.After(window.To)
	}

	perDay := make(map[date.Date]decimal.Decimal)
	for _, tx := range views {
		if inWindow(tx) {
			day := date.Of(tx.Date)
			perDay[day] = perDay[day].Add(tx.Amount)
		}
	}

	timeline := make([]TimelinePoint, 0, window.Len())
	window.Days(func(day date.Date) bool {
		timeline = append(timeline, TimelinePoint{Date: day, Amount: perDay[day]})
		return true
	})

	return RangeStats{
		ByCategory: bucketByCategory(views, inWindow),
		Timeline:   timeline,
	}
}

// bucketByCategory sums accepted transactions per category name, keeping
// buckets in the order their category was first seen.
func bucketByCategory(views []TransactionView, accept func(TransactionView) bool) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, tx := range views {
		if !accept(tx) {
			continue
		}
		name := Unclassified
		if tx.Category != nil {
			name = tx.Category.Name
		}
		i, ok := index[name]
		if !ok {
			i = len(totals)
			index[name] = i
			totals = append(totals, CategoryTotal{Name: name})
		}
		totals[i].Amount = totals[i].Amount.Add(tx.Amount)
	}
	return totals
}
