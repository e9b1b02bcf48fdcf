package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ali98nadhum/smart-finance-assistant/date"
)

func TestDailyStats_BucketsByCategoryFirstSeen(t *testing.T) {
	b := newTestBook()
	food := b.CreateCategory(Category{Name: "طعام"})
	fun := b.CreateCategory(Category{Name: "ترفيه"})

	day := date.MustParse("2025-05-20")
	on := day.Time().Add(10 * time.Hour)

	b.CreateTransaction(expenseOn(100, food.ID, on))
	b.CreateTransaction(expenseOn(50, food.ID, on))
	b.CreateTransaction(expenseOn(25, fun.ID, on))

	got := b.DailyStats(day).ByCategory
	if len(got) != 2 {
		t.Fatalf("buckets = %+v, want 2", got)
	}
	if got[0].Name != "طعام" || !got[0].Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("first bucket = %+v, want طعام 150", got[0])
	}
	if got[1].Name != "ترفيه" || !got[1].Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("second bucket = %+v, want ترفيه 25", got[1])
	}
}

func TestDailyStats_DanglingCategoryIsUnclassified(t *testing.T) {
	b := newTestBook()
	day := date.MustParse("2025-05-20")
	b.CreateTransaction(expenseOn(80, "deleted-category", day.Time()))

	got := b.DailyStats(day).ByCategory
	if len(got) != 1 || got[0].Name != Unclassified {
		t.Errorf("buckets = %+v, want one %q bucket", got, Unclassified)
	}
}

func TestDailyStats_IgnoresOtherDaysAndIncome(t *testing.T) {
	b := newTestBook()
	day := date.MustParse("2025-05-20")
	b.CreateTransaction(expenseOn(10, "", day.Add(1).Time()))
	b.CreateTransaction(Transaction{
		Meta: Meta{Date: day.Time()}, Amount: decimal.NewFromInt(99), Type: Income, CardID: "1",
	})
	if got := b.DailyStats(day).ByCategory; len(got) != 0 {
		t.Errorf("buckets = %+v, want none", got)
	}
}

func TestRangeStats_DenseTimeline(t *testing.T) {
	b := newTestBook()
	today := date.Today()

	b.CreateTransaction(expenseOn(500, "", today.Time().Add(8*time.Hour)))
	b.CreateTransaction(expenseOn(200, "", today.Add(-3).Time()))
	// Outside the weekly window.
	b.CreateTransaction(expenseOn(9999, "", today.Add(-10).Time()))

	stats := b.RangeStats(Weekly)
	if len(stats.Timeline) != 7 {
		t.Fatalf("weekly timeline has %d entries, want 7", len(stats.Timeline))
	}
	for i, point := range stats.Timeline {
		if want := today.Add(-6 + i); point.Date != want {
			t.Errorf("timeline[%d].Date = %v, want %v", i, point.Date, want)
		}
	}
	last := stats.Timeline[6]
	if !last.Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("today's amount = %s, want 500", last.Amount)
	}
	if got := stats.Timeline[3].Amount; !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("D-3 amount = %s, want 200", got)
	}
	// Quiet days are present with a zero amount, not missing.
	if got := stats.Timeline[0].Amount; !got.IsZero() {
		t.Errorf("quiet day amount = %s, want 0", got)
	}

	total := decimal.Zero
	for _, ct := range stats.ByCategory {
		total = total.Add(ct.Amount)
	}
	if !total.Equal(decimal.NewFromInt(700)) {
		t.Errorf("breakdown total = %s, want 700 (out-of-window excluded)", total)
	}
}

func TestRangeStats_MonthlyWindow(t *testing.T) {
	b := newTestBook()
	if got := b.RangeStats(Monthly).Timeline; len(got) != 30 {
		t.Errorf("monthly timeline has %d entries, want 30", len(got))
	}
}
