package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	finance "github.com/ali98nadhum/smart-finance-assistant"
	"github.com/ali98nadhum/smart-finance-assistant/date"
)

func TestBudgetMarkdown(t *testing.T) {
	day := date.MustParse("2025-03-14")
	out := BudgetMarkdown(day, finance.BudgetStatus{
		Budget:    decimal.NewFromInt(50000),
		Spent:     decimal.NewFromInt(60000),
		Remaining: decimal.NewFromInt(-10000),
	})
	for _, want := range []string{"# Budget for 2025-03-14", "Spent", "Over budget."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDailyStatsMarkdown_Empty(t *testing.T) {
	out := DailyStatsMarkdown(date.MustParse("2025-03-14"), finance.DailyStats{})
	if !strings.Contains(out, "No spending recorded.") {
		t.Errorf("empty day output:\n%s", out)
	}
}

func TestRangeStatsMarkdown_TimelineAndTotal(t *testing.T) {
	out := RangeStatsMarkdown(finance.Weekly, finance.RangeStats{
		ByCategory: []finance.CategoryTotal{
			{Name: "طعام", Amount: decimal.NewFromInt(150)},
		},
		Timeline: []finance.TimelinePoint{
			{Date: date.MustParse("2025-03-13"), Amount: decimal.NewFromInt(150)},
			{Date: date.MustParse("2025-03-14"), Amount: decimal.Zero},
		},
	})
	for _, want := range []string{"## By Category", "طعام", "## Timeline", "2025-03-14", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInsightsMarkdown(t *testing.T) {
	out := InsightsMarkdown([]finance.Insight{
		{Type: finance.InsightWarning, Text: "تجاوزت الميزانية"},
	})
	if !strings.Contains(out, "WARNING") || !strings.Contains(out, "تجاوزت الميزانية") {
		t.Errorf("output:\n%s", out)
	}
}

func TestDebtsMarkdown_SkipsArchived(t *testing.T) {
	debts := []finance.DebtView{
		{Debt: finance.Debt{PersonName: "أحمد", Amount: decimal.NewFromInt(75000), Type: finance.OwedToMe, Status: finance.Pending}},
		{Debt: finance.Debt{PersonName: "مخفي", Amount: decimal.NewFromInt(1), IsArchived: true}},
	}
	out := DebtsMarkdown(debts)
	if !strings.Contains(out, "أحمد") {
		t.Errorf("open debt missing:\n%s", out)
	}
	if strings.Contains(out, "مخفي") {
		t.Errorf("archived debt rendered:\n%s", out)
	}
}

func TestGoalsMarkdown_GridCount(t *testing.T) {
	out := GoalsMarkdown([]finance.Goal{{
		Name:    "لابتوب",
		Target:  decimal.NewFromInt(100000),
		Current: decimal.NewFromInt(25000),
		UseGrid: true,
		Grid: []finance.GoalCell{
			{ID: "a", Amount: decimal.NewFromInt(15000), Completed: true},
			{ID: "b", Amount: decimal.NewFromInt(10000), Completed: true},
			{ID: "c", Amount: decimal.NewFromInt(75000)},
		},
	}})
	for _, want := range []string{"## لابتوب", "25%", "2 of 3 cells"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
