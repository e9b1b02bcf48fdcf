package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ali98nadhum/smart-finance-assistant/date"
)

// InsightType tags the tone of a tip for the presentation layer.
type InsightType string

const (
	InsightWarning InsightType = "WARNING"
	InsightInfo    InsightType = "INFO"
	InsightSuccess InsightType = "SUCCESS"
	InsightGoal    InsightType = "GOAL"
	InsightTip     InsightType = "TIP"
	InsightDefault InsightType = "DEFAULT"
)

// Insight is one short financial tip. Insights have no persisted identity;
// they are recomputed from the current state on every read.
type Insight struct {
	Type InsightType `json:"type"`
	Text string      `json:"text"`
}

// Rule thresholds. The food rule is tied to the stock category name.
var (
	nearBudgetFraction = decimal.NewFromFloat(0.2)
	highSavings        = decimal.NewFromInt(500000)
	highFoodSpending   = decimal.NewFromInt(200000)
	nearGoalFraction   = decimal.NewFromFloat(0.8)
)

const foodCategory = "طعام"

// Insights evaluates the tip rules over today's budget, recent
// transactions, goals and savings. Rules are independent: every matching
// rule fires, in fixed evaluation order, and a single default tip appears
// only when nothing else matched.
func (b *Book) Insights() []Insight {
	txs := b.TransactionPage(1, 1000).Transactions
	budget := b.BudgetStatus(date.Today())
	goals := b.Goals()
	savings := b.Savings()

	var insights []Insight

	if budget.Spent.GreaterThan(budget.Budget) {
		insights = append(insights, Insight{
			Type: InsightWarning,
			Text: "دير بالك! تجاوزت الميزانية اليومية اليوم. حاول تقلل الصرف لبقية اليوم حتى توازن الأمور. 💸",
		})
	} else if budget.Remaining.LessThan(budget.Budget.Mul(nearBudgetFraction)) {
		insights = append(insights, Insight{
			Type: InsightInfo,
			Text: "باقي لك شوية وتخلص ميزانية اليوم. خليك حذر بآخر صرفياتك. ⚠️",
		})
	}

	if savings.GreaterThan(highSavings) {
		insights = append(insights, Insight{
			Type: InsightSuccess,
			Text: "عاشت إيدك! مدخراتك وصلت لمبلغ حلو. فكر تستثمر جزء منها أو تزيد مبلغ أهدافك. 💰",
		})
	}

	if goal := nearGoal(goals); goal != nil {
		insights = append(insights, Insight{
			Type: InsightGoal,
			Text: fmt.Sprintf("باقي لك تكّة وتوصل لهدف %q! شد حيلك، مابقى شي. 🏁", goal.Name),
		})
	}

	food := decimal.Zero
	for _, tx := range txs {
		if tx.Type == Expense && tx.Category != nil && tx.Category.Name == foodCategory {
			food = food.Add(tx.Amount)
		}
	}
	if food.GreaterThan(highFoodSpending) {
		insights = append(insights, Insight{
			Type: InsightTip,
			Text: "لاحظت إنك تصرف هواية على الأكل. جرب تطبخ بالبيت أكثر، راح توفر مبلغ محترم بالشهر! 🍳",
		})
	}

	if len(insights) == 0 {
		insights = append(insights, Insight{
			Type: InsightDefault,
			Text: "وضعك المالي مستقر حالياً. استمر بمراقبة مصاريفك وادخارك بانتظام. 👍",
		})
	}
	return insights
}

// nearGoal returns the first goal strictly between 80% and 100% complete.
func nearGoal(goals []Goal) *Goal {
	for i, g := range goals {
		if !g.Target.IsPositive() {
			continue
		}
		ratio := g.Current.Div(g.Target)
		if ratio.GreaterThan(nearGoalFraction) && ratio.LessThan(decimal.NewFromInt(1)) {
			return &goals[i]
		}
	}
	return nil
}
