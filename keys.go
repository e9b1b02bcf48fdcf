package finance

import "time"

// One namespaced key per logical collection. Entities never share a key.
const (
	keyTransactions  = "finance_transactions"
	keyCards         = "finance_cards"
	keyBudgets       = "finance_budgets"
	keyDebts         = "finance_debts"
	keyDebtPayments  = "finance_debt_payments"
	keyCategories    = "finance_categories"
	keySavings       = "finance_savings"
	keyTodos         = "finance_todos"
	keyNotifications = "finance_notifications"
	keyExchangeRate  = "finance_exchange_rate"
	keyGoals         = "finance_goals"
	keySecurityPin   = "finance_security_pin"
)

// defaultCategories is the category set installed on first open.
func defaultCategories() []Category {
	return []Category{
		{Meta: Meta{ID: "1"}, Name: "تسوق", Icon: "ShoppingBag", Color: "#ec4899"},
		{Meta: Meta{ID: "2"}, Name: "نقل", Icon: "Car", Color: "#3b82f6"},
		{Meta: Meta{ID: "3"}, Name: "طعام", Icon: "Utensils", Color: "#f59e0b"},
		{Meta: Meta{ID: "4"}, Name: "سكن", Icon: "Home", Color: "#10b981"},
		{Meta: Meta{ID: "5"}, Name: "صحة", Icon: "Heart", Color: "#ef4444"},
		{Meta: Meta{ID: "6"}, Name: "ترفيه", Icon: "Gamepad", Color: "#8b5cf6"},
	}
}

// seed installs defaults for the keys that must never start empty: the
// category set, the primary wallet, the savings counter and the exchange
// rate. A key already present, whatever its content, is left alone.
func seed(s *Store) {
	if !s.Has(keyCategories) {
		s.Set(keyCategories, defaultCategories())
	}
	if !s.Has(keyCards) {
		s.Set(keyCards, []Card{{
			Meta:       Meta{ID: "1"},
			Name:       "المحفظة الأساسية",
			Color:      "#3b82f6",
			IsBudgeted: true,
		}})
	}
	if !s.Has(keySavings) {
		s.Set(keySavings, amountZero)
	}
	if !s.Has(keyExchangeRate) {
		s.Set(keyExchangeRate, ExchangeRate{Rate: defaultRate, LastUpdated: time.Now()})
	}
}
