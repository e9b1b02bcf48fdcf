package finance

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ali98nadhum/smart-finance-assistant/date"
)

// Response is the envelope every facade call resolves to.
type Response[T any] struct {
	Data T `json:"data"`
}

// API is the asynchronous boundary over the Book. The domain layer is
// fully synchronous; these methods exist so callers program against the
// contract a future networked backend would honor: context in, an envelope
// and an error out. By the time a caller observes a result, the work has
// already completed. The only error the local implementation produces is a
// context already done on entry.
type API struct {
	book *Book
}

func NewAPI(book *Book) *API { return &API{book: book} }

func respond[T any](ctx context.Context, data func() T) (Response[T], error) {
	if err := ctx.Err(); err != nil {
		return Response[T]{}, err
	}
	return Response[T]{Data: data()}, nil
}

// Cards

func (a *API) GetCards(ctx context.Context) (Response[[]Card], error) {
	return respond(ctx, a.book.Cards)
}

func (a *API) CreateCard(ctx context.Context, c Card) (Response[Card], error) {
	return respond(ctx, func() Card { return a.book.CreateCard(c) })
}

func (a *API) UpdateCard(ctx context.Context, id string, patch CardPatch) (Response[*Card], error) {
	return respond(ctx, func() *Card { return a.book.UpdateCard(id, patch) })
}

func (a *API) DeleteCard(ctx context.Context, id string) (Response[bool], error) {
	return respond(ctx, func() bool { return a.book.DeleteCard(id) })
}

func (a *API) TopUpCard(ctx context.Context, id string, amount decimal.Decimal) (Response[*Card], error) {
	return respond(ctx, func() *Card { return a.book.TopUpCard(id, amount) })
}

// Transactions

func (a *API) GetTransactions(ctx context.Context, page, limit int) (Response[TransactionPage], error) {
	return respond(ctx, func() TransactionPage { return a.book.TransactionPage(page, limit) })
}

func (a *API) CreateTransaction(ctx context.Context, tx Transaction) (Response[Transaction], error) {
	return respond(ctx, func() Transaction { return a.book.CreateTransaction(tx) })
}

func (a *API) DeleteTransaction(ctx context.Context, id string) (Response[struct{}], error) {
	return respond(ctx, func() struct{} { a.book.DeleteTransaction(id); return struct{}{} })
}

// Budget

func (a *API) GetBudgetStatus(ctx context.Context, day date.Date) (Response[BudgetStatus], error) {
	return respond(ctx, func() BudgetStatus { return a.book.BudgetStatus(day) })
}

func (a *API) UpsertBudget(ctx context.Context, limit decimal.Decimal, day date.Date) (Response[Budget], error) {
	return respond(ctx, func() Budget { return a.book.UpsertBudget(limit, day) })
}

// Debts

func (a *API) GetDebts(ctx context.Context) (Response[[]DebtView], error) {
	return respond(ctx, a.book.Debts)
}

func (a *API) CreateDebt(ctx context.Context, d Debt) (Response[Debt], error) {
	return respond(ctx, func() Debt { return a.book.CreateDebt(d) })
}

func (a *API) UpdateDebt(ctx context.Context, id string, patch DebtPatch) (Response[*Debt], error) {
	return respond(ctx, func() *Debt { return a.book.UpdateDebt(id, patch) })
}

func (a *API) UpdateDebtStatus(ctx context.Context, id string, status DebtStatus) (Response[*Debt], error) {
	return respond(ctx, func() *Debt { return a.book.UpdateDebtStatus(id, status) })
}

func (a *API) ArchiveDebt(ctx context.Context, id string) (Response[*Debt], error) {
	return respond(ctx, func() *Debt { return a.book.ArchiveDebt(id) })
}

func (a *API) StoreAmount(ctx context.Context, id string, amount decimal.Decimal, op AdjustOp) (Response[*Debt], error) {
	return respond(ctx, func() *Debt { return a.book.StoreAmount(id, amount, op) })
}

func (a *API) GetPayments(ctx context.Context, debtID string) (Response[[]DebtPayment], error) {
	return respond(ctx, func() []DebtPayment { return a.book.Payments(debtID) })
}

func (a *API) AddPayment(ctx context.Context, p DebtPayment) (Response[DebtPayment], error) {
	return respond(ctx, func() DebtPayment { return a.book.AddPayment(p) })
}

// Todos

func (a *API) GetTodos(ctx context.Context) (Response[[]Todo], error) {
	return respond(ctx, a.book.Todos)
}

func (a *API) CreateTodo(ctx context.Context, t Todo) (Response[Todo], error) {
	return respond(ctx, func() Todo { return a.book.CreateTodo(t) })
}

func (a *API) ToggleTodo(ctx context.Context, id string) (Response[*Todo], error) {
	return respond(ctx, func() *Todo { return a.book.ToggleTodo(id) })
}

func (a *API) UpdateTodo(ctx context.Context, id string, patch TodoPatch) (Response[*Todo], error) {
	return respond(ctx, func() *Todo { return a.book.UpdateTodo(id, patch) })
}

func (a *API) DeleteTodo(ctx context.Context, id string) (Response[struct{}], error) {
	return respond(ctx, func() struct{} { a.book.DeleteTodo(id); return struct{}{} })
}

// Notifications

func (a *API) GetNotifications(ctx context.Context) (Response[[]Notification], error) {
	return respond(ctx, a.book.Notifications)
}

func (a *API) CreateNotification(ctx context.Context, n Notification) (Response[Notification], error) {
	return respond(ctx, func() Notification { return a.book.CreateNotification(n) })
}

func (a *API) MarkNotificationRead(ctx context.Context, id string) (Response[*Notification], error) {
	return respond(ctx, func() *Notification { return a.book.MarkNotificationRead(id) })
}

// Exchange rate

func (a *API) GetExchangeRate(ctx context.Context) (Response[ExchangeRate], error) {
	return respond(ctx, a.book.ExchangeRate)
}

func (a *API) UpdateExchangeRate(ctx context.Context, rate decimal.Decimal) (Response[ExchangeRate], error) {
	return respond(ctx, func() ExchangeRate { return a.book.SetExchangeRate(rate) })
}

// RefreshExchangeRate is the one facade call that reaches the network; it
// honors the context through the HTTP client.
func (a *API) RefreshExchangeRate(ctx context.Context, client *http.Client) (Response[ExchangeRate], error) {
	if err := ctx.Err(); err != nil {
		return Response[ExchangeRate]{}, err
	}
	record, err := a.book.RefreshExchangeRate(client)
	if err != nil {
		return Response[ExchangeRate]{}, err
	}
	return Response[ExchangeRate]{Data: record}, nil
}

// Goals

func (a *API) GetGoals(ctx context.Context) (Response[[]Goal], error) {
	return respond(ctx, a.book.Goals)
}

func (a *API) CreateGoal(ctx context.Context, g Goal) (Response[Goal], error) {
	return respond(ctx, func() Goal { return a.book.CreateGoal(g) })
}

func (a *API) UpdateGoal(ctx context.Context, id string, patch GoalPatch) (Response[*Goal], error) {
	return respond(ctx, func() *Goal { return a.book.UpdateGoal(id, patch) })
}

func (a *API) DeleteGoal(ctx context.Context, id string) (Response[struct{}], error) {
	return respond(ctx, func() struct{} { a.book.DeleteGoal(id); return struct{}{} })
}

func (a *API) ArchiveGoal(ctx context.Context, id string) (Response[*Goal], error) {
	return respond(ctx, func() *Goal { return a.book.ArchiveGoal(id) })
}

func (a *API) AllocateToGoal(ctx context.Context, id string, amount decimal.Decimal) (Response[*Goal], error) {
	return respond(ctx, func() *Goal { return a.book.AllocateToGoal(id, amount) })
}

func (a *API) ToggleGoalCell(ctx context.Context, goalID, cellID string) (Response[*Goal], error) {
	return respond(ctx, func() *Goal { return a.book.ToggleGoalCell(goalID, cellID) })
}

// Security

func (a *API) GetPin(ctx context.Context) (Response[*string], error) {
	return respond(ctx, a.book.Pin)
}

func (a *API) SetPin(ctx context.Context, pin *string) (Response[struct{}], error) {
	return respond(ctx, func() struct{} { a.book.SetPin(pin); return struct{}{} })
}

func (a *API) VerifyPin(ctx context.Context, candidate string) (Response[bool], error) {
	return respond(ctx, func() bool { return a.book.VerifyPin(candidate) })
}

// Categories

func (a *API) GetCategories(ctx context.Context) (Response[[]Category], error) {
	return respond(ctx, a.book.Categories)
}

func (a *API) CreateCategory(ctx context.Context, c Category) (Response[Category], error) {
	return respond(ctx, func() Category { return a.book.CreateCategory(c) })
}

func (a *API) DeleteCategory(ctx context.Context, id string) (Response[struct{}], error) {
	return respond(ctx, func() struct{} { a.book.DeleteCategory(id); return struct{}{} })
}

// Insights

func (a *API) GetInsights(ctx context.Context) (Response[[]Insight], error) {
	return respond(ctx, a.book.Insights)
}

// Savings

func (a *API) GetSavings(ctx context.Context) (Response[decimal.Decimal], error) {
	return respond(ctx, a.book.Savings)
}

func (a *API) UpdateSavings(ctx context.Context, amount decimal.Decimal, op AdjustOp) (Response[decimal.Decimal], error) {
	return respond(ctx, func() decimal.Decimal { return a.book.AdjustSavings(amount, op) })
}

// Stats

func (a *API) GetDailyStats(ctx context.Context, day date.Date) (Response[DailyStats], error) {
	return respond(ctx, func() DailyStats { return a.book.DailyStats(day) })
}

func (a *API) GetRangeStats(ctx context.Context, r StatsRange) (Response[RangeStats], error) {
	return respond(ctx, func() RangeStats { return a.book.RangeStats(r) })
}
