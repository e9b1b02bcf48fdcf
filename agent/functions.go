package agent

import (
	"context"

	"google.golang.org/genai"

	finance "github.com/ali98nadhum/smart-finance-assistant"
	"github.com/ali98nadhum/smart-finance-assistant/date"
	"github.com/ali98nadhum/smart-finance-assistant/renderer"
)

// Func implements Function with plain values.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// NewAdvisor builds the advisor over the given book, with read-only tools
// for the budget, the spending stats, debts, goals and savings. The model
// answers money questions from those instead of inventing figures.
func NewAdvisor(book *finance.Book) *Advisor {
	functions := bookFunctions(book)
	return &Advisor{
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(functions)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal finance assistant for a single user tracking
			cash in Iraqi dinars. Use the available tools to read the user's
			actual budget, spending, debts, goals and savings before
			answering; never invent figures. Amounts are dinars unless the
			user asks for dollars. The user may write in Arabic or English;
			answer in the language of the question. Keep answers short and
			concrete.
		`}}},
		},
		Library: NewLibrary(functions),
	}
}

// markdown wraps a nullary report into a Func returning its markdown.
func markdown(name, description string, report func() string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:       id,
				Name:     name,
				Response: map[string]any{"output": report()},
			}
		},
	}
}

func bookFunctions(book *finance.Book) []Function {
	return []Function{
		markdown("BudgetToday",
			"Today's daily budget: the limit, what was spent against it and what remains.",
			func() string {
				today := date.Today()
				return renderer.BudgetMarkdown(today, book.BudgetStatus(today))
			}),
		markdown("SpendingWeekly",
			"Spending over the last 7 days: per-category totals and a day-by-day timeline.",
			func() string {
				return renderer.RangeStatsMarkdown(finance.Weekly, book.RangeStats(finance.Weekly))
			}),
		markdown("SpendingMonthly",
			"Spending over the last 30 days: per-category totals and a day-by-day timeline.",
			func() string {
				return renderer.RangeStatsMarkdown(finance.Monthly, book.RangeStats(finance.Monthly))
			}),
		markdown("Debts",
			"Open debts in both directions, with amounts set aside and payment history.",
			func() string { return renderer.DebtsMarkdown(book.Debts()) }),
		markdown("Goals",
			"Active savings goals with target, progress and grid completion.",
			func() string { return renderer.GoalsMarkdown(book.Goals()) }),
		markdown("Savings",
			"The current savings counter, in dinars.",
			func() string { return finance.FormatIQD(book.Savings()) }),
		markdown("Insights",
			"The rule-based financial tips currently firing for the user.",
			func() string { return renderer.InsightsMarkdown(book.Insights()) }),
	}
}
