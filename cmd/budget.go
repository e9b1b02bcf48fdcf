package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/ali98nadhum/smart-finance-assistant"
	"github.com/ali98nadhum/smart-finance-assistant/date"
	"github.com/ali98nadhum/smart-finance-assistant/renderer"
)

// parseDay resolves an optional -d flag value, defaulting to today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// budgetCmd shows a day's budget status.
type budgetCmd struct {
	day string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show the daily budget status" }
func (*budgetCmd) Usage() string {
	return `sfa budget [-d <day>]

  Shows the day's limit, what was spent on budgeted cards and what
  remains.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day to report on (defaults to today)")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
		return subcommands.ExitUsageError
	}
	book := openBook()
	printMarkdown(renderer.BudgetMarkdown(day, book.BudgetStatus(day)))
	return subcommands.ExitSuccess
}

// setBudgetCmd sets a day's spending limit.
type setBudgetCmd struct {
	day string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "set the spending limit for a day" }
func (*setBudgetCmd) Usage() string {
	return `sfa set-budget [-d <day>] <limit>

  Sets the daily spending limit, overwriting the day's existing limit.
`
}

func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day the limit applies to (defaults to today)")
}

func (c *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one limit argument")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
		return subcommands.ExitUsageError
	}
	book := openBook()
	budget := book.UpsertBudget(finance.ParseAmount(f.Arg(0)), day)
	fmt.Printf("Budget for %s set to %s\n", day, finance.FormatIQD(budget.DailyLimit))
	return subcommands.ExitSuccess
}
