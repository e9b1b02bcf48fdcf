package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/ali98nadhum/smart-finance-assistant"
	"github.com/ali98nadhum/smart-finance-assistant/renderer"
)

// dailyCmd shows one day's spending per category.
type dailyCmd struct {
	day string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "show a day's spending by category" }
func (*dailyCmd) Usage() string {
	return `sfa daily [-d <day>]

  Shows the day's expenses bucketed by category.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Day to report on (defaults to today)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
		return subcommands.ExitUsageError
	}
	book := openBook()
	printMarkdown(renderer.DailyStatsMarkdown(day, book.DailyStats(day)))
	return subcommands.ExitSuccess
}

type weeklyCmd struct{}

func (*weeklyCmd) Name() string             { return "weekly" }
func (*weeklyCmd) Synopsis() string         { return "show the last 7 days of spending" }
func (*weeklyCmd) SetFlags(_ *flag.FlagSet) {}
func (*weeklyCmd) Usage() string {
	return `sfa weekly

  Shows per-category totals and the day-by-day timeline for the last
  7 days.
`
}

func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()
	printMarkdown(renderer.RangeStatsMarkdown(finance.Weekly, book.RangeStats(finance.Weekly)))
	return subcommands.ExitSuccess
}

type monthlyCmd struct{}

func (*monthlyCmd) Name() string             { return "monthly" }
func (*monthlyCmd) Synopsis() string         { return "show the last 30 days of spending" }
func (*monthlyCmd) SetFlags(_ *flag.FlagSet) {}
func (*monthlyCmd) Usage() string {
	return `sfa monthly

  Shows per-category totals and the day-by-day timeline for the last
  30 days.
`
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()
	printMarkdown(renderer.RangeStatsMarkdown(finance.Monthly, book.RangeStats(finance.Monthly)))
	return subcommands.ExitSuccess
}

type insightsCmd struct{}

func (*insightsCmd) Name() string             { return "insights" }
func (*insightsCmd) Synopsis() string         { return "show the current financial tips" }
func (*insightsCmd) SetFlags(_ *flag.FlagSet) {}
func (*insightsCmd) Usage() string {
	return `sfa insights

  Evaluates the tip rules over the current state and shows every tip
  that fires.
`
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()
	printMarkdown(renderer.InsightsMarkdown(book.Insights()))
	return subcommands.ExitSuccess
}
