package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	finance "github.com/ali98nadhum/smart-finance-assistant"
)

// savingsCmd shows or adjusts the savings counter.
type savingsCmd struct {
	op string
}

func (*savingsCmd) Name() string     { return "savings" }
func (*savingsCmd) Synopsis() string { return "show or adjust the savings counter" }
func (*savingsCmd) Usage() string {
	return `sfa savings [-op set|increment|decrement <amount>]

  Without arguments, shows the savings counter. With an amount, applies
  the verb to it.
`
}

func (c *savingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.op, "op", "increment", "Adjustment verb (set, increment, decrement)")
}

func (c *savingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()

	if f.NArg() == 0 {
		fmt.Printf("Savings: %s\n", finance.FormatIQD(book.Savings()))
		return subcommands.ExitSuccess
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one amount argument")
		return subcommands.ExitUsageError
	}
	op, ok := finance.ParseAdjustOp(strings.ToUpper(c.op))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown verb %q\n", c.op)
		return subcommands.ExitUsageError
	}
	value := book.AdjustSavings(finance.ParseAmount(f.Arg(0)), op)
	fmt.Printf("Savings: %s\n", finance.FormatIQD(value))
	return subcommands.ExitSuccess
}
