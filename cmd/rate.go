package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/ali98nadhum/smart-finance-assistant"
)

// rateCmd shows, sets or fetches the IQD/USD exchange rate.
type rateCmd struct {
	fetch bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show, set or fetch the IQD/USD exchange rate" }
func (*rateCmd) Usage() string {
	return `sfa rate [-fetch | <rate>]

  Without arguments, shows the stored rate. With a rate argument,
  stores it. With -fetch, pulls today's rate from the public exchange
  rate API. Fetched responses are cached for the day.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.fetch, "fetch", false, "Fetch the current rate from the network")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()

	switch {
	case c.fetch:
		record, err := book.RefreshExchangeRate(nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching rate: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("1 USD = %s IQD (fetched)\n", record.Rate)
	case f.NArg() == 1:
		record := book.SetExchangeRate(finance.ParseAmount(f.Arg(0)))
		fmt.Printf("1 USD = %s IQD (stored)\n", record.Rate)
	case f.NArg() == 0:
		record := book.ExchangeRate()
		fmt.Printf("1 USD = %s IQD (as of %s)\n", record.Rate, record.LastUpdated.Format("2006-01-02 15:04"))
	default:
		fmt.Fprintln(os.Stderr, "Error: expected at most one rate argument")
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

// convertCmd converts between dinars and dollars at the stored rate.
type convertCmd struct {
	toIQD bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert between dinars and dollars" }
func (*convertCmd) Usage() string {
	return `sfa convert [-iqd] <amount>

  Converts dinars to dollars at the stored rate, or dollars to dinars
  with -iqd.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.toIQD, "iqd", false, "Convert a dollar amount to dinars")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount argument")
		return subcommands.ExitUsageError
	}
	book := openBook()
	rate := book.ExchangeRate().Rate
	amount := finance.ParseAmount(f.Arg(0))

	if c.toIQD {
		fmt.Printf("%s = %s\n", finance.FormatUSD(amount), finance.FormatIQD(finance.Convert(amount, rate, false)))
	} else {
		fmt.Printf("%s = %s\n", finance.FormatIQD(amount), finance.FormatUSD(finance.Convert(amount, rate, true)))
	}
	return subcommands.ExitSuccess
}
