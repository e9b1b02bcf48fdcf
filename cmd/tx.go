package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	finance "github.com/ali98nadhum/smart-finance-assistant"
	"github.com/ali98nadhum/smart-finance-assistant/date"
	"github.com/ali98nadhum/smart-finance-assistant/renderer"
)

// recordCmd holds the shared flags of spend and income.
type recordCmd struct {
	card     string
	category string
	day      string
}

func (c *recordCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.card, "card", "1", "Card to charge")
	f.StringVar(&c.category, "category", "", "Category id")
	f.StringVar(&c.day, "d", "", "Day of the transaction (defaults to today)")
}

// record parses the positional <amount> [description...] arguments and saves
// the transaction.
func (c *recordCmd) record(f *flag.FlagSet, typ finance.TxType) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an amount argument")
		return subcommands.ExitUsageError
	}

	on := time.Now()
	if c.day != "" {
		day, err := date.Parse(c.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing day: %v\n", err)
			return subcommands.ExitUsageError
		}
		on = day.Time()
	}

	book := openBook()
	tx := book.CreateTransaction(finance.Transaction{
		Meta:        finance.Meta{Date: on},
		Amount:      finance.ParseAmount(f.Arg(0)),
		Type:        typ,
		CategoryID:  c.category,
		CardID:      c.card,
		Description: strings.Join(f.Args()[1:], " "),
	})

	verb := "Recorded income of"
	if typ == finance.Expense {
		verb = "Spent"
	}
	fmt.Printf("%s %s (%s)\n", verb, finance.FormatIQD(tx.Amount), tx.ID)
	return subcommands.ExitSuccess
}

type spendCmd struct{ recordCmd }

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "record an expense" }
func (*spendCmd) Usage() string {
	return `sfa spend [-card <id>] [-category <id>] [-d <day>] <amount> [description...]

  Records an expense and deducts it from the card's balance.
`
}
func (c *spendCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }
func (c *spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(f, finance.Expense)
}

type incomeCmd struct{ recordCmd }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income" }
func (*incomeCmd) Usage() string {
	return `sfa income [-card <id>] [-d <day>] <amount> [description...]

  Records an income and adds it to the card's balance.
`
}
func (c *incomeCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }
func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(f, finance.Income)
}

// txCmd pages through the transaction log.
type txCmd struct {
	page  int
	limit int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `sfa tx [-page <n>] [-n <limit>]

  Shows one page of the transaction log.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.page, "page", 1, "Page number")
	f.IntVar(&c.limit, "n", 20, "Transactions per page")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()
	printMarkdown(renderer.TransactionsMarkdown(book.TransactionPage(c.page, c.limit)))
	return subcommands.ExitSuccess
}

// rmTxCmd deletes a transaction record.
type rmTxCmd struct{}

func (*rmTxCmd) Name() string             { return "rm-tx" }
func (*rmTxCmd) Synopsis() string         { return "delete a transaction record" }
func (*rmTxCmd) SetFlags(_ *flag.FlagSet) {}
func (*rmTxCmd) Usage() string {
	return `sfa rm-tx <id>

  Deletes the transaction record. The card balance is not adjusted;
  record a correcting transaction for that.
`
}

func (c *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id")
		return subcommands.ExitUsageError
	}
	book := openBook()
	book.DeleteTransaction(f.Arg(0))
	fmt.Println("Transaction removed.")
	return subcommands.ExitSuccess
}

// exportCmd writes the full transaction log as CSV.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all transactions as CSV" }
func (*exportCmd) Usage() string {
	return `sfa export [-o <file>]

  Writes the joined transaction log as CSV, suitable for spreadsheets.
  Without -o the CSV goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()

	out := os.Stdout
	if c.output != "" {
		var err error
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := finance.ExportTransactionsCSV(out, book.Transactions()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
