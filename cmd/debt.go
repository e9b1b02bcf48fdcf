package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	finance "github.com/ali98nadhum/smart-finance-assistant"
	"github.com/ali98nadhum/smart-finance-assistant/renderer"
)

type debtsCmd struct{}

func (*debtsCmd) Name() string             { return "debts" }
func (*debtsCmd) Synopsis() string         { return "list open debts with payment history" }
func (*debtsCmd) SetFlags(_ *flag.FlagSet) {}
func (*debtsCmd) Usage() string {
	return `sfa debts

  Lists open debts in both directions, with amounts set aside and
  payment history.
`
}

func (c *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()
	printMarkdown(renderer.DebtsMarkdown(book.Debts()))
	return subcommands.ExitSuccess
}

type addDebtCmd struct {
	person string
	owed   bool
	notes  string
}

func (*addDebtCmd) Name() string     { return "add-debt" }
func (*addDebtCmd) Synopsis() string { return "record a debt" }
func (*addDebtCmd) Usage() string {
	return `sfa add-debt -person <name> [-owed] [-notes <text>] <amount>

  Records a debt I owe, or one owed to me with -owed.
`
}

func (c *addDebtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.person, "person", "", "The other party")
	f.BoolVar(&c.owed, "owed", false, "The debt is owed to me")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *addDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.person == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -person and exactly one amount argument are required")
		return subcommands.ExitUsageError
	}
	typ := finance.OwedByMe
	if c.owed {
		typ = finance.OwedToMe
	}
	book := openBook()
	debt := book.CreateDebt(finance.Debt{
		PersonName: c.person,
		Amount:     finance.ParseAmount(f.Arg(0)),
		Type:       typ,
		Notes:      c.notes,
	})
	fmt.Printf("Recorded debt with %s: %s (%s)\n", debt.PersonName, finance.FormatIQD(debt.Amount), debt.ID)
	return subcommands.ExitSuccess
}

type payDebtCmd struct {
	settle bool
}

func (*payDebtCmd) Name() string     { return "pay-debt" }
func (*payDebtCmd) Synopsis() string { return "record a payment against a debt" }
func (*payDebtCmd) Usage() string {
	return `sfa pay-debt [-settle] <debt-id> <amount>

  Records a payment against the debt. With -settle the debt is also
  marked paid.
`
}

func (c *payDebtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.settle, "settle", false, "Mark the debt paid after recording the payment")
}

func (c *payDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <debt-id> <amount>")
		return subcommands.ExitUsageError
	}
	book := openBook()
	payment := book.AddPayment(finance.DebtPayment{
		DebtID: f.Arg(0),
		Amount: finance.ParseAmount(f.Arg(1)),
	})
	fmt.Printf("Recorded payment of %s\n", finance.FormatIQD(payment.Amount))
	if c.settle {
		if book.UpdateDebtStatus(f.Arg(0), finance.Paid) == nil {
			fmt.Fprintf(os.Stderr, "Error: no debt %q to settle\n", f.Arg(0))
			return subcommands.ExitFailure
		}
		fmt.Println("Debt marked paid.")
	}
	return subcommands.ExitSuccess
}

type archiveDebtCmd struct{}

func (*archiveDebtCmd) Name() string             { return "archive-debt" }
func (*archiveDebtCmd) Synopsis() string         { return "archive or unarchive a debt" }
func (*archiveDebtCmd) SetFlags(_ *flag.FlagSet) {}
func (*archiveDebtCmd) Usage() string {
	return `sfa archive-debt <debt-id>

  Toggles the debt between archived and active. Archived debts keep
  their history but drop out of the debts listing.
`
}

func (c *archiveDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one debt id")
		return subcommands.ExitUsageError
	}
	book := openBook()
	debt := book.ArchiveDebt(f.Arg(0))
	if debt == nil {
		fmt.Fprintf(os.Stderr, "Error: no debt %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	state := "active"
	if debt.IsArchived {
		state = "archived"
	}
	fmt.Printf("Debt with %s is now %s\n", debt.PersonName, state)
	return subcommands.ExitSuccess
}

type stashCmd struct {
	op string
}

func (*stashCmd) Name() string     { return "stash" }
func (*stashCmd) Synopsis() string { return "adjust the amount set aside for a debt" }
func (*stashCmd) Usage() string {
	return `sfa stash [-op set|increment|decrement] <debt-id> <amount>

  Adjusts the cash set aside toward settling the debt.
`
}

func (c *stashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.op, "op", "increment", "Adjustment verb (set, increment, decrement)")
}

func (c *stashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <debt-id> <amount>")
		return subcommands.ExitUsageError
	}
	op, ok := finance.ParseAdjustOp(strings.ToUpper(c.op))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown verb %q\n", c.op)
		return subcommands.ExitUsageError
	}
	book := openBook()
	debt := book.StoreAmount(f.Arg(0), finance.ParseAmount(f.Arg(1)), op)
	if debt == nil {
		fmt.Fprintf(os.Stderr, "Error: no debt %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	fmt.Printf("Set aside for %s: %s\n", debt.PersonName, finance.FormatIQD(debt.StoredAmount))
	return subcommands.ExitSuccess
}
