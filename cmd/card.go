package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/ali98nadhum/smart-finance-assistant"
)

// cardsCmd lists the cards and their balances.
type cardsCmd struct{}

func (*cardsCmd) Name() string             { return "cards" }
func (*cardsCmd) Synopsis() string         { return "list cards and balances" }
func (*cardsCmd) SetFlags(_ *flag.FlagSet) {}
func (*cardsCmd) Usage() string {
	return `sfa cards

  Lists every card with its balance and whether it counts toward the
  daily budget.
`
}

func (c *cardsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()
	for _, card := range book.Cards() {
		budgeted := " "
		if card.IsBudgeted {
			budgeted = "*"
		}
		fmt.Printf("%s %-4s %-25s %s\n", budgeted, card.ID, card.Name, finance.FormatIQD(card.Balance))
	}
	fmt.Println("\n* counts toward the daily budget")
	return subcommands.ExitSuccess
}

type addCardCmd struct {
	name     string
	color    string
	budgeted bool
	balance  string
}

func (*addCardCmd) Name() string     { return "add-card" }
func (*addCardCmd) Synopsis() string { return "add a new card or wallet" }
func (*addCardCmd) Usage() string {
	return `sfa add-card -name <name> [-balance <amount>] [-color <hex>] [-budgeted]

  Adds a card. Budgeted cards count toward the daily budget; keep a
  long-term wallet unbudgeted to spend from it without pressure.
`
}

func (c *addCardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Card name")
	f.StringVar(&c.balance, "balance", "0", "Opening balance in dinars")
	f.StringVar(&c.color, "color", "#3b82f6", "Display color")
	f.BoolVar(&c.budgeted, "budgeted", true, "Count this card toward the daily budget")
}

func (c *addCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	book := openBook()
	card := book.CreateCard(finance.Card{
		Name:       c.name,
		Balance:    finance.ParseAmount(c.balance),
		Color:      c.color,
		IsBudgeted: c.budgeted,
	})
	fmt.Printf("Added card %s (%s)\n", card.Name, card.ID)
	return subcommands.ExitSuccess
}

type topupCmd struct {
	card string
}

func (*topupCmd) Name() string     { return "topup" }
func (*topupCmd) Synopsis() string { return "add cash to a card" }
func (*topupCmd) Usage() string {
	return `sfa topup -card <id> <amount>

  Adds the amount to the card's balance without recording an income
  transaction.
`
}

func (c *topupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.card, "card", "1", "Card to top up")
}

func (c *topupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount argument")
		return subcommands.ExitUsageError
	}
	book := openBook()
	card := book.TopUpCard(c.card, finance.ParseAmount(f.Arg(0)))
	if card == nil {
		fmt.Fprintf(os.Stderr, "Error: no card %q\n", c.card)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s now holds %s\n", card.Name, finance.FormatIQD(card.Balance))
	return subcommands.ExitSuccess
}

type removeCardCmd struct{}

func (*removeCardCmd) Name() string             { return "remove-card" }
func (*removeCardCmd) Synopsis() string         { return "remove a card" }
func (*removeCardCmd) SetFlags(_ *flag.FlagSet) {}
func (*removeCardCmd) Usage() string {
	return `sfa remove-card <id>

  Removes the card. The last remaining card cannot be removed.
`
}

func (c *removeCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one card id")
		return subcommands.ExitUsageError
	}
	book := openBook()
	if !book.DeleteCard(f.Arg(0)) {
		fmt.Fprintln(os.Stderr, "Error: card not removed; it may be the last one")
		return subcommands.ExitFailure
	}
	fmt.Println("Card removed.")
	return subcommands.ExitSuccess
}
