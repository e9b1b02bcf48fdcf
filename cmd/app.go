// Package cmd implements the CLI application to manage the finance book.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	finance "github.com/ali98nadhum/smart-finance-assistant"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&cardsCmd{}, "cards")
	c.Register(&addCardCmd{}, "cards")
	c.Register(&topupCmd{}, "cards")
	c.Register(&removeCardCmd{}, "cards")

	c.Register(&spendCmd{}, "transactions")
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&rmTxCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")

	c.Register(&budgetCmd{}, "budget")
	c.Register(&setBudgetCmd{}, "budget")

	c.Register(&dailyCmd{}, "reports")
	c.Register(&weeklyCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&insightsCmd{}, "reports")

	c.Register(&debtsCmd{}, "debts")
	c.Register(&addDebtCmd{}, "debts")
	c.Register(&payDebtCmd{}, "debts")
	c.Register(&stashCmd{}, "debts")
	c.Register(&archiveDebtCmd{}, "debts")

	c.Register(&goalsCmd{}, "goals")
	c.Register(&addGoalCmd{}, "goals")
	c.Register(&tickCmd{}, "goals")
	c.Register(&allocateCmd{}, "goals")
	c.Register(&archiveGoalCmd{}, "goals")
	c.Register(&removeGoalCmd{}, "goals")

	c.Register(&todosCmd{}, "todos")
	c.Register(&addTodoCmd{}, "todos")
	c.Register(&doneCmd{}, "todos")
	c.Register(&removeTodoCmd{}, "todos")

	c.Register(&savingsCmd{}, "settings")
	c.Register(&rateCmd{}, "settings")
	c.Register(&convertCmd{}, "settings")
	c.Register(&pinCmd{}, "settings")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the folder holding the finance data files")

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".sfa")
	}
	return ".sfa"
}

// openBook opens the finance book over the app data folder, installing the
// first-run defaults when the folder is new.
func openBook() *finance.Book {
	return finance.Open(finance.DirMedium{Dir: *dataDir})
}

// printMarkdown renders the markdown for the terminal, falling back to the
// raw document when the renderer fails.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
