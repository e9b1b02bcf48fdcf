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

type goalsCmd struct{}

func (*goalsCmd) Name() string             { return "goals" }
func (*goalsCmd) Synopsis() string         { return "list active savings goals" }
func (*goalsCmd) SetFlags(_ *flag.FlagSet) {}
func (*goalsCmd) Usage() string {
	return `sfa goals

  Lists active goals with target, progress and grid completion.
`
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()
	printMarkdown(renderer.GoalsMarkdown(book.Goals()))
	return subcommands.ExitSuccess
}

type addGoalCmd struct {
	name     string
	deadline string
	grid     bool
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `sfa add-goal -name <name> [-deadline <text>] [-grid] <target>

  Creates a goal. With -grid the target is split into randomly sized
  cells to tick off one by one.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name")
	f.StringVar(&c.deadline, "deadline", "", "Free-form deadline")
	f.BoolVar(&c.grid, "grid", false, "Split the target into a challenge grid")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -name and exactly one target argument are required")
		return subcommands.ExitUsageError
	}
	book := openBook()
	goal := book.CreateGoal(finance.Goal{
		Name:     c.name,
		Target:   finance.ParseAmount(f.Arg(0)),
		Deadline: c.deadline,
		UseGrid:  c.grid,
	})
	fmt.Printf("Created goal %s (%s)", goal.Name, goal.ID)
	if goal.UseGrid {
		fmt.Printf(" with %d cells", len(goal.Grid))
	}
	fmt.Println()
	return subcommands.ExitSuccess
}

type tickCmd struct {
	cells bool
}

func (*tickCmd) Name() string     { return "tick" }
func (*tickCmd) Synopsis() string { return "tick or untick a goal grid cell" }
func (*tickCmd) Usage() string {
	return `sfa tick [-cells] <goal-id> [cell-id]

  Toggles the cell, moving the goal's progress by the cell amount.
  With -cells (and no cell-id) the goal's cells are listed instead.
`
}

func (c *tickCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.cells, "cells", false, "List the goal's cells instead of toggling")
}

func (c *tickCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()

	if c.cells {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: expected exactly one goal id")
			return subcommands.ExitUsageError
		}
		for _, g := range book.Goals() {
			if g.ID != f.Arg(0) {
				continue
			}
			for _, cell := range g.Grid {
				mark := " "
				if cell.Completed {
					mark = "x"
				}
				fmt.Printf("[%s] %-38s %s\n", mark, cell.ID, finance.FormatIQD(cell.Amount))
			}
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error: no goal %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <goal-id> <cell-id>")
		return subcommands.ExitUsageError
	}
	goal := book.ToggleGoalCell(f.Arg(0), f.Arg(1))
	if goal == nil {
		fmt.Fprintln(os.Stderr, "Error: goal or cell not found")
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s of %s\n", goal.Name, finance.FormatIQD(goal.Current), finance.FormatIQD(goal.Target))
	return subcommands.ExitSuccess
}

type archiveGoalCmd struct{}

func (*archiveGoalCmd) Name() string             { return "archive-goal" }
func (*archiveGoalCmd) Synopsis() string         { return "archive or unarchive a goal" }
func (*archiveGoalCmd) SetFlags(_ *flag.FlagSet) {}
func (*archiveGoalCmd) Usage() string {
	return `sfa archive-goal <goal-id>

  Toggles the goal between archived and active.
`
}

func (c *archiveGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one goal id")
		return subcommands.ExitUsageError
	}
	book := openBook()
	goal := book.ArchiveGoal(f.Arg(0))
	if goal == nil {
		fmt.Fprintf(os.Stderr, "Error: no goal %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	state := "active"
	if goal.IsArchived {
		state = "archived"
	}
	fmt.Printf("%s is now %s\n", goal.Name, state)
	return subcommands.ExitSuccess
}

type removeGoalCmd struct{}

func (*removeGoalCmd) Name() string             { return "remove-goal" }
func (*removeGoalCmd) Synopsis() string         { return "delete a goal" }
func (*removeGoalCmd) SetFlags(_ *flag.FlagSet) {}
func (*removeGoalCmd) Usage() string {
	return `sfa remove-goal <goal-id>

  Deletes the goal and its grid. Prefer archive-goal to keep history.
`
}

func (c *removeGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one goal id")
		return subcommands.ExitUsageError
	}
	book := openBook()
	book.DeleteGoal(f.Arg(0))
	fmt.Println("Goal removed.")
	return subcommands.ExitSuccess
}

type allocateCmd struct{}

func (*allocateCmd) Name() string             { return "allocate" }
func (*allocateCmd) Synopsis() string         { return "add cash directly to a goal" }
func (*allocateCmd) SetFlags(_ *flag.FlagSet) {}
func (*allocateCmd) Usage() string {
	return `sfa allocate <goal-id> <amount>

  Adds the amount directly to the goal's progress.
`
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <goal-id> <amount>")
		return subcommands.ExitUsageError
	}
	book := openBook()
	goal := book.AllocateToGoal(f.Arg(0), finance.ParseAmount(f.Arg(1)))
	if goal == nil {
		fmt.Fprintf(os.Stderr, "Error: no goal %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s of %s\n", goal.Name, finance.FormatIQD(goal.Current), finance.FormatIQD(goal.Target))
	return subcommands.ExitSuccess
}
