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

type todosCmd struct{}

func (*todosCmd) Name() string             { return "todos" }
func (*todosCmd) Synopsis() string         { return "list money todos by priority" }
func (*todosCmd) SetFlags(_ *flag.FlagSet) {}
func (*todosCmd) Usage() string {
	return `sfa todos

  Lists the money to-do list, highest priority first.
`
}

func (c *todosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()
	for _, todo := range book.Todos() {
		mark := " "
		if todo.IsCompleted {
			mark = "x"
		}
		fmt.Printf("[%s] %-8s %-4s %s (%s)\n", mark, todo.Priority, todo.ID[:min(4, len(todo.ID))], todo.Task, todo.Category)
	}
	return subcommands.ExitSuccess
}

type addTodoCmd struct {
	category string
	priority string
}

func (*addTodoCmd) Name() string     { return "add-todo" }
func (*addTodoCmd) Synopsis() string { return "add a money todo" }
func (*addTodoCmd) Usage() string {
	return `sfa add-todo [-category <name>] [-priority low|medium|high] <task...>

  Adds a task to the money to-do list.
`
}

func (c *addTodoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Task category")
	f.StringVar(&c.priority, "priority", "", "Task priority (low, medium, high)")
}

func (c *addTodoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected the task text")
		return subcommands.ExitUsageError
	}
	book := openBook()
	todo := book.CreateTodo(finance.Todo{
		Task:     strings.Join(f.Args(), " "),
		Category: c.category,
		Priority: finance.Priority(strings.ToUpper(c.priority)),
	})
	fmt.Printf("Added todo %s (%s)\n", todo.Task, todo.ID)
	return subcommands.ExitSuccess
}

type removeTodoCmd struct{}

func (*removeTodoCmd) Name() string             { return "remove-todo" }
func (*removeTodoCmd) Synopsis() string         { return "delete a todo" }
func (*removeTodoCmd) SetFlags(_ *flag.FlagSet) {}
func (*removeTodoCmd) Usage() string {
	return `sfa remove-todo <todo-id>

  Deletes the todo.
`
}

func (c *removeTodoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one todo id")
		return subcommands.ExitUsageError
	}
	book := openBook()
	book.DeleteTodo(f.Arg(0))
	fmt.Println("Todo removed.")
	return subcommands.ExitSuccess
}

type doneCmd struct{}

func (*doneCmd) Name() string             { return "done" }
func (*doneCmd) Synopsis() string         { return "toggle a todo's completion" }
func (*doneCmd) SetFlags(_ *flag.FlagSet) {}
func (*doneCmd) Usage() string {
	return `sfa done <todo-id>

  Toggles the todo between done and pending.
`
}

func (c *doneCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one todo id")
		return subcommands.ExitUsageError
	}
	book := openBook()
	todo := book.ToggleTodo(f.Arg(0))
	if todo == nil {
		fmt.Fprintf(os.Stderr, "Error: no todo %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	state := "pending"
	if todo.IsCompleted {
		state = "done"
	}
	fmt.Printf("%s is now %s\n", todo.Task, state)
	return subcommands.ExitSuccess
}
