package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/ali98nadhum/smart-finance-assistant/agent"
)

// assistCmd starts the interactive AI assistant session.
type assistCmd struct{}

func (*assistCmd) Name() string             { return "assist" }
func (*assistCmd) Synopsis() string         { return "start an interactive session with the AI assistant" }
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}
func (*assistCmd) Usage() string {
	return `sfa assist [question...]

  Starts an interactive chat with the assistant. It reads the finance
  book through its tools, so answers reflect real balances. Any
  arguments are sent as the first question.
`
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	book := openBook()
	a := agent.New(os.Stdout, os.Stdin, agent.NewAdvisor(book))

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
