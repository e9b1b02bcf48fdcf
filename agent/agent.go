// Package agent is the conversational assistant: a Gemini chat wired to a
// small library of read-only functions over the user's finance book, so the
// model answers from real balances instead of guessing.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive assist session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Advisor
}

// New creates an Agent writing to w and reading user input from r.
func New(w io.Writer, r io.Reader, advisor *Advisor) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Advisor: advisor,
	}
}

const prompt = "assist> "

// Run starts the REPL session. Any prompts given are consumed as the first
// user inputs before reading from the reader, so one-shot questions can be
// passed on the command line.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Advisor.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to sfa assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
