package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// pinCmd manages the convenience PIN gate.
type pinCmd struct {
	clear  bool
	verify string
}

func (*pinCmd) Name() string     { return "pin" }
func (*pinCmd) Synopsis() string { return "set, clear or verify the PIN gate" }
func (*pinCmd) Usage() string {
	return `sfa pin [<pin> | -clear | -verify <pin>]

  With a pin argument, enables the gate. -clear disables it. -verify
  checks a candidate against the stored pin.
`
}

func (c *pinCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Disable the PIN gate")
	f.StringVar(&c.verify, "verify", "", "Check this candidate against the stored pin")
}

func (c *pinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := openBook()

	switch {
	case c.clear:
		book.SetPin(nil)
		fmt.Println("PIN gate disabled.")
	case c.verify != "":
		if !book.VerifyPin(c.verify) {
			fmt.Println("PIN does not match.")
			return subcommands.ExitFailure
		}
		fmt.Println("PIN matches.")
	case f.NArg() == 1:
		pin := f.Arg(0)
		book.SetPin(&pin)
		fmt.Println("PIN gate enabled.")
	case f.NArg() == 0:
		if book.Locked() {
			fmt.Println("PIN gate is enabled.")
		} else {
			fmt.Println("PIN gate is disabled.")
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: expected at most one pin argument")
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
