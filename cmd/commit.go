package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type commitCmd struct{}

func (*commitCmd) Name() string     { return "commit" }
func (*commitCmd) Synopsis() string { return "pay for the purchases and start the next turn" }
func (*commitCmd) Usage() string {
	return `aat commit <income>

  Checks that the balance covers the pending purchases, pays for them and
  adds the income collected this turn. Nothing changes if the balance is too
  low.
`
}

func (*commitCmd) SetFlags(f *flag.FlagSet) {}

func (c *commitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: commit requires exactly one argument: the IPC collected this turn.")
		return subcommands.ExitUsageError
	}
	income, ok := parseInt("income", f.Arg(0))
	if !ok {
		return subcommands.ExitUsageError
	}

	_, err := newLedger().Commit(income)
	return exitStatus(c.Name(), err)
}
