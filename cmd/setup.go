package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type setupCmd struct{}

func (*setupCmd) Name() string     { return "setup" }
func (*setupCmd) Synopsis() string { return "start a new game" }
func (*setupCmd) Usage() string {
	return `aat setup <initial_ipc>

  Starts a new game with the given IPC balance and no pending purchases.
  Any existing game in the state file is replaced.
`
}

func (*setupCmd) SetFlags(f *flag.FlagSet) {}

func (c *setupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: setup requires exactly one argument: the initial IPC.")
		return subcommands.ExitUsageError
	}
	initial, ok := parseInt("initial IPC", f.Arg(0))
	if !ok {
		return subcommands.ExitUsageError
	}

	_, err := newLedger().Setup(initial)
	return exitStatus(c.Name(), err)
}
