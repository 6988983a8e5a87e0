package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the current status of the game" }
func (*statusCmd) Usage() string {
	return `aat status

  Displays the pending purchases, their total cost and the IPC remaining.
`
}

func (*statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: status takes no arguments.")
		return subcommands.ExitUsageError
	}
	_, err := newLedger().Status()
	return exitStatus(c.Name(), err)
}
