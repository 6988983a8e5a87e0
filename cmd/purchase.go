package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type purchaseCmd struct{}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "add units to the current purchase" }
func (*purchaseCmd) Usage() string {
	return `aat purchase <unit> [<quantity>]

  Adds units to the purchases pending for this turn. The quantity defaults
  to 1. Run 'aat units' for the list of units.
`
}

func (*purchaseCmd) SetFlags(f *flag.FlagSet) {}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: purchase requires a unit and an optional quantity.")
		return subcommands.ExitUsageError
	}
	unit, ok := parseUnit(f.Arg(0))
	if !ok {
		return subcommands.ExitUsageError
	}
	quantity := 1
	if f.NArg() == 2 {
		if quantity, ok = parseInt("quantity", f.Arg(1)); !ok {
			return subcommands.ExitUsageError
		}
	}

	_, err := newLedger().Purchase(unit, quantity)
	return exitStatus(c.Name(), err)
}
