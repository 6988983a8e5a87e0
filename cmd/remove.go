package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove units from the current purchase" }
func (*removeCmd) Usage() string {
	return `aat remove <unit> [<quantity>]

  Removes units from the purchases pending for this turn. Without a
  quantity, all units of that type are removed.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: remove requires a unit and an optional quantity.")
		return subcommands.ExitUsageError
	}
	unit, ok := parseUnit(f.Arg(0))
	if !ok {
		return subcommands.ExitUsageError
	}
	var quantity *int
	if f.NArg() == 2 {
		n, ok := parseInt("quantity", f.Arg(1))
		if !ok {
			return subcommands.ExitUsageError
		}
		quantity = &n
	}

	_, err := newLedger().Remove(unit, quantity)
	return exitStatus(c.Name(), err)
}
