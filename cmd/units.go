package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ipc/renderer"
	"github.com/google/subcommands"
)

type unitsCmd struct{}

func (*unitsCmd) Name() string     { return "units" }
func (*unitsCmd) Synopsis() string { return "list the units that can be purchased" }
func (*unitsCmd) Usage() string {
	return `aat units

  Lists every unit with the token to use on the command line and its cost.
`
}

func (*unitsCmd) SetFlags(f *flag.FlagSet) {}

func (*unitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.CatalogMarkdown())
	return subcommands.ExitSuccess
}
