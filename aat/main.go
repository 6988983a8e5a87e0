package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/ipc/cmd"
	"github.com/google/subcommands"
)

func main() {
	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	// Exits when invoked by the shell for completion.
	cmd.Completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()

	sync, err := cmd.SetupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
			sync()
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	sync()
	os.Exit(int(status))
}
