// Package cmd implements the CLI application to track IPC purchases.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ipc"
	"github.com/etnz/ipc/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&setupCmd{},
	&statusCmd{},
	&purchaseCmd{},
	&removeCmd{},
	&commitCmd{},
	&unitsCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for _, cmd := range Commands[:5] {
		c.Register(cmd, "game")
	}
	for _, cmd := range Commands[5:] {
		c.Register(cmd, "help")
	}
}

// IsCommand reports whether name is a subcommand handled by the application.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("state-file", "", "Path to the game state file. Defaults to $"+EnvStateFile+" or "+ipc.DefaultStateFile+".")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Verbose logging. Defaults to $"+EnvVerbose+".")

var strict = flag.Bool("strict", false, "Exit with a failure status when an operation fails or is rejected. Defaults to $"+EnvStrict+".")

// stdout receives the output of the operations.
var stdout io.Writer = os.Stdout

var logger = zap.NewNop()

// LoadEnv loads environment variables from .env files, the default is ".env"
// in the working directory. Missing files are ignored and variables already
// set in the environment win.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not load environment file %q: %w", name, err)
		}
	}
	return nil
}

// StateFile returns the path of the game state file.
func StateFile() string {
	if *stateFile != "" {
		return *stateFile
	}
	if v := os.Getenv(EnvStateFile); v != "" {
		return v
	}
	return ipc.DefaultStateFile
}

func isVerbose() bool { return *Verbose || envBool(EnvVerbose) }

func isStrict() bool { return *strict || envBool(EnvStrict) }

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

// SetupLogging installs the application logger, writing to stderr. It returns
// a function flushing the logs.
func SetupLogging() (func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if isVerbose() {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.TimeKey = ""

	l, err := cfg.Build()
	if err != nil {
		return func() {}, fmt.Errorf("could not build logger: %w", err)
	}
	logger = l
	return func() { _ = l.Sync() }, nil
}

// newLedger returns the ledger working on the configured state file.
func newLedger() *ipc.Ledger {
	path := StateFile()
	return &ipc.Ledger{
		Store:  ipc.FileStore{Path: path},
		Out:    stdout,
		Logger: logger.With(zap.String("state-file", path)),
		Render: func(s *ipc.GameState) string { return displayMarkdown(renderer.StatusMarkdown(s)) },
	}
}

// exitStatus logs the outcome of an operation and turns it into an exit
// status. Failures exit successfully unless -strict is set.
func exitStatus(op string, err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}

	switch {
	case errors.Is(err, ipc.ErrInsufficientFunds):
		logger.Debug("commit rejected", zap.String("command", op), zap.Error(err))
	case errors.Is(err, ipc.ErrNoGame):
		logger.Error("failed to load game state", zap.String("command", op), zap.String("state-file", StateFile()), zap.Error(err))
	default:
		logger.Error("failed to save game state", zap.String("command", op), zap.String("state-file", StateFile()), zap.Error(err))
	}

	if isStrict() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// displayMarkdown renders markdown for the terminal when the output is one,
// and returns it unchanged otherwise.
func displayMarkdown(in string) string {
	f, ok := stdout.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return in
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logger.Debug("markdown rendering unavailable", zap.Error(err))
		return in
	}
	out, err := r.Render(in)
	if err != nil {
		logger.Debug("markdown rendering failed", zap.Error(err))
		return in
	}
	return out
}

// printMarkdown displays markdown on the output.
func printMarkdown(md string) {
	fmt.Fprint(stdout, displayMarkdown(md))
}

// parseInt parses a positional integer argument, reporting errors on stderr.
func parseInt(name, arg string) (int, bool) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s %q: not an integer\n", name, arg)
		return 0, false
	}
	return v, true
}

// parseUnit parses a positional unit argument, reporting errors on stderr.
func parseUnit(arg string) (ipc.Unit, bool) {
	u, err := ipc.ParseUnit(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Run 'aat units' for the list of units.\n", err)
		return 0, false
	}
	return u, true
}
