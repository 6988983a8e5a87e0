package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// Environment variables configuring aat, also passed to extensions.
const (
	EnvStateFile = "AAT_STATE_FILE"
	EnvVerbose   = "AAT_VERBOSE"
	EnvStrict    = "AAT_STRICT"
)

// ExtensionPrefix prefixes the name of external subcommand binaries.
const ExtensionPrefix = "aat-"

// ExtensionEnv returns the configuration passed to extensions, as
// environment variables.
func ExtensionEnv() []string {
	return []string{
		EnvStateFile + "=" + StateFile(),
		EnvVerbose + "=" + strconv.FormatBool(isVerbose()),
		EnvStrict + "=" + strconv.FormatBool(isStrict()),
	}
}

// RunExtension attempts to find and execute an external aat-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("external command not found", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(), ExtensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		// If it's not an ExitError we can't get the status, report a generic error
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
