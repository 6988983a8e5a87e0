package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionEnv(t *testing.T) {
	path := useStateFile(t)
	t.Setenv(EnvVerbose, "")
	t.Setenv(EnvStrict, "")

	got := strings.Join(ExtensionEnv(), "\n")
	want := strings.Join([]string{
		EnvStateFile + "=" + path,
		EnvVerbose + "=false",
		EnvStrict + "=false",
	}, "\n")
	if got != want {
		t.Errorf("ExtensionEnv() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if ran, code := RunExtension("no-such-extension", nil); ran || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", ran, code)
	}
}

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// An aat-hello extension printing the configuration it receives.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
	os.Exit(3)
}
`, EnvStateFile, EnvStateFile, EnvVerbose, EnvVerbose, EnvStrict, EnvStrict)

	helloCmdPath := filepath.Join(tempDir, "aat-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write aat-hello source: %v", err)
	}
	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile aat-hello: %v", err)
	}

	aatBinaryPath := filepath.Join(tempDir, "aat")
	cmd = exec.Command("go", "build", "-o", aatBinaryPath, "../aat")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile aat binary: %v", err)
	}

	expectedStateFile := filepath.Join(tempDir, "random_state.json")
	args := []string{
		"-state-file", expectedStateFile,
		"-v",
		"hello", // The extension subcommand
		"world",
	}

	aatCmd := exec.Command(aatBinaryPath, args...)
	aatCmd.Dir = tempDir
	aatCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	aatCmd.Stdout = &stdout
	aatCmd.Stderr = &stderr

	err := aatCmd.Run()
	if aatCmd.ProcessState == nil {
		t.Fatalf("aat command failed to start: %v", err)
	}
	if code := aatCmd.ProcessState.ExitCode(); code != 3 {
		t.Fatalf("aat hello exit code = %d (%v), want the extension's 3\nStdout: %s\nStderr: %s", code, err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, expectedLine := range []string{
		EnvStateFile + "=" + expectedStateFile,
		EnvVerbose + "=true",
		EnvStrict + "=false",
		"args=[world]",
	} {
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}
}
