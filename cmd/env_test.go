// The cmd/ package holds CLI integration tests that exercise the full
// stack: flag parsing, extension initialisation, conversion, output
// formatting, config files and the audit log. Each test builds the binary
// once and runs it in a temp directory with DUR_HOME pointing at another,
// so the user's config and log are never touched.

package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jpl-au/dur/internal/config"
	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the dur binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "dur-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "dur"
		if os.PathSeparator == '\\' {
			binaryName = "dur.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/.
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // working directory
	home   string // DUR_HOME
	binary string
}

// newTestEnv creates a working directory and an empty DUR_HOME.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

func (e *testEnv) command(stdin string, args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), config.HomeEnv+"="+e.home)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	return cmd
}

// run executes dur and returns stdout, failing the test on a non-zero
// exit.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	return e.runStdin("", args...)
}

// runStdin executes dur with stdin input and returns stdout.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	stdout, stderr, err := e.exec(input, args...)
	if err != nil {
		e.t.Fatalf("dur %v failed: %v\nstdout: %s\nstderr: %s", args, err, stdout, stderr)
	}
	return stdout
}

// runErr executes dur and returns stdout and stderr combined, plus the
// exit error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	stdout, stderr, err := e.exec("", args...)
	return stdout + stderr, err
}

// exec runs dur and returns stdout and stderr separately.
func (e *testEnv) exec(input string, args ...string) (string, string, error) {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := e.command(input, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// lines splits trimmed output into lines.
func lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
