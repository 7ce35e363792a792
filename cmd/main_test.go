// File: cmd/main_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/caesar-cli/internal/observability"
)

// executeCommand runs a fresh root command with the given stdin and args and
// returns everything written to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// The logger is a process-wide singleton; reset it so each run configures its own.
	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)

	// Keep a developer's ~/.caesar/config.yaml out of the tests.
	t.Setenv("HOME", t.TempDir())

	root := NewRootCommand()
	var outBuf, errBuf bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

// writeConfig writes a yaml config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
