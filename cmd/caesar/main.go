// File: cmd/caesar/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/xkilldash9x/caesar-cli/cmd"
	"github.com/xkilldash9x/caesar-cli/internal/observability"
)

const panicLogFile = "panic.log"

// Function variables so tests can observe exits and crash reports.
var (
	osWriteFile = os.WriteFile
	osExit      = os.Exit
)

func main() {
	defer handlePanic()
	osExit(run(os.Args[1:]))
}

// run executes the CLI and maps the outcome to a process exit code.
// Subcommands install their own signal handling; see cmd.withSignals.
func run(args []string) int {
	if err := cmd.Execute(context.Background(), args); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		return 1
	}
	return 0
}

// handlePanic writes the panic and its stack to panicLogFile and exits 1.
func handlePanic() {
	r := recover()
	if r == nil {
		return
	}
	observability.Sync()

	panicMessage := fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack())
	if err := osWriteFile(panicLogFile, []byte(panicMessage), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to write panic log: %v\n", err)
		fmt.Fprintf(os.Stderr, "Panic details:\n%s\n", panicMessage)
		osExit(1)
		return
	}

	fmt.Fprintf(os.Stderr, "caesar crashed unexpectedly. Details logged to %s\n", panicLogFile)
	osExit(1)
}
