// File: cmd/signal.go
package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// notifyContext is swapped out in tests to observe which commands trap signals.
var notifyContext = signal.NotifyContext

// withSignals runs a one-shot subcommand under a context cancelled by SIGINT
// or SIGTERM. The interactive shell is never wrapped: it blocks on stdin, so
// signals keep their default behavior and terminate the process.
func withSignals(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := notifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		cmd.SetContext(ctx)
		return run(cmd, args)
	}
}
