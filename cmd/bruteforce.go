// File: cmd/bruteforce.go
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/caesar-cli/internal/cipher"
	"github.com/xkilldash9x/caesar-cli/internal/observability"
)

// newBruteForceCmd creates the `bruteforce` command.
func newBruteForceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bruteforce",
		Aliases: []string{"brute"},
		Short:   "Decrypts text with every shift from 0 to 25",
		Example: `  caesar bruteforce --text "Khoor"
  caesar bruteforce -t "Khoor" -o json`,
		Args: cobra.NoArgs,
		RunE: withSignals(func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return err
			}
			text, err := readMessage(cmd)
			if err != nil {
				return err
			}

			observability.GetLogger().Named("bruteforce").Debug("Trying all shifts", zap.Int("length", len(text)))
			return writeBruteForce(cmd.OutOrStdout(), cfg.Output().Format, bruteForceResult{
				Input:      text,
				Candidates: cipher.BruteForce(text),
			})
		}),
	}
	addMessageFlags(cmd, false)
	return cmd
}
