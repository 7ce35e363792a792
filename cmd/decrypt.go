// File: cmd/decrypt.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/caesar-cli/internal/cipher"
)

// newDecryptCmd creates the `decrypt` command.
func newDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt",
		Short:   "Decrypts text with a known shift",
		Example: `  caesar decrypt --text "Khoor" --shift 3`,
		Args:    cobra.NoArgs,
		RunE: withSignals(func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, "decrypt", cipher.Decrypt, cipher.NewDecryptReader)
		}),
	}
	addMessageFlags(cmd, true)
	return cmd
}
