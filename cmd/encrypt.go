// File: cmd/encrypt.go
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/caesar-cli/internal/cipher"
	"github.com/xkilldash9x/caesar-cli/internal/config"
	"github.com/xkilldash9x/caesar-cli/internal/observability"
)

// transformFunc is cipher.Encrypt or cipher.Decrypt.
type transformFunc func(text string, shift int) string

// streamFunc wraps a reader with the streaming form of a transformFunc.
type streamFunc func(r io.Reader, shift int) *cipher.Reader

// newEncryptCmd creates the `encrypt` command.
func newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt",
		Short:   "Encrypts text with a known shift",
		Example: `  caesar encrypt --text "Hello" --shift 3
  echo "Hello" | caesar encrypt -s 3`,
		Args: cobra.NoArgs,
		RunE: withSignals(func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, "encrypt", cipher.Encrypt, cipher.NewReader)
		}),
	}
	addMessageFlags(cmd, true)
	return cmd
}

// runTransform is shared by encrypt and decrypt. Plain-text output from stdin
// is streamed; everything else works on the whole message.
func runTransform(cmd *cobra.Command, op string, transform transformFunc, stream streamFunc) error {
	cfg, err := configFromContext(cmd.Context())
	if err != nil {
		return err
	}
	shift, err := resolveShift(cmd, cfg)
	if err != nil {
		return err
	}

	logger := observability.GetLogger().Named(op)
	format := cfg.Output().Format
	out := cmd.OutOrStdout()

	text, fromFlag, err := textFlag(cmd)
	if err != nil {
		return err
	}

	if !fromFlag && format == config.OutputFormatText {
		logger.Debug("Streaming stdin", zap.Int("shift", shift))
		in := newContextReader(cmd.Context(), cmd.InOrStdin())
		if _, err := io.Copy(out, stream(in, shift)); err != nil {
			return fmt.Errorf("failed to %s stdin: %w", op, err)
		}
		return nil
	}

	if !fromFlag {
		if text, err = readMessage(cmd); err != nil {
			return err
		}
	}

	logger.Debug("Transforming message", zap.Int("shift", shift), zap.Int("length", len(text)))
	return writeTransform(out, format, transformResult{
		Operation: op,
		Shift:     shift,
		Input:     text,
		Output:    transform(text, shift),
	})
}
