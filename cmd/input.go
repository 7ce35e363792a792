// File: cmd/input.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/caesar-cli/internal/cipher"
	"github.com/xkilldash9x/caesar-cli/internal/config"
)

// addMessageFlags registers the flags shared by the cipher subcommands.
func addMessageFlags(cmd *cobra.Command, withShift bool) {
	cmd.Flags().StringP("text", "t", "", "message to transform (read from stdin when omitted)")
	if withShift {
		cmd.Flags().IntP("shift", "s", 0, "shift between 0 and 25 (default from cipher.default_shift)")
	}
}

// resolveShift returns the --shift flag when given, otherwise the configured default.
func resolveShift(cmd *cobra.Command, cfg config.Interface) (int, error) {
	shift := cfg.Cipher().DefaultShift
	if cmd.Flags().Changed("shift") {
		var err error
		if shift, err = cmd.Flags().GetInt("shift"); err != nil {
			return 0, err
		}
	}
	if err := cipher.ValidateShift(shift); err != nil {
		return 0, fmt.Errorf("invalid --shift: %w", err)
	}
	return shift, nil
}

// textFlag reports the --text value and whether it was given at all.
func textFlag(cmd *cobra.Command) (string, bool, error) {
	if !cmd.Flags().Changed("text") {
		return "", false, nil
	}
	text, err := cmd.Flags().GetString("text")
	return text, true, err
}

// readMessage returns --text, or all of stdin with one trailing line break removed.
func readMessage(cmd *cobra.Command) (string, error) {
	text, ok, err := textFlag(cmd)
	if err != nil || ok {
		return text, err
	}
	data, err := io.ReadAll(newContextReader(cmd.Context(), cmd.InOrStdin()))
	if err != nil {
		return "", fmt.Errorf("failed to read message from stdin: %w", err)
	}
	msg := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(msg, "\r"), nil
}

// contextReader stops reading once its context is done. A Read already
// blocked in the underlying reader is not interrupted.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func newContextReader(ctx context.Context, r io.Reader) io.Reader {
	return &contextReader{ctx: ctx, r: r}
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
