// File: cmd/output.go
package cmd

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/xkilldash9x/caesar-cli/internal/cipher"
	"github.com/xkilldash9x/caesar-cli/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// transformResult is the JSON shape of an encrypt or decrypt run.
type transformResult struct {
	Operation string `json:"operation"`
	Shift     int    `json:"shift"`
	Input     string `json:"input"`
	Output    string `json:"output"`
}

// bruteForceResult is the JSON shape of a bruteforce run.
type bruteForceResult struct {
	Input      string             `json:"input"`
	Candidates []cipher.Candidate `json:"candidates"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func writeTransform(w io.Writer, format string, res transformResult) error {
	if format == config.OutputFormatJSON {
		return writeJSON(w, res)
	}
	_, err := fmt.Fprintln(w, res.Output)
	return err
}

func writeBruteForce(w io.Writer, format string, res bruteForceResult) error {
	if format == config.OutputFormatJSON {
		return writeJSON(w, res)
	}
	for _, c := range res.Candidates {
		if _, err := fmt.Fprintf(w, "Shift %2d: %s\n", c.Shift, c.Text); err != nil {
			return err
		}
	}
	return nil
}
