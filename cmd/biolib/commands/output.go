package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var ErrInvalidOutputFormat = errors.New("invalid output format")

// textLiner renders a result as plain text lines.
type textLiner interface {
	Lines() []string
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVar(output, "output", OutputText, "Output format (text, json, yaml)")
}

func validateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}

	return fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrInvalidOutputFormat, format)
}

// writeOutput encodes v to w in the given format. The format must have been
// checked with [validateOutputFormat].
func writeOutput(w io.Writer, format string, v textLiner) error {
	switch strings.ToLower(format) {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}

		return nil

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return nil
	}

	for _, line := range v.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}
