package reformat

import (
	"errors"
	"fmt"
	"log/slog"

	reformatter "github.com/LegacyCodeHQ/toolbox/reformat"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type reformatOptions struct {
	outputFormat string
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// NewCommand returns a new reformat command instance.
func NewCommand() *cobra.Command {
	opts := &reformatOptions{
		outputFormat: reformatter.OutputFormatHexArray.String(),
	}

	cmd := &cobra.Command{
		Use:   "reformat <raw_input>",
		Short: "reformat input",
		Long: `Reformat a hex string into a C-style byte array, or raw text into binary digits.

Spaces and lowercase 0x prefixes are removed before the input is split into
byte pairs.

Output formats:
  - "" (default): C-style array, e.g. { 0xDE, 0xAD }
  - bin: eight binary digits per input byte

Examples:
  toolbox reformat "de ad be ef"
  toolbox reformat 0xDE0xAD
  toolbox reformat AB -o bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReformat(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"outputformat",
		"o",
		opts.outputFormat,
		fmt.Sprintf("Sets the output format (%s)", reformatter.SupportedFormats()))

	return cmd
}

func runReformat(cmd *cobra.Command, opts *reformatOptions, rawInput string) error {
	slog.Debug("reformatting input", "format", opts.outputFormat, "length", len(rawInput))

	output, err := reformatter.Reformat(rawInput, opts.outputFormat)
	if err != nil {
		return reportReformatError(cmd, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)

	copyToClipboard, err := clipboardRequested(cmd)
	if err != nil {
		return err
	}
	if copyToClipboard {
		if err := writeClipboard(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\n✅ Content copied to your clipboard.")
	}

	return nil
}

// clipboardRequested reads the --clipboard flag inherited from the root command.
// The flag is absent when the command runs standalone.
func clipboardRequested(cmd *cobra.Command) (bool, error) {
	if cmd.Flags().Lookup("clipboard") == nil {
		return false, nil
	}
	requested, err := cmd.Flags().GetBool("clipboard")
	if err != nil {
		return false, fmt.Errorf("failed to read --clipboard flag: %w", err)
	}
	return requested, nil
}

// reportReformatError prints reformat failures instead of failing the command.
func reportReformatError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, reformatter.ErrOddLength):
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
	case errors.Is(err, reformatter.ErrInvalidFormat):
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	default:
		return err
	}

	slog.Debug("reformat failed", "error", err)
	return nil
}
