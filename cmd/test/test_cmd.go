package test

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand returns a new test command instance.
func NewCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "test",
		Short: "does testing things",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTest(cmd, list)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "lists test values")

	return cmd
}

func runTest(cmd *cobra.Command, list bool) error {
	message := "Not printing testing lists..."
	if list {
		message = "Printing testing lists..."
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), message)
	return err
}
