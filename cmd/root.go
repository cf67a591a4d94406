package cmd

import (
	"fmt"
	"os"

	reformatcmd "github.com/LegacyCodeHQ/toolbox/cmd/reformat"
	testcmd "github.com/LegacyCodeHQ/toolbox/cmd/test"
	"github.com/LegacyCodeHQ/toolbox/internal/logging"

	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "1.0"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

type rootOptions struct {
	debug int
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCommand()

// NewRootCommand returns the toolbox command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "toolbox",
		Short: "Does awesome things",
		Long: `Toolbox is a small collection of text utilities.

Use 'toolbox --help' to see all available commands, or 'toolbox <command> --help'
for detailed information about a specific command.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(cmd.ErrOrStderr(), opts.debug)
			if banner := logging.Banner(opts.debug); banner != "" {
				fmt.Fprintln(cmd.OutOrStdout(), banner)
			}
		},
		// Without a subcommand only the debug banner is printed.
		Run: func(*cobra.Command, []string) {},
	}

	// Register subcommands
	cmd.AddCommand(testcmd.NewCommand())
	cmd.AddCommand(reformatcmd.NewCommand())

	if cmd.Annotations == nil {
		cmd.Annotations = make(map[string]string)
	}
	cmd.Annotations["buildDate"] = buildDate
	cmd.Annotations["commit"] = commit

	// Customize version template to show additional build info
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	cmd.PersistentFlags().CountVarP(&opts.debug, "debug", "d", "Turn debugging information on (repeatable)")
	cmd.PersistentFlags().BoolP("clipboard", "b", false, "Automatically copy output to clipboard")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
