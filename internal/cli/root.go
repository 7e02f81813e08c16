package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the reflkit CLI under ctx and returns an error if any
// command fails.
func Execute(ctx context.Context) error {
	return newRoot().ExecuteContext(ctx)
}

// newRoot builds the root command: it wires the validate and profile
// subcommands and configures logging from the --verbose flag; the logger
// rides on the command context for loggerFromContext.
func newRoot() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "reflkit",
		Short:        "reflkit evaluates lipid-bilayer layer models for reflectometry",
		Long:         `reflkit validates reflectometry project files and evaluates the symmetric lipid-bilayer layer model they describe, printing the SLD layer stack a reflectivity engine would consume.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("reflkit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newProfileCmd())

	return root
}
