package cli

import (
	"github.com/spf13/cobra"

	"github.com/reflkit/reflkit/project"
)

// newValidateCmd builds the validate subcommand: decode a project file,
// validate it, flatten it, and check the contrast indices.
func newValidateCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a reflectometry project file",
		Long: `Validate decodes a TOML project file, applies the conventional defaults,
checks names, bounds and cross-references, and verifies the flattened
per-contrast indices. A project that passes is ready for a fit run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := project.Load(projectPath)
			if err != nil {
				return err
			}
			logger.Debug("project decoded", "name", p.Name, "absorption", p.Absorption)

			in, err := p.Flatten()
			if err != nil {
				return err
			}
			if err := in.CheckIndices(); err != nil {
				return err
			}

			logger.Info("project valid",
				"name", p.Name,
				"parameters", len(p.Parameters),
				"fitted", len(in.FitParams),
				"contrasts", in.NumberOfContrasts,
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "path to the project TOML file")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
