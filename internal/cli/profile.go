package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reflkit/reflkit/bilayer"
	"github.com/reflkit/reflkit/project"
)

// newProfileCmd builds the profile subcommand: evaluate the bilayer
// layer model for one contrast of a project and print the stack.
func newProfileCmd() *cobra.Command {
	var (
		projectPath string
		contrast    string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Evaluate the layer stack for one contrast",
		Long: `Profile loads a project file, evaluates the symmetric bilayer layer
model against the chosen contrast's bulk phase, and prints the resulting
layer stack: the exact rows a reflectivity engine would receive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := project.Load(projectPath)
			if err != nil {
				return err
			}

			idx := 0
			if contrast != "" {
				if idx, err = p.ContrastIndex(contrast); err != nil {
					return err
				}
			}
			if len(p.Contrasts) == 0 {
				return fmt.Errorf("profile: project %q defines no contrasts", p.Name)
			}

			in, err := p.Flatten()
			if err != nil {
				return err
			}
			if err := in.CheckIndices(); err != nil {
				return err
			}

			phaseIdx := in.ContrastBulkOuts[idx] - 1
			logger.Debug("evaluating model",
				"contrast", p.Contrasts[idx].Name,
				"bulk_out", p.Contrasts[idx].BulkOut,
				"absorption", p.Absorption,
			)

			model := bilayer.ModelFor(p.Absorption)
			rows, err := model(in.Params, p.BulkInTable(), p.BulkOutTable(), phaseIdx)
			if err != nil {
				return err
			}

			logger.Info("layer stack built",
				"contrast", p.Contrasts[idx].Name, "layers", len(rows))

			return renderStack(cmd.OutOrStdout(), rows, p.Absorption)
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "path to the project TOML file")
	cmd.Flags().StringVarP(&contrast, "contrast", "c", "", "contrast name (default: first contrast)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// layerNames labels the rows of the symmetric bilayer stack, substrate
// to bulk solvent.
var layerNames = [...]string{"oxide", "water", "head", "tail", "tail", "head"}

// renderStack writes the layer matrix as an aligned table. Rows carry 3
// columns, or 4 when the project models absorption.
func renderStack(w io.Writer, rows [][]float64, absorption bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := "layer\tthickness (Å)\tSLD (Å⁻²)\troughness (Å)"
	if absorption {
		header += "\tSLD imag (Å⁻²)"
	}
	fmt.Fprintln(tw, header)

	for i, row := range rows {
		name := ""
		if i < len(layerNames) {
			name = layerNames[i]
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4e\t%.4f", name, row[0], row[1], row[2])
		if absorption {
			fmt.Fprintf(tw, "\t%.4e", row[3])
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
