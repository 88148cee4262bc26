package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/mend/internal/app"
	"go.trai.ch/mend/internal/engine/repair"
)

func (c *CLI) newRepairCmd() *cobra.Command {
	var (
		lockedPath string
		exportDir  string
	)

	cmd := &cobra.Command{
		Use:   "repair [project-root]",
		Short: "Prune unresolvable packages until the manifest installs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			req := app.RepairRequest{
				ProjectRoot: root,
				ExportDir:   exportDir,
			}
			if lockedPath != "" {
				locked, err := c.components.LockedSets.Load(lockedPath)
				if err != nil {
					return err
				}
				req.Locked = locked
			}

			report, err := c.components.App.Repair(cmd.Context(), req)
			if report != nil {
				renderSummary(cmd.OutOrStdout(), report)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&lockedPath, "locked", "", "Path to the locked dependency file")
	cmd.Flags().StringVar(&exportDir, "export-dir", "mend-report", "Directory for the removal audit documents")

	return cmd
}

// renderSummary prints the run outcome and per-bucket removal counts.
func renderSummary(w io.Writer, report *app.RepairReport) {
	state := report.Result.State
	paint := color.New(color.FgRed)
	switch state {
	case repair.StateSuccess:
		paint = color.New(color.FgGreen)
	case repair.StateExhausted:
		paint = color.New(color.FgYellow)
	}

	_, _ = paint.Fprintf(w, "repair %s", state)
	_, _ = fmt.Fprintf(w, " after %d of %d attempt(s)\n", report.Result.Attempts, report.Result.Budget+1)

	rec := report.Record
	_, _ = fmt.Fprintf(w, "  removed dependencies:    %d local, %d locked\n",
		len(rec.LocalDependencies), len(rec.LockedDependencies))
	_, _ = fmt.Fprintf(w, "  removed devDependencies: %d local, %d locked\n",
		len(rec.LocalDevDependencies), len(rec.LockedDevDependencies))
	_, _ = fmt.Fprintf(w, "  removed scripts:         %d\n", len(rec.Scripts))
}
