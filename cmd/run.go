package cmd

import (
	"github.com/spf13/cobra"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
)

const runLongDescription = `Stage the manifest cell and one code cell, then type-check the staged
project and report its diagnostics. Without --cell the first code cell that
is not the manifest runs. Exits non-zero when the compiler skipped emission.

` + notebookArgHelp

var runCellFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <notebook>",
		Short: "Run one cell of a notebook",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Location: notebookPath(args),
				Cell:     runCellFlag,
			})
		},
	}

	configureCellFlag(cmd, &runCellFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// configureCellFlag adds the --cell flag selecting the cell to run.
func configureCellFlag(cmd *cobra.Command, target *int) {
	cmd.Flags().IntVarP(target, cellFlagName, "c", domain.AutoCell, "index of the cell to run (default: first code cell)")
}
