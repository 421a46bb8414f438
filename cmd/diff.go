package cmd

import (
	"github.com/spf13/cobra"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
)

var diffCellFlag int

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <notebook>",
		Short: "Compare the staged files with the notebook",
		Long: `Show a unified diff between the files in the staging directory and what
running the cell would stage now.

` + notebookArgHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Diff(cmd.Context(), domain.DiffArgs{
				Location: notebookPath(args),
				Cell:     diffCellFlag,
			})
		},
	}

	configureCellFlag(cmd, &diffCellFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
