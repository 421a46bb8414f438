package cmd

import (
	"github.com/spf13/cobra"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
)

var newForceFlag bool

// newCmd represents the new command.
var newCmd = newNewCmd()

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <notebook>",
		Short: "Create a notebook from the starter template",
		Long: `Write a notebook holding an empty manifest cell and an empty TypeScript
cell, each preceded by a short markdown note.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.New(cmd.Context(), domain.NewArgs{
				Location: notebookPath(args),
				Force:    newForceFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&newForceFlag, "force", "f", false, "overwrite an existing notebook")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCmd)
}
