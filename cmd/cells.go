package cmd

import (
	"github.com/spf13/cobra"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
)

// cellsCmd represents the cells command.
var cellsCmd = newCellsCmd()

func newCellsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cells <notebook>",
		Short: "List the cells of a notebook",
		Long:  "List each cell's index, kind, language and first line. The manifest cell is marked.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Cells(cmd.Context(), domain.CellsArgs{Location: notebookPath(args)})
		},
	}
}

func init() {
	rootCmd.AddCommand(cellsCmd)
}
