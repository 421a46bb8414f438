package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
)

var watchCellFlag int

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <notebook>",
		Short: "Rerun a cell every time the notebook is saved",
		Long: `Run the cell, then run it again after every save of the notebook until
interrupted. The content of the last successful run is kept as a
.last-good backup next to the notebook (or in watch.backup_dir).

` + notebookArgHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{
				Location: notebookPath(args),
				Cell:     watchCellFlag,
			})
		},
	}

	configureCellFlag(cmd, &watchCellFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
