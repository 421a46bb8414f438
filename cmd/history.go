package cmd

import (
	"github.com/spf13/cobra"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

const defaultHistoryLimit = 20

var historyLimitFlag int

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [notebook]",
		Short: "List recent cell runs",
		Long: `List recorded runs, newest first. With a notebook only its runs are listed.
Runs are stored in the SQLite database at history.path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var location m.Path
			if len(args) == 1 {
				location = notebookPath(args)
			}

			return workflow.History(cmd.Context(), domain.HistoryArgs{
				Location: location,
				Limit:    historyLimitFlag,
			})
		},
	}

	cmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", defaultHistoryLimit, "maximum number of runs to list (0 lists all)")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
