package cmd

import (
	"github.com/spf13/cobra"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// backupCmd represents the backup command.
var backupCmd = newBackupCmd()

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <notebook> [destination]",
		Short: "Write a backup copy of a notebook",
		Long:  "Write the notebook's cells to destination, or to <notebook>.bak when no destination is given.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			backupArgs := domain.BackupArgs{Location: notebookPath(args)}
			if len(args) == 2 {
				backupArgs.Destination = m.Path(args[1])
			}

			return workflow.Backup(cmd.Context(), backupArgs)
		},
	}
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
