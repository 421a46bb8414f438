// Package cmd provides the root command and CLI setup for scratchbook.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	"scratchbook.dev/pkg/scratchbook/internal/controller"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// workflow and historyStore are built once the flags are parsed, because the
// UI depends on the output format. Tests replace workflow with a mock.
var workflow domain.Workflow
var historyStore adapter.HistoryStore

// outputFormatFlag selects text, json or yaml output.
var outputFormatFlag string

// verboseFlag mirrors log records to stderr at debug level.
var verboseFlag bool

// logFileFlag overrides the log file path.
var logFileFlag string

const rootLongDescription = `Scratchbook keeps a VS Code extension scratch project in a single notebook
file: a JSON cell holds the package manifest, TypeScript cells hold candidate
entry points.

Running a cell stages the manifest as package.json and the cell as
extension.ts in the workspace staging directory, then type-checks the
staged project and reports the compiler diagnostics.`

const notebookArgHelp = `The notebook is a .scratchbook file. The workspace root is the nearest
directory above it that contains scratchbook.yaml, package.json or .git,
unless workspace.root is configured.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scratchbook",
		Short:         "TypeScript extension scratch notebooks",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if workflow != nil {
				return nil
			}

			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey), cmd.ErrOrStderr())

			return wireWorkflow(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputFormatFlag, outputFlagName, "o",
			viper.GetString(outputFormatKey),
			"output format: text, json or yaml",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFormatKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "also write debug logs to stderr")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from "+logFilenameKey+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// wireWorkflow builds the adapters, the kernel and the UI from the current
// configuration.
func wireWorkflow(cmd *cobra.Command) error {
	format, err := controller.ParseOutputFormat(viper.GetString(outputFormatKey))
	if err != nil {
		return err
	}

	storage := adapter.NewLocalStorageAdapter()
	workspace := newWorkspaceAdapter()
	typescript := adapter.NewNodeTypeScriptAdapter(viper.GetString(compilerNodeKey), compilerTimeout())
	history := adapter.NewSQLiteHistoryStore(m.Path(viper.GetString(historyPathKey)))
	stagingDir := viper.GetString(stagingDirKey)

	kernel := domain.NewKernel(
		workspace,
		domain.NewStager(storage),
		domain.NewCompiler(typescript, storage),
		domain.KernelConfig{StagingDir: stagingDir, Options: compilerOptions()},
	)

	historyStore = history
	workflow = domain.NewWorkflow(
		storage,
		workspace,
		history,
		domain.NewContentProvider(storage),
		kernel,
		controller.NewUI(cmd, controller.IsTTY(os.Stdout), format),
		domain.WorkflowConfig{
			StagingDir: stagingDir,
			BackupDir:  viper.GetString(watchBackupDirKey),
			Debounce:   watchDebounce(),
		},
	)

	slog.Debug("Workflow configured", "staging", stagingDir, "format", format, "config", viper.ConfigFileUsed())

	return nil
}

func newWorkspaceAdapter() adapter.WorkspaceAdapter {
	if root := strings.TrimSpace(viper.GetString(workspaceRootKey)); root != "" {
		return adapter.NewFixedWorkspaceAdapter(m.Path(root))
	}

	return adapter.NewMarkerWorkspaceAdapter(viper.GetStringSlice(workspaceMarkersKey)...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if historyStore != nil {
		if closeErr := historyStore.Close(); closeErr != nil {
			slog.Error("Failed to close history", "error", closeErr)
		}
	}

	if err != nil {
		// A failed compilation was already reported with its diagnostics.
		if !errors.Is(err, domain.ErrCompileFailed) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(1)
	}
}

func notebookPath(args []string) m.Path {
	return m.Path(args[0])
}
