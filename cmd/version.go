package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:              "version",
		Short:            "Show the scratchbook build and the compiler runtime it uses",
		Long:             "Print the scratchbook module version, the Go toolchain it was built with and the node binary that type-checks staged cells.",
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := "unknown", "unknown"

			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" {
					version = info.Main.Version
				}

				goVersion = info.GoVersion
			}

			cmd.Println("scratchbook\t", version)
			cmd.Println("go\t\t", goVersion)
			cmd.Println("compiler node\t", viper.GetString(compilerNodeKey))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
