package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/logger"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "macforge",
	Short:   "Generate macOS Xcode projects from a Tauri manifest",
	Long:    "Macforge reads tauri.conf.json and generates the Xcode scaffolding (project.yml, Info.plist, entitlements, build scripts) for a native macOS build.",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verboseFlag)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(devCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(mcpCmd)
}

// verboseFlag holds the --verbose flag value.
var verboseFlag bool

// loadProject resolves the project starting from the --path flag
// value, or the working directory when the flag is empty.
func loadProject(path string) (*config.AppInfo, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = wd
	}
	return config.Load(path)
}
