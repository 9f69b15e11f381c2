package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/xcode"
)

var openPath string

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the generated project in Xcode",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := loadProject(openPath)
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(info.TauriDir)
		if err != nil {
			return err
		}
		projectPath, err := xcode.FindXcodeproj(info.GenDir)
		if err != nil {
			return fmt.Errorf("no Xcode project found. Run `macforge init` first")
		}
		return xcode.OpenProject(projectPath, settings.XcodeApp)
	},
}

func init() {
	openCmd.Flags().StringVar(&openPath, "path", "", "Directory inside the Tauri project (defaults to the working directory)")
}
