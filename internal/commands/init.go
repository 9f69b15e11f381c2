package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/generate"
	"github.com/macforge/macforge/internal/state"
	"github.com/macforge/macforge/internal/terminal"
	"github.com/macforge/macforge/internal/xcode"
)

var (
	initPath  string
	initOpen  bool
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the macOS Xcode project",
	Long:  "Reads tauri.conf.json, writes the Xcode scaffolding under src-tauri/gen/macos and runs xcodegen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := loadProject(initPath)
		if err != nil {
			return err
		}

		settings, err := config.LoadSettings(info.TauriDir)
		if err != nil {
			return err
		}

		terminal.Header(fmt.Sprintf("Initializing %s", info.Name))
		terminal.Detail("Bundle ID", info.BundleID)
		terminal.Detail("Target", info.TargetName)
		terminal.Detail("Deployment target", "macOS "+info.DeploymentTarget)

		if initForce {
			if err := removeOwnedFiles(info); err != nil {
				return err
			}
		}

		spinner := terminal.NewSpinner("Generating scaffolding")
		spinner.Start()
		result, err := generate.Scaffold(info)
		if err != nil {
			spinner.Stop()
			return err
		}
		spinner.StopWithMessage(fmt.Sprintf("Scaffolding written to %s (%d resources)", result.GenDir, result.ResourceCount))

		for _, w := range result.Warnings {
			terminal.Warning(w)
		}

		if !config.CheckXcodegen(settings.XcodegenPath) {
			terminal.ToolStatus(config.CheckXcode(), false, config.CheckCocoaPods())
			return fmt.Errorf("xcodegen not found at %q. Install it with `brew install xcodegen` or set xcodegen_path in macforge.yaml", settings.XcodegenPath)
		}

		spinner = terminal.NewSpinner("Running xcodegen")
		spinner.Start()
		if err := xcode.Generate(cmd.Context(), info.GenDir, settings.XcodegenPath); err != nil {
			spinner.Stop()
			return err
		}
		spinner.StopWithMessage("Xcode project generated")

		store := state.NewStore(info.GenDir)
		if err := store.Save(&state.Project{
			Name:        info.Name,
			TargetName:  info.TargetName,
			BundleID:    info.BundleID,
			GenDir:      info.GenDir,
			Xcodeproj:   filepath.Join(info.GenDir, info.XcodeprojName()),
			GeneratedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}

		terminal.Success(fmt.Sprintf("%s is ready", info.XcodeprojName()))

		if initOpen {
			projectPath, err := xcode.FindXcodeproj(info.GenDir)
			if err != nil {
				return err
			}
			return xcode.OpenProject(projectPath, settings.XcodeApp)
		}
		return nil
	},
}

// removeOwnedFiles drops the files init otherwise refuses to overwrite
// so a forced run regenerates them from the manifest.
func removeOwnedFiles(info *config.AppInfo) error {
	for _, path := range []string{
		filepath.Join(info.GenDir, "Podfile"),
		filepath.Join(info.GenDir, "Sources", "main.swift"),
	} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "", "Directory inside the Tauri project (defaults to the working directory)")
	initCmd.Flags().BoolVar(&initOpen, "open", false, "Open the generated project in Xcode")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Regenerate files init normally leaves alone (Podfile, Sources/main.swift)")
}
