package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/devserver"
	"github.com/macforge/macforge/internal/generate"
	"github.com/macforge/macforge/internal/logger"
	"github.com/macforge/macforge/internal/state"
	"github.com/macforge/macforge/internal/terminal"
	"github.com/macforge/macforge/internal/xcode"
)

var (
	devPath    string
	devOpen    bool
	devNoWatch bool
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the frontend dev server",
	Long:  "Ensures the Xcode scaffolding exists, spawns the configured beforeDevCommand and regenerates the project when tauri.conf.json changes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := loadProject(devPath)
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(info.TauriDir)
		if err != nil {
			return err
		}

		if _, err := xcode.FindXcodeproj(info.GenDir); err != nil {
			terminal.Info("No Xcode project found, generating one first.")
			if err := regenerate(cmd.Context(), info, settings); err != nil {
				return err
			}
		}

		if devOpen {
			projectPath, err := xcode.FindXcodeproj(info.GenDir)
			if err != nil {
				return err
			}
			if err := xcode.OpenProject(projectPath, settings.XcodeApp); err != nil {
				return err
			}
		}

		if info.BeforeDevCommand == "" {
			return fmt.Errorf("no dev command configured. Set build.beforeDevCommand in %s", config.ManifestName)
		}

		terminal.Header(fmt.Sprintf("Starting dev server for %s", info.Name))
		terminal.Detail("Command", info.BeforeDevCommand)
		if info.DevServerURL != "" {
			terminal.Detail("URL", info.DevServerURL)
		}

		runner, err := devserver.Start(info.BeforeDevCommand, info.Root, settings.DevShell)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if !devNoWatch {
			manifestPath := filepath.Join(info.TauriDir, config.ManifestName)
			go func() {
				err := devserver.Watch(ctx, manifestPath, func() {
					terminal.Info("tauri.conf.json changed, regenerating project.")
					fresh, err := loadProject(devPath)
					if err != nil {
						terminal.Warning(fmt.Sprintf("Reload failed: %v", err))
						return
					}
					if err := regenerate(ctx, fresh, settings); err != nil {
						terminal.Warning(fmt.Sprintf("Regeneration failed: %v", err))
					}
				})
				if err != nil {
					logger.L().Debugw("manifest watch stopped", "error", err)
				}
			}()
		}

		err = runner.Wait()
		cancel()
		if devserver.Interrupted(err) {
			terminal.Info("Dev server stopped.")
			return nil
		}
		if code := devserver.ExitCode(err); code != 0 {
			terminal.Error(fmt.Sprintf("Dev server exited with status %d", code))
			os.Exit(code)
		}
		return err
	},
}

// regenerate reruns the generators and xcodegen, then refreshes the
// saved project state.
func regenerate(ctx context.Context, info *config.AppInfo, settings *config.Settings) error {
	result, err := generate.Scaffold(info)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		terminal.Warning(w)
	}
	if err := xcode.Generate(ctx, info.GenDir, settings.XcodegenPath); err != nil {
		return err
	}
	return state.NewStore(info.GenDir).Save(&state.Project{
		Name:        info.Name,
		TargetName:  info.TargetName,
		BundleID:    info.BundleID,
		GenDir:      info.GenDir,
		Xcodeproj:   filepath.Join(info.GenDir, info.XcodeprojName()),
		GeneratedAt: time.Now().UTC(),
	})
}

func init() {
	devCmd.Flags().StringVar(&devPath, "path", "", "Directory inside the Tauri project (defaults to the working directory)")
	devCmd.Flags().BoolVar(&devOpen, "open", false, "Open the project in Xcode before starting")
	devCmd.Flags().BoolVar(&devNoWatch, "no-watch", false, "Do not regenerate when tauri.conf.json changes")
}
