package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/template"
)

// BuildScripts renders the build-phase shell scripts into
// genDir/scripts/.
func BuildScripts(info *config.AppInfo) error {
	vars := map[string]string{
		"APP_NAME":       info.TargetName,
		"PROJECT_ROOT":   info.Root,
		"BUILD_STEP":     buildStep(info.BeforeBuildCommand),
		"DIST_DIR":       resolvedDistDir(info),
		"DEV_SERVER_URL": info.DevServerURL,
	}

	scripts := map[string]string{
		"build-frontend.sh": template.BuildFrontend,
		"xcode-script.sh":   template.XcodeScript,
	}

	dir := filepath.Join(info.GenDir, "scripts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	for name, tmpl := range scripts {
		content, err := template.Render(tmpl, vars)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o755); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// buildStep emits the frontend build invocation, or a no-op line when the
// manifest has no beforeBuildCommand. The decision is made here so the
// generated shell never has to test a substituted command string.
func buildStep(command string) string {
	if command == "" {
		return `echo "macforge: no beforeBuildCommand configured, skipping frontend build"`
	}
	return "echo \"macforge: running frontend build\"\n" + command
}

// resolvedDistDir resolves the manifest distDir against src-tauri, the
// same base Tauri uses for relative manifest paths.
func resolvedDistDir(info *config.AppInfo) string {
	if info.DistDir == "" {
		return ""
	}
	if filepath.IsAbs(info.DistDir) {
		return info.DistDir
	}
	return filepath.Join(info.TauriDir, info.DistDir)
}
