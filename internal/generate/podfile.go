package generate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/template"
)

// podfileMarker identifies a macforge-managed Podfile. Users who remove
// it take ownership and macforge stops regenerating the file.
const podfileMarker = "Generated by macforge"

// PodfileContent renders the CocoaPods dependency manifest.
func PodfileContent(info *config.AppInfo) (string, error) {
	return template.Render(template.Podfile, map[string]string{
		"APP_NAME":          info.TargetName,
		"DEPLOYMENT_TARGET": info.DeploymentTarget,
	})
}

// WritePodfile writes the Podfile unless a user-owned one already exists.
// Returns true when the file was written.
func WritePodfile(genDir string, content string) (bool, error) {
	path := filepath.Join(genDir, "Podfile")
	existing, err := os.ReadFile(path)
	if err == nil && !strings.Contains(string(existing), podfileMarker) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	return true, os.WriteFile(path, []byte(content), 0o644)
}
