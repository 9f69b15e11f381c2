package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsName is the optional per-project tool settings file, read from
// src-tauri/macforge.yaml.
const SettingsName = "macforge.yaml"

// Settings holds tool-level overrides that do not belong in the app
// manifest.
type Settings struct {
	// XcodegenPath overrides the xcodegen binary resolved from PATH.
	XcodegenPath string `yaml:"xcodegen_path"`
	// XcodeApp is the application used to open the generated project.
	XcodeApp string `yaml:"xcode_app"`
	// DevShell is the shell used to run dev/build commands.
	DevShell string `yaml:"dev_shell"`
}

// LoadSettings reads macforge.yaml from the src-tauri directory. A missing
// file yields the defaults, not an error.
func LoadSettings(tauriDir string) (*Settings, error) {
	s := &Settings{
		XcodegenPath: "xcodegen",
		XcodeApp:     "Xcode",
		DevShell:     "sh",
	}

	data, err := os.ReadFile(filepath.Join(tauriDir, SettingsName))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", SettingsName, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsName, err)
	}
	if s.XcodegenPath == "" {
		s.XcodegenPath = "xcodegen"
	}
	if s.XcodeApp == "" {
		s.XcodeApp = "Xcode"
	}
	if s.DevShell == "" {
		s.DevShell = "sh"
	}
	return s, nil
}
