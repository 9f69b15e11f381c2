package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the Tauri application manifest file name.
const ManifestName = "tauri.conf.json"

// MarkerDir is the directory that marks a Tauri project root.
const MarkerDir = "src-tauri"

// Manifest mirrors the subset of tauri.conf.json that macforge consumes.
type Manifest struct {
	Package PackageConfig `json:"package"`
	Build   BuildConfig   `json:"build"`
	Tauri   TauriConfig   `json:"tauri"`
}

// PackageConfig holds the app name and version.
type PackageConfig struct {
	ProductName string `json:"productName"`
	Version     string `json:"version"`
}

// BuildConfig holds the frontend build/dev configuration.
type BuildConfig struct {
	DevPath            string `json:"devPath"`
	DistDir            string `json:"distDir"`
	BeforeDevCommand   string `json:"beforeDevCommand"`
	BeforeBuildCommand string `json:"beforeBuildCommand"`
}

// TauriConfig wraps the tauri-specific manifest section.
type TauriConfig struct {
	Bundle BundleConfig `json:"bundle"`
}

// BundleConfig describes how the app bundle is assembled.
type BundleConfig struct {
	Identifier       string            `json:"identifier"`
	Category         string            `json:"category"`
	Copyright        string            `json:"copyright"`
	Resources        []string          `json:"resources"`
	Icon             []string          `json:"icon"`
	FileAssociations []FileAssociation `json:"fileAssociations"`
	MacOS            MacConfig         `json:"macOS"`
}

// FileAssociation declares a document type the app can open.
type FileAssociation struct {
	Ext         []string `json:"ext"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Role        string   `json:"role"`
}

// MacConfig holds the macOS-specific bundle settings.
type MacConfig struct {
	MinimumSystemVersion string            `json:"minimumSystemVersion"`
	Frameworks           []string          `json:"frameworks"`
	Files                map[string]string `json:"files"`
	Entitlements         string            `json:"entitlements"`
	InfoPlistPath        string            `json:"infoPlistPath"`
	SigningIdentity      string            `json:"signingIdentity"`
	ExceptionDomain      string            `json:"exceptionDomain"`
}

// LoadManifest reads and parses src-tauri/tauri.conf.json under root.
func LoadManifest(root string) (*Manifest, error) {
	path := filepath.Join(root, MarkerDir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s found at %s", ManifestName, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &m, nil
}
