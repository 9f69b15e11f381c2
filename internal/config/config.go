package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// AppInfo is the normalized application record derived from the manifest.
// All paths are absolute.
type AppInfo struct {
	// Name is the product name as displayed to users.
	Name string
	// TargetName is the PascalCase Xcode target/scheme name.
	TargetName string

	BundleID         string
	Version          string
	DeploymentTarget string
	// CategoryUTI is the LSApplicationCategoryType value, empty when the
	// manifest sets no category.
	CategoryUTI string
	Copyright   string

	// Resources are the raw manifest resource patterns, expanded later
	// against the project root.
	Resources []string
	// Files maps bundle-relative destinations to source paths copied
	// verbatim into Contents/.
	Files      map[string]string
	Frameworks []string

	FileAssociations []FileAssociation

	// IconPath is the source PNG used for the asset catalog, empty when
	// the manifest declares no usable icon.
	IconPath            string
	EntitlementsPath    string
	CustomInfoPlistPath string
	SigningIdentity     string

	DevServerURL       string
	DistDir            string
	BeforeDevCommand   string
	BeforeBuildCommand string

	// Root is the project root (the directory containing src-tauri).
	Root string
	// TauriDir is Root/src-tauri.
	TauriDir string
	// GenDir is where all generated scaffolding lives.
	GenDir string
}

// DefaultDeploymentTarget is used when the manifest does not set
// minimumSystemVersion.
const DefaultDeploymentTarget = "10.13"

// FindProjectRoot walks up from start looking for a directory containing
// the src-tauri marker directory.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		marker := filepath.Join(dir, MarkerDir)
		if fi, err := os.Stat(marker); err == nil && fi.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s directory found in %s or any parent directory", MarkerDir, start)
		}
		dir = parent
	}
}

// DeriveAppInfo normalizes a parsed manifest into an AppInfo rooted at the
// given project root.
func DeriveAppInfo(m *Manifest, root string) (*AppInfo, error) {
	name := strings.TrimSpace(m.Package.ProductName)
	if name == "" {
		return nil, fmt.Errorf("manifest is missing package.productName")
	}

	bundleID := strings.TrimSpace(m.Tauri.Bundle.Identifier)
	if bundleID == "" {
		return nil, fmt.Errorf("manifest is missing tauri.bundle.identifier")
	}

	version := m.Package.Version
	if version == "" {
		version = "0.1.0"
	}

	var categoryUTI string
	if m.Tauri.Bundle.Category != "" {
		uti, err := CategoryUTI(m.Tauri.Bundle.Category)
		if err != nil {
			return nil, err
		}
		categoryUTI = uti
	}

	deployment := m.Tauri.Bundle.MacOS.MinimumSystemVersion
	if deployment == "" {
		deployment = DefaultDeploymentTarget
	}

	tauriDir := filepath.Join(root, MarkerDir)

	info := &AppInfo{
		Name:               name,
		TargetName:         PascalCase(name),
		BundleID:           bundleID,
		Version:            version,
		DeploymentTarget:   deployment,
		CategoryUTI:        categoryUTI,
		Copyright:          m.Tauri.Bundle.Copyright,
		Resources:          m.Tauri.Bundle.Resources,
		Files:              m.Tauri.Bundle.MacOS.Files,
		Frameworks:         m.Tauri.Bundle.MacOS.Frameworks,
		FileAssociations:   m.Tauri.Bundle.FileAssociations,
		SigningIdentity:    m.Tauri.Bundle.MacOS.SigningIdentity,
		DevServerURL:       m.Build.DevPath,
		DistDir:            m.Build.DistDir,
		BeforeDevCommand:   m.Build.BeforeDevCommand,
		BeforeBuildCommand: m.Build.BeforeBuildCommand,
		Root:               root,
		TauriDir:           tauriDir,
		GenDir:             filepath.Join(tauriDir, "gen", "macos"),
	}

	if icon := pickIconSource(m.Tauri.Bundle.Icon); icon != "" {
		info.IconPath = resolveTauriPath(tauriDir, icon)
	}
	if p := m.Tauri.Bundle.MacOS.Entitlements; p != "" {
		info.EntitlementsPath = resolveTauriPath(tauriDir, p)
	}
	if p := m.Tauri.Bundle.MacOS.InfoPlistPath; p != "" {
		info.CustomInfoPlistPath = resolveTauriPath(tauriDir, p)
	}

	return info, nil
}

// Load is the one-stop entry used by the CLI: locate the root from start,
// parse the manifest, and derive the app info.
func Load(start string) (*AppInfo, error) {
	root, err := FindProjectRoot(start)
	if err != nil {
		return nil, err
	}
	m, err := LoadManifest(root)
	if err != nil {
		return nil, err
	}
	return DeriveAppInfo(m, root)
}

// XcodeprojName returns the name of the generated Xcode project bundle.
func (a *AppInfo) XcodeprojName() string {
	return a.TargetName + ".xcodeproj"
}

// pickIconSource returns the first .png entry from the manifest icon list.
// Tauri manifests list .png, .icns and .ico variants together; only the
// PNG is usable as a resampling source.
func pickIconSource(icons []string) string {
	for _, ic := range icons {
		if strings.EqualFold(filepath.Ext(ic), ".png") {
			return ic
		}
	}
	return ""
}

// resolveTauriPath resolves a manifest-relative path against src-tauri.
func resolveTauriPath(tauriDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(tauriDir, p)
}

// PascalCase converts a product name to a PascalCase identifier suitable
// for Xcode target and scheme names.
func PascalCase(name string) string {
	var b strings.Builder
	capitalizeNext := true

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if capitalizeNext {
				b.WriteRune(unicode.ToUpper(r))
				capitalizeNext = false
			} else {
				b.WriteRune(r)
			}
		} else {
			capitalizeNext = true
		}
	}
	return b.String()
}
