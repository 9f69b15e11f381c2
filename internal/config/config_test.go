package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
  "package": { "productName": "fave foods", "version": "1.2.3" },
  "build": {
    "devPath": "http://localhost:3000",
    "distDir": "../dist",
    "beforeDevCommand": "npm run dev",
    "beforeBuildCommand": "npm run build"
  },
  "tauri": {
    "bundle": {
      "identifier": "com.example.favefoods",
      "category": "DeveloperTool",
      "copyright": "© 2026 Example Corp",
      "resources": ["assets/*", "data/config.json"],
      "icon": ["icons/32x32.png", "icons/icon.icns", "icons/icon.png"],
      "fileAssociations": [
        { "ext": ["ffd"], "name": "Fave Document", "role": "Editor" }
      ],
      "macOS": {
        "minimumSystemVersion": "11.0",
        "frameworks": ["WebKit"],
        "entitlements": "App.entitlements",
        "infoPlistPath": "Info.extra.plist"
      }
    }
  }
}`

// writeProject lays out a minimal Tauri project under a temp dir and
// returns its root.
func writeProject(t *testing.T, manifest string) string {
	t.Helper()
	root := t.TempDir()
	tauriDir := filepath.Join(root, MarkerDir)
	require.NoError(t, os.MkdirAll(tauriDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tauriDir, ManifestName), []byte(manifest), 0o644))
	return root
}

func TestFindProjectRootWalksUp(t *testing.T) {
	root := writeProject(t, sampleManifest)
	nested := filepath.Join(root, "src", "components", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindProjectRoot(nested)
	require.NoError(t, err)

	// Resolve symlinks so the comparison survives /tmp -> /private/tmp.
	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestFindProjectRootMissing(t *testing.T) {
	_, err := FindProjectRoot(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), MarkerDir)
}

func TestLoadManifestMissing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, MarkerDir), 0o755))

	_, err := LoadManifest(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ManifestName)
}

func TestLoadManifestMalformed(t *testing.T) {
	root := writeProject(t, "{not json")
	_, err := LoadManifest(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestDeriveAppInfo(t *testing.T) {
	root := writeProject(t, sampleManifest)
	m, err := LoadManifest(root)
	require.NoError(t, err)

	info, err := DeriveAppInfo(m, root)
	require.NoError(t, err)

	assert.Equal(t, "fave foods", info.Name)
	assert.Equal(t, "FaveFoods", info.TargetName)
	assert.Equal(t, "com.example.favefoods", info.BundleID)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "11.0", info.DeploymentTarget)
	assert.Equal(t, "public.app-category.developer-tools", info.CategoryUTI)
	assert.Equal(t, "© 2026 Example Corp", info.Copyright)
	assert.Equal(t, []string{"assets/*", "data/config.json"}, info.Resources)
	assert.Equal(t, []string{"WebKit"}, info.Frameworks)
	assert.Equal(t, "http://localhost:3000", info.DevServerURL)

	tauriDir := filepath.Join(root, MarkerDir)
	assert.Equal(t, filepath.Join(tauriDir, "icons", "icon.png"), info.IconPath)
	assert.Equal(t, filepath.Join(tauriDir, "App.entitlements"), info.EntitlementsPath)
	assert.Equal(t, filepath.Join(tauriDir, "Info.extra.plist"), info.CustomInfoPlistPath)
	assert.Equal(t, filepath.Join(tauriDir, "gen", "macos"), info.GenDir)
	assert.Equal(t, "FaveFoods.xcodeproj", info.XcodeprojName())
}

func TestDeriveAppInfoDefaults(t *testing.T) {
	m := &Manifest{}
	m.Package.ProductName = "App"
	m.Tauri.Bundle.Identifier = "com.example.app"

	info, err := DeriveAppInfo(m, "/proj")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", info.Version)
	assert.Equal(t, DefaultDeploymentTarget, info.DeploymentTarget)
	assert.Empty(t, info.CategoryUTI)
	assert.Empty(t, info.IconPath)
}

func TestDeriveAppInfoMissingFields(t *testing.T) {
	m := &Manifest{}
	_, err := DeriveAppInfo(m, "/proj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "productName")

	m.Package.ProductName = "App"
	_, err = DeriveAppInfo(m, "/proj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identifier")
}

func TestDeriveAppInfoBadCategory(t *testing.T) {
	m := &Manifest{}
	m.Package.ProductName = "App"
	m.Tauri.Bundle.Identifier = "com.example.app"
	m.Tauri.Bundle.Category = "Bogus"

	_, err := DeriveAppInfo(m, "/proj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bogus")
}

func TestCategoryUTI(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"DeveloperTool", "public.app-category.developer-tools"},
		{"Developer Tool", "public.app-category.developer-tools"},
		{"developer-tools", "public.app-category.developer-tools"},
		{"Utility", "public.app-category.utilities"},
		{"Utilities", "public.app-category.utilities"},
		{"Game", "public.app-category.games"},
		{"PuzzleGame", "public.app-category.puzzle-games"},
		{"Healthcare and Fitness", "public.app-category.healthcare-fitness"},
	}
	for _, c := range cases {
		got, err := CategoryUTI(c.in)
		if err != nil {
			t.Errorf("CategoryUTI(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("CategoryUTI(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := CategoryUTI("NotACategory"); err == nil {
		t.Error("CategoryUTI should reject unknown categories")
	}
}

func TestPascalCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"fave foods", "FaveFoods"},
		{"my-app", "MyApp"},
		{"Already", "Already"},
		{"app 2 go", "App2Go"},
		{"", ""},
	}
	for _, c := range cases {
		if got := PascalCase(c.in); got != c.want {
			t.Errorf("PascalCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "xcodegen", s.XcodegenPath)
	assert.Equal(t, "Xcode", s.XcodeApp)
	assert.Equal(t, "sh", s.DevShell)
}

func TestLoadSettingsOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "xcodegen_path: /opt/homebrew/bin/xcodegen\nxcode_app: Xcode-beta\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsName), []byte(content), 0o644))

	s, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/homebrew/bin/xcodegen", s.XcodegenPath)
	assert.Equal(t, "Xcode-beta", s.XcodeApp)
	assert.Equal(t, "sh", s.DevShell)
}
