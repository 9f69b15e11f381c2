package generate

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScriptsStageDistOutput(t *testing.T) {
	info := testAppInfo()
	info.GenDir = t.TempDir()
	info.BeforeBuildCommand = "npm run build"
	info.DistDir = "../dist"

	require.NoError(t, BuildScripts(info))

	data, err := os.ReadFile(filepath.Join(info.GenDir, "scripts", "build-frontend.sh"))
	require.NoError(t, err)
	script := string(data)

	assert.Contains(t, script, "npm run build")
	// distDir resolves against src-tauri, so ../dist lands at the root.
	assert.Contains(t, script, `DIST_DIR="`+filepath.Join("/proj", "dist")+`"`)
	assert.Contains(t, script, "$CODESIGNING_FOLDER_PATH/Contents/Resources/dist")
	assert.Contains(t, script, `cp -R "$DIST_DIR"/.`)
}

func TestBuildScriptsWithoutBuildCommand(t *testing.T) {
	info := testAppInfo()
	info.GenDir = t.TempDir()
	info.BeforeBuildCommand = ""
	info.DistDir = "dist"

	require.NoError(t, BuildScripts(info))

	data, err := os.ReadFile(filepath.Join(info.GenDir, "scripts", "build-frontend.sh"))
	require.NoError(t, err)
	script := string(data)

	assert.Contains(t, script, "no beforeBuildCommand configured")
	assert.NotContains(t, script, "[ -n")
}

func TestBuildScriptsCommandWithQuotes(t *testing.T) {
	info := testAppInfo()
	info.GenDir = t.TempDir()
	info.BeforeBuildCommand = `sh -c "npm run build"`
	info.DistDir = "dist"

	require.NoError(t, BuildScripts(info))

	data, err := os.ReadFile(filepath.Join(info.GenDir, "scripts", "build-frontend.sh"))
	require.NoError(t, err)
	script := string(data)

	// The command is emitted verbatim on its own line, never inside a
	// shell test where its quotes would break the script.
	assert.Contains(t, script, "\n"+info.BeforeBuildCommand+"\n")
	assert.NotContains(t, script, `[ -n "sh -c`)
}

func TestResolvedDistDir(t *testing.T) {
	info := testAppInfo()

	info.DistDir = ""
	assert.Equal(t, "", resolvedDistDir(info))

	info.DistDir = "../dist"
	assert.Equal(t, filepath.Join("/proj", "dist"), resolvedDistDir(info))

	info.DistDir = "/abs/dist"
	assert.Equal(t, "/abs/dist", resolvedDistDir(info))
}

// Runs the generated script end to end with a fake Xcode environment and
// checks the dist output lands inside the bundle.
func TestBuildFrontendScriptStagesIntoBundle(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	root := t.TempDir()
	tauriDir := filepath.Join(root, "src-tauri")
	distDir := filepath.Join(root, "dist")
	require.NoError(t, os.MkdirAll(tauriDir, 0o755))
	require.NoError(t, os.MkdirAll(distDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(distDir, "index.html"), []byte("<html></html>"), 0o644))

	info := testAppInfo()
	info.Root = root
	info.TauriDir = tauriDir
	info.GenDir = filepath.Join(tauriDir, "gen", "macos")
	info.BeforeBuildCommand = "true"
	info.DistDir = "../dist"

	require.NoError(t, BuildScripts(info))

	bundle := filepath.Join(t.TempDir(), "FaveFoods.app")
	cmd := exec.Command("sh", filepath.Join(info.GenDir, "scripts", "build-frontend.sh"))
	cmd.Env = append(os.Environ(), "CODESIGNING_FOLDER_PATH="+bundle)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "script output: %s", out)

	staged := filepath.Join(bundle, "Contents", "Resources", "dist", "index.html")
	_, err = os.Stat(staged)
	assert.NoError(t, err, "dist output not staged into the bundle")
}
