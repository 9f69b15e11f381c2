package generate

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a side x side PNG and returns its path.
func writeTestPNG(t *testing.T, dir string, side int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, "icon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestAppIconFullMatrix(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, 1024)
	genDir := filepath.Join(dir, "gen")

	res, err := AppIcon(src, genDir)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings, "1024px source covers every slot")

	setDir := filepath.Join(genDir, "Assets.xcassets", "AppIcon.appiconset")
	for _, slot := range macIconSlots {
		path := filepath.Join(setDir, slot.filename())
		f, err := os.Open(path)
		require.NoError(t, err, "missing %s", slot.filename())
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, slot.pixels(), cfg.Width, "%s width", slot.filename())
		assert.Equal(t, slot.pixels(), cfg.Height, "%s height", slot.filename())
	}
}

func TestAppIconContentsJSON(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, 1024)
	genDir := filepath.Join(dir, "gen")

	_, err := AppIcon(src, genDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(genDir, "Assets.xcassets", "AppIcon.appiconset", "Contents.json"))
	require.NoError(t, err)

	var doc struct {
		Images []assetImage `json:"images"`
		Info   assetInfo    `json:"info"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Images, len(macIconSlots))
	assert.Equal(t, 1, doc.Info.Version)
	for _, img := range doc.Images {
		assert.Equal(t, "mac", img.Idiom)
	}

	// Catalog root Contents.json must exist too.
	_, err = os.Stat(filepath.Join(genDir, "Assets.xcassets", "Contents.json"))
	assert.NoError(t, err)
}

func TestAppIconSmallSourceNeverUpscales(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, 64)
	genDir := filepath.Join(dir, "gen")

	res, err := AppIcon(src, genDir)
	require.NoError(t, err)

	// Slots above 64px (128@1x and up) keep the 64px source and warn.
	assert.NotEmpty(t, res.Warnings)

	setDir := filepath.Join(genDir, "Assets.xcassets", "AppIcon.appiconset")
	f, err := os.Open(filepath.Join(setDir, "icon_512x512@2x.png"))
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width, "oversized slot keeps source dimensions")
}

func TestAppIconRejectsNonPNG(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "icon.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))

	_, err := AppIcon(bad, filepath.Join(dir, "gen"))
	require.Error(t, err)
}
