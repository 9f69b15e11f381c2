package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the given relative files under a temp dir.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		full := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
	return dir
}

func TestExpandPlainPath(t *testing.T) {
	dir := writeTree(t, "data/config.json")

	got, err := Expand(dir, []string{"data/config.json"})
	require.NoError(t, err)
	assert.Equal(t, []Mapping{{Src: "data/config.json", Dest: "config.json"}}, got)
}

func TestExpandPlainPathMissing(t *testing.T) {
	dir := writeTree(t)
	_, err := Expand(dir, []string{"data/missing.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestExpandGlobKeepsStructureRelativeToPrefix(t *testing.T) {
	dir := writeTree(t,
		"assets/logo.png",
		"assets/img/banner.png",
		"assets/img/deep/tile.png",
	)

	got, err := Expand(dir, []string{"assets/**/*.png"})
	require.NoError(t, err)
	assert.Equal(t, []Mapping{
		{Src: "assets/img/banner.png", Dest: "img/banner.png"},
		{Src: "assets/img/deep/tile.png", Dest: "img/deep/tile.png"},
		{Src: "assets/logo.png", Dest: "logo.png"},
	}, got)
}

func TestExpandStarSkipsDirectories(t *testing.T) {
	dir := writeTree(t, "assets/a.txt", "assets/sub/b.txt")

	got, err := Expand(dir, []string{"assets/*"})
	require.NoError(t, err)
	assert.Equal(t, []Mapping{{Src: "assets/a.txt", Dest: "a.txt"}}, got)
}

func TestExpandGlobNoMatches(t *testing.T) {
	dir := writeTree(t, "assets/a.txt")

	got, err := Expand(dir, []string{"sounds/*.wav"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpandDirectoryRecurses(t *testing.T) {
	dir := writeTree(t, "locales/en.json", "locales/fr/extra.json")

	got, err := Expand(dir, []string{"locales"})
	require.NoError(t, err)
	assert.Equal(t, []Mapping{
		{Src: "locales/en.json", Dest: "locales/en.json"},
		{Src: "locales/fr/extra.json", Dest: "locales/fr/extra.json"},
	}, got)
}

func TestExpandDeduplicatesAcrossPatterns(t *testing.T) {
	dir := writeTree(t, "assets/a.txt")

	got, err := Expand(dir, []string{"assets/*.txt", "assets/a.txt"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "assets/a.txt", got[0].Src)
}

func TestExpandRejectsEscapes(t *testing.T) {
	dir := writeTree(t, "assets/a.txt")

	_, err := Expand(dir, []string{"../outside/*.txt"})
	require.Error(t, err)

	_, err = Expand(dir, []string{"/etc/passwd"})
	require.Error(t, err)
}

func TestStaticPrefix(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"assets/*", "assets"},
		{"assets/img/*.png", "assets/img"},
		{"assets/**/*.png", "assets"},
		{"*.png", ""},
	}
	for _, c := range cases {
		if got := staticPrefix(c.pattern); got != c.want {
			t.Errorf("staticPrefix(%q) = %q, want %q", c.pattern, got, c.want)
		}
	}
}
