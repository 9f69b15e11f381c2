// Package resources resolves manifest resource patterns into concrete
// file mappings for the generated bundle.
package resources

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Mapping pairs a source file (relative to src-tauri, slash-separated)
// with its destination inside the bundle's Resources directory.
type Mapping struct {
	Src  string
	Dest string
}

// Expand resolves each manifest resource pattern against the src-tauri
// directory. Glob matches keep their directory structure relative to the
// pattern's static prefix; plain paths map to their base name. Patterns
// must stay inside the project tree: absolute paths and ".." segments are
// rejected.
func Expand(tauriDir string, patterns []string) ([]Mapping, error) {
	fsys := os.DirFS(tauriDir)

	var out []Mapping
	seen := make(map[string]bool)

	for _, raw := range patterns {
		pattern := filepath.ToSlash(strings.TrimSpace(raw))
		if pattern == "" {
			continue
		}
		if err := validatePattern(pattern); err != nil {
			return nil, err
		}

		if !hasGlobMeta(pattern) {
			if err := appendPlain(fsys, pattern, seen, &out); err != nil {
				return nil, err
			}
			continue
		}

		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid resource pattern %q: %w", raw, err)
		}

		prefix := staticPrefix(pattern)
		for _, m := range matches {
			fi, err := fs.Stat(fsys, m)
			if err != nil || fi.IsDir() {
				continue
			}
			dest := m
			if prefix != "" {
				dest = strings.TrimPrefix(m, prefix+"/")
			}
			addMapping(Mapping{Src: m, Dest: dest}, seen, &out)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Src < out[j].Src })
	return out, nil
}

func appendPlain(fsys fs.FS, pattern string, seen map[string]bool, out *[]Mapping) error {
	fi, err := fs.Stat(fsys, pattern)
	if err != nil {
		return fmt.Errorf("resource %q not found: %w", pattern, err)
	}
	if fi.IsDir() {
		// A bare directory behaves like dir/** with the directory name kept.
		return fs.WalkDir(fsys, pattern, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			dest := strings.TrimPrefix(p, path.Dir(pattern)+"/")
			if path.Dir(pattern) == "." {
				dest = p
			}
			addMapping(Mapping{Src: p, Dest: dest}, seen, out)
			return nil
		})
	}
	addMapping(Mapping{Src: pattern, Dest: path.Base(pattern)}, seen, out)
	return nil
}

func addMapping(m Mapping, seen map[string]bool, out *[]Mapping) {
	if seen[m.Src] {
		return
	}
	seen[m.Src] = true
	*out = append(*out, m)
}

func validatePattern(pattern string) error {
	if path.IsAbs(pattern) || filepath.IsAbs(pattern) {
		return fmt.Errorf("resource pattern %q must be relative to %s", pattern, "src-tauri")
	}
	for _, seg := range strings.Split(pattern, "/") {
		if seg == ".." {
			return fmt.Errorf("resource pattern %q must not escape the project directory", pattern)
		}
	}
	return nil
}

// hasGlobMeta reports whether the pattern contains glob syntax.
func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// staticPrefix returns the leading directory segments of a pattern that
// contain no glob characters. For "assets/img/*.png" it returns
// "assets/img".
func staticPrefix(pattern string) string {
	segs := strings.Split(pattern, "/")
	var static []string
	for _, seg := range segs {
		if hasGlobMeta(seg) {
			break
		}
		static = append(static, seg)
	}
	// The last static segment before a meta segment is a directory; a
	// fully static pattern is handled by the plain-path branch.
	if len(static) == len(segs) && len(static) > 0 {
		static = static[:len(static)-1]
	}
	return strings.Join(static, "/")
}
