package generate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/logger"
	"github.com/macforge/macforge/internal/resources"
	"github.com/macforge/macforge/internal/template"
)

// Result summarizes a scaffolding run.
type Result struct {
	GenDir        string
	ResourceCount int
	Warnings      []string
}

// Scaffold runs every generator: resource staging, project.yml,
// Info.plist, entitlements, Podfile, build scripts, asset catalog and the
// Sources stub. It is idempotent; user-owned files (Podfile without the
// marker, existing main.swift) are left alone.
func Scaffold(info *config.AppInfo) (*Result, error) {
	res := &Result{GenDir: info.GenDir}

	for _, dir := range []string{
		info.GenDir,
		filepath.Join(info.GenDir, "Sources"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	mappings, err := resources.Expand(info.TauriDir, info.Resources)
	if err != nil {
		return nil, err
	}
	if err := stageResources(info, mappings); err != nil {
		return nil, err
	}
	res.ResourceCount = len(mappings)
	logger.L().Debugw("staged resources", "count", len(mappings))

	yml := ProjectYAML(info, mappings)
	if err := os.WriteFile(filepath.Join(info.GenDir, "project.yml"), []byte(yml), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write project.yml: %w", err)
	}

	infoPlist, err := InfoPlist(info)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(info.GenDir, "Info.plist"), infoPlist, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write Info.plist: %w", err)
	}

	ents, err := EntitlementsPlist(info)
	if err != nil {
		return nil, err
	}
	entPath := filepath.Join(info.GenDir, info.TargetName+".entitlements")
	if err := os.WriteFile(entPath, ents, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write entitlements: %w", err)
	}

	podfile, err := PodfileContent(info)
	if err != nil {
		return nil, err
	}
	written, err := WritePodfile(info.GenDir, podfile)
	if err != nil {
		return nil, fmt.Errorf("failed to write Podfile: %w", err)
	}
	if !written {
		res.Warnings = append(res.Warnings, "Podfile is user-owned, left unchanged")
	}

	if err := BuildScripts(info); err != nil {
		return nil, err
	}

	if info.IconPath != "" {
		iconRes, err := AppIcon(info.IconPath, info.GenDir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				res.Warnings = append(res.Warnings, fmt.Sprintf("icon %s not found, asset catalog skipped", info.IconPath))
			} else {
				return nil, err
			}
		} else {
			res.Warnings = append(res.Warnings, iconRes.Warnings...)
		}
	} else {
		res.Warnings = append(res.Warnings, "no PNG icon in manifest, asset catalog skipped")
	}

	if err := writeMainStub(info); err != nil {
		return nil, err
	}

	return res, nil
}

// stageResources copies expanded resource files into genDir/Resources,
// replacing the previous staging so removed resources do not linger.
func stageResources(info *config.AppInfo, mappings []resources.Mapping) error {
	resDir := filepath.Join(info.GenDir, "Resources")
	if err := os.RemoveAll(resDir); err != nil {
		return fmt.Errorf("failed to clear staged resources: %w", err)
	}
	if len(mappings) == 0 {
		return nil
	}
	for _, m := range mappings {
		src := filepath.Join(info.TauriDir, filepath.FromSlash(m.Src))
		dst := filepath.Join(resDir, filepath.FromSlash(m.Dest))
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("failed to stage resource %s: %w", m.Src, err)
		}
	}
	return nil
}

// writeMainStub writes Sources/main.swift on first run only.
func writeMainStub(info *config.AppInfo) error {
	path := filepath.Join(info.GenDir, "Sources", "main.swift")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	content, err := template.Render(template.MainSwift, map[string]string{
		"APP_NAME": info.Name,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
