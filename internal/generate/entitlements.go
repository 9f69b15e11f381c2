package generate

import (
	"fmt"
	"os"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/template"
)

// EntitlementsPlist returns the entitlements file content: the
// user-supplied file verbatim when the manifest names one (it must parse
// as a plist dictionary), otherwise the default template.
func EntitlementsPlist(info *config.AppInfo) ([]byte, error) {
	if info.EntitlementsPath != "" {
		data, err := os.ReadFile(info.EntitlementsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read entitlements %s: %w", info.EntitlementsPath, err)
		}
		if _, err := loadPlistDict(info.EntitlementsPath); err != nil {
			return nil, err
		}
		return data, nil
	}

	out, err := template.Render(template.Entitlements, nil)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
