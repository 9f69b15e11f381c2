package generate

import (
	"fmt"
	"os"

	"howett.net/plist"

	"github.com/macforge/macforge/internal/config"
)

// InfoPlist builds the application Info.plist as indented XML. The base
// key set is derived from the app info; document types come from the
// manifest's file associations; keys from the user's custom plist file
// override everything else.
func InfoPlist(info *config.AppInfo) ([]byte, error) {
	dict := map[string]any{
		"CFBundleDevelopmentRegion":     "en",
		"CFBundleExecutable":            "$(EXECUTABLE_NAME)",
		"CFBundleIdentifier":            "$(PRODUCT_BUNDLE_IDENTIFIER)",
		"CFBundleInfoDictionaryVersion": "6.0",
		"CFBundleName":                  info.Name,
		"CFBundleDisplayName":           info.Name,
		"CFBundlePackageType":           "APPL",
		"CFBundleShortVersionString":    info.Version,
		"CFBundleVersion":               info.Version,
		"CFBundleIconFile":              "AppIcon",
		"LSMinimumSystemVersion":        info.DeploymentTarget,
		"NSHighResolutionCapable":       true,
	}
	if info.CategoryUTI != "" {
		dict["LSApplicationCategoryType"] = info.CategoryUTI
	}
	if info.Copyright != "" {
		dict["NSHumanReadableCopyright"] = info.Copyright
	}

	if types := documentTypes(info.FileAssociations); len(types) > 0 {
		dict["CFBundleDocumentTypes"] = types
	}

	if info.CustomInfoPlistPath != "" {
		custom, err := loadPlistDict(info.CustomInfoPlistPath)
		if err != nil {
			return nil, err
		}
		for k, v := range custom {
			dict[k] = v
		}
	}

	out, err := plist.MarshalIndent(dict, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize Info.plist: %w", err)
	}
	return out, nil
}

// documentTypes converts manifest file associations into
// CFBundleDocumentTypes entries.
func documentTypes(assocs []config.FileAssociation) []map[string]any {
	var types []map[string]any
	for _, fa := range assocs {
		if len(fa.Ext) == 0 {
			continue
		}
		name := fa.Name
		if name == "" {
			name = fa.Ext[0]
		}
		role := fa.Role
		if role == "" {
			role = "Editor"
		}
		entry := map[string]any{
			"CFBundleTypeExtensions": fa.Ext,
			"CFBundleTypeName":       name,
			"CFBundleTypeRole":       role,
		}
		if fa.Description != "" {
			entry["CFBundleTypeDescription"] = fa.Description
		}
		types = append(types, entry)
	}
	return types
}

// loadPlistDict parses a plist file that must contain a dictionary.
func loadPlistDict(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plist %s: %w", path, err)
	}
	var dict map[string]any
	if _, err := plist.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("%s is not a plist dictionary: %w", path, err)
	}
	return dict, nil
}
