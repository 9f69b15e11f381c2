package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/resources"
)

// ProjectYAML produces the project.yml consumed by XcodeGen: a single
// macOS application target wrapping the Tauri app, with the generated
// Info.plist, entitlements, resource folder and build-phase scripts
// wired in.
func ProjectYAML(info *config.AppInfo, res []resources.Mapping) string {
	var b strings.Builder

	fmt.Fprintf(&b, "name: %s\n", info.TargetName)
	b.WriteString("options:\n")
	b.WriteString("  deploymentTarget:\n")
	fmt.Fprintf(&b, "    macOS: %q\n", info.DeploymentTarget)
	b.WriteString("  createIntermediateGroups: true\n")
	b.WriteString("  generateEmptyDirectories: true\n")
	b.WriteString("\n")

	b.WriteString("targets:\n")
	fmt.Fprintf(&b, "  %s:\n", info.TargetName)
	b.WriteString("    type: application\n")
	b.WriteString("    platform: macOS\n")
	fmt.Fprintf(&b, "    deploymentTarget: %q\n", info.DeploymentTarget)

	b.WriteString("    sources:\n")
	b.WriteString("      - path: Sources\n")
	if len(res) > 0 {
		b.WriteString("      - path: Resources\n")
		b.WriteString("        type: folder\n")
		b.WriteString("        buildPhase: resources\n")
	}
	b.WriteString("      - path: Assets.xcassets\n")
	b.WriteString("        optional: true\n")

	b.WriteString("    settings:\n")
	b.WriteString("      base:\n")
	fmt.Fprintf(&b, "        PRODUCT_BUNDLE_IDENTIFIER: %s\n", info.BundleID)
	fmt.Fprintf(&b, "        PRODUCT_NAME: %s\n", yamlQuote(info.Name))
	fmt.Fprintf(&b, "        MARKETING_VERSION: %q\n", info.Version)
	b.WriteString("        CURRENT_PROJECT_VERSION: 1\n")
	fmt.Fprintf(&b, "        MACOSX_DEPLOYMENT_TARGET: %q\n", info.DeploymentTarget)
	if info.SigningIdentity != "" {
		b.WriteString("        CODE_SIGN_STYLE: Manual\n")
		fmt.Fprintf(&b, "        CODE_SIGN_IDENTITY: %s\n", yamlQuote(info.SigningIdentity))
	} else {
		b.WriteString("        CODE_SIGN_STYLE: Automatic\n")
	}
	b.WriteString("        INFOPLIST_FILE: Info.plist\n")
	fmt.Fprintf(&b, "        CODE_SIGN_ENTITLEMENTS: %s.entitlements\n", info.TargetName)
	b.WriteString("        ASSETCATALOG_COMPILER_APPICON_NAME: AppIcon\n")
	b.WriteString("        ENABLE_HARDENED_RUNTIME: YES\n")
	b.WriteString("        LD_RUNPATH_SEARCH_PATHS:\n")
	b.WriteString("          - \"$(inherited)\"\n")
	b.WriteString("          - \"@executable_path/../Frameworks\"\n")

	if len(info.Frameworks) > 0 {
		b.WriteString("    dependencies:\n")
		for _, fw := range info.Frameworks {
			writeFrameworkDependency(&b, fw)
		}
	}

	b.WriteString("    preBuildScripts:\n")
	b.WriteString("      - name: Build Frontend\n")
	b.WriteString("        path: scripts/xcode-script.sh\n")

	if len(info.Files) > 0 {
		b.WriteString("    postBuildScripts:\n")
		b.WriteString("      - name: Copy Extra Files\n")
		b.WriteString("        script: |\n")
		for _, dest := range sortedKeys(info.Files) {
			src := info.Files[dest]
			fmt.Fprintf(&b, "          mkdir -p \"$CODESIGNING_FOLDER_PATH/Contents/%s\"\n", dirOf(dest))
			fmt.Fprintf(&b, "          cp -R \"$SRCROOT/../../%s\" \"$CODESIGNING_FOLDER_PATH/Contents/%s\"\n", src, dest)
		}
	}

	return b.String()
}

// writeFrameworkDependency distinguishes system frameworks ("WebKit")
// from bundled framework paths ("frameworks/Custom.framework").
func writeFrameworkDependency(b *strings.Builder, fw string) {
	if strings.Contains(fw, "/") || strings.HasSuffix(fw, ".framework") {
		path := fw
		if !strings.HasSuffix(path, ".framework") {
			path += ".framework"
		}
		fmt.Fprintf(b, "      - framework: %s\n", yamlQuote(path))
		b.WriteString("        embed: true\n")
		return
	}
	fmt.Fprintf(b, "      - sdk: %s.framework\n", fw)
}

// yamlQuote wraps a string in quotes if it contains special YAML
// characters.
func yamlQuote(s string) string {
	if strings.ContainsAny(s, ":{}[]|>&*!%#@,'\"") || strings.Contains(s, "  ") || s == "" {
		return fmt.Sprintf("%q", s)
	}
	return s
}

func dirOf(dest string) string {
	if i := strings.LastIndex(dest, "/"); i >= 0 {
		return dest[:i]
	}
	return "."
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
