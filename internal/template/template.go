// Package template renders the static text templates shipped with
// macforge. Templates use {{TOKEN}} placeholders substituted from a fixed
// variable set.
package template

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed templates
var templatesFS embed.FS

// Template names accepted by Render.
const (
	Podfile       = "Podfile.tmpl"
	BuildFrontend = "build-frontend.sh.tmpl"
	XcodeScript   = "xcode-script.sh.tmpl"
	MainSwift     = "main.swift.tmpl"
	Entitlements  = "entitlements.plist.tmpl"
)

var tokenPattern = regexp.MustCompile(`\{\{[A-Z0-9_]+\}\}`)

// Render loads the named template and substitutes every {{TOKEN}} from
// vars. A token left unsubstituted is an error so generators cannot emit
// half-rendered artifacts.
func Render(name string, vars map[string]string) (string, error) {
	data, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("unknown template %s: %w", name, err)
	}

	out := string(data)
	for token, value := range vars {
		out = strings.ReplaceAll(out, "{{"+token+"}}", value)
	}

	if leftover := tokenPattern.FindString(out); leftover != "" {
		return "", fmt.Errorf("template %s: unsubstituted token %s", name, leftover)
	}
	return out, nil
}
