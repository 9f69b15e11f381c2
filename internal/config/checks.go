package config

import (
	"os/exec"
	"strings"
)

// CheckXcode returns true if the full Xcode IDE is installed (not just the
// command line tools).
func CheckXcode() bool {
	out, err := exec.Command("xcode-select", "-p").Output()
	if err != nil {
		return false
	}
	// xcode-select -p prints /Applications/Xcode.app/... for full Xcode
	// or /Library/Developer/CommandLineTools for CLT only.
	return strings.Contains(strings.TrimSpace(string(out)), "Xcode.app")
}

// CheckXcodegen returns true if the xcodegen binary is resolvable.
func CheckXcodegen(path string) bool {
	if path == "" {
		path = "xcodegen"
	}
	_, err := exec.LookPath(path)
	return err == nil
}

// CheckCocoaPods returns true if pod is installed.
func CheckCocoaPods() bool {
	_, err := exec.LookPath("pod")
	return err == nil
}
