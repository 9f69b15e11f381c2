// Package xcode invokes the external Apple toolchain: XcodeGen for
// project generation and the IDE itself for opening the result.
package xcode

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/macforge/macforge/internal/logger"
)

// Generate runs `xcodegen generate` in genDir to produce the .xcodeproj.
func Generate(ctx context.Context, genDir, xcodegenPath string) error {
	if xcodegenPath == "" {
		xcodegenPath = "xcodegen"
	}
	logger.L().Debugw("running xcodegen", "dir", genDir, "binary", xcodegenPath)

	cmd := exec.CommandContext(ctx, xcodegenPath, "generate")
	cmd.Dir = genDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("xcodegen generate failed: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// FindXcodeproj returns the path of the first .xcodeproj in dir.
func FindXcodeproj(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".xcodeproj") {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no .xcodeproj found in %s", dir)
}

// OpenProject opens the generated project in the configured IDE.
func OpenProject(projectPath, xcodeApp string) error {
	if xcodeApp == "" {
		xcodeApp = "Xcode"
	}
	logger.L().Debugw("opening project", "path", projectPath, "app", xcodeApp)

	cmd := exec.Command("open", "-a", xcodeApp, projectPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to open %s: %w\n%s", projectPath, err, strings.TrimSpace(string(output)))
	}
	return nil
}
