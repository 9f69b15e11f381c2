package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/macforge/macforge/internal/config"
	"github.com/macforge/macforge/internal/generate"
	"github.com/macforge/macforge/internal/resources"
	"github.com/macforge/macforge/internal/xcode"
)

// pathInput locates the project; an empty path means the current
// working directory.
type pathInput struct {
	Path string `json:"path,omitempty" jsonschema:"description=Directory inside the Tauri project. Defaults to the working directory."`
}

type textOutput struct {
	Message string `json:"message"`
}

// loadInfo resolves the project from the tool input.
func loadInfo(input pathInput) (*config.AppInfo, error) {
	start := input.Path
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		start = wd
	}
	return config.Load(start)
}

func handleGetAppInfo(ctx context.Context, req *mcp.CallToolRequest, input pathInput) (*mcp.CallToolResult, textOutput, error) {
	info, err := loadInfo(input)
	if err != nil {
		return nil, textOutput{}, err
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to marshal app info: %w", err)
	}
	return nil, textOutput{Message: string(data)}, nil
}

func handleExpandResources(ctx context.Context, req *mcp.CallToolRequest, input pathInput) (*mcp.CallToolResult, textOutput, error) {
	info, err := loadInfo(input)
	if err != nil {
		return nil, textOutput{}, err
	}
	mappings, err := resources.Expand(info.TauriDir, info.Resources)
	if err != nil {
		return nil, textOutput{}, err
	}
	if len(mappings) == 0 {
		return nil, textOutput{Message: "No resources matched."}, nil
	}

	var b strings.Builder
	for _, m := range mappings {
		fmt.Fprintf(&b, "%s -> Resources/%s\n", m.Src, m.Dest)
	}
	return nil, textOutput{Message: b.String()}, nil
}

func handleRegenerate(ctx context.Context, req *mcp.CallToolRequest, input pathInput) (*mcp.CallToolResult, textOutput, error) {
	info, err := loadInfo(input)
	if err != nil {
		return nil, textOutput{}, err
	}

	settings, err := config.LoadSettings(info.TauriDir)
	if err != nil {
		return nil, textOutput{}, err
	}

	result, err := generate.Scaffold(info)
	if err != nil {
		return nil, textOutput{}, err
	}
	if err := xcode.Generate(ctx, info.GenDir, settings.XcodegenPath); err != nil {
		return nil, textOutput{}, err
	}

	msg := fmt.Sprintf("Regenerated scaffolding for %s (%d resources) and rebuilt %s.",
		info.Name, result.ResourceCount, info.XcodeprojName())
	if len(result.Warnings) > 0 {
		msg += "\nWarnings:\n  " + strings.Join(result.Warnings, "\n  ")
	}
	return nil, textOutput{Message: msg}, nil
}

func handleOpenProject(ctx context.Context, req *mcp.CallToolRequest, input pathInput) (*mcp.CallToolResult, textOutput, error) {
	info, err := loadInfo(input)
	if err != nil {
		return nil, textOutput{}, err
	}
	settings, err := config.LoadSettings(info.TauriDir)
	if err != nil {
		return nil, textOutput{}, err
	}
	projectPath, err := xcode.FindXcodeproj(info.GenDir)
	if err != nil {
		return nil, textOutput{}, err
	}
	if err := xcode.OpenProject(projectPath, settings.XcodeApp); err != nil {
		return nil, textOutput{}, err
	}
	return nil, textOutput{Message: fmt.Sprintf("Opened %s.", projectPath)}, nil
}
