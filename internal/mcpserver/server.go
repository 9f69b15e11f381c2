// Package mcpserver exposes macforge's generators as MCP tools over
// stdio so coding agents can keep the Xcode scaffolding in sync with the
// manifest.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run starts the macforge MCP server over stdio. It blocks until the
// client disconnects or the context is cancelled.
func Run(ctx context.Context, version string) error {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "macforge",
			Version: version,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_app_info",
		Description: "Read the Tauri manifest and return the normalized app record (name, bundle id, version, deployment target, category UTI, resource patterns). Read-only.",
	}, handleGetAppInfo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "expand_resources",
		Description: "Preview how the manifest's resource patterns resolve against the source tree: each concrete file and its destination inside the bundle. Read-only.",
	}, handleExpandResources)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "regenerate_scaffolding",
		Description: "Re-run every generator (project.yml, Info.plist, entitlements, Podfile, build scripts, asset catalog) from the manifest, then run xcodegen generate to rebuild the .xcodeproj. Use after editing tauri.conf.json.",
	}, handleRegenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "open_project",
		Description: "Open the generated .xcodeproj in Xcode.",
	}, handleOpenProject)

	return server.Run(ctx, &mcp.StdioTransport{})
}
