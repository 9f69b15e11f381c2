package commands

import (
	"github.com/spf13/cobra"

	"github.com/macforge/macforge/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:    "mcp",
	Short:  "Run the macforge MCP server over stdio",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.Run(cmd.Context(), Version)
	},
}
