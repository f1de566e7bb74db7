package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helicon-labs/minuta-cli/internal/adapters/driven/config/file"
	"github.com/helicon-labs/minuta-cli/internal/adapters/driving/mcp"
	"github.com/helicon-labs/minuta-cli/internal/core/services"
	"github.com/helicon-labs/minuta-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "minuta": {
        "command": "/path/to/minuta",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Search:   searchService,
		Document: documentService,
		Refresh:  refreshService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	// Long-running server: optionally keep attendee data fresh when the
	// cache file changes on disk.
	if configStore != nil && configStore.GetBool(file.KeyWatchCache) {
		watcher := services.NewCacheWatcher(cachePath, refreshService, 0)
		go func() {
			if werr := watcher.Run(cmd.Context()); werr != nil {
				logger.Warn("Cache watcher stopped: %v", werr)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
