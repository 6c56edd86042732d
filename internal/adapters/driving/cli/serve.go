package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tastebud-labs/storefront-mcp/internal/adapters/driven/config/file"
	"github.com/tastebud-labs/storefront-mcp/internal/adapters/driven/retrieval/autorag"
	"github.com/tastebud-labs/storefront-mcp/internal/adapters/driving/mcp"
	"github.com/tastebud-labs/storefront-mcp/internal/core/services"
	"github.com/tastebud-labs/storefront-mcp/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default the server listens over HTTP, exposing:
  /sse     - SSE transport (plus /sse/message for client messages)
  /mcp     - streamable session transport
  /health  - JSON status document (also served on /)

Use --stdio to communicate over stdio instead, for assistants such as
Claude Desktop that spawn the server as a subprocess.

Examples:
  # HTTP mode on the configured address
  storefront-mcp serve

  # HTTP mode on an explicit address
  storefront-mcp serve --addr :9090

  # Stdio mode (for Claude Desktop)
  storefront-mcp serve --stdio

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "storefront": {
        "command": "/path/to/storefront-mcp",
        "args": ["serve", "--stdio"]
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("config", "c", "", "path to config file (default ~/.storefront-mcp/config.toml)")
	serveCmd.Flags().StringP("addr", "a", "", "HTTP listen address (overrides config)")
	serveCmd.Flags().Bool("stdio", false, "serve over stdio instead of HTTP")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("getting config flag: %w", err)
	}

	cfg, err := file.Load(configPath)
	if err != nil {
		return err
	}

	index, err := autorag.NewClient(autorag.Config{
		BaseURL:  cfg.Retrieval.BaseURL,
		APIToken: cfg.Retrieval.APIToken,
		Timeout:  time.Duration(cfg.Retrieval.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	catalog := services.NewCatalogService(index, cfg.Retrieval.Index)

	server, err := mcp.NewServer(&mcp.Ports{Catalog: catalog})
	if err != nil {
		return err
	}

	logger.Debug("searching index %q at %s", cfg.Retrieval.Index, cfg.Retrieval.BaseURL)

	stdio, err := cmd.Flags().GetBool("stdio")
	if err != nil {
		return fmt.Errorf("getting stdio flag: %w", err)
	}
	if stdio {
		return server.Run(cmd.Context())
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return fmt.Errorf("getting addr flag: %w", err)
	}
	if addr == "" {
		addr = cfg.Listen
	}

	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
