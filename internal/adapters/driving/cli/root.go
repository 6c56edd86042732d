// Package cli provides the cobra command tree for the storefront MCP
// server binary.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tastebud-labs/storefront-mcp/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "storefront-mcp",
	Short: "MCP server for merchant product-catalog search",
	Long: `storefront-mcp exposes a merchant's product catalog to AI assistants
over the Model Context Protocol (MCP).

Each tool forwards a natural-language query to a managed retrieval
index and formats the ranked hits as text. The server speaks MCP over
stdio for local assistants or over HTTP (SSE and streamable sessions)
for remote ones.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the command tree with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
