package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sheetbridge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sheetbridge/internal/adapters/driving/mcp"
	"github.com/custodia-labs/sheetbridge/internal/connectors/google"
	"github.com/custodia-labs/sheetbridge/internal/core/services"
)

// HTTP ports tried when none is configured explicitly.
const (
	defaultPortRangeStart = 8000
	defaultPortRangeEnd   = 8100
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port (or set http = true in the config file) to start an HTTP
server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  sheetbridge serve

  # HTTP mode (for MCP Inspector, remote access)
  sheetbridge serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "sheetbridge": {
        "command": "/path/to/sheetbridge",
        "args": ["serve"]
      }
    }
  }

Authorization is resolved lazily on the first tool call, trying in order:
the CREDENTIALS_CONFIG inline blob, the service account key file, a stored
user authorization, then application default credentials.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio, unless http mode is configured)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := file.Load(configPath)
	if err != nil {
		return err
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port == 0 {
		port = cfg.Port
	}

	server, err := buildServer(cfg)
	if err != nil {
		return err
	}

	if port > 0 || cfg.HTTP {
		if port == 0 {
			port, err = services.FindAvailablePort(defaultPortRangeStart, defaultPortRangeEnd)
			if err != nil {
				return err
			}
		}
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// buildServer assembles the service graph from configuration. No Google
// call happens here; the session is established on the first tool call.
func buildServer(cfg *file.Config) (*mcp.Server, error) {
	connector := google.NewConnector(google.CredentialConfig{
		InlineJSON:         cfg.CredentialsConfig,
		ServiceAccountPath: cfg.ServiceAccountPath,
		TokenPath:          cfg.TokenPath,
		ClientSecretsPath:  cfg.ClientSecretsPath,
	})

	session := services.NewSessionManager(connector, cfg.DriveFolderID)
	spreadsheet := services.NewSpreadsheetService(session, cfg.DefaultSpreadsheetID)

	return mcp.NewServer(&mcp.Ports{Spreadsheet: spreadsheet})
}
