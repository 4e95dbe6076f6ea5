package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for spreadsheet resources.
	uriScheme = "spreadsheet://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for spreadsheet metadata.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "{spreadsheetId}/info",
		Name:        "spreadsheet-info",
		Description: "Basic information about a Google Spreadsheet: title and per-sheet properties",
		MIMEType:    "application/json",
	}, s.handleSpreadsheetInfoResource)
}

// handleSpreadsheetInfoResource returns the metadata of one spreadsheet.
func (s *Server) handleSpreadsheetInfoResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract spreadsheetId from URI: spreadsheet://{spreadsheetId}/info
	spreadsheetID := extractSpreadsheetID(req.Params.URI)
	if spreadsheetID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	info, err := s.ports.Spreadsheet.SpreadsheetInfo(ctx, spreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("getting spreadsheet info: %w", err)
	}

	// Build simplified sheet list.
	type gridInfo struct {
		RowCount    int64 `json:"rowCount"`
		ColumnCount int64 `json:"columnCount"`
	}
	type sheetInfo struct {
		Title          string   `json:"title"`
		SheetID        int64    `json:"sheetId"`
		GridProperties gridInfo `json:"gridProperties"`
	}
	type spreadsheetInfo struct {
		Title  string      `json:"title"`
		Sheets []sheetInfo `json:"sheets"`
	}

	out := spreadsheetInfo{
		Title:  info.Title,
		Sheets: make([]sheetInfo, len(info.Sheets)),
	}
	for i, sh := range info.Sheets {
		out.Sheets[i] = sheetInfo{
			Title:   sh.Title,
			SheetID: sh.SheetID,
			GridProperties: gridInfo{
				RowCount:    sh.Grid.RowCount,
				ColumnCount: sh.Grid.ColumnCount,
			},
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling spreadsheet info: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSpreadsheetID extracts the spreadsheet ID from a URI like
// spreadsheet://{spreadsheetId}/info.
func extractSpreadsheetID(uri string) string {
	const suffix = "/info"

	if !strings.HasPrefix(uri, uriScheme) {
		return ""
	}

	uri = strings.TrimPrefix(uri, uriScheme)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
