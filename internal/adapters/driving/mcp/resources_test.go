package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
)

func TestExtractSpreadsheetID(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"valid URI", "spreadsheet://abc123/info", "abc123"},
		{"missing suffix", "spreadsheet://abc123", ""},
		{"wrong scheme", "https://abc123/info", ""},
		{"empty ID", "spreadsheet:///info", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractSpreadsheetID(tt.uri))
		})
	}
}

func TestServer_handleSpreadsheetInfoResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns indented JSON", func(t *testing.T) {
		svc := &mockSpreadsheetService{
			info: &domain.SpreadsheetInfo{
				SpreadsheetID: "abc123",
				Title:         "Workbook",
				Sheets: []domain.SheetProperties{
					{SheetID: 0, Title: "Sheet1", Grid: domain.GridProperties{RowCount: 100, ColumnCount: 26}},
				},
			},
		}
		server := newTestServer(t, svc)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "spreadsheet://abc123/info"},
		}
		result, err := server.handleSpreadsheetInfoResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var payload struct {
			Title  string `json:"title"`
			Sheets []struct {
				Title          string `json:"title"`
				SheetID        int64  `json:"sheetId"`
				GridProperties struct {
					RowCount    int64 `json:"rowCount"`
					ColumnCount int64 `json:"columnCount"`
				} `json:"gridProperties"`
			} `json:"sheets"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &payload))
		assert.Equal(t, "Workbook", payload.Title)
		require.Len(t, payload.Sheets, 1)
		assert.Equal(t, int64(100), payload.Sheets[0].GridProperties.RowCount)
	})

	t.Run("malformed URI", func(t *testing.T) {
		server := newTestServer(t, &mockSpreadsheetService{})

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "spreadsheet://no-suffix"},
		}
		_, err := server.handleSpreadsheetInfoResource(ctx, req)

		assert.Error(t, err)
	})
}
