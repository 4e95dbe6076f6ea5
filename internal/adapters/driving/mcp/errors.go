// Package mcp provides an MCP (Model Context Protocol) server adapter for
// sheetbridge. It exposes the spreadsheet operations as tools and resources
// for AI assistants like Claude.
package mcp

import "errors"

// ErrMissingSpreadsheetService is returned when the spreadsheet service is not provided.
var ErrMissingSpreadsheetService = errors.New("mcp: spreadsheet service is required")
