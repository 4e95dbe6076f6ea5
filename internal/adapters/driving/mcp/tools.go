package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
)

// SheetDataInput addresses a sheet, optionally restricted to a range.
type SheetDataInput struct {
	Sheet         string `json:"sheet" jsonschema:"the name of the sheet"`
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
	Range         string `json:"range,omitempty" jsonschema:"optional cell range in A1 notation (e.g. 'A1:C10'); omit for the whole sheet"`
}

// SheetDataOutput carries the backend's grid data response unmodified.
type SheetDataOutput struct {
	Data map[string]any `json:"data"`
}

// SheetFormulasOutput is a 2D array of formulas.
type SheetFormulasOutput struct {
	Formulas [][]any `json:"formulas"`
}

// UpdateCellsInput writes a grid of values to one range.
type UpdateCellsInput struct {
	Sheet         string  `json:"sheet" jsonschema:"the name of the sheet"`
	Range         string  `json:"range" jsonschema:"cell range in A1 notation (e.g. 'A1:C10')"`
	Data          [][]any `json:"data" jsonschema:"2D array of values to write"`
	SpreadsheetID string  `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
}

// BatchUpdateCellsInput writes several ranges of one sheet at once.
type BatchUpdateCellsInput struct {
	Sheet         string             `json:"sheet" jsonschema:"the name of the sheet"`
	Ranges        map[string][][]any `json:"ranges" jsonschema:"mapping from range string to 2D array of values, e.g. {'A1:B2': [[1,2],[3,4]]}"`
	SpreadsheetID string             `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
}

// InsertDimensionInput adds rows or columns to a sheet.
type InsertDimensionInput struct {
	Sheet         string `json:"sheet" jsonschema:"the name of the sheet"`
	Count         int64  `json:"count" jsonschema:"number of rows or columns to add"`
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
	StartRow      *int64 `json:"start_row,omitempty" jsonschema:"0-based row index to start adding at; omit to add at the beginning"`
	StartColumn   *int64 `json:"start_column,omitempty" jsonschema:"0-based column index to start adding at; omit to add at the beginning"`
}

// OperationOutput reports a structural operation with no data payload.
// Error carries a soft failure (e.g. an unknown sheet name).
type OperationOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// AppendRowsInput appends rows to the end of a sheet.
type AppendRowsInput struct {
	Sheet         string  `json:"sheet" jsonschema:"the name of the sheet"`
	Data          [][]any `json:"data" jsonschema:"2D array of values to append as new rows"`
	SpreadsheetID string  `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
}

// ListSheetsInput identifies the spreadsheet to list.
type ListSheetsInput struct {
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
}

// ListSheetsOutput is the list of sheet titles.
type ListSheetsOutput struct {
	Sheets []string `json:"sheets"`
}

// CopySheetInput copies a sheet between spreadsheets.
type CopySheetInput struct {
	SrcSpreadsheet string `json:"src_spreadsheet" jsonschema:"source spreadsheet ID"`
	SrcSheet       string `json:"src_sheet" jsonschema:"source sheet name"`
	DstSpreadsheet string `json:"dst_spreadsheet" jsonschema:"destination spreadsheet ID"`
	DstSheet       string `json:"dst_sheet" jsonschema:"destination sheet name"`
}

// CopySheetOutput reports the copied (and possibly renamed) sheet.
type CopySheetOutput struct {
	Copy    *domain.SheetProperties `json:"copy,omitempty"`
	Renamed bool                    `json:"renamed,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// RenameSheetInput renames a sheet.
type RenameSheetInput struct {
	Spreadsheet string `json:"spreadsheet" jsonschema:"spreadsheet ID"`
	Sheet       string `json:"sheet" jsonschema:"current sheet name"`
	NewName     string `json:"new_name" jsonschema:"new sheet name"`
}

// MultiSheetDataInput is a list of independent range queries.
type MultiSheetDataInput struct {
	Queries []domain.SheetQuery `json:"queries" jsonschema:"list of queries, each with spreadsheet_id, sheet and range"`
}

// MultiSheetDataOutput splits fulfilled and failed queries, each list in
// input order.
type MultiSheetDataOutput struct {
	Successes []domain.QuerySuccess `json:"successes"`
	Failures  []domain.QueryFailure `json:"failures"`
}

// MultiSummaryInput identifies the spreadsheets to summarise.
type MultiSummaryInput struct {
	SpreadsheetIDs []string `json:"spreadsheet_ids" jsonschema:"list of spreadsheet IDs to summarise"`
	RowsToFetch    int64    `json:"rows_to_fetch,omitempty" jsonschema:"number of rows (including the header) to fetch per sheet (default 5)"`
}

// MultiSummaryOutput splits summarised and failed spreadsheets.
type MultiSummaryOutput struct {
	Successes []domain.SpreadsheetSummary `json:"successes"`
	Failures  []domain.SummaryFailure     `json:"failures"`
}

// CreateSpreadsheetInput names the new spreadsheet.
type CreateSpreadsheetInput struct {
	Title string `json:"title" jsonschema:"the title of the new spreadsheet"`
}

// CreateSheetInput adds a sheet tab to an existing spreadsheet.
type CreateSheetInput struct {
	Title         string `json:"title" jsonschema:"the title for the new sheet"`
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
}

// ListSpreadsheetsOutput lists spreadsheets in the working folder.
type ListSpreadsheetsOutput struct {
	Spreadsheets []domain.FileRef `json:"spreadsheets"`
}

// ShareSpreadsheetInput grants access to a list of recipients.
type ShareSpreadsheetInput struct {
	Recipients       []domain.Recipient `json:"recipients" jsonschema:"list of recipients, each with email_address and role (reader, commenter or writer)"`
	SpreadsheetID    string             `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
	SendNotification *bool              `json:"send_notification,omitempty" jsonschema:"whether to email the recipients (default true)"`
}

// SheetInput names one sheet of a spreadsheet.
type SheetInput struct {
	Sheet         string `json:"sheet" jsonschema:"the name of the sheet"`
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"the ID of the spreadsheet (defaults to the configured spreadsheet)"`
}

// SheetPropertiesOutput reports the properties of one sheet.
type SheetPropertiesOutput struct {
	Properties *domain.SheetProperties `json:"properties,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sheet_data",
		Description: "Get data from a specific sheet in a Google Spreadsheet, including full grid metadata",
	}, s.handleGetSheetData)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sheet_formulas",
		Description: "Get formulas from a specific sheet in a Google Spreadsheet",
	}, s.handleGetSheetFormulas)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_cells",
		Description: "Update cells in a Google Spreadsheet",
	}, s.handleUpdateCells)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "batch_update_cells",
		Description: "Batch update multiple ranges in a Google Spreadsheet",
	}, s.handleBatchUpdateCells)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_rows",
		Description: "Add rows to a sheet in a Google Spreadsheet",
	}, s.handleAddRows)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_columns",
		Description: "Add columns to a sheet in a Google Spreadsheet",
	}, s.handleAddColumns)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "append_rows",
		Description: "Append rows to the end of a sheet in a Google Spreadsheet",
	}, s.handleAppendRows)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sheets",
		Description: "List all sheets in a Google Spreadsheet",
	}, s.handleListSheets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "copy_sheet",
		Description: "Copy a sheet from one spreadsheet to another",
	}, s.handleCopySheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rename_sheet",
		Description: "Rename a sheet in a Google Spreadsheet",
	}, s.handleRenameSheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_multiple_sheet_data",
		Description: "Get data from multiple specific ranges in Google Spreadsheets; failures are reported per query",
	}, s.handleMultiSheetData)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_multiple_spreadsheet_summary",
		Description: "Get a summary of multiple Google Spreadsheets: sheet names, headers and first rows",
	}, s.handleMultiSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_spreadsheet",
		Description: "Create a new Google Spreadsheet in the configured working folder",
	}, s.handleCreateSpreadsheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_sheet",
		Description: "Create a new sheet tab in an existing Google Spreadsheet",
	}, s.handleCreateSheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_spreadsheets",
		Description: "List all spreadsheets in the configured Google Drive folder",
	}, s.handleListSpreadsheets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "share_spreadsheet",
		Description: "Share a Google Spreadsheet with multiple users; outcomes are reported per recipient",
	}, s.handleShareSpreadsheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_sheet",
		Description: "Delete a sheet from a Google Spreadsheet",
	}, s.handleDeleteSheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sheet_properties",
		Description: "Get properties of a specific sheet in a Google Spreadsheet",
	}, s.handleGetSheetProperties)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_sheet_data",
		Description: "Clear data from a range in a Google Spreadsheet",
	}, s.handleClearSheetData)
}

func (s *Server) handleGetSheetData(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SheetDataInput,
) (*mcp.CallToolResult, SheetDataOutput, error) {
	data, err := s.ports.Spreadsheet.SheetData(ctx, input.SpreadsheetID, input.Sheet, input.Range)
	if err != nil {
		return nil, SheetDataOutput{}, err
	}
	return nil, SheetDataOutput{Data: data}, nil
}

func (s *Server) handleGetSheetFormulas(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SheetDataInput,
) (*mcp.CallToolResult, SheetFormulasOutput, error) {
	formulas, err := s.ports.Spreadsheet.SheetFormulas(ctx, input.SpreadsheetID, input.Sheet, input.Range)
	if err != nil {
		return nil, SheetFormulasOutput{}, err
	}
	return nil, SheetFormulasOutput{Formulas: formulas}, nil
}

func (s *Server) handleUpdateCells(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateCellsInput,
) (*mcp.CallToolResult, domain.UpdateResult, error) {
	result, err := s.ports.Spreadsheet.UpdateCells(ctx, input.SpreadsheetID, input.Sheet, input.Range, input.Data)
	if err != nil {
		return nil, domain.UpdateResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleBatchUpdateCells(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BatchUpdateCellsInput,
) (*mcp.CallToolResult, domain.BatchUpdateResult, error) {
	result, err := s.ports.Spreadsheet.BatchUpdateCells(ctx, input.SpreadsheetID, input.Sheet, input.Ranges)
	if err != nil {
		return nil, domain.BatchUpdateResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleAddRows(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InsertDimensionInput,
) (*mcp.CallToolResult, OperationOutput, error) {
	err := s.ports.Spreadsheet.AddRows(ctx, input.SpreadsheetID, input.Sheet, input.Count, input.StartRow)
	return operationOutcome(err)
}

func (s *Server) handleAddColumns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InsertDimensionInput,
) (*mcp.CallToolResult, OperationOutput, error) {
	err := s.ports.Spreadsheet.AddColumns(ctx, input.SpreadsheetID, input.Sheet, input.Count, input.StartColumn)
	return operationOutcome(err)
}

func (s *Server) handleAppendRows(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AppendRowsInput,
) (*mcp.CallToolResult, domain.AppendResult, error) {
	result, err := s.ports.Spreadsheet.AppendRows(ctx, input.SpreadsheetID, input.Sheet, input.Data)
	if err != nil {
		return nil, domain.AppendResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleListSheets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListSheetsInput,
) (*mcp.CallToolResult, ListSheetsOutput, error) {
	sheets, err := s.ports.Spreadsheet.ListSheets(ctx, input.SpreadsheetID)
	if err != nil {
		return nil, ListSheetsOutput{}, err
	}
	return nil, ListSheetsOutput{Sheets: sheets}, nil
}

func (s *Server) handleCopySheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CopySheetInput,
) (*mcp.CallToolResult, CopySheetOutput, error) {
	result, err := s.ports.Spreadsheet.CopySheet(ctx, input.SrcSpreadsheet, input.SrcSheet, input.DstSpreadsheet, input.DstSheet)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, CopySheetOutput{Error: err.Error()}, nil
		}
		return nil, CopySheetOutput{}, err
	}
	return nil, CopySheetOutput{Copy: &result.Copied, Renamed: result.Renamed}, nil
}

func (s *Server) handleRenameSheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenameSheetInput,
) (*mcp.CallToolResult, OperationOutput, error) {
	err := s.ports.Spreadsheet.RenameSheet(ctx, input.Spreadsheet, input.Sheet, input.NewName)
	return operationOutcome(err)
}

func (s *Server) handleMultiSheetData(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MultiSheetDataInput,
) (*mcp.CallToolResult, MultiSheetDataOutput, error) {
	result, err := s.ports.Spreadsheet.MultiSheetData(ctx, input.Queries)
	if err != nil {
		return nil, MultiSheetDataOutput{}, err
	}
	return nil, MultiSheetDataOutput{Successes: result.Successes, Failures: result.Failures}, nil
}

func (s *Server) handleMultiSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MultiSummaryInput,
) (*mcp.CallToolResult, MultiSummaryOutput, error) {
	rows := input.RowsToFetch
	if rows <= 0 {
		rows = 5
	}
	result, err := s.ports.Spreadsheet.MultiSpreadsheetSummary(ctx, input.SpreadsheetIDs, rows)
	if err != nil {
		return nil, MultiSummaryOutput{}, err
	}
	return nil, MultiSummaryOutput{Successes: result.Successes, Failures: result.Failures}, nil
}

func (s *Server) handleCreateSpreadsheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateSpreadsheetInput,
) (*mcp.CallToolResult, domain.CreatedSpreadsheet, error) {
	result, err := s.ports.Spreadsheet.CreateSpreadsheet(ctx, input.Title)
	if err != nil {
		return nil, domain.CreatedSpreadsheet{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleCreateSheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateSheetInput,
) (*mcp.CallToolResult, domain.SheetProperties, error) {
	props, err := s.ports.Spreadsheet.CreateSheet(ctx, input.SpreadsheetID, input.Title)
	if err != nil {
		return nil, domain.SheetProperties{}, err
	}
	return nil, *props, nil
}

func (s *Server) handleListSpreadsheets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListSpreadsheetsOutput, error) {
	files, err := s.ports.Spreadsheet.ListSpreadsheets(ctx)
	if err != nil {
		return nil, ListSpreadsheetsOutput{}, err
	}
	return nil, ListSpreadsheetsOutput{Spreadsheets: files}, nil
}

func (s *Server) handleShareSpreadsheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ShareSpreadsheetInput,
) (*mcp.CallToolResult, domain.ShareReport, error) {
	notify := true
	if input.SendNotification != nil {
		notify = *input.SendNotification
	}
	report, err := s.ports.Spreadsheet.ShareSpreadsheet(ctx, input.SpreadsheetID, input.Recipients, notify)
	if err != nil {
		return nil, domain.ShareReport{}, err
	}
	return nil, *report, nil
}

func (s *Server) handleDeleteSheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SheetInput,
) (*mcp.CallToolResult, OperationOutput, error) {
	err := s.ports.Spreadsheet.DeleteSheet(ctx, input.SpreadsheetID, input.Sheet)
	return operationOutcome(err)
}

func (s *Server) handleGetSheetProperties(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SheetInput,
) (*mcp.CallToolResult, SheetPropertiesOutput, error) {
	props, err := s.ports.Spreadsheet.SheetProperties(ctx, input.SpreadsheetID, input.Sheet)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, SheetPropertiesOutput{Error: err.Error()}, nil
		}
		return nil, SheetPropertiesOutput{}, err
	}
	return nil, SheetPropertiesOutput{Properties: props}, nil
}

func (s *Server) handleClearSheetData(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SheetDataInput,
) (*mcp.CallToolResult, domain.ClearResult, error) {
	result, err := s.ports.Spreadsheet.ClearSheetData(ctx, input.SpreadsheetID, input.Sheet, input.Range)
	if err != nil {
		return nil, domain.ClearResult{}, err
	}
	return nil, *result, nil
}

// operationOutcome maps a structural operation's error into the soft/hard
// split: an unknown sheet name is reported as an error payload on a
// successful call, anything else fails the call.
func operationOutcome(err error) (*mcp.CallToolResult, OperationOutput, error) {
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, OperationOutput{Error: err.Error()}, nil
		}
		return nil, OperationOutput{}, err
	}
	return nil, OperationOutput{Success: true}, nil
}
