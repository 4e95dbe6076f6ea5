package driving

import (
	"context"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
)

// SpreadsheetService exposes the spreadsheet operations to the transport
// layer. An empty spreadsheetID means "use the configured default"; when no
// default exists either, operations fail with domain.ErrSpreadsheetIDRequired.
//
// Lookup-by-name operations (delete, rename, add rows/columns, copy,
// properties) return a *domain.NotFoundError when the named sheet does not
// exist; callers are expected to report it as a soft error payload rather
// than a failed call.
type SpreadsheetService interface {
	// SheetData reads a sheet (optionally restricted to subRange) with
	// full grid data, passed through from the backend unmodified.
	SheetData(ctx context.Context, spreadsheetID, sheet, subRange string) (map[string]any, error)

	// SheetFormulas reads the formulas of a sheet or sub-range.
	SheetFormulas(ctx context.Context, spreadsheetID, sheet, subRange string) ([][]any, error)

	// UpdateCells writes a grid of values to sheet!subRange.
	UpdateCells(ctx context.Context, spreadsheetID, sheet, subRange string, data [][]any) (*domain.UpdateResult, error)

	// BatchUpdateCells writes several sub-ranges of one sheet in a
	// single backend batch.
	BatchUpdateCells(ctx context.Context, spreadsheetID, sheet string, ranges map[string][][]any) (*domain.BatchUpdateResult, error)

	// AddRows inserts count rows at startRow (nil = prepend).
	AddRows(ctx context.Context, spreadsheetID, sheet string, count int64, startRow *int64) error

	// AddColumns inserts count columns at startColumn (nil = prepend).
	AddColumns(ctx context.Context, spreadsheetID, sheet string, count int64, startColumn *int64) error

	// AppendRows appends rows after the last table row of the sheet.
	AppendRows(ctx context.Context, spreadsheetID, sheet string, data [][]any) (*domain.AppendResult, error)

	// ListSheets returns the titles of all sheets in the spreadsheet.
	ListSheets(ctx context.Context, spreadsheetID string) ([]string, error)

	// CopySheet copies srcSheet of srcSpreadsheet into dstSpreadsheet,
	// renaming the copy to dstSheet when the titles differ.
	CopySheet(ctx context.Context, srcSpreadsheet, srcSheet, dstSpreadsheet, dstSheet string) (*domain.CopySheetResult, error)

	// RenameSheet renames a sheet.
	RenameSheet(ctx context.Context, spreadsheetID, sheet, newName string) error

	// MultiSheetData reads several ranges independently; one query's
	// failure never aborts the others.
	MultiSheetData(ctx context.Context, queries []domain.SheetQuery) (*domain.MultiSheetData, error)

	// MultiSpreadsheetSummary summarises several spreadsheets, fetching
	// up to rowsToFetch rows (including the header) per sheet.
	MultiSpreadsheetSummary(ctx context.Context, spreadsheetIDs []string, rowsToFetch int64) (*domain.MultiSpreadsheetSummary, error)

	// CreateSpreadsheet creates a spreadsheet, placing it in the
	// configured working folder when one is set.
	CreateSpreadsheet(ctx context.Context, title string) (*domain.CreatedSpreadsheet, error)

	// CreateSheet adds a new sheet tab to an existing spreadsheet.
	CreateSheet(ctx context.Context, spreadsheetID, title string) (*domain.SheetProperties, error)

	// ListSpreadsheets lists the spreadsheets in the configured working
	// folder, or in the whole drive when none is configured.
	ListSpreadsheets(ctx context.Context) ([]domain.FileRef, error)

	// ShareSpreadsheet grants access to each recipient independently.
	ShareSpreadsheet(ctx context.Context, spreadsheetID string, recipients []domain.Recipient, sendNotification bool) (*domain.ShareReport, error)

	// DeleteSheet deletes a sheet by name.
	DeleteSheet(ctx context.Context, spreadsheetID, sheet string) error

	// SheetProperties returns the properties of the named sheet.
	SheetProperties(ctx context.Context, spreadsheetID, sheet string) (*domain.SheetProperties, error)

	// ClearSheetData clears a range (or the whole sheet).
	ClearSheetData(ctx context.Context, spreadsheetID, sheet, subRange string) (*domain.ClearResult, error)

	// SpreadsheetInfo returns spreadsheet metadata for the info resource.
	SpreadsheetInfo(ctx context.Context, spreadsheetID string) (*domain.SpreadsheetInfo, error)
}
