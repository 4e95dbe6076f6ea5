package driven

import (
	"context"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
)

// SheetsBackend is the spreadsheet side of the remote service boundary.
// Range arguments are already qualified (see domain.QualifiedRange).
// Implementations pass backend failures through unchanged apart from
// contextual wrapping; no retries happen at this layer.
type SheetsBackend interface {
	// Spreadsheet fetches spreadsheet metadata: title plus the
	// properties of every sheet.
	Spreadsheet(ctx context.Context, spreadsheetID string) (*domain.SpreadsheetInfo, error)

	// GridData fetches a range including full grid data and returns the
	// backend response as-is. Empty cells and all backend metadata are
	// preserved; this core does not interpret the grid.
	GridData(ctx context.Context, spreadsheetID, qualifiedRange string) (map[string]any, error)

	// Values reads cell values from a range. An empty render means the
	// backend's default formatted rendering.
	Values(ctx context.Context, spreadsheetID, qualifiedRange string, render domain.ValueRender) ([][]any, error)

	// UpdateValues writes a rectangular grid of values to a range.
	UpdateValues(ctx context.Context, spreadsheetID, qualifiedRange string, values [][]any) (*domain.UpdateResult, error)

	// AppendValues appends rows after the last table row of a range.
	AppendValues(ctx context.Context, spreadsheetID, qualifiedRange string, values [][]any) (*domain.AppendResult, error)

	// ClearValues clears all values in a range.
	ClearValues(ctx context.Context, spreadsheetID, qualifiedRange string) (*domain.ClearResult, error)

	// BatchUpdateValues writes several ranges in one backend request.
	BatchUpdateValues(ctx context.Context, spreadsheetID string, entries []domain.ValueBatchEntry) (*domain.BatchUpdateResult, error)

	// InsertDimension inserts rows or columns into a sheet.
	InsertDimension(ctx context.Context, spreadsheetID string, ins domain.DimensionInsert) error

	// AddSheet creates a new sheet tab and returns its properties.
	AddSheet(ctx context.Context, spreadsheetID, title string) (*domain.SheetProperties, error)

	// DeleteSheet removes a sheet by its numeric ID.
	DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error

	// SetSheetTitle renames a sheet identified by its numeric ID.
	SetSheetTitle(ctx context.Context, spreadsheetID string, sheetID int64, title string) error

	// CopySheetTo copies a sheet into another spreadsheet and returns
	// the properties of the copy.
	CopySheetTo(ctx context.Context, srcSpreadsheetID string, sheetID int64, dstSpreadsheetID string) (*domain.SheetProperties, error)

	// CreateSpreadsheet creates a new spreadsheet with the given title.
	CreateSpreadsheet(ctx context.Context, title string) (*domain.SpreadsheetInfo, error)
}

// DriveBackend is the file-storage side of the remote service boundary.
type DriveBackend interface {
	// ListSpreadsheets lists spreadsheet files, most recently modified
	// first. A non-empty folderID restricts the listing to that folder.
	ListSpreadsheets(ctx context.Context, folderID string) ([]domain.FileRef, error)

	// MoveToFolder reparents a file into the given folder.
	MoveToFolder(ctx context.Context, fileID, folderID string) error

	// CreatePermission grants a user access to a file and returns the
	// new permission ID.
	CreatePermission(ctx context.Context, fileID string, perm domain.Permission) (string, error)
}

// BackendConnector resolves credentials and constructs authenticated
// backends. Connect runs the full credential strategy chain on every call;
// callers own any at-most-once semantics (see services.SessionManager).
type BackendConnector interface {
	Connect(ctx context.Context) (SheetsBackend, DriveBackend, error)
}
