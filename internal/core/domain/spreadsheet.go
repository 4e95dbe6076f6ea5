package domain

// GridProperties describes the grid dimensions of a sheet.
type GridProperties struct {
	RowCount          int64 `json:"rowCount,omitempty"`
	ColumnCount       int64 `json:"columnCount,omitempty"`
	FrozenRowCount    int64 `json:"frozenRowCount,omitempty"`
	FrozenColumnCount int64 `json:"frozenColumnCount,omitempty"`
}

// SheetProperties describes one sheet (tab) within a spreadsheet.
type SheetProperties struct {
	SheetID int64          `json:"sheetId"`
	Title   string         `json:"title"`
	Index   int64          `json:"index"`
	Grid    GridProperties `json:"gridProperties"`
}

// SpreadsheetInfo is the metadata of a spreadsheet: its identity plus the
// properties of every sheet it contains.
type SpreadsheetInfo struct {
	SpreadsheetID string            `json:"spreadsheetId"`
	Title         string            `json:"title"`
	Sheets        []SheetProperties `json:"sheets"`
}

// SheetByTitle returns the properties of the sheet with the given title,
// or a soft NotFoundError when no sheet matches.
func (s *SpreadsheetInfo) SheetByTitle(title string) (*SheetProperties, error) {
	for i := range s.Sheets {
		if s.Sheets[i].Title == title {
			return &s.Sheets[i], nil
		}
	}
	return nil, &NotFoundError{Sheet: title}
}

// ValueRender selects how cell values are rendered by a read.
type ValueRender string

const (
	// RenderFormatted returns values as displayed to the user.
	// This is the backend default; an empty ValueRender means the same.
	RenderFormatted ValueRender = "FORMATTED_VALUE"
	// RenderFormula returns the underlying formulas instead of results.
	RenderFormula ValueRender = "FORMULA"
)

// ValueBatchEntry is one {range, values} pair of a batched value update.
// Range is already qualified. Rows may be ragged; they pass through to the
// backend unmodified.
type ValueBatchEntry struct {
	Range  string
	Values [][]any
}

// UpdateResult reports the outcome of a value update.
type UpdateResult struct {
	SpreadsheetID  string `json:"spreadsheetId"`
	UpdatedRange   string `json:"updatedRange"`
	UpdatedRows    int64  `json:"updatedRows"`
	UpdatedColumns int64  `json:"updatedColumns"`
	UpdatedCells   int64  `json:"updatedCells"`
}

// AppendResult reports the outcome of an append.
type AppendResult struct {
	SpreadsheetID string       `json:"spreadsheetId"`
	TableRange    string       `json:"tableRange,omitempty"`
	Updates       UpdateResult `json:"updates"`
}

// ClearResult reports the outcome of a clear.
type ClearResult struct {
	SpreadsheetID string `json:"spreadsheetId"`
	ClearedRange  string `json:"clearedRange"`
}

// BatchUpdateResult reports the outcome of a batched value update.
type BatchUpdateResult struct {
	SpreadsheetID       string         `json:"spreadsheetId"`
	TotalUpdatedRows    int64          `json:"totalUpdatedRows"`
	TotalUpdatedColumns int64          `json:"totalUpdatedColumns"`
	TotalUpdatedCells   int64          `json:"totalUpdatedCells"`
	Responses           []UpdateResult `json:"responses"`
}

// FileRef identifies a spreadsheet file in Drive.
type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Permission grants a user access to a spreadsheet file.
type Permission struct {
	EmailAddress string
	Role         string
	// SendNotification controls whether the recipient is emailed.
	SendNotification bool
}

// SheetQuery addresses one range in one spreadsheet for a multi-range read.
type SheetQuery struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	Sheet         string `json:"sheet"`
	Range         string `json:"range"`
}

// SheetSummary is the per-sheet portion of a spreadsheet summary: the
// header row and the first few data rows. Error records a per-sheet soft
// failure without discarding the rest of the summary.
type SheetSummary struct {
	Title     string  `json:"title"`
	SheetID   int64   `json:"sheet_id"`
	Headers   []any   `json:"headers"`
	FirstRows [][]any `json:"first_rows"`
	Error     string  `json:"error,omitempty"`
}

// SpreadsheetSummary is a compact overview of a spreadsheet.
type SpreadsheetSummary struct {
	SpreadsheetID string         `json:"spreadsheet_id"`
	Title         string         `json:"title"`
	Sheets        []SheetSummary `json:"sheets"`
}
