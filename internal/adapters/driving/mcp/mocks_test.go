package mcp

import (
	"context"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
)

// mockSpreadsheetService is a programmable test double for the driving
// port. Zero values succeed with empty results; err fails every method.
type mockSpreadsheetService struct {
	err error

	gridData  map[string]any
	formulas  [][]any
	update    *domain.UpdateResult
	batch     *domain.BatchUpdateResult
	appendRes *domain.AppendResult
	sheets    []string
	copyRes   *domain.CopySheetResult
	multiData *domain.MultiSheetData
	summaries *domain.MultiSpreadsheetSummary
	created   *domain.CreatedSpreadsheet
	newSheet  *domain.SheetProperties
	files     []domain.FileRef
	share     *domain.ShareReport
	props     *domain.SheetProperties
	clear     *domain.ClearResult
	info      *domain.SpreadsheetInfo

	// lastRowsToFetch records the limit passed to the summary operation.
	lastRowsToFetch int64
	// lastNotify records the notification flag passed to the share.
	lastNotify bool
}

func (m *mockSpreadsheetService) SheetData(_ context.Context, _, _, _ string) (map[string]any, error) {
	return m.gridData, m.err
}

func (m *mockSpreadsheetService) SheetFormulas(_ context.Context, _, _, _ string) ([][]any, error) {
	return m.formulas, m.err
}

func (m *mockSpreadsheetService) UpdateCells(_ context.Context, _, _, _ string, _ [][]any) (*domain.UpdateResult, error) {
	return m.update, m.err
}

func (m *mockSpreadsheetService) BatchUpdateCells(_ context.Context, _, _ string, _ map[string][][]any) (*domain.BatchUpdateResult, error) {
	return m.batch, m.err
}

func (m *mockSpreadsheetService) AddRows(_ context.Context, _, _ string, _ int64, _ *int64) error {
	return m.err
}

func (m *mockSpreadsheetService) AddColumns(_ context.Context, _, _ string, _ int64, _ *int64) error {
	return m.err
}

func (m *mockSpreadsheetService) AppendRows(_ context.Context, _, _ string, _ [][]any) (*domain.AppendResult, error) {
	return m.appendRes, m.err
}

func (m *mockSpreadsheetService) ListSheets(_ context.Context, _ string) ([]string, error) {
	return m.sheets, m.err
}

func (m *mockSpreadsheetService) CopySheet(_ context.Context, _, _, _, _ string) (*domain.CopySheetResult, error) {
	return m.copyRes, m.err
}

func (m *mockSpreadsheetService) RenameSheet(_ context.Context, _, _, _ string) error {
	return m.err
}

func (m *mockSpreadsheetService) MultiSheetData(_ context.Context, _ []domain.SheetQuery) (*domain.MultiSheetData, error) {
	return m.multiData, m.err
}

func (m *mockSpreadsheetService) MultiSpreadsheetSummary(_ context.Context, _ []string, rowsToFetch int64) (*domain.MultiSpreadsheetSummary, error) {
	m.lastRowsToFetch = rowsToFetch
	return m.summaries, m.err
}

func (m *mockSpreadsheetService) CreateSpreadsheet(_ context.Context, _ string) (*domain.CreatedSpreadsheet, error) {
	return m.created, m.err
}

func (m *mockSpreadsheetService) CreateSheet(_ context.Context, _, _ string) (*domain.SheetProperties, error) {
	return m.newSheet, m.err
}

func (m *mockSpreadsheetService) ListSpreadsheets(_ context.Context) ([]domain.FileRef, error) {
	return m.files, m.err
}

func (m *mockSpreadsheetService) ShareSpreadsheet(_ context.Context, _ string, _ []domain.Recipient, sendNotification bool) (*domain.ShareReport, error) {
	m.lastNotify = sendNotification
	return m.share, m.err
}

func (m *mockSpreadsheetService) DeleteSheet(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockSpreadsheetService) SheetProperties(_ context.Context, _, _ string) (*domain.SheetProperties, error) {
	return m.props, m.err
}

func (m *mockSpreadsheetService) ClearSheetData(_ context.Context, _, _, _ string) (*domain.ClearResult, error) {
	return m.clear, m.err
}

func (m *mockSpreadsheetService) SpreadsheetInfo(_ context.Context, _ string) (*domain.SpreadsheetInfo, error) {
	return m.info, m.err
}

// newTestServer builds a server around the mock service.
func newTestServer(t interface {
	Helper()
	Fatalf(string, ...any)
}, svc *mockSpreadsheetService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Spreadsheet: svc})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return server
}
