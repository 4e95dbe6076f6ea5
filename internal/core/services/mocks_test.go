package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
	"github.com/custodia-labs/sheetbridge/internal/core/ports/driven"
)

// mockConnector counts Connect calls and can be programmed to fail.
type mockConnector struct {
	mu       sync.Mutex
	calls    int
	failFor  int // fail the first N calls
	sheets   driven.SheetsBackend
	drive    driven.DriveBackend
	connectE error
}

func (m *mockConnector) Connect(_ context.Context) (driven.SheetsBackend, driven.DriveBackend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.connectE != nil {
		return nil, nil, m.connectE
	}
	if m.calls <= m.failFor {
		return nil, nil, errors.New("connect failed")
	}
	if m.sheets == nil {
		m.sheets = &mockSheets{}
	}
	if m.drive == nil {
		m.drive = &mockDrive{}
	}
	return m.sheets, m.drive, nil
}

func (m *mockConnector) connectCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockSheets is a programmable SheetsBackend double. Zero values succeed
// with empty results; set the fields to shape responses or force errors.
type mockSheets struct {
	info    *domain.SpreadsheetInfo
	infoErr error

	grid    map[string]any
	gridErr error

	values    [][]any
	valuesErr error
	// valuesByRange overrides values per qualified range when set.
	valuesByRange map[string][][]any

	updateResult *domain.UpdateResult
	updateErr    error

	appendResult *domain.AppendResult
	appendErr    error

	clearResult *domain.ClearResult
	clearErr    error

	batchResult *domain.BatchUpdateResult
	batchErr    error

	insertErr error

	addedSheet  *domain.SheetProperties
	addSheetErr error

	deleteErr error

	setTitleErr error

	copyResult *domain.SheetProperties
	copyErr    error

	created   *domain.SpreadsheetInfo
	createErr error

	// call recording
	gridRanges   []string
	valueRanges  []string
	updateRanges []string
	appendRanges []string
	clearRanges  []string
	batchEntries []domain.ValueBatchEntry
	inserts      []domain.DimensionInsert
	deletedIDs   []int64
	titleSets    []string
}

func (m *mockSheets) Spreadsheet(_ context.Context, _ string) (*domain.SpreadsheetInfo, error) {
	if m.infoErr != nil {
		return nil, m.infoErr
	}
	if m.info != nil {
		return m.info, nil
	}
	return &domain.SpreadsheetInfo{}, nil
}

func (m *mockSheets) GridData(_ context.Context, _, qualifiedRange string) (map[string]any, error) {
	m.gridRanges = append(m.gridRanges, qualifiedRange)
	if m.gridErr != nil {
		return nil, m.gridErr
	}
	return m.grid, nil
}

func (m *mockSheets) Values(_ context.Context, _, qualifiedRange string, _ domain.ValueRender) ([][]any, error) {
	m.valueRanges = append(m.valueRanges, qualifiedRange)
	if m.valuesErr != nil {
		return nil, m.valuesErr
	}
	if m.valuesByRange != nil {
		return m.valuesByRange[qualifiedRange], nil
	}
	return m.values, nil
}

func (m *mockSheets) UpdateValues(_ context.Context, _, qualifiedRange string, _ [][]any) (*domain.UpdateResult, error) {
	m.updateRanges = append(m.updateRanges, qualifiedRange)
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updateResult != nil {
		return m.updateResult, nil
	}
	return &domain.UpdateResult{UpdatedRange: qualifiedRange}, nil
}

func (m *mockSheets) AppendValues(_ context.Context, _, qualifiedRange string, _ [][]any) (*domain.AppendResult, error) {
	m.appendRanges = append(m.appendRanges, qualifiedRange)
	if m.appendErr != nil {
		return nil, m.appendErr
	}
	if m.appendResult != nil {
		return m.appendResult, nil
	}
	return &domain.AppendResult{}, nil
}

func (m *mockSheets) ClearValues(_ context.Context, _, qualifiedRange string) (*domain.ClearResult, error) {
	m.clearRanges = append(m.clearRanges, qualifiedRange)
	if m.clearErr != nil {
		return nil, m.clearErr
	}
	if m.clearResult != nil {
		return m.clearResult, nil
	}
	return &domain.ClearResult{ClearedRange: qualifiedRange}, nil
}

func (m *mockSheets) BatchUpdateValues(_ context.Context, _ string, entries []domain.ValueBatchEntry) (*domain.BatchUpdateResult, error) {
	m.batchEntries = append(m.batchEntries, entries...)
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	if m.batchResult != nil {
		return m.batchResult, nil
	}
	return &domain.BatchUpdateResult{}, nil
}

func (m *mockSheets) InsertDimension(_ context.Context, _ string, ins domain.DimensionInsert) error {
	m.inserts = append(m.inserts, ins)
	return m.insertErr
}

func (m *mockSheets) AddSheet(_ context.Context, _, title string) (*domain.SheetProperties, error) {
	if m.addSheetErr != nil {
		return nil, m.addSheetErr
	}
	if m.addedSheet != nil {
		return m.addedSheet, nil
	}
	return &domain.SheetProperties{Title: title}, nil
}

func (m *mockSheets) DeleteSheet(_ context.Context, _ string, sheetID int64) error {
	m.deletedIDs = append(m.deletedIDs, sheetID)
	return m.deleteErr
}

func (m *mockSheets) SetSheetTitle(_ context.Context, _ string, _ int64, title string) error {
	m.titleSets = append(m.titleSets, title)
	return m.setTitleErr
}

func (m *mockSheets) CopySheetTo(_ context.Context, _ string, _ int64, _ string) (*domain.SheetProperties, error) {
	if m.copyErr != nil {
		return nil, m.copyErr
	}
	if m.copyResult != nil {
		return m.copyResult, nil
	}
	return &domain.SheetProperties{}, nil
}

func (m *mockSheets) CreateSpreadsheet(_ context.Context, title string) (*domain.SpreadsheetInfo, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &domain.SpreadsheetInfo{SpreadsheetID: "new-id", Title: title}, nil
}

// mockDrive is a programmable DriveBackend double.
type mockDrive struct {
	files   []domain.FileRef
	listErr error

	moveErr   error
	moveCalls int

	permID      string
	permErr     error
	permissions []domain.Permission
}

func (m *mockDrive) ListSpreadsheets(_ context.Context, _ string) ([]domain.FileRef, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.files, nil
}

func (m *mockDrive) MoveToFolder(_ context.Context, _, _ string) error {
	m.moveCalls++
	return m.moveErr
}

func (m *mockDrive) CreatePermission(_ context.Context, _ string, perm domain.Permission) (string, error) {
	m.permissions = append(m.permissions, perm)
	if m.permErr != nil {
		return "", m.permErr
	}
	if m.permID != "" {
		return m.permID, nil
	}
	return "perm-1", nil
}

// newTestService builds a SpreadsheetService over the given doubles with an
// already-established session, so tests exercise operations, not auth.
func newTestService(t interface{ Helper() }, sheets *mockSheets, drive *mockDrive, defaultID, folderID string) *SpreadsheetService {
	t.Helper()
	connector := &mockConnector{sheets: sheets, drive: drive}
	session := NewSessionManager(connector, folderID)
	return NewSpreadsheetService(session, defaultID)
}
