package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
	"github.com/custodia-labs/sheetbridge/internal/core/ports/driving"
	"github.com/custodia-labs/sheetbridge/internal/logger"
)

// Ensure SpreadsheetService implements the interface.
var _ driving.SpreadsheetService = (*SpreadsheetService)(nil)

// SpreadsheetService implements the spreadsheet operations. Every
// operation ensures the session first, then translates its arguments into
// backend requests. Remote failures propagate unchanged for single-item
// operations; multi-item operations aggregate them per item via RunAll.
type SpreadsheetService struct {
	session *SessionManager
	// defaultSpreadsheetID backs operations that omit an explicit ID.
	defaultSpreadsheetID string
}

// NewSpreadsheetService creates the service.
func NewSpreadsheetService(session *SessionManager, defaultSpreadsheetID string) *SpreadsheetService {
	return &SpreadsheetService{
		session:              session,
		defaultSpreadsheetID: defaultSpreadsheetID,
	}
}

// resolveSpreadsheetID picks the explicit ID, else the configured default.
func (s *SpreadsheetService) resolveSpreadsheetID(spreadsheetID string) (string, error) {
	if spreadsheetID != "" {
		return spreadsheetID, nil
	}
	if s.defaultSpreadsheetID != "" {
		return s.defaultSpreadsheetID, nil
	}
	return "", domain.ErrSpreadsheetIDRequired
}

// sheetIDByTitle resolves a human-readable sheet title to the backend's
// numeric sheet ID by listing the spreadsheet's sheets.
func (s *SpreadsheetService) sheetIDByTitle(ctx context.Context, session *Session, spreadsheetID, sheet string) (int64, error) {
	info, err := session.Sheets.Spreadsheet(ctx, spreadsheetID)
	if err != nil {
		return 0, err
	}
	props, err := info.SheetByTitle(sheet)
	if err != nil {
		return 0, err
	}
	return props.SheetID, nil
}

// SheetData reads a sheet with full grid data, passed through unmodified.
func (s *SpreadsheetService) SheetData(ctx context.Context, spreadsheetID, sheet, subRange string) (map[string]any, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return session.Sheets.GridData(ctx, id, domain.QualifiedRange(sheet, subRange))
}

// SheetFormulas reads the formulas of a sheet or sub-range.
func (s *SpreadsheetService) SheetFormulas(ctx context.Context, spreadsheetID, sheet, subRange string) ([][]any, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return session.Sheets.Values(ctx, id, domain.QualifiedRange(sheet, subRange), domain.RenderFormula)
}

// UpdateCells writes a grid of values to sheet!subRange.
func (s *SpreadsheetService) UpdateCells(ctx context.Context, spreadsheetID, sheet, subRange string, data [][]any) (*domain.UpdateResult, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return session.Sheets.UpdateValues(ctx, id, domain.QualifiedRange(sheet, subRange), data)
}

// BatchUpdateCells writes several sub-ranges of one sheet in one batch.
// Go maps carry no insertion order, so entries are emitted in sorted key
// order for determinism; entry order only affects the order of the
// backend's per-range responses, never the outcome.
func (s *SpreadsheetService) BatchUpdateCells(ctx context.Context, spreadsheetID, sheet string, ranges map[string][][]any) (*domain.BatchUpdateResult, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(ranges))
	for k := range ranges {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]domain.ValueBatchEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, domain.ValueBatchEntry{
			Range:  domain.QualifiedRange(sheet, k),
			Values: ranges[k],
		})
	}

	return session.Sheets.BatchUpdateValues(ctx, id, entries)
}

// AddRows inserts count rows at startRow (nil = prepend).
func (s *SpreadsheetService) AddRows(ctx context.Context, spreadsheetID, sheet string, count int64, startRow *int64) error {
	return s.insertDimension(ctx, spreadsheetID, sheet, domain.DimensionRows, count, startRow)
}

// AddColumns inserts count columns at startColumn (nil = prepend).
func (s *SpreadsheetService) AddColumns(ctx context.Context, spreadsheetID, sheet string, count int64, startColumn *int64) error {
	return s.insertDimension(ctx, spreadsheetID, sheet, domain.DimensionColumns, count, startColumn)
}

func (s *SpreadsheetService) insertDimension(ctx context.Context, spreadsheetID, sheet string, dim domain.Dimension, count int64, start *int64) error {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return err
	}
	sheetID, err := s.sheetIDByTitle(ctx, session, id, sheet)
	if err != nil {
		return err
	}
	return session.Sheets.InsertDimension(ctx, id, domain.NewDimensionInsert(dim, sheetID, count, start))
}

// AppendRows appends rows after the last table row of the sheet.
func (s *SpreadsheetService) AppendRows(ctx context.Context, spreadsheetID, sheet string, data [][]any) (*domain.AppendResult, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	// A:A targets the sheet's existing table so the backend appends
	// below it.
	return session.Sheets.AppendValues(ctx, id, domain.QualifiedRange(sheet, "A:A"), data)
}

// ListSheets returns the titles of all sheets in the spreadsheet.
func (s *SpreadsheetService) ListSheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	info, err := s.SpreadsheetInfo(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(info.Sheets))
	for i := range info.Sheets {
		titles[i] = info.Sheets[i].Title
	}
	return titles, nil
}

// CopySheet copies srcSheet of srcSpreadsheet into dstSpreadsheet. When the
// backend's default copy title differs from dstSheet, the copy is renamed.
func (s *SpreadsheetService) CopySheet(ctx context.Context, srcSpreadsheet, srcSheet, dstSpreadsheet, dstSheet string) (*domain.CopySheetResult, error) {
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	srcSheetID, err := s.sheetIDByTitle(ctx, session, srcSpreadsheet, srcSheet)
	if err != nil {
		return nil, err
	}

	copied, err := session.Sheets.CopySheetTo(ctx, srcSpreadsheet, srcSheetID, dstSpreadsheet)
	if err != nil {
		return nil, err
	}

	result := &domain.CopySheetResult{Copied: *copied}
	if copied.Title != dstSheet {
		if err := session.Sheets.SetSheetTitle(ctx, dstSpreadsheet, copied.SheetID, dstSheet); err != nil {
			return nil, err
		}
		result.Copied.Title = dstSheet
		result.Renamed = true
	}
	return result, nil
}

// RenameSheet renames a sheet.
func (s *SpreadsheetService) RenameSheet(ctx context.Context, spreadsheetID, sheet, newName string) error {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return err
	}
	sheetID, err := s.sheetIDByTitle(ctx, session, id, sheet)
	if err != nil {
		return err
	}
	return session.Sheets.SetSheetTitle(ctx, id, sheetID, newName)
}

// MultiSheetData reads several ranges independently. A query missing any
// required field fails validation without a backend call; a backend
// failure on one query never aborts the others.
func (s *SpreadsheetService) MultiSheetData(ctx context.Context, queries []domain.SheetQuery) (*domain.MultiSheetData, error) {
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	agg := RunAll(ctx, queries,
		func(q domain.SheetQuery) error {
			if q.SpreadsheetID == "" || q.Sheet == "" || q.Range == "" {
				return fmt.Errorf("%w: missing required keys (spreadsheet_id, sheet, range)", domain.ErrInvalidInput)
			}
			return nil
		},
		func(ctx context.Context, q domain.SheetQuery) ([][]any, error) {
			return session.Sheets.Values(ctx, q.SpreadsheetID, domain.QualifiedRange(q.Sheet, q.Range), "")
		},
	)

	out := &domain.MultiSheetData{}
	for _, s := range agg.Successes {
		out.Successes = append(out.Successes, domain.QuerySuccess{SheetQuery: s.Item, Data: s.Data})
	}
	for _, f := range agg.Failures {
		out.Failures = append(out.Failures, domain.QueryFailure{SheetQuery: f.Item, Error: f.Err})
	}
	return out, nil
}

// MultiSpreadsheetSummary summarises several spreadsheets. Each spreadsheet
// is one work item; inside a spreadsheet, a sheet whose rows cannot be read
// is recorded in its own summary without discarding the sibling sheets.
func (s *SpreadsheetService) MultiSpreadsheetSummary(ctx context.Context, spreadsheetIDs []string, rowsToFetch int64) (*domain.MultiSpreadsheetSummary, error) {
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	maxRow := rowsToFetch
	if maxRow < 1 {
		maxRow = 1
	}

	agg := RunAll(ctx, spreadsheetIDs, nil,
		func(ctx context.Context, spreadsheetID string) (domain.SpreadsheetSummary, error) {
			info, err := session.Sheets.Spreadsheet(ctx, spreadsheetID)
			if err != nil {
				return domain.SpreadsheetSummary{}, err
			}

			summary := domain.SpreadsheetSummary{
				SpreadsheetID: spreadsheetID,
				Title:         info.Title,
			}
			for _, sheet := range info.Sheets {
				ss := domain.SheetSummary{
					Title:     sheet.Title,
					SheetID:   sheet.SheetID,
					Headers:   []any{},
					FirstRows: [][]any{},
				}
				rng := domain.QualifiedRange(sheet.Title, fmt.Sprintf("A1:%d", maxRow))
				values, err := session.Sheets.Values(ctx, spreadsheetID, rng, "")
				if err != nil {
					ss.Error = fmt.Sprintf("error fetching data for sheet %s: %v", sheet.Title, err)
				} else if len(values) > 0 {
					ss.Headers = values[0]
					if len(values) > 1 {
						ss.FirstRows = values[1:]
					}
				}
				summary.Sheets = append(summary.Sheets, ss)
			}
			return summary, nil
		},
	)

	out := &domain.MultiSpreadsheetSummary{}
	for _, succ := range agg.Successes {
		out.Successes = append(out.Successes, succ.Data)
	}
	for _, f := range agg.Failures {
		out.Failures = append(out.Failures, domain.SummaryFailure{SpreadsheetID: f.Item, Error: f.Err})
	}
	return out, nil
}

// CreateSpreadsheet creates a spreadsheet. With a working folder configured
// the new file is moved there; a failed move is logged and the spreadsheet
// is still returned.
func (s *SpreadsheetService) CreateSpreadsheet(ctx context.Context, title string) (*domain.CreatedSpreadsheet, error) {
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	info, err := session.Sheets.CreateSpreadsheet(ctx, title)
	if err != nil {
		return nil, err
	}
	logger.Debug("spreadsheet created: %s", info.SpreadsheetID)

	folder := "root"
	if session.FolderID != "" {
		if err := session.Drive.MoveToFolder(ctx, info.SpreadsheetID, session.FolderID); err != nil {
			logger.Warn("could not move spreadsheet %s to folder %s: %v", info.SpreadsheetID, session.FolderID, err)
		} else {
			folder = session.FolderID
		}
	}

	sheets := make([]string, len(info.Sheets))
	for i := range info.Sheets {
		sheets[i] = info.Sheets[i].Title
	}

	return &domain.CreatedSpreadsheet{
		SpreadsheetID: info.SpreadsheetID,
		Title:         info.Title,
		Sheets:        sheets,
		Folder:        folder,
	}, nil
}

// CreateSheet adds a new sheet tab to an existing spreadsheet.
func (s *SpreadsheetService) CreateSheet(ctx context.Context, spreadsheetID, title string) (*domain.SheetProperties, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return session.Sheets.AddSheet(ctx, id, title)
}

// ListSpreadsheets lists the spreadsheets in the working folder, or in the
// whole drive when none is configured.
func (s *SpreadsheetService) ListSpreadsheets(ctx context.Context) ([]domain.FileRef, error) {
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return session.Drive.ListSpreadsheets(ctx, session.FolderID)
}

// ShareSpreadsheet grants access to each recipient independently. A
// recipient without an email address or with an unknown role fails
// validation without a backend call. A missing role defaults to writer.
func (s *SpreadsheetService) ShareSpreadsheet(ctx context.Context, spreadsheetID string, recipients []domain.Recipient, sendNotification bool) (*domain.ShareReport, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	normalised := make([]domain.Recipient, len(recipients))
	for i, r := range recipients {
		if r.Role == "" {
			r.Role = "writer"
		}
		normalised[i] = r
	}

	agg := RunAll(ctx, normalised,
		func(r domain.Recipient) error {
			if r.EmailAddress == "" {
				return fmt.Errorf("%w: missing email_address in recipient entry", domain.ErrInvalidInput)
			}
			if !domain.ValidRole(r.Role) {
				return fmt.Errorf("%w: invalid role '%s', must be 'reader', 'commenter' or 'writer'", domain.ErrInvalidInput, r.Role)
			}
			return nil
		},
		func(ctx context.Context, r domain.Recipient) (string, error) {
			return session.Drive.CreatePermission(ctx, id, domain.Permission{
				EmailAddress:     r.EmailAddress,
				Role:             r.Role,
				SendNotification: sendNotification,
			})
		},
	)

	report := &domain.ShareReport{}
	for _, succ := range agg.Successes {
		report.Successes = append(report.Successes, domain.ShareSuccess{
			EmailAddress: succ.Item.EmailAddress,
			Role:         succ.Item.Role,
			PermissionID: succ.Data,
		})
	}
	for _, f := range agg.Failures {
		report.Failures = append(report.Failures, domain.ShareFailure{
			EmailAddress: f.Item.EmailAddress,
			Error:        f.Err,
		})
	}
	return report, nil
}

// DeleteSheet deletes a sheet by name.
func (s *SpreadsheetService) DeleteSheet(ctx context.Context, spreadsheetID, sheet string) error {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return err
	}
	sheetID, err := s.sheetIDByTitle(ctx, session, id, sheet)
	if err != nil {
		return err
	}
	return session.Sheets.DeleteSheet(ctx, id, sheetID)
}

// SheetProperties returns the properties of the named sheet.
func (s *SpreadsheetService) SheetProperties(ctx context.Context, spreadsheetID, sheet string) (*domain.SheetProperties, error) {
	info, err := s.SpreadsheetInfo(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return info.SheetByTitle(sheet)
}

// ClearSheetData clears a range, or the whole sheet when subRange is empty.
func (s *SpreadsheetService) ClearSheetData(ctx context.Context, spreadsheetID, sheet, subRange string) (*domain.ClearResult, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return session.Sheets.ClearValues(ctx, id, domain.QualifiedRange(sheet, subRange))
}

// SpreadsheetInfo returns spreadsheet metadata.
func (s *SpreadsheetService) SpreadsheetInfo(ctx context.Context, spreadsheetID string) (*domain.SpreadsheetInfo, error) {
	id, err := s.resolveSpreadsheetID(spreadsheetID)
	if err != nil {
		return nil, err
	}
	session, err := s.session.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return session.Sheets.Spreadsheet(ctx, id)
}
