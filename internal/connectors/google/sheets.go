package google

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
	"github.com/custodia-labs/sheetbridge/internal/core/ports/driven"
)

// Ensure SheetsClient implements the interface.
var _ driven.SheetsBackend = (*SheetsClient)(nil)

// SheetsClient implements driven.SheetsBackend against the Sheets v4 API.
type SheetsClient struct {
	svc *sheets.Service
}

// NewSheetsClient wraps an authenticated Sheets service.
func NewSheetsClient(svc *sheets.Service) *SheetsClient {
	return &SheetsClient{svc: svc}
}

// Spreadsheet fetches spreadsheet metadata.
func (c *SheetsClient) Spreadsheet(ctx context.Context, spreadsheetID string) (*domain.SpreadsheetInfo, error) {
	resp, err := c.svc.Spreadsheets.Get(spreadsheetID).
		Fields(googleapi.Field("spreadsheetId,properties.title,sheets.properties")).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet: %w", WrapError(err))
	}
	return toSpreadsheetInfo(resp), nil
}

// GridData fetches a range with includeGridData and returns the backend
// response decoded into a generic map: empty cells and all of the
// backend's metadata pass through untouched.
func (c *SheetsClient) GridData(ctx context.Context, spreadsheetID, qualifiedRange string) (map[string]any, error) {
	resp, err := c.svc.Spreadsheets.Get(spreadsheetID).
		Ranges(qualifiedRange).
		IncludeGridData(true).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get grid data: %w", WrapError(err))
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode grid data: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode grid data: %w", err)
	}
	return out, nil
}

// Values reads cell values from a range.
func (c *SheetsClient) Values(ctx context.Context, spreadsheetID, qualifiedRange string, render domain.ValueRender) ([][]any, error) {
	call := c.svc.Spreadsheets.Values.Get(spreadsheetID, qualifiedRange)
	if render != "" {
		call = call.ValueRenderOption(string(render))
	}
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values: %w", WrapError(err))
	}
	return resp.Values, nil
}

// UpdateValues writes a grid of values to a range.
func (c *SheetsClient) UpdateValues(ctx context.Context, spreadsheetID, qualifiedRange string, values [][]any) (*domain.UpdateResult, error) {
	body := &sheets.ValueRange{Values: values}
	resp, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, qualifiedRange, body).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("update values: %w", WrapError(err))
	}
	return toUpdateResult(resp), nil
}

// AppendValues appends rows after the last table row of a range.
func (c *SheetsClient) AppendValues(ctx context.Context, spreadsheetID, qualifiedRange string, values [][]any) (*domain.AppendResult, error) {
	body := &sheets.ValueRange{Values: values}
	resp, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, qualifiedRange, body).
		ValueInputOption(valueInputUserEntered).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("append values: %w", WrapError(err))
	}

	out := &domain.AppendResult{
		SpreadsheetID: resp.SpreadsheetId,
		TableRange:    resp.TableRange,
	}
	if resp.Updates != nil {
		out.Updates = *toUpdateResult(resp.Updates)
	}
	return out, nil
}

// ClearValues clears all values in a range.
func (c *SheetsClient) ClearValues(ctx context.Context, spreadsheetID, qualifiedRange string) (*domain.ClearResult, error) {
	resp, err := c.svc.Spreadsheets.Values.Clear(spreadsheetID, qualifiedRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("clear values: %w", WrapError(err))
	}
	return &domain.ClearResult{
		SpreadsheetID: resp.SpreadsheetId,
		ClearedRange:  resp.ClearedRange,
	}, nil
}

// BatchUpdateValues writes several ranges in one backend request.
func (c *SheetsClient) BatchUpdateValues(ctx context.Context, spreadsheetID string, entries []domain.ValueBatchEntry) (*domain.BatchUpdateResult, error) {
	resp, err := c.svc.Spreadsheets.Values.BatchUpdate(spreadsheetID, batchValuesRequest(entries)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("batch update values: %w", WrapError(err))
	}

	out := &domain.BatchUpdateResult{
		SpreadsheetID:       resp.SpreadsheetId,
		TotalUpdatedRows:    resp.TotalUpdatedRows,
		TotalUpdatedColumns: resp.TotalUpdatedColumns,
		TotalUpdatedCells:   resp.TotalUpdatedCells,
	}
	for _, r := range resp.Responses {
		out.Responses = append(out.Responses, *toUpdateResult(r))
	}
	return out, nil
}

// InsertDimension inserts rows or columns into a sheet.
func (c *SheetsClient) InsertDimension(ctx context.Context, spreadsheetID string, ins domain.DimensionInsert) error {
	_, err := c.batchUpdate(ctx, spreadsheetID, insertDimensionRequest(ins))
	if err != nil {
		return fmt.Errorf("insert dimension: %w", WrapError(err))
	}
	return nil
}

// AddSheet creates a new sheet tab and returns its properties from the
// structural reply.
func (c *SheetsClient) AddSheet(ctx context.Context, spreadsheetID, title string) (*domain.SheetProperties, error) {
	resp, err := c.batchUpdate(ctx, spreadsheetID, addSheetRequest(title))
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", WrapError(err))
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return nil, fmt.Errorf("add sheet: backend returned no sheet properties")
	}
	props := toSheetProperties(resp.Replies[0].AddSheet.Properties)
	return &props, nil
}

// DeleteSheet removes a sheet by its numeric ID.
func (c *SheetsClient) DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error {
	if _, err := c.batchUpdate(ctx, spreadsheetID, deleteSheetRequest(sheetID)); err != nil {
		return fmt.Errorf("delete sheet: %w", WrapError(err))
	}
	return nil
}

// SetSheetTitle renames a sheet identified by its numeric ID.
func (c *SheetsClient) SetSheetTitle(ctx context.Context, spreadsheetID string, sheetID int64, title string) error {
	if _, err := c.batchUpdate(ctx, spreadsheetID, updateSheetTitleRequest(sheetID, title)); err != nil {
		return fmt.Errorf("rename sheet: %w", WrapError(err))
	}
	return nil
}

// CopySheetTo copies a sheet into another spreadsheet.
func (c *SheetsClient) CopySheetTo(ctx context.Context, srcSpreadsheetID string, sheetID int64, dstSpreadsheetID string) (*domain.SheetProperties, error) {
	resp, err := c.svc.Spreadsheets.Sheets.CopyTo(srcSpreadsheetID, sheetID,
		&sheets.CopySheetToAnotherSpreadsheetRequest{
			DestinationSpreadsheetId: dstSpreadsheetID,
		}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("copy sheet: %w", WrapError(err))
	}
	props := toSheetProperties(resp)
	return &props, nil
}

// CreateSpreadsheet creates a new spreadsheet with the given title.
func (c *SheetsClient) CreateSpreadsheet(ctx context.Context, title string) (*domain.SpreadsheetInfo, error) {
	body := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}
	resp, err := c.svc.Spreadsheets.Create(body).
		Fields(googleapi.Field("spreadsheetId,properties,sheets")).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("create spreadsheet: %w", WrapError(err))
	}
	return toSpreadsheetInfo(resp), nil
}

func (c *SheetsClient) batchUpdate(ctx context.Context, spreadsheetID string, reqs ...*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	return c.svc.Spreadsheets.BatchUpdate(spreadsheetID,
		&sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).
		Context(ctx).Do()
}

func toSpreadsheetInfo(s *sheets.Spreadsheet) *domain.SpreadsheetInfo {
	info := &domain.SpreadsheetInfo{
		SpreadsheetID: s.SpreadsheetId,
	}
	if s.Properties != nil {
		info.Title = s.Properties.Title
	}
	for _, sheet := range s.Sheets {
		if sheet.Properties == nil {
			continue
		}
		info.Sheets = append(info.Sheets, toSheetProperties(sheet.Properties))
	}
	return info
}

func toSheetProperties(p *sheets.SheetProperties) domain.SheetProperties {
	props := domain.SheetProperties{
		SheetID: p.SheetId,
		Title:   p.Title,
		Index:   p.Index,
	}
	if p.GridProperties != nil {
		props.Grid = domain.GridProperties{
			RowCount:          p.GridProperties.RowCount,
			ColumnCount:       p.GridProperties.ColumnCount,
			FrozenRowCount:    p.GridProperties.FrozenRowCount,
			FrozenColumnCount: p.GridProperties.FrozenColumnCount,
		}
	}
	return props
}

func toUpdateResult(r *sheets.UpdateValuesResponse) *domain.UpdateResult {
	return &domain.UpdateResult{
		SpreadsheetID:  r.SpreadsheetId,
		UpdatedRange:   r.UpdatedRange,
		UpdatedRows:    r.UpdatedRows,
		UpdatedColumns: r.UpdatedColumns,
		UpdatedCells:   r.UpdatedCells,
	}
}
