package google

import (
	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
)

// Values are written as the user would type them: formulas are evaluated,
// numbers and dates are parsed.
const valueInputUserEntered = "USER_ENTERED"

// insertDimensionRequest translates a dimension insertion into the
// structural batch request the backend expects.
func insertDimensionRequest(ins domain.DimensionInsert) *sheets.Request {
	return &sheets.Request{
		InsertDimension: &sheets.InsertDimensionRequest{
			Range: &sheets.DimensionRange{
				SheetId:    ins.SheetID,
				Dimension:  string(ins.Dimension),
				StartIndex: ins.StartIndex,
				EndIndex:   ins.EndIndex,
			},
			InheritFromBefore: ins.InheritFromBefore,
		},
	}
}

func addSheetRequest(title string) *sheets.Request {
	return &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{Title: title},
		},
	}
}

func deleteSheetRequest(sheetID int64) *sheets.Request {
	return &sheets.Request{
		DeleteSheet: &sheets.DeleteSheetRequest{SheetId: sheetID},
	}
}

func updateSheetTitleRequest(sheetID int64, title string) *sheets.Request {
	return &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: sheetID,
				Title:   title,
			},
			Fields: "title",
		},
	}
}

// batchValuesRequest translates batch entries into one batchUpdate body,
// one {range, values} data element per entry, preserving entry order.
func batchValuesRequest(entries []domain.ValueBatchEntry) *sheets.BatchUpdateValuesRequest {
	data := make([]*sheets.ValueRange, len(entries))
	for i, e := range entries {
		data[i] = &sheets.ValueRange{
			Range:  e.Range,
			Values: e.Values,
		}
	}
	return &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputUserEntered,
		Data:             data,
	}
}
