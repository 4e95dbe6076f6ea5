package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sheetbridge/internal/core/domain"
)

// TestInsertDimensionRequest tests the structural insert translation.
func TestInsertDimensionRequest(t *testing.T) {
	req := insertDimensionRequest(domain.DimensionInsert{
		SheetID:           5,
		Dimension:         domain.DimensionRows,
		StartIndex:        4,
		EndIndex:          7,
		InheritFromBefore: true,
	})

	require.NotNil(t, req.InsertDimension)
	assert.Equal(t, int64(5), req.InsertDimension.Range.SheetId)
	assert.Equal(t, "ROWS", req.InsertDimension.Range.Dimension)
	assert.Equal(t, int64(4), req.InsertDimension.Range.StartIndex)
	assert.Equal(t, int64(7), req.InsertDimension.Range.EndIndex)
	assert.True(t, req.InsertDimension.InheritFromBefore)
}

// TestUpdateSheetTitleRequest tests that only the title field is updated.
func TestUpdateSheetTitleRequest(t *testing.T) {
	req := updateSheetTitleRequest(42, "Renamed")

	require.NotNil(t, req.UpdateSheetProperties)
	assert.Equal(t, int64(42), req.UpdateSheetProperties.Properties.SheetId)
	assert.Equal(t, "Renamed", req.UpdateSheetProperties.Properties.Title)
	assert.Equal(t, "title", req.UpdateSheetProperties.Fields)
}

// TestAddAndDeleteSheetRequests tests the remaining structural builders.
func TestAddAndDeleteSheetRequests(t *testing.T) {
	add := addSheetRequest("New Tab")
	require.NotNil(t, add.AddSheet)
	assert.Equal(t, "New Tab", add.AddSheet.Properties.Title)

	del := deleteSheetRequest(7)
	require.NotNil(t, del.DeleteSheet)
	assert.Equal(t, int64(7), del.DeleteSheet.SheetId)
}

// TestBatchValuesRequest tests entry order and the input option.
func TestBatchValuesRequest(t *testing.T) {
	req := batchValuesRequest([]domain.ValueBatchEntry{
		{Range: "Sheet1!A1:B2", Values: [][]any{{1, 2}}},
		{Range: "Sheet1!C3", Values: [][]any{{"x"}}},
	})

	assert.Equal(t, "USER_ENTERED", req.ValueInputOption)
	require.Len(t, req.Data, 2)
	assert.Equal(t, "Sheet1!A1:B2", req.Data[0].Range)
	assert.Equal(t, "Sheet1!C3", req.Data[1].Range)
	assert.Equal(t, [][]any{{"x"}}, req.Data[1].Values)
}
