package domain

// Dimension identifies the axis of a structural insertion.
type Dimension string

const (
	// DimensionRows inserts rows.
	DimensionRows Dimension = "ROWS"
	// DimensionColumns inserts columns.
	DimensionColumns Dimension = "COLUMNS"
)

// DimensionInsert describes a row/column insertion into a sheet.
type DimensionInsert struct {
	SheetID   int64
	Dimension Dimension
	// StartIndex is the 0-based index at which insertion begins.
	StartIndex int64
	// EndIndex is exclusive: StartIndex + count.
	EndIndex int64
	// InheritFromBefore makes the inserted rows/columns take their
	// formatting from the preceding row/column.
	InheritFromBefore bool
}

// NewDimensionInsert builds a DimensionInsert for count rows or columns.
// A nil start means prepend (index 0). InheritFromBefore is set only for an
// explicit start greater than zero: inserting at the very beginning has no
// preceding row/column to inherit from.
func NewDimensionInsert(dim Dimension, sheetID, count int64, start *int64) DimensionInsert {
	var idx int64
	inherit := false
	if start != nil {
		idx = *start
		inherit = *start > 0
	}
	return DimensionInsert{
		SheetID:           sheetID,
		Dimension:         dim,
		StartIndex:        idx,
		EndIndex:          idx + count,
		InheritFromBefore: inherit,
	}
}
