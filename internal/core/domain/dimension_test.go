package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

// TestNewDimensionInsert tests index and inheritance derivation.
func TestNewDimensionInsert(t *testing.T) {
	tests := []struct {
		name        string
		dim         Dimension
		count       int64
		start       *int64
		wantStart   int64
		wantEnd     int64
		wantInherit bool
	}{
		{"nil start prepends", DimensionRows, 3, nil, 0, 3, false},
		{"explicit zero start", DimensionRows, 3, int64Ptr(0), 0, 3, false},
		{"positive start inherits", DimensionRows, 3, int64Ptr(4), 4, 7, true},
		{"columns at start", DimensionColumns, 2, nil, 0, 2, false},
		{"columns mid-sheet", DimensionColumns, 1, int64Ptr(10), 10, 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := NewDimensionInsert(tt.dim, 5, tt.count, tt.start)

			assert.Equal(t, int64(5), ins.SheetID)
			assert.Equal(t, tt.dim, ins.Dimension)
			assert.Equal(t, tt.wantStart, ins.StartIndex)
			assert.Equal(t, tt.wantEnd, ins.EndIndex)
			assert.Equal(t, tt.wantInherit, ins.InheritFromBefore)
		})
	}
}
