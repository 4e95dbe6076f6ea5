// Package domain defines the core business entities for sheetbridge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SpreadsheetInfo / SheetProperties: spreadsheet and sheet metadata
//   - DimensionInsert: a structural row/column insertion
//   - ValueBatchEntry: one range of a batched value update
//   - SpreadsheetSummary: headers and first rows per sheet
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
