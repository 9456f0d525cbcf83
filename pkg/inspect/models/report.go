package models

// Report holds the result of inspecting one template workbook.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// Headers contains the header-row cell values in column order,
	// preserving each value's native scalar type.
	Headers []any `json:"headers"`
	// Sample pairs header text with the sample-row value in the same
	// column. Empty when the sheet has no sample row.
	Sample *Record `json:"sample_row"`
}
