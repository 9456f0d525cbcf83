package models

// SheetInfo summarizes a single visible sheet for the workbook overview.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// RowCount is the number of rows streamed from the sheet, capped at
	// the scan limit.
	RowCount int `json:"row_count"`
	// ColumnCount is the width of the widest streamed row.
	ColumnCount int `json:"column_count"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:D10"),
	// empty for a blank sheet.
	DataRange string `json:"data_range,omitempty"`
}
