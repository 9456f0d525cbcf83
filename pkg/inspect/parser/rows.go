// Package parser provides excelize-level cell extraction utilities.
package parser

import (
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExtractRows reads up to maxRows rows from the top of a sheet, converting
// each cell to its native scalar type: string, int64, float64, bool,
// time.Time for date-formatted cells, or nil for empty cells.
func ExtractRows(f *excelize.File, sheetName string, maxRows int) ([][]any, error) {
	iter, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var result [][]any
	rowNum := 0
	for iter.Next() {
		rowNum++
		if rowNum > maxRows {
			break
		}
		raw, err := iter.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		row := make([]any, len(raw))
		for colIdx, cell := range raw {
			row[colIdx] = typeCell(f, sheetName, colIdx+1, rowNum, cell)
		}
		result = append(result, row)
	}
	return result, nil
}

// typeCell converts one raw cell value to its native scalar type. Column and
// row indices are 1-based.
func typeCell(f *excelize.File, sheetName string, col, row int, raw string) any {
	if raw == "" {
		return nil
	}

	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err == nil {
		switch cellType {
		case excelize.CellTypeBool:
			return raw == "1"
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			return raw
		case excelize.CellTypeDate:
			// ISO 8601 cell type stores the timestamp as text.
			if t, ok := parseISOTime(raw); ok {
				return t
			}
			return raw
		}
	}

	// Untyped cells hold numbers; a date number format marks them as
	// date/time values stored as serial numbers.
	if isDateStyled(f, sheetName, cellName) {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				// Serial fractions carry float jitter below the
				// millisecond; round it away.
				return t.Round(time.Millisecond)
			}
		}
	}
	return parseValue(raw)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func parseISOTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, ISOLayout, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
