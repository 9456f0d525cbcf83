package parser

import (
	"github.com/xuri/excelize/v2"
)

// DataRange returns the bounding range of non-empty cells in a sheet in
// Excel range notation (e.g. "A1:D10"), or "" for a blank sheet.
func DataRange(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return "", err
	}
	return startCell + ":" + endCell, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
