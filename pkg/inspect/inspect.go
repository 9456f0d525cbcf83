package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"

	"tmplinspect/pkg/inspect/models"
	"tmplinspect/pkg/inspect/parser"
)

// scanLimit caps how many rows the sheet overview streams per sheet.
const scanLimit = 1000

// Inspector reads a template workbook. It keeps two readers open on the
// same file: excelize for sheet metadata and typed cell access, and a
// streaming reader for row counting that never loads a whole sheet.
type Inspector struct {
	path string
	opts Options
	file *excelize.File
	xl   *xlsxreader.XlsxFileCloser
}

// New opens the workbook at path for inspection.
func New(path string, opts Options) (*Inspector, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	return &Inspector{path: path, opts: opts, file: f, xl: xl}, nil
}

// Close releases both underlying readers.
func (i *Inspector) Close() error {
	if i.file != nil {
		i.file.Close()
	}
	if i.xl != nil {
		i.xl.Close()
	}
	return nil
}

// Inspect reads the header row and the sample row below it and pairs them
// positionally into a report. Pairing stops at the shorter of the two rows;
// date/time sample values are normalized to ISO 8601 text.
func (i *Inspector) Inspect() (*models.Report, error) {
	sheetName, err := i.sheetName()
	if err != nil {
		return nil, err
	}

	headerRow := i.opts.headerRow()
	rows, err := parser.ExtractRows(i.file, sheetName, headerRow+1)
	if err != nil {
		return nil, NewInspectError(sheetName, "rows", err)
	}

	headers := []any{}
	if len(rows) >= headerRow {
		headers = rows[headerRow-1]
	}

	var sampleRow []any
	if len(rows) > headerRow {
		sampleRow = rows[headerRow]
	}

	sample := models.NewRecord()
	for idx, header := range headers {
		if idx >= len(sampleRow) {
			break
		}
		sample.Set(headerKey(header), normalizeValue(sampleRow[idx]))
	}

	return &models.Report{
		BookName:  filepath.Base(i.path),
		SheetName: sheetName,
		Headers:   headers,
		Sample:    sample,
	}, nil
}

// Sheets returns an overview of the workbook's visible sheets.
func (i *Inspector) Sheets() ([]models.SheetInfo, error) {
	sheets := i.file.GetSheetList()
	out := make([]models.SheetInfo, 0, len(sheets))
	for _, sheetName := range sheets {
		visible, err := i.file.GetSheetVisible(sheetName)
		if err != nil || !visible {
			continue
		}

		rowCount, colCount := i.scanSheet(sheetName)
		dataRange, err := parser.DataRange(i.file, sheetName)
		if err != nil {
			return nil, NewInspectError(sheetName, "overview", err)
		}

		out = append(out, models.SheetInfo{
			Name:        sheetName,
			RowCount:    rowCount,
			ColumnCount: colCount,
			DataRange:   dataRange,
		})
	}
	return out, nil
}

// sheetName resolves the sheet to inspect: the configured override when set,
// otherwise the workbook's active sheet, falling back to the first sheet.
func (i *Inspector) sheetName() (string, error) {
	if i.opts.Sheet != "" {
		idx, err := i.file.GetSheetIndex(i.opts.Sheet)
		if err != nil || idx < 0 {
			return "", fmt.Errorf("%w: %s", ErrSheetNotFound, i.opts.Sheet)
		}
		return i.opts.Sheet, nil
	}

	name := i.file.GetSheetName(i.file.GetActiveSheetIndex())
	if name == "" {
		name = i.file.GetSheetName(0)
	}
	if name == "" {
		return "", ErrNoSheets
	}
	return name, nil
}

// scanSheet streams row and column counts for a sheet, capped at scanLimit.
func (i *Inspector) scanSheet(sheetName string) (rows, cols int) {
	for row := range i.xl.ReadRows(sheetName) {
		rows++
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
		if rows >= scanLimit {
			break
		}
	}
	return rows, cols
}

// normalizeValue converts date/time values to ISO 8601 text; every other
// value passes through unchanged.
func normalizeValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(parser.ISOLayout)
	}
	return v
}

// headerKey renders a header cell as a record key. Headers are usually
// text, but any scalar can appear in row 1.
func headerKey(v any) string {
	switch h := v.(type) {
	case nil:
		return ""
	case string:
		return h
	case bool:
		return strconv.FormatBool(h)
	case int64:
		return strconv.FormatInt(h, 10)
	case float64:
		return strconv.FormatFloat(h, 'f', -1, 64)
	case time.Time:
		return h.Format(parser.ISOLayout)
	default:
		return fmt.Sprintf("%v", h)
	}
}
