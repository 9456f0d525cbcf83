package inspect

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// InspectError represents a failure while reading a sheet.
type InspectError struct {
	SheetName string
	Stage     string // "rows", "overview"
	Err       error
}

func (e *InspectError) Error() string {
	return fmt.Sprintf("inspection error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *InspectError) Unwrap() error {
	return e.Err
}

// NewInspectError creates a new InspectError.
func NewInspectError(sheetName, stage string, err error) *InspectError {
	return &InspectError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
