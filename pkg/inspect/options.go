// Package inspect provides template workbook inspection functionality.
package inspect

// Options configures inspection behavior.
type Options struct {
	// Sheet selects the sheet to read. Empty means the workbook's
	// active sheet.
	Sheet string
	// HeaderRow is the 1-based row holding the headers; the sample row is
	// the row directly below it. Zero or negative means row 1.
	HeaderRow int
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{HeaderRow: 1}
}

func (o Options) headerRow() int {
	if o.HeaderRow <= 0 {
		return 1
	}
	return o.HeaderRow
}
