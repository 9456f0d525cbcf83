package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// ISOLayout renders a date/time value the way the report expects it: a
// zone-free ISO 8601 timestamp, since xlsx serial dates carry no zone.
const ISOLayout = "2006-01-02T15:04:05"

// isDateStyled reports whether the cell's number format marks it as a
// date or time value.
func isDateStyled(f *excelize.File, sheetName, cellName string) bool {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return customFmtHasDateTokens(*style.CustomNumFmt)
	}
	return isBuiltInDateFmt(style.NumFmt)
}

// isBuiltInDateFmt reports whether id is one of the built-in date/time
// number format IDs defined by ECMA-376 part 1, §18.8.30.
func isBuiltInDateFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// customFmtHasDateTokens scans a custom number format code for date/time
// placeholder letters, ignoring quoted literals, bracketed sections, and
// escaped characters.
func customFmtHasDateTokens(code string) bool {
	var stripped strings.Builder
	inQuote := false
	inBracket := false
	escaped := false
	for _, r := range code {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			stripped.WriteRune(r)
		}
	}
	return strings.ContainsAny(stripped.String(), "ymdhsYMDHS")
}
