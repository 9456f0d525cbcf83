// Package output renders inspection results.
package output

import (
	"encoding/json"
	"strings"

	"tmplinspect/pkg/inspect/models"
)

const indent = "  "

// RenderReport renders the two-part text report: the header values as a
// pretty-printed JSON array under "HEADERS:", then the sample record as a
// pretty-printed JSON object under "SAMPLE ROW:", keys in column order.
func RenderReport(report *models.Report) (string, error) {
	headers, err := json.MarshalIndent(report.Headers, "", indent)
	if err != nil {
		return "", err
	}

	sample := report.Sample
	if sample == nil {
		sample = models.NewRecord()
	}
	record, err := json.MarshalIndent(sample, "", indent)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("HEADERS:\n")
	b.Write(headers)
	b.WriteString("\n\nSAMPLE ROW:\n")
	b.Write(record)
	b.WriteString("\n")
	return b.String(), nil
}

// ToJSON serializes v to JSON, optionally pretty-printed.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", indent)
	}
	return json.Marshal(v)
}
