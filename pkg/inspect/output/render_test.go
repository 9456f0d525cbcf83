package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmplinspect/pkg/inspect/models"
)

func TestRenderReport(t *testing.T) {
	rec := models.NewRecord()
	rec.Set("A", int64(1))
	rec.Set("B", int64(2))
	rec.Set("C", int64(3))

	report := &models.Report{
		BookName:  "template.xlsx",
		SheetName: "Sheet1",
		Headers:   []any{"A", "B", "C"},
		Sample:    rec,
	}

	got, err := RenderReport(report)
	require.NoError(t, err)

	expected := "HEADERS:\n" +
		"[\n  \"A\",\n  \"B\",\n  \"C\"\n]\n" +
		"\n" +
		"SAMPLE ROW:\n" +
		"{\n  \"A\": 1,\n  \"B\": 2,\n  \"C\": 3\n}\n"
	assert.Equal(t, expected, got)
}

func TestRenderReportEmptySample(t *testing.T) {
	report := &models.Report{
		BookName:  "template.xlsx",
		SheetName: "Sheet1",
		Headers:   []any{"A", "B"},
		Sample:    models.NewRecord(),
	}

	got, err := RenderReport(report)
	require.NoError(t, err)
	assert.Contains(t, got, "SAMPLE ROW:\n{}\n")
}

func TestRenderReportMixedHeaderTypes(t *testing.T) {
	report := &models.Report{
		Headers: []any{"Name", int64(2), nil, true},
		Sample:  models.NewRecord(),
	}

	got, err := RenderReport(report)
	require.NoError(t, err)
	assert.Contains(t, got, "HEADERS:\n[\n  \"Name\",\n  2,\n  null,\n  true\n]\n")
}

func TestToJSON(t *testing.T) {
	v := map[string]int{"rows": 2}

	compact, err := ToJSON(v, false)
	require.NoError(t, err)
	assert.Equal(t, `{"rows":2}`, string(compact))

	pretty, err := ToJSON(v, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"rows\": 2\n}", string(pretty))
}
