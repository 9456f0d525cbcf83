package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOrder(t *testing.T) {
	r := NewRecord()
	r.Set("Zebra", 1)
	r.Set("Alpha", 2)
	r.Set("Mango", 3)

	assert.Equal(t, []string{"Zebra", "Alpha", "Mango"}, r.Keys())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"Zebra":1,"Alpha":2,"Mango":3}`, string(data))
}

func TestRecordOverwriteKeepsPosition(t *testing.T) {
	r := NewRecord()
	r.Set("A", 1)
	r.Set("B", 2)
	r.Set("A", 9)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"A", "B"}, r.Keys())

	got, ok := r.Get("A")
	require.True(t, ok)
	assert.Equal(t, 9, got)
}

func TestRecordEmptyMarshalsToEmptyObject(t *testing.T) {
	data, err := json.Marshal(NewRecord())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestRecordMarshalIndent(t *testing.T) {
	r := NewRecord()
	r.Set("A", int64(1))
	r.Set("B", "two")

	data, err := json.MarshalIndent(r, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"A\": 1,\n  \"B\": \"two\"\n}", string(data))
}
