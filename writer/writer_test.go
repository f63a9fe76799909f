package writer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"csvtable/bind"
	"csvtable/table"
)

func TestWriteRecordsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	schema := bind.Schema{
		{Column: "name", Field: "Name"},
		{Column: "age", Field: "Years"},
	}
	w := NewWriter(path, ",", schema)

	err := w.WriteRecords([]map[string]interface{}{
		{"Name": "alice", "Years": 30},
		{"Name": "bob", "Years": 25},
	})
	assert.Nil(t, err)

	reader, err := table.Open(path)
	assert.Nil(t, err)
	names, err := reader.GetColumnNames()
	assert.Nil(t, err)
	assert.Equal(t, []string{"name", "age"}, names)
	assert.Equal(t, []string{"alice,30", "bob,25"}, reader.GetRows(false))
}

func TestWriteRecordsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	schema := bind.Schema{
		{Column: "name", Field: "Name"},
		{Column: "age", Field: "Years"},
	}
	w := NewWriter(path, ",", schema)

	err := w.WriteRecords([]map[string]interface{}{{"Name": "alice"}})
	assert.Nil(t, err)

	reader, err := table.Open(path)
	assert.Nil(t, err)
	assert.Equal(t, []string{"alice,"}, reader.GetRows(false))
}

func TestWriteRecordsBadPath(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "missing", "out.csv"), ",", nil)

	err := w.WriteRecords(nil)
	assert.True(t, errors.Is(err, ErrWrite))
}
