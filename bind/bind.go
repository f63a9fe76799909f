// Package bind maps table rows to records through an explicit
// column-to-field mapping table. There is no runtime annotation
// scanning: callers state the mapping, rows become untyped maps, and
// the maps decode into caller structs.
package bind

import (
	"github.com/mitchellh/mapstructure"

	"csvtable/utils"
)

// Binding pairs a source column name with the record field it
// populates.
type Binding struct {
	Column string
	Field  string
}

// Schema is the ordered mapping table for a record type.
type Schema []Binding

// SchemaFromColumns builds an identity schema: every column maps to a
// field of the same name.
func SchemaFromColumns(columnNames []string) Schema {
	schema := make(Schema, 0, len(columnNames))
	for _, name := range columnNames {
		schema = append(schema, Binding{Column: name, Field: name})
	}
	return schema
}

// Table is the part of the reader contract the binder consumes. The
// binder has no other knowledge of the table.
type Table interface {
	GetColumnNames() ([]string, error)
	GetInitialRowIndex() int
	GetRowCount() int
	GetRowSplit(rowIndex int) ([]string, error)
}

// Binder turns the data rows of a table into records per its schema.
type Binder struct {
	table  Table
	fields map[string]string
}

// NewBinder validates that the table has a header and indexes the
// schema. Columns absent from the schema are dropped from records.
func NewBinder(t Table, schema Schema) (*Binder, error) {
	if _, err := t.GetColumnNames(); err != nil {
		return nil, err
	}
	fields := make(map[string]string, len(schema))
	for _, binding := range schema {
		fields[binding.Column] = binding.Field
	}
	return &Binder{table: t, fields: fields}, nil
}

// Records returns one untyped map per data row, pairing column names
// positionally with the row's split values and renaming keys through
// the schema. Short rows contribute the empty string for missing
// fields.
func (b *Binder) Records() ([]map[string]interface{}, error) {
	columnNames, err := b.table.GetColumnNames()
	if err != nil {
		return nil, err
	}
	initial := b.table.GetInitialRowIndex()
	records := make([]map[string]interface{}, 0, b.table.GetRowCount())
	for i := initial; i < initial+b.table.GetRowCount(); i++ {
		values, err := b.table.GetRowSplit(i)
		if err != nil {
			return nil, err
		}
		record := make(map[string]interface{}, len(columnNames))
		for j, columnName := range columnNames {
			field, bound := b.fields[columnName]
			if !bound {
				continue
			}
			value := ""
			if utils.IsIndexBound(j, len(values)) {
				value = values[j]
			}
			record[field] = value
		}
		records = append(records, record)
	}
	return records, nil
}

// Decode materializes the records into out, which must be a pointer to
// a slice of the target record type. String cells convert weakly into
// numeric and boolean fields.
func (b *Binder) Decode(out interface{}) error {
	records, err := b.Records()
	if err != nil {
		return err
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(records)
}
