// Package writer serializes records back to a delimited text file
// using the same explicit schema as the bind package. Like the reader,
// it performs no quoting or escaping of embedded delimiters.
package writer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"csvtable/bind"
)

// ErrWrite wraps any I/O failure while writing.
var ErrWrite = errors.New("writing delimited file")

// Writer writes records to one file with a fixed schema and delimiter.
type Writer struct {
	path      string
	delimiter string
	schema    bind.Schema
}

// NewWriter builds a writer for the given path. The schema fixes both
// the header line and the field order of every record.
func NewWriter(path string, delimiter string, schema bind.Schema) *Writer {
	return &Writer{path: path, delimiter: delimiter, schema: schema}
}

// WriteRecords creates or truncates the file, writes the schema's
// column names as the header line, then one line per record with the
// values in schema order. Missing fields write as the empty string.
func (w *Writer) WriteRecords(records []map[string]interface{}) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	buffered := bufio.NewWriter(file)
	writeErr := w.write(buffered, records)
	if err := buffered.Flush(); writeErr == nil {
		writeErr = err
	}
	if err := file.Close(); writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		return fmt.Errorf("%w: %v", ErrWrite, writeErr)
	}
	return nil
}

func (w *Writer) write(out *bufio.Writer, records []map[string]interface{}) error {
	header := make([]string, len(w.schema))
	for i, binding := range w.schema {
		header[i] = binding.Column
	}
	if _, err := fmt.Fprintln(out, strings.Join(header, w.delimiter)); err != nil {
		return err
	}
	for _, record := range records {
		fields := make([]string, len(w.schema))
		for i, binding := range w.schema {
			if value, present := record[binding.Field]; present {
				fields[i] = fmt.Sprint(value)
			}
		}
		if _, err := fmt.Fprintln(out, strings.Join(fields, w.delimiter)); err != nil {
			return err
		}
	}
	return nil
}
