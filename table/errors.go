package table

import (
	"errors"
	"fmt"
)

// Errors returned by the table package.
var (
	// ErrRead wraps any I/O failure while loading a file.
	ErrRead = errors.New("reading delimited file")

	// ErrNoHeader is returned when a header-dependent operation is
	// invoked on a table loaded without a header.
	ErrNoHeader = errors.New("table has no header")

	// ErrColumnNotFound is returned when a column name is absent from
	// the header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrIndexOutOfBounds is returned when a row or column index is
	// outside the table bounds.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// ParseError reports a cell that was expected to be numeric but did
// not parse. Row and Column are absolute table indices.
type ParseError struct {
	Row    int
	Column int
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cell at row %d, column %d is not numeric: %q", e.Row, e.Column, e.Value)
}
