package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"csvtable/utils"
)

// GetColumn returns the field at the given position for every row,
// splitting each row on the delimiter. A row with fewer fields
// contributes the empty string, so an out-of-range index never fails;
// tables are allowed to be ragged. The header entry is dropped unless
// withHeader is true or the table is headerless.
func (r *Reader) GetColumn(columnIndex int, withHeader bool) []string {
	column := make([]string, 0, len(r.rows))
	for _, row := range r.rows {
		fields := strings.Split(row, r.delimiter)
		if utils.IsIndexBound(columnIndex, len(fields)) {
			column = append(column, fields[columnIndex])
		} else {
			column = append(column, "")
		}
	}
	if r.header && !withHeader && len(column) > 0 {
		column = column[1:]
	}
	return column
}

// GetColumnNames returns a copy of the header names.
func (r *Reader) GetColumnNames() ([]string, error) {
	if !r.header {
		return nil, ErrNoHeader
	}
	return append([]string(nil), r.columnNames...), nil
}

// GetColumnIndex returns the position of the named column. Absence is
// an error, not a sentinel index.
func (r *Reader) GetColumnIndex(columnName string) (int, error) {
	if !r.header {
		return 0, ErrNoHeader
	}
	for i, name := range r.columnNames {
		if name == columnName {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, columnName)
}

// GetColumnName returns the header name at the given position; ok is
// false when the table is headerless or the index is out of bounds.
func (r *Reader) GetColumnName(columnIndex int) (string, bool) {
	if !r.header || !utils.IsIndexBound(columnIndex, len(r.columnNames)) {
		return "", false
	}
	return r.columnNames[columnIndex], true
}

// GetColumnByName returns the column with the given header name.
func (r *Reader) GetColumnByName(columnName string, withHeader bool) ([]string, error) {
	columnIndex, err := r.GetColumnIndex(columnName)
	if err != nil {
		return nil, err
	}
	return r.GetColumn(columnIndex, withHeader), nil
}

// GetColumnAsIntegers parses every data value of the column as an
// integer. The first unparsable cell fails with a ParseError naming
// the offending row, column and value.
func (r *Reader) GetColumnAsIntegers(columnIndex int) ([]int, error) {
	column := r.GetColumn(columnIndex, false)
	initial := r.GetInitialRowIndex()
	integers := make([]int, 0, len(column))
	for i, value := range column {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return nil, &ParseError{Row: initial + i, Column: columnIndex, Value: value}
		}
		integers = append(integers, parsed)
	}
	return integers, nil
}

// GetColumnAsDecimals parses every data value of the column as an
// arbitrary-precision decimal.
func (r *Reader) GetColumnAsDecimals(columnIndex int) ([]decimal.Decimal, error) {
	column := r.GetColumn(columnIndex, false)
	initial := r.GetInitialRowIndex()
	decimals := make([]decimal.Decimal, 0, len(column))
	for i, value := range column {
		parsed, err := decimal.NewFromString(value)
		if err != nil {
			return nil, &ParseError{Row: initial + i, Column: columnIndex, Value: value}
		}
		decimals = append(decimals, parsed)
	}
	return decimals, nil
}

// GetColumnAsIntegersByName resolves the column name, then parses the
// column as integers.
func (r *Reader) GetColumnAsIntegersByName(columnName string) ([]int, error) {
	columnIndex, err := r.GetColumnIndex(columnName)
	if err != nil {
		return nil, err
	}
	return r.GetColumnAsIntegers(columnIndex)
}

// GetColumnAsDecimalsByName resolves the column name, then parses the
// column as decimals.
func (r *Reader) GetColumnAsDecimalsByName(columnName string) ([]decimal.Decimal, error) {
	columnIndex, err := r.GetColumnIndex(columnName)
	if err != nil {
		return nil, err
	}
	return r.GetColumnAsDecimals(columnIndex)
}

// GetMaxNumOfColumns returns the largest field count of any row.
func (r *Reader) GetMaxNumOfColumns() int {
	max := 0
	for i, count := range r.columnCounts {
		if i == 0 || count > max {
			max = count
		}
	}
	return max
}

// GetMinNumOfColumns returns the smallest field count of any row.
func (r *Reader) GetMinNumOfColumns() int {
	min := 0
	for i, count := range r.columnCounts {
		if i == 0 || count < min {
			min = count
		}
	}
	return min
}

// GetColumnCount returns the field count of one row, recomputed by
// splitting rather than read from the cached counts.
func (r *Reader) GetColumnCount(rowIndex int) (int, error) {
	fields, err := r.GetRowSplit(rowIndex)
	if err != nil {
		return 0, err
	}
	return len(fields), nil
}

// GetValue returns the cell at the given row and column. The row index
// is validated; a column index beyond the row's fields yields the
// empty string, matching the column padding policy.
func (r *Reader) GetValue(rowIndex int, columnIndex int) (string, error) {
	fields, err := r.GetRowSplit(rowIndex)
	if err != nil {
		return "", err
	}
	if !utils.IsIndexBound(columnIndex, len(fields)) {
		return "", nil
	}
	return fields[columnIndex], nil
}

// GetSubMatrix returns the rectangle bounded by the inclusive row and
// column ranges, each output row re-joined on the delimiter. Missing
// cells pad with the empty string; row indices are validated.
func (r *Reader) GetSubMatrix(rowStart, rowEnd, colStart, colEnd int) ([]string, error) {
	subMatrix := make([]string, 0)
	for rowIndex := rowStart; rowIndex <= rowEnd; rowIndex++ {
		fields := make([]string, 0, colEnd-colStart+1)
		for columnIndex := colStart; columnIndex <= colEnd; columnIndex++ {
			value, err := r.GetValue(rowIndex, columnIndex)
			if err != nil {
				return nil, err
			}
			fields = append(fields, value)
		}
		subMatrix = append(subMatrix, strings.Join(fields, r.delimiter))
	}
	return subMatrix, nil
}
