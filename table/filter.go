package table

import (
	"fmt"
	"regexp"
)

// compileFullMatch compiles expr so that it must match a whole cell,
// not a substring of it.
func compileFullMatch(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + expr + `)\z`)
}

// GetRowNumbers returns the absolute indices of rows whose cell in the
// given column fully matches the expression. The pattern is compiled
// once; absolute position 0 is always skipped. An out-of-range column
// index yields no matches rather than an error, in line with the
// column padding policy.
func (r *Reader) GetRowNumbers(columnIndex int, expr string) ([]int, error) {
	pattern, err := compileFullMatch(expr)
	if err != nil {
		return nil, err
	}
	column := r.GetColumn(columnIndex, true)
	rowNumbers := make([]int, 0)
	for i := 1; i < len(column); i++ {
		if pattern.MatchString(column[i]) {
			rowNumbers = append(rowNumbers, i)
		}
	}
	return rowNumbers, nil
}

// GetRowNumbersByName resolves the column name, then matches as
// GetRowNumbers.
func (r *Reader) GetRowNumbersByName(columnName string, expr string) ([]int, error) {
	columnIndex, err := r.GetColumnIndex(columnName)
	if err != nil {
		return nil, err
	}
	return r.GetRowNumbers(columnIndex, expr)
}

// GetRowsMatching returns the rows whose cell in the given column
// fully matches the expression. The header row is prepended when
// withHeader is true and a header exists.
func (r *Reader) GetRowsMatching(columnIndex int, expr string, withHeader bool) ([]string, error) {
	rowNumbers, err := r.GetRowNumbers(columnIndex, expr)
	if err != nil {
		return nil, err
	}
	rows, err := r.GetRowsAt(rowNumbers)
	if err != nil {
		return nil, err
	}
	if withHeader && r.header {
		rows = append([]string{r.rows[0]}, rows...)
	}
	return rows, nil
}

// GetRowsMatchingByName resolves the column name, then filters as
// GetRowsMatching.
func (r *Reader) GetRowsMatchingByName(columnName string, expr string, withHeader bool) ([]string, error) {
	columnIndex, err := r.GetColumnIndex(columnName)
	if err != nil {
		return nil, err
	}
	return r.GetRowsMatching(columnIndex, expr, withHeader)
}

// GetColumnMatching returns the values of the column that fully match
// the expression. With withHeader the column name is prepended, which
// requires a header.
func (r *Reader) GetColumnMatching(columnIndex int, expr string, withHeader bool) ([]string, error) {
	pattern, err := compileFullMatch(expr)
	if err != nil {
		return nil, err
	}
	filtered := make([]string, 0)
	if withHeader {
		name, ok := r.GetColumnName(columnIndex)
		if !ok {
			if !r.header {
				return nil, ErrNoHeader
			}
			return nil, fmt.Errorf("%w: column %d", ErrIndexOutOfBounds, columnIndex)
		}
		filtered = append(filtered, name)
	}
	for _, value := range r.GetColumn(columnIndex, false) {
		if pattern.MatchString(value) {
			filtered = append(filtered, value)
		}
	}
	return filtered, nil
}

// selectByColumnCount scans the cached per-row field counts from the
// first data row and keeps rows whose count satisfies the predicate.
// Single pass, no split.
func (r *Reader) selectByColumnCount(match func(count int) bool) []string {
	rows := make([]string, 0)
	for i := r.GetInitialRowIndex(); i < len(r.columnCounts); i++ {
		if match(r.columnCounts[i]) {
			rows = append(rows, r.rows[i])
		}
	}
	return rows
}

// GetRowsHavingColumns returns the data rows with exactly the given
// field count.
func (r *Reader) GetRowsHavingColumns(numColumns int) []string {
	return r.selectByColumnCount(func(count int) bool { return count == numColumns })
}

// GetRowsNotHavingColumns returns the data rows whose field count
// differs from the given one.
func (r *Reader) GetRowsNotHavingColumns(numColumns int) []string {
	return r.selectByColumnCount(func(count int) bool { return count != numColumns })
}

// GetRowsHavingColsLesserThan returns the data rows with fewer fields
// than the given count.
func (r *Reader) GetRowsHavingColsLesserThan(numColumns int) []string {
	return r.selectByColumnCount(func(count int) bool { return count < numColumns })
}

// GetRowsHavingColsMoreThan returns the data rows with more fields
// than the given count.
func (r *Reader) GetRowsHavingColsMoreThan(numColumns int) []string {
	return r.selectByColumnCount(func(count int) bool { return count > numColumns })
}
