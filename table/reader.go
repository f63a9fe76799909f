package table

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"csvtable/utils"
)

// DefaultDelimiter separates fields when no delimiter is given.
const DefaultDelimiter = ","

// Reader is an immutable in-memory table over a delimited text file.
// The whole file is loaded once at construction; every query method
// returns a freshly allocated result, so a Reader is safe to share
// across goroutines.
//
// Field splitting is a plain split on the delimiter with no quoting or
// escaping. A delimiter inside a value is indistinguishable from a
// field boundary; this is documented behavior, not a defect to fix.
type Reader struct {
	rows         []string
	columnCounts []int
	header       bool
	delimiter    string
	columnNames  []string
}

// Open loads the file with comma as the delimiter, treating the first
// line as the header.
func Open(path string) (*Reader, error) {
	return OpenFile(path, DefaultDelimiter, true)
}

// OpenDelimited loads the file with the given delimiter, treating the
// first line as the header.
func OpenDelimited(path string, delimiter string) (*Reader, error) {
	return OpenFile(path, delimiter, true)
}

// OpenFile loads the file line by line in file order. Each line is
// stored raw along with its field count; an empty line counts zero
// fields. Any I/O failure, including on close, surfaces wrapped in
// ErrRead and no table is returned.
func OpenFile(path string, delimiter string, header bool) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	reader := &Reader{
		rows:         make([]string, 0),
		columnCounts: make([]int, 0),
		header:       header,
		delimiter:    delimiter,
	}
	scanner := bufio.NewScanner(file)
	// Lines can be arbitrarily long; the default 64KB token cap would
	// reject valid files.
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for scanner.Scan() {
		line := scanner.Text()
		reader.rows = append(reader.rows, line)
		if utils.IsNullOrEmpty(line) {
			reader.columnCounts = append(reader.columnCounts, 0)
		} else {
			reader.columnCounts = append(reader.columnCounts, len(strings.Split(line, delimiter)))
		}
	}
	err = scanner.Err()
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	if header {
		if len(reader.rows) == 0 {
			return nil, fmt.Errorf("%w: %s is empty, expected a header line", ErrRead, path)
		}
		reader.columnNames = strings.Split(reader.rows[0], delimiter)
	}
	return reader, nil
}

// HeaderAvailable reports whether the first line was loaded as a
// header.
func (r *Reader) HeaderAvailable() bool {
	return r.header
}

// Delimiter returns the delimiter used for every split operation.
func (r *Reader) Delimiter() string {
	return r.delimiter
}

// GetRow returns the raw row text at the absolute index, header line
// included at index 0 when present.
func (r *Reader) GetRow(rowIndex int) (string, error) {
	if !utils.IsIndexBound(rowIndex, len(r.rows)) {
		return "", fmt.Errorf("%w: row %d of %d", ErrIndexOutOfBounds, rowIndex, len(r.rows))
	}
	return r.rows[rowIndex], nil
}

// GetRowSplit returns the row at the absolute index split on the
// delimiter.
func (r *Reader) GetRowSplit(rowIndex int) ([]string, error) {
	row, err := r.GetRow(rowIndex)
	if err != nil {
		return nil, err
	}
	return strings.Split(row, r.delimiter), nil
}

// GetRows returns a copy of all rows. The header line is excluded
// unless withHeader is true or the table is headerless.
func (r *Reader) GetRows(withHeader bool) []string {
	rows := append([]string(nil), r.rows...)
	if r.header && !withHeader {
		rows = rows[1:]
	}
	return rows
}

// GetRowsAt returns the rows at the given absolute indices, in the
// order requested. Duplicates are permitted; every index is validated.
func (r *Reader) GetRowsAt(rowNumbers []int) ([]string, error) {
	rows := make([]string, 0, len(rowNumbers))
	for _, rowNumber := range rowNumbers {
		row, err := r.GetRow(rowNumber)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetRowRange returns the rows from start to end, both inclusive.
func (r *Reader) GetRowRange(start int, end int) ([]string, error) {
	rows := make([]string, 0)
	for rowIndex := start; rowIndex <= end; rowIndex++ {
		row, err := r.GetRow(rowIndex)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetRowCount returns the number of data rows, excluding the header
// line when present.
func (r *Reader) GetRowCount() int {
	if r.header {
		return len(r.rows) - 1
	}
	return len(r.rows)
}

// GetInitialRowIndex returns the absolute index of the first data row:
// 1 when a header is present, 0 otherwise.
func (r *Reader) GetInitialRowIndex() int {
	if r.header {
		return 1
	}
	return 0
}

// IsConsistent reports whether every row has the same field count.
// An empty table is not consistent.
func (r *Reader) IsConsistent() bool {
	if len(r.columnCounts) == 0 {
		return false
	}
	for _, count := range r.columnCounts {
		if count != r.columnCounts[0] {
			return false
		}
	}
	return true
}
