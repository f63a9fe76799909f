package table

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"csvtable/utils"
)

// GetSortedBy returns the data rows grouped by the value of the given
// column and concatenated in ascending key order. This is a stable
// bucket sort: rows sharing a key keep their original relative order,
// never resolved by a secondary key. Keys order lexicographically by
// default, or by their decimal value when numeric is true; an
// unparsable key cell fails numeric mode with a ParseError.
func (r *Reader) GetSortedBy(columnIndex int, numeric bool) ([]string, error) {
	if numeric {
		return r.numericSort(columnIndex)
	}
	return r.stringSort(columnIndex), nil
}

// GetSortedByName resolves the column name, then sorts as GetSortedBy.
func (r *Reader) GetSortedByName(columnName string, numeric bool) ([]string, error) {
	columnIndex, err := r.GetColumnIndex(columnName)
	if err != nil {
		return nil, err
	}
	return r.GetSortedBy(columnIndex, numeric)
}

func (r *Reader) stringSort(columnIndex int) []string {
	keys := make([]string, 0)
	buckets := make(map[string][]string)
	for _, row := range r.GetRows(false) {
		key := r.sortKey(row, columnIndex)
		if _, seen := buckets[key]; !seen {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], row)
	}
	sort.Strings(keys)

	sorted := make([]string, 0, r.GetRowCount())
	for _, key := range keys {
		sorted = append(sorted, buckets[key]...)
	}
	return sorted
}

func (r *Reader) numericSort(columnIndex int) ([]string, error) {
	type bucket struct {
		key  decimal.Decimal
		rows []string
	}
	buckets := make([]*bucket, 0)
	// Keyed by the normalized decimal string, so "2.50" and "2.5"
	// land in the same bucket.
	byKey := make(map[string]*bucket)

	initial := r.GetInitialRowIndex()
	for i, row := range r.GetRows(false) {
		cell := r.sortKey(row, columnIndex)
		key, err := decimal.NewFromString(cell)
		if err != nil {
			return nil, &ParseError{Row: initial + i, Column: columnIndex, Value: cell}
		}
		b, seen := byKey[key.String()]
		if !seen {
			b = &bucket{key: key}
			byKey[key.String()] = b
			buckets = append(buckets, b)
		}
		b.rows = append(b.rows, row)
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].key.LessThan(buckets[j].key)
	})

	sorted := make([]string, 0, r.GetRowCount())
	for _, b := range buckets {
		sorted = append(sorted, b.rows...)
	}
	return sorted, nil
}

// sortKey extracts the sort cell for a row, padding with the empty
// string when the row is short.
func (r *Reader) sortKey(row string, columnIndex int) string {
	fields := strings.Split(row, r.delimiter)
	if !utils.IsIndexBound(columnIndex, len(fields)) {
		return ""
	}
	return fields[columnIndex]
}
