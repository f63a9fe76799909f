package table

import (
	"csvtable/stats"
)

// GetDataAggregator materializes the data values of the column and
// hands them to a stats.Aggregator for sum, min, max, average and
// count. Fails on an empty column or a non-numeric value.
func (r *Reader) GetDataAggregator(columnIndex int) (*stats.Aggregator, error) {
	return stats.NewAggregator(r.GetColumn(columnIndex, false))
}

// GetDataAggregatorByName resolves the column name, then aggregates as
// GetDataAggregator.
func (r *Reader) GetDataAggregatorByName(columnName string) (*stats.Aggregator, error) {
	columnIndex, err := r.GetColumnIndex(columnName)
	if err != nil {
		return nil, err
	}
	return r.GetDataAggregator(columnIndex)
}

// GetDuplicateSegregator materializes the data values of the column
// and hands them to a stats.Segregator for unique/duplicate
// partitioning.
func (r *Reader) GetDuplicateSegregator(columnIndex int) *stats.Segregator {
	return stats.NewSegregator(r.GetColumn(columnIndex, false))
}

// GetDuplicateSegregatorByName resolves the column name, then
// segregates as GetDuplicateSegregator.
func (r *Reader) GetDuplicateSegregatorByName(columnName string) (*stats.Segregator, error) {
	columnIndex, err := r.GetColumnIndex(columnName)
	if err != nil {
		return nil, err
	}
	return r.GetDuplicateSegregator(columnIndex), nil
}
