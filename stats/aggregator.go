package stats

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNoData is returned when an Aggregator is built from an empty input.
var ErrNoData = errors.New("no data to aggregate")

// ValueError reports an input value that did not parse as a decimal
// number.
type ValueError struct {
	Value string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("value %q is not numeric", e.Value)
}

// Aggregator holds sum, average, min, max and count over a list of
// numeric values. Everything is computed once at construction; the
// arithmetic is exact decimal, not binary floating point.
type Aggregator struct {
	sum     decimal.Decimal
	average decimal.Decimal
	min     decimal.Decimal
	max     decimal.Decimal
	count   int
}

// NewAggregator aggregates the given values in a single pass. It fails
// on an empty input and on the first value that does not parse as a
// decimal number.
func NewAggregator(data []string) (*Aggregator, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	agg := &Aggregator{count: len(data)}
	for i, value := range data {
		current, err := decimal.NewFromString(value)
		if err != nil {
			return nil, &ValueError{Value: value}
		}
		if i == 0 {
			agg.min = current
			agg.max = current
		} else {
			if current.LessThan(agg.min) {
				agg.min = current
			}
			if current.GreaterThan(agg.max) {
				agg.max = current
			}
		}
		agg.sum = agg.sum.Add(current)
	}
	agg.average = agg.sum.Div(decimal.NewFromInt(int64(agg.count)))
	return agg, nil
}

func (agg *Aggregator) GetSum() decimal.Decimal {
	return agg.sum
}

// GetAverage returns sum divided by count. Non-terminating quotients
// are rounded at decimal.DivisionPrecision digits.
func (agg *Aggregator) GetAverage() decimal.Decimal {
	return agg.average
}

func (agg *Aggregator) GetMin() decimal.Decimal {
	return agg.min
}

func (agg *Aggregator) GetMax() decimal.Decimal {
	return agg.max
}

func (agg *Aggregator) GetCount() int {
	return agg.count
}
