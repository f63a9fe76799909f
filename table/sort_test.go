package table

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSortedByNumeric(t *testing.T) {
	reader := openTable(t, "name,age", "alice,30", "bob,25")

	sorted, err := reader.GetSortedBy(1, true)
	assert.Nil(t, err)
	assert.Equal(t, []string{"bob,25", "alice,30"}, sorted)
}

func TestGetSortedByLexicographic(t *testing.T) {
	reader := openTable(t, "name,age", "carol,9", "alice,10", "bob,2")

	// Lexicographic keys: "10" < "2" < "9".
	sorted, err := reader.GetSortedBy(1, false)
	assert.Nil(t, err)
	assert.Equal(t, []string{"alice,10", "bob,2", "carol,9"}, sorted)

	sorted, err = reader.GetSortedBy(1, true)
	assert.Nil(t, err)
	assert.Equal(t, []string{"bob,2", "carol,9", "alice,10"}, sorted)
}

func TestGetSortedByStability(t *testing.T) {
	reader := openTable(t, "name,team", "alice,red", "bob,blue", "carol,red", "dave,blue")

	sorted, err := reader.GetSortedBy(1, false)
	assert.Nil(t, err)
	assert.Equal(t, []string{"bob,blue", "dave,blue", "alice,red", "carol,red"}, sorted)
}

func TestGetSortedByNumericEquivalentKeys(t *testing.T) {
	reader := openHeaderless(t, "a,2.50", "b,1", "c,2.5")

	// 2.50 and 2.5 are the same decimal key; insertion order holds
	// within the bucket.
	sorted, err := reader.GetSortedBy(1, true)
	assert.Nil(t, err)
	assert.Equal(t, []string{"b,1", "a,2.50", "c,2.5"}, sorted)
}

func TestGetSortedByNumericParseError(t *testing.T) {
	reader := openTable(t, "name,age", "alice,30", "bob,young")

	_, err := reader.GetSortedBy(1, true)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Row)
	assert.Equal(t, "young", parseErr.Value)
}

func TestGetSortedByName(t *testing.T) {
	reader := openTable(t, "name,age", "alice,30", "bob,25")

	sorted, err := reader.GetSortedByName("age", true)
	assert.Nil(t, err)
	assert.Equal(t, []string{"bob,25", "alice,30"}, sorted)

	_, err = reader.GetSortedByName("salary", true)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
}

// A numeric sort is a permutation of the data rows with keys in
// non-decreasing order.
func TestGetSortedByNumericIsOrderedPermutation(t *testing.T) {
	reader := openTable(t, "id,score", "a,3", "b,1", "c,2", "d,1", "e,3")

	sorted, err := reader.GetSortedBy(1, true)
	assert.Nil(t, err)
	assert.Equal(t, reader.GetRowCount(), len(sorted))

	original := reader.GetRows(false)
	sortedCopy := append([]string(nil), sorted...)
	originalCopy := append([]string(nil), original...)
	sort.Strings(sortedCopy)
	sort.Strings(originalCopy)
	assert.Equal(t, originalCopy, sortedCopy)

	keys := make([]string, 0, len(sorted))
	for _, row := range sorted {
		keys = append(keys, reader.sortKey(row, 1))
	}
	assert.True(t, sort.StringsAreSorted(keys))
}

func BenchmarkGetSortedByNumeric(b *testing.B) {
	lines := make([]string, 0, 10001)
	lines = append(lines, "name,age")
	for i := 0; i < 10000; i++ {
		lines = append(lines, fmt.Sprintf("person%d,%d", i, (i*7919)%100))
	}
	reader, err := Open(writeTable(b, lines...))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = reader.GetSortedBy(1, true)
	}
}
