package stats

// Segregator partitions a list of values into those occurring exactly
// once and those occurring more than once, with per-value frequencies.
// Both partitions preserve first-seen order.
type Segregator struct {
	frequency     map[string]int
	uniqueData    []string
	duplicateData []string
}

// NewSegregator builds the frequency map in one pass over the data and
// partitions the distinct values in a second pass over first-seen order.
func NewSegregator(data []string) *Segregator {
	seg := &Segregator{frequency: make(map[string]int)}
	order := make([]string, 0)
	for _, element := range data {
		if _, seen := seg.frequency[element]; !seen {
			order = append(order, element)
		}
		seg.frequency[element]++
	}
	for _, element := range order {
		if seg.frequency[element] == 1 {
			seg.uniqueData = append(seg.uniqueData, element)
		} else {
			seg.duplicateData = append(seg.duplicateData, element)
		}
	}
	return seg
}

// GetUniqueData returns the values that occur exactly once, in
// first-seen order.
func (seg *Segregator) GetUniqueData() []string {
	return append([]string(nil), seg.uniqueData...)
}

func (seg *Segregator) GetUniqueCount() int {
	return len(seg.uniqueData)
}

// GetDuplicateData returns the distinct values that occur more than
// once, each listed once in first-seen order.
func (seg *Segregator) GetDuplicateData() []string {
	return append([]string(nil), seg.duplicateData...)
}

// GetDuplicateCount returns the number of distinct duplicated values,
// not the total number of duplicate occurrences.
func (seg *Segregator) GetDuplicateCount() int {
	return len(seg.duplicateData)
}

// GetFrequency returns how often the element occurred, 0 if it never
// did.
func (seg *Segregator) GetFrequency(element string) int {
	return seg.frequency[element]
}
