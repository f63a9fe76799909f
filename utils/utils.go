package utils

// IsIndexBound reports whether index is a valid position in a
// collection of the given size.
func IsIndexBound(index int, size int) bool {
	return index >= 0 && index < size
}

// IsNullOrEmpty reports whether the string has no content.
func IsNullOrEmpty(s string) bool {
	return len(s) == 0
}
