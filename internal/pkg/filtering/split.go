// Package filtering provides pattern utilities shared by the wildcard matcher
// and the command line: splitting patterns into literal pieces and validating
// user-supplied patterns.
package filtering

// Split cuts s at every byte for which isSeparator returns true and returns
// the runs between them. The result always has one more element than the
// number of separators: separators at either end or next to each other
// produce empty pieces, and an empty s yields a single empty piece.
func Split(s string, isSeparator func(byte) bool) []string {
	pieces := make([]string, 0, 1)

	start := 0
	for i := 0; i < len(s); i++ {
		if isSeparator(s[i]) {
			pieces = append(pieces, s[start:i])
			start = i + 1
		}
	}

	return append(pieces, s[start:])
}

// IsByte returns a separator predicate matching exactly b.
func IsByte(b byte) func(byte) bool {
	return func(ch byte) bool { return ch == b }
}
