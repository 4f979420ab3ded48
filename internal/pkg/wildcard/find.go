package wildcard

// FindFuzzyMatches returns the 0-based end positions of every occurrence of
// pattern in text, in ascending order. The result is never nil.
func FindFuzzyMatches(pattern, text string, wildcard byte) []int {
	return BuildFor(pattern, wildcard).FindAll([]byte(text))
}

// FindAll resets the matcher, scans text and returns the end positions of
// every match in ascending order. The matcher is left positioned after text.
func (m *Matcher) FindAll(text []byte) []int {
	positions := []int{}

	m.Reset()
	if !m.MayMatch(text) {
		return positions
	}

	for i, ch := range text {
		m.Scan(ch, func() { positions = append(positions, i) })
	}
	return positions
}
