// Package ahocorasick provides an implementation of the Aho-Corasick string matching algorithm.
// The Aho-Corasick algorithm allows matching multiple patterns simultaneously against an input
// string in O(n + m + z) time, where n is the input length, m is the total pattern length,
// and z is the number of matches.
//
// Patterns are registered on a Builder and compiled into an immutable Automaton. The
// automaton is walked one byte at a time through NodeReference cursors, which makes it
// usable for online scanning where the input arrives incrementally.
package ahocorasick

// Pattern is a pattern registered under a caller-chosen identifier.
type Pattern struct {
	// ID is returned in match results. IDs need not be unique.
	ID int

	// Text is matched byte for byte.
	Text string
}

// MatchResult represents a match found by the automaton.
type MatchResult struct {
	// PatternID is the ID of the matched pattern.
	PatternID int

	// Offset is the byte offset in the input where the match ends (exclusive).
	Offset int
}

// Compile builds an automaton from a list of patterns.
func Compile(patterns []Pattern) *Automaton {
	builder := NewBuilder()
	for _, p := range patterns {
		builder.Add(p.Text, p.ID)
	}
	return builder.Build()
}
