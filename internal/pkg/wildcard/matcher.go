// Package wildcard finds the end positions of a pattern with single-byte
// wildcards in a text. The pattern is cut into literal pieces at the
// wildcards, the pieces are compiled into one Aho-Corasick automaton, and
// each candidate start offset counts how many pieces were seen at the
// offset they occupy in the pattern.
package wildcard

import (
	literal "github.com/coregx/ahocorasick"

	"github.com/endorses/wildmatch/internal/pkg/ahocorasick"
	"github.com/endorses/wildmatch/internal/pkg/filtering"
	"github.com/endorses/wildmatch/internal/pkg/logger"
)

// Matcher scans a text one byte at a time and reports where the pattern it
// was built for ends. It is not safe for concurrent use.
type Matcher struct {
	automaton *ahocorasick.Automaton

	// pieceEnds[k] is the offset just past piece k within the pattern.
	pieceEnds []int

	patternLen int
	wildcard   byte

	// prefilter finds the longest literal piece; nil when every piece is empty.
	prefilter *literal.Automaton

	cursor ahocorasick.NodeReference

	// position is the number of bytes scanned since the last Reset.
	position int

	// counts is a ring indexed by candidate start offset. Only starts in
	// [position-patternLen, position] can still complete.
	counts []int
}

// BuildFor compiles pattern, in which every occurrence of wildcard matches
// any single byte.
func BuildFor(pattern string, wildcard byte) *Matcher {
	pieces := filtering.Split(pattern, filtering.IsByte(wildcard))

	m := &Matcher{
		pieceEnds:  make([]int, len(pieces)),
		patternLen: len(pattern),
		wildcard:   wildcard,
		counts:     make([]int, len(pattern)+1),
	}

	builder := ahocorasick.NewBuilder()
	longest := ""
	offset := 0
	for k, piece := range pieces {
		builder.Add(piece, k)
		offset += len(piece)
		m.pieceEnds[k] = offset
		offset++ // the wildcard that follows
		if len(piece) > len(longest) {
			longest = piece
		}
	}
	m.automaton = builder.Build()

	if longest != "" {
		lb := literal.NewBuilder()
		lb.AddPattern([]byte(longest))
		prefilter, err := lb.Build()
		if err != nil {
			logger.Warn("Literal prefilter unavailable, scanning every text",
				"piece", longest,
				"error", err)
		} else {
			m.prefilter = prefilter
		}
	}

	logger.Debug("Built wildcard matcher",
		"pattern_length", m.patternLen,
		"pieces", len(pieces),
		"nodes", m.automaton.NodeCount())

	m.Reset()
	return m
}

// Reset rewinds the matcher so that the next Scan is treated as the first
// byte of a new text.
func (m *Matcher) Reset() {
	m.cursor = m.automaton.Root()
	m.position = 0
	for i := range m.counts {
		m.counts[i] = 0
	}

	// A leading empty piece matches before the first byte, a position the
	// scan never visits.
	if m.pieceEnds[0] == 0 {
		m.counts[0] = 1
	}
}

// Scan consumes the next byte of the text and calls onMatch if the pattern
// ends at it. The caller tracks the index of the byte.
func (m *Matcher) Scan(ch byte, onMatch func()) {
	i := m.position
	m.position++

	// Start i+1 enters the window and reuses the slot of a start that can
	// no longer complete.
	m.counts[m.slot(i+1)] = 0

	last := len(m.pieceEnds) - 1
	lastStart := -1

	m.cursor = m.cursor.Next(ch)
	m.cursor.GenerateMatches(func(k int) {
		start := i + 1 - m.pieceEnds[k]
		if start < 0 {
			return
		}
		m.counts[m.slot(start)]++
		if k == last {
			lastStart = start
		}
	})

	if lastStart >= 0 && m.counts[m.slot(lastStart)] == len(m.pieceEnds) {
		onMatch()
	}
}

// MayMatch reports whether text can contain a match at all. It returns
// false only when the longest literal piece does not occur in text.
func (m *Matcher) MayMatch(text []byte) bool {
	if len(text) < m.patternLen {
		return false
	}
	if m.prefilter == nil {
		return true
	}
	return m.prefilter.IsMatch(text)
}

// Pieces returns the number of literal pieces, including empty ones.
func (m *Matcher) Pieces() int {
	return len(m.pieceEnds)
}

// PatternLength returns the length of the compiled pattern in bytes.
func (m *Matcher) PatternLength() int {
	return m.patternLen
}

// Wildcard returns the wildcard byte the matcher was built with.
func (m *Matcher) Wildcard() byte {
	return m.wildcard
}

// NodeCount returns the size of the piece automaton.
func (m *Matcher) NodeCount() int {
	return m.automaton.NodeCount()
}

func (m *Matcher) slot(start int) int {
	return start % len(m.counts)
}
