package ahocorasick

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomaton_SuffixMatches(t *testing.T) {
	builder := NewBuilder()
	builder.Add("suffix", 1)
	builder.Add("ffix", 2)
	builder.Add("ix", 3)
	builder.Add("abba", 4)

	automaton := builder.Build()

	node := automaton.Root()
	for _, ch := range []byte("let us find some suffix") {
		node = node.Next(ch)
	}

	ids := collectIDs(node)
	sort.Ints(ids)
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestAutomaton_EmptyPatterns(t *testing.T) {
	builder := NewBuilder()
	builder.Add("", 1)
	builder.Add("", 2)
	builder.Add("t", 3)
	builder.Add("", 4)

	automaton := builder.Build()
	text := []byte("test")
	sizes := []int{4, 3, 3, 4}

	node := automaton.Root()
	for i, ch := range text {
		node = node.Next(ch)
		unique := map[int]struct{}{}
		node.GenerateMatches(func(id int) { unique[id] = struct{}{} })
		assert.Len(t, unique, sizes[i], "position %d", i)
	}
}

func TestAutomaton_MultiplePatterns(t *testing.T) {
	automaton := Compile([]Pattern{
		{ID: 1, Text: "he"},
		{ID: 2, Text: "she"},
		{ID: 3, Text: "his"},
		{ID: 4, Text: "hers"},
	})

	tests := []struct {
		name    string
		input   string
		wantIDs []int
	}{
		{
			name:    "overlapping patterns",
			input:   "she",
			wantIDs: []int{1, 2}, // "he" is suffix of "she"
		},
		{
			name:    "single match",
			input:   "his",
			wantIDs: []int{3},
		},
		{
			name:    "multiple separate matches",
			input:   "he said his",
			wantIDs: []int{1, 3},
		},
		{
			name:    "pattern through suffix link",
			input:   "ushers",
			wantIDs: []int{1, 2, 4},
		},
		{
			name:    "no matches",
			input:   "abc",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := automaton.Match([]byte(tt.input))
			assert.ElementsMatch(t, tt.wantIDs, extractPatternIDs(results))
		})
	}
}

func TestAutomaton_MatchOffsets(t *testing.T) {
	automaton := Compile([]Pattern{
		{ID: 7, Text: "aa"},
		{ID: 8, Text: "a"},
	})

	results := automaton.Match([]byte("aaa"))

	expected := []MatchResult{
		{PatternID: 8, Offset: 1},
		{PatternID: 7, Offset: 2},
		{PatternID: 8, Offset: 2},
		{PatternID: 7, Offset: 3},
		{PatternID: 8, Offset: 3},
	}
	assert.Equal(t, expected, results)
}

func TestAutomaton_EmissionOrder(t *testing.T) {
	builder := NewBuilder()
	builder.Add("abc", 1)
	builder.Add("bc", 2)
	builder.Add("c", 3)
	builder.Add("", 4)
	automaton := builder.Build()

	node := automaton.Root()
	for _, ch := range []byte("xabc") {
		node = node.Next(ch)
	}

	assert.Equal(t, []int{1, 2, 3, 4}, collectIDs(node))
}

func TestAutomaton_DuplicateIDsNotDeduplicated(t *testing.T) {
	builder := NewBuilder()
	builder.Add("ab", 1)
	builder.Add("b", 1)
	builder.Add("ab", 2)
	automaton := builder.Build()

	node := automaton.Root().Next('a').Next('b')

	assert.Equal(t, []int{1, 2, 1}, collectIDs(node))
}

func TestAutomaton_NoPatterns(t *testing.T) {
	automaton := NewBuilder().Build()

	require.Equal(t, 1, automaton.NodeCount())
	assert.Equal(t, 0, automaton.PatternCount())

	node := automaton.Root()
	for ch := 0; ch < alphabetSize; ch++ {
		node = node.Next(byte(ch))
		assert.True(t, node.IsRoot())
	}
	assert.Empty(t, collectIDs(node))
	assert.Nil(t, automaton.Match([]byte("anything")))
}

func TestAutomaton_UnmatchedByteFallsBackToRoot(t *testing.T) {
	automaton := Compile([]Pattern{{ID: 1, Text: "abc"}})

	node := automaton.Root().Next('a').Next('b')
	assert.Equal(t, 2, node.Depth())

	node = node.Next('z')
	assert.True(t, node.IsRoot())
	assert.Equal(t, automaton.Root(), node)
}

func TestAutomaton_TransitionThroughSuffixLink(t *testing.T) {
	automaton := Compile([]Pattern{
		{ID: 1, Text: "aab"},
		{ID: 2, Text: "ab"},
	})

	// "aaa" keeps the cursor on "aa"; the following 'b' completes both patterns.
	node := automaton.Root().Next('a').Next('a').Next('a')
	assert.Equal(t, 2, node.Depth())

	node = node.Next('b')
	assert.ElementsMatch(t, []int{1, 2}, collectIDs(node))
}

func TestNodeReference_Comparable(t *testing.T) {
	automaton := Compile([]Pattern{{ID: 1, Text: "ab"}})

	first := automaton.Root().Next('a')
	second := automaton.Root().Next('x').Next('a')

	assert.Equal(t, first, second)
	assert.True(t, first == second)
	assert.NotEqual(t, first, first.Next('b'))
}

func TestAutomaton_SuffixLinksPointToShallowerNodes(t *testing.T) {
	automaton := Compile([]Pattern{
		{ID: 1, Text: "abcab"},
		{ID: 2, Text: "bca"},
		{ID: 3, Text: "cabx"},
	})

	for i, n := range automaton.nodes {
		if i == int(rootNode) {
			assert.Equal(t, rootNode, n.suffixLink)
			continue
		}
		assert.Less(t, automaton.nodes[n.suffixLink].depth, n.depth, "node %d", i)
	}
}

func TestBuilder_ReuseAfterBuildPanics(t *testing.T) {
	builder := NewBuilder()
	builder.Add("x", 1)
	_ = builder.Build()

	assert.Panics(t, func() { builder.Add("y", 2) })
	assert.Panics(t, func() { builder.Build() })
}

func TestAutomaton_LargeInput(t *testing.T) {
	automaton := Compile([]Pattern{{ID: 1, Text: "needle"}})

	// Create a long input with needle at the end
	input := make([]byte, 10000)
	for i := range input {
		input[i] = 'x'
	}
	copy(input[9990:], "needle")

	results := automaton.Match(input)
	require.Len(t, results, 1)
	assert.Equal(t, MatchResult{PatternID: 1, Offset: 9996}, results[0])
}

func TestAutomaton_AgreesWithNaiveSearch(t *testing.T) {
	patterns := []Pattern{
		{ID: 0, Text: "a"},
		{ID: 1, Text: "ab"},
		{ID: 2, Text: "bab"},
		{ID: 3, Text: "bc"},
		{ID: 4, Text: "bca"},
		{ID: 5, Text: "c"},
		{ID: 6, Text: "caa"},
	}
	automaton := Compile(patterns)
	input := "abccabcaabcbabcaabab"

	node := automaton.Root()
	for i := 0; i < len(input); i++ {
		node = node.Next(input[i])

		var want []int
		for _, p := range patterns {
			end := i + 1
			if end >= len(p.Text) && input[end-len(p.Text):end] == p.Text {
				want = append(want, p.ID)
			}
		}
		assert.ElementsMatch(t, want, collectIDs(node), "position %d", i)
	}
}

func collectIDs(node NodeReference) []int {
	var ids []int
	node.GenerateMatches(func(id int) { ids = append(ids, id) })
	return ids
}

// extractPatternIDs extracts pattern IDs from match results.
func extractPatternIDs(results []MatchResult) []int {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.PatternID
	}
	return ids
}
