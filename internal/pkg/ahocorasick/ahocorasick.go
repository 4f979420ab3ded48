package ahocorasick

const (
	rootNode int32 = 0

	// noNode marks an absent terminal link.
	noNode int32 = -1

	alphabetSize = 256
)

// node is a trie node in the automaton's arena. All links are arena indices,
// so the root's self-referencing suffix link needs no special ownership.
type node struct {
	// children holds the literal trie edges.
	children map[byte]int32

	parent int32

	// incoming is the byte on the edge from parent.
	incoming byte

	depth int

	// output contains the IDs of patterns that end exactly at this node.
	output []int

	// suffixLink points to the node of the longest proper suffix of this
	// node's string that is also a trie prefix. Root links to itself.
	suffixLink int32

	// terminalLink points to the nearest node along the suffix chain
	// (excluding this node) that has a non-empty output, or noNode.
	terminalLink int32

	// transitions is the compiled goto function, filled during Build.
	transitions [alphabetSize]int32
}

func newNode(parent int32, incoming byte, depth int) node {
	return node{
		children:     make(map[byte]int32),
		parent:       parent,
		incoming:     incoming,
		depth:        depth,
		suffixLink:   rootNode,
		terminalLink: noNode,
	}
}

// Automaton is a compiled Aho-Corasick automaton. It is immutable once built
// and safe for concurrent use by independent cursors.
type Automaton struct {
	// nodes is the node arena. Index 0 is the root.
	nodes []node

	patternCount int
}

// Root returns a cursor positioned at the root of the automaton.
func (a *Automaton) Root() NodeReference {
	return NodeReference{automaton: a, node: rootNode}
}

// NodeCount returns the number of trie nodes, including the root.
func (a *Automaton) NodeCount() int {
	return len(a.nodes)
}

// PatternCount returns the number of patterns added before Build.
func (a *Automaton) PatternCount() int {
	return a.patternCount
}

// Match scans the whole input from the root and reports every pattern
// occurrence, in order of end offset.
func (a *Automaton) Match(input []byte) []MatchResult {
	var results []MatchResult

	cursor := a.Root()
	for i, b := range input {
		cursor = cursor.Next(b)
		cursor.GenerateMatches(func(id int) {
			results = append(results, MatchResult{
				PatternID: id,
				Offset:    i + 1,
			})
		})
	}

	return results
}

// NodeReference is a cursor into an Automaton. It is a small value type;
// two references are equal when they point at the same node of the same
// automaton.
type NodeReference struct {
	automaton *Automaton
	node      int32
}

// Next returns the cursor reached by consuming ch. Every byte has a
// transition, falling back to the root when nothing matches.
func (r NodeReference) Next(ch byte) NodeReference {
	return NodeReference{
		automaton: r.automaton,
		node:      r.automaton.nodes[r.node].transitions[ch],
	}
}

// IsRoot reports whether the cursor is at the root.
func (r NodeReference) IsRoot() bool {
	return r.node == rootNode
}

// Depth returns the length of the string the cursor's node represents.
func (r NodeReference) Depth() int {
	return r.automaton.nodes[r.node].depth
}

// GenerateMatches calls fn for every pattern ID that ends at the cursor: the
// IDs of the current node first, then those of each node along the terminal
// link chain, nearest first. An ID registered on several nodes of the chain
// is reported once per node.
func (r NodeReference) GenerateMatches(fn func(id int)) {
	nodes := r.automaton.nodes
	for current := r.node; current != noNode; current = nodes[current].terminalLink {
		for _, id := range nodes[current].output {
			fn(id)
		}
	}
}
