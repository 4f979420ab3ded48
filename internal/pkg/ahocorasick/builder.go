package ahocorasick

import (
	"sort"

	"github.com/endorses/wildmatch/internal/pkg/traverse"
)

// Builder constructs Aho-Corasick automata from patterns. A Builder is
// single-use: once Build returns, the builder must not be used again.
type Builder struct {
	automaton    *Automaton
	patternCount int
}

// NewBuilder creates a new Builder holding only the root node.
func NewBuilder() *Builder {
	return &Builder{
		automaton: &Automaton{
			nodes: []node{newNode(rootNode, 0, 0)},
		},
	}
}

// Add inserts pattern into the trie and records id at its final node. The
// empty pattern terminates at the root. Adding the same pattern again with
// another ID accumulates IDs on the same node.
func (b *Builder) Add(pattern string, id int) {
	if b.automaton == nil {
		panic("ahocorasick: Add called after Build")
	}
	ac := b.automaton

	current := rootNode
	for i := 0; i < len(pattern); i++ {
		char := pattern[i]
		if next, exists := ac.nodes[current].children[char]; exists {
			current = next
			continue
		}

		next := int32(len(ac.nodes))
		ac.nodes = append(ac.nodes, newNode(current, char, ac.nodes[current].depth+1))
		ac.nodes[current].children[char] = next
		current = next
	}

	ac.nodes[current].output = append(ac.nodes[current].output, id)
	b.patternCount++
}

// Build finalizes the trie and returns the compiled automaton. The build
// walks the trie breadth-first, so every node is compiled after all
// shallower nodes, which are the only ones its suffix link can point to.
//
// Time complexity: O(m * 256) where m is the number of trie nodes.
func (b *Builder) Build() *Automaton {
	if b.automaton == nil {
		panic("ahocorasick: Build called twice")
	}
	ac := b.automaton
	ac.patternCount = b.patternCount
	b.automaton = nil

	trie := &trieGraph{nodes: ac.nodes}
	traverse.BreadthFirstSearch[int32, int32](rootNode, trie, &linkCompiler{nodes: ac.nodes})

	return ac
}

// trieGraph exposes the literal trie edges to the traversal engine. Edges
// are identified by their target node.
type trieGraph struct {
	nodes []node
}

// OutgoingEdges returns the children of v in ascending byte order, which
// keeps node compilation order deterministic.
func (g *trieGraph) OutgoingEdges(v int32) []int32 {
	children := g.nodes[v].children
	if len(children) == 0 {
		return nil
	}

	chars := make([]int, 0, len(children))
	for char := range children {
		chars = append(chars, int(char))
	}
	sort.Ints(chars)

	edges := make([]int32, len(chars))
	for i, char := range chars {
		edges[i] = children[byte(char)]
	}
	return edges
}

func (g *trieGraph) Target(e int32) int32 {
	return e
}

// linkCompiler computes suffix links, terminal links and compiled
// transitions as vertices are examined.
type linkCompiler struct {
	traverse.NopVisitor[int32, int32]
	nodes []node
}

func (c *linkCompiler) ExamineVertex(v int32) {
	n := &c.nodes[v]

	switch {
	case v == rootNode:
		n.suffixLink = rootNode
		n.terminalLink = noNode
	case n.parent == rootNode:
		n.suffixLink = rootNode
	default:
		parentLink := c.nodes[n.parent].suffixLink
		n.suffixLink = c.nodes[parentLink].transitions[n.incoming]
	}

	if v != rootNode {
		link := &c.nodes[n.suffixLink]
		if len(link.output) > 0 {
			n.terminalLink = n.suffixLink
		} else {
			n.terminalLink = link.terminalLink
		}
	}

	for ch := 0; ch < alphabetSize; ch++ {
		if child, exists := n.children[byte(ch)]; exists {
			n.transitions[ch] = child
		} else if v == rootNode {
			n.transitions[ch] = rootNode
		} else {
			n.transitions[ch] = c.nodes[n.suffixLink].transitions[ch]
		}
	}
}
