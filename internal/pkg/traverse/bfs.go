// Package traverse provides generic graph traversals driven by visitor callbacks.
package traverse

// Graph is any structure that can list the outgoing edges of a vertex and
// resolve an edge to its target vertex.
type Graph[V comparable, E any] interface {
	// OutgoingEdges returns the edges leaving v, in the order they should be examined.
	OutgoingEdges(v V) []E

	// Target returns the vertex an edge points to.
	Target(e E) V
}

// Visitor receives traversal events. Callbacks cannot stop the traversal.
type Visitor[V comparable, E any] interface {
	// DiscoverVertex is called the first time a vertex is encountered.
	DiscoverVertex(v V)

	// ExamineVertex is called when a vertex is taken from the frontier,
	// before any of its edges are examined.
	ExamineVertex(v V)

	// ExamineEdge is called for every outgoing edge of the examined vertex,
	// before its target is checked for discovery.
	ExamineEdge(e E)
}

// NopVisitor ignores every event. Embed it to implement only some callbacks.
type NopVisitor[V comparable, E any] struct{}

func (NopVisitor[V, E]) DiscoverVertex(V) {}
func (NopVisitor[V, E]) ExamineVertex(V)  {}
func (NopVisitor[V, E]) ExamineEdge(E)    {}

// BreadthFirstSearch visits every vertex reachable from start in breadth-first
// order. Each vertex is discovered and examined exactly once, so graphs with
// cycles (self-loops, back edges) terminate.
//
// Time complexity: O(V + E) over the reachable subgraph.
func BreadthFirstSearch[V comparable, E any](start V, graph Graph[V, E], visitor Visitor[V, E]) {
	discovered := map[V]struct{}{start: {}}
	queue := []V{start}
	visitor.DiscoverVertex(start)

	for len(queue) > 0 {
		vertex := queue[0]
		queue = queue[1:]
		visitor.ExamineVertex(vertex)

		for _, edge := range graph.OutgoingEdges(vertex) {
			visitor.ExamineEdge(edge)

			target := graph.Target(edge)
			if _, seen := discovered[target]; seen {
				continue
			}
			discovered[target] = struct{}{}
			visitor.DiscoverVertex(target)
			queue = append(queue, target)
		}
	}
}
