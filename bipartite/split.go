package bipartite

// edgeKey identifies a single edge in the split worklist.
type edgeKey[L comparable, R comparable] struct {
	left  L
	right R
}

// SplitComponents partitions the graph into its connected components, each
// returned as an independent graph. Every edge lands in exactly one
// component. Output is deterministic: components appear in the insertion
// order of their earliest left node, and each subgraph inherits the parent's
// node and neighbor insertion orders.
//
// Similarity is zero across components, so solving the components separately
// gives the same scores as solving the whole graph.
func (g *Graph[L, R]) SplitComponents() []*Graph[L, R] {
	remaining := make(map[edgeKey[L, R]]struct{}, g.edges)
	for _, ln := range g.left.order {
		for _, rn := range g.left.nbrOrder[ln] {
			remaining[edgeKey[L, R]{left: ln, right: rn}] = struct{}{}
		}
	}

	var components []*Graph[L, R]
	for _, seed := range g.left.order {
		if len(remaining) == 0 {
			break
		}
		if !g.unclaimedEdge(seed, remaining) {
			continue
		}

		// Alternating BFS: claiming a left node's edges enqueues the other
		// left endpoints reachable through each touched right node.
		sub := New[L, R]()
		queue := []L{seed}
		for len(queue) > 0 {
			ln := queue[0]
			queue = queue[1:]
			for _, rn := range g.left.nbrOrder[ln] {
				key := edgeKey[L, R]{left: ln, right: rn}
				if _, ok := remaining[key]; !ok {
					continue
				}
				delete(remaining, key)
				sub.AddEdge(ln, rn, g.left.weights[ln][rn])
				for _, next := range g.right.nbrOrder[rn] {
					if _, ok := remaining[edgeKey[L, R]{left: next, right: rn}]; ok {
						queue = append(queue, next)
					}
				}
			}
		}
		components = append(components, sub)
	}
	return components
}

// unclaimedEdge reports whether ln still has an edge in the worklist.
func (g *Graph[L, R]) unclaimedEdge(ln L, remaining map[edgeKey[L, R]]struct{}) bool {
	for _, rn := range g.left.nbrOrder[ln] {
		if _, ok := remaining[edgeKey[L, R]{left: ln, right: rn}]; ok {
			return true
		}
	}
	return false
}
