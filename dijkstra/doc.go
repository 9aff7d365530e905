// Package dijkstra implements minimum-hop shortest-path search over a
// capacity-network view.
//
// The router's path metric is hop count, not residual capacity: along a
// path of h hops the delivered rate scales with μ^(h-1), so fewer hops
// dominate every other fidelity factor. Edges therefore carry unit cost
// and the search is Dijkstra with a min-heap under the usual
// "lazy decrease-key" strategy — duplicates are pushed and stale entries
// skipped on extraction.
//
// Determinism: heap ordering breaks distance ties by smaller node id, so
// for a fixed view the returned hop sequence is reproducible.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors:
//
//   - ErrNilView     if the view is nil.
//   - ErrNodeUnknown if src or dst is not a node of the underlying network.
//   - ErrNoPath      if dst is unreachable through the view's enabled edges.
package dijkstra
