// Package yen enumerates k loopless shortest paths between two nodes of a
// capacity-network view, by hop count.
//
// The app allocator pre-computes up to k candidate paths per (host, peer)
// pair and then spreads elastic demand across them; Yen's algorithm
// provides exactly that: the shortest path first, then successive
// deviations obtained by disabling, on a cloned view, the edges and
// root-path nodes that would reproduce an already known path.
//
// Ordering: results are sorted by hop count, ties broken lexicographically
// on the hop sequence, so the cache order is deterministic.
//
// Complexity:
//
//   - Time:  O(k · V · (V + E) log V) — k−1 rounds of ≤ V spur searches.
//   - Space: O(k · V) for the result and candidate sets.
//
// Errors:
//
//   - ErrNilView if the view is nil.
//   - ErrBadK    if k < 1.
//   - An unreachable destination is not an error: the result is empty.
package yen
