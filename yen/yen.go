package yen

import (
	"errors"

	"github.com/katalvlaran/qroute/dijkstra"
	"github.com/katalvlaran/qroute/qnet"
)

// Sentinel errors for the k-shortest-paths enumeration.
var (
	// ErrNilView indicates a nil *qnet.View was passed in.
	ErrNilView = errors.New("yen: view is nil")

	// ErrBadK indicates a non-positive k.
	ErrBadK = errors.New("yen: k must be ≥ 1")
)

// KShortest returns up to k loopless minimum-hop paths from src to dst
// through the view, each as the hop sequence excluding src and including
// dst. Paths are ordered by (hop count, lexicographic hop sequence). An
// unreachable dst yields an empty result, not an error; fewer than k paths
// are returned when the graph runs out of deviations.
//
// The view itself is never mutated: spur searches run on clones.
func KShortest(v *qnet.View, src, dst qnet.NodeID, k int) ([][]qnet.NodeID, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if k < 1 {
		return nil, ErrBadK
	}

	// 1) Shortest path seeds the result set.
	first, err := dijkstra.Hops(v, src, dst)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return nil, nil
		}

		return nil, err
	}
	found := [][]qnet.NodeID{first}
	var candidates [][]qnet.NodeID

	// 2) Deviation rounds: spur off every prefix of the latest found path.
	for len(found) < k {
		base := found[len(found)-1]
		// full = src followed by the hop sequence; spur nodes range over
		// every node of the path except dst.
		full := make([]qnet.NodeID, 0, len(base)+1)
		full = append(full, src)
		full = append(full, base...)

		for i := 0; i < len(full)-1; i++ {
			spur := full[i]
			rootHops := base[:i] // hops excluding src, up to (not including) spur's successor

			w := v.Clone()
			// Hide the outgoing edges that would reproduce a known path
			// sharing this root.
			for _, p := range found {
				if !hasPrefix(p, rootHops) || len(p) <= i {
					continue
				}
				refs, perr := w.Net().PathEdges(spur, []qnet.NodeID{p[i]})
				if perr != nil {
					return nil, perr
				}
				w.DisableEdge(refs[0].Index)
			}
			// Hide the root-path nodes (loopless requirement), spur excluded.
			for _, u := range full[:i] {
				w.DisableNode(u)
			}

			spurHops, serr := dijkstra.Hops(w, spur, dst)
			if serr != nil {
				if errors.Is(serr, dijkstra.ErrNoPath) {
					continue
				}

				return nil, serr
			}

			cand := make([]qnet.NodeID, 0, len(rootHops)+len(spurHops))
			cand = append(cand, rootHops...)
			cand = append(cand, spurHops...)
			if containsPath(found, cand) || containsPath(candidates, cand) {
				continue
			}
			candidates = append(candidates, cand)
		}

		if len(candidates) == 0 {
			break
		}

		// 3) Promote the best candidate: fewest hops, lexicographic tie.
		best := 0
		for i := 1; i < len(candidates); i++ {
			if pathLess(candidates[i], candidates[best]) {
				best = i
			}
		}
		found = append(found, candidates[best])
		candidates = append(candidates[:best], candidates[best+1:]...)
	}

	return found, nil
}

// pathLess orders hop sequences by (length, lexicographic).
func pathLess(a, b []qnet.NodeID) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// hasPrefix reports whether path p starts with the given hop prefix.
func hasPrefix(p, prefix []qnet.NodeID) bool {
	if len(p) < len(prefix) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}

	return true
}

// containsPath reports whether set already holds an identical hop sequence.
func containsPath(set [][]qnet.NodeID, p []qnet.NodeID) bool {
	for _, q := range set {
		if len(q) != len(p) {
			continue
		}
		match := true
		for i := range q {
			if q[i] != p[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}
