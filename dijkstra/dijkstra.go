package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/qroute/qnet"
)

// Sentinel errors returned by the search.
var (
	// ErrNilView indicates a nil *qnet.View was passed in.
	ErrNilView = errors.New("dijkstra: view is nil")

	// ErrNodeUnknown indicates src or dst is not a node of the network.
	ErrNodeUnknown = errors.New("dijkstra: node not found")

	// ErrNoPath indicates dst is unreachable through the view's enabled edges.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// unreached marks a node whose distance has not been finalized yet.
const unreached = int(^uint(0) >> 1) // max int

// Hops returns the minimum-hop path from src to dst through the view's
// enabled edges and nodes, as the hop sequence excluding src and including
// dst. Distance ties are broken by smaller node id, so the result is
// deterministic for a fixed view.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Hops(v *qnet.View, src, dst qnet.NodeID) ([]qnet.NodeID, error) {
	// 1) Validate inputs in a fixed order.
	if v == nil {
		return nil, ErrNilView
	}
	if !v.Net().HasNode(src) {
		return nil, fmt.Errorf("%w: source %d", ErrNodeUnknown, src)
	}
	if !v.Net().HasNode(dst) {
		return nil, fmt.Errorf("%w: destination %d", ErrNodeUnknown, dst)
	}
	// A disabled endpoint can never be reached; report it like any dead end.
	if !v.NodeEnabled(src) || !v.NodeEnabled(dst) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, src, dst)
	}

	// 2) Prepare state: distances, predecessors, visited flags, heap.
	n := v.NumNodes()
	r := &runner{
		view:    v,
		dist:    make([]int, n),
		prev:    make([]qnet.NodeID, n),
		visited: make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = unreached
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: src, dist: 0})

	// 3) Main loop; stop as soon as dst is finalized.
	r.process(dst)

	// 4) Reconstruct the hop list dst←…←src from predecessors.
	if r.dist[dst] == unreached {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, src, dst)
	}
	hops := make([]qnet.NodeID, r.dist[dst])
	for at, i := dst, len(hops)-1; at != src; at, i = r.prev[at], i-1 {
		hops[i] = at
	}

	return hops, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	view    *qnet.View
	dist    []int         // node → best-known hop count from src
	prev    []qnet.NodeID // node → predecessor on the shortest path, -1 if none
	visited []bool        // node → distance finalized
	pq      nodePQ
}

// process extracts nodes in increasing hop distance, relaxing their
// outgoing edges, until dst is finalized or the heap drains.
func (r *runner) process(dst qnet.NodeID) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] {
			// Stale heap entry from lazy decrease-key.
			continue
		}
		r.visited[u] = true
		if u == dst {
			return
		}
		r.relax(u)
	}
}

// relax attempts to improve the distance of every enabled neighbor of u.
// Unit edge cost: every enabled edge contributes exactly one hop.
func (r *runner) relax(u qnet.NodeID) {
	next := r.dist[u] + 1
	for _, e := range r.view.OutEdges(u) {
		if next >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = next
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, dist: next})
	}
}

// nodeItem is one heap entry: a node and its tentative hop distance.
type nodeItem struct {
	id   qnet.NodeID
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id). The id tie-break
// makes extraction order — and therefore the reported path — deterministic.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
