package qnet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qroute/randvar"
)

// New builds a Network from (From, To) pairs, drawing one capacity per pair
// from rv. If bidirectional is true the reverse edge To→From is added as
// well, carrying the *same* draw — rv is consulted exactly len(pairs)
// times, never 2·len(pairs).
//
// Node identifiers need not be contiguous: every id up to the maximum seen
// becomes a node, unreferenced ids staying isolated.
//
// Errors:
//   - ErrNilSource if rv is nil.
//   - ErrBadNodeID if any identifier is negative.
//   - ErrNegativeWeight if rv produces a negative draw.
//
// Complexity: O(V + E).
func New(pairs EdgeVector, rv randvar.Rv, bidirectional bool) (*Network, error) {
	if rv == nil {
		return nil, ErrNilSource
	}

	// Convert to explicit weights so both constructors share one build path.
	ws := make(WeightVector, 0, 2*len(pairs))
	var w float64
	for _, p := range pairs {
		w = rv.Value() // single draw, shared by both halves of the pair
		ws = append(ws, Weight{From: p.From, To: p.To, Capacity: w})
		if bidirectional {
			ws = append(ws, Weight{From: p.To, To: p.From, Capacity: w})
		}
	}

	return NewFromWeights(ws)
}

// NewFromWeights builds a Network from explicit (From, To, Capacity)
// triples, one directed edge per triple, in input order.
//
// Errors:
//   - ErrBadNodeID if any identifier is negative.
//   - ErrNegativeWeight if any capacity is negative.
//
// Complexity: O(V + E).
func NewFromWeights(ws WeightVector) (*Network, error) {
	// 1) Validate the whole list before allocating anything.
	maxID := NodeID(-1)
	for _, w := range ws {
		if w.From < 0 || w.To < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d", ErrBadNodeID, w.From, w.To)
		}
		if w.Capacity < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d capacity=%g", ErrNegativeWeight, w.From, w.To, w.Capacity)
		}
		if w.From > maxID {
			maxID = w.From
		}
		if w.To > maxID {
			maxID = w.To
		}
	}

	// 2) Allocate the arena. maxID == -1 means an empty edge list: zero nodes.
	n := int(maxID) + 1
	net := &Network{
		out:   make([][]int, n),
		inDeg: make([]int, n),
		edges: make([]edge, 0, len(ws)),
		mu:    DefaultMeasurementProbability,
	}

	// 3) Insert edges in input order; adjacency lists keep that order so
	//    Weights() round-trips stably.
	var idx int
	for _, w := range ws {
		idx = len(net.edges)
		net.edges = append(net.edges, edge{from: w.From, to: w.To, cap: w.Capacity})
		net.out[w.From] = append(net.out[w.From], idx)
		net.inDeg[w.To]++
	}

	return net, nil
}

// SetMeasurementProbability stores μ, the success probability of each
// intermediate entanglement-swap measurement.
// Returns ErrInvalidProbability if p ∉ [0, 1].
func (net *Network) SetMeasurementProbability(p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("%w: got %g", ErrInvalidProbability, p)
	}
	net.mu = p

	return nil
}

// MeasurementProbability returns the current μ. Default 1.
func (net *Network) MeasurementProbability() float64 { return net.mu }

// NumNodes returns the number of nodes, isolated ones included.
func (net *Network) NumNodes() int { return len(net.out) }

// NumEdges returns the number of edges in the current residual graph.
func (net *Network) NumEdges() int { return len(net.edges) }

// HasNode reports whether u is a valid node of this network.
func (net *Network) HasNode(u NodeID) bool { return u >= 0 && int(u) < len(net.out) }

// TotalCapacity returns the sum of all residual edge capacities, in EPR/s.
// Complexity: O(E).
func (net *Network) TotalCapacity() float64 {
	var total float64
	for i := range net.edges {
		total += net.edges[i].cap
	}

	return total
}

// InDegree returns the (min, max) in-degree over all nodes.
// Both are 0 for an empty network. Complexity: O(V).
func (net *Network) InDegree() (int, int) {
	return minMaxDegree(net.inDeg)
}

// OutDegree returns the (min, max) out-degree over all nodes.
// Both are 0 for an empty network. Complexity: O(V).
func (net *Network) OutDegree() (int, int) {
	deg := make([]int, len(net.out))
	for u := range net.out {
		deg[u] = len(net.out[u])
	}

	return minMaxDegree(deg)
}

// minMaxDegree scans a per-node degree slice for its extremes.
func minMaxDegree(deg []int) (int, int) {
	if len(deg) == 0 {
		return 0, 0
	}
	lo, hi := deg[0], deg[0]
	for _, d := range deg[1:] {
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}

	return lo, hi
}

// Weights snapshots the current residual capacities as (From, To, Capacity)
// triples, ordered by source node and, within a node, by edge insertion
// order. Feeding the result to NewFromWeights reproduces an identical
// snapshot. Complexity: O(V + E).
func (net *Network) Weights() WeightVector {
	ws := make(WeightVector, 0, len(net.edges))
	for u := range net.out {
		for _, idx := range net.out[u] {
			e := &net.edges[idx]
			ws = append(ws, Weight{From: e.from, To: e.to, Capacity: e.cap})
		}
	}

	return ws
}

// Capacity returns the residual capacity of the arena edge at idx.
// Panics on an out-of-range index (programmer error).
func (net *Network) Capacity(idx int) float64 { return net.edges[idx].cap }

// GrossRate converts a net end-to-end rate into the per-edge gross rate for
// a path of hops edges: gross = net / μ^(hops-1). The second return is
// false when the conversion is infeasible (μ == 0 with more than one hop).
func (net *Network) GrossRate(netRate float64, hops int) (float64, bool) {
	if hops <= 1 {
		return netRate, true
	}
	if net.mu == 0 {
		return 0, false
	}

	return netRate / math.Pow(net.mu, float64(hops-1)), true
}

// NetRate is the inverse of GrossRate: the end-to-end rate delivered when
// gross EPR/s are reserved on every edge of a hops-edge path.
func (net *Network) NetRate(grossRate float64, hops int) float64 {
	if hops <= 1 {
		return grossRate
	}

	return grossRate * math.Pow(net.mu, float64(hops-1))
}

// PathEdges resolves the hop sequence starting at src (hops exclude src and
// include the final destination) into arena edge references with current
// capacities.
//
// Errors:
//   - ErrEmptyPath if hops is empty.
//   - ErrUnknownNode if src or any hop is outside the graph.
//   - ErrEdgeNotFound if two consecutive nodes are not linked.
//
// Complexity: O(h · d_max).
func (net *Network) PathEdges(src NodeID, hops []NodeID) ([]EdgeRef, error) {
	if len(hops) == 0 {
		return nil, ErrEmptyPath
	}
	if !net.HasNode(src) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, src)
	}

	refs := make([]EdgeRef, 0, len(hops))
	u := src
	for _, v := range hops {
		if !net.HasNode(v) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNode, v)
		}
		idx, ok := net.edgeBetween(u, v)
		if !ok {
			return nil, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, u, v)
		}
		e := &net.edges[idx]
		refs = append(refs, EdgeRef{Index: idx, From: e.from, To: e.to, Capacity: e.cap})
		u = v
	}

	return refs, nil
}

// PathBottleneck returns the smallest residual capacity along the path.
// Same error conditions as PathEdges.
func (net *Network) PathBottleneck(src NodeID, hops []NodeID) (float64, error) {
	refs, err := net.PathEdges(src, hops)
	if err != nil {
		return 0, err
	}

	bottleneck := refs[0].Capacity
	for _, r := range refs[1:] {
		if r.Capacity < bottleneck {
			bottleneck = r.Capacity
		}
	}

	return bottleneck, nil
}

// PathFeasible reports whether every edge along the path has residual
// capacity ≥ amount, within CapacityEpsilon.
func (net *Network) PathFeasible(src NodeID, hops []NodeID, amount float64) (bool, error) {
	bottleneck, err := net.PathBottleneck(src, hops)
	if err != nil {
		return false, err
	}

	return bottleneck+CapacityEpsilon >= amount, nil
}

// ReservePath subtracts amount from every edge along the path. The
// subtraction is all-or-nothing: capacities are verified first, so a
// failed reservation leaves the network untouched. Residuals within
// CapacityEpsilon of zero are clamped to exactly zero.
//
// Errors: those of PathEdges, plus ErrCapacityExceeded when some edge
// cannot cover amount, and ErrNegativeWeight for amount < 0.
//
// Complexity: O(h · d_max).
func (net *Network) ReservePath(src NodeID, hops []NodeID, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: reservation amount=%g", ErrNegativeWeight, amount)
	}
	refs, err := net.PathEdges(src, hops)
	if err != nil {
		return err
	}

	// Verify before mutating: admission must be atomic per flow.
	for _, r := range refs {
		if r.Capacity+CapacityEpsilon < amount {
			return fmt.Errorf("%w: edge %d→%d residual=%g need=%g",
				ErrCapacityExceeded, r.From, r.To, r.Capacity, amount)
		}
	}

	for _, r := range refs {
		e := &net.edges[r.Index]
		e.cap -= amount
		if e.cap < CapacityEpsilon {
			e.cap = 0
		}
	}

	return nil
}

// edgeBetween finds the arena index of the edge u→v, scanning u's outgoing
// list. Parallel edges are not expected; the first match wins.
func (net *Network) edgeBetween(u, v NodeID) (int, bool) {
	for _, idx := range net.out[u] {
		if net.edges[idx].to == v {
			return idx, true
		}
	}

	return 0, false
}
