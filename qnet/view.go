// File: view.go
// Role: Ephemeral working copies of a Network for admission search.
//
// A View is a pair of boolean masks over the live edge arena. Disabling an
// edge or node hides it from traversal without touching the Network, while
// capacities read through the View stay live — exactly what the flow
// router's bottleneck-prune loop and Yen's spur computations need.
package qnet

import "fmt"

// View is a non-mutating working copy of a Network: traversal sees only
// edges and nodes that have not been disabled, while capacities remain
// those of the underlying live arena. Views are cheap (two bitmask slices)
// and single-use; they are not safe for concurrent access.
type View struct {
	net     *Network
	edgeOff []bool
	nodeOff []bool
}

// NewView returns a fresh View over the network with everything enabled.
// Complexity: O(V + E) for the mask allocation.
func (net *Network) NewView() *View {
	return &View{
		net:     net,
		edgeOff: make([]bool, len(net.edges)),
		nodeOff: make([]bool, len(net.out)),
	}
}

// Net returns the underlying Network.
func (v *View) Net() *Network { return v.net }

// NumNodes returns the node count of the underlying network; disabled
// nodes keep their identifiers, they are only hidden from traversal.
func (v *View) NumNodes() int { return v.net.NumNodes() }

// NodeEnabled reports whether u is visible through this view.
func (v *View) NodeEnabled(u NodeID) bool {
	return v.net.HasNode(u) && !v.nodeOff[u]
}

// OutEdges returns the enabled outgoing edges of u whose target node is
// also enabled, with live residual capacities. Returns nil when u itself
// is disabled or unknown. Complexity: O(deg(u)).
func (v *View) OutEdges(u NodeID) []EdgeRef {
	if !v.NodeEnabled(u) {
		return nil
	}

	refs := make([]EdgeRef, 0, len(v.net.out[u]))
	for _, idx := range v.net.out[u] {
		if v.edgeOff[idx] {
			continue
		}
		e := &v.net.edges[idx]
		if v.nodeOff[e.to] {
			continue
		}
		refs = append(refs, EdgeRef{Index: idx, From: e.from, To: e.to, Capacity: e.cap})
	}

	return refs
}

// DisableEdge hides the arena edge at idx from this view.
// Panics on an out-of-range index (programmer error).
func (v *View) DisableEdge(idx int) { v.edgeOff[idx] = true }

// DisableNode hides u and, implicitly, every edge incident to it.
func (v *View) DisableNode(u NodeID) {
	if v.net.HasNode(u) {
		v.nodeOff[u] = true
	}
}

// Clone returns an independent copy of the view sharing the same
// underlying network. Complexity: O(V + E).
func (v *View) Clone() *View {
	c := &View{
		net:     v.net,
		edgeOff: make([]bool, len(v.edgeOff)),
		nodeOff: make([]bool, len(v.nodeOff)),
	}
	copy(c.edgeOff, v.edgeOff)
	copy(c.nodeOff, v.nodeOff)

	return c
}

// DisableMinCapacityEdge hides the smallest-capacity edge along the path
// starting at src (ties broken by first occurrence along the path). Used
// by the flow router to steer the next search away from the bottleneck.
//
// Errors: those of Network.PathEdges.
func (v *View) DisableMinCapacityEdge(src NodeID, hops []NodeID) error {
	refs, err := v.net.PathEdges(src, hops)
	if err != nil {
		return err
	}

	// Strict < keeps the first occurrence on ties.
	minAt := 0
	for i, r := range refs[1:] {
		if r.Capacity < refs[minAt].Capacity {
			minAt = i + 1
		}
	}
	v.edgeOff[refs[minAt].Index] = true

	return nil
}

// String renders a compact mask summary, handy in router trace logs.
func (v *View) String() string {
	var offE, offN int
	for _, off := range v.edgeOff {
		if off {
			offE++
		}
	}
	for _, off := range v.nodeOff {
		if off {
			offN++
		}
	}

	return fmt.Sprintf("view{edges=%d disabled=%d, nodes=%d disabled=%d}",
		len(v.edgeOff), offE, len(v.nodeOff), offN)
}
