// Package qnet implements the capacity network at the heart of qroute: a
// directed graph whose edge weights are entanglement-generation capacities
// in EPR pairs per second.
//
// What:
//
//   - Network holds the edge arena (nodes index lists of edge slots; each
//     slot carries target and mutable capacity) plus the measurement
//     probability μ shared by all admissions.
//   - Constructors build either from (from, to) pairs with capacities drawn
//     from a randvar.Rv — one draw per logical link, shared by both halves
//     of a bidirectional pair — or from explicit (from, to, capacity)
//     triples.
//   - View is an ephemeral working copy for admission search: boolean masks
//     over the live arena, so disabling edges during a search never touches
//     the Network and residual capacities stay visible through the mask.
//   - ToDot / ToDotFile emit a Graphviz description with edges labelled by
//     their current capacity.
//
// Why:
//
//   - The flow router repeatedly prunes bottleneck edges from a working
//     copy while reserving capacity on the real graph; an index-addressed
//     arena plus masks makes that copy O(V+E) bits instead of a deep clone.
//
// Invariants:
//
//   - Every capacity is ≥ 0 at all times; reservations are monotone
//     decreases and clamp floating dust within CapacityEpsilon to zero.
//   - The topology is fixed after construction; only capacities change.
//
// Complexity:
//
//   - Construction: O(V + E). Introspection: O(V + E) worst case.
//   - PathEdges / ReservePath: O(h · d_max) for an h-hop path.
//
// Errors:
//
//   - ErrInvalidProbability: μ outside [0, 1].
//   - ErrNegativeWeight: negative capacity supplied or drawn.
//   - ErrBadNodeID: negative node identifier in an edge list.
//   - ErrNilSource: nil weight source passed to New.
//   - ErrUnknownNode, ErrEdgeNotFound, ErrEmptyPath, ErrCapacityExceeded:
//     malformed or infeasible path arguments.
//
// The package provides no internal locking: concurrent read-only
// introspection is fine only while no admission call is in progress.
package qnet
