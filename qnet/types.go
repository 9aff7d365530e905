// Package qnet defines the Network type, its vertex/edge value types, and
// sentinel errors for capacity-network operations.
package qnet

import "errors"

// Sentinel errors for capacity-network operations.
var (
	// ErrInvalidProbability indicates a measurement probability outside [0, 1].
	ErrInvalidProbability = errors.New("qnet: measurement probability must be in [0,1]")

	// ErrNegativeWeight indicates a negative edge capacity was supplied or drawn.
	ErrNegativeWeight = errors.New("qnet: edge capacity must be ≥ 0")

	// ErrBadNodeID indicates a negative node identifier in an edge list.
	ErrBadNodeID = errors.New("qnet: node identifiers must be ≥ 0")

	// ErrNilSource indicates a nil weight source was passed to New.
	ErrNilSource = errors.New("qnet: weight source is nil")

	// ErrUnknownNode indicates an operation referenced a node outside the graph.
	ErrUnknownNode = errors.New("qnet: node not found")

	// ErrEdgeNotFound indicates a hop sequence crosses a non-existent edge.
	ErrEdgeNotFound = errors.New("qnet: edge not found")

	// ErrEmptyPath indicates an empty hop sequence where one is required.
	ErrEmptyPath = errors.New("qnet: empty hop sequence")

	// ErrCapacityExceeded indicates a reservation larger than the residual
	// capacity of some edge on the path.
	ErrCapacityExceeded = errors.New("qnet: reservation exceeds residual capacity")
)

// CapacityEpsilon is the slack used for residual-capacity comparisons.
// Repeated subtraction leaves float dust on edges; treating anything within
// CapacityEpsilon of a bound as equal avoids livelock near zero.
const CapacityEpsilon = 1e-12

// DefaultMeasurementProbability is the μ assigned to a freshly built Network.
const DefaultMeasurementProbability = 1.0

// NodeID identifies a vertex. Identifiers are dense-friendly non-negative
// integers; every id up to the maximum seen at construction is a node
// (unreferenced ids are isolated nodes).
type NodeID int

// Pair is a directed (From, To) link request without a capacity.
type Pair struct {
	From NodeID
	To   NodeID
}

// EdgeVector is the edge-list input of the random-weight constructor.
type EdgeVector []Pair

// Weight is a directed edge together with its capacity in EPR/s.
type Weight struct {
	From     NodeID
	To       NodeID
	Capacity float64
}

// WeightVector is the edge-list input of the explicit-weight constructor and
// the output format of Network.Weights.
type WeightVector []Weight

// EdgeRef addresses one arena edge together with a snapshot of its current
// residual capacity. Index is stable for the lifetime of the Network.
type EdgeRef struct {
	Index    int
	From     NodeID
	To       NodeID
	Capacity float64
}

// edge is one arena slot. Topology (from, to) is immutable after
// construction; cap falls monotonically as demands are admitted.
type edge struct {
	from NodeID
	to   NodeID
	cap  float64
}

// Network is the in-memory capacity graph. It owns the edge arena and the
// process-local measurement probability μ. Not safe for concurrent
// mutation; see the package documentation for the cooperative model.
type Network struct {
	out   [][]int // node → arena indices of outgoing edges, insertion order
	inDeg []int   // node → number of incoming edges
	edges []edge  // arena
	mu    float64 // measurement probability, in [0, 1]
}
