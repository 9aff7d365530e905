// Package alloc defines the app descriptor, allocation policies, options,
// and sentinel errors for elastic capacity allocation.
package alloc

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/qnet"
)

// Sentinel errors for app allocation.
var (
	// ErrNilNetwork indicates a nil *qnet.Network was passed to Allocate.
	ErrNilNetwork = errors.New("alloc: network is nil")

	// ErrInvalidApp indicates an ill-formed app descriptor in the batch:
	// empty peers, non-positive priority, or unknown host. The whole batch
	// is rejected before any state change.
	ErrInvalidApp = errors.New("alloc: invalid app descriptor")

	// ErrUnknownPolicy indicates a policy value outside the closed set.
	ErrUnknownPolicy = errors.New("alloc: unknown allocation policy")

	// ErrBadK indicates a non-positive path cache size.
	ErrBadK = errors.New("alloc: k must be ≥ 1")

	// ErrNeedRandSource indicates PolicyRandom was requested without a
	// *rand.Rand (supply one via WithRand).
	ErrNeedRandSource = errors.New("alloc: rng is required for the random policy")
)

// DefaultQuantum is the allocation quantum ε: a cached path is feasible
// only when every edge has residual ≥ ε, and deficits below ε are carried
// to the next round instead of being admitted.
const DefaultQuantum = 1e-9

// DefaultMaxRounds caps the round-robin loop; callers wishing to time-box
// allocation tighter can lower it via WithMaxRounds.
const DefaultMaxRounds = 4096

// Policy selects how an app picks among its feasible cached paths.
type Policy int

const (
	// PolicyRandom picks uniformly at random among feasible paths.
	PolicyRandom Policy = iota

	// PolicyShortestPath picks the feasible path with fewest hops, ties
	// broken lexicographically on the hop sequence.
	PolicyShortestPath

	// PolicyLoadBalancing picks the feasible path whose bottleneck edge has
	// the highest residual capacity.
	PolicyLoadBalancing
)

// policyNames maps policies to their canonical lowercase labels.
var policyNames = map[Policy]string{
	PolicyRandom:        "random",
	PolicyShortestPath:  "shortestpath",
	PolicyLoadBalancing: "loadbalancing",
}

// String returns the canonical lowercase label of the policy.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return "unknown"
}

// valid reports membership in the closed policy set.
func (p Policy) valid() bool {
	_, ok := policyNames[p]

	return ok
}

// ParsePolicy parses a case-sensitive lowercase policy label.
// Unknown labels fail with ErrUnknownPolicy listing the legal values.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if s == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (valid options are: random,shortestpath,loadbalancing)", ErrUnknownPolicy, s)
}

// PathAllocation is one path assigned to an app: the net end-to-end rate
// delivered, the gross rate reserved on every edge, and the hop sequence
// (excluding the host, terminating at one of the app's peers).
type PathAllocation struct {
	NetRate   float64 // in EPR/s
	GrossRate float64 // in EPR/s
	Hops      []qnet.NodeID
}

// AppDescriptor is one elastic multi-peer demand.
//
// Host, Peers and Priority are inputs and are never modified. Paths and
// YenCalls are populated by Allocate. Delta is the working deficit counter
// in gross EPR/s; its terminal value is retained so callers can observe
// unspent share.
type AppDescriptor struct {
	// input
	Host     qnet.NodeID
	Peers    []qnet.NodeID
	Priority float64 // weight, > 0

	// output
	Paths    []PathAllocation
	YenCalls int

	// working
	Delta float64 // deficit counter, in gross EPR/s
}

// NewApp returns a descriptor for an app hosted at host, served by any of
// the peers, with the given priority weight.
func NewApp(host qnet.NodeID, peers []qnet.NodeID, priority float64) *AppDescriptor {
	return &AppDescriptor{Host: host, Peers: peers, Priority: priority}
}

// Allocated reports whether Allocate assigned at least one path.
func (a *AppDescriptor) Allocated() bool { return len(a.Paths) > 0 }

// TotalNetRate sums the delivered end-to-end rate over all assigned paths.
func (a *AppDescriptor) TotalNetRate() float64 {
	var total float64
	for i := range a.Paths {
		total += a.Paths[i].NetRate
	}

	return total
}

// TotalGrossRate sums the per-edge gross rate over all assigned paths.
func (a *AppDescriptor) TotalGrossRate() float64 {
	var total float64
	for i := range a.Paths {
		total += a.Paths[i].GrossRate
	}

	return total
}

// String renders the descriptor for diagnostics.
func (a *AppDescriptor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "app host %d priority %g, %d peer(s)", a.Host, a.Priority, len(a.Peers))
	fmt.Fprintf(&sb, ": %d path(s), net %g EPR/s, gross %g EPR/s, delta %g (%d yen calls)",
		len(a.Paths), a.TotalNetRate(), a.TotalGrossRate(), a.Delta, a.YenCalls)

	return sb.String()
}

// Options configures Allocate.
type Options struct {
	Quantum   float64     // allocation quantum ε, > 0
	MaxRounds int         // round-robin cap, ≥ 1
	Rng       *rand.Rand  // required by PolicyRandom
	Logger    *zap.Logger // per-allocation trace; never nil after DefaultOptions
}

// Option is a functional option for Allocate.
type Option func(*Options)

// WithQuantum overrides the allocation quantum ε.
// Panics if q ≤ 0 (programmer error in configuration).
func WithQuantum(q float64) Option {
	if q <= 0 {
		panic(fmt.Sprintf("alloc: WithQuantum requires q > 0, got %g", q))
	}

	return func(o *Options) { o.Quantum = q }
}

// WithMaxRounds caps the round-robin loop.
// Panics if n < 1.
func WithMaxRounds(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("alloc: WithMaxRounds requires n ≥ 1, got %d", n))
	}

	return func(o *Options) { o.MaxRounds = n }
}

// WithRand installs the random source used by PolicyRandom.
// Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("alloc: WithRand requires a non-nil rng")
	}

	return func(o *Options) { o.Rng = rng }
}

// WithLogger installs a zap logger tracing per-allocation decisions.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("alloc: WithLogger requires a non-nil logger")
	}

	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the allocator defaults.
func DefaultOptions() Options {
	return Options{
		Quantum:   DefaultQuantum,
		MaxRounds: DefaultMaxRounds,
		Rng:       nil,
		Logger:    zap.NewNop(),
	}
}
