// Package route defines the flow descriptor, router options, and sentinel
// errors for flow admission.
package route

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/qnet"
)

// Sentinel errors for flow admission.
var (
	// ErrNilNetwork indicates a nil *qnet.Network was passed to Route.
	ErrNilNetwork = errors.New("route: network is nil")

	// ErrInvalidFlow indicates an ill-formed flow descriptor in the batch:
	// src == dst, unknown node, or non-positive net rate. The whole batch is
	// rejected before any state change.
	ErrInvalidFlow = errors.New("route: invalid flow descriptor")
)

// FlowDescriptor is one fixed-rate point-to-point demand.
//
// Src, Dst and NetRate are inputs and are never modified. Path, GrossRate
// and DijkstraCalls are populated by Route: an admitted flow carries the
// hop sequence (excluding Src, including Dst) and the gross EPR/s reserved
// on every edge of it; a rejected flow keeps Path empty. DijkstraCalls
// counts shortest-path invocations spent on this flow (≥ 1 once routed).
type FlowDescriptor struct {
	// input
	Src     qnet.NodeID
	Dst     qnet.NodeID
	NetRate float64 // in EPR/s

	// output
	Path          []qnet.NodeID
	GrossRate     float64 // in EPR/s
	DijkstraCalls int
}

// NewFlow returns a descriptor for a net-rate demand from src to dst.
func NewFlow(src, dst qnet.NodeID, netRate float64) *FlowDescriptor {
	return &FlowDescriptor{Src: src, Dst: dst, NetRate: netRate}
}

// Admitted reports whether Route committed this flow.
func (f *FlowDescriptor) Admitted() bool { return len(f.Path) > 0 }

// String renders the descriptor for diagnostics.
func (f *FlowDescriptor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "flow %d→%d net %g EPR/s", f.Src, f.Dst, f.NetRate)
	if !f.Admitted() {
		fmt.Fprintf(&sb, ": rejected (%d dijkstra calls)", f.DijkstraCalls)

		return sb.String()
	}
	fmt.Fprintf(&sb, ": path [")
	for i, h := range f.Path {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%d", h)
	}
	fmt.Fprintf(&sb, "] gross %g EPR/s (%d dijkstra calls)", f.GrossRate, f.DijkstraCalls)

	return sb.String()
}

// CheckFunc vetoes a feasible admission. It is evaluated against the
// descriptor with tentative outputs (Path, GrossRate) filled in; returning
// false rejects the flow and leaves the network untouched.
type CheckFunc func(*FlowDescriptor) bool

// Options configures Route.
type Options struct {
	Check  CheckFunc   // admission veto; nil accepts everything
	Logger *zap.Logger // per-decision trace; never nil after DefaultOptions
}

// Option is a functional option for Route.
type Option func(*Options)

// WithCheckFunc installs an admission veto.
// Panics if fn is nil (programmer error in configuration).
func WithCheckFunc(fn CheckFunc) Option {
	if fn == nil {
		panic("route: WithCheckFunc requires a non-nil function")
	}

	return func(o *Options) { o.Check = fn }
}

// WithLogger installs a zap logger tracing per-flow decisions.
// Panics if l is nil; use DefaultOptions' Nop logger to stay silent.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("route: WithLogger requires a non-nil logger")
	}

	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the router defaults: accept every feasible flow,
// log nothing.
func DefaultOptions() Options {
	return Options{
		Check:  nil,
		Logger: zap.NewNop(),
	}
}
