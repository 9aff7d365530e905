package route

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/dijkstra"
	"github.com/katalvlaran/qroute/qnet"
)

// Route admits the flows onto the network, one by one, in input order.
// Residual capacities fall as flows commit, so the outcome of flow i+1
// depends on what flow i consumed.
//
// The entire batch is validated first: any ill-formed descriptor fails the
// call with ErrInvalidFlow before the network is touched. Individual flows
// that cannot be served (unreachable destination, insufficient capacity
// after exhausting edge-prune retries, μ = 0 over multiple hops, or a
// check-function veto) are rejected locally — their outputs stay empty —
// and routing continues.
//
// Complexity: O(F · E · (V + E) log V) worst case.
func Route(net *qnet.Network, flows []*FlowDescriptor, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if net == nil {
		return ErrNilNetwork
	}

	// 1) Atomic pre-check of the whole batch; no mutation before this passes.
	for i, f := range flows {
		if err := validateFlow(net, i, f); err != nil {
			return err
		}
	}

	// 2) Sequential admission.
	for _, f := range flows {
		routeOne(net, f, &cfg)
	}

	return nil
}

// validateFlow rejects ill-formed descriptors with ErrInvalidFlow context.
func validateFlow(net *qnet.Network, i int, f *FlowDescriptor) error {
	switch {
	case f == nil:
		return fmt.Errorf("%w: flow #%d is nil", ErrInvalidFlow, i)
	case !net.HasNode(f.Src):
		return fmt.Errorf("%w: flow #%d source %d not in graph", ErrInvalidFlow, i, f.Src)
	case !net.HasNode(f.Dst):
		return fmt.Errorf("%w: flow #%d destination %d not in graph", ErrInvalidFlow, i, f.Dst)
	case f.Src == f.Dst:
		return fmt.Errorf("%w: flow #%d has src == dst == %d", ErrInvalidFlow, i, f.Src)
	case !(f.NetRate > 0) || math.IsInf(f.NetRate, 1):
		return fmt.Errorf("%w: flow #%d net rate %g must be > 0", ErrInvalidFlow, i, f.NetRate)
	}

	return nil
}

// routeOne drives the search/commit loop for a single flow. On return the
// descriptor is either admitted (outputs set, capacities reserved) or
// rejected (outputs empty, network unchanged by this flow).
func routeOne(net *qnet.Network, f *FlowDescriptor, cfg *Options) {
	// Working copy: bottleneck pruning happens here, never on the network.
	view := net.NewView()

	for {
		// 1) Minimum-hop candidate path on the pruned working copy.
		hops, err := dijkstra.Hops(view, f.Src, f.Dst)
		f.DijkstraCalls++
		if err != nil {
			if !errors.Is(err, dijkstra.ErrNoPath) {
				// Validation already ruled out unknown nodes; anything else
				// here is a programming bug, treated as unreachable.
				cfg.Logger.Warn("flow search failed", zap.Error(err))
			}
			cfg.Logger.Debug("flow rejected: unreachable",
				zap.Int("src", int(f.Src)), zap.Int("dst", int(f.Dst)),
				zap.Int("dijkstra_calls", f.DijkstraCalls))

			return
		}

		// 2) Gross rate for this hop count: net / μ^(h-1).
		gross, ok := net.GrossRate(f.NetRate, len(hops))
		if !ok {
			// μ = 0 and the shortest path is multi-hop; pruning can only
			// lengthen paths, so no retry can help.
			cfg.Logger.Debug("flow rejected: zero measurement probability over multiple hops",
				zap.Int("src", int(f.Src)), zap.Int("dst", int(f.Dst)),
				zap.Int("hops", len(hops)))

			return
		}

		// 3) Feasibility against the live graph, not the working copy.
		feasible, ferr := net.PathFeasible(f.Src, hops, gross)
		if ferr != nil {
			cfg.Logger.Warn("flow feasibility check failed", zap.Error(ferr))

			return
		}

		if !feasible {
			// 4a) Prune the smallest-capacity edge of the candidate (first
			// occurrence on ties) and search again. Each iteration removes
			// one edge, so the loop ends within |E| rounds.
			if derr := view.DisableMinCapacityEdge(f.Src, hops); derr != nil {
				cfg.Logger.Warn("bottleneck prune failed", zap.Error(derr))

				return
			}
			cfg.Logger.Debug("flow candidate infeasible, pruning bottleneck",
				zap.Int("src", int(f.Src)), zap.Int("dst", int(f.Dst)),
				zap.Float64("gross", gross), zap.String("view", view.String()))

			continue
		}

		// 4b) Feasible: fill tentative outputs and consult the veto.
		f.Path = hops
		f.GrossRate = gross
		if cfg.Check != nil && !cfg.Check(f) {
			f.Path = nil
			f.GrossRate = 0
			cfg.Logger.Debug("flow rejected: check function veto",
				zap.Int("src", int(f.Src)), zap.Int("dst", int(f.Dst)))

			return
		}

		// 5) Commit: subtract the gross rate from every edge on the path.
		if rerr := net.ReservePath(f.Src, hops, gross); rerr != nil {
			// Cannot happen after a positive feasibility check; keep the
			// descriptor consistent anyway.
			f.Path = nil
			f.GrossRate = 0
			cfg.Logger.Warn("flow reservation failed", zap.Error(rerr))

			return
		}
		cfg.Logger.Debug("flow admitted",
			zap.Int("src", int(f.Src)), zap.Int("dst", int(f.Dst)),
			zap.Float64("net", f.NetRate), zap.Float64("gross", gross),
			zap.Int("hops", len(hops)), zap.Int("dijkstra_calls", f.DijkstraCalls))

		return
	}
}
