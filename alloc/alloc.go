package alloc

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/qnet"
	"github.com/katalvlaran/qroute/yen"
)

// Allocate distributes residual capacity among the apps. Up to k loopless
// minimum-hop paths per (host, peer) pair are cached first; then apps are
// served in rounds, each accumulating its priority share of one gross
// EPR/s per round onto its deficit counter and admitting along the
// policy-chosen feasible path. See the package documentation for the full
// scheme.
//
// The batch is validated before any state change. The call mutates the
// network (reservations) and the descriptors (Paths, YenCalls, Delta) in
// place; an empty batch is a no-op.
func Allocate(net *qnet.Network, apps []*AppDescriptor, k int, policy Policy, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Configuration checks, all before any state change.
	if net == nil {
		return ErrNilNetwork
	}
	if k < 1 {
		return fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	if !policy.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, policy)
	}
	if policy == PolicyRandom && cfg.Rng == nil {
		return ErrNeedRandSource
	}
	for i, a := range apps {
		if err := validateApp(net, i, a); err != nil {
			return err
		}
	}
	if len(apps) == 0 {
		return nil
	}

	// 2) Setup: Yen path cache per (host, peer); unreachable or unknown
	//    peers simply contribute nothing.
	caches := make([][][]qnet.NodeID, len(apps))
	view := net.NewView()
	var totalPriority float64
	for i, a := range apps {
		totalPriority += a.Priority
		for _, peer := range a.Peers {
			if !net.HasNode(peer) || peer == a.Host {
				continue
			}
			paths, err := yen.KShortest(view, a.Host, peer, k)
			a.YenCalls++
			if err != nil {
				return err
			}
			caches[i] = append(caches[i], paths...)
		}
		cfg.Logger.Debug("app path cache built",
			zap.Int("host", int(a.Host)), zap.Int("candidates", len(caches[i])),
			zap.Int("yen_calls", a.YenCalls))
	}

	// 3) Deficit round-robin. A round with zero admissions across all apps
	//    means no deficit can ever be spent again, so the loop halts.
	for round := 0; round < cfg.MaxRounds; round++ {
		admitted := false
		for i, a := range apps {
			a.Delta += a.Priority / totalPriority // per-round share, gross EPR/s
			if a.Delta < cfg.Quantum {
				continue // carry the deficit until it reaches the quantum
			}
			if allocateOne(net, a, caches[i], policy, &cfg) {
				admitted = true
			}
		}
		if !admitted {
			break
		}
	}

	return nil
}

// validateApp rejects ill-formed descriptors with ErrInvalidApp context.
func validateApp(net *qnet.Network, i int, a *AppDescriptor) error {
	switch {
	case a == nil:
		return fmt.Errorf("%w: app #%d is nil", ErrInvalidApp, i)
	case len(a.Peers) == 0:
		return fmt.Errorf("%w: app #%d has no peers", ErrInvalidApp, i)
	case !(a.Priority > 0) || math.IsInf(a.Priority, 1):
		return fmt.Errorf("%w: app #%d priority %g must be > 0", ErrInvalidApp, i, a.Priority)
	case !net.HasNode(a.Host):
		return fmt.Errorf("%w: app #%d host %d not in graph", ErrInvalidApp, i, a.Host)
	}

	return nil
}

// allocateOne spends as much of the app's deficit as the chosen path
// allows. Returns true when something was admitted.
func allocateOne(net *qnet.Network, a *AppDescriptor, cache [][]qnet.NodeID, policy Policy, cfg *Options) bool {
	// 1) Collect feasible candidates: every edge residual ≥ quantum.
	type candidate struct {
		hops       []qnet.NodeID
		bottleneck float64
	}
	feasible := make([]candidate, 0, len(cache))
	for _, hops := range cache {
		b, err := net.PathBottleneck(a.Host, hops)
		if err != nil || b < cfg.Quantum {
			continue
		}
		feasible = append(feasible, candidate{hops: hops, bottleneck: b})
	}
	if len(feasible) == 0 {
		return false
	}

	// 2) Pick per policy.
	chosen := 0
	switch policy {
	case PolicyRandom:
		chosen = cfg.Rng.Intn(len(feasible))
	case PolicyShortestPath:
		for i := 1; i < len(feasible); i++ {
			if hopsLess(feasible[i].hops, feasible[chosen].hops) {
				chosen = i
			}
		}
	case PolicyLoadBalancing:
		for i := 1; i < len(feasible); i++ {
			if feasible[i].bottleneck > feasible[chosen].bottleneck {
				chosen = i
			}
		}
	}
	pick := feasible[chosen]

	// 3) Admit min(deficit, bottleneck) gross EPR/s along the pick.
	amount := a.Delta
	if pick.bottleneck < amount {
		amount = pick.bottleneck
	}
	if err := net.ReservePath(a.Host, pick.hops, amount); err != nil {
		// Cannot happen: amount ≤ bottleneck by construction.
		cfg.Logger.Warn("app reservation failed", zap.Error(err))

		return false
	}
	a.Delta -= amount
	mergeAllocation(a, pick.hops, amount, net.NetRate(amount, len(pick.hops)))
	cfg.Logger.Debug("app allocation",
		zap.Int("host", int(a.Host)), zap.String("policy", policy.String()),
		zap.Float64("gross", amount), zap.Int("hops", len(pick.hops)),
		zap.Float64("delta", a.Delta))

	return true
}

// mergeAllocation appends a new path allocation, or folds the rates onto
// an existing entry with the identical hop sequence.
func mergeAllocation(a *AppDescriptor, hops []qnet.NodeID, gross, netRate float64) {
	for i := range a.Paths {
		if samePath(a.Paths[i].Hops, hops) {
			a.Paths[i].GrossRate += gross
			a.Paths[i].NetRate += netRate

			return
		}
	}
	a.Paths = append(a.Paths, PathAllocation{NetRate: netRate, GrossRate: gross, Hops: hops})
}

// hopsLess orders hop sequences by (length, lexicographic).
func hopsLess(a, b []qnet.NodeID) bool {
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

// samePath reports hop-sequence equality.
func samePath(a, b []qnet.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
