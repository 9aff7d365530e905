// Package qroute models quantum networks whose links are characterized by
// their entanglement-generation capacity, in EPR pairs per second, and
// admits end-to-end demands against the residual capacities.
//
// 🚀 What is qroute?
//
//	A capacity-routing library that brings together:
//		• qnet     — the capacity network: directed edge arena, measurement
//		             probability μ, introspection, working-copy views, DOT export
//		• route    — fixed-rate point-to-point flows, admitted one by one with
//		             bottleneck-edge pruning on saturation
//		• alloc    — elastic multi-peer apps, served round-robin under priority
//		             weights and deficit counters over Yen path caches
//		• dijkstra — minimum-hop shortest path over a network view
//		• yen      — k loopless shortest paths per (host, peer) pair
//		• randvar  — pluggable random sources for construction-time edge weights
//		• mecqkd   — the edge-QKD algorithm label set
//
// Two kinds of demand can be routed:
//
//   - flows: source, destination and a net EPR rate; they represent
//     metrology, sensing and QKD applications that require a constant rate
//     of end-to-end entangled pairs
//
//   - apps: a host node, a set of candidate peers and a numeric priority;
//     they represent elastic applications, e.g. distributed quantum
//     computing
//
// Along a path of h hops the end-to-end delivered rate is the bottleneck
// capacity multiplied by μ^(h-1), where μ is the probability that each
// intermediate entanglement-swap measurement succeeds. Admission therefore
// reserves the gross rate net/μ^(h-1) on every edge of the chosen path.
//
// Capacities only ever decrease: there is no rollback, and partial
// admissions persist. The library is single-threaded cooperative — one
// logical caller drives Route/Allocate and no internal locking is provided.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	four nodes, four links; with μ=0.5 a flow 0→3 over two hops must
//	reserve twice its net rate on both edges of the chosen path.
//
//	go get github.com/katalvlaran/qroute
package qroute
