// Package alloc assigns network capacity to elastic multi-peer apps under
// priority weights, using a deficit-counter round-robin over cached
// candidate paths.
//
// What:
//
//   - AppDescriptor carries the request (host, candidate peers, priority
//     weight) and, after allocation, the list of (net rate, gross rate,
//     hop sequence) assignments, the number of k-shortest-path
//     computations spent, and the terminal deficit counter.
//   - Allocate first caches up to k loopless minimum-hop paths per
//     (host, peer) pair via Yen's algorithm, then runs rounds: each round
//     every app accumulates its share priority/Σpriorities (in gross
//     EPR/s) onto its deficit counter and, if a cached path is feasible
//     (every edge residual ≥ the quantum), admits min(deficit, bottleneck)
//     along the path chosen by the policy. The loop halts when a whole
//     round admits nothing or the round cap is reached.
//
// Policies:
//
//   - PolicyRandom: uniform over feasible candidates (needs WithRand).
//   - PolicyShortestPath: fewest hops, ties lexicographic on the sequence.
//   - PolicyLoadBalancing: feasible candidate with the largest bottleneck
//     residual.
//
// Failure semantics:
//
//   - Configuration errors (non-positive priority, empty peers, unknown
//     host, k < 1, unknown policy) fail with ErrInvalidApp / ErrBadK /
//     ErrUnknownPolicy before any state change.
//   - An unreachable or unknown peer is not an error: it simply
//     contributes no cached paths.
//
// Complexity: setup O(Σpeers · k · V (V+E) log V); each round O(apps ·
// cached paths · h).
package alloc
