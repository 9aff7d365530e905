// Package route admits fixed-rate point-to-point flows onto a capacity
// network, mutating residual capacities as it goes.
//
// What:
//
//   - FlowDescriptor carries the immutable request (source, destination,
//     net EPR rate) and, after admission, the chosen hop sequence, the
//     gross rate reserved per edge, and the number of shortest-path
//     invocations spent.
//   - Route processes the batch sequentially in input order. Per flow it
//     searches a working copy of the graph for the minimum-hop path,
//     verifies residual capacity for the gross rate net/μ^(h-1) against
//     the live graph, and either commits the reservation or disables the
//     smallest-capacity edge of the candidate path in the working copy and
//     searches again. Pruning removes one edge per iteration, so each flow
//     terminates within |E| searches.
//
// Atomicity:
//
//   - The whole batch is validated before any mutation: an ill-formed flow
//     rejects the call with ErrInvalidFlow and the network is untouched.
//   - A single flow either commits all its capacity deductions or none.
//     Unreachable destinations, μ-infeasible paths and check-function
//     vetoes are recovered locally: the descriptor keeps empty outputs and
//     routing continues with the next flow.
//
// Options:
//
//   - WithCheckFunc(fn): admission veto evaluated against the descriptor
//     with tentative outputs filled in; default accepts everything.
//   - WithLogger(l): zap logger tracing per-flow decisions; default Nop.
//
// Complexity: O(F · E · (V + E) log V) worst case, in practice one or two
// searches per flow.
package route
