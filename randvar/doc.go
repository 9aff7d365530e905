// Package randvar provides pluggable real-valued random sources used to
// draw edge capacities at network construction time.
//
// What:
//
//   - Rv is a capability with a single parameterless Value() operation
//     returning a non-negative float64.
//   - Fixed yields a constant; Uniform and Exponential sample from their
//     distributions over a dedicated rngstream stream, so independent
//     networks built from differently named sources never share state.
//
// Why:
//
//   - Network constructors consult the source exactly once per logical
//     link (bidirectional pairs share the single draw), so the source must
//     be cheap and must not assume any call ordering.
//
// Errors:
//
//   - None at runtime. Constructors panic on clearly invalid configuration
//     (negative constant, inverted uniform bounds, non-positive rate);
//     this is programmer error, not input validation.
package randvar
