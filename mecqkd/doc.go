// Package mecqkd defines the closed set of edge-QKD algorithm labels used
// by experiment drivers to select a workload-assignment strategy.
//
// The set pairs three base strategies (random, spf for shortest path
// first, bestfit) with their *feas variants, which restrict the choice to
// peers that still have at least one feasible cached path before applying
// the base strategy.
//
// Labels are case-sensitive lowercase strings; Parse rejects anything else
// with ErrUnknownAlgo carrying the full list of legal values.
package mecqkd
