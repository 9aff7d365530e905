package mecqkd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgo indicates a label outside the closed algorithm set.
var ErrUnknownAlgo = errors.New("mecqkd: invalid edge QKD algorithm")

// Algo is one edge-QKD workload-assignment algorithm.
type Algo int

const (
	// Random assigns among all candidate peers uniformly at random.
	Random Algo = iota

	// Spf assigns to the candidate reachable over the fewest hops.
	Spf

	// BestFit assigns to the candidate whose residual capacity fits best.
	BestFit

	// RandomFeas is Random restricted to peers with a feasible path.
	RandomFeas

	// SpfFeas is Spf restricted to peers with a feasible path.
	SpfFeas

	// BestFitFeas is BestFit restricted to peers with a feasible path.
	BestFitFeas
)

// algoNames maps algorithms to their canonical lowercase labels.
var algoNames = map[Algo]string{
	Random:      "random",
	Spf:         "spf",
	BestFit:     "bestfit",
	RandomFeas:  "randomfeas",
	SpfFeas:     "spffeas",
	BestFitFeas: "bestfitfeas",
}

// All returns every algorithm, in canonical order.
func All() []Algo {
	return []Algo{Random, Spf, BestFit, RandomFeas, SpfFeas, BestFitFeas}
}

// String returns the canonical lowercase label, or "unknown".
func (a Algo) String() string {
	if name, ok := algoNames[a]; ok {
		return name
	}

	return "unknown"
}

// Base strips the feasible-only restriction: RandomFeas.Base() == Random,
// and base algorithms return themselves.
func (a Algo) Base() Algo {
	switch a {
	case RandomFeas:
		return Random
	case SpfFeas:
		return Spf
	case BestFitFeas:
		return BestFit
	default:
		return a
	}
}

// FeasibleOnly reports whether the algorithm pre-filters candidates to
// peers with at least one feasible cached path.
func (a Algo) FeasibleOnly() bool {
	switch a {
	case RandomFeas, SpfFeas, BestFitFeas:
		return true
	default:
		return false
	}
}

// Parse resolves a case-sensitive lowercase label to its Algo.
// Unknown labels fail with ErrUnknownAlgo listing the legal values.
func Parse(s string) (Algo, error) {
	for _, a := range All() {
		if algoNames[a] == s {
			return a, nil
		}
	}

	legal := make([]string, 0, len(algoNames))
	for _, a := range All() {
		legal = append(legal, algoNames[a])
	}

	return 0, fmt.Errorf("%w: %s (valid options are: %s)", ErrUnknownAlgo, s, strings.Join(legal, ","))
}
