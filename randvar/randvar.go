package randvar

import (
	"fmt"
	"math"

	"github.com/iti/rngstream"
)

// Rv produces non-negative real values, one per call.
// Implementations must be callable any number of times with no ordering
// assumptions between calls.
type Rv interface {
	// Value returns the next draw, always ≥ 0.
	Value() float64
}

// fixed is the degenerate source: every draw returns the same value.
type fixed struct {
	v float64
}

// Fixed returns an Rv that always yields v.
// Panics if v < 0.
// Complexity: O(1) per draw.
func Fixed(v float64) Rv {
	if v < 0 {
		panic(fmt.Sprintf("randvar: Fixed value must be ≥ 0, got %g", v))
	}

	return fixed{v: v}
}

// Value implements Rv.
func (f fixed) Value() float64 { return f.v }

// uniform samples U[min, max) from a dedicated rngstream stream.
type uniform struct {
	rng  *rngstream.RngStream
	min  float64
	span float64
}

// Uniform returns an Rv sampling uniformly in [min, max).
// The name seeds a dedicated rngstream stream, so two sources with the
// same name produce the same sequence and differently named sources are
// statistically independent.
// Panics if min < 0 or max < min.
// Complexity: O(1) per draw.
func Uniform(name string, min, max float64) Rv {
	if min < 0 || max < min {
		panic(fmt.Sprintf("randvar: Uniform requires 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return &uniform{
		rng:  rngstream.New(name),
		min:  min,
		span: max - min,
	}
}

// Value implements Rv.
func (u *uniform) Value() float64 {
	if u.span == 0 {
		// Degenerate interval: constant.
		return u.min
	}

	return u.min + u.rng.RandU01()*u.span
}

// exponential samples Exp(rate) via inverse-CDF over a rngstream stream.
type exponential struct {
	rng  *rngstream.RngStream
	rate float64
}

// Exponential returns an Rv sampling from an exponential distribution with
// the given rate λ (mean 1/λ). The name seeds a dedicated rngstream stream.
// Panics if rate ≤ 0.
// Complexity: O(1) per draw.
func Exponential(name string, rate float64) Rv {
	if rate <= 0 {
		panic(fmt.Sprintf("randvar: Exponential rate must be > 0, got %g", rate))
	}

	return &exponential{
		rng:  rngstream.New(name),
		rate: rate,
	}
}

// Value implements Rv.
func (e *exponential) Value() float64 {
	// RandU01 returns values in (0,1); guard the open bounds anyway so the
	// logarithm stays finite.
	u := e.rng.RandU01()
	if u >= 1 {
		u = math.Nextafter(1, 0)
	}

	return -math.Log(1-u) / e.rate
}
