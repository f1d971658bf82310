package sim

import (
	"fmt"
	"math"
)

// ModelParameters holds the rates of the SIR system. N is a float64 because
// compartment values are continuous once integration starts; it still
// represents a whole population count.
type ModelParameters struct {
	N     float64 // total population (> 0)
	Beta  float64 // transmission rate in 1/day (>= 0)
	Gamma float64 // recovery rate in 1/day (> 0)
}

// NewModelParameters builds a ModelParameters value. No defaults are
// injected; call Validate before integrating.
func NewModelParameters(n, beta, gamma float64) ModelParameters {
	return ModelParameters{N: n, Beta: beta, Gamma: gamma}
}

// R0 returns the basic reproduction number beta/gamma. Computed on demand so
// it can never go stale when a rate changes.
func (p ModelParameters) R0() float64 {
	return p.Beta / p.Gamma
}

// WithBeta returns a copy with the transmission rate replaced. Used by the
// Composer for intervention segments and by the R0 sweep.
func (p ModelParameters) WithBeta(beta float64) ModelParameters {
	p.Beta = beta
	return p
}

// Validate checks the physicality constraints on the parameter set.
func (p ModelParameters) Validate() error {
	if !isFinite(p.N) || p.N <= 0 {
		return fmt.Errorf("%w: population N must be positive and finite, got %v", ErrInvalidParameters, p.N)
	}
	if !isFinite(p.Gamma) || p.Gamma <= 0 {
		return fmt.Errorf("%w: recovery rate gamma must be positive and finite, got %v", ErrInvalidParameters, p.Gamma)
	}
	if !isFinite(p.Beta) || p.Beta < 0 {
		return fmt.Errorf("%w: transmission rate beta must be non-negative and finite, got %v", ErrInvalidParameters, p.Beta)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
