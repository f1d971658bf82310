package sim

import "fmt"

// CompartmentState is the S/I/R split of the population at one instant.
type CompartmentState struct {
	S float64 // susceptible
	I float64 // infected
	R float64 // recovered
}

// Total returns S+I+R. The SIR derivatives sum to zero, so on a valid
// trajectory this equals N at every sample up to solver tolerance.
func (c CompartmentState) Total() float64 {
	return c.S + c.I + c.R
}

// Validate rejects negative or non-finite compartment counts.
func (c CompartmentState) Validate() error {
	for _, v := range []float64{c.S, c.I, c.R} {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("%w: compartments must be non-negative and finite, got S=%v I=%v R=%v",
				ErrInvalidParameters, c.S, c.I, c.R)
		}
	}
	return nil
}

// Sample pairs a simulation time (in days) with the compartment state.
type Sample struct {
	T     float64
	State CompartmentState
}

// TimeSeries is an ordered trajectory, strictly increasing in T. Treated as
// immutable once returned by the integrator; callers own their copy.
type TimeSeries []Sample

// Times returns the sampled days.
func (ts TimeSeries) Times() []float64 {
	out := make([]float64, len(ts))
	for i, s := range ts {
		out[i] = s.T
	}
	return out
}

// Susceptible returns the S curve.
func (ts TimeSeries) Susceptible() []float64 {
	out := make([]float64, len(ts))
	for i, s := range ts {
		out[i] = s.State.S
	}
	return out
}

// Infected returns the I curve.
func (ts TimeSeries) Infected() []float64 {
	out := make([]float64, len(ts))
	for i, s := range ts {
		out[i] = s.State.I
	}
	return out
}

// Recovered returns the R curve.
func (ts TimeSeries) Recovered() []float64 {
	out := make([]float64, len(ts))
	for i, s := range ts {
		out[i] = s.State.R
	}
	return out
}

// Last returns the final sample. Panics on an empty series; the integrator
// never returns one.
func (ts TimeSeries) Last() Sample {
	return ts[len(ts)-1]
}
