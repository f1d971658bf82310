package sim

import (
	"fmt"
	"math"
)

// SolverConfig bounds the adaptive step controller.
type SolverConfig struct {
	RTol     float64 // relative tolerance per step
	ATol     float64 // absolute tolerance per step
	MaxSteps int     // attempted steps per Integrate call before giving up
}

// DefaultSolverConfig returns the tolerances used throughout the CLI.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{RTol: 1e-8, ATol: 1e-8, MaxSteps: 100000}
}

// withDefaults fills zero-valued fields so a zero SolverConfig behaves like
// DefaultSolverConfig.
func (c SolverConfig) withDefaults() SolverConfig {
	d := DefaultSolverConfig()
	if c.RTol <= 0 {
		c.RTol = d.RTol
	}
	if c.ATol <= 0 {
		c.ATol = d.ATol
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = d.MaxSteps
	}
	return c
}

// sirState is the (S, I, R) vector the stepper advances.
type sirState [3]float64

// sirDeriv evaluates the SIR vector field:
//
//	dS/dt = -beta*S*I/N
//	dI/dt =  beta*S*I/N - gamma*I
//	dR/dt =  gamma*I
//
// The three components sum to zero, which is what makes population
// conservation structural rather than a solver property.
func sirDeriv(p ModelParameters, y sirState) sirState {
	infection := p.Beta * y[0] * y[1] / p.N
	recovery := p.Gamma * y[1]
	return sirState{-infection, infection - recovery, recovery}
}

// Dormand-Prince 5(4) tableau (the ode45 pair). The fifth-order solution is
// propagated; the embedded fourth-order weights supply the error estimate.
// The last A row equals the fifth-order weights, so the seventh stage is the
// first stage of the next step (FSAL).
var (
	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
	dpB4 = [7]float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40}
)

// Integrate solves the SIR initial-value problem and returns one sample per
// grid point. The grid's first element is the time at which initial is valid
// (0 for a fresh run, the segment start for continuation segments). The
// stepper is adaptive but always re-steps to land exactly on each requested
// grid point, so output length equals grid length. Pure function of its
// inputs.
func Integrate(params ModelParameters, initial CompartmentState, grid []float64, cfg SolverConfig) (TimeSeries, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateGrid(grid); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	series := make(TimeSeries, 0, len(grid))
	series = append(series, Sample{T: grid[0], State: initial})
	if len(grid) == 1 {
		return series, nil
	}

	y := sirState{initial.S, initial.I, initial.R}
	k1 := sirDeriv(params, y)
	h := grid[1] - grid[0] // the controller adapts from here within a step or two
	steps := 0

	for i := 1; i < len(grid); i++ {
		t, target := grid[i-1], grid[i]
		for t < target {
			if steps >= cfg.MaxSteps {
				return nil, fmt.Errorf("%w: step budget of %d exhausted at t=%.6g", ErrNumericalInstability, cfg.MaxSteps, t)
			}
			steps++

			hTry := h
			clamped := false
			if hTry > target-t {
				hTry = target - t
				clamped = true
			}

			yNext, kLast, errNorm := dpStep(params, y, k1, hTry, cfg)
			if errNorm <= 1 {
				y = yNext
				k1 = kLast
				if clamped {
					// hTry was exactly target-t: land on the grid point and
					// keep the controller's step size, since a grid-shortened
					// step says nothing about accuracy.
					t = target
				} else {
					t += hTry
					h = hTry * stepFactor(errNorm)
				}
			} else {
				h = hTry * stepFactor(errNorm)
				if h < minStep(t) {
					return nil, fmt.Errorf("%w: step size underflow at t=%.6g", ErrNumericalInstability, t)
				}
			}
		}
		series = append(series, Sample{T: target, State: CompartmentState{S: y[0], I: y[1], R: y[2]}})
	}
	return series, nil
}

// dpStep advances one Dormand-Prince step of size h from y, with k1 the
// derivative at y (FSAL reuse). Returns the fifth-order solution, the
// derivative at that solution, and the scaled error norm (accept iff <= 1).
func dpStep(p ModelParameters, y, k1 sirState, h float64, cfg SolverConfig) (sirState, sirState, float64) {
	var k [7]sirState
	k[0] = k1
	for s := 1; s <= 5; s++ {
		var ys sirState
		for j := 0; j < 3; j++ {
			acc := y[j]
			for i := 0; i < s; i++ {
				acc += h * dpA[s][i] * k[i][j]
			}
			ys[j] = acc
		}
		k[s] = sirDeriv(p, ys)
	}

	// Fifth-order solution via the last A row, then its derivative (FSAL).
	var y5 sirState
	for j := 0; j < 3; j++ {
		acc := y[j]
		for i := 0; i < 6; i++ {
			acc += h * dpA[6][i] * k[i][j]
		}
		y5[j] = acc
	}
	k[6] = sirDeriv(p, y5)

	// Embedded fourth-order solution and scaled RMS error.
	var errNorm float64
	for j := 0; j < 3; j++ {
		y4 := y[j]
		for i := 0; i < 7; i++ {
			y4 += h * dpB4[i] * k[i][j]
		}
		sc := cfg.ATol + cfg.RTol*math.Max(math.Abs(y[j]), math.Abs(y5[j]))
		r := (y5[j] - y4) / sc
		errNorm += r * r
	}
	errNorm = math.Sqrt(errNorm / 3)

	return y5, k[6], errNorm
}

// stepFactor is the classic order-5 step controller with safety 0.9,
// clamped to [0.2, 5] to avoid step-size thrashing.
func stepFactor(errNorm float64) float64 {
	if errNorm == 0 {
		return 5
	}
	f := 0.9 * math.Pow(errNorm, -0.2)
	return math.Min(5, math.Max(0.2, f))
}

// minStep is the smallest meaningful step near time t; shrinking below it
// means the controller has stalled.
func minStep(t float64) float64 {
	return 16 * 2.220446049250313e-16 * math.Max(math.Abs(t), 1)
}
