package sim

import "fmt"

// NamedScenario is one labeled entry of a comparison batch. A slice keeps
// the caller's insertion order; results come back in the same order.
type NamedScenario struct {
	Label         string
	Params        ModelParameters
	Interventions InterventionSpec
}

// SweepReproductionNumber evaluates a single-segment scenario per R0 value,
// deriving beta = r0 * gamma from the base parameters (any Beta in base is
// ignored). Results match the order of r0Values; duplicate values simply
// repeat the work and appear twice. An empty r0Values yields an empty slice.
//
// The batch fails fast: the first failing value aborts the sweep and no
// partial results are returned.
func (c *Composer) SweepReproductionNumber(base ModelParameters, r0Values []float64, initial CompartmentState, horizonDays float64) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(r0Values))
	for _, r0 := range r0Values {
		if !isFinite(r0) || r0 <= 0 {
			return nil, fmt.Errorf("%w: R0 values must be positive and finite, got %v", ErrInvalidParameters, r0)
		}
		params := base.WithBeta(r0 * base.Gamma)
		series, err := c.RunScenario(params, initial, horizonDays, nil)
		if err != nil {
			return nil, fmt.Errorf("R0=%v: %w", r0, err)
		}
		results = append(results, Summarize(fmt.Sprintf("R0=%g", r0), series, params.N))
	}
	return results, nil
}

// CompareScenarios runs the Composer once per named entry and reduces each
// trajectory to a ScenarioResult, in input order. Fails fast like the sweep.
// An empty batch yields an empty slice.
func (c *Composer) CompareScenarios(scenarios []NamedScenario, initial CompartmentState, horizonDays float64) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		series, err := c.RunScenario(sc.Params, initial, horizonDays, sc.Interventions)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Label, err)
		}
		results = append(results, Summarize(sc.Label, series, sc.Params.N))
	}
	return results, nil
}
