package sim

import (
	"fmt"
	"math"
)

// Intervention replaces the transmission rate from Day onward, modeling a
// behavioral or policy change (distancing, lockdown, reopening).
type Intervention struct {
	Day       float64 `yaml:"day"`
	BetaAfter float64 `yaml:"beta_after"`
}

// InterventionSpec is an ordered sequence of change-points applied to a base
// scenario. The base beta is in force before the first change-point.
type InterventionSpec []Intervention

// Validate checks the change-point sequence against a horizon: strictly
// increasing days, each strictly inside (0, horizonDays). A change-point at
// 0 or at the horizon would produce a zero-length segment.
func (spec InterventionSpec) Validate(horizonDays float64) error {
	prev := 0.0
	for i, iv := range spec {
		if !isFinite(iv.Day) || iv.Day <= 0 || iv.Day >= horizonDays {
			return fmt.Errorf("%w: change-point %d at day %v must lie strictly inside (0, %v)",
				ErrInvalidIntervention, i, iv.Day, horizonDays)
		}
		if iv.Day <= prev {
			return fmt.Errorf("%w: change-points must be strictly increasing, day %v follows day %v",
				ErrInvalidIntervention, iv.Day, prev)
		}
		prev = iv.Day
	}
	return nil
}

// Composer builds single- and multi-segment SIR trajectories.
type Composer struct {
	SamplesPerDay int          // output resolution within each segment (>= 1)
	Solver        SolverConfig // tolerances passed through to Integrate
}

// NewComposer builds a Composer. samplesPerDay below 1 is raised to 1, the
// daily resolution used by the built-in scenarios.
func NewComposer(samplesPerDay int, solver SolverConfig) *Composer {
	if samplesPerDay < 1 {
		samplesPerDay = 1
	}
	return &Composer{SamplesPerDay: samplesPerDay, Solver: solver}
}

// segment is one constant-beta stretch of a composed run.
type segment struct {
	start, end float64
	beta       float64
}

// RunScenario simulates [0, horizonDays] under params, splitting the run at
// each intervention change-point. Gamma and N are invariant across segments;
// only beta changes. Each segment starts from the previous segment's final
// state, so population conservation holds across the whole composed run.
//
// The change-point day appears in both adjoining segments' grids; the
// duplicate is dropped from the earlier segment, making the later segment's
// state authoritative at the boundary instant and keeping the output
// strictly increasing in time.
func (c *Composer) RunScenario(params ModelParameters, initial CompartmentState, horizonDays float64, interventions InterventionSpec) (TimeSeries, error) {
	if !isFinite(horizonDays) || horizonDays <= 0 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %v", ErrInvalidTimeGrid, horizonDays)
	}
	if err := interventions.Validate(horizonDays); err != nil {
		return nil, err
	}

	segments := make([]segment, 0, len(interventions)+1)
	start, beta := 0.0, params.Beta
	for _, iv := range interventions {
		segments = append(segments, segment{start: start, end: iv.Day, beta: beta})
		start, beta = iv.Day, iv.BetaAfter
	}
	segments = append(segments, segment{start: start, end: horizonDays, beta: beta})

	state := initial
	var series TimeSeries
	for i, seg := range segments {
		grid := c.segmentGrid(seg.start, seg.end)
		segSeries, err := Integrate(params.WithBeta(seg.beta), state, grid, c.Solver)
		if err != nil {
			return nil, fmt.Errorf("segment %d over [%v, %v]: %w", i, seg.start, seg.end, err)
		}
		state = segSeries.Last().State
		if i < len(segments)-1 {
			segSeries = segSeries[:len(segSeries)-1]
		}
		series = append(series, segSeries...)
	}
	return series, nil
}

// segmentGrid samples [start, end] uniformly at SamplesPerDay, always
// including both endpoints.
func (c *Composer) segmentGrid(start, end float64) []float64 {
	n := int(math.Ceil((end-start)*float64(c.SamplesPerDay))) + 1
	if n < 2 {
		n = 2
	}
	return UniformGrid(start, end, n)
}
