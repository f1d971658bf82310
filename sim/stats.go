package sim

import "gonum.org/v1/gonum/floats"

// ScenarioResult pairs a labeled trajectory with its summary statistics.
// Created once per scenario evaluation and handed to the reporting layer;
// the core retains nothing.
type ScenarioResult struct {
	Label               string
	Series              TimeSeries
	PeakInfected        float64 // max of I over the series
	DayOfPeak           float64 // earliest t attaining the max
	FinalAttackCount    float64 // N - S at the final sample
	FinalAttackFraction float64 // FinalAttackCount / N
}

// Summarize reduces a trajectory to its headline statistics. This is a pure
// reduction over the sampled series; nothing is re-integrated. Ties in the
// peak go to the earliest sample (floats.MaxIdx returns the first index).
// An empty series or non-positive n yields a zero-valued result.
func Summarize(label string, series TimeSeries, n float64) ScenarioResult {
	res := ScenarioResult{Label: label, Series: series}
	if len(series) == 0 || n <= 0 {
		return res
	}
	infected := series.Infected()
	peakIdx := floats.MaxIdx(infected)
	res.PeakInfected = infected[peakIdx]
	res.DayOfPeak = series[peakIdx].T
	res.FinalAttackCount = n - series.Last().State.S
	res.FinalAttackFraction = res.FinalAttackCount / n
	return res
}
