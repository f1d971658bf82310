package sim

// Built-in presets for the CLI. Values follow the classic teaching setup:
// a population of 10,000 with ten seed infections, beta 0.5/day and gamma
// 0.1/day (R0 = 5), simulated for 200 days.

// DefaultScenarioFile returns the built-in staged-intervention comparison:
// an unmitigated baseline against three day-30 contact-reduction scenarios.
func DefaultScenarioFile() *ScenarioFile {
	return &ScenarioFile{
		Population:      10000,
		InitialInfected: 10,
		Beta:            0.5,
		Gamma:           0.1,
		HorizonDays:     200,
		SamplesPerDay:   1,
		Scenarios: []ScenarioEntry{
			{Label: "No intervention"},
			{Label: "Moderate distancing (-30%)",
				Interventions: InterventionSpec{{Day: 30, BetaAfter: 0.35}}},
			{Label: "Strong distancing (-60%)",
				Interventions: InterventionSpec{{Day: 30, BetaAfter: 0.2}}},
			{Label: "Lockdown (-80%)",
				Interventions: InterventionSpec{{Day: 30, BetaAfter: 0.1}}},
		},
	}
}

// DefaultSweepValues returns the R0 grid used by the sensitivity sweep,
// spanning subcritical to highly supercritical regimes.
func DefaultSweepValues() []float64 {
	return []float64{0.5, 1.0, 1.5, 2.0, 3.0, 5.0}
}
