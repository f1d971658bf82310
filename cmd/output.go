package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/epi-sim/epi-sim/sim"
)

// printRunStatistics displays the summary block after a single run.
func printRunStatistics(params sim.ModelParameters, res sim.ScenarioResult, elapsed time.Duration) {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Population (N)        : %.0f\n", params.N)
	fmt.Printf("Transmission (beta)   : %.3f /day\n", params.Beta)
	fmt.Printf("Recovery (gamma)      : %.3f /day\n", params.Gamma)
	fmt.Printf("Reproduction (R0)     : %.2f\n", params.R0())
	fmt.Printf("Peak infected         : %.0f\n", res.PeakInfected)
	fmt.Printf("Day of peak           : %.1f\n", res.DayOfPeak)
	fmt.Printf("Total infected        : %.0f\n", res.FinalAttackCount)
	fmt.Printf("Percent infected      : %.1f%%\n", res.FinalAttackFraction*100)
	fmt.Printf("Susceptible remaining : %.0f\n", res.Series.Last().State.S)
	fmt.Printf("Wall time             : %s\n", elapsed)
}

// printResultsTable displays one row per scenario of a sweep or comparison.
func printResultsTable(results []sim.ScenarioResult) {
	fmt.Printf("%-32s %14s %12s %16s %9s\n",
		"Scenario", "Peak infected", "Day of peak", "Total infected", "Percent")
	for _, r := range results {
		fmt.Printf("%-32s %14.0f %12.1f %16.0f %8.1f%%\n",
			r.Label, r.PeakInfected, r.DayOfPeak, r.FinalAttackCount, r.FinalAttackFraction*100)
	}
}

// writeSeriesCSV dumps a trajectory for external plotting tools.
func writeSeriesCSV(path string, series sim.TimeSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"day", "susceptible", "infected", "recovered"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, s := range series {
		row := []string{
			formatFloat(s.T),
			formatFloat(s.State.S),
			formatFloat(s.State.I),
			formatFloat(s.State.R),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row at day %v: %w", s.T, err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
