package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epi-sim/epi-sim/sim"
)

var r0Values []float64

// sweepCmd runs the R0 sensitivity sweep and prints a comparison table.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the basic reproduction number R0",
	Long:  "Run one single-segment scenario per R0 value (beta = R0 * gamma) and tabulate peak and attack statistics.",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		base := sim.NewModelParameters(population, 0, gamma)
		initial, err := initialState()
		if err != nil {
			logrus.Fatalf("Invalid initial state: %v", err)
		}

		composer := sim.NewComposer(samplesPerDay, sim.DefaultSolverConfig())
		results, err := composer.SweepReproductionNumber(base, r0Values, initial, horizonDays)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		printResultsTable(results)
	},
}

func init() {
	addModelFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&r0Values, "r0", sim.DefaultSweepValues(), "Comma-separated list of R0 values to sweep")

	rootCmd.AddCommand(sweepCmd)
}
