package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epi-sim/epi-sim/sim"
)

var (
	logLevel string // Log verbosity level

	// CLI flags for the epidemic model
	population       float64 // Total population N
	beta             float64 // Transmission rate (per day)
	gamma            float64 // Recovery rate (per day)
	initialInfected  float64 // Initially infected individuals
	initialRecovered float64 // Initially recovered individuals
	horizonDays      float64 // Simulation horizon in days
	samplesPerDay    int     // Output samples per simulated day
	csvPath          string  // Optional CSV dump of the series
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "epi-sim",
	Short: "Deterministic SIR epidemic simulator",
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single SIR simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		params := sim.NewModelParameters(population, beta, gamma)
		initial, err := initialState()
		if err != nil {
			logrus.Fatalf("Invalid initial state: %v", err)
		}

		logrus.Infof("Starting simulation: N=%.0f beta=%.3f gamma=%.3f R0=%.2f horizon=%.0f days",
			params.N, params.Beta, params.Gamma, params.R0(), horizonDays)

		startTime := time.Now()
		composer := sim.NewComposer(samplesPerDay, sim.DefaultSolverConfig())
		series, err := composer.RunScenario(params, initial, horizonDays, nil)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		result := sim.Summarize("run", series, params.N)
		printRunStatistics(params, result, time.Since(startTime))

		if csvPath != "" {
			if err := writeSeriesCSV(csvPath, series); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Series written to %s", csvPath)
		}
	},
}

// initialState derives S0 from the population flags.
func initialState() (sim.CompartmentState, error) {
	state := sim.CompartmentState{
		S: population - initialInfected - initialRecovered,
		I: initialInfected,
		R: initialRecovered,
	}
	return state, state.Validate()
}

// setupLogging configures logrus from the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// addModelFlags registers the population/rate flags shared by run and sweep.
func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&population, "population", 10000, "Total population N")
	cmd.Flags().Float64Var(&gamma, "gamma", 0.1, "Recovery rate (per day)")
	cmd.Flags().Float64Var(&initialInfected, "initial-infected", 10, "Initially infected individuals")
	cmd.Flags().Float64Var(&initialRecovered, "initial-recovered", 0, "Initially recovered individuals")
	cmd.Flags().Float64Var(&horizonDays, "horizon", 200, "Simulation horizon in days")
	cmd.Flags().IntVar(&samplesPerDay, "samples-per-day", 1, "Output samples per simulated day")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addModelFlags(runCmd)
	runCmd.Flags().Float64Var(&beta, "beta", 0.5, "Transmission rate (per day)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Optional path for a CSV dump of the S/I/R series")

	rootCmd.AddCommand(runCmd)
}
