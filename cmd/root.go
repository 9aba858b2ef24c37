package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags shared by the subcommands
	logLevel       string // Log verbosity level
	algorithm      string // Scheduling algorithm name
	timeQuantum    int    // RR time quantum (ticks)
	agingEnabled   bool   // Starvation prevention toggle
	agingThreshold int    // Ticks waited before a priority boost
	maxTicks       int    // Safety cap on simulated ticks
	workloadFile   string // CSV process list path
	scenarioFile   string // YAML scenario file path
	scenarioName   string // Scenario to pick from the YAML file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "procsim",
	Short: "Discrete-time simulator for CPU process scheduling",
}

// setupLogging applies the --log flag before any subcommand runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
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

	for _, c := range []*cobra.Command{runCmd, serveCmd, watchCmd} {
		c.Flags().StringVar(&algorithm, "algorithm", "FCFS", "Scheduling algorithm (FCFS, SJF, SRTF, RR, Priority, PriorityNP)")
		c.Flags().IntVar(&timeQuantum, "quantum", 2, "RR time quantum in ticks")
		c.Flags().BoolVar(&agingEnabled, "aging", false, "Enable aging-based starvation prevention")
		c.Flags().IntVar(&agingThreshold, "aging-threshold", 5, "Ticks a process must wait before a priority boost")
		c.Flags().IntVar(&maxTicks, "max-ticks", 10000, "Safety cap on simulated ticks")
		c.Flags().StringVar(&workloadFile, "workload", "", "CSV process list (id,name,arrival,burst,priority)")
		c.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML scenario file")
		c.Flags().StringVar(&scenarioName, "scenario", "", "Scenario name within --scenario-file")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
}
