package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/trace"
)

var echoTrace bool // Echo each tick's trace line to stdout

// newEngine builds a configured scheduler with its processes submitted,
// from --scenario-file / --workload / the built-in demo set.
func newEngine() *sim.Scheduler {
	s := sim.NewScheduler()
	s.SetAlgorithm(algorithm)
	s.SetTimeQuantum(timeQuantum)
	s.SetAging(agingEnabled)
	s.SetAgingThreshold(agingThreshold)

	switch {
	case scenarioFile != "":
		scenario, err := GetScenario(scenarioFile, scenarioName)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %v", err)
		}
		scenario.Apply(s)
	case workloadFile != "":
		specs, err := sim.LoadWorkloadCSV(workloadFile)
		if err != nil {
			logrus.Fatalf("unable to load workload: %v", err)
		}
		sim.Submit(s, specs)
	default:
		// Built-in demo set, useful for a first run without any files.
		s.AddProcess(1, "P1", 0, 5, 2)
		s.AddProcess(2, "P2", 1, 3, 1)
		s.AddProcess(3, "P3", 2, 1, 3)
		s.AddProcess(4, "P4", 4, 2, 4)
	}
	return s
}

// driveToCompletion ticks the engine until every process finishes or the
// safety cap trips. The cap is an operational guard for malformed inputs,
// not an engine fault, so hitting it logs a warning and reports false.
func driveToCompletion(s *sim.Scheduler, limit int, tl *trace.Timeline, echo bool) bool {
	for i := 0; i < limit; i++ {
		if s.IsFinished() {
			return true
		}
		now := s.Clock
		line := s.Tick()
		if echo {
			fmt.Println(line)
		}
		if snap := s.Snapshot(); snap.LastExecuted != nil {
			tl.RecordExecution(now, snap.LastExecuted.ID, snap.LastExecuted.Name)
		} else {
			tl.RecordIdle(now)
		}
	}
	if !s.IsFinished() {
		logrus.Warnf("simulation did not finish within %d ticks; results are partial", limit)
		return false
	}
	return true
}

// runCmd executes a simulation to completion and prints the results
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scheduling simulation to completion",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		s := newEngine()
		logrus.Infof("Starting simulation with algorithm=%s, quantum=%d, aging=%v",
			s.Algorithm, s.TimeQuantum, s.AgingEnabled)

		startTime := time.Now() // Get current time (start)

		tl := trace.NewTimeline()
		driveToCompletion(s, maxTicks, tl, echoTrace)

		snap := s.Snapshot()
		fmt.Println(trace.Gantt(tl))
		m := sim.Summarize(snap, tl.BusyTicks())
		m.Print(snap)

		summary := trace.Summarize(tl)
		fmt.Printf("Context Switches        : %d\n", summary.ContextSwitches)

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

func init() {
	runCmd.Flags().BoolVar(&echoTrace, "trace", false, "Echo each tick's trace line")
}
