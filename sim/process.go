// Defines the Process struct that models a single simulated process.
// Tracks arrival/burst inputs, remaining work, and the timing metrics
// (waiting, turnaround, response) accumulated while the simulation runs.

package sim

import (
	"fmt"
)

// Process models a single process's lifecycle in the simulation.
// Each process has:
// - static inputs supplied by the caller (arrival, burst, priority)
// - remaining work, decremented one unit per executed tick
// - timestamps for start/completion
// - accumulated waiting, turnaround and response times
// - aging state used for starvation prevention

type Process struct {
	ID   int    // Unique identifier for the process (caller-assigned)
	Name string // Display name, not used for any scheduling decision

	ArrivalTime int // Tick at which the process enters the ready queue
	BurstTime   int // Total CPU ticks the process needs to complete
	Priority    int // Scheduling priority; lower value = higher priority.
	// Mutated by aging while the process waits; compare against
	// OriginalPriority to detect an aging boost.
	OriginalPriority int // Priority as submitted, before any aging boost

	RemainingTime  int // BurstTime minus ticks already executed
	StartTime      int // Tick of first dispatch; -1 until the process first runs
	CompletionTime int // Tick at which RemainingTime reached zero
	WaitingTime    int // Ticks spent in the ready queue, accrued once per tick
	TurnaroundTime int // CompletionTime - ArrivalTime, set on completion
	ResponseTime   int // StartTime - ArrivalTime, set exactly once
	AgeCounter     int // Ticks waited since the last aging boost
}

// NewProcess constructs a process in its pre-arrival state.
// IDs are a caller contract: the engine never rejects duplicates, and a
// duplicate ID makes the resulting snapshots ambiguous.
func NewProcess(id int, name string, arrivalTime, burstTime, priority int) *Process {
	return &Process{
		ID:               id,
		Name:             name,
		ArrivalTime:      arrivalTime,
		BurstTime:        burstTime,
		Priority:         priority,
		OriginalPriority: priority,
		RemainingTime:    burstTime,
		StartTime:        -1,
		CompletionTime:   -1,
		ResponseTime:     -1,
	}
}

// Aged reports whether the process currently holds an aging boost.
func (p *Process) Aged() bool {
	return p.Priority < p.OriginalPriority
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, Name: %s, Remaining: %d, Priority: %d)", p.ID, p.Name, p.RemainingTime, p.Priority)
}
