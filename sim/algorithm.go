package sim

import (
	"sort"
)

// Algorithm identifies the scheduling discipline the engine runs.
type Algorithm string

const (
	// FCFS dispatches in arrival order and never preempts.
	FCFS Algorithm = "FCFS"
	// SJF dispatches the shortest total burst first, non-preemptive.
	SJF Algorithm = "SJF"
	// SRTF dispatches the shortest remaining time first and preempts the
	// CPU whenever a queued process has strictly less remaining time.
	SRTF Algorithm = "SRTF"
	// RR dispatches in arrival order and preempts on quantum expiry.
	RR Algorithm = "RR"
	// Priority dispatches the lowest priority value first and preempts the
	// CPU whenever a queued process has a strictly lower value.
	Priority Algorithm = "Priority"
	// PriorityNP is Priority without preemption.
	PriorityNP Algorithm = "PriorityNP"
)

// validAlgorithms maps accepted algorithm strings.
var validAlgorithms = map[Algorithm]bool{
	FCFS:       true,
	SJF:        true,
	SRTF:       true,
	RR:         true,
	Priority:   true,
	PriorityNP: true,
}

// IsValidAlgorithm returns true if the given string is a recognized algorithm name.
func IsValidAlgorithm(name string) bool {
	return validAlgorithms[Algorithm(name)]
}

// AlgorithmNames returns the recognized algorithm names in a stable order.
func AlgorithmNames() []string {
	return []string{string(FCFS), string(SJF), string(SRTF), string(RR), string(Priority), string(PriorityNP)}
}

// ParseAlgorithm maps a name to an Algorithm. Unrecognized names fall back
// to FCFS: the engine stays FIFO rather than failing the simulation.
func ParseAlgorithm(name string) Algorithm {
	if IsValidAlgorithm(name) {
		return Algorithm(name)
	}
	return FCFS
}

// Preemptive reports whether the algorithm can take the CPU away from a
// running process before it completes.
func (a Algorithm) Preemptive() bool {
	return a == SRTF || a == RR || a == Priority
}

// ConsultsPriority reports whether dispatch order depends on the priority
// field, i.e. whether aging boosts are observable under this algorithm.
func (a Algorithm) ConsultsPriority() bool {
	return a == Priority || a == PriorityNP
}

// DispatchPolicy reorders the ready queue before a dispatch decision.
// Implementations sort the slice in-place using sort.SliceStable for
// determinism; the front of the slice is dispatched next.
type DispatchPolicy interface {
	OrderQueue(procs []*Process)
}

// fifoPolicy preserves First-Come-First-Served order (no-op).
// FCFS and RR both dispatch in enqueue order.
type fifoPolicy struct{}

func (f *fifoPolicy) OrderQueue(_ []*Process) {
	// No-op: FIFO order preserved from enqueue order
}

// sjfPolicy sorts by total burst time (ascending, shortest first),
// then by arrival time (ascending), then by ID (ascending) for determinism.
// Warning: SJF can starve long processes under sustained load; enable aging
// only helps once the comparator consults priority, which SJF does not.
type sjfPolicy struct{}

func (s *sjfPolicy) OrderQueue(procs []*Process) {
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].BurstTime != procs[j].BurstTime {
			return procs[i].BurstTime < procs[j].BurstTime
		}
		if procs[i].ArrivalTime != procs[j].ArrivalTime {
			return procs[i].ArrivalTime < procs[j].ArrivalTime
		}
		return procs[i].ID < procs[j].ID
	})
}

// srtfPolicy sorts by remaining time (ascending), then by arrival time
// (ascending), then by ID (ascending) for determinism.
type srtfPolicy struct{}

func (s *srtfPolicy) OrderQueue(procs []*Process) {
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].RemainingTime != procs[j].RemainingTime {
			return procs[i].RemainingTime < procs[j].RemainingTime
		}
		if procs[i].ArrivalTime != procs[j].ArrivalTime {
			return procs[i].ArrivalTime < procs[j].ArrivalTime
		}
		return procs[i].ID < procs[j].ID
	})
}

// priorityPolicy sorts by priority value (ascending, lower = more urgent),
// then by arrival time (ascending), then by ID (ascending) for determinism.
// Serves both the preemptive and non-preemptive variants; preemption is
// decided by the engine, not the comparator.
type priorityPolicy struct{}

func (p *priorityPolicy) OrderQueue(procs []*Process) {
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].Priority != procs[j].Priority {
			return procs[i].Priority < procs[j].Priority
		}
		if procs[i].ArrivalTime != procs[j].ArrivalTime {
			return procs[i].ArrivalTime < procs[j].ArrivalTime
		}
		return procs[i].ID < procs[j].ID
	})
}

// policyFor returns the DispatchPolicy for an algorithm. FCFS and RR share
// the FIFO no-op; unknown values never reach here because ParseAlgorithm
// already collapsed them to FCFS.
func policyFor(a Algorithm) DispatchPolicy {
	switch a {
	case SJF:
		return &sjfPolicy{}
	case SRTF:
		return &srtfPolicy{}
	case Priority, PriorityNP:
		return &priorityPolicy{}
	default:
		return &fifoPolicy{}
	}
}

// shortestRemaining returns the queued process with the least remaining
// time, ties broken by lower ID. Returns nil for an empty queue.
func shortestRemaining(procs []*Process) *Process {
	var best *Process
	for _, p := range procs {
		if best == nil || p.RemainingTime < best.RemainingTime ||
			(p.RemainingTime == best.RemainingTime && p.ID < best.ID) {
			best = p
		}
	}
	return best
}

// highestPriority returns the queued process with the lowest priority
// value, ties broken by lower ID. Returns nil for an empty queue.
func highestPriority(procs []*Process) *Process {
	var best *Process
	for _, p := range procs {
		if best == nil || p.Priority < best.Priority ||
			(p.Priority == best.Priority && p.ID < best.ID) {
			best = p
		}
	}
	return best
}
