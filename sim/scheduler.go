// sim/scheduler.go
package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Scheduler is the core object that holds simulation time, the process
// collections, and the per-tick decision procedure.
//
// A process lives in exactly one collection at a time: the job pool until
// its arrival tick, the ready queue while waiting, the CPU slot while
// executing, and the finished list once complete. Tick() moves processes
// between them; nothing else does.
type Scheduler struct {
	Clock int64
	// JobPool holds submitted processes whose arrival tick has not been
	// reached yet, in submission order.
	JobPool []*Process
	// ReadyQ aka process ready queue before a process is dispatched
	ReadyQ *ReadyQueue
	// CPU is the single execution slot: the running process, or nil when
	// the CPU is idle.
	CPU *Process
	// Finished accumulates completed processes in completion order.
	Finished []*Process

	Algorithm      Algorithm
	TimeQuantum    int
	AgingEnabled   bool
	AgingThreshold int

	policy DispatchPolicy
	// quantumUsed counts contiguous ticks the CPU occupant has run since
	// its last dispatch; only consulted under RR.
	quantumUsed int
	// lastExecuted remembers the process that ran during the previous
	// tick. By the time a caller reads a snapshot the CPU slot may already
	// be idle (the occupant finished) or hold a different process, so the
	// snapshot reports this instead of inferring from CPU occupancy.
	lastExecuted *Process
}

// NewScheduler creates an idle engine with FCFS dispatch and a quantum of 2,
// matching the defaults a caller gets before touching the config surface.
func NewScheduler() *Scheduler {
	return &Scheduler{
		Clock:          0,
		JobPool:        make([]*Process, 0),
		ReadyQ:         &ReadyQueue{},
		Finished:       make([]*Process, 0),
		Algorithm:      FCFS,
		TimeQuantum:    2,
		AgingThreshold: 5,
		policy:         policyFor(FCFS),
	}
}

// AddProcess submits a process to the job pool. It enters the ready queue
// on the first tick at which Clock >= arrivalTime. IDs are trusted to be
// caller-unique; the engine does not validate them.
func (s *Scheduler) AddProcess(id int, name string, arrivalTime, burstTime, priority int) {
	s.JobPool = append(s.JobPool, NewProcess(id, name, arrivalTime, burstTime, priority))
}

// SetAlgorithm selects the scheduling discipline. Unrecognized names fall
// back to FCFS semantics.
func (s *Scheduler) SetAlgorithm(name string) {
	algo := ParseAlgorithm(name)
	if string(algo) != name {
		logrus.Debugf("unknown algorithm %q, falling back to FCFS", name)
	}
	s.Algorithm = algo
	s.policy = policyFor(algo)
}

// SetTimeQuantum sets the RR quantum. Non-positive values are clamped to 1
// so a misconfigured quantum degrades to tick-by-tick rotation instead of
// wedging the simulation.
func (s *Scheduler) SetTimeQuantum(q int) {
	if q < 1 {
		logrus.Debugf("time quantum %d clamped to 1", q)
		q = 1
	}
	s.TimeQuantum = q
}

// SetAging toggles starvation prevention.
func (s *Scheduler) SetAging(enabled bool) {
	s.AgingEnabled = enabled
}

// SetAgingThreshold sets how many ticks a process must wait continuously
// before its priority value improves by one. Non-positive values clamp to 1.
func (s *Scheduler) SetAgingThreshold(threshold int) {
	if threshold < 1 {
		threshold = 1
	}
	s.AgingThreshold = threshold
}

// IsFinished reports whether the simulation has run every submitted
// process to completion.
func (s *Scheduler) IsFinished() bool {
	return len(s.JobPool) == 0 && s.ReadyQ.Len() == 0 && s.CPU == nil
}

// checkArrivals moves every job-pool process whose arrival tick has been
// reached to the back of the ready queue, preserving submission order
// among equal arrival times.
func (s *Scheduler) checkArrivals() {
	remaining := s.JobPool[:0]
	for _, p := range s.JobPool {
		if int64(p.ArrivalTime) <= s.Clock {
			s.ReadyQ.Enqueue(p)
		} else {
			remaining = append(remaining, p)
		}
	}
	s.JobPool = remaining
}

// preemptCPU moves the CPU occupant to the back of the ready queue and
// resets the quantum counter.
func (s *Scheduler) preemptCPU() {
	if s.CPU == nil {
		return
	}
	s.ReadyQ.Enqueue(s.CPU)
	s.CPU = nil
	s.quantumUsed = 0
}

// dispatch selects the next process for an idle CPU: the policy reorders
// the ready queue in place, then the front is taken. First dispatch of a
// process records its start and response times.
func (s *Scheduler) dispatch() {
	if s.CPU != nil || s.ReadyQ.Len() == 0 {
		return
	}
	s.ReadyQ.Reorder(s.policy.OrderQueue)
	s.CPU = s.ReadyQ.Dequeue()
	s.quantumUsed = 0

	if s.CPU.StartTime == -1 {
		s.CPU.StartTime = int(s.Clock)
		s.CPU.ResponseTime = int(s.Clock) - s.CPU.ArrivalTime
	}
}

// applyAging ages every process left in the ready queue after dispatch.
// A process that reaches the threshold gets a one-step priority boost
// (floored at 0) and its age counter restarts; dispatch itself never
// resets the counter, so a partial wait survives a run on the CPU.
func (s *Scheduler) applyAging() {
	if !s.AgingEnabled {
		return
	}
	for _, p := range s.ReadyQ.Items() {
		p.AgeCounter++
		if p.AgeCounter >= s.AgingThreshold {
			if p.Priority > 0 {
				p.Priority--
			}
			p.AgeCounter = 0
		}
	}
}

// Tick advances the simulation by exactly one time unit and returns a
// trace line describing what happened.
//
// The phase order is a correctness contract, not an implementation detail:
// it fixes queue order and preemption outcomes for simultaneous events.
//
//  1. RR quantum expiry, judged on the occupant as of the start of the
//     tick. The expired process is requeued BEFORE arrivals are processed,
//     so it lands ahead of processes arriving this same tick.
//  2. Arrivals join the back of the ready queue.
//  3. SRTF/Priority preemptive re-evaluation against the best queued
//     candidate (strict win only, ties keep the occupant).
//  4. Dispatch if the CPU is idle.
//  5. Execution: the occupant's remaining time drops by one; every process
//     still queued accrues one tick of waiting time. This is the only
//     place waiting time accrues.
//  6. Completion: remaining time zero moves the occupant to the finished
//     list with completion = Clock+1.
//  7. Aging of the processes still queued.
//  8. The clock advances.
func (s *Scheduler) Tick() string {
	var log strings.Builder
	fmt.Fprintf(&log, "Time %d: ", s.Clock)

	// Phase 1: RR quantum expiry. Requeued ahead of this tick's arrivals.
	if s.Algorithm == RR && s.CPU != nil && s.CPU.RemainingTime > 0 {
		if s.quantumUsed >= s.TimeQuantum {
			fmt.Fprintf(&log, "Process %d quantum expired. ", s.CPU.ID)
			s.preemptCPU()
		}
	}

	// Phase 2: arrivals join the ready queue.
	s.checkArrivals()

	// Phase 3: preemptive re-evaluation.
	if s.Algorithm == SRTF && s.CPU != nil {
		if cand := shortestRemaining(s.ReadyQ.Items()); cand != nil && cand.RemainingTime < s.CPU.RemainingTime {
			fmt.Fprintf(&log, "Process %d preempted by Process %d (SRTF). ", s.CPU.ID, cand.ID)
			s.preemptCPU()
		}
	}
	if s.Algorithm == Priority && s.CPU != nil {
		if cand := highestPriority(s.ReadyQ.Items()); cand != nil && cand.Priority < s.CPU.Priority {
			fmt.Fprintf(&log, "Process %d preempted by Process %d (Priority %d < %d). ",
				s.CPU.ID, cand.ID, cand.Priority, s.CPU.Priority)
			s.preemptCPU()
		}
	}

	// Phase 4: dispatch.
	s.dispatch()

	// Phases 5-6: execute and check completion.
	if s.CPU != nil {
		// Remember what runs this tick for snapshot/timeline accuracy.
		s.lastExecuted = s.CPU

		fmt.Fprintf(&log, "Running Process %d (%d remaining). ", s.CPU.ID, s.CPU.RemainingTime)

		s.CPU.RemainingTime--
		s.quantumUsed++

		if s.CPU.RemainingTime <= 0 {
			p := s.CPU
			p.CompletionTime = int(s.Clock) + 1
			p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
			s.Finished = append(s.Finished, p)
			s.CPU = nil
			s.quantumUsed = 0
			fmt.Fprintf(&log, "Process %d finished.", p.ID)
		}
	} else {
		s.lastExecuted = nil
		log.WriteString("CPU Idle.")
	}

	// Sole accrual point for waiting time: one tick per queued process.
	for _, p := range s.ReadyQ.Items() {
		p.WaitingTime++
	}

	// Phase 7: aging.
	s.applyAging()
	if s.AgingEnabled {
		for _, p := range s.ReadyQ.Items() {
			if p.AgeCounter == 0 && p.Aged() {
				fmt.Fprintf(&log, " [Aged: P%d priority=%d]", p.ID, p.Priority)
			}
		}
	}

	// Phase 8: the clock advances.
	s.Clock++

	line := log.String()
	logrus.Debugf("[tick %07d] %s", s.Clock-1, line)
	return line
}
