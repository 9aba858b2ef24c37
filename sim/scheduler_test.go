package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runToCompletion drives the scheduler until done, with a cap against
// runaway configurations.
func runToCompletion(t *testing.T, s *Scheduler, maxTicks int) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if s.IsFinished() {
			return
		}
		s.Tick()
	}
	require.True(t, s.IsFinished(), "simulation did not finish within %d ticks", maxTicks)
}

// finishedByID indexes the finished list for assertions.
func finishedByID(s *Scheduler) map[int]*Process {
	m := make(map[int]*Process, len(s.Finished))
	for _, p := range s.Finished {
		m[p.ID] = p
	}
	return m
}

func TestFCFS_CompletionOrderAndTimes(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("FCFS")
	s.AddProcess(1, "P1", 0, 5, 1)
	s.AddProcess(2, "P2", 1, 3, 1)
	s.AddProcess(3, "P3", 2, 1, 1)

	runToCompletion(t, s, 100)

	require.Len(t, s.Finished, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{s.Finished[0].ID, s.Finished[1].ID, s.Finished[2].ID})
	assert.Equal(t, 5, s.Finished[0].CompletionTime)
	assert.Equal(t, 8, s.Finished[1].CompletionTime)
	assert.Equal(t, 9, s.Finished[2].CompletionTime)
}

func TestFCFS_WaitingAndResponseTimes(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("FCFS")
	s.AddProcess(1, "P1", 0, 5, 1)
	s.AddProcess(2, "P2", 1, 3, 1)
	s.AddProcess(3, "P3", 2, 1, 1)

	runToCompletion(t, s, 100)

	byID := finishedByID(s)
	assert.Equal(t, 0, byID[1].WaitingTime)
	assert.Equal(t, 4, byID[2].WaitingTime)
	assert.Equal(t, 6, byID[3].WaitingTime)
	assert.Equal(t, 0, byID[1].ResponseTime)
	assert.Equal(t, 4, byID[2].ResponseTime)
	assert.Equal(t, 6, byID[3].ResponseTime)
}

func TestRR_ShortBurstCompletesWithinQuantum(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("RR")
	s.SetTimeQuantum(2)
	s.AddProcess(1, "P1", 0, 5, 1)
	s.AddProcess(2, "P2", 1, 3, 1)
	s.AddProcess(3, "P3", 2, 1, 1)
	s.AddProcess(4, "P4", 4, 2, 1)

	runToCompletion(t, s, 100)

	byID := finishedByID(s)
	// P3's single-tick burst finishes the tick it is dispatched, before
	// its quantum can expire.
	assert.Equal(t, 7, byID[3].CompletionTime)
	assert.Equal(t, 8, byID[2].CompletionTime)
	assert.Equal(t, 10, byID[4].CompletionTime)
	assert.Equal(t, 11, byID[1].CompletionTime)
}

func TestRR_PreemptedProcessLandsAheadOfSameTickArrival(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("RR")
	s.SetTimeQuantum(2)
	s.AddProcess(1, "P1", 0, 5, 1)
	s.AddProcess(2, "P2", 1, 3, 1)
	s.AddProcess(3, "P3", 2, 1, 1)
	s.AddProcess(4, "P4", 4, 2, 1)

	// At tick 4, P2's quantum expires and P4 arrives. The expired P2 must
	// be requeued ahead of the same-tick arrival P4.
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	snap := s.Snapshot()
	ids := make([]int, 0, len(snap.ReadyQueue))
	for _, e := range snap.ReadyQueue {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int{3, 2, 4}, ids)
}

func TestSRTF_PreemptsAndResumesWithRemainingIntact(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("SRTF")
	s.AddProcess(1, "P1", 0, 20, 1)
	s.AddProcess(2, "P2", 2, 5, 1)

	// Ticks 0 and 1: P1 runs alone.
	s.Tick()
	s.Tick()
	require.NotNil(t, s.CPU)
	assert.Equal(t, 1, s.CPU.ID)
	assert.Equal(t, 18, s.CPU.RemainingTime)

	// Tick 2: P2 arrives with remaining 5 < 18 and takes the CPU.
	s.Tick()
	require.NotNil(t, s.CPU)
	assert.Equal(t, 2, s.CPU.ID)

	// P1 sits in the queue with its decremented remaining time intact.
	snap := s.Snapshot()
	require.Len(t, snap.ReadyQueue, 1)
	assert.Equal(t, 1, snap.ReadyQueue[0].ID)
	assert.Equal(t, 18, snap.ReadyQueue[0].Remaining)

	runToCompletion(t, s, 100)

	byID := finishedByID(s)
	assert.Equal(t, 7, byID[2].CompletionTime)
	assert.Equal(t, 25, byID[1].CompletionTime)
	// Response time reflects the first dispatch at tick 0 and is never
	// updated when P1 resumes after the preemption.
	assert.Equal(t, 0, byID[1].ResponseTime)
	assert.Equal(t, 0, byID[1].StartTime)
}

func TestSRTF_TieDoesNotPreempt(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("SRTF")
	s.AddProcess(1, "P1", 0, 4, 1)
	s.AddProcess(2, "P2", 1, 3, 1)

	// Tick 0: P1 runs, remaining 3. Tick 1: P2 arrives with remaining 3 —
	// equal, so the occupant keeps the CPU.
	s.Tick()
	s.Tick()
	require.NotNil(t, s.CPU)
	assert.Equal(t, 1, s.CPU.ID)
}

func TestPriority_PreemptsOnStrictlyLowerValue(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("Priority")
	s.AddProcess(1, "P1", 0, 5, 5)
	s.AddProcess(2, "P2", 1, 3, 0)

	s.Tick()
	require.NotNil(t, s.CPU)
	assert.Equal(t, 1, s.CPU.ID)

	// Tick 1: P2 arrives with priority 0 < 5 and preempts.
	s.Tick()
	require.NotNil(t, s.CPU)
	assert.Equal(t, 2, s.CPU.ID)

	runToCompletion(t, s, 100)
	assert.Equal(t, 2, s.Finished[0].ID)
	assert.Equal(t, 1, s.Finished[1].ID)
}

func TestPriorityNP_NeverPreempts(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("PriorityNP")
	s.AddProcess(1, "P1", 0, 5, 5)
	s.AddProcess(2, "P2", 1, 3, 0)

	runToCompletion(t, s, 100)

	byID := finishedByID(s)
	// P1 keeps the CPU despite P2's better priority, then P2 runs.
	assert.Equal(t, 5, byID[1].CompletionTime)
	assert.Equal(t, 8, byID[2].CompletionTime)
}

func TestPriority_EqualValueKeepsOccupant(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("Priority")
	s.AddProcess(1, "P1", 0, 5, 2)
	s.AddProcess(2, "P2", 1, 3, 2)

	s.Tick()
	s.Tick()
	require.NotNil(t, s.CPU)
	assert.Equal(t, 1, s.CPU.ID)
}

func TestAging_BoostsAfterThresholdAndResetsCounter(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("Priority")
	s.SetAging(true)
	s.SetAgingThreshold(5)
	s.AddProcess(1, "P1", 0, 10, 0)
	s.AddProcess(2, "P2", 0, 5, 5)

	// P1 holds the CPU; P2 waits ticks 0-4, reaching the threshold on the
	// fifth waited tick.
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	snap := s.Snapshot()
	require.Len(t, snap.ReadyQueue, 1)
	assert.Equal(t, 2, snap.ReadyQueue[0].ID)
	assert.Equal(t, 4, snap.ReadyQueue[0].Priority)
	assert.Equal(t, 0, snap.ReadyQueue[0].AgeCounter)
}

func TestAging_PartialWaitSurvivesDispatch(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("FCFS")
	s.SetAging(true)
	s.SetAgingThreshold(5)
	s.AddProcess(1, "P1", 0, 3, 1)
	s.AddProcess(2, "P2", 0, 2, 1)

	// P2 waits ticks 0-2 (age 3), then is dispatched at tick 3 without the
	// counter being reset.
	for i := 0; i < 4; i++ {
		s.Tick()
	}
	require.NotNil(t, s.CPU)
	require.Equal(t, 2, s.CPU.ID)
	assert.Equal(t, 3, s.CPU.AgeCounter)
	assert.Equal(t, 1, s.CPU.Priority, "no boost before the threshold")
}

func TestAging_PriorityFlooredAtZero(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("Priority")
	s.SetAging(true)
	s.SetAgingThreshold(1)
	s.AddProcess(1, "P1", 0, 8, 0)
	s.AddProcess(2, "P2", 0, 2, 1)

	// Threshold 1 boosts P2 to 0 after its first waited tick; further
	// waiting must not push the value negative.
	for i := 0; i < 4; i++ {
		s.Tick()
	}
	snap := s.Snapshot()
	for _, e := range snap.ReadyQueue {
		if e.ID == 2 {
			assert.Equal(t, 0, e.Priority)
		}
	}
}

func TestUnknownAlgorithm_FallsBackToFCFS(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("LOTTERY")
	assert.Equal(t, FCFS, s.Algorithm)

	s.AddProcess(1, "P1", 0, 2, 9)
	s.AddProcess(2, "P2", 0, 1, 0)
	runToCompletion(t, s, 100)

	// FIFO dispatch: submission order wins, priority is ignored.
	assert.Equal(t, 1, s.Finished[0].ID)
	assert.Equal(t, 2, s.Finished[1].ID)
}

func TestSetTimeQuantum_ClampsToOne(t *testing.T) {
	s := NewScheduler()
	s.SetTimeQuantum(0)
	assert.Equal(t, 1, s.TimeQuantum)
	s.SetTimeQuantum(-3)
	assert.Equal(t, 1, s.TimeQuantum)
	s.SetTimeQuantum(4)
	assert.Equal(t, 4, s.TimeQuantum)
}

func TestIdleGap_CPUIdlesUntilArrival(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("FCFS")
	s.AddProcess(1, "P1", 3, 2, 1)

	line := s.Tick()
	assert.Contains(t, line, "CPU Idle")
	s.Tick()
	s.Tick()
	require.Nil(t, s.CPU)

	// Arrival at tick 3.
	s.Tick()
	require.Len(t, s.Finished, 0)
	runToCompletion(t, s, 100)
	assert.Equal(t, 5, s.Finished[0].CompletionTime)
	assert.Equal(t, 3, s.Finished[0].StartTime)
	assert.Equal(t, 0, s.Finished[0].ResponseTime)
}

// Collection membership: every process is in exactly one collection at
// every tick, and the four collections always sum to the submitted count.
func TestCollectionMembershipInvariant(t *testing.T) {
	for _, algo := range AlgorithmNames() {
		t.Run(algo, func(t *testing.T) {
			s := NewScheduler()
			s.SetAlgorithm(algo)
			s.SetTimeQuantum(2)
			s.SetAging(true)
			s.SetAgingThreshold(3)
			s.AddProcess(1, "P1", 0, 5, 3)
			s.AddProcess(2, "P2", 1, 3, 1)
			s.AddProcess(3, "P3", 2, 4, 2)
			s.AddProcess(4, "P4", 6, 1, 0)

			for i := 0; i < 60 && !s.IsFinished(); i++ {
				s.Tick()
				seen := make(map[int]int)
				total := 0
				for _, p := range s.JobPool {
					seen[p.ID]++
					total++
				}
				for _, p := range s.ReadyQ.Items() {
					seen[p.ID]++
					total++
				}
				if s.CPU != nil {
					seen[s.CPU.ID]++
					total++
				}
				for _, p := range s.Finished {
					seen[p.ID]++
					total++
				}
				require.Equal(t, 4, total, "tick %d: process count drifted", i)
				for id, n := range seen {
					require.Equal(t, 1, n, "tick %d: process %d in %d collections", i, id, n)
				}
			}
			require.True(t, s.IsFinished())
		})
	}
}

// Metric identities: turnaround = completion - arrival >= burst,
// response = start - arrival, waiting = turnaround - burst.
func TestTimingIdentities(t *testing.T) {
	for _, algo := range AlgorithmNames() {
		t.Run(algo, func(t *testing.T) {
			s := NewScheduler()
			s.SetAlgorithm(algo)
			s.SetTimeQuantum(3)
			s.AddProcess(1, "P1", 0, 7, 2)
			s.AddProcess(2, "P2", 2, 4, 0)
			s.AddProcess(3, "P3", 2, 2, 1)
			s.AddProcess(4, "P4", 9, 3, 3)

			runToCompletion(t, s, 200)

			require.Len(t, s.Finished, 4)
			for _, p := range s.Finished {
				assert.Equal(t, p.CompletionTime-p.ArrivalTime, p.TurnaroundTime, "P%d turnaround", p.ID)
				assert.GreaterOrEqual(t, p.TurnaroundTime, p.BurstTime, "P%d turnaround >= burst", p.ID)
				assert.Equal(t, p.StartTime-p.ArrivalTime, p.ResponseTime, "P%d response", p.ID)
				assert.Equal(t, p.TurnaroundTime-p.BurstTime, p.WaitingTime, "P%d waiting", p.ID)
			}
		})
	}
}

func TestSJF_OrdersByBurstAtDispatch(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("SJF")
	s.AddProcess(1, "P1", 0, 6, 1)
	s.AddProcess(2, "P2", 1, 4, 1)
	s.AddProcess(3, "P3", 2, 2, 1)

	runToCompletion(t, s, 100)

	// Non-preemptive: P1 runs to 6, then the shorter P3 before P2.
	assert.Equal(t, 1, s.Finished[0].ID)
	assert.Equal(t, 3, s.Finished[1].ID)
	assert.Equal(t, 2, s.Finished[2].ID)
}

func TestTick_TraceLineDescribesEvents(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("FCFS")
	s.AddProcess(1, "P1", 0, 1, 1)

	line := s.Tick()
	assert.Contains(t, line, "Time 0:")
	assert.Contains(t, line, "Running Process 1")
	assert.Contains(t, line, "Process 1 finished.")
}
