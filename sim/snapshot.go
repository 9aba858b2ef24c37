// Read-only state export. A Snapshot is the entire observable surface for
// external callers: the HTTP binding marshals it as-is, the TUI renders it,
// and the batch harness folds it into summary statistics.

package sim

// CPUEntry describes the process occupying the CPU slot.
type CPUEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Remaining   int    `json:"remaining"`
	QuantumUsed int    `json:"quantum_used"`
}

// ExecutedEntry identifies the process that ran during the previous tick.
type ExecutedEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReadyEntry describes one ready-queue slot, in queue order.
type ReadyEntry struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Remaining  int    `json:"remaining"`
	Priority   int    `json:"priority"`
	AgeCounter int    `json:"age_counter"`
}

// PoolEntry describes a submitted process that has not arrived yet.
type PoolEntry struct {
	ID      int `json:"id"`
	Arrival int `json:"arrival"`
}

// FinishedEntry carries the final timing metrics of a completed process,
// in completion order.
type FinishedEntry struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	WaitingTime    int    `json:"waiting_time"`
	TurnaroundTime int    `json:"turnaround_time"`
	ResponseTime   int    `json:"response_time"`
}

// Snapshot is a value copy of the engine's observable state. Two snapshots
// taken without an intervening Tick() are deeply equal, and mutating a
// snapshot never touches the engine.
type Snapshot struct {
	Time         int64           `json:"time"`
	Algorithm    string          `json:"algorithm"`
	CPUProcess   *CPUEntry       `json:"cpu_process"`
	LastExecuted *ExecutedEntry  `json:"last_executed"`
	ReadyQueue   []ReadyEntry    `json:"ready_queue"`
	JobPool      []PoolEntry     `json:"job_pool"`
	Finished     []FinishedEntry `json:"finished"`
}

// Snapshot exports the engine's current state. The result shares no
// storage with the engine.
func (s *Scheduler) Snapshot() Snapshot {
	snap := Snapshot{
		Time:       s.Clock,
		Algorithm:  string(s.Algorithm),
		ReadyQueue: make([]ReadyEntry, 0, s.ReadyQ.Len()),
		JobPool:    make([]PoolEntry, 0, len(s.JobPool)),
		Finished:   make([]FinishedEntry, 0, len(s.Finished)),
	}

	if s.CPU != nil {
		snap.CPUProcess = &CPUEntry{
			ID:          s.CPU.ID,
			Name:        s.CPU.Name,
			Remaining:   s.CPU.RemainingTime,
			QuantumUsed: s.quantumUsed,
		}
	}
	if s.lastExecuted != nil {
		snap.LastExecuted = &ExecutedEntry{
			ID:   s.lastExecuted.ID,
			Name: s.lastExecuted.Name,
		}
	}

	for _, p := range s.ReadyQ.Items() {
		snap.ReadyQueue = append(snap.ReadyQueue, ReadyEntry{
			ID:         p.ID,
			Name:       p.Name,
			Remaining:  p.RemainingTime,
			Priority:   p.Priority,
			AgeCounter: p.AgeCounter,
		})
	}
	for _, p := range s.JobPool {
		snap.JobPool = append(snap.JobPool, PoolEntry{ID: p.ID, Arrival: p.ArrivalTime})
	}
	for _, p := range s.Finished {
		snap.Finished = append(snap.Finished, FinishedEntry{
			ID:             p.ID,
			Name:           p.Name,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime,
			ResponseTime:   p.ResponseTime,
		})
	}
	return snap
}
