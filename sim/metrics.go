// Tracks simulation-wide performance metrics derived from finished processes.

package sim

import "fmt"

// Metrics aggregates statistics about a completed (or capped) simulation
// for final reporting. Useful for comparing algorithms on the same
// workload and for debugging behavior over time.
type Metrics struct {
	CompletedProcesses int   // Number of processes that ran to completion
	TotalTicks         int64 // Ticks simulated
	BusyTicks          int64 // Ticks during which a process executed
	TotalWaiting       int   // Sum of waiting times across finished processes
	TotalTurnaround    int   // Sum of turnaround times
	TotalResponse      int   // Sum of response times
}

// Summarize folds a final snapshot plus the busy-tick count into Metrics.
// The busy-tick count comes from the caller's timeline because the
// snapshot alone cannot distinguish idle gaps from execution.
func Summarize(snap Snapshot, busyTicks int64) *Metrics {
	m := &Metrics{
		CompletedProcesses: len(snap.Finished),
		TotalTicks:         snap.Time,
		BusyTicks:          busyTicks,
	}
	for _, p := range snap.Finished {
		m.TotalWaiting += p.WaitingTime
		m.TotalTurnaround += p.TurnaroundTime
		m.TotalResponse += p.ResponseTime
	}
	return m
}

// AvgWaiting returns the mean waiting time, 0 when nothing finished.
func (m *Metrics) AvgWaiting() float64 {
	if m.CompletedProcesses == 0 {
		return 0
	}
	return float64(m.TotalWaiting) / float64(m.CompletedProcesses)
}

// AvgTurnaround returns the mean turnaround time, 0 when nothing finished.
func (m *Metrics) AvgTurnaround() float64 {
	if m.CompletedProcesses == 0 {
		return 0
	}
	return float64(m.TotalTurnaround) / float64(m.CompletedProcesses)
}

// AvgResponse returns the mean response time, 0 when nothing finished.
func (m *Metrics) AvgResponse() float64 {
	if m.CompletedProcesses == 0 {
		return 0
	}
	return float64(m.TotalResponse) / float64(m.CompletedProcesses)
}

// Utilization returns the fraction of simulated ticks the CPU was busy.
func (m *Metrics) Utilization() float64 {
	if m.TotalTicks == 0 {
		return 0
	}
	return float64(m.BusyTicks) / float64(m.TotalTicks)
}

// Throughput returns completed processes per tick.
func (m *Metrics) Throughput() float64 {
	if m.TotalTicks == 0 {
		return 0
	}
	return float64(m.CompletedProcesses) / float64(m.TotalTicks)
}

// Print displays the per-process table and the aggregated metrics at the
// end of the simulation.
func (m *Metrics) Print(snap Snapshot) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("%-6s %-10s %-14s %-14s %-14s\n", "ID", "Name", "Waiting", "Turnaround", "Response")
	for _, p := range snap.Finished {
		fmt.Printf("%-6d %-10s %-14d %-14d %-14d\n", p.ID, p.Name, p.WaitingTime, p.TurnaroundTime, p.ResponseTime)
	}
	fmt.Printf("Completed Processes     : %d\n", m.CompletedProcesses)
	if m.CompletedProcesses > 0 {
		fmt.Printf("Average Waiting Time    : %.2f ticks\n", m.AvgWaiting())
		fmt.Printf("Average Turnaround Time : %.2f ticks\n", m.AvgTurnaround())
		fmt.Printf("Average Response Time   : %.2f ticks\n", m.AvgResponse())
		fmt.Printf("CPU Utilization         : %.2f%%\n", m.Utilization()*100)
		fmt.Printf("Throughput              : %.4f processes/tick\n", m.Throughput())
	}
}
