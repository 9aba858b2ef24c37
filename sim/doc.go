// Package sim provides the discrete-time CPU scheduling engine for procsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: the Process record and its timing metrics
//   - algorithm.go: the Algorithm enum and queue-ordering policies
//   - scheduler.go: the per-tick decision procedure (arrivals, preemption,
//     dispatch, execution, aging)
//
// # Architecture
//
// The engine is single-threaded and synchronous: Tick() runs to completion
// before returning and touches only the Scheduler's own state. Callers
// drive the simulation by invoking Tick() repeatedly until IsFinished(),
// optionally under an external tick cap — the engine itself has no timer,
// goroutine, or I/O dependency.
//
// A process lives in exactly one of four collections at any instant: the
// job pool (not yet arrived), the ready queue (waiting), the CPU slot
// (executing, at most one), or the finished list (complete, in completion
// order).
//
// # Key Interfaces
//
// The extension point is a single-method interface:
//   - DispatchPolicy: order the ready queue before a dispatch decision
//
// Everything external callers observe flows through Snapshot(); see
// snapshot.go. The sim/trace sub-package records per-tick execution for
// Gantt charts and utilization summaries.
package sim
