// Package trace provides per-tick execution recording for timeline analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// TickRecord captures which process held the CPU during one tick.
type TickRecord struct {
	Time      int64
	ProcessID int
	Name      string
	Idle      bool
}

// Segment is a maximal run of consecutive ticks executing the same process
// (or idling). Start is inclusive, End exclusive.
type Segment struct {
	Name      string
	ProcessID int
	Idle      bool
	Start     int64
	End       int64
}
