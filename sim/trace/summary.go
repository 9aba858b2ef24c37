package trace

import (
	"fmt"
	"strings"
)

// TimelineSummary aggregates statistics from a Timeline.
type TimelineSummary struct {
	TotalTicks      int64
	BusyTicks       int64
	IdleTicks       int64
	ContextSwitches int            // transitions between distinct processes
	RunDistribution map[int]int64  // process ID → ticks executed
	NameByID        map[int]string // process ID → display name
}

// Summarize computes aggregate statistics from a Timeline.
// Safe for nil or empty timelines (returns zero-value fields).
func Summarize(tl *Timeline) *TimelineSummary {
	summary := &TimelineSummary{
		RunDistribution: make(map[int]int64),
		NameByID:        make(map[int]string),
	}
	if tl == nil {
		return summary
	}

	summary.TotalTicks = int64(len(tl.Records))
	prevID := -1
	for _, rec := range tl.Records {
		if rec.Idle {
			summary.IdleTicks++
			continue
		}
		summary.BusyTicks++
		summary.RunDistribution[rec.ProcessID]++
		summary.NameByID[rec.ProcessID] = rec.Name
		if prevID != -1 && prevID != rec.ProcessID {
			summary.ContextSwitches++
		}
		prevID = rec.ProcessID
	}
	return summary
}

// Gantt renders the timeline as a single-line chart:
//
//	| P1 (0-2) | P2 (2-4) | idle (4-5) | P1 (5-8) |
//
// Returns "" for an empty timeline.
func Gantt(tl *Timeline) string {
	segments := tl.Segments()
	if len(segments) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, seg := range segments {
		label := seg.Name
		if seg.Idle {
			label = "idle"
		} else if label == "" {
			label = fmt.Sprintf("P%d", seg.ProcessID)
		}
		fmt.Fprintf(&sb, "| %s (%d-%d) ", label, seg.Start, seg.End)
	}
	sb.WriteString("|")
	return sb.String()
}
