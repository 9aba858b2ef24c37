package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	sim "github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/trace"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cpuStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#98C379"))
	cappedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E06C75"))
)

func (a *App) View() string {
	snap := a.engine.Snapshot()

	header := titleStyle.Render(fmt.Sprintf("procsim — %s", snap.Algorithm)) +
		dimStyle.Render(fmt.Sprintf("  t=%d  interval=%s", snap.Time, a.interval))

	var body strings.Builder
	body.WriteString(header + "\n\n")
	body.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(renderCPU(snap)),
		paneStyle.Render(renderReady(snap)),
		paneStyle.Render(renderPool(snap)),
	))
	body.WriteString("\n" + paneStyle.Render(renderFinished(snap)))

	if gantt := trace.Gantt(a.timeline); gantt != "" {
		body.WriteString("\n" + labelStyle.Render("Timeline") + "\n" + gantt + "\n")
	}
	if a.lastLine != "" {
		body.WriteString(dimStyle.Render(a.lastLine) + "\n")
	}

	switch {
	case a.capped:
		body.WriteString(cappedStyle.Render(fmt.Sprintf("Tick cap (%d) reached — results are partial.", a.maxTicks)) + "\n")
	case a.engine.IsFinished():
		m := sim.Summarize(snap, a.timeline.BusyTicks())
		body.WriteString(labelStyle.Render("Done.") + fmt.Sprintf(
			" avg wait %.2f, avg turnaround %.2f, avg response %.2f, utilization %.0f%%\n",
			m.AvgWaiting(), m.AvgTurnaround(), m.AvgResponse(), m.Utilization()*100))
	}

	body.WriteString(dimStyle.Render("space play/pause · s step · +/- speed · q quit"))
	return body.String()
}

func renderCPU(snap sim.Snapshot) string {
	if snap.CPUProcess == nil {
		return labelStyle.Render("CPU") + "\nidle"
	}
	return labelStyle.Render("CPU") + "\n" + cpuStyle.Render(fmt.Sprintf(
		"%s (id %d)\nremaining %d, quantum %d",
		snap.CPUProcess.Name, snap.CPUProcess.ID, snap.CPUProcess.Remaining, snap.CPUProcess.QuantumUsed))
}

func renderReady(snap sim.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Ready queue") + "\n")
	if len(snap.ReadyQueue) == 0 {
		sb.WriteString("empty")
		return sb.String()
	}
	for _, e := range snap.ReadyQueue {
		fmt.Fprintf(&sb, "%s rem=%d prio=%d age=%d\n", e.Name, e.Remaining, e.Priority, e.AgeCounter)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderPool(snap sim.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Job pool") + "\n")
	if len(snap.JobPool) == 0 {
		sb.WriteString("empty")
		return sb.String()
	}
	for _, e := range snap.JobPool {
		fmt.Fprintf(&sb, "P%d arrives t=%d\n", e.ID, e.Arrival)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderFinished(snap sim.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Finished") + "\n")
	if len(snap.Finished) == 0 {
		sb.WriteString("none yet")
		return sb.String()
	}
	fmt.Fprintf(&sb, "%-10s %-8s %-12s %-10s\n", "process", "waiting", "turnaround", "response")
	for _, e := range snap.Finished {
		fmt.Fprintf(&sb, "%-10s %-8d %-12d %-10d\n", e.Name, e.WaitingTime, e.TurnaroundTime, e.ResponseTime)
	}
	return strings.TrimRight(sb.String(), "\n")
}
