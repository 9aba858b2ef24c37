// Package tui renders a scheduling simulation as it plays out.
//
// It uses bubbletea, which follows The Elm Architecture:
//
//  1. Model: the application state (the engine plus playback controls)
//  2. Update: a function that updates state based on messages
//  3. View: a function that renders state to a string
//
// The engine is driven in a caller-controlled timed loop: each playback
// tick advances the simulation by exactly one time unit, and the view
// renders the snapshot the engine exports. The snapshot is treated as
// immutable; all mutation happens through Tick().
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	sim "github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/trace"
)

const (
	defaultInterval = 400 * time.Millisecond
	minInterval     = 50 * time.Millisecond
	maxInterval     = 2 * time.Second
)

// playbackTickMsg fires when the playback timer elapses.
type playbackTickMsg time.Time

// App is the bubbletea model for simulation playback.
type App struct {
	engine   *sim.Scheduler
	timeline *trace.Timeline
	maxTicks int

	playing  bool
	interval time.Duration
	lastLine string
	capped   bool
}

// New creates a playback app around a configured engine.
func New(engine *sim.Scheduler, maxTicks int) *App {
	return &App{
		engine:   engine,
		timeline: trace.NewTimeline(),
		maxTicks: maxTicks,
		playing:  true,
		interval: defaultInterval,
	}
}

func (a *App) Init() tea.Cmd {
	return a.schedulePlayback()
}

func (a *App) schedulePlayback() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return playbackTickMsg(t)
	})
}

// step advances the engine by one tick and records the timeline.
func (a *App) step() {
	if a.engine.IsFinished() {
		return
	}
	if len(a.timeline.Records) >= a.maxTicks {
		a.capped = true
		a.playing = false
		return
	}
	now := a.engine.Clock
	a.lastLine = a.engine.Tick()
	if snap := a.engine.Snapshot(); snap.LastExecuted != nil {
		a.timeline.RecordExecution(now, snap.LastExecuted.ID, snap.LastExecuted.Name)
	} else {
		a.timeline.RecordIdle(now)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case " ":
			a.playing = !a.playing
		case "s":
			a.playing = false
			a.step()
		case "+", "=":
			if a.interval > minInterval {
				a.interval /= 2
			}
		case "-":
			if a.interval < maxInterval {
				a.interval *= 2
			}
		}
		return a, nil

	case playbackTickMsg:
		if a.playing {
			a.step()
		}
		if a.engine.IsFinished() {
			a.playing = false
		}
		return a, a.schedulePlayback()
	}
	return a, nil
}
