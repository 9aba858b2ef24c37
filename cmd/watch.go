package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/tui"
)

// watchCmd runs the simulation in an interactive terminal view, advancing
// the engine in a timed loop with play/pause/step controls.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a scheduling simulation play out in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		app := tui.New(newEngine(), maxTicks)
		if _, err := tea.NewProgram(app).Run(); err != nil {
			logrus.Fatalf("tui stopped: %v", err)
		}
	},
}
