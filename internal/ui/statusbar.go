package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is what the bottom bar reports.
type Status struct {
	Paused    bool
	Gauges    int
	Animating int
	Readings  int
	FPS       int
	Note      string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	state := StyleStatusLive.Render("[LIVE]")
	if s.Paused {
		state = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Gauges: %d  Animating: %d  Readings: %d  Clock: %dfps",
		s.Gauges, s.Animating, s.Readings, s.FPS)
	if s.Note != "" {
		info += "  " + s.Note
	}

	content := state + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - 2 - lipgloss.Width(content) // 2 for padding
	if gap < 0 {
		gap = 0
	}
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
