package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weather-gauges.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, source string, paused bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"D", "emo"},
		{"T", "est"},
		{"P", "ause"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusLive.Render("LIVE")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}

	feedInfo := StyleMenuLabel.Render(fmt.Sprintf("Feed: %s", source))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + feedInfo + " "

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right) // 2 for padding
	if gap < 0 {
		gap = 0
	}
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
