package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the gauge area and the gauge list horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, gauges, gaugeList, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, gauges, gaugeList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// JoinPanels places gauge panels side by side.
func JoinPanels(panels ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}
