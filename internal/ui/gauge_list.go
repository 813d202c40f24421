package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GaugeEntry is one row of the gauge list.
type GaugeEntry struct {
	Name      string
	Readings  []string // current display texts, most important first
	Animating bool
}

// Cursor row style: black text on bright green
var cursorRowSty = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#000000")).
	Background(ColorMatrixGreen).
	Bold(true)

const linesPerEntry = 3 // 2 content + 1 blank

// RenderGaugeList renders the gauge list panel with the cursor kept in view.
// The output is exactly height lines.
func RenderGaugeList(entries []GaugeEntry, width, height, cursor int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("GAUGES [%d]", len(entries)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	header := []string{title, separator}

	innerH := height - 2
	if innerH < len(header)+1 {
		innerH = len(header) + 1
	}
	space := innerH - len(header)

	var rows []string
	if len(entries) == 0 {
		rows = append(rows, "", StyleHelp.Render(" No gauges"))
	} else {
		maxVisible := max(1, space/linesPerEntry)
		start := 0
		if cursor >= maxVisible {
			start = cursor - maxVisible + 1
		}
		for i := start; i < len(entries) && len(rows) < space; i++ {
			rows = append(rows, renderEntry(entries[i], innerW, i == cursor)...)
		}
	}
	if len(rows) > space {
		rows = rows[:space]
	}
	for len(rows) < space {
		rows = append(rows, "")
	}

	content := strings.Join(append(header, rows...), "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	// lipgloss Height() only sets a minimum; it won't truncate overflow.
	out := strings.Split(rendered, "\n")
	if len(out) > height {
		out = out[:height]
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderEntry(e GaugeEntry, maxW int, isCursor bool) []string {
	marker := "  "
	if isCursor {
		marker = ">>"
	}
	motion := " "
	if e.Animating {
		motion = "~"
	}

	raw1 := truncRaw(fmt.Sprintf("%s %s %s", marker, strings.ToUpper(e.Name), motion), maxW)
	raw2 := truncRaw("   "+strings.Join(e.Readings, "  "), maxW)

	if isCursor {
		return []string{cursorRowSty.Render(raw1), cursorRowSty.Render(raw2), ""}
	}
	return []string{
		StyleGaugeName.Render(raw1),
		StyleGaugeValue.Render(raw2),
		"",
	}
}

// truncRaw pads or truncates s to exactly w characters.
func truncRaw(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
