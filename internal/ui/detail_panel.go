package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is a labelled line of the detail panel.
type Field struct {
	Label, Value string
}

// Detail is everything the detail panel shows for one gauge.
type Detail struct {
	Title   string
	Fields  []Field
	History []float64 // primary input, oldest first
	Min     float64
	Max     float64
}

// RenderDetailPanel renders the configuration and recent history of the
// selected gauge in place of the gauge area.
func RenderDetailPanel(d Detail, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render(strings.ToUpper(d.Title) + " DETAIL")
	escHint := StyleHelp.Render("[ESC]")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(escHint))) + escHint
	sep := StyleSeparator.Render(strings.Repeat("-", innerW))
	lines := []string{titleLine, sep, ""}

	labelSty := lipgloss.NewStyle().Foreground(ColorMidGreen)
	valSty := lipgloss.NewStyle().Foreground(ColorMatrixGreen).Bold(true)
	for _, f := range d.Fields {
		lines = append(lines, labelSty.Render("  "+padRight(f.Label, 12))+valSty.Render(f.Value))
	}
	lines = append(lines, "")

	if n := len(d.History); n > 0 {
		barW := max(10, innerW-12)
		lines = append(lines, labelSty.Render("  Level   ")+renderLevelBar(d.History[n-1], d.Min, d.Max, barW))
		lines = append(lines, "", labelSty.Render("  History:"))
		spark := renderSparkline(d.History, max(10, innerW-4))
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorGreen).Render(spark))
	} else {
		lines = append(lines, StyleHelp.Render("  No readings yet"))
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	return StylePanelActive.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// renderLevelBar maps v within [lo, hi] onto a filled bar. Values outside
// the domain pin to an end.
func renderLevelBar(v, lo, hi float64, width int) string {
	ratio := 0.0
	if hi != lo {
		ratio = (v - lo) / (hi - lo)
	}
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))

	color := ColorGreen
	if lo < 0 && v < 0 {
		color = ColorCold
	}
	filledPart := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("|", filled))
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGreen).Render(strings.Repeat("-", width-filled))
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	// Take last `width` values
	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		idx := int((values[i] - minV) / rng * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		sb.WriteByte(chars[idx])
	}
	return sb.String()
}

func padRight(s string, w int) string {
	if n := len([]rune(s)); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
