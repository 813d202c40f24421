package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderGaugeListHeight(t *testing.T) {
	entries := []GaugeEntry{
		{Name: "wind", Readings: []string{"270", "12 kt"}},
		{Name: "tempdew", Readings: []string{"10", "4"}, Animating: true},
		{Name: "pressure", Readings: []string{"1013"}},
	}
	for _, h := range []int{4, 10, 30} {
		out := RenderGaugeList(entries, 30, h, 0)
		assert.Len(t, strings.Split(out, "\n"), h)
	}

	out := ansi.Strip(RenderGaugeList(entries, 30, 20, 2))
	assert.Contains(t, out, "GAUGES [3]")
	assert.Contains(t, out, ">> PRESSURE")
	assert.Contains(t, out, "TEMPDEW ~")
}

func TestRenderGaugeListScrollsToCursor(t *testing.T) {
	var entries []GaugeEntry
	for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
		entries = append(entries, GaugeEntry{Name: n})
	}
	out := ansi.Strip(RenderGaugeList(entries, 20, 10, 5))
	assert.Contains(t, out, ">> F")
	assert.NotContains(t, out, "   A")
}

func TestTruncRaw(t *testing.T) {
	assert.Equal(t, "abc  ", truncRaw("abc", 5))
	assert.Equal(t, "ab", truncRaw("abc", 2))
	assert.Equal(t, "°C ", truncRaw("°C", 3))
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", renderSparkline(nil, 10))
	assert.Equal(t, "_^", renderSparkline([]float64{0, 10}, 10))
	assert.Equal(t, "^", renderSparkline([]float64{0, 5, 10}, 1))
}

func TestRenderLevelBar(t *testing.T) {
	assert.Equal(t, "[|||||-----]", ansi.Strip(renderLevelBar(5, 0, 10, 10)))
	assert.Equal(t, "[----------]", ansi.Strip(renderLevelBar(-50, 0, 10, 10)))
	assert.Equal(t, "[||||||||||]", ansi.Strip(renderLevelBar(50, 0, 10, 10)))
	assert.Equal(t, "[----------]", ansi.Strip(renderLevelBar(3, 3, 3, 10)))
}

func TestRenderBarsFillWidth(t *testing.T) {
	assert.Equal(t, 80, lipgloss.Width(RenderMenuBar(80, "demo", false)))
	assert.Contains(t, ansi.Strip(RenderMenuBar(80, "demo", true)), "PAUSED")

	bar := RenderStatusBar(100, Status{Gauges: 3, Readings: 7, FPS: 30, Note: "stdin closed"})
	assert.Equal(t, 100, lipgloss.Width(bar))
	assert.Contains(t, ansi.Strip(bar), "Readings: 7")
	assert.Contains(t, ansi.Strip(bar), "stdin closed")
}

func TestRenderDetailPanel(t *testing.T) {
	d := Detail{
		Title:   "pressure",
		Fields:  []Field{{"Domain", "900 .. 1100 hPa"}},
		History: []float64{1000, 1013},
		Min:     900,
		Max:     1100,
	}
	out := ansi.Strip(RenderDetailPanel(d, 60, 20))
	assert.Contains(t, out, "PRESSURE DETAIL")
	assert.Contains(t, out, "900 .. 1100 hPa")
	assert.Contains(t, out, "History:")

	d.History = nil
	assert.Contains(t, ansi.Strip(RenderDetailPanel(d, 60, 20)), "No readings yet")
}
