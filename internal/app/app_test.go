package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-gauges.klederson.com/internal/feed"
	"weather-gauges.klederson.com/internal/gauge"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func allVariants() []gauge.Variant {
	var vs []gauge.Variant
	for _, k := range gauge.Kinds {
		vs = append(vs, gauge.Defaults(k))
	}
	return vs
}

func newModel(t *testing.T, opts Options) AppModel {
	t.Helper()
	m, err := New(allVariants(), opts)
	require.NoError(t, err)
	return m
}

func step(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (m AppModel) panelOf(k gauge.Kind) *panel {
	for _, p := range m.shared.panels {
		if p.ctl.Kind() == k {
			return p
		}
	}
	return nil
}

func text(t *testing.T, m AppModel, k gauge.Kind, id string) string {
	t.Helper()
	s, ok := m.panelOf(k).ctl.Text(id)
	require.True(t, ok)
	return s
}

func TestNew(t *testing.T) {
	m := newModel(t, Options{})
	assert.Len(t, m.shared.panels, len(gauge.Kinds))
	assert.Equal(t, 30, m.fps)
	assert.NotNil(t, m.Init())

	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNoGauges)

	bad := gauge.Defaults(gauge.Pressure)
	bad.MaxValue = bad.MinValue
	_, err = New([]gauge.Variant{bad}, Options{})
	assert.Error(t, err)
}

func TestReadingRoutesToKind(t *testing.T) {
	m := newModel(t, Options{})

	m, cmd := step(t, m, feed.ReadingMsg{Kind: gauge.Pressure, Values: []float64{1050}})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.readings)

	m, cmd = step(t, m, TickMsg(t0))
	assert.NotNil(t, cmd, "the clock keeps ticking")
	m, _ = step(t, m, TickMsg(t0.Add(1500*time.Millisecond)))

	assert.Equal(t, "1050", text(t, m, gauge.Pressure, gauge.ValueID))
	assert.Equal(t, "0", text(t, m, gauge.TempDew, gauge.ValueID))
	assert.Equal(t, 1, m.panelOf(gauge.Pressure).history.Len())
	assert.Equal(t, 0, m.panelOf(gauge.Wind).history.Len())
}

func TestReadingForMissingKind(t *testing.T) {
	m, err := New([]gauge.Variant{gauge.Defaults(gauge.Pressure)}, Options{})
	require.NoError(t, err)

	m, _ = step(t, m, feed.ReadingMsg{Kind: gauge.Wind, Values: []float64{90, 10}})
	assert.Equal(t, 0, m.readings)
}

func TestPauseFreezesClock(t *testing.T) {
	m := newModel(t, Options{})
	m, _ = step(t, m, key("p"))
	assert.True(t, m.paused)

	m, _ = step(t, m, feed.ReadingMsg{Kind: gauge.Pressure, Values: []float64{1100}})
	m, _ = step(t, m, TickMsg(t0))
	m, _ = step(t, m, TickMsg(t0.Add(5*time.Second)))
	assert.Equal(t, "1000", text(t, m, gauge.Pressure, gauge.ValueID))

	m, _ = step(t, m, key("p"))
	m, _ = step(t, m, TickMsg(t0.Add(6*time.Second)))
	assert.Equal(t, "1000", text(t, m, gauge.Pressure, gauge.ValueID), "tween anchors at the first live tick")
	m, _ = step(t, m, TickMsg(t0.Add(7500*time.Millisecond)))
	assert.Equal(t, "1100", text(t, m, gauge.Pressure, gauge.ValueID))
}

func TestTestSampleKey(t *testing.T) {
	m := newModel(t, Options{Seed: 3})
	m, _ = step(t, m, key("t"))
	assert.Equal(t, len(gauge.Kinds), m.readings)
	for _, p := range m.shared.panels {
		assert.Equal(t, 1, p.history.Len())
	}
}

func TestDemoToggle(t *testing.T) {
	m := newModel(t, Options{DemoInterval: time.Hour})
	m, _ = step(t, m, key("d"))
	assert.False(t, m.demoMode, "no sender yet")
	assert.Equal(t, "demo unavailable", m.note)

	out := make(chanSender, 16)
	require.NoError(t, m.StartFeeds(out))

	m, _ = step(t, m, key("d"))
	assert.True(t, m.demoMode)
	assert.True(t, m.shared.demo.Running())

	msg := <-out
	reading, ok := msg.(feed.ReadingMsg)
	require.True(t, ok)
	m, _ = step(t, m, reading)
	assert.Equal(t, 1, m.readings)

	m, _ = step(t, m, key("d"))
	assert.False(t, m.demoMode)
	m.shared.demo.Wait()
	assert.False(t, m.shared.demo.Running())
}

func TestStartFeedsWithInput(t *testing.T) {
	m := newModel(t, Options{Input: strings.NewReader("pressure 1013\n"), InputName: "stdin"})
	out := make(chanSender, 4)
	require.NoError(t, m.StartFeeds(out))

	m, _ = step(t, m, <-out)
	assert.Equal(t, 1, m.readings)

	m, _ = step(t, m, <-out)
	assert.Equal(t, "stdin closed", m.note)
	assert.Equal(t, "lines", m.source())
}

func TestQuit(t *testing.T) {
	m := newModel(t, Options{})
	_, cmd := step(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCursorAndDetail(t *testing.T) {
	m := newModel(t, Options{})
	m, _ = step(t, m, key("up"))
	assert.Equal(t, 0, m.cursor)
	for i := 0; i < 10; i++ {
		m, _ = step(t, m, key("down"))
	}
	assert.Equal(t, len(gauge.Kinds)-1, m.cursor)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	m, _ = step(t, m, key("enter"))
	assert.True(t, m.detail)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "ROUND DETAIL")
	assert.Contains(t, view, "No readings yet")

	m, _ = step(t, m, key("esc"))
	assert.False(t, m.detail)
}

func TestView(t *testing.T) {
	m := newModel(t, Options{})
	assert.Equal(t, "Initializing weather gauges...", m.View())

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "WEATHER-GAUGES")
	assert.Contains(t, view, "GAUGES [4]")
	assert.Contains(t, view, "WIND")
	assert.Contains(t, view, "PRESSURE")
	assert.Contains(t, view, "Feed: none")
}

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	_, ok := h.Last()
	assert.False(t, ok)
	assert.Empty(t, h.Input(0))

	in := []float64{1, 10}
	h.Push(in)
	in[0] = 99
	h.Push([]float64{2})
	h.Push([]float64{3, 30})
	h.Push([]float64{4, 40})

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float64{2, 3, 4}, h.Input(0))
	assert.Equal(t, []float64{30, 40}, h.Input(1))
	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, []float64{4, 40}, last)
}
