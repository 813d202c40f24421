package feed

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-gauges.klederson.com/internal/gauge"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func recv(t *testing.T, c chanSender) tea.Msg {
	t.Helper()
	select {
	case msg := <-c:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
		return nil
	}
}

func TestParseLine(t *testing.T) {
	msg, err := ParseLine("wind 270 12")
	require.NoError(t, err)
	assert.Equal(t, ReadingMsg{Kind: gauge.Wind, Values: []float64{270, 12}}, msg)

	msg, err = ParseLine("  tempdew   -3.5 -8 ")
	require.NoError(t, err)
	assert.Equal(t, ReadingMsg{Kind: gauge.TempDew, Values: []float64{-3.5, -8}}, msg)

	msg, err = ParseLine("pressure 1013")
	require.NoError(t, err)
	assert.Equal(t, ReadingMsg{Kind: gauge.Pressure, Values: []float64{1013}}, msg)

	msg, err = ParseLine("wind 90")
	require.NoError(t, err, "partial readings are allowed")
	assert.Equal(t, []float64{90}, msg.Values)
}

func TestParseLineRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"wind",
		"hail 3",
		"pressure 1013 2",
		"wind north 12",
		"pressure NaN",
		"pressure +Inf",
	} {
		_, err := ParseLine(line)
		assert.ErrorIs(t, err, ErrLine, line)
	}
}

func TestLinesFeed(t *testing.T) {
	log, hook := test.NewNullLogger()
	in := strings.NewReader(strings.Join([]string{
		"# station 1",
		"wind 270 12",
		"",
		"bogus line",
		"pressure 1013",
	}, "\n"))

	out := make(chanSender, 8)
	l := NewLines(in, "stdin", log)
	require.NoError(t, l.Start(out))

	assert.Equal(t, ReadingMsg{Kind: gauge.Wind, Values: []float64{270, 12}}, recv(t, out))
	assert.Equal(t, ReadingMsg{Kind: gauge.Pressure, Values: []float64{1013}}, recv(t, out))
	assert.Equal(t, ClosedMsg{Source: "stdin"}, recv(t, out))
	l.Wait()

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, 4, e.Data["line"])
		}
	}
	assert.True(t, warned, "malformed line is logged")
	assert.ErrorIs(t, l.Start(out), ErrRunning)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("unplugged") }

func TestLinesFeedReadError(t *testing.T) {
	log, _ := test.NewNullLogger()
	out := make(chanSender, 1)
	l := NewLines(brokenReader{}, "serial", log)
	require.NoError(t, l.Start(out))

	msg, ok := recv(t, out).(ClosedMsg)
	require.True(t, ok)
	assert.Equal(t, "serial", msg.Source)
	assert.EqualError(t, msg.Err, "unplugged")
}

func TestDemoFeed(t *testing.T) {
	log, _ := test.NewNullLogger()
	variants := []gauge.Variant{gauge.Defaults(gauge.Wind), gauge.Defaults(gauge.Pressure)}
	d := NewDemo(time.Hour, 1, log, variants...)
	assert.False(t, d.Running())

	out := make(chanSender, 4)
	require.NoError(t, d.Start(out))
	assert.True(t, d.Running())
	assert.ErrorIs(t, d.Start(out), ErrRunning)

	w, ok := recv(t, out).(ReadingMsg)
	require.True(t, ok)
	assert.Equal(t, gauge.Wind, w.Kind)
	require.Len(t, w.Values, 2)
	assert.True(t, w.Values[0] >= 0 && w.Values[0] < 360)
	assert.True(t, w.Values[1] >= 0 && w.Values[1] < 70)

	p, ok := recv(t, out).(ReadingMsg)
	require.True(t, ok)
	assert.Equal(t, gauge.Pressure, p.Kind)
	require.Len(t, p.Values, 1)
	assert.True(t, p.Values[0] >= 900 && p.Values[0] <= 1100)

	d.Stop()
	d.Wait()
	assert.False(t, d.Running())
	d.Stop()
}

func TestDemoFeedRestart(t *testing.T) {
	log, _ := test.NewNullLogger()
	d := NewDemo(time.Hour, 7, log, gauge.Defaults(gauge.TempDew))
	out := make(chanSender, 4)

	for i := 0; i < 2; i++ {
		require.NoError(t, d.Start(out))
		msg, ok := recv(t, out).(ReadingMsg)
		require.True(t, ok)
		require.Len(t, msg.Values, 2)
		temp, dew := msg.Values[0], msg.Values[1]
		assert.LessOrEqual(t, dew, temp)
		assert.GreaterOrEqual(t, dew, temp-10)
		d.Stop()
		d.Wait()
	}
}
