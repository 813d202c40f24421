// Package app is the Bubble Tea dashboard: one animated panel per gauge, a
// gauge list and a detail view, all driven by a single frame clock.
package app

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"weather-gauges.klederson.com/internal/config"
	"weather-gauges.klederson.com/internal/feed"
	"weather-gauges.klederson.com/internal/gauge"
	"weather-gauges.klederson.com/internal/logging"
	"weather-gauges.klederson.com/internal/render"
	"weather-gauges.klederson.com/internal/tween"
	"weather-gauges.klederson.com/internal/ui"
)

// ErrNoGauges is returned when the dashboard would be empty.
var ErrNoGauges = errors.New("app: no gauges configured")

// Options configures the dashboard.
type Options struct {
	FPS          int
	Demo         bool
	DemoInterval time.Duration
	Seed         int64
	Input        io.Reader // optional line feed
	InputName    string
	Log          logrus.FieldLogger
}

type panel struct {
	ctl     *gauge.Controller
	history *History
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	sched  *tween.Scheduler
	panels []*panel
	demo   *feed.Demo
	lines  *feed.Lines
	sender feed.Sender
	rng    *rand.Rand
	log    logrus.FieldLogger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	fps      int
	demoMode bool
	paused   bool
	detail   bool
	cursor   int
	readings int
	note     string

	shared *shared
}

// New builds a controller per variant, all animating on one scheduler.
func New(variants []gauge.Variant, opts Options) (AppModel, error) {
	if len(variants) == 0 {
		return AppModel{}, ErrNoGauges
	}
	if opts.FPS <= 0 {
		opts.FPS = config.TargetFPS
	}
	if opts.DemoInterval <= 0 {
		opts.DemoInterval = config.DemoInterval
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}

	sh := &shared{
		sched: tween.NewScheduler(),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		log:   opts.Log,
	}
	for _, v := range variants {
		c, err := gauge.New(v, sh.sched)
		if err != nil {
			return AppModel{}, fmt.Errorf("%s gauge: %w", v.Kind, err)
		}
		sh.panels = append(sh.panels, &panel{ctl: c, history: NewHistory(config.HistorySize)})
	}
	sh.demo = feed.NewDemo(opts.DemoInterval, opts.Seed, opts.Log, variants...)
	if opts.Input != nil {
		name := opts.InputName
		if name == "" {
			name = "input"
		}
		sh.lines = feed.NewLines(opts.Input, name, opts.Log)
	}

	return AppModel{
		fps:      opts.FPS,
		demoMode: opts.Demo,
		shared:   sh,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if !m.paused {
			m.shared.sched.Tick(time.Time(msg))
		}
		return m, tickCmd(m.fps)

	case feed.ReadingMsg:
		m.route(msg)
		return m, nil

	case feed.ClosedMsg:
		if msg.Err != nil {
			m.note = fmt.Sprintf("%s failed: %v", msg.Source, msg.Err)
		} else {
			m.note = msg.Source + " closed"
		}
		return m, nil
	}

	return m, nil
}

// route hands a reading to every gauge of its kind.
func (m *AppModel) route(msg feed.ReadingMsg) {
	matched := false
	for _, p := range m.shared.panels {
		if p.ctl.Kind() == msg.Kind {
			m.apply(p, msg.Values)
			matched = true
		}
	}
	if !matched {
		m.shared.log.WithField("gauge", msg.Kind).Warn("reading for a gauge that is not shown")
	}
}

func (m *AppModel) apply(p *panel, values []float64) {
	p.ctl.Update(values...)
	p.history.Push(values)
	m.readings++
	m.shared.log.WithFields(logrus.Fields{"gauge": p.ctl.Kind(), "values": values}).Debug("update")
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.Stop()
		return m, tea.Quit

	case "d", "D":
		m.toggleDemo()

	case "t", "T":
		for _, p := range m.shared.panels {
			m.apply(p, p.ctl.SampleReading(m.shared.rng))
		}

	case "p", "P":
		m.paused = !m.paused

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.shared.panels)-1 {
			m.cursor++
		}

	case "enter":
		m.detail = true

	case "esc":
		m.detail = false
	}

	return m, nil
}

func (m *AppModel) toggleDemo() {
	if m.shared.demo.Running() {
		m.shared.demo.Stop()
		m.demoMode = false
		return
	}
	if m.shared.sender == nil {
		m.note = "demo unavailable"
		return
	}
	if err := m.shared.demo.Start(m.shared.sender); err != nil {
		m.note = err.Error()
		return
	}
	m.demoMode = true
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing weather gauges..."
	}

	bodyH := max(5, m.height-2)
	mainW := max(30, m.width*3/4)
	listW := m.width - mainW
	if listW < 15 {
		listW = 15
		mainW = m.width - listW
	}

	menuBar := ui.RenderMenuBar(m.width, m.source(), m.paused)

	var main string
	if m.detail {
		main = ui.RenderDetailPanel(m.detailOf(m.shared.panels[m.cursor]), mainW, bodyH)
	} else {
		panelW := mainW / len(m.shared.panels)
		panels := make([]string, len(m.shared.panels))
		for i, p := range m.shared.panels {
			content := render.Terminal(max(5, panelW-4), max(3, bodyH-3), p.ctl.Frame())
			title := strings.ToUpper(p.ctl.Variant().ScaleType)
			if title == "" {
				title = strings.ToUpper(p.ctl.Kind().String())
			}
			panels[i] = ui.RenderGaugePanel(panelW, bodyH, title, content, i == m.cursor)
		}
		main = ui.JoinPanels(panels...)
	}

	gaugeList := ui.RenderGaugeList(m.entries(), listW, bodyH, m.cursor)

	statusBar := ui.RenderStatusBar(m.width, ui.Status{
		Paused:    m.paused,
		Gauges:    len(m.shared.panels),
		Animating: m.shared.sched.Active(),
		Readings:  m.readings,
		FPS:       m.fps,
		Note:      m.note,
	})

	return ui.ComposeLayout(menuBar, main, gaugeList, statusBar)
}

func (m AppModel) source() string {
	var parts []string
	if m.demoMode {
		parts = append(parts, "demo")
	}
	if m.shared.lines != nil {
		parts = append(parts, "lines")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

func (m AppModel) entries() []ui.GaugeEntry {
	out := make([]ui.GaugeEntry, len(m.shared.panels))
	for i, p := range m.shared.panels {
		f := p.ctl.Frame()
		var texts []string
		for _, s := range f.Geometry.Slots {
			texts = append(texts, f.Texts[s.ID])
		}
		out[i] = ui.GaugeEntry{
			Name:      p.ctl.Kind().String(),
			Readings:  texts,
			Animating: p.ctl.Animating(),
		}
	}
	return out
}

func (m AppModel) detailOf(p *panel) ui.Detail {
	v := p.ctl.Variant()
	last := "-"
	if r, ok := p.history.Last(); ok {
		last = formatValues(r)
	}
	return ui.Detail{
		Title: v.Kind.String(),
		Fields: []ui.Field{
			{Label: "Measures", Value: v.ScaleType},
			{Label: "Domain", Value: fmt.Sprintf("%g .. %g %s", v.MinValue, v.MaxValue, v.Unit)},
			{Label: "Start", Value: fmt.Sprintf("%g", v.StartValue)},
			{Label: "Ticks", Value: fmt.Sprintf("every %g, labelled every %g", v.TickStep, v.ValueSpacing)},
			{Label: "Sweep", Value: fmt.Sprintf("%g° .. %g°", v.StartAngle, v.EndAngle)},
			{Label: "Transition", Value: v.TransitionDuration.String()},
			{Label: "Readings", Value: fmt.Sprintf("%d", p.history.Len())},
			{Label: "Last", Value: last},
		},
		History: p.history.Input(0),
		Min:     v.MinValue,
		Max:     v.MaxValue,
	}
}

func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, " ")
}

// StartFeeds starts the configured feeds sending into s. Must be called
// before p.Run().
func (m *AppModel) StartFeeds(s feed.Sender) error {
	m.shared.sender = s
	if m.demoMode {
		if err := m.shared.demo.Start(s); err != nil {
			return err
		}
	}
	if m.shared.lines != nil {
		if err := m.shared.lines.Start(s); err != nil {
			return err
		}
	}
	return nil
}

// Stop halts every feed and animation.
func (m AppModel) Stop() {
	m.shared.demo.Stop()
	if m.shared.lines != nil {
		m.shared.lines.Stop()
	}
	for _, p := range m.shared.panels {
		p.ctl.Close()
	}
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
