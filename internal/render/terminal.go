// Package render draws gauge frames, either as a styled character grid for
// the terminal or as an SVG document.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weather-gauges.klederson.com/internal/config"
	"weather-gauges.klederson.com/internal/gauge"
)

var (
	colorBright = lipgloss.Color("#00FF41")
	colorMid    = lipgloss.Color("#008F11")
	colorDim    = lipgloss.Color("#004A0A")
	colorNeedle = lipgloss.Color("#FF3300")
	colorHand   = lipgloss.Color("#DDDDDD")
	colorBox    = lipgloss.Color("#002200")

	styleRing    = lipgloss.NewStyle().Foreground(colorMid)
	styleMinor   = lipgloss.NewStyle().Foreground(colorDim)
	styleMajor   = lipgloss.NewStyle().Foreground(colorBright)
	styleLabel   = lipgloss.NewStyle().Foreground(colorMid)
	styleCaption = lipgloss.NewStyle().Foreground(colorMid)
	styleBox     = lipgloss.NewStyle().Background(colorBox)
	styleValue   = lipgloss.NewStyle().Foreground(colorBright).Background(colorBox).Bold(true)
	styleCenter  = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleArrow   = lipgloss.NewStyle().Foreground(colorNeedle).Bold(true)
	styleHand    = lipgloss.NewStyle().Foreground(colorHand)
)

type cell struct {
	ch    rune
	style *lipgloss.Style
}

// canvas maps view box units onto a character grid, squashing rows by the
// terminal aspect ratio.
type canvas struct {
	width, height int
	cx, cy        float64
	unit          float64 // columns per view box unit
	cells         [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  width,
		height: height,
		cx:     float64(width / 2),
		cy:     float64(height / 2),
	}
	radius := math.Min(c.cx-1, (c.cy-1)/config.AspectRatio)
	c.unit = radius / config.OutlineRadius

	c.cells = make([][]cell, height)
	for r := range c.cells {
		c.cells[r] = make([]cell, width)
		for col := range c.cells[r] {
			c.cells[r][col] = cell{ch: ' '}
		}
	}
	return c
}

func (c *canvas) pos(p gauge.Point) (col, row int) {
	col = int(math.Round(c.cx + (p.X-config.CenterX)*c.unit))
	row = int(math.Round(c.cy + (p.Y-config.CenterY)*c.unit*config.AspectRatio))
	return col, row
}

func (c *canvas) inside(col, row int) bool {
	return col >= 0 && col < c.width && row >= 0 && row < c.height
}

func (c *canvas) set(p gauge.Point, ch rune, st *lipgloss.Style) {
	col, row := c.pos(p)
	if c.inside(col, row) {
		c.cells[row][col] = cell{ch: ch, style: st}
	}
}

// text writes s centred on p. With blankOnly it gives up instead of
// overwriting anything already drawn.
func (c *canvas) text(p gauge.Point, s string, st *lipgloss.Style, blankOnly bool) bool {
	rs := []rune(s)
	col, row := c.pos(p)
	col -= len(rs) / 2
	if blankOnly {
		for i := range rs {
			if !c.inside(col+i, row) || c.cells[row][col+i].ch != ' ' {
				return false
			}
		}
	}
	for i, r := range rs {
		if c.inside(col+i, row) {
			c.cells[row][col+i] = cell{ch: r, style: st}
		}
	}
	return true
}

// radial fills cells along angle deg between two radii measured from the
// view box centre.
func (c *canvas) radial(from, to, deg float64, ch rune, st *lipgloss.Style) {
	centre := gauge.Point{X: config.CenterX, Y: config.CenterY}
	steps := int(math.Ceil(math.Abs(to-from)*c.unit)) + 1
	for i := 0; i <= steps; i++ {
		r := from + (to-from)*float64(i)/float64(steps)
		c.set(Polar(centre, r, deg), ch, st)
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for row := range c.cells {
		for _, cl := range c.cells[row] {
			if cl.style == nil {
				sb.WriteRune(cl.ch)
				continue
			}
			sb.WriteString(cl.style.Render(string(cl.ch)))
		}
		if row < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Terminal produces the gauge as a styled character grid of exactly
// width columns and height rows.
func Terminal(width, height int, f gauge.Frame) string {
	if width < 10 || height < 5 || f.Geometry == nil {
		return ""
	}
	c := newCanvas(width, height)
	g := f.Geometry

	steps := max(80, int(2*math.Pi*config.OutlineRadius*c.unit))
	for i := 0; i < steps; i++ {
		a := float64(i) * 360 / float64(steps)
		c.set(Polar(g.Center, g.Radius, a), ringChar(a), &styleRing)
	}

	for _, a := range g.Arcs {
		st := lipgloss.NewStyle().Foreground(colorOf(a.Fill, colorMid))
		mid := (a.Inner + a.Outer) / 2
		n := max(2, int(math.Abs(a.End-a.Start)*math.Pi/180*mid*c.unit))
		for i := 0; i <= n; i++ {
			c.set(Polar(g.Center, mid, a.Start+(a.End-a.Start)*float64(i)/float64(n)), '=', &st)
		}
	}

	for _, t := range g.Ticks {
		if t.Major {
			c.radial(config.AxisRadius-config.MajorTickLen/2, config.AxisRadius, t.Angle, shaftChar(t.Angle), &styleMajor)
		} else {
			c.set(Polar(g.Center, config.AxisRadius, t.Angle), '.', &styleMinor)
		}
	}
	for _, t := range g.Ticks {
		if t.Label == "" {
			continue
		}
		at := Polar(g.Center, config.AxisRadius-config.MajorTickLen-config.TickPadding/2, t.Angle)
		c.text(at, t.Label, &styleLabel, true)
	}

	for _, b := range g.Boxes {
		for y := b.Y; y <= b.Y+b.H; y += 1 / (c.unit * config.AspectRatio) {
			for x := b.X; x <= b.X+b.W; x += 1 / c.unit {
				c.set(gauge.Point{X: x, Y: y}, ' ', &styleBox)
			}
		}
	}
	for _, cp := range g.Captions {
		c.text(cp.At, cp.Text, &styleCaption, false)
	}
	for _, s := range g.Slots {
		c.text(s.At, f.Texts[s.ID], &styleValue, false)
	}
	for _, ic := range g.Icons {
		at := gauge.Point{X: ic.X + ic.W/2, Y: ic.Y + ic.H/2}
		c.text(at, "["+f.Texts[ic.ID]+"]", &styleValue, false)
	}

	for _, n := range g.Needles {
		drawNeedle(c, n, f.Needles[n.ID])
	}
	if g.Button {
		c.set(g.Center, 'o', &styleCenter)
	}
	return c.String()
}

// reach returns how far a needle extends from the centre toward its tip and
// behind it, read off its upright outline.
func reach(n gauge.NeedleShape) (tip, tail float64) {
	tip, tail = math.Inf(-1), math.Inf(-1)
	for _, p := range n.Points {
		tip = math.Max(tip, config.CenterY-p.Y)
		tail = math.Max(tail, p.Y-config.CenterY)
	}
	return tip, tail
}

func drawNeedle(c *canvas, n gauge.NeedleShape, deg float64) {
	if len(n.Points) == 0 {
		return
	}
	tip, tail := reach(n)
	centre := gauge.Point{X: config.CenterX, Y: config.CenterY}
	switch n.Shape {
	case gauge.BigHand:
		c.radial(-tail, tip, deg, shaftChar(deg), &styleArrow)
		c.set(Polar(centre, tip, deg), arrowTip(deg), &styleArrow)
	case gauge.Hand:
		c.radial(0, tip, deg, shaftChar(deg), &styleHand)
	case gauge.Arrow:
		c.radial(-tail, tip, deg, shaftChar(deg), &styleArrow)
		c.set(Polar(centre, tip, deg), arrowTip(deg), &styleArrow)
	case gauge.Tail:
		c.radial(-tail, tip, deg, shaftChar(deg), &styleHand)
		c.set(Polar(centre, tip, deg), arrowTip(deg), &styleHand)
	}
}

func colorOf(fill string, fallback lipgloss.Color) lipgloss.Color {
	if strings.HasPrefix(fill, "#") {
		return lipgloss.Color(fill)
	}
	return fallback
}
