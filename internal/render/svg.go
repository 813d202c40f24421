package render

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"weather-gauges.klederson.com/internal/config"
	"weather-gauges.klederson.com/internal/gauge"
)

// SVG writes the frame as a standalone SVG document. Animated elements carry
// their series id so the document can be restyled or updated in place.
func SVG(w io.Writer, f gauge.Frame) error {
	if f.Geometry == nil {
		return fmt.Errorf("render: frame without geometry")
	}
	g := f.Geometry
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" class="gauge %s" font-family="sans-serif" text-anchor="middle">`+"\n",
		num(config.ViewBox), num(config.ViewBox), f.Kind)
	fmt.Fprintf(bw, `  <circle class="outline" cx="%s" cy="%s" r="%s" fill="#222" stroke="#555"/>`+"\n",
		num(g.Center.X), num(g.Center.Y), num(g.Radius))

	for _, a := range g.Arcs {
		fmt.Fprintf(bw, `  <path class="arc" d="%s" fill="%s"/>`+"\n", arcPath(g.Center, a), escape(a.Fill))
	}

	bw.WriteString(`  <g class="axis" stroke="#ccc">` + "\n")
	for _, t := range g.Ticks {
		length, class := config.MinorTickLen, "tick"
		if t.Major {
			length, class = config.MajorTickLen, "tick major"
		}
		from := Polar(g.Center, config.AxisRadius-length, t.Angle)
		to := Polar(g.Center, config.AxisRadius, t.Angle)
		fmt.Fprintf(bw, `    <line class="%s" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			class, num(from.X), num(from.Y), num(to.X), num(to.Y))
	}
	for _, t := range g.Ticks {
		if t.Label == "" {
			continue
		}
		at := Polar(g.Center, config.AxisRadius-config.MajorTickLen-config.TickPadding/2, t.Angle)
		fmt.Fprintf(bw, `    <text class="tick-label" x="%s" y="%s" font-size="10" fill="#ccc" stroke="none" dominant-baseline="middle">%s</text>`+"\n",
			num(at.X), num(at.Y), escape(t.Label))
	}
	bw.WriteString("  </g>\n")

	for _, b := range g.Boxes {
		fmt.Fprintf(bw, `  <rect class="box" x="%s" y="%s" width="%s" height="%s" rx="3" fill="#000"/>`+"\n",
			num(b.X), num(b.Y), num(b.W), num(b.H))
	}
	for _, c := range g.Captions {
		fmt.Fprintf(bw, `  <text class="caption" x="%s" y="%s" font-size="%s" fill="#ccc">%s</text>`+"\n",
			num(c.At.X), num(c.At.Y), num(c.Size), escape(c.Text))
	}
	for _, s := range g.Slots {
		fmt.Fprintf(bw, `  <text id="%s" x="%s" y="%s" font-size="%s" fill="#fff">%s</text>`+"\n",
			escape(s.ID), num(s.At.X), num(s.At.Y), num(s.Size), escape(f.Texts[s.ID]))
	}
	for _, ic := range g.Icons {
		fmt.Fprintf(bw, `  <g id="%s" data-key="%s"><rect x="%s" y="%s" width="%s" height="%s" fill="none"/></g>`+"\n",
			escape(ic.ID), escape(f.Texts[ic.ID]), num(ic.X), num(ic.Y), num(ic.W), num(ic.H))
	}

	for _, n := range g.Needles {
		rot := fmt.Sprintf("rotate(%s %s %s)", num(f.Needles[n.ID]), num(g.Center.X), num(g.Center.Y))
		fill := n.Fill
		if fill == "" {
			fill = "none"
		}
		switch n.Shape {
		case gauge.Hand:
			if len(n.Points) < 2 {
				continue
			}
			a, b := n.Points[0], n.Points[len(n.Points)-1]
			fmt.Fprintf(bw, `  <line id="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2" transform="%s"/>`+"\n",
				escape(n.ID), num(a.X), num(a.Y), num(b.X), num(b.Y), escape(n.Stroke), rot)
		default:
			fmt.Fprintf(bw, `  <polygon id="%s" points="%s" stroke="%s" fill="%s" transform="%s"/>`+"\n",
				escape(n.ID), points(n.Points), escape(n.Stroke), escape(fill), rot)
		}
	}
	if g.Button {
		fmt.Fprintf(bw, `  <circle class="button" cx="%s" cy="%s" r="%s" fill="#000" stroke="#aaa"/>`+"\n",
			num(g.Center.X), num(g.Center.Y), num(config.ButtonRadius))
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// arcPath outlines a ring segment clockwise along the outer edge and back
// along the inner edge.
func arcPath(c gauge.Point, a gauge.Arc) string {
	large := 0
	if math.Abs(a.End-a.Start) > 180 {
		large = 1
	}
	sweep, back := 1, 0
	if a.End < a.Start {
		sweep, back = 0, 1
	}
	os, oe := Polar(c, a.Outer, a.Start), Polar(c, a.Outer, a.End)
	is, ie := Polar(c, a.Inner, a.Start), Polar(c, a.Inner, a.End)
	return fmt.Sprintf("M%s,%s A%s,%s 0 %d %d %s,%s L%s,%s A%s,%s 0 %d %d %s,%s Z",
		num(os.X), num(os.Y),
		num(a.Outer), num(a.Outer), large, sweep, num(oe.X), num(oe.Y),
		num(ie.X), num(ie.Y),
		num(a.Inner), num(a.Inner), large, back, num(is.X), num(is.Y))
}

func points(ps []gauge.Point) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
