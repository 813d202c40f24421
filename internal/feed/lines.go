package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"weather-gauges.klederson.com/internal/gauge"
)

// ErrLine is returned for a line that is not a reading.
var ErrLine = errors.New("feed: malformed reading")

// ParseLine decodes "<kind> <value>..." such as "wind 270 12",
// "tempdew 10 4" or "pressure 1013". Fewer values than the kind consumes is
// a partial reading; more is an error.
func ParseLine(line string) (ReadingMsg, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ReadingMsg{}, fmt.Errorf("%w: want a kind and at least one value in %q", ErrLine, line)
	}
	kind, err := gauge.ParseKind(fields[0])
	if err != nil {
		return ReadingMsg{}, fmt.Errorf("%w: %w", ErrLine, err)
	}
	if n, limit := len(fields)-1, gauge.Defaults(kind).Inputs(); n > limit {
		return ReadingMsg{}, fmt.Errorf("%w: %s takes at most %d values, got %d", ErrLine, kind, limit, n)
	}

	values := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ReadingMsg{}, fmt.Errorf("%w: value %q", ErrLine, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ReadingMsg{}, fmt.Errorf("%w: value %q is not finite", ErrLine, f)
		}
		values = append(values, v)
	}
	return ReadingMsg{Kind: kind, Values: values}, nil
}

// Lines reads one reading per line from r. Blank lines and lines starting
// with '#' are ignored; malformed lines are logged and skipped.
type Lines struct {
	r      io.Reader
	name   string
	log    logrus.FieldLogger
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLines creates a line feed. name identifies the source in logs.
func NewLines(r io.Reader, name string, log logrus.FieldLogger) *Lines {
	return &Lines{r: r, name: name, log: log.WithField("source", name)}
}

// Start reads in a goroutine until EOF, a read error or Stop, then sends a
// ClosedMsg.
func (l *Lines) Start(s Sender) error {
	if l.cancel != nil {
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan struct{})
	go l.loop(ctx, s)
	l.log.Info("line feed started")
	return nil
}

func (l *Lines) loop(ctx context.Context, s Sender) {
	defer close(l.done)
	sc := bufio.NewScanner(l.r)
	n := 0
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		msg, err := ParseLine(line)
		if err != nil {
			l.log.WithError(err).WithField("line", n).Warn("skipping input")
			continue
		}
		l.log.WithFields(logrus.Fields{"gauge": msg.Kind, "values": msg.Values}).Debug("reading")
		s.Send(msg)
	}
	if ctx.Err() != nil {
		return
	}
	err := sc.Err()
	if err != nil {
		l.log.WithError(err).Error("line feed failed")
	} else {
		l.log.WithField("lines", n).Info("line feed ended")
	}
	s.Send(ClosedMsg{Source: l.name, Err: err})
}

// Stop asks the reader goroutine to exit after its current line. A read
// blocked on the underlying reader is not interrupted.
func (l *Lines) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
}

// Wait blocks until the reader goroutine has exited.
func (l *Lines) Wait() {
	if l.done != nil {
		<-l.done
	}
}
