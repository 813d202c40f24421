package feed

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"weather-gauges.klederson.com/internal/gauge"
)

// ErrRunning is returned when starting a feed twice.
var ErrRunning = errors.New("feed: already running")

// Demo periodically sends a random, variant-shaped reading to every gauge.
type Demo struct {
	variants []gauge.Variant
	interval time.Duration
	seed     int64
	log      logrus.FieldLogger

	mu     sync.Mutex
	runs   int64
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDemo creates a demo feed for the given variants.
func NewDemo(interval time.Duration, seed int64, log logrus.FieldLogger, variants ...gauge.Variant) *Demo {
	return &Demo{
		variants: variants,
		interval: interval,
		seed:     seed,
		log:      log,
	}
}

// Start begins sending readings to s. The first batch goes out immediately.
func (d *Demo) Start(s Sender) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return ErrRunning
	}

	// Runs never share a source; a stopped run may still be finishing.
	rng := rand.New(rand.NewSource(d.seed + d.runs))
	d.runs++

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})
	go d.loop(ctx, s, rng, d.done)
	d.log.WithField("interval", d.interval).Info("demo feed started")
	return nil
}

func (d *Demo) loop(ctx context.Context, s Sender, rng *rand.Rand, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.emit(ctx, s, rng)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.emit(ctx, s, rng)
		}
	}
}

func (d *Demo) emit(ctx context.Context, s Sender, rng *rand.Rand) {
	for _, v := range d.variants {
		if ctx.Err() != nil {
			return
		}
		values := v.SampleReading(rng)
		d.log.WithFields(logrus.Fields{"gauge": v.Kind, "values": values}).Debug("demo reading")
		s.Send(ReadingMsg{Kind: v.Kind, Values: values})
	}
}

// Running reports whether the feed is sending.
func (d *Demo) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

// Stop halts the feed. It does not wait for the goroutine, which may be
// blocked handing a reading to the very loop calling Stop; use Wait for that.
// Stopping an idle feed is a no-op.
func (d *Demo) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel == nil {
		return
	}
	d.cancel()
	d.cancel = nil
	d.log.Info("demo feed stopped")
}

// Wait blocks until the most recent run has exited.
func (d *Demo) Wait() {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done != nil {
		<-done
	}
}
