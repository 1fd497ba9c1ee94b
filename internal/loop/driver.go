// Package loop drives a rocket session at a fixed tick rate.
// The driver is the only goroutine that touches the session; producers hand
// it signals through a buffered queue.
package loop

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket/sim"
)

// DefaultQueueSize is the signal buffer used when none is configured.
const DefaultQueueSize = 64

// Driver advances a session on a ticker.
type Driver struct {
	session  *sim.Session
	signals  chan sim.Signal
	interval time.Duration
	logger   *log.Logger
	onTick   func(sim.Snapshot)
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger replaces the driver's logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithOnTick registers an observer called after every playing tick.
// The observer runs on the driver goroutine and must not block.
func WithOnTick(fn func(sim.Snapshot)) Option {
	return func(d *Driver) {
		d.onTick = fn
	}
}

// WithQueueSize sets the signal buffer capacity.
func WithQueueSize(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.signals = make(chan sim.Signal, n)
		}
	}
}

// New creates a driver ticking the session tickRate times per second.
func New(session *sim.Session, tickRate int, opts ...Option) *Driver {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}

	d := &Driver{
		session:  session,
		signals:  make(chan sim.Signal, DefaultQueueSize),
		interval: time.Second / time.Duration(tickRate),
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "rocket-loop",
		}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send queues a signal for the next tick without blocking.
// Returns false when the queue is full and the signal was dropped.
func (d *Driver) Send(sig sim.Signal) bool {
	select {
	case d.signals <- sig:
		return true
	default:
		d.logger.Debug("signal dropped, queue full", "signal", sig)
		return false
	}
}

// Interval returns the time between ticks.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Run ticks the session until ctx is cancelled. Queued signals are applied
// in arrival order before each tick.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("session started",
		"interval", d.interval,
		"obstacles", d.session.ObstacleCount(),
	)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("session stopped",
				"ticks", d.session.Ticks(),
				"score", d.session.Score(),
				"status", d.session.Status(),
			)
			return nil

		case now := <-ticker.C:
			if lag := now.Sub(last); lag > 2*d.interval {
				d.logger.Debug("tick lagging", "lag", lag)
			}
			last = now
			d.step()
		}
	}
}

// step applies queued signals and advances the session once.
// The observer only sees ticks that actually ran.
func (d *Driver) step() {
	d.drain()

	before := d.session.Status()
	if before != sim.StatusPlaying {
		return
	}
	d.session.Tick()

	if after := d.session.Status(); after != before {
		d.logTransition(before, after)
	}
	if d.onTick != nil {
		d.onTick(d.session.Snapshot())
	}
}

// drain applies every queued signal without waiting for more.
func (d *Driver) drain() {
	for {
		select {
		case sig := <-d.signals:
			before := d.session.Status()
			if !d.session.Signal(sig) {
				continue
			}
			if sig == sim.SignalReset {
				d.logger.Info("session reset", "from", before)
				continue
			}
			if after := d.session.Status(); after != before {
				d.logTransition(before, after)
			}
		default:
			return
		}
	}
}

func (d *Driver) logTransition(from, to sim.Status) {
	switch {
	case to == sim.StatusGameOver:
		fields := []any{
			"ticks", d.session.Ticks(),
			"score", d.session.Score(),
			"elapsed", d.session.Elapsed(),
		}
		if o, ok := d.session.Blamed(); ok {
			fields = append(fields, "obstacle_x", o.Pos.X, "obstacle_y", o.Pos.Y)
		}
		d.logger.Info("game over", fields...)
	default:
		d.logger.Debug("status changed", "from", from, "to", to)
	}
}
