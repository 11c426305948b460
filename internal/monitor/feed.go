// Package monitor implements the simulated live performance-metrics feed.
//
// While live, a repeating tick replaces the snapshot with a randomly
// perturbed copy. Values are not clamped and drift freely; only the display
// helpers bound them.
package monitor

import (
	"math/rand"
	"sync"
	"time"

	"caresteward/showcase/internal/clock"

	"go.uber.org/zap"
)

// DefaultTickInterval is the period between snapshot updates.
const DefaultTickInterval = 2 * time.Second

const (
	// perturbSpan is the width of the uniform value perturbation, centred on
	// zero: each tick moves a value by up to ±perturbSpan/2.
	perturbSpan = 10

	// warningRoll is the threshold a roll must exceed to force Warning.
	warningRoll = 0.95

	// trendRoll is the threshold a roll must exceed to re-roll the trend.
	trendRoll = 0.7
)

// Rand is the random source consumed by the feed. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Options configures a Feed.
type Options struct {
	Clock        clock.Clock
	Rand         Rand
	TickInterval time.Duration
	HistorySize  int
	Logger       *zap.Logger

	// Paused starts the feed with live mode off.
	Paused bool

	// Step turns live mode off after every tick, so each tick has to be
	// requested with SetLive(true). Readers that must see every snapshot
	// use it to hold the feed while they work.
	Step bool
}

// Feed owns the metrics snapshot and the live tick. It is safe for
// concurrent use.
type Feed struct {
	mu sync.Mutex

	clock    clock.Clock
	rand     Rand
	interval time.Duration
	log      *zap.Logger

	snapshot Snapshot
	history  *history
	ticks    uint64

	live  bool
	step  bool
	timer clock.Timer
	gen   uint64

	closed bool
	subs   []chan struct{}
}

// NewFeed creates a feed holding InitialSnapshot. Unless opts.Paused is
// set, the tick starts immediately.
func NewFeed(opts Options) *Feed {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	initial := InitialSnapshot()
	f := &Feed{
		clock:    opts.Clock,
		rand:     opts.Rand,
		interval: opts.TickInterval,
		step:     opts.Step,
		log:      opts.Logger.Named("monitor"),
		snapshot: initial,
		history:  newHistory(opts.HistorySize, initial),
	}

	if !opts.Paused {
		f.mu.Lock()
		f.start()
		f.mu.Unlock()
	}
	return f
}

// Snapshot returns a copy of the current metrics.
func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot.Clone()
}

// History returns the recorded values of one metric, oldest first.
func (f *Feed) History(name string) []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.history.get(name)
}

// Ticks returns how many ticks have been applied.
func (f *Feed) Ticks() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ticks
}

// Current returns the tick count and a copy of the snapshot that tick
// produced, read together.
func (f *Feed) Current() (uint64, Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ticks, f.snapshot.Clone()
}

// Live reports whether the tick is running.
func (f *Feed) Live() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

// ToggleLive flips live mode and returns the new value.
func (f *Feed) ToggleLive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLive(!f.live)
	return f.live
}

// SetLive turns live mode on or off. Turning it off cancels the pending
// tick and keeps the last snapshot as-is.
func (f *Feed) SetLive(live bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLive(live)
}

// Close stops the tick and detaches subscribers. Close is idempotent.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.stop()
	f.closed = true
	for _, ch := range f.subs {
		close(ch)
	}
	f.subs = nil
	f.log.Debug("feed closed", zap.Uint64("ticks", f.ticks))
}

// Subscribe returns a channel that receives a value after every snapshot
// replacement or live-mode change. Notifications coalesce. The channel is
// closed by Close.
func (f *Feed) Subscribe() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan struct{}, 1)
	if f.closed {
		close(ch)
		return ch
	}
	f.subs = append(f.subs, ch)
	return ch
}

// setLive applies a live-mode change. Caller must hold f.mu.
func (f *Feed) setLive(live bool) {
	if f.closed || live == f.live {
		return
	}
	if live {
		f.start()
	} else {
		f.stop()
	}
	f.log.Debug("live mode changed", zap.Bool("live", live))
	f.notify()
}

// start arms the repeating tick. Caller must hold f.mu.
func (f *Feed) start() {
	f.live = true
	f.arm()
}

// stop cancels the pending tick. Caller must hold f.mu.
func (f *Feed) stop() {
	f.live = false
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// arm schedules the next tick. Caller must hold f.mu.
func (f *Feed) arm() {
	gen := f.gen
	f.timer = f.clock.AfterFunc(f.interval, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.closed || !f.live || gen != f.gen {
			return
		}
		if f.step {
			f.stop()
			f.tick()
			return
		}
		f.tick()
		f.arm()
	})
}

// tick replaces the snapshot with a perturbed copy. Caller must hold f.mu.
func (f *Feed) tick() {
	next := make(Snapshot, len(f.snapshot))
	for i, m := range f.snapshot {
		next[i] = f.perturb(m)
	}
	f.snapshot = next
	f.history.record(next)
	f.ticks++
	f.notify()
}

// perturb returns m with a new value, possibly a forced Warning status and
// possibly a re-rolled trend.
func (f *Feed) perturb(m Metric) Metric {
	m.Value += (f.rand.Float64() - 0.5) * perturbSpan
	if f.rand.Float64() > warningRoll {
		m.Status = StatusWarning
	}
	if f.rand.Float64() > trendRoll {
		if f.rand.Float64() > 0.5 {
			m.Trend = TrendUp
		} else {
			m.Trend = TrendDown
		}
	}
	return m
}

// notify wakes every subscriber without blocking. Caller must hold f.mu.
func (f *Feed) notify() {
	for _, ch := range f.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
