package monitor

import (
	"math/rand"
	"testing"
	"time"

	"caresteward/showcase/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var epoch = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// scriptedRand replays fixed rolls, cycling when exhausted.
type scriptedRand struct {
	rolls []float64
	i     int
}

func (s *scriptedRand) Float64() float64 {
	v := s.rolls[s.i%len(s.rolls)]
	s.i++
	return v
}

func newTestFeed(t *testing.T, opts Options) (*Feed, *clock.Fake) {
	t.Helper()
	c := clock.NewFake(epoch)
	opts.Clock = c
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(42))
	}
	f := NewFeed(opts)
	t.Cleanup(f.Close)
	return f, c
}

func TestFeed_InitialSnapshot(t *testing.T) {
	f, _ := newTestFeed(t, Options{})

	snap := f.Snapshot()
	require.Len(t, snap, 6)
	assert.Equal(t, []string{
		ResponseTime, CPUUsage, MemoryUsage, ErrorRate, ActiveUsers, DatabaseConnections,
	}, snap.Names())
	assert.True(t, f.Live(), "feed should start live by default")
	assert.Equal(t, InitialSnapshot(), snap)
}

func TestFeed_TickChangesValuesAndKeepsNames(t *testing.T) {
	f, c := newTestFeed(t, Options{})
	before := f.Snapshot()

	c.Advance(DefaultTickInterval)

	after := f.Snapshot()
	require.Len(t, after, 6)
	assert.Equal(t, before.Names(), after.Names())
	assert.Equal(t, uint64(1), f.Ticks())

	changed := false
	for i := range before {
		if before[i].Value != after[i].Value {
			changed = true
		}
		assert.Equal(t, before[i].Unit, after[i].Unit, "unit of %s", before[i].Name)
	}
	assert.True(t, changed, "expected at least one value to change after a tick")
}

func TestFeed_NamesStableOverManyTicks(t *testing.T) {
	f, c := newTestFeed(t, Options{})
	want := InitialSnapshot().Names()

	for i := 0; i < 200; i++ {
		c.Advance(DefaultTickInterval)
		require.Equal(t, want, f.Snapshot().Names(), "tick %d", i)
	}
	assert.Equal(t, uint64(200), f.Ticks())
}

func TestFeed_PerturbationRules(t *testing.T) {
	// Per metric: value roll, status roll, trend roll, direction roll.
	// 1.0 -> +5, 0.99 > 0.95 forces warning, 0.8 > 0.7 re-rolls, 0.9 -> up.
	f, c := newTestFeed(t, Options{Rand: &scriptedRand{rolls: []float64{1.0, 0.99, 0.8, 0.9}}})

	c.Advance(DefaultTickInterval)

	for _, m := range f.Snapshot() {
		assert.Equal(t, StatusWarning, m.Status, m.Name)
		assert.Equal(t, TrendUp, m.Trend, m.Name)
	}
	assert.InDelta(t, 250, f.Snapshot()[0].Value, 1e-9)
}

func TestFeed_QuietRollsKeepStatusAndTrend(t *testing.T) {
	// 0.5 -> no value change, 0.1 keeps status, 0.2 keeps trend.
	f, c := newTestFeed(t, Options{Rand: &scriptedRand{rolls: []float64{0.5, 0.1, 0.2}}})

	c.Advance(DefaultTickInterval)

	assert.Equal(t, InitialSnapshot(), f.Snapshot())
	assert.Equal(t, uint64(1), f.Ticks())
}

func TestFeed_TrendRerollDown(t *testing.T) {
	f, c := newTestFeed(t, Options{Rand: &scriptedRand{rolls: []float64{0.0, 0.0, 0.75, 0.1}}})

	c.Advance(DefaultTickInterval)

	snap := f.Snapshot()
	for i, m := range snap {
		assert.Equal(t, TrendDown, m.Trend, m.Name)
		assert.Equal(t, InitialSnapshot()[i].Status, m.Status, m.Name)
	}
	assert.InDelta(t, 240, snap[0].Value, 1e-9)
}

func TestFeed_ValuesAreUnclamped(t *testing.T) {
	// Always -5: Error Rate (0.2) goes negative on the first tick.
	f, c := newTestFeed(t, Options{Rand: &scriptedRand{rolls: []float64{0.0, 0.0, 0.0}}})

	c.Advance(3 * DefaultTickInterval)

	for _, m := range f.Snapshot() {
		if m.Name == ErrorRate {
			assert.InDelta(t, -14.8, m.Value, 1e-9)
		}
	}
}

func TestFeed_PausedFreezesSnapshot(t *testing.T) {
	f, c := newTestFeed(t, Options{})
	c.Advance(DefaultTickInterval)

	f.ToggleLive()
	require.False(t, f.Live())
	frozen := f.Snapshot()

	c.Advance(DefaultTickInterval)
	assert.Equal(t, frozen, f.Snapshot(), "snapshot must not change while paused")

	c.Advance(10 * DefaultTickInterval)
	assert.Equal(t, frozen, f.Snapshot())
	assert.Equal(t, 0, c.Pending(), "pausing must cancel the tick")
}

func TestFeed_ResumeRestartsTick(t *testing.T) {
	f, c := newTestFeed(t, Options{Paused: true})
	assert.False(t, f.Live())
	assert.Equal(t, 0, c.Pending())

	assert.True(t, f.ToggleLive())
	c.Advance(DefaultTickInterval)
	assert.Equal(t, uint64(1), f.Ticks())
}

func TestFeed_ToggleTwiceWithinPeriodDoesNotDoubleTick(t *testing.T) {
	f, c := newTestFeed(t, Options{})

	f.ToggleLive()
	f.ToggleLive()
	assert.Equal(t, 1, c.Pending())

	c.Advance(DefaultTickInterval)
	assert.Equal(t, uint64(1), f.Ticks())
}

func TestFeed_SetLiveIsIdempotent(t *testing.T) {
	f, c := newTestFeed(t, Options{})
	ch := f.Subscribe()

	f.SetLive(true)
	select {
	case <-ch:
		t.Fatal("SetLive(true) on a live feed should not notify")
	default:
	}
	assert.Equal(t, 1, c.Pending())
}

func TestFeed_CustomInterval(t *testing.T) {
	f, c := newTestFeed(t, Options{TickInterval: 500 * time.Millisecond})

	c.Advance(time.Second)
	assert.Equal(t, uint64(2), f.Ticks())
}

func TestFeed_History(t *testing.T) {
	f, c := newTestFeed(t, Options{HistorySize: 3})

	for i := 0; i < 5; i++ {
		c.Advance(DefaultTickInterval)
	}

	hist := f.History(CPUUsage)
	require.Len(t, hist, 3)
	assert.Equal(t, f.Snapshot()[1].Value, hist[2], "last history point is the current value")
	assert.Empty(t, f.History("unknown"))
}

func TestFeed_StepHoldsAfterEachTick(t *testing.T) {
	f, c := newTestFeed(t, Options{Step: true})

	c.Advance(10 * DefaultTickInterval)
	assert.Equal(t, uint64(1), f.Ticks(), "a stepping feed ticks once per resume")
	assert.False(t, f.Live())
	assert.Equal(t, 0, c.Pending())

	f.SetLive(true)
	c.Advance(10 * DefaultTickInterval)
	assert.Equal(t, uint64(2), f.Ticks())
}

func TestFeed_CurrentPairsTickWithSnapshot(t *testing.T) {
	f, c := newTestFeed(t, Options{})

	n, snap := f.Current()
	assert.Equal(t, uint64(0), n)
	assert.Equal(t, InitialSnapshot(), snap)

	c.Advance(3 * DefaultTickInterval)
	n, snap = f.Current()
	assert.Equal(t, uint64(3), n)
	assert.Equal(t, f.Snapshot(), snap)
	assert.Equal(t, f.History(CPUUsage)[len(f.History(CPUUsage))-1], snap[1].Value)
}

func TestFeed_CloseStopsTicksAndClosesSubscribers(t *testing.T) {
	f, c := newTestFeed(t, Options{})
	ch := f.Subscribe()

	f.Close()
	before := f.Snapshot()
	c.Advance(5 * DefaultTickInterval)

	assert.Equal(t, before, f.Snapshot())
	assert.Equal(t, uint64(0), f.Ticks())
	assert.Equal(t, 0, c.Pending())

	_, ok := <-ch
	assert.False(t, ok, "subscriber channel should be closed")

	// Events after Close are ignored.
	f.SetLive(true)
	assert.False(t, f.Live())
	f.Close()
}

func TestFeed_RealClockTeardownLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := NewFeed(Options{TickInterval: time.Millisecond})
	ch := f.Subscribe()
	<-ch // at least one tick ran on the timer goroutine
	f.Close()
}

func TestProgress(t *testing.T) {
	tests := []struct {
		metric Metric
		want   float64
	}{
		{Metric{Name: ResponseTime, Value: 245}, 49},
		{Metric{Name: CPUUsage, Value: 68}, 68},
		{Metric{Name: ActiveUsers, Value: 1247}, 100},
		{Metric{Name: ErrorRate, Value: -3}, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Progress(tt.metric), 1e-9, tt.metric.Name)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.2", FormatValue(Metric{Name: ErrorRate, Value: 0.2}))
	assert.Equal(t, "245", FormatValue(Metric{Name: ResponseTime, Value: 245.4}))
	assert.Equal(t, "1247", FormatValue(Metric{Name: ActiveUsers, Value: 1247}))
}

func TestTrendArrow(t *testing.T) {
	assert.Equal(t, "↗", TrendUp.Arrow())
	assert.Equal(t, "↘", TrendDown.Arrow())
	assert.Equal(t, "→", TrendStable.Arrow())
	assert.Equal(t, "→", Trend("").Arrow())
}

func TestMetricString(t *testing.T) {
	m := Metric{Name: ResponseTime, Value: 245, Unit: "ms", Status: StatusHealthy, Trend: TrendDown}
	assert.Equal(t, "Response Time: 245ms ↘ (healthy)", m.String())
}
