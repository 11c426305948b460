package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"caresteward/showcase/internal/clock"
	"caresteward/showcase/internal/monitor"

	"github.com/google/go-cmp/cmp"
)

func newTestMonitorModel(t *testing.T) (monitorDemoModel, *monitor.Feed, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	feed := monitor.NewFeed(monitor.Options{
		Clock: clk,
		Rand:  rand.New(rand.NewSource(7)),
	})
	t.Cleanup(feed.Close)
	return newMonitorDemoModel(feed), feed, clk
}

func TestMonitorDemo_RefreshesOnFeedChange(t *testing.T) {
	m, feed, clk := newTestMonitorModel(t)
	before := m.snapshot

	clk.Advance(monitor.DefaultTickInterval)
	m, cmd, handled := m.Update(feedChangedMsg{})
	if handled {
		t.Error("feed changes are not key presses")
	}
	if cmd == nil {
		t.Error("expected wait command to be re-armed")
	}
	if diff := cmp.Diff(feed.Snapshot(), m.snapshot); diff != "" {
		t.Errorf("cached snapshot out of date (-want +got):\n%s", diff)
	}
	if cmp.Equal(before, m.snapshot) {
		t.Error("expected the tick to change the snapshot")
	}
}

func TestMonitorDemo_PauseResume(t *testing.T) {
	m, feed, _ := newTestMonitorModel(t)
	if !strings.Contains(m.View(120), liveLabel) {
		t.Error("expected live label while live")
	}

	m, _, handled := m.Update(runes("p"))
	if !handled {
		t.Fatal("expected p to be handled")
	}
	if feed.Live() || m.live {
		t.Error("expected feed paused")
	}
	view := m.View(120)
	if !strings.Contains(view, pausedLabel) || !strings.Contains(view, "Resume") {
		t.Errorf("expected paused label and resume button, got:\n%s", view)
	}

	m, _, _ = m.Update(runes(" "))
	if !feed.Live() || !m.live {
		t.Error("expected space to resume")
	}
}

func TestMonitorDemo_HistoryCycles(t *testing.T) {
	m, _, _ := newTestMonitorModel(t)

	m, _, _ = m.Update(runes("S"))
	if m.focused != len(m.snapshot)-1 {
		t.Errorf("expected S to wrap to last metric, got %d", m.focused)
	}
	m, _, _ = m.Update(runes("s"))
	if m.focused != 0 {
		t.Errorf("expected s to wrap to first metric, got %d", m.focused)
	}
}

func TestMonitorDemo_ViewListsMetricsAndChecks(t *testing.T) {
	m, _, _ := newTestMonitorModel(t)
	view := m.View(120)

	for _, name := range m.snapshot.Names() {
		if !strings.Contains(view, name) {
			t.Errorf("expected metric %q in view", name)
		}
	}
	for _, check := range systemChecks {
		if !strings.Contains(view, check) {
			t.Errorf("expected status %q in view", check)
		}
	}
}
