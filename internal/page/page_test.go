package page

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrder_IsFixed(t *testing.T) {
	want := []SectionID{
		"navigation", "header", "problem-solution", "interactive-demo",
		"data-visualization", "performance-monitor", "footer",
	}
	if diff := cmp.Diff(want, Order); diff != "" {
		t.Errorf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestAnchors_AreSectionsInPageOrder(t *testing.T) {
	last := -1
	for _, a := range Anchors {
		pos := -1
		for i, id := range Order {
			if id == a.ID {
				pos = i
			}
		}
		if pos < 0 {
			t.Fatalf("anchor %q is not a page section", a.ID)
		}
		if pos <= last {
			t.Errorf("anchor %q is out of page order", a.ID)
		}
		last = pos
	}
}

func TestLookupAnchor(t *testing.T) {
	a, ok := LookupAnchor(SectionDataVisualization)
	if !ok || a.Label != "Data Visualization" {
		t.Errorf("unexpected anchor %+v (ok=%v)", a, ok)
	}
	if _, ok := LookupAnchor(SectionFooter); ok {
		t.Error("footer should not be a navigation anchor")
	}
}

func TestNav_OnScroll(t *testing.T) {
	var n Nav
	if n.OnScroll(0).Scrolled {
		t.Error("expected not scrolled at offset 0")
	}
	if n.OnScroll(ScrollThreshold).Scrolled {
		t.Error("expected not scrolled at the threshold")
	}
	if !n.OnScroll(ScrollThreshold + 1).Scrolled {
		t.Error("expected scrolled past the threshold")
	}
	if n.OnScroll(5).OnScroll(0).Scrolled {
		t.Error("expected scrolling back to the top to clear the flag")
	}
}

func TestNav_ChooseClosesMenu(t *testing.T) {
	n := Nav{}.ToggleMenu()
	if !n.MenuOpen {
		t.Fatal("expected menu open after toggle")
	}

	n, a, ok := n.Choose(1)
	if !ok || a.ID != SectionInteractiveDemo {
		t.Errorf("expected interactive-demo, got %+v (ok=%v)", a, ok)
	}
	if n.MenuOpen {
		t.Error("expected menu closed after choosing")
	}

	n = n.ToggleMenu()
	n, _, ok = n.Choose(9)
	if ok {
		t.Error("expected out-of-range choice to fail")
	}
	if n.MenuOpen {
		t.Error("expected menu closed even for an invalid choice")
	}
}

func TestCompact(t *testing.T) {
	if !Compact(60) {
		t.Error("expected 60 columns to be compact")
	}
	if Compact(120) {
		t.Error("expected 120 columns to be full width")
	}
}

func TestLayout(t *testing.T) {
	l := NewLayout(map[SectionID]int{
		SectionNavigation:        2,
		SectionHeader:            4,
		SectionProblemSolution:   10,
		SectionInteractiveDemo:   12,
		SectionDataVisualization: 15,
		SectionPerformance:       20,
		SectionFooter:            2,
	})

	tests := map[SectionID]int{
		SectionNavigation:        0,
		SectionHeader:            2,
		SectionProblemSolution:   6,
		SectionInteractiveDemo:   16,
		SectionDataVisualization: 28,
		SectionPerformance:       43,
		SectionFooter:            63,
	}
	for id, want := range tests {
		got, ok := l.Offset(id)
		if !ok || got != want {
			t.Errorf("Offset(%q) = %d (ok=%v), want %d", id, got, ok, want)
		}
	}
	if l.Height() != 65 {
		t.Errorf("expected total height 65, got %d", l.Height())
	}
	if _, ok := l.Offset("missing"); ok {
		t.Error("expected unknown section to be absent")
	}
}

func TestSteps(t *testing.T) {
	titles := make([]string, len(Steps))
	for i, s := range Steps {
		titles[i] = s.Title
	}
	want := []string{"Your Challenge", "Our Expertise", "Your Solution"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("step titles mismatch (-want +got):\n%s", diff)
	}
}
