package dataviz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		kind Kind
		want Summary
	}{
		{Revenue, Summary{Current: 28000, Average: 20000, GrowthPct: 133, MetricLabel: "Revenue ($)"}},
		{Users, Summary{Current: 720, Average: 405, GrowthPct: 380, MetricLabel: "Active Users"}},
		{Growth, Summary{Current: 28, Average: 23, GrowthPct: 87, MetricLabel: "Growth Rate (%)"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Summarize(tt.kind)); diff != "" {
				t.Errorf("summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHeights_NormalizedToMax(t *testing.T) {
	got := Heights(Points(Revenue), 10)
	want := []int{4, 5, 6, 8, 9, 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("heights mismatch (-want +got):\n%s", diff)
	}

	if got := Heights(nil, 10); len(got) != 0 {
		t.Errorf("expected no heights for empty dataset, got %v", got)
	}
}

func TestPoints_ReturnsCopy(t *testing.T) {
	p := Points(Users)
	p[0].Value = -1
	if Points(Users)[0].Value != 150 {
		t.Error("mutating the returned slice changed the dataset")
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("  Users ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != Users {
		t.Errorf("expected %q, got %q", Users, k)
	}

	if _, err := ParseKind("profit"); err == nil {
		t.Error("expected error for unknown dataset")
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(28000); got != "28,000" {
		t.Errorf("FormatNumber(28000) = %q", got)
	}
	if got := FormatNumber(405); got != "405" {
		t.Errorf("FormatNumber(405) = %q", got)
	}
}

func TestFormatGrowth(t *testing.T) {
	if got := FormatGrowth(133); got != "+133%" {
		t.Errorf("FormatGrowth(133) = %q", got)
	}
	if got := FormatGrowth(-4); got != "-4%" {
		t.Errorf("FormatGrowth(-4) = %q", got)
	}
}

func TestSelector(t *testing.T) {
	var s Selector
	if s.Selected() != Revenue {
		t.Fatalf("expected zero selector to show revenue, got %q", s.Selected())
	}

	s = s.Next()
	if s.Selected() != Users {
		t.Errorf("expected users after Next, got %q", s.Selected())
	}
	s = s.Next().Next()
	if s.Selected() != Revenue {
		t.Errorf("expected wrap to revenue, got %q", s.Selected())
	}
	s = s.Prev()
	if s.Selected() != Growth {
		t.Errorf("expected wrap back to growth, got %q", s.Selected())
	}
	s = s.Select(Users)
	if s.Selected() != Users {
		t.Errorf("expected users after Select, got %q", s.Selected())
	}
	s = s.Select(Kind("bogus"))
	if s.Selected() != Users {
		t.Errorf("unknown kind changed selection to %q", s.Selected())
	}
}
