package components

import (
	"strings"
	"testing"

	"caresteward/showcase/internal/dataviz"
	"caresteward/showcase/internal/page"
	"caresteward/showcase/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

func TestProgressBar_Clamps(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{-20, 0},
		{0, 0},
		{50, 5},
		{100, 10},
		{180, 10},
	}
	for _, tt := range tests {
		bar := ProgressBar(10, tt.pct, styles.Green, styles.DimGray)
		if got := strings.Count(bar, "━"); got != tt.want {
			t.Errorf("pct %.0f: expected %d filled cells, got %d", tt.pct, tt.want, got)
		}
		if got := lipgloss.Width(bar); got != 10 {
			t.Errorf("pct %.0f: expected width 10, got %d", tt.pct, got)
		}
	}
}

func TestProblemSolution_Orientation(t *testing.T) {
	wide := ProblemSolution(120)
	if !GraphicHorizontal(120) {
		t.Fatal("expected horizontal layout at 120 columns")
	}
	if !strings.Contains(wide, "──▶") {
		t.Error("expected horizontal arrows in the wide layout")
	}

	narrow := ProblemSolution(40)
	if GraphicHorizontal(40) {
		t.Fatal("expected vertical layout at 40 columns")
	}
	if !strings.Contains(narrow, arrowDown) {
		t.Error("expected downward arrows in the narrow layout")
	}
	if lipgloss.Height(narrow) <= lipgloss.Height(wide) {
		t.Error("expected the stacked layout to be taller")
	}

	for _, s := range page.Steps {
		if !strings.Contains(wide, s.Title) || !strings.Contains(narrow, s.Title) {
			t.Errorf("expected step %q in both layouts", s.Title)
		}
	}
}

func TestNavBar_CompactMenu(t *testing.T) {
	full := NavBar(120, page.Nav{})
	for _, a := range page.Anchors {
		if !strings.Contains(full, a.Label) {
			t.Errorf("expected %q inline at full width", a.Label)
		}
	}

	closed := NavBar(60, page.Nav{})
	if strings.Contains(closed, page.Anchors[0].Label) {
		t.Error("expected anchors hidden while the compact menu is closed")
	}

	open := NavBar(60, page.Nav{MenuOpen: true})
	for _, a := range page.Anchors {
		if !strings.Contains(open, a.Label) {
			t.Errorf("expected %q in the open menu", a.Label)
		}
	}
}

func TestNavBar_ScrolledAddsRule(t *testing.T) {
	top := NavBar(120, page.Nav{})
	scrolled := NavBar(120, page.Nav{Scrolled: true})
	if got, want := lipgloss.Height(scrolled), lipgloss.Height(top)+1; got != want {
		t.Errorf("expected scrolled bar height %d, got %d", want, got)
	}
}

func TestSparkline_NeedsTwoPoints(t *testing.T) {
	out := Sparkline("CPU Usage", []float64{68}, 60, 0, "%")
	if !strings.Contains(out, "collecting data") {
		t.Errorf("expected placeholder, got %q", out)
	}

	out = Sparkline("CPU Usage", []float64{68, 70, 65}, 60, 0, "%")
	if !strings.Contains(out, "cur: 65%  min: 65%  max: 70%") {
		t.Errorf("expected summary line, got:\n%s", out)
	}
}

func TestMinMax(t *testing.T) {
	lo, hi := minMax([]float64{3, -1, 7, 2})
	if diff := cmp.Diff([]float64{-1, 7}, []float64{lo, hi}); diff != "" {
		t.Errorf("minMax mismatch (-want +got):\n%s", diff)
	}
}

func TestBarChart_Renders(t *testing.T) {
	out := BarChart(dataviz.Points(dataviz.Revenue), 60, 10, styles.BrandLight)
	if !strings.Contains(out, "Jan") || !strings.Contains(out, "Jun") {
		t.Errorf("expected month labels, got:\n%s", out)
	}
	if got := BarChart(nil, 60, 10, styles.BrandLight); !strings.Contains(got, "no data") {
		t.Errorf("expected placeholder for empty data, got %q", got)
	}
}

func TestFooter_Bindings(t *testing.T) {
	out := Footer(80, []KeyBinding{{Key: "q", Desc: "quit"}})
	if !strings.Contains(out, "q quit") {
		t.Errorf("expected binding in footer, got %q", out)
	}
	if Footer(80, nil) != "" {
		t.Error("expected empty footer without bindings")
	}
}
