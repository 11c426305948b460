// Package dataviz holds the static datasets behind the chart demo and the
// summary statistics shown beneath the chart.
package dataviz

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Kind names one of the selectable datasets.
type Kind string

const (
	Revenue Kind = "revenue"
	Users   Kind = "users"
	Growth  Kind = "growth"
)

// Kinds lists the datasets in selector order.
var Kinds = []Kind{Revenue, Users, Growth}

// Label returns the human-readable metric label.
func (k Kind) Label() string {
	switch k {
	case Revenue:
		return "Revenue ($)"
	case Users:
		return "Active Users"
	case Growth:
		return "Growth Rate (%)"
	default:
		return ""
	}
}

// ParseKind resolves a dataset name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	normalized := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Kinds {
		if k == normalized {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown dataset %q (valid: revenue, users, growth)", s)
}

// Point is one bar of the chart.
type Point struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

var datasets = map[Kind][]Point{
	Revenue: {
		{"Jan", 12000}, {"Feb", 15000}, {"Mar", 18000},
		{"Apr", 22000}, {"May", 25000}, {"Jun", 28000},
	},
	Users: {
		{"Jan", 150}, {"Feb", 220}, {"Mar", 310},
		{"Apr", 450}, {"May", 580}, {"Jun", 720},
	},
	Growth: {
		{"Jan", 15}, {"Feb", 22}, {"Mar", 18},
		{"Apr", 25}, {"May", 32}, {"Jun", 28},
	},
}

// Points returns a copy of the dataset for k.
func Points(k Kind) []Point {
	src := datasets[k]
	out := make([]Point, len(src))
	copy(out, src)
	return out
}

// Max returns the largest value in points, or 0 when empty.
func Max(points []Point) float64 {
	var m float64
	for i, p := range points {
		if i == 0 || p.Value > m {
			m = p.Value
		}
	}
	return m
}

// Heights scales every point to [0, full] relative to the dataset maximum.
func Heights(points []Point, full int) []int {
	out := make([]int, len(points))
	top := Max(points)
	if top <= 0 {
		return out
	}
	for i, p := range points {
		out[i] = int(math.Round(p.Value / top * float64(full)))
	}
	return out
}

// Summary is the three statistics shown under the chart.
type Summary struct {
	Current     float64 `json:"current"`
	Average     float64 `json:"average"`
	GrowthPct   int     `json:"growth_pct"`
	MetricLabel string  `json:"metric_label"`
}

// Summarize computes the summary for a dataset. Average and growth are
// rounded to whole numbers.
func Summarize(k Kind) Summary {
	points := datasets[k]
	s := Summary{MetricLabel: k.Label()}
	if len(points) == 0 {
		return s
	}

	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	first, last := points[0].Value, points[len(points)-1].Value

	s.Current = last
	s.Average = math.Round(sum / float64(len(points)))
	if first != 0 {
		s.GrowthPct = int(math.Round((last - first) / first * 100))
	}
	return s
}

// FormatNumber renders a whole number with thousands separators.
func FormatNumber(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatGrowth renders a growth percentage with an explicit sign.
func FormatGrowth(pct int) string {
	if pct >= 0 {
		return fmt.Sprintf("+%d%%", pct)
	}
	return fmt.Sprintf("%d%%", pct)
}
