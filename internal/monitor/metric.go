package monitor

import (
	"fmt"
	"strconv"
)

// Status is the health classification of a metric.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Trend is the recent direction of a metric.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Arrow returns the glyph rendered next to a metric value.
func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "↗"
	case TrendDown:
		return "↘"
	default:
		return "→"
	}
}

// Metric is one named reading on the performance panel.
type Metric struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Status Status  `json:"status"`
	Trend  Trend   `json:"trend"`
}

// Snapshot is the complete, ordered set of metrics at one point in time.
type Snapshot []Metric

// Names returns the metric names in order.
func (s Snapshot) Names() []string {
	names := make([]string, len(s))
	for i, m := range s {
		names[i] = m.Name
	}
	return names
}

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

// Metric names on the panel.
const (
	ResponseTime        = "Response Time"
	CPUUsage            = "CPU Usage"
	MemoryUsage         = "Memory Usage"
	ErrorRate           = "Error Rate"
	ActiveUsers         = "Active Users"
	DatabaseConnections = "Database Connections"
)

// InitialSnapshot returns the six metrics the panel starts with.
func InitialSnapshot() Snapshot {
	return Snapshot{
		{Name: ResponseTime, Value: 245, Unit: "ms", Status: StatusHealthy, Trend: TrendDown},
		{Name: CPUUsage, Value: 68, Unit: "%", Status: StatusWarning, Trend: TrendUp},
		{Name: MemoryUsage, Value: 45, Unit: "%", Status: StatusHealthy, Trend: TrendStable},
		{Name: ErrorRate, Value: 0.2, Unit: "%", Status: StatusHealthy, Trend: TrendDown},
		{Name: ActiveUsers, Value: 1247, Unit: "", Status: StatusHealthy, Trend: TrendUp},
		{Name: DatabaseConnections, Value: 89, Unit: "", Status: StatusWarning, Trend: TrendUp},
	}
}

// NominalMax is the value that fills a metric's progress bar.
func NominalMax(name string) float64 {
	if name == ResponseTime {
		return 500
	}
	return 100
}

// Progress returns the progress-bar fill for m as a percentage in [0, 100].
func Progress(m Metric) float64 {
	pct := m.Value / NominalMax(m.Name) * 100
	switch {
	case pct > 100:
		return 100
	case pct < 0:
		return 0
	default:
		return pct
	}
}

// Precision is the number of decimals shown for a metric.
func Precision(name string) int {
	if name == ErrorRate {
		return 1
	}
	return 0
}

// FormatValue renders the metric value with its display precision.
func FormatValue(m Metric) string {
	return strconv.FormatFloat(m.Value, 'f', Precision(m.Name), 64)
}

// String renders "Name: value unit arrow (status)".
func (m Metric) String() string {
	v := FormatValue(m)
	if m.Unit != "" {
		v += m.Unit
	}
	return fmt.Sprintf("%s: %s %s (%s)", m.Name, v, m.Trend.Arrow(), m.Status)
}
