package monitor

// DefaultHistorySize is the number of past values kept per metric.
const DefaultHistorySize = 30

// history keeps the most recent values of each metric, oldest first.
type history struct {
	size   int
	series map[string][]float64
}

func newHistory(size int, initial Snapshot) *history {
	h := &history{size: size, series: make(map[string][]float64, len(initial))}
	h.record(initial)
	return h
}

func (h *history) record(s Snapshot) {
	for _, m := range s {
		values := append(h.series[m.Name], m.Value)
		if len(values) > h.size {
			values = values[len(values)-h.size:]
		}
		h.series[m.Name] = values
	}
}

func (h *history) get(name string) []float64 {
	values := h.series[name]
	out := make([]float64, len(values))
	copy(out, values)
	return out
}
