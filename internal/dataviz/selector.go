package dataviz

// Selector tracks which dataset the chart shows. The zero value selects
// Revenue.
type Selector struct {
	index int
}

// Selected returns the current dataset.
func (s Selector) Selected() Kind {
	return Kinds[s.index]
}

// Select switches to k. Unknown kinds are ignored.
func (s Selector) Select(k Kind) Selector {
	for i, kind := range Kinds {
		if kind == k {
			s.index = i
		}
	}
	return s
}

// Next selects the following dataset, wrapping around.
func (s Selector) Next() Selector {
	s.index = (s.index + 1) % len(Kinds)
	return s
}

// Prev selects the preceding dataset, wrapping around.
func (s Selector) Prev() Selector {
	s.index = (s.index - 1 + len(Kinds)) % len(Kinds)
	return s
}
