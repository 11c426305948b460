package page

// ScrollThreshold is the offset, in lines, past which the navigation bar
// switches to its scrolled appearance.
const ScrollThreshold = 1

// CompactWidth is the terminal width below which the navigation bar
// collapses into a toggleable menu.
const CompactWidth = 80

// Nav is the state of the navigation bar.
type Nav struct {
	// Scrolled is true once the page has scrolled past ScrollThreshold.
	Scrolled bool
	// MenuOpen is true while the compact menu is expanded.
	MenuOpen bool
}

// OnScroll updates the scrolled flag for a new scroll offset.
func (n Nav) OnScroll(offset int) Nav {
	n.Scrolled = offset > ScrollThreshold
	return n
}

// ToggleMenu opens or closes the compact menu.
func (n Nav) ToggleMenu() Nav {
	n.MenuOpen = !n.MenuOpen
	return n
}

// Choose resolves the anchor at index i (0-based) and closes the menu.
// ok is false when i is out of range; the menu still closes.
func (n Nav) Choose(i int) (Nav, Anchor, bool) {
	n.MenuOpen = false
	if i < 0 || i >= len(Anchors) {
		return n, Anchor{}, false
	}
	return n, Anchors[i], true
}

// Compact reports whether the bar should render as a menu at this width.
func Compact(width int) bool {
	return width < CompactWidth
}

// Layout maps section ids to their starting line on the rendered page.
type Layout struct {
	offsets map[SectionID]int
	total   int
}

// NewLayout builds a Layout from section heights given in Order. Sections
// missing from heights take no space.
func NewLayout(heights map[SectionID]int) Layout {
	l := Layout{offsets: make(map[SectionID]int, len(Order))}
	for _, id := range Order {
		l.offsets[id] = l.total
		l.total += heights[id]
	}
	return l
}

// Offset returns the first line of a section.
func (l Layout) Offset(id SectionID) (int, bool) {
	off, ok := l.offsets[id]
	return off, ok
}

// Height returns the total number of lines on the page.
func (l Layout) Height() int {
	return l.total
}
