// Package page describes the composition of the showcase page: the fixed
// section order, the anchors the navigation bar jumps to, and the static
// copy of the header, graphic and footer.
package page

// SectionID identifies a section of the page.
type SectionID string

const (
	SectionNavigation        SectionID = "navigation"
	SectionHeader            SectionID = "header"
	SectionProblemSolution   SectionID = "problem-solution"
	SectionInteractiveDemo   SectionID = "interactive-demo"
	SectionDataVisualization SectionID = "data-visualization"
	SectionPerformance       SectionID = "performance-monitor"
	SectionFooter            SectionID = "footer"
)

// Order is the fixed top-to-bottom arrangement of the page.
var Order = []SectionID{
	SectionNavigation,
	SectionHeader,
	SectionProblemSolution,
	SectionInteractiveDemo,
	SectionDataVisualization,
	SectionPerformance,
	SectionFooter,
}

// Anchor is a navigation target.
type Anchor struct {
	ID    SectionID
	Label string
}

// Anchors lists the navigation targets in menu order.
var Anchors = []Anchor{
	{ID: SectionProblemSolution, Label: "Problem Solution"},
	{ID: SectionInteractiveDemo, Label: "Interactive Demo"},
	{ID: SectionDataVisualization, Label: "Data Visualization"},
	{ID: SectionPerformance, Label: "Performance Monitor"},
}

// LookupAnchor returns the anchor with the given id.
func LookupAnchor(id SectionID) (Anchor, bool) {
	for _, a := range Anchors {
		if a.ID == id {
			return a, true
		}
	}
	return Anchor{}, false
}

// Brand is the product name shown in the navigation bar.
const Brand = "Care Steward"

// Copy for the page header and footer.
const (
	Title       = "Professional UI Component Showcase"
	Description = "A comprehensive collection of responsive, interactive components " +
		"demonstrating clean, professional terminal interfaces: a three-step graphic, " +
		"form handling, data visualization and live monitoring."
	FooterText = "Built with Go, Bubble Tea, and Lip Gloss"
)

// Tone selects the colour scheme of a graphic step.
type Tone int

const (
	ToneChallenge Tone = iota
	ToneBrand
	ToneSolution
)

// Step is one stage of the problem-solution graphic.
type Step struct {
	Title       string
	Description string
	Icon        string
	Tone        Tone
}

// Steps are the three stages of the problem-solution graphic, in order.
var Steps = []Step{
	{Title: "Your Challenge", Description: "Overwhelm & Confusion", Icon: "⚠", Tone: ToneChallenge},
	{Title: "Our Expertise", Description: "Expertise & Guidance", Icon: "⛨", Tone: ToneBrand},
	{Title: "Your Solution", Description: "Clarity & Peace of Mind", Icon: "✔", Tone: ToneSolution},
}
