package tui

import tea "github.com/charmbracelet/bubbletea"

// --- Component change messages ---
//
// The contact flow and the metrics feed run their timers off the event
// loop. Each exposes a coalescing change channel; these commands turn one
// wake-up into a message and are re-armed by the receiving model.

type flowChangedMsg struct{}

type feedChangedMsg struct{}

// waitForChange blocks on ch and returns msg once it fires. A closed
// channel (component torn down) yields nil, which ends the loop.
func waitForChange(ch <-chan struct{}, msg tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return msg
	}
}
