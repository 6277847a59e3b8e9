package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadRecords loads raw records from the configured source.
func (m Model) loadRecords() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		records, err := m.source.Load(ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

// clearStatusAfter clears the transient status line once the delay elapses.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearedMsg{}
	})
}
