package tui

import "debtscope/internal/model"

// recordsLoadedMsg carries the result of loading raw records from a source.
type recordsLoadedMsg struct {
	err     error
	records []model.RawRecord
}

// statusClearedMsg clears a transient status line after a delay.
type statusClearedMsg struct{}
