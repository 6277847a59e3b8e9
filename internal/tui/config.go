package tui

import (
	"debtscope/internal/common"
	"debtscope/internal/ingest"
	"debtscope/internal/ledger"
)

// Config holds TUI configuration.
type Config struct {
	Source   ingest.Source
	PageSize int
}

// validate checks the configuration before the program starts.
func (c *Config) validate() error {
	if c.Source == nil {
		return common.ErrEmptySource
	}
	if c.PageSize <= 0 {
		c.PageSize = ledger.DefaultPageSize
	}
	return nil
}
