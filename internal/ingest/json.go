package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"debtscope/internal/model"
)

// JSONSource reads raw rows from a JSON array file. Monetary fields may be
// numbers or strings; both decode into the record's loose fields.
type JSONSource struct {
	Path string
}

// Name identifies the source file.
func (s JSONSource) Name() string { return filepath.Base(s.Path) }

// Load reads and decodes the whole file.
func (s JSONSource) Load(_ context.Context) ([]model.RawRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	return decodeRecords(data)
}

func decodeRecords(data []byte) ([]model.RawRecord, error) {
	var records []model.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode ledger rows: %w", err)
	}
	return records, nil
}
