// Package ingest loads raw ledger rows from their source. The raw-record
// field contract (see model.RawRecord) is the only external data shape;
// every source here produces it verbatim, including tolerance for the
// whitespace-padded " Total " header variant.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"debtscope/internal/common"
	"debtscope/internal/model"
)

// Source supplies raw ledger rows. Loads are the system's only
// asynchronous operation; implementations must be side-effect free so a
// refresh re-synthesizes the same rows.
type Source interface {
	// Load returns the raw rows in source order.
	Load(ctx context.Context) ([]model.RawRecord, error)
	// Name identifies the source for logs and status lines.
	Name() string
}

// Open resolves a source for the given path by extension. An empty path
// yields the embedded resident dataset.
func Open(path string) (Source, error) {
	if path == "" {
		return EmbeddedSource{}, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONSource{Path: path}, nil
	case ".xlsx":
		return XLSXSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, path)
	}
}
