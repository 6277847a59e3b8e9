package ingest

import (
	"context"
	_ "embed"

	"debtscope/internal/model"
)

//go:embed dataset.json
var embeddedDataset []byte

// EmbeddedSource serves the resident ledger snapshot compiled into the
// binary. It is the default source: the data is always available and a
// refresh re-synthesizes the same rows.
type EmbeddedSource struct{}

// Name identifies the embedded dataset.
func (EmbeddedSource) Name() string { return "embedded ledger" }

// Load decodes the embedded rows.
func (EmbeddedSource) Load(_ context.Context) ([]model.RawRecord, error) {
	return decodeRecords(embeddedDataset)
}
