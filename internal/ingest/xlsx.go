package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"debtscope/internal/common"
	"debtscope/internal/model"
)

// XLSXSource reads raw rows from the first sheet of a spreadsheet export.
// The header row is matched verbatim against the raw-record contract, so
// the padded " Total " header variant maps to its own column.
type XLSXSource struct {
	Path string
}

// Name identifies the source file.
func (s XLSXSource) Name() string { return filepath.Base(s.Path) }

// Load opens the workbook and converts every data row. Cell values arrive
// as strings; downstream parsing handles their coercion, so no cell is
// rejected here.
func (s XLSXSource) Load(_ context.Context) ([]model.RawRecord, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close spreadsheet", "path", s.Path, "error", closeErr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.ErrEmptySource
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, common.ErrEmptySource
	}

	header := rows[0]
	records := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(header, row))
	}

	slog.Info("Loaded spreadsheet",
		"path", s.Path,
		"sheet", sheets[0],
		"rows", len(records))
	return records, nil
}

// recordFromRow maps one sheet row onto the raw-record contract by header
// name. Headers are matched exactly: the padded " Total " column is a
// distinct field, not a trimmed duplicate.
func recordFromRow(header, row []string) model.RawRecord {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	var rec model.RawRecord
	for i, name := range header {
		switch name {
		case "EMPRESA":
			rec.Company = cell(i)
		case "Nome do Débito":
			rec.DebtName = cell(i)
		case "Competência":
			rec.Competence = cell(i)
		case "Vencimento Original":
			rec.DueDate = cell(i)
		case "Principal":
			rec.Principal = cell(i)
		case "Multa":
			rec.Penalty = cell(i)
		case "Juros":
			rec.Interest = cell(i)
		case "Total":
			rec.Total = cell(i)
		case " Total ":
			rec.TotalPadded = cell(i)
		case "Situação":
			rec.Status = cell(i)
		case "Column10":
			rec.Extra = cell(i)
		}
	}
	return rec
}
