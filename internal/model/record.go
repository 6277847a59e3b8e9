// Package model defines the canonical entity model for the fiscal debt
// ledger: the raw row contract shared with every ingestion source and the
// normalized debt entity consumed by the derivation pipeline.
package model

// RawRecord is a single loosely-typed row as it arrives from the ledger
// source. Field names mirror the source headers verbatim; that mapping is
// the only external data contract and must be preserved by any ingestion
// replacement, including the whitespace-padded " Total " header variant
// some exports produce.
//
// Monetary fields arrive as either numbers or free-text strings, so they
// are typed as any and coerced later by parse.Monetary.
type RawRecord struct {
	Company     string `json:"EMPRESA"`
	DebtName    string `json:"Nome do Débito"`
	Competence  string `json:"Competência"`
	DueDate     string `json:"Vencimento Original"`
	Principal   any    `json:"Principal"`
	Penalty     any    `json:"Multa"`
	Interest    any    `json:"Juros"`
	Total       any    `json:"Total"`
	TotalPadded any    `json:" Total "`
	Status      string `json:"Situação"`
	Extra       string `json:"Column10,omitempty"`
}

// ResolvedTotal returns the row's total, preferring the padded-header
// variant when it carries a usable value.
func (r RawRecord) ResolvedTotal() any {
	switch v := r.TotalPadded.(type) {
	case nil:
		return r.Total
	case string:
		if v == "" {
			return r.Total
		}
	case float64:
		if v == 0 {
			return r.Total
		}
	}
	return r.TotalPadded
}
