// Package normalize converts raw ledger rows into canonical debt entities:
// it classifies each debt's type from its display name, extracts
// installment-plan progress out of free text, and threads
// installment-origin rows under their parent plan as sub-rows.
package normalize

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"debtscope/internal/model"
	"debtscope/internal/parse"
)

// typeKeywords is the ordered, case-insensitive keyword table used to
// classify a debt's type from its display name. First match wins, so the
// order matters: labels may contain more than one matchable substring.
var typeKeywords = []struct {
	keyword string
	typ     model.DebtType
}{
	{"irpj", model.TypeIRPJ},
	{"csll", model.TypeCSLL},
	{"pis", model.TypePIS},
	{"cofins", model.TypeCOFINS},
	{"iss", model.TypeISS},
	{"parcelamento", model.TypeInstallment},
	{"fgts", model.TypeFGTS},
	{"iof", model.TypeIOF},
	{"contribuições", model.TypePayroll},
}

var (
	installmentCountsRe = regexp.MustCompile(`(\d+)/(\d+)`)
	totalValueRe        = regexp.MustCompile(`(?i)valor total R\$ ([\d.,]+)`)
	balanceRe           = regexp.MustCompile(`(?i)saldo devedor ([\d.,]+)`)
)

// Normalize converts raw rows into canonical entities, preserving
// first-seen order of top-level entities. Rows missing a company or debt
// name are structurally invalid and silently dropped. Deterministic for a
// given input order; ids are assigned sequentially across the valid rows.
func Normalize(rows []model.RawRecord) []model.DebtEntity {
	out := make([]model.DebtEntity, 0, len(rows))

	// lastPlan maps a company to the index in out of its most recently
	// normalized installment-plan entity, so origin-row attribution is a
	// single lookup instead of a backward rescan.
	lastPlan := make(map[string]int)
	dropped := 0
	nextID := 0

	for _, row := range rows {
		if row.Company == "" || row.DebtName == "" {
			dropped++
			continue
		}

		entity := model.DebtEntity{
			ID:                  fmt.Sprintf("debt-%d", nextID),
			Company:             strings.TrimSpace(row.Company),
			DebtName:            row.DebtName,
			Competence:          row.Competence,
			CompetenceFormatted: parse.Competence(row.Competence),
			DueDate:             row.DueDate,
			Principal:           parse.Monetary(row.Principal),
			Penalty:             parse.Monetary(row.Penalty),
			Interest:            parse.Monetary(row.Interest),
			Total:               parse.Monetary(row.ResolvedTotal()),
			Status:              model.Status(row.Status),
			Type:                ClassifyType(row.DebtName),
		}
		nextID++

		if entity.Type == model.TypeInstallment {
			entity.Installment = extractInstallment(row)
		}

		if entity.Status == model.StatusInstallmentOrigin {
			if idx, ok := lastPlan[entity.Company]; ok {
				out[idx].SubRows = append(out[idx].SubRows, entity)
				continue
			}
			// No prior plan for this company: keep the row top-level
			// rather than discard it.
		}

		out = append(out, entity)
		if entity.Type == model.TypeInstallment {
			lastPlan[entity.Company] = len(out) - 1
		}
	}

	if dropped > 0 {
		slog.Debug("Dropped structurally invalid rows",
			"dropped", dropped,
			"kept", nextID)
	}

	return out
}

// ClassifyType keyword-matches a debt display name against the ordered
// type table, defaulting to Outro.
func ClassifyType(name string) model.DebtType {
	lower := strings.ToLower(name)
	for _, entry := range typeKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.typ
		}
	}
	return model.TypeOther
}

// extractInstallment pulls installment progress out of a plan row's free
// text. The three extractions are independent pattern matches, so each
// field may be absent on its own. The remaining-balance pattern is also
// tried against the secondary free-text column when the debt name does not
// carry it.
func extractInstallment(row model.RawRecord) *model.InstallmentProgress {
	progress := &model.InstallmentProgress{}

	if m := installmentCountsRe.FindStringSubmatch(row.Competence); m != nil {
		if paid, err := strconv.Atoi(m[1]); err == nil {
			progress.PaidCount = &paid
		}
		if total, err := strconv.Atoi(m[2]); err == nil {
			progress.TotalCount = &total
		}
	}

	if m := totalValueRe.FindStringSubmatch(row.DebtName); m != nil {
		v := parse.Monetary(m[1])
		progress.TotalValue = &v
	}

	balanceMatch := balanceRe.FindStringSubmatch(row.DebtName)
	if balanceMatch == nil {
		balanceMatch = balanceRe.FindStringSubmatch(row.Extra)
	}
	if balanceMatch != nil {
		v := parse.Monetary(balanceMatch[1])
		progress.RemainingBalance = &v
	}

	return progress
}
