package ledger

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"

	"debtscope/internal/model"
	"debtscope/internal/parse"
)

// filterEntities applies the company scope and the conjunctive filter
// criteria. Installment-origin rows are never independently filterable
// rows, so they are excluded up front; orphaned origin rows stay in the
// canonical set for completeness but share the same exclusion.
func filterEntities(entities []model.DebtEntity, active map[string]bool, f FilterCriteria) []model.DebtEntity {
	start, hasStart := bound(f.StartDate)
	end, hasEnd := bound(f.EndDate)
	if hasEnd {
		// Inclusive upper bound: anything before midnight of the next day.
		end = end.AddDate(0, 0, 1)
	}
	search := strings.ToLower(f.Search)

	out := make([]model.DebtEntity, 0, len(entities))
	for _, e := range entities {
		if e.Status == model.StatusInstallmentOrigin {
			continue
		}
		if !active[e.Company] {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Company), search) &&
			!strings.Contains(strings.ToLower(e.DebtName), search) {
			continue
		}
		if f.DateBounded() {
			due, ok := parse.Date(e.DueDate)
			if !ok {
				continue
			}
			if hasStart && due.Before(start) {
				continue
			}
			if hasEnd && !due.Before(end) {
				continue
			}
		}
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, e.Status) {
			continue
		}
		if len(f.Types) > 0 && !containsType(f.Types, e.Type) {
			continue
		}
		if f.ChartType != "" && e.Type != f.ChartType {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsStatus(set []model.Status, s model.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsType(set []model.DebtType, t model.DebtType) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}

// sortEntities returns a stably sorted copy. Due dates compare by parsed
// timestamp with an unparseable date pinned to epoch zero (first under
// ascending order); monetary keys compare numerically; everything else uses
// the locale collator. Descending flips the comparison, not the slice, so
// tied keys keep their relative pre-sort order either way.
func sortEntities(c *collate.Collator, entities []model.DebtEntity, spec SortSpec) []model.DebtEntity {
	out := make([]model.DebtEntity, len(entities))
	copy(out, entities)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareEntities(c, out[i], out[j], spec.Key)
		if spec.Ascending {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

func compareEntities(c *collate.Collator, a, b model.DebtEntity, key SortKey) int {
	switch key {
	case SortByDueDate:
		return compareInt64(dueMillis(a.DueDate), dueMillis(b.DueDate))
	case SortByPrincipal:
		return compareFloat(a.Principal, b.Principal)
	case SortByPenalty:
		return compareFloat(a.Penalty, b.Penalty)
	case SortByInterest:
		return compareFloat(a.Interest, b.Interest)
	case SortByTotal:
		return compareFloat(a.Total, b.Total)
	case SortByCompany:
		return c.CompareString(a.Company, b.Company)
	case SortByDebtName:
		return c.CompareString(a.DebtName, b.DebtName)
	case SortByCompetence:
		return c.CompareString(a.Competence, b.Competence)
	case SortByStatus:
		return c.CompareString(string(a.Status), string(b.Status))
	case SortByType:
		return c.CompareString(string(a.Type), string(b.Type))
	default:
		return compareInt64(dueMillis(a.DueDate), dueMillis(b.DueDate))
	}
}

func dueMillis(s string) int64 {
	d, ok := parse.Date(s)
	if !ok {
		return 0
	}
	return d.UnixMilli()
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// paginate slices one 1-based page out of the sorted set.
func paginate(entities []model.DebtEntity, p PaginationSpec) []model.DebtEntity {
	size := p.PageSize
	if size < 1 {
		size = 1
	}
	start := (p.Page - 1) * size
	if start < 0 {
		start = 0
	}
	if start >= len(entities) {
		return nil
	}
	end := start + size
	if end > len(entities) {
		end = len(entities)
	}
	return entities[start:end]
}

func totalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	return (count + pageSize - 1) / pageSize
}

// KPIs are the aggregate figures computed over the filtered,
// pre-pagination set. Active debt is the sum over overdue and upcoming
// entities.
type KPIs struct {
	TotalDebt         float64
	OverdueDebt       float64
	UpcomingDebt      float64
	TotalCount        int
	ActiveFilterCount int
}

// computeKPIs aggregates the filtered set and counts the non-default
// filter dimensions: date range, status set, type set, and a company scope
// that is a strict subset of the universe. Each dimension contributes at
// most one regardless of how many values it holds.
func computeKPIs(filtered []model.DebtEntity, f FilterCriteria, active map[string]bool, universe []string) KPIs {
	k := KPIs{TotalCount: len(filtered)}
	for _, e := range filtered {
		switch e.Status {
		case model.StatusOverdue:
			k.TotalDebt += e.Total
			k.OverdueDebt += e.Total
		case model.StatusUpcoming:
			k.TotalDebt += e.Total
			k.UpcomingDebt += e.Total
		}
	}

	if f.DateBounded() {
		k.ActiveFilterCount++
	}
	if len(f.Statuses) > 0 {
		k.ActiveFilterCount++
	}
	if len(f.Types) > 0 {
		k.ActiveFilterCount++
	}
	if len(universe) > 0 && activeCount(active, universe) < len(universe) {
		k.ActiveFilterCount++
	}
	return k
}

func activeCount(active map[string]bool, universe []string) int {
	n := 0
	for _, c := range universe {
		if active[c] {
			n++
		}
	}
	return n
}

// totalsBy aggregates the filtered set's monetary totals per type and per
// company, feeding the breakdown charts.
func totalsBy(filtered []model.DebtEntity) (byType map[model.DebtType]float64, byCompany map[string]float64) {
	byType = make(map[model.DebtType]float64)
	byCompany = make(map[string]float64)
	for _, e := range filtered {
		byType[e.Type] += e.Total
		byCompany[e.Company] += e.Total
	}
	return byType, byCompany
}
