package ledger

import (
	"maps"

	"debtscope/internal/model"
)

// Snapshot is the read-only view handed to presentation collaborators on
// every state change. Filtered is the pre-pagination set (chart
// aggregation), Sorted adds the active ordering (total-count display), and
// Page is the visible slice. The universes back filter option lists.
type Snapshot struct {
	Loading   bool
	Loaded    bool
	LoadError error

	KPIs       KPIs
	Page       []model.DebtEntity
	Sorted     []model.DebtEntity
	Filtered   []model.DebtEntity
	TotalPages int

	Companies []string
	Statuses  []model.Status
	Types     []model.DebtType

	ActiveCompanies map[string]bool
	Filters         FilterCriteria
	Staged          FilterCriteria
	StagedCompanies map[string]bool
	Sort            SortSpec
	Pagination      PaginationSpec
	Selected        map[string]bool
	Expanded        map[string]bool

	TotalsByType    map[model.DebtType]float64
	TotalsByCompany map[string]float64
}

// Snapshot derives the current view from state: scope+filter, stable sort,
// page slice, and KPI aggregates, all as fresh values the caller may hold
// across later transitions.
func (l *Ledger) Snapshot() Snapshot {
	filtered := filterEntities(l.entities, l.active, l.filters)
	sorted := sortEntities(l.collator, filtered, l.sortSpec)
	page := paginate(sorted, l.page)
	byType, byCompany := totalsBy(filtered)

	return Snapshot{
		Loading:   l.loading,
		Loaded:    l.loaded,
		LoadError: l.loadErr,

		KPIs:       computeKPIs(filtered, l.filters, l.active, l.companies),
		Page:       page,
		Sorted:     sorted,
		Filtered:   filtered,
		TotalPages: totalPages(len(sorted), l.page.PageSize),

		Companies: append([]string(nil), l.companies...),
		Statuses:  statusUniverse(l.entities),
		Types:     typeUniverse(l.entities),

		ActiveCompanies: maps.Clone(l.active),
		Filters:         l.filters.Clone(),
		Staged:          l.staged.Clone(),
		StagedCompanies: maps.Clone(l.stagedCompanies),
		Sort:            l.sortSpec,
		Pagination:      l.page,
		Selected:        maps.Clone(l.selected),
		Expanded:        maps.Clone(l.expanded),

		TotalsByType:    byType,
		TotalsByCompany: byCompany,
	}
}

// PageIDs returns the entity ids on the current page, the unit the
// page-level select-all toggle operates on.
func (s Snapshot) PageIDs() []string {
	ids := make([]string, len(s.Page))
	for i, e := range s.Page {
		ids[i] = e.ID
	}
	return ids
}
