package ledger

import (
	"maps"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"debtscope/internal/model"
)

// Default pagination size when no configuration overrides it.
const DefaultPageSize = 10

// Ledger is the single holder of dashboard state. It is not safe for
// concurrent use: transitions are synchronous and each runs to completion
// before the next is accepted, matching the single event loop that drives
// it. Derived views are recomputed per Snapshot call from current state.
type Ledger struct {
	loading bool
	loaded  bool
	loadErr error

	entities  []model.DebtEntity
	companies []string // full company universe, sorted, rebuilt per load

	active          map[string]bool
	filters         FilterCriteria
	staged          FilterCriteria
	stagedCompanies map[string]bool

	sortSpec SortSpec
	page     PaginationSpec

	selected map[string]bool
	expanded map[string]bool

	collator *collate.Collator
}

// New returns a ledger with default criteria: due-date ascending sort,
// first page at the given size, no filters, empty scope until a load
// establishes the company universe.
func New(pageSize int) *Ledger {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Ledger{
		active:          make(map[string]bool),
		stagedCompanies: make(map[string]bool),
		sortSpec:        SortSpec{Key: SortByDueDate, Ascending: true},
		page:            PaginationSpec{Page: 1, PageSize: pageSize},
		selected:        make(map[string]bool),
		expanded:        make(map[string]bool),
		collator:        collate.New(language.BrazilianPortuguese),
	}
}

// ---------------------------------------------------------------------------
// Load lifecycle
// ---------------------------------------------------------------------------

// BeginLoad marks a load as outstanding. It refuses a second request while
// one is in flight; callers disable the triggering action while Loading()
// is true. Previously derived views remain stable until the load completes.
func (l *Ledger) BeginLoad() bool {
	if l.loading {
		return false
	}
	l.loading = true
	return true
}

// CompleteLoad atomically replaces the canonical entity set and the company
// universe, resets the company scope to the full universe, and clears the
// selection. Applied filters, sort, and pagination survive a refresh.
func (l *Ledger) CompleteLoad(entities []model.DebtEntity) {
	l.loading = false
	l.loaded = true
	l.loadErr = nil
	l.entities = entities
	l.companies = companyUniverse(entities)

	l.active = make(map[string]bool, len(l.companies))
	l.stagedCompanies = make(map[string]bool, len(l.companies))
	for _, c := range l.companies {
		l.active[c] = true
		l.stagedCompanies[c] = true
	}
	l.selected = make(map[string]bool)
}

// FailLoad records a load failure. The last good canonical set stays in
// place so a refresh failure never blanks the ledger; LoadError exposes the
// cause until the next successful load.
func (l *Ledger) FailLoad(err error) {
	l.loading = false
	l.loadErr = err
}

// Loading reports whether a load is outstanding.
func (l *Ledger) Loading() bool { return l.loading }

// Loaded reports whether at least one load has completed.
func (l *Ledger) Loaded() bool { return l.loaded }

// LoadError returns the failure of the most recent load, if any.
func (l *Ledger) LoadError() error { return l.loadErr }

// ---------------------------------------------------------------------------
// Sort, pagination, applied filters
// ---------------------------------------------------------------------------

// SetSort selects the sort key. Re-selecting the active key toggles
// direction; a new key resets to ascending. Either way the page resets and
// the selection clears, since the visible row set materially changes.
func (l *Ledger) SetSort(key SortKey) {
	if l.sortSpec.Key == key {
		l.sortSpec.Ascending = !l.sortSpec.Ascending
	} else {
		l.sortSpec = SortSpec{Key: key, Ascending: true}
	}
	l.resetView()
}

// SetPage moves to a 1-based page. Selection persists across page moves so
// a bulk action can span pages.
func (l *Ledger) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	l.page.Page = page
}

// SetPageSize changes the page size, returning to page 1 and clearing the
// selection.
func (l *Ledger) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	l.page = PaginationSpec{Page: 1, PageSize: size}
	l.clearSelection()
}

// SetSearch edits the free-text search live against the applied criteria.
func (l *Ledger) SetSearch(term string) {
	l.filters.Search = term
	l.resetView()
}

// SetDateRange sets the applied due-date bounds ("2006-01-02", empty for
// unbounded).
func (l *Ledger) SetDateRange(start, end string) {
	l.filters.StartDate = start
	l.filters.EndDate = end
	l.resetView()
}

// SetStatusFilter replaces the applied status set. This is also the quick
// filter path: presets apply a single-status set directly.
func (l *Ledger) SetStatusFilter(statuses []model.Status) {
	l.filters.Statuses = statuses
	l.resetView()
}

// SetTypeFilter replaces the applied type set.
func (l *Ledger) SetTypeFilter(types []model.DebtType) {
	l.filters.Types = types
	l.resetView()
}

// SetChartType toggles the chart-driven type constraint: selecting the
// already-active type clears it.
func (l *Ledger) SetChartType(t model.DebtType) {
	if l.filters.ChartType == t {
		l.filters.ChartType = ""
	} else {
		l.filters.ChartType = t
	}
	l.resetView()
}

// SetActiveCompany includes or excludes one company from the scope.
func (l *Ledger) SetActiveCompany(company string, included bool) {
	if included {
		l.active[company] = true
	} else {
		delete(l.active, company)
	}
	l.resetView()
}

// SetAllCompanies includes or excludes the whole company universe.
func (l *Ledger) SetAllCompanies(included bool) {
	l.active = make(map[string]bool, len(l.companies))
	if included {
		for _, c := range l.companies {
			l.active[c] = true
		}
	}
	l.resetView()
}

// resetView applies the shared side effect of every applied-criteria
// change: back to page 1 with an empty selection.
func (l *Ledger) resetView() {
	l.page.Page = 1
	l.clearSelection()
}

// ---------------------------------------------------------------------------
// Staged (drawer) criteria
// ---------------------------------------------------------------------------

// SyncStaged copies applied state into the staged copy, so drawer edits
// start from current reality. Idempotent and lossless.
func (l *Ledger) SyncStaged() {
	l.staged = l.filters.Clone()
	l.stagedCompanies = maps.Clone(l.active)
}

// Staged returns the staged criteria for editing surfaces.
func (l *Ledger) Staged() FilterCriteria { return l.staged.Clone() }

// SetStagedDateRange edits the staged due-date bounds only.
func (l *Ledger) SetStagedDateRange(start, end string) {
	l.staged.StartDate = start
	l.staged.EndDate = end
}

// SetStagedStatuses edits the staged status set only.
func (l *Ledger) SetStagedStatuses(statuses []model.Status) {
	l.staged.Statuses = statuses
}

// SetStagedTypes edits the staged type set only.
func (l *Ledger) SetStagedTypes(types []model.DebtType) {
	l.staged.Types = types
}

// SetStagedCompanies replaces the staged company selection.
func (l *Ledger) SetStagedCompanies(companies map[string]bool) {
	l.stagedCompanies = maps.Clone(companies)
}

// StagedCompanies returns a copy of the staged company selection.
func (l *Ledger) StagedCompanies() map[string]bool {
	return maps.Clone(l.stagedCompanies)
}

// ApplyStaged commits staged criteria and company scope to applied state.
// After apply, staged and applied are equal until the next edit.
func (l *Ledger) ApplyStaged() {
	l.filters = l.staged.Clone()
	l.active = maps.Clone(l.stagedCompanies)
	l.resetView()
}

// ClearStaged resets staged criteria to defaults, deliberately keeping the
// currently applied search term — free-text search is edited live and is
// not part of the staged/applied split — and restores the staged company
// selection to the full universe.
func (l *Ledger) ClearStaged() {
	l.staged = FilterCriteria{Search: l.filters.Search}
	l.stagedCompanies = make(map[string]bool, len(l.companies))
	for _, c := range l.companies {
		l.stagedCompanies[c] = true
	}
}

// ---------------------------------------------------------------------------
// Expansion, selection, bulk mutation
// ---------------------------------------------------------------------------

// ToggleExpand flips sub-row visibility for one entity, independent of all
// filtering and sorting.
func (l *Ledger) ToggleExpand(id string) {
	if l.expanded[id] {
		delete(l.expanded, id)
	} else {
		l.expanded[id] = true
	}
}

// ToggleSelect flips one entity's membership in the selection.
func (l *Ledger) ToggleSelect(id string) {
	if l.selected[id] {
		delete(l.selected, id)
	} else {
		l.selected[id] = true
	}
}

// ToggleSelectAllOnPage selects every id on the current page, or deselects
// them all when every one is already selected. Ids outside the page are
// untouched, so the global selection can span pages. Self-inverse for an
// unchanged page.
func (l *Ledger) ToggleSelectAllOnPage(pageIDs []string) {
	allSelected := len(pageIDs) > 0
	for _, id := range pageIDs {
		if !l.selected[id] {
			allSelected = false
			break
		}
	}
	for _, id := range pageIDs {
		if allSelected {
			delete(l.selected, id)
		} else {
			l.selected[id] = true
		}
	}
}

// ClearSelection empties the selection.
func (l *Ledger) ClearSelection() { l.clearSelection() }

func (l *Ledger) clearSelection() {
	if len(l.selected) > 0 {
		l.selected = make(map[string]bool)
	}
}

// SelectedCount returns the current selection size.
func (l *Ledger) SelectedCount() int { return len(l.selected) }

// BulkApply rewrites the status of every selected entity to the action's
// target status and clears the selection. The canonical slice is rebuilt so
// concurrent readers of a previous snapshot never observe a half-mutated
// list. This is the only mutation path for canonical entities outside a
// full reload.
func (l *Ledger) BulkApply(action BulkAction) {
	if len(l.selected) == 0 {
		return
	}
	target := action.Status()
	next := make([]model.DebtEntity, len(l.entities))
	for i, e := range l.entities {
		if l.selected[e.ID] {
			e.Status = target
		}
		next[i] = e
	}
	l.entities = next
	l.clearSelection()
}

// ---------------------------------------------------------------------------
// Universes
// ---------------------------------------------------------------------------

func companyUniverse(entities []model.DebtEntity) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entities {
		if e.Company == "" || seen[e.Company] {
			continue
		}
		seen[e.Company] = true
		out = append(out, e.Company)
	}
	sort.Strings(out)
	return out
}

// statusUniverse lists every observed status except the origin marker, and
// always includes the bulk-action targets so their filters stay reachable
// even before any entity carries them.
func statusUniverse(entities []model.DebtEntity) []model.Status {
	seen := map[model.Status]bool{
		model.StatusPaid:    true,
		model.StatusIgnored: true,
	}
	out := []model.Status{model.StatusPaid, model.StatusIgnored}
	for _, e := range entities {
		if e.Status == model.StatusInstallmentOrigin || seen[e.Status] {
			continue
		}
		seen[e.Status] = true
		out = append(out, e.Status)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func typeUniverse(entities []model.DebtEntity) []model.DebtType {
	seen := make(map[model.DebtType]bool)
	var out []model.DebtType
	for _, e := range entities {
		if seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		out = append(out, e.Type)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
