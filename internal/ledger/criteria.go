// Package ledger owns the dashboard's state machine: applied versus staged
// filter criteria, the active-company scope, sort/pagination/selection
// state, and the derivation pipeline that turns the canonical entity set
// into filtered, sorted, paginated views plus aggregate KPIs. All
// transitions are synchronous and run to completion; the only asynchronous
// operation is the canonical load, modeled as an explicit
// begin/complete/fail lifecycle.
package ledger

import (
	"slices"
	"time"

	"debtscope/internal/model"
)

// SortKey names an entity field used for ordering.
type SortKey string

// Sortable entity fields.
const (
	SortByCompany    SortKey = "company"
	SortByDebtName   SortKey = "debtName"
	SortByCompetence SortKey = "competence"
	SortByDueDate    SortKey = "dueDate"
	SortByPrincipal  SortKey = "principal"
	SortByPenalty    SortKey = "penalty"
	SortByInterest   SortKey = "interest"
	SortByTotal      SortKey = "total"
	SortByStatus     SortKey = "status"
	SortByType       SortKey = "type"
)

// SortSpec is the active sort key plus direction.
type SortSpec struct {
	Key       SortKey
	Ascending bool
}

// PaginationSpec is a 1-based page plus page size.
type PaginationSpec struct {
	Page     int
	PageSize int
}

// BulkAction is a status transition applied to every selected entity.
type BulkAction string

// Supported bulk actions.
const (
	BulkMarkPaid    BulkAction = "paid"
	BulkMarkIgnored BulkAction = "ignore"
)

// Status returns the status label a bulk action rewrites to.
func (a BulkAction) Status() model.Status {
	if a == BulkMarkPaid {
		return model.StatusPaid
	}
	return model.StatusIgnored
}

// FilterCriteria is one copy of the filter-like state. Two copies exist at
// all times: the applied set drives every derived view, the staged set
// backs the filter drawer until committed. Date bounds are inclusive
// "2006-01-02" strings; empty means unbounded. Empty label sets mean no
// constraint. ChartType is an additional AND constraint toggled from the
// type chart, independent of the multi-select type filter.
type FilterCriteria struct {
	Search    string
	StartDate string
	EndDate   string
	Statuses  []model.Status
	Types     []model.DebtType
	ChartType model.DebtType
}

// Clone returns a deep copy so staged edits never alias applied slices.
func (f FilterCriteria) Clone() FilterCriteria {
	f.Statuses = slices.Clone(f.Statuses)
	f.Types = slices.Clone(f.Types)
	return f
}

// DateBounded reports whether any due-date bound is set.
func (f FilterCriteria) DateBounded() bool {
	return f.StartDate != "" || f.EndDate != ""
}

// bound parses a "2006-01-02" filter bound. A malformed bound contributes
// no constraint, but its mere presence still triggers the rule that
// entities without a parseable due date are excluded.
func bound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
