package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debtscope/internal/model"
)

// fixture returns a ledger loaded with a small canonical set spanning two
// companies, several types and statuses, an unparseable due date, and an
// installment-origin row.
func fixture(t *testing.T) *Ledger {
	t.Helper()
	l := New(10)
	require.True(t, l.BeginLoad())
	l.CompleteLoad([]model.DebtEntity{
		{ID: "debt-0", Company: "Acme", DebtName: "IRPJ 2024", DueDate: "01/15/24", Total: 1500, Status: model.StatusOverdue, Type: model.TypeIRPJ},
		{ID: "debt-1", Company: "Acme", DebtName: "ISS abril", DueDate: "05/10/24", Total: 300, Status: model.StatusUpcoming, Type: model.TypeISS},
		{ID: "debt-2", Company: "Beta", DebtName: "COFINS janeiro", DueDate: "02/23/24", Total: 700, Status: model.StatusOverdue, Type: model.TypeCOFINS},
		{ID: "debt-3", Company: "Beta", DebtName: "Multa regulatória", DueDate: "sem data", Total: 50, Status: model.StatusOverdue, Type: model.TypeOther},
		{ID: "debt-4", Company: "Acme", DebtName: "CSLL 2023", DueDate: "01/31/24", Total: 900, Status: model.StatusPaid, Type: model.TypeCSLL},
		{ID: "debt-5", Company: "Acme", DebtName: "ISS 2021", DueDate: "01/10/22", Total: 200, Status: model.StatusInstallmentOrigin, Type: model.TypeISS},
	})
	return l
}

func ids(entities []model.DebtEntity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

func TestFilterExcludesOriginRows(t *testing.T) {
	l := fixture(t)
	snap := l.Snapshot()

	assert.NotContains(t, ids(snap.Filtered), "debt-5")
	assert.Len(t, snap.Filtered, 5)
}

func TestFilterSearchMatchesCompanyOrDebtName(t *testing.T) {
	l := fixture(t)

	l.SetSearch("beta")
	assert.ElementsMatch(t, []string{"debt-2", "debt-3"}, ids(l.Snapshot().Filtered))

	l.SetSearch("iss")
	assert.ElementsMatch(t, []string{"debt-1"}, ids(l.Snapshot().Filtered))

	l.SetSearch("")
	assert.Len(t, l.Snapshot().Filtered, 5)
}

func TestFilterDateRange(t *testing.T) {
	l := fixture(t)

	// Inclusive on both bounds.
	l.SetDateRange("2024-01-15", "2024-02-23")
	assert.ElementsMatch(t, []string{"debt-0", "debt-2", "debt-4"}, ids(l.Snapshot().Filtered))

	// Any active bound excludes entities without a parseable due date.
	l.SetDateRange("2024-01-01", "")
	got := ids(l.Snapshot().Filtered)
	assert.NotContains(t, got, "debt-3")
	assert.ElementsMatch(t, []string{"debt-0", "debt-1", "debt-2", "debt-4"}, got)

	l.SetDateRange("", "")
	assert.Contains(t, ids(l.Snapshot().Filtered), "debt-3")
}

func TestFilterStatusAndType(t *testing.T) {
	l := fixture(t)

	l.SetStatusFilter([]model.Status{model.StatusOverdue})
	assert.ElementsMatch(t, []string{"debt-0", "debt-2", "debt-3"}, ids(l.Snapshot().Filtered))

	l.SetTypeFilter([]model.DebtType{model.TypeIRPJ, model.TypeCOFINS})
	assert.ElementsMatch(t, []string{"debt-0", "debt-2"}, ids(l.Snapshot().Filtered))

	l.SetChartType(model.TypeIRPJ)
	assert.ElementsMatch(t, []string{"debt-0"}, ids(l.Snapshot().Filtered))
}

func TestFilterIsPureConjunction(t *testing.T) {
	l := fixture(t)
	base := len(l.Snapshot().Filtered)

	// Narrowing one dimension never increases the count.
	l.SetStatusFilter([]model.Status{model.StatusOverdue})
	afterStatus := len(l.Snapshot().Filtered)
	assert.LessOrEqual(t, afterStatus, base)

	l.SetTypeFilter([]model.DebtType{model.TypeIRPJ})
	afterType := len(l.Snapshot().Filtered)
	assert.LessOrEqual(t, afterType, afterStatus)

	// Clearing all dimensions reproduces the company-scoped set exactly.
	l.SetStatusFilter(nil)
	l.SetTypeFilter(nil)
	assert.Len(t, l.Snapshot().Filtered, base)
}

func TestFilterCompanyScope(t *testing.T) {
	l := fixture(t)

	l.SetActiveCompany("Beta", false)
	assert.ElementsMatch(t, []string{"debt-0", "debt-1", "debt-4"}, ids(l.Snapshot().Filtered))

	l.SetAllCompanies(false)
	assert.Empty(t, l.Snapshot().Filtered)

	l.SetAllCompanies(true)
	assert.Len(t, l.Snapshot().Filtered, 5)
}

func TestSortByDueDate(t *testing.T) {
	l := fixture(t)

	snap := l.Snapshot()
	require.Equal(t, SortSpec{Key: SortByDueDate, Ascending: true}, snap.Sort)
	// Unparseable due date pins to epoch zero and sorts first ascending.
	assert.Equal(t, []string{"debt-3", "debt-0", "debt-4", "debt-2", "debt-1"}, ids(snap.Sorted))

	l.SetSort(SortByDueDate)
	snap = l.Snapshot()
	assert.False(t, snap.Sort.Ascending)
	assert.Equal(t, []string{"debt-1", "debt-2", "debt-4", "debt-0", "debt-3"}, ids(snap.Sorted))
}

func TestSortNumericAndString(t *testing.T) {
	l := fixture(t)

	l.SetSort(SortByTotal)
	assert.Equal(t, []string{"debt-3", "debt-1", "debt-2", "debt-4", "debt-0"}, ids(l.Snapshot().Sorted))

	l.SetSort(SortByCompany)
	got := ids(l.Snapshot().Sorted)
	// Acme rows keep their relative order, then Beta rows keep theirs.
	assert.Equal(t, []string{"debt-0", "debt-1", "debt-4", "debt-2", "debt-3"}, got)
}

func TestSortStableAndRoundTrips(t *testing.T) {
	l := fixture(t)
	l.SetSort(SortByTotal)
	asc := ids(l.Snapshot().Sorted)

	l.SetSort(SortByTotal) // toggle to descending
	desc := ids(l.Snapshot().Sorted)
	for i, id := range asc {
		assert.Equal(t, id, desc[len(desc)-1-i])
	}

	l.SetSort(SortByTotal) // back to ascending
	assert.Equal(t, asc, ids(l.Snapshot().Sorted))
}

func TestSortTiesPreserveOrder(t *testing.T) {
	l := New(10)
	require.True(t, l.BeginLoad())
	l.CompleteLoad([]model.DebtEntity{
		{ID: "debt-0", Company: "Acme", DebtName: "a", Total: 10, Status: model.StatusOverdue},
		{ID: "debt-1", Company: "Acme", DebtName: "b", Total: 10, Status: model.StatusOverdue},
		{ID: "debt-2", Company: "Acme", DebtName: "c", Total: 5, Status: model.StatusOverdue},
	})

	l.SetSort(SortByTotal)
	assert.Equal(t, []string{"debt-2", "debt-0", "debt-1"}, ids(l.Snapshot().Sorted))

	l.SetSort(SortByTotal) // descending: ties still in source order
	assert.Equal(t, []string{"debt-0", "debt-1", "debt-2"}, ids(l.Snapshot().Sorted))
}

func TestPaginationRoundTrip(t *testing.T) {
	l := fixture(t)
	l.SetPageSize(2)

	snap := l.Snapshot()
	require.Equal(t, 3, snap.TotalPages)

	var all []string
	for page := 1; page <= snap.TotalPages; page++ {
		l.SetPage(page)
		all = append(all, ids(l.Snapshot().Page)...)
	}

	assert.Equal(t, ids(snap.Sorted), all)
}

func TestPaginationBounds(t *testing.T) {
	l := fixture(t)
	l.SetPageSize(2)

	l.SetPage(99)
	assert.Empty(t, l.Snapshot().Page)

	l.SetPage(0)
	assert.Equal(t, 1, l.Snapshot().Pagination.Page)
}

func TestKPIs(t *testing.T) {
	l := fixture(t)
	snap := l.Snapshot()

	// Active debt spans overdue and upcoming; paid rows are excluded.
	assert.InDelta(t, 2550, snap.KPIs.TotalDebt, 1e-9)
	assert.InDelta(t, 2250, snap.KPIs.OverdueDebt, 1e-9)
	assert.InDelta(t, 300, snap.KPIs.UpcomingDebt, 1e-9)
	assert.Equal(t, 5, snap.KPIs.TotalCount)
	assert.Equal(t, 0, snap.KPIs.ActiveFilterCount)
}

func TestActiveFilterCountDimensions(t *testing.T) {
	l := fixture(t)

	l.SetDateRange("2024-01-01", "")
	assert.Equal(t, 1, l.Snapshot().KPIs.ActiveFilterCount)

	l.SetStatusFilter([]model.Status{model.StatusOverdue, model.StatusUpcoming})
	assert.Equal(t, 2, l.Snapshot().KPIs.ActiveFilterCount)

	l.SetTypeFilter([]model.DebtType{model.TypeIRPJ})
	assert.Equal(t, 3, l.Snapshot().KPIs.ActiveFilterCount)

	l.SetActiveCompany("Beta", false)
	// Each dimension contributes at most one.
	assert.Equal(t, 4, l.Snapshot().KPIs.ActiveFilterCount)

	l.SetDateRange("", "")
	l.SetStatusFilter(nil)
	l.SetTypeFilter(nil)
	l.SetActiveCompany("Beta", true)
	assert.Equal(t, 0, l.Snapshot().KPIs.ActiveFilterCount)
}

func TestChartTotals(t *testing.T) {
	l := fixture(t)
	snap := l.Snapshot()

	var sum float64
	for _, v := range snap.TotalsByType {
		sum += v
	}
	var companySum float64
	for _, v := range snap.TotalsByCompany {
		companySum += v
	}

	var filteredSum float64
	for _, e := range snap.Filtered {
		filteredSum += e.Total
	}
	assert.InDelta(t, filteredSum, sum, 1e-9)
	assert.InDelta(t, filteredSum, companySum, 1e-9)
	assert.InDelta(t, 1500, snap.TotalsByType[model.TypeIRPJ], 1e-9)
	assert.InDelta(t, 2700, snap.TotalsByCompany["Acme"], 1e-9)
}

func TestUniverses(t *testing.T) {
	l := fixture(t)
	snap := l.Snapshot()

	assert.Equal(t, []string{"Acme", "Beta"}, snap.Companies)
	// The origin marker never surfaces as an option; bulk targets always do.
	assert.NotContains(t, snap.Statuses, model.StatusInstallmentOrigin)
	assert.Contains(t, snap.Statuses, model.StatusPaid)
	assert.Contains(t, snap.Statuses, model.StatusIgnored)
	assert.Contains(t, snap.Statuses, model.StatusOverdue)
	assert.Contains(t, snap.Types, model.TypeIRPJ)
}
