package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"debtscope/internal/common"
	"debtscope/internal/ingest"
	"debtscope/internal/ledger"
	"debtscope/internal/model"
	"debtscope/internal/normalize"
)

// mode is the input focus of the TUI.
type mode int

const (
	modeTable mode = iota
	modeSearch
	modeDrawer
	modeHelp
)

// sortCycle is the column order the sort key steps through.
var sortCycle = []ledger.SortKey{
	ledger.SortByCompany,
	ledger.SortByDebtName,
	ledger.SortByCompetence,
	ledger.SortByDueDate,
	ledger.SortByPrincipal,
	ledger.SortByPenalty,
	ledger.SortByInterest,
	ledger.SortByTotal,
	ledger.SortByStatus,
	ledger.SortByType,
}

// Model holds the main TUI state.
type Model struct {
	ledger  *ledger.Ledger
	source  ingest.Source
	snap    ledger.Snapshot
	theme   Theme
	keymap  KeyMap
	mode    mode
	cursor  int
	width   int
	height  int
	status  string
	spinner spinner.Model
	search  textinput.Model
	drawer  drawerModel
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	led := ledger.New(cfg.PageSize)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = DefaultTheme.Selected

	search := textinput.New()
	search.Placeholder = "empresa ou débito"
	search.Prompt = "/ "
	search.CharLimit = 80

	return Model{
		ledger:  led,
		source:  cfg.Source,
		snap:    led.Snapshot(),
		theme:   DefaultTheme,
		keymap:  DefaultKeyMap(),
		spinner: sp,
		search:  search,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.ledger.BeginLoad()
	return tea.Batch(tea.EnterAltScreen, m.spinner.Tick, m.loadRecords())
}

// refresh recomputes the snapshot and clamps the cursor to the page.
func (m *Model) refresh() {
	m.snap = m.ledger.Snapshot()
	if n := len(m.snap.Page); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case recordsLoadedMsg:
		if msg.err != nil {
			m.ledger.FailLoad(msg.err)
			common.LogError(msg.err, "failed to load ledger source", common.Fields{"source": m.source.Name()})
			m.status = fmt.Sprintf("falha ao carregar: %v", msg.err)
			m.refresh()
			return m, clearStatusAfter(5 * time.Second)
		}
		m.ledger.CompleteLoad(normalize.Normalize(msg.records))
		m.refresh()
		return m, nil

	case statusClearedMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDrawer:
			return m.updateDrawer(msg)
		case modeHelp:
			m.mode = modeTable
			return m, nil
		default:
			return m.updateTable(msg)
		}
	}

	return m, nil
}

// updateTable handles keys while the table has focus.
func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keymap

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(msg, km.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, km.Down):
		if m.cursor < len(m.snap.Page)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, km.PrevPage):
		m.ledger.SetPage(m.snap.Pagination.Page - 1)
		m.refresh()
		return m, nil

	case key.Matches(msg, km.NextPage):
		m.ledger.SetPage(m.snap.Pagination.Page + 1)
		m.refresh()
		return m, nil

	case key.Matches(msg, km.GrowPage):
		m.ledger.SetPageSize(m.snap.Pagination.PageSize + 5)
		m.refresh()
		return m, nil

	case key.Matches(msg, km.ShrinkPage):
		if size := m.snap.Pagination.PageSize - 5; size >= 5 {
			m.ledger.SetPageSize(size)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, km.ToggleSelect):
		if e, ok := m.rowUnderCursor(); ok {
			m.ledger.ToggleSelect(e.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, km.SelectPage):
		m.ledger.ToggleSelectAllOnPage(m.snap.PageIDs())
		m.refresh()
		return m, nil

	case key.Matches(msg, km.ClearSelect):
		m.ledger.ClearSelection()
		m.refresh()
		return m, nil

	case key.Matches(msg, km.Expand):
		if e, ok := m.rowUnderCursor(); ok && len(e.SubRows) > 0 {
			m.ledger.ToggleExpand(e.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, km.MarkPaid):
		return m.bulk(ledger.BulkMarkPaid)

	case key.Matches(msg, km.MarkIgnored):
		return m.bulk(ledger.BulkMarkIgnored)

	case key.Matches(msg, km.NextSortKey):
		m.ledger.SetSort(nextSortKey(m.snap.Sort.Key))
		m.refresh()
		return m, nil

	case key.Matches(msg, km.FlipSort):
		m.ledger.SetSort(m.snap.Sort.Key)
		m.refresh()
		return m, nil

	case key.Matches(msg, km.Search):
		m.mode = modeSearch
		m.search.SetValue(m.snap.Filters.Search)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, km.Filters):
		m.ledger.SyncStaged()
		m.drawer = newDrawer(m.ledger, m.theme)
		m.mode = modeDrawer
		return m, nil

	case key.Matches(msg, km.QuickOverdue):
		return m.quickStatus(model.StatusOverdue)

	case key.Matches(msg, km.QuickUpcoming):
		return m.quickStatus(model.StatusUpcoming)

	case key.Matches(msg, km.QuickPaid):
		return m.quickStatus(model.StatusPaid)

	case key.Matches(msg, km.QuickIgnored):
		return m.quickStatus(model.StatusIgnored)

	case key.Matches(msg, km.CycleChart):
		m.ledger.SetChartType(nextChartType(m.snap.Types, m.snap.Filters.ChartType))
		m.refresh()
		return m, nil

	case key.Matches(msg, km.Refresh):
		if !m.ledger.BeginLoad() {
			m.status = common.ErrLoadInProgress.Error()
			return m, clearStatusAfter(2 * time.Second)
		}
		m.refresh()
		return m, m.loadRecords()
	}

	return m, nil
}

// updateSearch handles keys while the search input has focus. The applied
// term tracks every keystroke, matching a live search box.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeTable
		m.search.Blur()
		return m, nil
	case "esc":
		m.mode = modeTable
		m.search.Blur()
		m.search.SetValue("")
		m.ledger.SetSearch("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ledger.SetSearch(m.search.Value())
	m.refresh()
	return m, cmd
}

// bulk applies a status transition to the selection.
func (m Model) bulk(action ledger.BulkAction) (tea.Model, tea.Cmd) {
	n := m.ledger.SelectedCount()
	if n == 0 {
		m.status = "nenhum débito selecionado"
		return m, clearStatusAfter(2 * time.Second)
	}
	m.ledger.BulkApply(action)
	m.refresh()
	verb := "pagos"
	if action == ledger.BulkMarkIgnored {
		verb = "ignorados"
	}
	m.status = fmt.Sprintf("%d débitos marcados como %s", n, verb)
	return m, clearStatusAfter(3 * time.Second)
}

// quickStatus toggles a single-status filter on or off.
func (m Model) quickStatus(s model.Status) (tea.Model, tea.Cmd) {
	applied := m.snap.Filters.Statuses
	if len(applied) == 1 && applied[0] == s {
		m.ledger.SetStatusFilter(nil)
	} else {
		m.ledger.SetStatusFilter([]model.Status{s})
	}
	m.refresh()
	return m, nil
}

// rowUnderCursor returns the page entity at the cursor, if any.
func (m Model) rowUnderCursor() (model.DebtEntity, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Page) {
		return model.DebtEntity{}, false
	}
	return m.snap.Page[m.cursor], true
}

func nextSortKey(current ledger.SortKey) ledger.SortKey {
	for i, k := range sortCycle {
		if k == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

// nextChartType steps the chart-type constraint through the observed types
// and back to unset.
func nextChartType(types []model.DebtType, current model.DebtType) model.DebtType {
	if len(types) == 0 {
		return current
	}
	if current == "" {
		return types[0]
	}
	for i, t := range types {
		if t == current {
			if i+1 < len(types) {
				return types[i+1]
			}
			return current // toggled off by SetChartType re-select
		}
	}
	return types[0]
}
