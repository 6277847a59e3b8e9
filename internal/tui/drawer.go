package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"debtscope/internal/ledger"
	"debtscope/internal/model"
)

// drawerModel edits the staged filter criteria. Nothing it does is visible
// in the table until the edits are applied.
type drawerModel struct {
	led       *ledger.Ledger
	theme     Theme
	focus     int
	start     textinput.Model
	end       textinput.Model
	statuses  []model.Status
	types     []model.DebtType
	companies []string
}

func newDrawer(led *ledger.Ledger, theme Theme) drawerModel {
	snap := led.Snapshot()
	staged := led.Staged()

	start := textinput.New()
	start.Placeholder = "AAAA-MM-DD"
	start.CharLimit = 10
	start.SetValue(staged.StartDate)

	end := textinput.New()
	end.Placeholder = "AAAA-MM-DD"
	end.CharLimit = 10
	end.SetValue(staged.EndDate)

	d := drawerModel{
		led:       led,
		theme:     theme,
		start:     start,
		end:       end,
		statuses:  snap.Statuses,
		types:     snap.Types,
		companies: snap.Companies,
	}
	d.syncFocus()
	return d
}

// lineCount is the number of focusable drawer lines: two date inputs, one
// line per status, type, and company, plus the all-companies toggle.
func (d drawerModel) lineCount() int {
	return 2 + len(d.statuses) + len(d.types) + len(d.companies) + 1
}

func (d *drawerModel) syncFocus() {
	d.start.Blur()
	d.end.Blur()
	switch d.focus {
	case 0:
		d.start.Focus()
	case 1:
		d.end.Focus()
	}
}

// updateDrawer handles keys while the filter drawer has focus.
func (m Model) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.drawer

	switch msg.String() {
	case "esc":
		// Discard: staged edits stay invisible until applied, so closing
		// without applying needs no rollback.
		m.mode = modeTable
		return m, nil

	case "enter":
		m.ledger.SetStagedDateRange(d.start.Value(), d.end.Value())
		m.ledger.ApplyStaged()
		m.mode = modeTable
		m.refresh()
		return m, nil

	case "ctrl+r":
		m.ledger.ClearStaged()
		staged := m.ledger.Staged()
		d.start.SetValue(staged.StartDate)
		d.end.SetValue(staged.EndDate)
		m.refresh()
		return m, nil

	case "up", "shift+tab":
		if d.focus > 0 {
			d.focus--
		}
		d.syncFocus()
		return m, nil

	case "down", "tab":
		if d.focus < d.lineCount()-1 {
			d.focus++
		}
		d.syncFocus()
		return m, nil

	case " ":
		if d.focus >= 2 {
			d.toggleFocused()
			return m, nil
		}
	}

	// Remaining keys edit whichever date input holds focus.
	var cmd tea.Cmd
	switch d.focus {
	case 0:
		d.start, cmd = d.start.Update(msg)
		m.ledger.SetStagedDateRange(d.start.Value(), d.end.Value())
	case 1:
		d.end, cmd = d.end.Update(msg)
		m.ledger.SetStagedDateRange(d.start.Value(), d.end.Value())
	}
	return m, cmd
}

// toggleFocused flips the staged option on the focused line.
func (d *drawerModel) toggleFocused() {
	idx := d.focus - 2

	if idx < len(d.statuses) {
		staged := d.led.Staged()
		d.led.SetStagedStatuses(toggleStatus(staged.Statuses, d.statuses[idx]))
		return
	}
	idx -= len(d.statuses)

	if idx < len(d.types) {
		staged := d.led.Staged()
		d.led.SetStagedTypes(toggleType(staged.Types, d.types[idx]))
		return
	}
	idx -= len(d.types)

	if idx < len(d.companies) {
		sc := d.led.StagedCompanies()
		company := d.companies[idx]
		sc[company] = !sc[company]
		d.led.SetStagedCompanies(sc)
		return
	}

	// Last line: flip every company at once.
	sc := d.led.StagedCompanies()
	all := true
	for _, c := range d.companies {
		if !sc[c] {
			all = false
			break
		}
	}
	for _, c := range d.companies {
		sc[c] = !all
	}
	d.led.SetStagedCompanies(sc)
}

func toggleStatus(set []model.Status, s model.Status) []model.Status {
	out := make([]model.Status, 0, len(set)+1)
	found := false
	for _, v := range set {
		if v == s {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, s)
	}
	return out
}

func toggleType(set []model.DebtType, t model.DebtType) []model.DebtType {
	out := make([]model.DebtType, 0, len(set)+1)
	found := false
	for _, v := range set {
		if v == t {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, t)
	}
	return out
}

// viewDrawer renders the filter drawer.
func (m Model) viewDrawer() string {
	d := m.drawer
	t := m.theme
	staged := m.ledger.Staged()
	sc := m.ledger.StagedCompanies()

	var b strings.Builder
	b.WriteString(t.Title.Render("Filtros"))
	b.WriteString("\n\n")

	line := func(idx int, content string) {
		if idx == d.focus {
			b.WriteString(t.DrawerFocus.Render("> " + content))
		} else {
			b.WriteString(t.DrawerOption.Render("  " + content))
		}
		b.WriteString("\n")
	}

	line(0, "Início: "+d.start.View())
	line(1, "Fim:    "+d.end.View())

	b.WriteString("\n" + t.Subtitle.Render("Situação") + "\n")
	idx := 2
	for _, s := range d.statuses {
		line(idx, checkbox(containsStagedStatus(staged.Statuses, s))+" "+string(s))
		idx++
	}

	b.WriteString("\n" + t.Subtitle.Render("Tipo") + "\n")
	for _, dt := range d.types {
		line(idx, checkbox(containsStagedType(staged.Types, dt))+" "+string(dt))
		idx++
	}

	b.WriteString("\n" + t.Subtitle.Render("Empresas") + "\n")
	for _, c := range d.companies {
		line(idx, checkbox(sc[c])+" "+c)
		idx++
	}
	line(idx, "Alternar todas as empresas")

	b.WriteString("\n" + t.Help.Render("Space alternar · Enter aplicar · Ctrl+R limpar · Esc fechar"))

	return t.DrawerBox.Render(b.String())
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func containsStagedStatus(set []model.Status, s model.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsStagedType(set []model.DebtType, t model.DebtType) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}
