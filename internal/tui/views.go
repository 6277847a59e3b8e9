package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"debtscope/internal/format"
	"debtscope/internal/ledger"
	"debtscope/internal/model"
)

// sortLabels maps sort keys to column captions.
var sortLabels = map[ledger.SortKey]string{
	ledger.SortByCompany:    "Empresa",
	ledger.SortByDebtName:   "Débito",
	ledger.SortByCompetence: "Competência",
	ledger.SortByDueDate:    "Vencimento",
	ledger.SortByPrincipal:  "Principal",
	ledger.SortByPenalty:    "Multa",
	ledger.SortByInterest:   "Juros",
	ledger.SortByTotal:      "Total",
	ledger.SortByStatus:     "Situação",
	ledger.SortByType:       "Tipo",
}

// View renders the current frame.
func (m Model) View() string {
	switch m.mode {
	case modeDrawer:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.viewDrawer())
	case modeHelp:
		return m.viewHelp()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewKPIs())
	b.WriteString("\n")
	b.WriteString(m.viewBreakdown())
	b.WriteString(m.viewFilterLine())
	b.WriteString("\n")
	b.WriteString(m.viewTable())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	t := m.theme
	title := t.Title.Render("Painel de Débitos Fiscais")
	src := t.Subtitle.Render(m.source.Name())
	if m.snap.Loading {
		src = m.spinner.View() + " " + t.Subtitle.Render("carregando "+m.source.Name())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", src)
}

func (m Model) viewKPIs() string {
	t := m.theme
	k := m.snap.KPIs

	box := func(label, value string, style lipgloss.Style) string {
		return t.KPIBox.Render(t.KPILabel.Render(label) + "\n" + style.Render(value))
	}

	cards := []string{
		box("Total em Aberto", format.BRL(k.TotalDebt), t.KPIValue),
		box("Vencido", format.BRL(k.OverdueDebt), t.Overdue),
		box("A Vencer", format.BRL(k.UpcomingDebt), t.Upcoming),
		box("Débitos", fmt.Sprintf("%d", k.TotalCount), t.KPIValue),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// viewBreakdown renders the per-type totals over the filtered set, largest
// first, as a single line under the KPI strip.
func (m Model) viewBreakdown() string {
	totals := m.snap.TotalsByType
	if len(totals) == 0 {
		return ""
	}

	types := make([]model.DebtType, 0, len(totals))
	for t := range totals {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if totals[types[i]] != totals[types[j]] {
			return totals[types[i]] > totals[types[j]]
		}
		return types[i] < types[j]
	})

	t := m.theme
	parts := make([]string, len(types))
	for i, dt := range types {
		label := string(dt)
		if m.snap.Filters.ChartType == dt {
			label = t.Selected.Render(label)
		} else {
			label = t.Subtitle.Render(label)
		}
		parts[i] = label + " " + t.Normal.Render(format.BRL(totals[dt]))
	}
	return strings.Join(parts, t.Muted.Render("  ·  ")) + "\n"
}

func (m Model) viewFilterLine() string {
	t := m.theme
	parts := []string{}

	if m.mode == modeSearch {
		parts = append(parts, m.search.View())
	} else if m.snap.Filters.Search != "" {
		parts = append(parts, t.Subtitle.Render("busca: "+m.snap.Filters.Search))
	}

	if n := m.snap.KPIs.ActiveFilterCount; n > 0 {
		parts = append(parts, t.FilterBadge.Render(fmt.Sprintf("%d filtros ativos", n)))
	}
	if ct := m.snap.Filters.ChartType; ct != "" {
		parts = append(parts, t.Subtitle.Render("tipo em foco: "+string(ct)))
	}
	if m.status != "" {
		parts = append(parts, t.Selected.Render(m.status))
	}
	if err := m.snap.LoadError; err != nil {
		parts = append(parts, t.Error.Render(err.Error()))
	}
	if len(parts) == 0 {
		return t.Help.Render("/ buscar · f filtros · ? ajuda")
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewTable() string {
	t := m.theme

	header := fmt.Sprintf("    %-24s %-28s %-8s %-11s %14s %-22s %-14s %s",
		m.columnCaption(ledger.SortByCompany),
		m.columnCaption(ledger.SortByDebtName),
		"Comp.",
		m.columnCaption(ledger.SortByDueDate),
		m.columnCaption(ledger.SortByTotal),
		m.columnCaption(ledger.SortByStatus),
		m.columnCaption(ledger.SortByType),
		"Parc.")

	var b strings.Builder
	b.WriteString(t.Header.Render(header))
	b.WriteString("\n")

	if len(m.snap.Page) == 0 {
		b.WriteString(t.Muted.Render("  nenhum débito corresponde aos filtros"))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range m.snap.Page {
		b.WriteString(m.viewRow(i, e))
		if m.snap.Expanded[e.ID] {
			for _, sub := range e.SubRows {
				b.WriteString(m.viewSubRow(sub))
			}
		}
	}
	return b.String()
}

func (m Model) viewRow(i int, e model.DebtEntity) string {
	t := m.theme

	mark := "[ ]"
	if m.snap.Selected[e.ID] {
		mark = "[x]"
	}
	expand := " "
	if len(e.SubRows) > 0 {
		expand = "+"
		if m.snap.Expanded[e.ID] {
			expand = "-"
		}
	}

	inst := ""
	if p := e.Installment; p != nil && p.PaidCount != nil && p.TotalCount != nil {
		inst = fmt.Sprintf("%d/%d", *p.PaidCount, *p.TotalCount)
	}

	line := fmt.Sprintf("%s%s %-24.24s %-28.28s %-8.8s %-11s %14s %-22s %-14s %s",
		mark, expand,
		e.Company,
		e.DebtName,
		e.CompetenceFormatted,
		format.DueDate(e.DueDate),
		format.BRL(e.Total),
		t.statusStyle(string(e.Status)).Render(fmt.Sprintf("%-12s", string(e.Status))),
		string(e.Type),
		inst)

	if i == m.cursor {
		return t.Cursor.Render(line) + "\n"
	}
	if m.snap.Selected[e.ID] {
		return t.Selected.Render(line) + "\n"
	}
	return line + "\n"
}

func (m Model) viewSubRow(e model.DebtEntity) string {
	t := m.theme
	line := fmt.Sprintf("      ↳ %-48.48s %-11s %14s %s",
		e.DebtName,
		format.DueDate(e.DueDate),
		format.BRL(e.Total),
		t.statusStyle(string(e.Status)).Render(string(e.Status)))
	return t.Muted.Render(line) + "\n"
}

func (m Model) columnCaption(key ledger.SortKey) string {
	label := sortLabels[key]
	if m.snap.Sort.Key != key {
		return label
	}
	if m.snap.Sort.Ascending {
		return label + " ↑"
	}
	return label + " ↓"
}

func (m Model) viewFooter() string {
	t := m.theme

	page := fmt.Sprintf("página %d/%d · %d débitos",
		m.snap.Pagination.Page, m.snap.TotalPages, len(m.snap.Sorted))
	sel := ""
	if n := len(m.snap.Selected); n > 0 {
		sel = t.Selected.Render(fmt.Sprintf(" · %d selecionados (p pagar, i ignorar)", n))
	}
	help := t.Help.Render("Space selecionar · a página · s/o ordenar · v/u/g/n situação · r recarregar · q sair")

	return t.Subtitle.Render(page) + sel + "\n" + help
}

func (m Model) viewHelp() string {
	t := m.theme
	rows := []struct{ key, desc string }{
		{"↑/k ↓/j", "mover cursor"},
		{"←/h →/l", "página anterior/seguinte"},
		{"+ / -", "mais/menos linhas por página"},
		{"Space", "selecionar débito"},
		{"a", "selecionar página inteira"},
		{"x", "limpar seleção"},
		{"Enter", "expandir parcelamento"},
		{"p / i", "marcar seleção como pago / ignorado"},
		{"s / o", "próxima coluna de ordenação / inverter direção"},
		{"/", "busca por empresa ou débito"},
		{"f", "abrir filtros (aplicados só ao confirmar)"},
		{"v u g n", "vencidos · a vencer · pagos · ignorados"},
		{"t", "alternar tipo em foco"},
		{"r", "recarregar a fonte de dados"},
		{"q", "sair"},
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Atalhos"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			t.Selected.Render(fmt.Sprintf("%-10s", r.key)),
			t.Normal.Render(r.desc)))
	}
	b.WriteString("\n" + t.Help.Render("qualquer tecla volta"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, t.DrawerBox.Render(b.String()))
}
