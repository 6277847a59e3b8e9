package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"debtscope/internal/format"
	"debtscope/internal/ingest"
	"debtscope/internal/ledger"
	"debtscope/internal/model"
	"debtscope/internal/normalize"
)

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Underline(true)
	summaryLabel = lipgloss.NewStyle().Faint(true).Width(22)
	summaryValue = lipgloss.NewStyle().Bold(true)
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a headless KPI report for the ledger",
		Long: `Loads the ledger source, applies the given filters, and prints the
aggregates the dashboard would show: open totals, overdue and upcoming
amounts, and per-type and per-company breakdowns.`,
		RunE: runSummary,
	}

	cmd.Flags().String("start", "", "start of due-date range (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "end of due-date range (YYYY-MM-DD)")
	cmd.Flags().StringSlice("status", nil, "restrict to statuses (e.g. Vencido)")
	cmd.Flags().StringSlice("company", nil, "restrict to companies")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	source, err := ingest.Open(viper.GetString("data.path"))
	if err != nil {
		return fmt.Errorf("failed to open ledger source: %w", err)
	}

	records, err := source.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", source.Name(), err)
	}

	led := ledger.New(ledger.DefaultPageSize)
	led.BeginLoad()
	led.CompleteLoad(normalize.Normalize(records))

	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	if start != "" || end != "" {
		led.SetDateRange(start, end)
	}

	if statuses, _ := cmd.Flags().GetStringSlice("status"); len(statuses) > 0 {
		filter := make([]model.Status, len(statuses))
		for i, s := range statuses {
			filter[i] = model.Status(s)
		}
		led.SetStatusFilter(filter)
	}

	if companies, _ := cmd.Flags().GetStringSlice("company"); len(companies) > 0 {
		led.SetAllCompanies(false)
		for _, c := range companies {
			led.SetActiveCompany(c, true)
		}
	}

	printSummary(led.Snapshot(), source.Name())
	return nil
}

func printSummary(snap ledger.Snapshot, sourceName string) {
	out := os.Stdout

	fmt.Fprintln(out, summaryTitle.Render("Resumo de Débitos Fiscais"))
	fmt.Fprintf(out, "%s %s\n\n", summaryLabel.Render("Fonte:"), sourceName)

	k := snap.KPIs
	fmt.Fprintf(out, "%s %s\n", summaryLabel.Render("Total em aberto:"), summaryValue.Render(format.BRL(k.TotalDebt)))
	fmt.Fprintf(out, "%s %s\n", summaryLabel.Render("Vencido:"), summaryValue.Render(format.BRL(k.OverdueDebt)))
	fmt.Fprintf(out, "%s %s\n", summaryLabel.Render("A vencer:"), summaryValue.Render(format.BRL(k.UpcomingDebt)))
	fmt.Fprintf(out, "%s %d\n", summaryLabel.Render("Débitos:"), k.TotalCount)

	if len(snap.TotalsByType) > 0 {
		fmt.Fprintln(out, "\n"+summaryTitle.Render("Por tipo"))
		types := make([]string, 0, len(snap.TotalsByType))
		for t := range snap.TotalsByType {
			types = append(types, string(t))
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(out, "%s %s\n", summaryLabel.Render(t+":"), format.BRL(snap.TotalsByType[model.DebtType(t)]))
		}
	}

	if len(snap.TotalsByCompany) > 0 {
		fmt.Fprintln(out, "\n"+summaryTitle.Render("Por empresa"))
		companies := make([]string, 0, len(snap.TotalsByCompany))
		for c := range snap.TotalsByCompany {
			companies = append(companies, c)
		}
		sort.Strings(companies)
		for _, c := range companies {
			fmt.Fprintf(out, "%s %s\n", summaryLabel.Render(c+":"), format.BRL(snap.TotalsByCompany[c]))
		}
	}
}
