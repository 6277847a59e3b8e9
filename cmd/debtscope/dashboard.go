package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"debtscope/internal/common"
	"debtscope/internal/ingest"
	"debtscope/internal/tui"
)

// tuiCmd is an explicit alias for the default dashboard action.
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE:  runDashboard,
	}
}

// runDashboard starts the interactive TUI over the configured source.
func runDashboard(cmd *cobra.Command, _ []string) error {
	source, err := ingest.Open(viper.GetString("data.path"))
	if err != nil {
		return common.NewUserError("failed to open ledger source", err)
	}

	slog.Info("Starting dashboard", "source", source.Name())

	return tui.Run(cmd.Context(), tui.Config{
		Source:   source,
		PageSize: viper.GetInt("ui.page_size"),
	})
}
