package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	activityRepository "github.com/Mouadistaa/project-pulse-ai/internal/activity/repository"
	alertRepository "github.com/Mouadistaa/project-pulse-ai/internal/alert/repository"
	alertService "github.com/Mouadistaa/project-pulse-ai/internal/alert/service"
	"github.com/Mouadistaa/project-pulse-ai/internal/export"
	forecastModel "github.com/Mouadistaa/project-pulse-ai/internal/forecast/model"
	forecastService "github.com/Mouadistaa/project-pulse-ai/internal/forecast/service"
	metricsRepository "github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
	metricsService "github.com/Mouadistaa/project-pulse-ai/internal/metrics/service"
)

const (
	defaultAlertsLimit = 50
	defaultExportLimit = 365
)

var (
	reportLimit    int
	forecastTarget string
	forecastBatch  int
	alertsStatus   string
	exportOutput   string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics <workspace-id>",
	Short: "Print the latest daily snapshots of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := reportLimit
		if limit <= 0 {
			limit = env.Config.Engine.MetricsHistoryLimit
		}
		svc := metricsService.New(metricsRepository.New(env.DB), activityRepository.New(env.DB),
			env.Config.Engine.WindowDays, env.Logger)

		snapshots, err := svc.ListSnapshots(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		return renderSnapshots(cmd.OutOrStdout(), snapshots)
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast <workspace-id>",
	Short: "Estimate the probability of finishing a backlog by a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := forecastModel.ParseTargetDate(forecastTarget)
		if err != nil {
			return err
		}
		svc := forecastService.New(metricsRepository.New(env.DB), env.Config.Engine, env.Logger)

		resp, err := svc.Forecast(cmd.Context(), args[0], target, forecastBatch)
		if err != nil {
			return err
		}
		return renderForecast(cmd.OutOrStdout(), resp)
	},
}

var alertsCmd = &cobra.Command{
	Use:   "alerts <workspace-id>",
	Short: "List the alerts of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := reportLimit
		if limit <= 0 {
			limit = defaultAlertsLimit
		}
		svc := alertService.New(alertRepository.New(env.DB), env.Logger)

		alerts, err := svc.List(cmd.Context(), args[0], alertsStatus, limit)
		if err != nil {
			return err
		}
		return renderAlerts(cmd.OutOrStdout(), alerts)
	},
}

var alertsAckCmd = &cobra.Command{
	Use:   "ack <alert-id>",
	Short: "Acknowledge a NEW alert",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alert, err := alertService.New(alertRepository.New(env.DB), env.Logger).Acknowledge(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("alert %s is now %s\n", alert.ID, statusLabel(alert.Status))
		return nil
	},
}

var alertsResolveCmd = &cobra.Command{
	Use:   "resolve <alert-id>",
	Short: "Resolve a NEW or ACK alert",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alert, err := alertService.New(alertRepository.New(env.DB), env.Logger).Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("alert %s is now %s\n", alert.ID, statusLabel(alert.Status))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <workspace-id>",
	Short: "Write the snapshots of a workspace to a Parquet file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := exportOutput
		if output == "" {
			output = filepath.Join(".", args[0]+".parquet")
		}
		limit := reportLimit
		if limit <= 0 {
			limit = defaultExportLimit
		}

		n, err := export.New(metricsRepository.New(env.DB), env.Logger).
			ExportWorkspace(cmd.Context(), args[0], limit, output)
		if err != nil {
			return err
		}
		cmd.Printf("wrote %d snapshots to %s\n", n, output)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{metricsCmd, alertsCmd, exportCmd} {
		c.Flags().IntVarP(&reportLimit, "limit", "n", 0, "maximum number of rows (default depends on the command)")
	}

	forecastCmd.Flags().StringVar(&forecastTarget, "target-date", "", "target date, YYYY-MM-DD")
	forecastCmd.Flags().IntVar(&forecastBatch, "backlog-size", 0, "number of items left to deliver")
	_ = forecastCmd.MarkFlagRequired("target-date")
	_ = forecastCmd.MarkFlagRequired("backlog-size")

	alertsCmd.Flags().StringVar(&alertsStatus, "status", "", "filter by status: NEW, ACK or RESOLVED")
	alertsCmd.AddCommand(alertsAckCmd, alertsResolveCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: <workspace-id>.parquet)")
}
