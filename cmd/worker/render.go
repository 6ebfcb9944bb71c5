package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	alertModel "github.com/Mouadistaa/project-pulse-ai/internal/alert/model"
	forecastModel "github.com/Mouadistaa/project-pulse-ai/internal/forecast/model"
	ingestionModel "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/model"
	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
)

var (
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func optFloat(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', precision, 64)
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func renderSnapshots(w io.Writer, snapshots []metricsModel.SnapshotResponse) error {
	if len(snapshots) == 0 {
		_, err := fmt.Fprintln(w, "no snapshots")
		return err
	}
	rows := make([][]string, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, []string{
			s.Day,
			optFloat(s.LeadTimeP50, 1),
			optFloat(s.LeadTimeP85, 1),
			optInt(s.WIP),
			optFloat(s.Throughput, 2),
			optFloat(s.ReviewTimeP50, 1),
			optFloat(s.BugRatio, 2),
			optFloat(s.PRSizeP50, 0),
		})
	}
	return renderTable(w,
		[]string{"Day", "Lead p50 (h)", "Lead p85 (h)", "WIP", "Throughput", "Review p50 (h)", "Bug ratio", "PR size p50"},
		rows)
}

func severityLabel(severity string) string {
	if severity == string(alertModel.SeverityHigh) {
		return red(severity)
	}
	return yellow(severity)
}

func statusLabel(status string) string {
	switch alertModel.Status(status) {
	case alertModel.StatusNew:
		return red(status)
	case alertModel.StatusAck:
		return yellow(status)
	default:
		return faint(status)
	}
}

func renderAlerts(w io.Writer, alerts []alertModel.AlertResponse) error {
	if len(alerts) == 0 {
		_, err := fmt.Fprintln(w, "no alerts")
		return err
	}
	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, []string{
			a.ID,
			a.CreatedAt.UTC().Format("2006-01-02 15:04"),
			severityLabel(a.Severity),
			statusLabel(a.Status),
			a.Title,
		})
	}
	return renderTable(w, []string{"ID", "Created", "Severity", "Status", "Title"}, rows)
}

func probabilityLabel(p float64) string {
	label := strconv.FormatFloat(p*100, 'f', 1, 64) + "%"
	switch {
	case p >= 0.85:
		return green(label)
	case p >= 0.5:
		return yellow(label)
	default:
		return red(label)
	}
}

func renderForecast(w io.Writer, f *forecastModel.ForecastResponse) error {
	_, err := fmt.Fprintf(w, "%d items by %s: %s (%d simulations over %d days of history)\n",
		f.BacklogSize, f.TargetDate, probabilityLabel(f.Probability), f.Simulations, f.HistoryDays)
	return err
}

func renderSyncResults(w io.Writer, results []ingestionModel.WorkspaceResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no workspaces")
		return err
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		outcome := green("ok")
		if r.Err != nil {
			outcome = red(r.Err.Error())
		}
		rows = append(rows, []string{
			r.WorkspaceID,
			strconv.Itoa(r.Integrations),
			strconv.Itoa(r.PullRequests),
			strconv.Itoa(r.WorkItems),
			strconv.Itoa(r.Risks),
			outcome,
		})
	}
	return renderTable(w, []string{"Workspace", "Integrations", "PRs", "Items", "Risks", "Result"}, rows)
}
