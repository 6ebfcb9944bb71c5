package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion"
	ingestionModel "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/model"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sync every workspace now and then on every SYNC_INTERVAL tick",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		module := ingestion.New(env.DB, env.Config, env.Locker, env.Logger)
		interval := env.Config.Sync.Interval

		env.Logger.Infow("worker started", "interval", interval, "mock_mode", env.Config.Sync.MockMode)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			results, err := module.Orchestrator.SyncAll(ctx)
			if err != nil {
				env.Logger.Errorw("sync pass finished with failures", "error", err)
			}
			env.Logger.Infow("sync pass finished", "workspaces", len(results), "failed", countFailed(results))

			select {
			case <-ctx.Done():
				env.Logger.Infow("worker stopped")
				return nil
			case <-ticker.C:
			}
		}
	},
}

var syncWorkspace string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a single sync pass for one workspace or all of them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		module := ingestion.New(env.DB, env.Config, env.Locker, env.Logger)

		if syncWorkspace != "" {
			res, err := module.Orchestrator.SyncWorkspace(cmd.Context(), syncWorkspace)
			if err != nil {
				return err
			}
			return renderSyncResults(cmd.OutOrStdout(), []ingestionModel.WorkspaceResult{*res})
		}

		results, err := module.Orchestrator.SyncAll(cmd.Context())
		if renderErr := renderSyncResults(cmd.OutOrStdout(), results); renderErr != nil {
			return renderErr
		}
		return err
	},
}

func init() {
	syncCmd.Flags().StringVarP(&syncWorkspace, "workspace", "w", "", "workspace id (default: all workspaces)")
}

func countFailed(results []ingestionModel.WorkspaceResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
