// Package main provides the worker CLI: scheduled sync passes and operator reports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Mouadistaa/project-pulse-ai/internal/bootstrap"
)

// env is opened before any subcommand runs and closed after it returns.
var env *bootstrap.Env

var rootCmd = &cobra.Command{
	Use:           "worker",
	Short:         "Delivery analytics worker",
	Long:          "Runs sync passes over every workspace and prints metrics, forecasts and alerts.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		env, err = bootstrap.Open()
		return err
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if env == nil {
			return nil
		}
		return env.Close()
	},
}

func init() {
	rootCmd.AddCommand(runCmd, syncCmd, metricsCmd, forecastCmd, alertsCmd, exportCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
