// Package cmd provides the command-line interface of the scheduler simulator.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/store"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "os-scheduler",
		Short: "Simulate classic CPU scheduling algorithms",
		Long: `os-scheduler runs FCFS, SJF, SRTF, Priority, Round Robin and MLQ ` +
			`over a list of processes and reports completion, turnaround and ` +
			`waiting times together with the execution timeline.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			if logger, err = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(),
		newSimulateCmd(),
		newCompareCmd(),
		newRunsCmd(),
	)

	return root
}

func schedulerOptions() schedulers.Options {
	return schedulers.Options{
		TimeQuantum:       cfg.RoundRobinTimeQuantum,
		HighPriorityBelow: cfg.MultilevelQueueHighPriorityBelow,
	}
}

// overrideQuantum puts an explicit --quantum on the request, where it wins
// over both the workload file and the config.
func overrideQuantum(cmd *cobra.Command, request *requests.ScheduleRequests, quantum int) {
	if cmd.Flags().Changed("quantum") {
		request.TimeQuantum = &quantum
	}
}

func openStore(ctx context.Context) (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(ctx, cfg.StoragePath, logger)
}
