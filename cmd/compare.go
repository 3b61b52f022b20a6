package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler/internal/report"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

func newCompareCmd() *cobra.Command {
	var (
		input   string
		quantum int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm over the same workload and compare averages",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := workload.LoadFile(input)
			if err != nil {
				return err
			}
			overrideQuantum(cmd, request, quantum)

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
			defer cancel()
			compare, err := schedulers.ScheduleAll(ctx, request, schedulerOptions())
			if err != nil {
				return err
			}

			switch output {
			case "table":
				report.RenderComparison(cmd.OutOrStdout(), compare)
				return nil
			case "json":
				return writeJSON(cmd.OutOrStdout(), compare)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Workload file (.csv, .json, .yaml)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from the workload file, then config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
