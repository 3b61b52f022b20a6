package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"os-scheduler/internal/report"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

func newSimulateCmd() *cobra.Command {
	var (
		policyName string
		input      string
		quantum    int
		output     string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling algorithm over a workload file",
		Example: `  os-scheduler simulate --policy rr --quantum 2 --input workload.csv
  os-scheduler simulate --policy srtf --input workload.yaml --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := schedulers.ParsePolicy(policyName)
			if err != nil {
				return err
			}
			request, err := workload.LoadFile(input)
			if err != nil {
				return err
			}
			overrideQuantum(cmd, request, quantum)

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
			defer cancel()
			response, err := schedulers.Schedule(ctx, policy, request, schedulerOptions())
			if err != nil {
				return err
			}

			if save {
				st, err := openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer st.Close()
				if response.RunId, err = st.SaveRun(cmd.Context(), *request, response); err != nil {
					return err
				}
				logger.Info("run saved", "id", response.RunId)
			}

			return writeResponse(cmd.OutOrStdout(), output, response)
		},
	}
	cmd.Flags().StringVarP(&policyName, "policy", "p", "", "Algorithm: fcfs, sjf, srtf, priority, rr, mlq")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Workload file (.csv, .json, .yaml)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from the workload file, then config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json, csv")
	cmd.Flags().BoolVar(&save, "save", false, "Store the run in the run database")
	_ = cmd.MarkFlagRequired("policy")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func writeResponse(w io.Writer, output string, response responses.ScheduleResponse) error {
	switch output {
	case "table":
		report.Render(w, response)
		return nil
	case "json":
		return writeJSON(w, response)
	case "csv":
		return workload.WriteCSV(w, response)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
