package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored simulation runs",
	}
	cmd.AddCommand(newRunsListCmd(), newRunsShowCmd())
	return cmd
}

func newRunsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Algorithm", "Processes", "Avg Wait", "Avg Turnaround", "Created"})
			for _, run := range runs {
				table.Append([]string{
					run.ID,
					run.Algorithm,
					fmt.Sprint(run.Processes),
					fmt.Sprintf("%.2f", run.AverageWaitingTime),
					fmt.Sprintf("%.2f", run.AverageTurnAroundTime),
					run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs")

	return cmd
}

func newRunsShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeResponse(cmd.OutOrStdout(), output, run.Response)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json, csv")

	return cmd
}
