package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"os-scheduler/internal/responses"
)

var csvHeader = []string{
	"PID", "Arrival Time", "Burst Time", "Priority",
	"Completion Time", "Turnaround Time", "Waiting Time",
}

// WriteCSV exports the per-process results of a run.
func WriteCSV(w io.Writer, response responses.ScheduleResponse) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, d := range response.Details {
		record := []string{
			d.ProcessId,
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.WaitingTime),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV row %s: %w", d.ProcessId, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
