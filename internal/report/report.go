// Package report renders simulation results for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
)

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

// Render writes the title, the Gantt chart and the schedule table of a run.
func Render(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum=%d)", title, response.TimeQuantum)
	}
	if response.RunId != "" {
		title = fmt.Sprintf("%s run %s", title, response.RunId)
	}
	outputTitle(w, title)
	RenderGantt(w, response.Timeline)
	RenderSchedule(w, response)
}

// RenderGantt draws one cell per timeline segment, with idle gaps drawn as
// "idle" cells, followed by the segment boundaries.
func RenderGantt(w io.Writer, timeline []responses.TimelineSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	var cells, marks strings.Builder
	cells.WriteString("|")
	clock := 0
	cell := func(label string, start int) {
		width := max(len(label)+2, 6)
		padding := width - len(label)
		cells.WriteString(strings.Repeat(" ", padding/2) + label + strings.Repeat(" ", padding-padding/2) + "|")
		marks.WriteString(fmt.Sprintf("%-*d", width+1, start))
	}
	for _, s := range timeline {
		if s.StartTime > clock {
			cell("idle", clock)
		}
		cell(s.ProcessId, s.StartTime)
		clock = s.EndTime
	}
	marks.WriteString(fmt.Sprint(clock))

	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, marks.String())
}

func RenderSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	for _, d := range response.Details {
		table.Append([]string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
}

// RenderComparison summarises several runs of the same workload.
func RenderComparison(w io.Writer, compare responses.CompareResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Total", "Idle", "Switches", "Utilization"})
	for _, r := range compare.Results {
		algorithm := r.Algorithm
		if r.TimeQuantum > 0 {
			algorithm = fmt.Sprintf("%s (q=%d)", algorithm, r.TimeQuantum)
		}
		table.Append([]string{
			algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.TotalTime),
			fmt.Sprint(r.IdleTime),
			fmt.Sprint(r.ContextSwitches),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
		})
	}
	table.Render()
}
