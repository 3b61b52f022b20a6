package schedulers

import (
	"context"
	"log/slog"
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func ScheduleFirstComeFirstServe(ctx context.Context, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return run(ctx, FCFS, 0, request, firstComeFirstServe)
}

func firstComeFirstServe(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess) ([]*core.Proccess, error) {
	// sort jobs by arrival time
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})

	for _, proccess := range processes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cpu.IdleUntil(proccess.ArrivalTime)
		slog.Debug("dispatch", "policy", FCFS, "pid", proccess.Pid, "at", cpu.Now())
		cpu.Execute(proccess, proccess.RemainingTime)
	}
	return processes, nil
}
