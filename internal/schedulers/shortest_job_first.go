package schedulers

import (
	"context"
	"log/slog"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func ScheduleShortestJobFirst(ctx context.Context, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return run(ctx, SJF, 0, request, shortestJobFirst)
}

// shorterJob orders by burst time, then by arrival time.
func shorterJob(a, b *core.Proccess) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return a.ArrivalTime < b.ArrivalTime
}

func shortestJobFirst(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess) ([]*core.Proccess, error) {
	for completed := 0; completed < len(processes); {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idx := pickReady(processes, cpu.Now(), shorterJob)
		if idx == -1 {
			cpu.IdleUntil(nextArrival(processes, cpu.Now()))
			continue
		}

		proccess := processes[idx]
		slog.Debug("dispatch", "policy", SJF, "pid", proccess.Pid, "at", cpu.Now())
		cpu.Execute(proccess, proccess.RemainingTime)
		completed++
	}
	return processes, nil
}
