package schedulers

import (
	"context"
	"log/slog"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func ScheduleShortestRemainingTimeFirst(ctx context.Context, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return run(ctx, SRTF, 0, request, shortestRemainingTimeFirst)
}

// lessRemaining has no arrival time tie-break: equal remaining times go to
// the process scanned first.
func lessRemaining(a, b *core.Proccess) bool {
	return a.RemainingTime < b.RemainingTime
}

func shortestRemainingTimeFirst(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess) ([]*core.Proccess, error) {
	running := -1
	for completed := 0; completed < len(processes); {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idx := pickReady(processes, cpu.Now(), lessRemaining)
		if idx == -1 {
			cpu.IdleUntil(nextArrival(processes, cpu.Now()))
			continue
		}

		proccess := processes[idx]
		if idx != running {
			if running != -1 && !processes[running].Completed() {
				slog.Debug("preempt", "policy", SRTF, "pid", processes[running].Pid, "by", proccess.Pid, "at", cpu.Now())
			}
			running = idx
		}

		cpu.Execute(proccess, 1)
		if proccess.Completed() {
			completed++
		}
	}
	return processes, nil
}
