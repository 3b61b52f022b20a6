package schedulers

import (
	"context"
	"log/slog"
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func SchedulePriority(ctx context.Context, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return run(ctx, Priority, 0, request, priorityScheduling)
}

// higherPriority orders by priority (lower is more urgent), then by arrival.
func higherPriority(a, b *core.Proccess) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivalTime < b.ArrivalTime
}

func priorityScheduling(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess) ([]*core.Proccess, error) {
	// the initial order only fixes the scan order and the order of the output
	sort.SliceStable(processes, func(i, j int) bool {
		if processes[i].ArrivalTime != processes[j].ArrivalTime {
			return processes[i].ArrivalTime < processes[j].ArrivalTime
		}
		return processes[i].Priority < processes[j].Priority
	})

	for completed := 0; completed < len(processes); {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idx := pickReady(processes, cpu.Now(), higherPriority)
		if idx == -1 {
			cpu.IdleUntil(nextArrival(processes, cpu.Now()))
			continue
		}

		proccess := processes[idx]
		slog.Debug("dispatch", "policy", Priority, "pid", proccess.Pid, "priority", proccess.Priority, "at", cpu.Now())
		cpu.Execute(proccess, proccess.RemainingTime)
		completed++
	}
	return processes, nil
}
