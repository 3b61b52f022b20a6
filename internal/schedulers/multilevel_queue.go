package schedulers

import (
	"context"
	"log/slog"
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func ScheduleMultilevelQueue(ctx context.Context, request *requests.ScheduleRequests, highPriorityBelow int) (responses.ScheduleResponse, error) {
	slog.Debug("mlq algorithm", "high_priority_below", highPriorityBelow)
	return run(ctx, MLQ, 0, request, func(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess) ([]*core.Proccess, error) {
		return multilevelQueue(ctx, cpu, processes, highPriorityBelow)
	})
}

// multilevelQueue fills both levels once, up front. A dequeued process that
// has not arrived yet moves the clock to its arrival; arrivals are never
// rechecked against the other level.
func multilevelQueue(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess, highPriorityBelow int) ([]*core.Proccess, error) {
	byArrival := make([]*core.Proccess, len(processes))
	copy(byArrival, processes)
	sort.SliceStable(byArrival, func(i, j int) bool {
		return byArrival[i].ArrivalTime < byArrival[j].ArrivalTime
	})

	highPriorityQueue := make([]*core.Proccess, 0, len(processes))
	lowPriorityQueue := make([]*core.Proccess, 0, len(processes))
	for _, proccess := range byArrival {
		if proccess.Priority < highPriorityBelow {
			highPriorityQueue = append(highPriorityQueue, proccess)
		} else {
			lowPriorityQueue = append(lowPriorityQueue, proccess)
		}
	}

	for level, queue := range [][]*core.Proccess{highPriorityQueue, lowPriorityQueue} {
		for _, proccess := range queue {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			cpu.IdleUntil(proccess.ArrivalTime)
			slog.Debug("dispatch", "policy", MLQ, "level", level, "pid", proccess.Pid, "at", cpu.Now())
			cpu.Execute(proccess, proccess.RemainingTime)
		}
	}
	return processes, nil
}
