package schedulers

import (
	"context"
	"log/slog"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func ScheduleRoundRobin(ctx context.Context, request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	slog.Debug("running roundRobin algorithm", "time_quantum", timeQuantum)
	return run(ctx, RoundRobin, timeQuantum, request, func(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess) ([]*core.Proccess, error) {
		return roundRobin(ctx, cpu, processes, timeQuantum)
	})
}

type readyQueue struct {
	queue []*core.Proccess
}

func (q *readyQueue) AddToEnd(proccess *core.Proccess) {
	q.queue = append(q.queue, proccess)
}

func (q *readyQueue) RemoveFromTop() (*core.Proccess, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	item := q.queue[0]
	q.queue = q.queue[1:]
	return item, true
}

func roundRobin(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess, timeQuantum int) ([]*core.Proccess, error) {
	roundRobinQueue := &readyQueue{queue: make([]*core.Proccess, 0, len(processes))}
	admitted := make([]bool, len(processes))

	// admit appends every newly arrived process in scan order.
	admit := func() {
		for i, proccess := range processes {
			if !admitted[i] && proccess.Arrived(cpu.Now()) && proccess.RemainingTime > 0 {
				roundRobinQueue.AddToEnd(proccess)
				admitted[i] = true
			}
		}
	}

	for completed := 0; completed < len(processes); {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		admit()
		proccess, ok := roundRobinQueue.RemoveFromTop()
		if !ok {
			cpu.IdleUntil(nextArrival(processes, cpu.Now()))
			continue
		}

		slice := min(timeQuantum, proccess.RemainingTime)
		slog.Debug("dispatch", "policy", RoundRobin, "pid", proccess.Pid, "at", cpu.Now(), "units", slice)
		cpu.Execute(proccess, slice)

		// arrivals at the end of the slice are queued ahead of the preempted process
		admit()
		if proccess.Completed() {
			completed++
			continue
		}
		slog.Debug("context switch", "policy", RoundRobin, "pid", proccess.Pid, "remaining", proccess.RemainingTime)
		roundRobinQueue.AddToEnd(proccess)
	}
	return processes, nil
}
