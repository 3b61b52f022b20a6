package schedulers

import (
	"errors"
	"fmt"
	"math"

	"os-scheduler/internal/requests"
)

// validateRequest checks the whole request before anything is simulated and
// reports every problem found in a single error.
func validateRequest(request *requests.ScheduleRequests, policy Policy, timeQuantum int) error {
	if request == nil || len(request.Jobs) == 0 {
		return fmt.Errorf("%w: no processes to schedule", ErrInvalidInput)
	}

	var errs []error
	seen := make(map[string]int, len(request.Jobs))
	latestArrival, totalBurst, overflow := 0, 0, false
	for i, job := range request.Jobs {
		if job.ProcessId == "" {
			errs = append(errs, fmt.Errorf("%w: process #%d has an empty pid", ErrInvalidInput, i))
		} else if first, ok := seen[job.ProcessId]; ok {
			errs = append(errs, fmt.Errorf("%w: duplicate pid %q (processes #%d and #%d)",
				ErrInvalidInput, job.ProcessId, first, i))
		} else {
			seen[job.ProcessId] = i
		}
		if job.ArrivalTime < 0 {
			errs = append(errs, fmt.Errorf("%w: pid %q has negative arrival time %d",
				ErrInvalidInput, job.ProcessId, job.ArrivalTime))
		}
		if job.BurstTime < 1 {
			errs = append(errs, fmt.Errorf("%w: pid %q has non-positive burst time %d",
				ErrInvalidInput, job.ProcessId, job.BurstTime))
		}

		latestArrival = max(latestArrival, job.ArrivalTime)
		if job.BurstTime > 0 {
			if totalBurst > math.MaxInt-job.BurstTime {
				overflow = true
			} else {
				totalBurst += job.BurstTime
			}
		}
	}

	// no schedule finishes later than the last arrival plus every burst
	if overflow || latestArrival > math.MaxInt-totalBurst {
		errs = append(errs, fmt.Errorf("%w: workload would run past the largest representable time",
			ErrInvalidInput))
	}

	if policy == RoundRobin && timeQuantum < 1 {
		errs = append(errs, fmt.Errorf("%w: round robin needs a positive time quantum, got %d",
			ErrInvalidInput, timeQuantum))
	}

	return errors.Join(errs...)
}
