package schedulers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

type Policy string

const (
	FCFS       Policy = "FCFS"
	SJF        Policy = "SJF"
	SRTF       Policy = "SRTF"
	Priority   Policy = "PRIORITY"
	RoundRobin Policy = "ROUND_ROBIN"
	MLQ        Policy = "MLQ"
)

// DefaultHighPriorityBelow is the priority that separates the two levels of
// the multilevel queue. Processes below it go to the high level.
const DefaultHighPriorityBelow = 2

var policyAliases = map[string]Policy{
	"fcfs":        FCFS,
	"sjf":         SJF,
	"srtf":        SRTF,
	"priority":    Priority,
	"rr":          RoundRobin,
	"round-robin": RoundRobin,
	"round_robin": RoundRobin,
	"roundrobin":  RoundRobin,
	"mlq":         MLQ,
}

// GetAvailablePolicies lists the policies in a stable order.
func GetAvailablePolicies() []Policy {
	return []Policy{FCFS, SJF, SRTF, Priority, RoundRobin, MLQ}
}

func ParsePolicy(name string) (Policy, error) {
	policy, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPolicy, name)
	}
	return policy, nil
}

type Options struct {
	TimeQuantum       int
	HighPriorityBelow int
}

func DefaultOptions() Options {
	return Options{
		TimeQuantum:       2,
		HighPriorityBelow: DefaultHighPriorityBelow,
	}
}

// Schedule runs one policy over a private copy of the request. A quantum set
// on the request wins over the configured one, zero included, so that an
// explicit zero is rejected rather than replaced.
func Schedule(ctx context.Context, policy Policy, request *requests.ScheduleRequests, opts Options) (responses.ScheduleResponse, error) {
	switch policy {
	case FCFS:
		return ScheduleFirstComeFirstServe(ctx, request)
	case SJF:
		return ScheduleShortestJobFirst(ctx, request)
	case SRTF:
		return ScheduleShortestRemainingTimeFirst(ctx, request)
	case Priority:
		return SchedulePriority(ctx, request)
	case RoundRobin:
		timeQuantum := opts.TimeQuantum
		if request != nil && request.TimeQuantum != nil {
			timeQuantum = *request.TimeQuantum
		}
		return ScheduleRoundRobin(ctx, request, timeQuantum)
	case MLQ:
		return ScheduleMultilevelQueue(ctx, request, opts.HighPriorityBelow)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, policy)
	}
}

// ScheduleAll runs every policy on the same request in parallel. Runs share
// nothing, so the first error is returned after all of them finish.
func ScheduleAll(ctx context.Context, request *requests.ScheduleRequests, opts Options) (responses.CompareResponse, error) {
	policies := GetAvailablePolicies()
	results := make([]responses.ScheduleResponse, len(policies))
	errs := make([]error, len(policies))

	var wg sync.WaitGroup
	wg.Add(len(policies))
	for i, policy := range policies {
		go func(i int, policy Policy) {
			defer wg.Done()
			results[i], errs[i] = Schedule(ctx, policy, request, opts)
		}(i, policy)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return responses.CompareResponse{}, err
		}
	}
	return responses.CompareResponse{Results: results}, nil
}

type algorithm func(ctx context.Context, cpu *core.Cpu, processes []*core.Proccess) ([]*core.Proccess, error)

func run(ctx context.Context, policy Policy, timeQuantum int, request *requests.ScheduleRequests, algo algorithm) (responses.ScheduleResponse, error) {
	if err := validateRequest(request, policy, timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}

	slog.Debug("running algorithm", "policy", policy, "processes", len(request.Jobs))
	cpu := core.NewCpu()
	processes, err := algo(ctx, cpu, core.ProccessesFromJobs(request.Jobs))
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("%s: %w", policy, err)
	}

	response := generateResponse(processes, cpu)
	response.Algorithm = string(policy)
	if policy == RoundRobin {
		response.TimeQuantum = timeQuantum
	}
	return response, nil
}

// pickReady scans arrived, uncompleted processes and returns the index of
// the first one no other candidate is strictly better than, or -1.
func pickReady(processes []*core.Proccess, now int, better func(a, b *core.Proccess) bool) int {
	idx := -1
	for i, proccess := range processes {
		if proccess.Completed() || !proccess.Arrived(now) {
			continue
		}
		if idx == -1 || better(proccess, processes[idx]) {
			idx = i
		}
	}
	return idx
}

// nextArrival returns the earliest arrival among uncompleted processes that
// have not arrived by now. Idling tick by tick until then changes nothing
// but the clock, so callers jump straight to it.
func nextArrival(processes []*core.Proccess, now int) int {
	next := -1
	for _, proccess := range processes {
		if proccess.Completed() || proccess.Arrived(now) {
			continue
		}
		if next == -1 || proccess.ArrivalTime < next {
			next = proccess.ArrivalTime
		}
	}
	if next == -1 {
		return now + 1
	}
	return next
}
