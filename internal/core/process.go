package core

import (
	"fmt"

	"os-scheduler/internal/requests"
)

type Proccess struct {
	Pid            string
	ArrivalTime    int
	BurstTime      int
	RemainingTime  int
	Priority       int
	StartTime      int
	CompletionTime int
	TurnAroundTime int
	WaitingTime    int
	ResponseTime   int

	completed bool
}

// NewProccess builds a fresh record for one run. The job is copied, never
// referenced, so a request can be replayed under every policy.
func NewProccess(job requests.Job) *Proccess {
	return &Proccess{
		Pid:           job.ProcessId,
		ArrivalTime:   job.ArrivalTime,
		BurstTime:     job.BurstTime,
		RemainingTime: job.BurstTime,
		Priority:      job.Priority,
		StartTime:     -1,
	}
}

// ProccessesFromJobs clones every job of a request into a private slice.
func ProccessesFromJobs(jobs []requests.Job) []*Proccess {
	processes := make([]*Proccess, 0, len(jobs))
	for _, job := range jobs {
		processes = append(processes, NewProccess(job))
	}
	return processes
}

func (p *Proccess) Completed() bool {
	return p.completed
}

// Arrived reports whether the process is in the ready set at time now.
func (p *Proccess) Arrived(now int) bool {
	return p.ArrivalTime <= now
}

func (p *Proccess) complete(now int) {
	if p.completed {
		panic(fmt.Sprintf("pid %s completed twice", p.Pid))
	}
	p.completed = true
	p.CompletionTime = now
	p.TurnAroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnAroundTime - p.BurstTime
	p.ResponseTime = p.StartTime - p.ArrivalTime
}
