// Package store persists simulation runs.
package store

import (
	"context"
	"errors"
	"time"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

var ErrNotFound = errors.New("run not found")

// Run is one stored simulation: the request exactly as submitted and the
// response it produced.
type Run struct {
	ID        string                     `json:"id"`
	Algorithm string                     `json:"algorithm"`
	Quantum   int                        `json:"quantum,omitempty"`
	CreatedAt time.Time                  `json:"created_at"`
	Request   requests.ScheduleRequests  `json:"request"`
	Response  responses.ScheduleResponse `json:"response"`
}

// RunSummary is the listing view of a run.
type RunSummary struct {
	ID                    string    `json:"id"`
	Algorithm             string    `json:"algorithm"`
	Quantum               int       `json:"quantum,omitempty"`
	Processes             int       `json:"processes"`
	AverageWaitingTime    float64   `json:"average_waiting_time"`
	AverageTurnAroundTime float64   `json:"average_turnaround_time"`
	CreatedAt             time.Time `json:"created_at"`
}

type Store interface {
	// SaveRun stores a run and returns its generated ID.
	SaveRun(ctx context.Context, request requests.ScheduleRequests, response responses.ScheduleResponse) (string, error)
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns at most limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
	Close() error
}
