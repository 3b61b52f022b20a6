package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/store"
	"os-scheduler/internal/workload"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelQueue(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	ExportRunCSV(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.Store
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, store store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		store:  store,
		logger: logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) options() schedulers.Options {
	return schedulers.Options{
		TimeQuantum:       s.config.RoundRobinTimeQuantum,
		HighPriorityBelow: s.config.MultilevelQueueHighPriorityBelow,
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SRTF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MLQ)
}

// Schedule runs the policy named in the path, e.g. /schedule/round-robin.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	policy, err := schedulers.ParsePolicy(ctx.Params("policy"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.schedule(ctx, policy)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	runCtx, cancel := context.WithTimeout(ctx.UserContext(), s.config.RequestTimeout)
	defer cancel()

	response, err := schedulers.Schedule(runCtx, policy, &request, s.options())
	if err != nil {
		return s.fail(ctx, err)
	}
	s.save(ctx.UserContext(), request, &response)

	return ctx.JSON(response)
}

// AllAlgorithms runs every policy on the same processes.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	runCtx, cancel := context.WithTimeout(ctx.UserContext(), s.config.RequestTimeout)
	defer cancel()

	compare, err := schedulers.ScheduleAll(runCtx, &request, s.options())
	if err != nil {
		return s.fail(ctx, err)
	}
	for i := range compare.Results {
		s.save(ctx.UserContext(), request, &compare.Results[i])
	}

	return ctx.JSON(compare)
}

// save stores a finished run. A storage failure only costs the run its id;
// the simulation result is still returned.
func (s *SchedulerHandlerImpl) save(ctx context.Context, request requests.ScheduleRequests, response *responses.ScheduleResponse) {
	id, err := s.store.SaveRun(ctx, request, *response)
	if err != nil {
		s.logger.Warn("can not store run", "algorithm", response.Algorithm, "error", err)
		return
	}
	response.RunId = id
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", defaultRunsLimit)
	if limit <= 0 || limit > maxRunsLimit {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("limit must be between 1 and %d", maxRunsLimit),
		})
	}

	runs, err := s.store.ListRuns(ctx.UserContext(), limit)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"runs": runs})
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(run)
}

func (s *SchedulerHandlerImpl) ExportRunCSV(ctx *fiber.Ctx) error {
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Attachment(fmt.Sprintf("run-%s.csv", run.ID))
	ctx.Set(fiber.HeaderContentType, "text/csv")
	if err := workload.WriteCSV(ctx, run.Response); err != nil {
		return s.fail(ctx, err)
	}
	return nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "can not process request"
	switch {
	case errors.Is(err, schedulers.ErrInvalidInput), errors.Is(err, schedulers.ErrUnsupportedPolicy):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status, message = fiber.StatusServiceUnavailable, "simulation timed out"
	default:
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": message})
}
