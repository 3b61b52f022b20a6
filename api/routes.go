package api

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp wires the scheduler routes. Access logs go to accessLog when it is
// not nil.
func NewApp(handler SchedulerHandler, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "os-scheduler",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	if accessLog != nil {
		app.Use(logger.New(logger.Config{Output: accessLog}))
	}

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/mlq", handler.MultilevelQueue)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/schedule/:policy", handler.Schedule)

		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
		v1.Get("/runs/:id/csv", handler.ExportRunCSV)
	}

	return app
}
