// Package main provides the Strategist API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/whalekit/strategist/pkg/eventbus"
	"github.com/whalekit/strategist/pkg/generation"
	"github.com/whalekit/strategist/pkg/session"
	"github.com/whalekit/strategist/pkg/web"
	"github.com/whalekit/strategist/pkg/wizard"
)

type API struct {
	logger    *slog.Logger
	sessions  *session.Manager
	generator generation.Generator
	eventBus  eventbus.EventBus
	validate  *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	sessions *session.Manager,
	generator generation.Generator,
	eventBus eventbus.EventBus,
) *API {
	return &API{
		logger:    logger,
		sessions:  sessions,
		generator: generator,
		eventBus:  eventBus,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	wizardService := wizard.NewService(a.sessions, a.generator, a.eventBus, a.logger)
	handlers := web.NewAPIHandlers(wizardService, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Strategist API")
	})

	handlers.RegisterRoutes(app)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"message":  "Strategist API is healthy",
			"sessions": a.sessions.Count(),
		})
	})

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
