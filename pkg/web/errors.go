package web

import (
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"
	"github.com/whalekit/strategist/pkg/wizard"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// handleServiceError provides typed error handling for wizard service errors.
func handleServiceError(c fiber.Ctx, err error) error {
	switch {
	case wizard.IsValidationError(err):
		return badRequest(c, err.Error())

	case wizard.IsNotFoundError(err):
		return notFound(c, err.Error())

	case wizard.IsConflictError(err):
		problem := problems.NewStatusProblem(409).
			WithInstance(c.Path()).
			WithType("conflict").
			WithDetail(err.Error())

		return c.Status(fiber.StatusConflict).JSON(problem)

	case wizard.IsGenerationError(err):
		// The generator is a stand-in for an upstream model call, so its
		// failures map to 502 rather than 500.
		problem := problems.NewStatusProblem(502).
			WithInstance(c.Path()).
			WithType("generation_failed").
			WithDetail(err.Error())

		return c.Status(fiber.StatusBadGateway).JSON(problem)

	default:
		return internalError(c, err)
	}
}
