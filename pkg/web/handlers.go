// Package web provides HTTP handlers and REST API endpoints for wizard
// session management.
package web

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/whalekit/strategist/pkg/models"
	"github.com/whalekit/strategist/pkg/wizard"
)

type APIHandlers struct {
	wizardService *wizard.Service
	validator     *validator.Validate
}

func NewAPIHandlers(wizardService *wizard.Service, validator *validator.Validate) *APIHandlers {
	return &APIHandlers{
		wizardService: wizardService,
		validator:     validator,
	}
}

// RegisterRoutes wires every endpoint onto the app. Tests and the API
// command share this table.
func (h *APIHandlers) RegisterRoutes(app *fiber.App) {
	app.Get("/scenarios", h.GetScenarios)
	app.Get("/segment-options", h.GetSegmentOptions)

	sessions := app.Group("/sessions")
	sessions.Post("/", h.CreateSession)
	sessions.Get("/", h.GetSessions)
	sessions.Get("/:id", h.GetSession)
	sessions.Delete("/:id", h.DeleteSession)
	sessions.Post("/:id/reset", h.ResetSession)
	sessions.Post("/:id/step", h.SetStep)
	sessions.Post("/:id/step/advance", h.AdvanceStep)
	sessions.Post("/:id/step/retreat", h.RetreatStep)
	sessions.Post("/:id/messages", h.SubmitMessage)
	sessions.Post("/:id/scenario", h.SelectScenario)
	sessions.Post("/:id/business/analyze", h.AnalyzeBusiness)
	sessions.Patch("/:id/business", h.UpdateBusiness)
	sessions.Post("/:id/contents/generate", h.GenerateContent)
	sessions.Post("/:id/contents/more", h.ContinueGeneration)
	sessions.Post("/:id/contents/confirm", h.ConfirmContent)
	sessions.Patch("/:id/contents/:contentId", h.EditContent)
	sessions.Delete("/:id/contents/:contentId", h.RemoveContent)
	sessions.Post("/:id/editor/open", h.OpenEditor)
	sessions.Post("/:id/editor/close", h.CloseEditor)
	sessions.Post("/:id/segments", h.ApplySegmentOption)
	sessions.Post("/:id/segments/classify", h.ClassifyCondition)
}

func (h *APIHandlers) GetScenarios(c fiber.Ctx) error {
	return c.JSON(h.wizardService.Scenarios())
}

func (h *APIHandlers) GetSegmentOptions(c fiber.Ctx) error {
	return c.JSON(h.wizardService.SegmentOptions())
}

func (h *APIHandlers) CreateSession(c fiber.Ctx) error {
	session := h.wizardService.StartSession(c.Context())

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *APIHandlers) GetSessions(c fiber.Ctx) error {
	sessions := h.wizardService.ListSessions()

	return c.JSON(fiber.Map{
		"sessions":    sessions,
		"total_count": len(sessions),
	})
}

func (h *APIHandlers) GetSession(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Session ID is required")
	}

	session, err := h.wizardService.GetSession(id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) DeleteSession(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Session ID is required")
	}

	if err := h.wizardService.DeleteSession(id); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) ResetSession(c fiber.Ctx) error {
	session, err := h.wizardService.ResetSession(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) SetStep(c fiber.Ctx) error {
	var req SetStepRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := h.wizardService.SetStep(c.Context(), c.Params("id"), models.Step(req.Step))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) AdvanceStep(c fiber.Ctx) error {
	session, err := h.wizardService.AdvanceStep(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) RetreatStep(c fiber.Ctx) error {
	session, err := h.wizardService.RetreatStep(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) SubmitMessage(c fiber.Ctx) error {
	var req SubmitMessageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := h.wizardService.SubmitMessage(c.Context(), c.Params("id"), req.Content)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) SelectScenario(c fiber.Ctx) error {
	var req SelectScenarioRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := h.wizardService.SelectScenario(c.Context(), c.Params("id"), req.ScenarioID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) AnalyzeBusiness(c fiber.Ctx) error {
	var req AnalyzeBusinessRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	session, err := h.wizardService.AnalyzeBusiness(c.Context(), c.Params("id"), req.Description, req.Files)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) UpdateBusiness(c fiber.Ctx) error {
	var req UpdateBusinessRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	session, err := h.wizardService.UpdateBusinessInfo(c.Params("id"), req.ToModel())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) GenerateContent(c fiber.Ctx) error {
	session, err := h.wizardService.GenerateContent(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) ContinueGeneration(c fiber.Ctx) error {
	session, err := h.wizardService.ContinueGeneration(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) ConfirmContent(c fiber.Ctx) error {
	session, err := h.wizardService.ConfirmContent(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) EditContent(c fiber.Ctx) error {
	var req EditContentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := h.wizardService.EditContent(c.Params("id"), c.Params("contentId"), req.ToPatch())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) RemoveContent(c fiber.Ctx) error {
	session, err := h.wizardService.RemoveContent(c.Params("id"), c.Params("contentId"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) OpenEditor(c fiber.Ctx) error {
	var req OpenEditorRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	session, err := h.wizardService.OpenEditor(c.Params("id"), req.ContentID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) CloseEditor(c fiber.Ctx) error {
	session, err := h.wizardService.CloseEditor(c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) ApplySegmentOption(c fiber.Ctx) error {
	var req ApplySegmentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	session, err := h.wizardService.ApplySegmentOption(c.Context(), c.Params("id"), req.OptionID, req.Condition, req.Tag)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(session)
}

func (h *APIHandlers) ClassifyCondition(c fiber.Ctx) error {
	var req ClassifyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	classification, err := h.wizardService.Classify(req.Condition)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(classification)
}
