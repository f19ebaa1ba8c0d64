package handlers

import (
	"spendaily/internal/dto"
	"spendaily/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// GetSettings answers 404 when the user has no settings row yet; the client
// must not mistake that for zero income.
func (h *BudgetHandler) GetSettings(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	settings, err := h.budgetService.GetSettings(c.Context(), userID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to load budget settings")
	}

	return c.JSON(settings)
}

func (h *BudgetHandler) UpsertSettings(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpsertBudgetSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings, err := h.budgetService.UpsertSettings(c.Context(), userID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to save budget settings")
	}

	return c.Status(fiber.StatusCreated).JSON(settings)
}

// DailyBudget recomputes the report synchronously on every call.
func (h *BudgetHandler) DailyBudget(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	report, err := h.budgetService.DailyBudget(c.Context(), userID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to compute daily budget")
	}

	return c.JSON(report)
}
