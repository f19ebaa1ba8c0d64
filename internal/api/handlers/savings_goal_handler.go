package handlers

import (
	"spendaily/internal/dto"
	"spendaily/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SavingsGoalHandler struct {
	goalService *service.SavingsGoalService
	logger      *zap.Logger
}

func NewSavingsGoalHandler(goalService *service.SavingsGoalService, logger *zap.Logger) *SavingsGoalHandler {
	return &SavingsGoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

func (h *SavingsGoalHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	goals, err := h.goalService.List(c.Context(), userID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list savings goals")
	}

	return c.JSON(goals)
}

func (h *SavingsGoalHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSavingsGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Create(c.Context(), userID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create savings goal")
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

// Patch dispatches the dual update contract: a body carrying only "amount"
// adds funds, anything else replaces the goal in place.
func (h *SavingsGoalHandler) Patch(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid savings goal ID",
		})
	}

	var req dto.PatchSavingsGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var goal *dto.SavingsGoalResponse
	if req.IsAddFunds() {
		goal, err = h.goalService.AddFunds(c.Context(), userID, id, &req)
	} else {
		goal, err = h.goalService.Replace(c.Context(), userID, id, &req)
	}
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update savings goal")
	}

	return c.JSON(goal)
}

func (h *SavingsGoalHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid savings goal ID",
		})
	}

	if err := h.goalService.Archive(c.Context(), userID, id); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete savings goal")
	}

	return c.JSON(fiber.Map{
		"message": "Savings goal deleted",
	})
}
