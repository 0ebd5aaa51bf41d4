package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eventexplorer/internal/middleware"
	"eventexplorer/internal/models"
	"eventexplorer/internal/service"
	"eventexplorer/pkg/utils"
)

type ParticipationHandler struct {
	participationService *service.ParticipationService
	validator            *utils.Validator
}

func NewParticipationHandler(participationService *service.ParticipationService, validator *utils.Validator) *ParticipationHandler {
	return &ParticipationHandler{
		participationService: participationService,
		validator:            validator,
	}
}

func (h *ParticipationHandler) Mark(c *fiber.Ctx) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.ParticipationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
	}

	if err := h.participationService.Mark(eventID, user.Username, req.Status); err != nil {
		return participationError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *ParticipationHandler) Counts(c *fiber.Ctx) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	counts, err := h.participationService.Counts(eventID)
	if err != nil {
		return participationError(c, err)
	}
	return c.JSON(counts)
}

func (h *ParticipationHandler) Remove(c *fiber.Ctx) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
	}

	if err := h.participationService.Remove(eventID, user.Username); err != nil {
		return participationError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func participationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrEventNotFound) || errors.Is(err, models.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
}
