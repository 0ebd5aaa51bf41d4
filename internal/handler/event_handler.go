package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"eventexplorer/internal/middleware"
	"eventexplorer/internal/models"
	"eventexplorer/internal/service"
	"eventexplorer/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	views, err := h.eventService.ListEvents(middleware.CurrentUser(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(views)
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	view, err := h.eventService.GetEvent(eventID, middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(view)
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	view, err := h.eventService.CreateEvent(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(view)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	view, err := h.eventService.UpdateEvent(eventID, req)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(view)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := parseEventID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.eventService.DeleteEvent(eventID); err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseEventID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
