package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eventexplorer/internal/middleware"
	"eventexplorer/internal/models"
	"eventexplorer/internal/service"
	"eventexplorer/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, models.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.RegisterResponse{
		Message:  "User registered successfully",
		Username: user.Username,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
	}

	return c.JSON(models.MeResponse{
		Username: user.Username,
		Role:     user.Role,
	})
}
