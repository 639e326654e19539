package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glanzwerk/rechnung-api/internal/application/auth"
	"github.com/glanzwerk/rechnung-api/internal/application/dto"
)

// AuthHandler handles staff registration and login (public).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register creates a staff account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	user, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login verifies credentials and returns a JWT.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
