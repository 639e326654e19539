package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/glanzwerk/rechnung-api/internal/application/catalog"
	"github.com/glanzwerk/rechnung-api/internal/application/dto"
)

// ServiceHandler handles the service catalog (protected; writes admin-only).
type ServiceHandler struct {
	uc *catalog.UseCase
}

// NewServiceHandler builds the handler.
func NewServiceHandler(uc *catalog.UseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List returns the catalog ordered by name.
// GET /api/services
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	services, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(services)
}

// GetByName returns one catalog entry.
// GET /api/services/:name
func (h *ServiceHandler) GetByName(c *fiber.Ctx) error {
	// Fiber hands the path segment over still percent-encoded; catalog names
	// carry spaces and umlauts, so decode before the lookup.
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "malformed name"})
	}
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name required"})
	}
	service, err := h.uc.GetByName(name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(service)
}

// Create adds a catalog service.
// POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	service, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// Update changes name and standard price of a service.
// PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	service, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(service)
}

// Delete removes a service from the catalog. Past invoices are unaffected:
// line items carry their own name and price.
// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
