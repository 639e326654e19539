package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glanzwerk/rechnung-api/internal/application/billing"
	"github.com/glanzwerk/rechnung-api/internal/application/dto"
)

// CustomerHandler serves the customer history view (protected).
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List returns all known customers.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// History returns a customer's invoices, newest first.
// GET /api/customers/:id/invoices
func (h *CustomerHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	invoices, err := h.uc.History(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoices)
}
