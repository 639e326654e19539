package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest is the body of POST /api/services.
type CreateServiceRequest struct {
	Name          string          `json:"name"`
	StandardPrice decimal.Decimal `json:"standard_price"`
}

// UpdateServiceRequest is the body of PUT /api/services/:id.
type UpdateServiceRequest struct {
	Name          string          `json:"name"`
	StandardPrice decimal.Decimal `json:"standard_price"`
}

// ServiceResponse is a catalog entry in responses.
type ServiceResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	StandardPrice decimal.Decimal `json:"standard_price"`
}
