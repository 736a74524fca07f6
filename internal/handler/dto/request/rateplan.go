package request

import "github.com/google/uuid"

type CreateRatePlanRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpsertRateRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"required,min=0"`
}
