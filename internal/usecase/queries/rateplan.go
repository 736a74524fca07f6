package queries

import (
	"context"

	"github.com/google/uuid"
)

type RateView struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	PriceCents   int64     `json:"price_cents"`
}

type RatePlanView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Rates       []RateView `json:"rates"`
}

type RatePlanQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RatePlanView, error)
	List(ctx context.Context) ([]*RatePlanView, error)
}
