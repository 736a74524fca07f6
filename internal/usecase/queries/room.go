package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RoomView struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	CategoryID     uuid.UUID `json:"category_id"`
	CategoryName   string    `json:"category_name"`
	BasePriceCents int64     `json:"base_price_cents"`
	Status         string    `json:"status"`
	MaxOccupancy   int       `json:"max_occupancy"`
}

type RoomCategoryView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"base_price_cents"`
	MaxOccupancy   int       `json:"max_occupancy"`
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	ListByStatus(ctx context.Context, status string) ([]*RoomView, error)
	ListCategories(ctx context.Context) ([]*RoomCategoryView, error)
}

type StaffView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type StaffQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StaffView, error)
}
