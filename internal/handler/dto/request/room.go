package request

import (
	"hotelcore/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRoomCategoryRequest struct {
	Name           string `json:"name" binding:"required"`
	BasePriceCents int64  `json:"base_price_cents" binding:"required,min=0"`
	MaxOccupancy   int    `json:"max_occupancy" binding:"required,min=1"`
}

func (r CreateRoomCategoryRequest) ToParams() commands.CreateCategoryParams {
	return commands.CreateCategoryParams{
		Name:           r.Name,
		BasePriceCents: r.BasePriceCents,
		MaxOccupancy:   r.MaxOccupancy,
	}
}

type CreateRoomRequest struct {
	Number       string    `json:"number" binding:"required"`
	CategoryID   uuid.UUID `json:"category_id" binding:"required"`
	MaxOccupancy int       `json:"max_occupancy" binding:"required,min=1"`
}

func (r CreateRoomRequest) ToParams() commands.CreateRoomParams {
	return commands.CreateRoomParams{
		Number:       r.Number,
		CategoryID:   r.CategoryID,
		MaxOccupancy: r.MaxOccupancy,
	}
}
