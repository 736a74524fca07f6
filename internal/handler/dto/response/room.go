package response

import (
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	CategoryID     uuid.UUID `json:"categoryId"`
	CategoryName   string    `json:"categoryName"`
	BasePriceCents int64     `json:"basePriceCents"`
	Status         string    `json:"status"`
	MaxOccupancy   int       `json:"maxOccupancy"`
}

type RoomCategoryResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"basePriceCents"`
	MaxOccupancy   int       `json:"maxOccupancy"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	resps := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromRoomView(rm)
	}
	return resps
}

func FromRoomCategoryView(rm *queries.RoomCategoryView) *RoomCategoryResponse {
	var resp RoomCategoryResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRoomCategoryViews(rms []*queries.RoomCategoryView) []*RoomCategoryResponse {
	resps := make([]*RoomCategoryResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromRoomCategoryView(rm)
	}
	return resps
}
