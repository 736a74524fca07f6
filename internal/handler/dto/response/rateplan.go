package response

import (
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RateResponse struct {
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	PriceCents   int64     `json:"priceCents"`
}

type RatePlanResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Rates       []RateResponse `json:"rates"`
}

func FromRatePlanView(rm *queries.RatePlanView) *RatePlanResponse {
	var resp RatePlanResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRatePlanViews(rms []*queries.RatePlanView) []*RatePlanResponse {
	resps := make([]*RatePlanResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromRatePlanView(rm)
	}
	return resps
}
