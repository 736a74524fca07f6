package response

import (
	"hotelcore/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

func FromGuestView(rm *commands.GuestView) *GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
