package request

import "hotelcore/internal/usecase/commands"

type CreateGuestRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

func (r CreateGuestRequest) ToParams() commands.CreateGuestParams {
	return commands.CreateGuestParams{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}
