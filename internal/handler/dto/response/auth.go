package response

import (
	"time"

	"hotelcore/internal/usecase"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  StaffResponse `json:"user"`
}

func FromLoginResult(result *usecase.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: result.Token,
		User:  *FromStaffView(result.User),
	}
}

func FromStaffView(rm *queries.StaffView) *StaffResponse {
	return &StaffResponse{
		ID:          rm.ID,
		Email:       rm.Email,
		Name:        rm.Name,
		Role:        rm.Role,
		LastLoginAt: rm.LastLoginAt,
	}
}
